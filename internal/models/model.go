package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionStatus is the lifecycle state of an auction listing.
type AuctionStatus string

const (
	StatusPending AuctionStatus = "pending"
	StatusActive  AuctionStatus = "active"
	StatusClosed  AuctionStatus = "closed"
)

// Valid reports whether s is one of the known auction statuses.
func (s AuctionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusClosed:
		return true
	}
	return false
}

// UserRole determines what a user may do in the marketplace.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleSeller UserRole = "seller"
	RoleBidder UserRole = "bidder"
)

// User represents a participant in the marketplace
type User struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}

// Bid represents a single accepted offer against an auction
type Bid struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// AuctionItem represents a sellable listing together with its bid history.
// Bids is kept newest first, so Bids[0] always carries CurrentPrice.
type AuctionItem struct {
	AuctionID     string          `json:"auction_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Condition     string          `json:"condition"`
	Featured      bool            `json:"featured"`
	Images        []string        `json:"images"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	MinIncrement  decimal.Decimal `json:"min_increment"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	SellerID      string          `json:"seller_id"`
	Status        AuctionStatus   `json:"status"`
	Bids          []Bid           `json:"bids"`
}

// SuggestedIncrement returns the advisory bid step for a given price:
// 100 at or above 1000, 10 at or above 100, 5 below that. The step is a
// hint surfaced to clients, not a hard acceptance rule.
func SuggestedIncrement(price decimal.Decimal) decimal.Decimal {
	switch {
	case price.GreaterThanOrEqual(decimal.NewFromInt(1000)):
		return decimal.NewFromInt(100)
	case price.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return decimal.NewFromInt(10)
	default:
		return decimal.NewFromInt(5)
	}
}
