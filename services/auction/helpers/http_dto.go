package helpers

import (
	"time"

	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/format"
	model "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/models"
	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type PlaceBidRequest struct {
	UserID string          `json:"user_id" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type CreateAuctionRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Condition     string          `json:"condition"`
	Featured      bool            `json:"featured"`
	Images        []string        `json:"images"`
	StartingPrice decimal.Decimal `json:"starting_price" binding:"required"`
	EndDate       time.Time       `json:"end_date" binding:"required"`
	SellerID      string          `json:"seller_id" binding:"required"`
	Status        string          `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BidResponse struct {
	BidID     string          `json:"bid_id"`
	AuctionID string          `json:"auction_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt string          `json:"created_at"`
}

type AuctionResponse struct {
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
	DisplayPrice  string          `json:"display_price"`
	TimeRemaining string          `json:"time_remaining"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	SellerID      string          `json:"seller_id"`
	Status        string          `json:"status"`
	BidCount      int             `json:"bid_count"`
	Bids          []BidResponse   `json:"bids"`
}

// NewBidResponse maps a bid onto its wire shape.
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		UserID:    bid.UserID,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAuctionResponse maps an auction onto its wire shape, attaching the
// formatted price and remaining-time strings the pages display.
func NewAuctionResponse(item model.AuctionItem, now time.Time) AuctionResponse {
	bids := make([]BidResponse, 0, len(item.Bids))
	for _, b := range item.Bids {
		bids = append(bids, NewBidResponse(b))
	}
	return AuctionResponse{
		AuctionID:     item.AuctionID,
		Title:         item.Title,
		Description:   item.Description,
		Category:      item.Category,
		Condition:     item.Condition,
		Featured:      item.Featured,
		Images:        item.Images,
		StartingPrice: item.StartingPrice,
		CurrentPrice:  item.CurrentPrice,
		MinIncrement:  item.MinIncrement,
		DisplayPrice:  format.Currency(item.CurrentPrice),
		TimeRemaining: format.TimeRemaining(item.EndDate, now),
		StartDate:     item.StartDate.UTC().Format(time.RFC3339),
		EndDate:       item.EndDate.UTC().Format(time.RFC3339),
		SellerID:      item.SellerID,
		Status:        string(item.Status),
		BidCount:      len(item.Bids),
		Bids:          bids,
	}
}
