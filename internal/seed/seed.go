// Package seed carries the demo catalogue the server starts with. Dates are
// relative to the supplied clock so the listings are always mid-flight.
package seed

import (
	"time"

	model "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/models"
	"github.com/shopspring/decimal"
)

// SampleUsers returns the demo accounts, including the historical bidders
// referenced from the sample bid histories.
func SampleUsers() []model.User {
	return []model.User{
		{UserID: "1", Name: "Admin User", Email: "admin@example.com", Role: model.RoleAdmin},
		{UserID: "2", Name: "Seller User", Email: "seller@example.com", Role: model.RoleSeller},
		{UserID: "3", Name: "Bidder User", Email: "bidder@example.com", Role: model.RoleBidder},
		{UserID: "4", Name: "Jane Doe", Email: "jane@example.com", Role: model.RoleBidder},
		{UserID: "5", Name: "John Smith", Email: "john@example.com", Role: model.RoleBidder},
		{UserID: "6", Name: "Antique Dealer", Email: "antiques@example.com", Role: model.RoleSeller},
		{UserID: "7", Name: "Furniture Collector", Email: "furniture@example.com", Role: model.RoleBidder},
		{UserID: "8", Name: "Interior Designer", Email: "interiors@example.com", Role: model.RoleBidder},
		{UserID: "9", Name: "Book Dealer", Email: "books@example.com", Role: model.RoleSeller},
		{UserID: "10", Name: "Book Collector", Email: "collector@example.com", Role: model.RoleBidder},
		{UserID: "11", Name: "Literature Professor", Email: "professor@example.com", Role: model.RoleBidder},
	}
}

// SampleAuctions returns four in-progress listings with bid history, newest
// bid first.
func SampleAuctions(now time.Time) []model.AuctionItem {
	return []model.AuctionItem{
		{
			AuctionID:     "1",
			Title:         "Vintage Mechanical Watch",
			Description:   "A beautiful 1960s Swiss mechanical watch in excellent condition. Features a 36mm stainless steel case, automatic movement, and original leather strap.",
			Category:      "Watches",
			Condition:     "Excellent",
			Featured:      true,
			Images:        []string{"https://images.unsplash.com/photo-1508057198894-247b23fe5ade?auto=format&fit=crop&w=800&q=80"},
			StartingPrice: decimal.NewFromInt(500),
			CurrentPrice:  decimal.NewFromInt(650),
			MinIncrement:  decimal.NewFromInt(10),
			StartDate:     now.Add(-24 * time.Hour),
			EndDate:       now.Add(48 * time.Hour),
			SellerID:      "2",
			Status:        model.StatusActive,
			Bids: []model.Bid{
				{BidID: "101", AuctionID: "1", UserID: "3", Amount: decimal.NewFromInt(650), CreatedAt: now.Add(-1 * time.Hour)},
				{BidID: "100", AuctionID: "1", UserID: "4", Amount: decimal.NewFromInt(600), CreatedAt: now.Add(-2 * time.Hour)},
			},
		},
		{
			AuctionID:     "2",
			Title:         "Modern Art Painting",
			Description:   "Original abstract painting by contemporary artist Maria Lopez. Acrylic on canvas, 80x120cm, signed by the artist. Certificate of authenticity included.",
			Category:      "Art",
			Condition:     "New",
			Featured:      true,
			Images:        []string{"https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?auto=format&fit=crop&w=800&q=80"},
			StartingPrice: decimal.NewFromInt(1200),
			CurrentPrice:  decimal.NewFromInt(1500),
			MinIncrement:  decimal.NewFromInt(100),
			StartDate:     now.Add(-48 * time.Hour),
			EndDate:       now.Add(72 * time.Hour),
			SellerID:      "2",
			Status:        model.StatusActive,
			Bids: []model.Bid{
				{BidID: "102", AuctionID: "2", UserID: "5", Amount: decimal.NewFromInt(1500), CreatedAt: now.Add(-3 * time.Hour)},
				{BidID: "103", AuctionID: "2", UserID: "3", Amount: decimal.NewFromInt(1350), CreatedAt: now.Add(-4 * time.Hour)},
			},
		},
		{
			AuctionID:     "3",
			Title:         "Antique Oak Desk",
			Description:   "Beautiful 19th century oak writing desk with original hardware and a leather writing surface. Features three drawers and ornate carved details.",
			Category:      "Furniture",
			Condition:     "Good",
			Featured:      false,
			Images:        []string{"https://images.unsplash.com/photo-1554295405-abb8fd54f153?auto=format&fit=crop&w=800&q=80"},
			StartingPrice: decimal.NewFromInt(800),
			CurrentPrice:  decimal.NewFromInt(1100),
			MinIncrement:  decimal.NewFromInt(100),
			StartDate:     now.Add(-72 * time.Hour),
			EndDate:       now.Add(24 * time.Hour),
			SellerID:      "6",
			Status:        model.StatusActive,
			Bids: []model.Bid{
				{BidID: "104", AuctionID: "3", UserID: "7", Amount: decimal.NewFromInt(1100), CreatedAt: now.Add(-5 * time.Hour)},
				{BidID: "105", AuctionID: "3", UserID: "8", Amount: decimal.NewFromInt(950), CreatedAt: now.Add(-7 * time.Hour)},
			},
		},
		{
			AuctionID:     "4",
			Title:         "Rare First Edition Book",
			Description:   "First edition of \"The Great Gatsby\" by F. Scott Fitzgerald, 1925. In excellent condition with original dust jacket. A true collector's item.",
			Category:      "Books",
			Condition:     "Excellent",
			Featured:      false,
			Images:        []string{"https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&w=800&q=80"},
			StartingPrice: decimal.NewFromInt(15000),
			CurrentPrice:  decimal.NewFromInt(18500),
			MinIncrement:  decimal.NewFromInt(100),
			StartDate:     now.Add(-120 * time.Hour),
			EndDate:       now.Add(120 * time.Hour),
			SellerID:      "9",
			Status:        model.StatusActive,
			Bids: []model.Bid{
				{BidID: "106", AuctionID: "4", UserID: "10", Amount: decimal.NewFromInt(18500), CreatedAt: now.Add(-10 * time.Hour)},
				{BidID: "107", AuctionID: "4", UserID: "11", Amount: decimal.NewFromInt(17200), CreatedAt: now.Add(-12 * time.Hour)},
			},
		},
	}
}
