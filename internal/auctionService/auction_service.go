package auction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/auctionerrors"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/models"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/repository"
	"github.com/RAVIKIRANKURRA/auction-zenith-platform/utils"
	"github.com/shopspring/decimal"
)

// AuctionService is the ledger: it owns all reads and writes of auction
// state and enforces the price and status invariants. Every operation
// waits out the configured simulated latency before touching the store,
// so the mutation itself is a single synchronous step.
type AuctionService struct {
	store   repository.AuctionStore
	now     func() time.Time
	latency time.Duration
}

// Option configures an AuctionService.
type Option func(*AuctionService)

// WithClock replaces the wall clock. Tests inject a frozen clock to make
// expiry checks deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *AuctionService) { s.now = now }
}

// WithLatency sets the simulated per-call delay. Zero disables it; the
// delay exists to exercise caller loading states and has no correctness
// role.
func WithLatency(d time.Duration) Option {
	return func(s *AuctionService) { s.latency = d }
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore, opts ...Option) *AuctionService {
	s := &AuctionService{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Filter narrows ListAuctions results. All set fields must match (logical
// AND); zero-valued fields are ignored. Pointer fields distinguish "unset"
// from a legitimate zero.
type Filter struct {
	Category string
	Status   models.AuctionStatus
	SellerID string
	Featured *bool
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
}

func (f Filter) matches(item models.AuctionItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	if f.SellerID != "" && item.SellerID != f.SellerID {
		return false
	}
	if f.Featured != nil && item.Featured != *f.Featured {
		return false
	}
	if f.MinPrice != nil && item.CurrentPrice.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && item.CurrentPrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Title), term) &&
			!strings.Contains(strings.ToLower(item.Description), term) &&
			!strings.Contains(strings.ToLower(item.Category), term) {
			return false
		}
	}
	return true
}

// NewAuction carries the caller-supplied fields for CreateAuction.
type NewAuction struct {
	Title         string
	Description   string
	Category      string
	Condition     string
	Featured      bool
	Images        []string
	StartingPrice decimal.Decimal
	EndDate       time.Time
	SellerID      string
	Status        models.AuctionStatus
}

// ListAuctions returns the auctions matching the filter, in store
// (insertion) order. Sorting and pagination are left to the caller.
func (s *AuctionService) ListAuctions(ctx context.Context, filter Filter) ([]models.AuctionItem, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	items := s.store.ListAuctions()
	filtered := make([]models.AuctionItem, 0, len(items))
	for _, item := range items {
		if filter.matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// GetAuctionByID returns the auction with the given id, or nil when it does
// not exist. A missing id is not an error on this read path.
func (s *AuctionService) GetAuctionByID(ctx context.Context, auctionID string) (*models.AuctionItem, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.simulateLatency(ctx); err != nil {
		return nil, err
	}

	item, err := s.store.GetAuction(auctionID)
	if errors.Is(err, auctionerrors.ErrAuctionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return &item, nil
}

// PlaceBid validates and records a bid against an auction, returning the
// updated record. Checks run in a fixed order and the first failure wins:
// existence, active status, end date (flipping an ended auction to closed
// as a side effect), amount above current price, known bidder. The whole
// check-and-commit runs inside the store's per-record critical section, so
// a second in-flight bid is validated against this bid's committed price.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID, userID string, amount decimal.Decimal) (models.AuctionItem, error) {
	if auctionID == "" || userID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - missing auctionID or userID", auctionerrors.ErrInvalidInput)
	}
	if !amount.IsPositive() {
		return models.AuctionItem{}, fmt.Errorf("service: %w - non-positive bid amount", auctionerrors.ErrInvalidInput)
	}
	if err := s.simulateLatency(ctx); err != nil {
		return models.AuctionItem{}, err
	}

	// Resolved outside the critical section; the result is only consulted
	// after the auction-side checks so rejection reasons keep their order.
	bidder, bidderErr := s.store.GetUser(userID)

	updated, err := s.store.UpdateAuction(auctionID, func(item *models.AuctionItem) error {
		if item.Status != models.StatusActive {
			return fmt.Errorf("service: %w - auction %s is %s", auctionerrors.ErrAuctionNotActive, auctionID, item.Status)
		}
		if !s.now().Before(item.EndDate) {
			// Lazy expiry: the status flip persists even though the bid fails.
			item.Status = models.StatusClosed
			return fmt.Errorf("service: %w - auction %s closed at %s", auctionerrors.ErrAuctionEnded, auctionID, item.EndDate.UTC().Format(time.RFC3339))
		}
		if !amount.GreaterThan(item.CurrentPrice) {
			return fmt.Errorf("service: %w - current price is %s", auctionerrors.ErrBidTooLow, item.CurrentPrice)
		}
		if bidderErr != nil {
			return fmt.Errorf("service: cannot accept bid: %w", bidderErr)
		}

		bid := models.Bid{
			BidID:     utils.GenerateID(),
			AuctionID: item.AuctionID,
			UserID:    bidder.UserID,
			Amount:    amount,
			CreatedAt: s.now().UTC(),
		}
		item.Bids = append([]models.Bid{bid}, item.Bids...)
		item.CurrentPrice = amount
		return nil
	})
	if err != nil {
		return models.AuctionItem{}, err
	}
	return updated, nil
}

// UpdateAuctionStatus overwrites the status of an auction. Any status may
// move to any other; this is the admin override path and enforces no
// transition graph.
func (s *AuctionService) UpdateAuctionStatus(ctx context.Context, auctionID string, status models.AuctionStatus) (models.AuctionItem, error) {
	if auctionID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	if !status.Valid() {
		return models.AuctionItem{}, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidInput, status)
	}
	if err := s.simulateLatency(ctx); err != nil {
		return models.AuctionItem{}, err
	}

	updated, err := s.store.UpdateAuction(auctionID, func(item *models.AuctionItem) error {
		item.Status = status
		return nil
	})
	if err != nil {
		return models.AuctionItem{}, err
	}
	return updated, nil
}

// CreateAuction registers a new listing. The current price starts at the
// starting price, the bid history starts empty, and the advisory minimum
// increment is derived from the starting price.
func (s *AuctionService) CreateAuction(ctx context.Context, input NewAuction) (models.AuctionItem, error) {
	if input.Title == "" || input.SellerID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - missing title or sellerID", auctionerrors.ErrInvalidInput)
	}
	if !input.StartingPrice.IsPositive() {
		return models.AuctionItem{}, fmt.Errorf("service: %w - non-positive starting price", auctionerrors.ErrInvalidInput)
	}
	status := input.Status
	if status == "" {
		status = models.StatusActive
	}
	if !status.Valid() {
		return models.AuctionItem{}, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrInvalidInput, status)
	}
	if err := s.simulateLatency(ctx); err != nil {
		return models.AuctionItem{}, err
	}

	if _, err := s.store.GetUser(input.SellerID); err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: cannot create auction: %w", err)
	}

	now := s.now()
	if !input.EndDate.After(now) {
		return models.AuctionItem{}, fmt.Errorf("service: %w - end date must be in the future", auctionerrors.ErrInvalidInput)
	}

	item := models.AuctionItem{
		AuctionID:     utils.GenerateID(),
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Condition:     input.Condition,
		Featured:      input.Featured,
		Images:        append([]string(nil), input.Images...),
		StartingPrice: input.StartingPrice,
		CurrentPrice:  input.StartingPrice,
		MinIncrement:  models.SuggestedIncrement(input.StartingPrice),
		StartDate:     now,
		EndDate:       input.EndDate,
		SellerID:      input.SellerID,
		Status:        status,
		Bids:          []models.Bid{},
	}

	if err := s.store.InsertAuction(item); err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to create auction: %w", err)
	}
	return item, nil
}

// simulateLatency pauses for the configured delay, honoring context
// cancellation. A zero or negative delay returns immediately.
func (s *AuctionService) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
