package repository

import (
	"fmt"
	"sync"

	"github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/auctionerrors"
	model "github.com/RAVIKIRANKURRA/auction-zenith-platform/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionStore defines the auction and user storage interface for the ledger
type AuctionStore interface {
	ListAuctions() []model.AuctionItem
	GetAuction(auctionID string) (model.AuctionItem, error)
	InsertAuction(item model.AuctionItem) error
	UpdateAuction(auctionID string, fn func(*model.AuctionItem) error) (model.AuctionItem, error)
	GetUser(userID string) (model.User, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore.
// Auctions keep their insertion order, which is the order queries return.
type MemoryStore struct {
	mu       sync.RWMutex
	auctions []model.AuctionItem
	index    map[string]int // auctionID -> position in auctions
	users    map[string]model.User
}

// NewMemoryStore creates a store pre-populated with the given auctions and
// users. Seed data is injected rather than global so each test can own an
// isolated store.
func NewMemoryStore(auctions []model.AuctionItem, users []model.User) *MemoryStore {
	s := &MemoryStore{
		auctions: make([]model.AuctionItem, 0, len(auctions)),
		index:    make(map[string]int, len(auctions)),
		users:    make(map[string]model.User, len(users)),
	}
	for _, a := range auctions {
		if _, ok := s.index[a.AuctionID]; ok {
			continue
		}
		s.index[a.AuctionID] = len(s.auctions)
		s.auctions = append(s.auctions, copyItem(a))
	}
	for _, u := range users {
		s.users[u.UserID] = u
	}
	return s
}

// ListAuctions returns a snapshot of every auction in insertion order
func (s *MemoryStore) ListAuctions() []model.AuctionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.AuctionItem, len(s.auctions))
	for i, a := range s.auctions {
		out[i] = copyItem(a)
	}
	return out
}

// GetAuction returns the auction with the given id
func (s *MemoryStore) GetAuction(auctionID string) (model.AuctionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[auctionID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return copyItem(s.auctions[i]), nil
}

// InsertAuction appends a new auction to the store
func (s *MemoryStore) InsertAuction(item model.AuctionItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[item.AuctionID]; ok {
		return fmt.Errorf("insert auction %s: %w", item.AuctionID, auctionerrors.ErrDuplicateID)
	}
	s.index[item.AuctionID] = len(s.auctions)
	s.auctions = append(s.auctions, copyItem(item))
	return nil
}

// UpdateAuction runs fn against the stored record while holding the write
// lock, so fn's read-check-write sequence is atomic with respect to every
// other store operation. Mutations fn makes persist even when fn returns an
// error; fn decides what to commit. The returned snapshot reflects the
// record after fn ran.
func (s *MemoryStore) UpdateAuction(auctionID string, fn func(*model.AuctionItem) error) (model.AuctionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[auctionID]
	if !ok {
		return model.AuctionItem{}, fmt.Errorf("update auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if err := fn(&s.auctions[i]); err != nil {
		return model.AuctionItem{}, err
	}
	return copyItem(s.auctions[i]), nil
}

// GetUser resolves a user id
func (s *MemoryStore) GetUser(userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUnknownUser)
	}
	return u, nil
}

// AddUser registers a user after construction. This method is intended for tests only.
func (s *MemoryStore) AddUser(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.UserID] = u
}

// copyItem clones an auction so callers can never alias store-owned slices
func copyItem(a model.AuctionItem) model.AuctionItem {
	out := a
	out.Images = append([]string(nil), a.Images...)
	out.Bids = append([]model.Bid(nil), a.Bids...)
	return out
}
