package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrDuplicateID     = errors.New("auction id already exists")
	ErrUnknownUser     = errors.New("unknown user")
)

// business logic errors
var (
	ErrInvalidInput     = errors.New("invalid request")
	ErrAuctionNotActive = errors.New("auction is not active")
	ErrAuctionEnded     = errors.New("auction has ended")
	ErrBidTooLow        = errors.New("bid amount too low")
)
