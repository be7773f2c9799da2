package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string for auctions and bids
func GenerateID() string {
	return uuid.New().String()
}
