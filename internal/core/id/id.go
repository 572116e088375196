// Package id provides identifiers for ledger records.
package id

import (
	"github.com/google/uuid"
)

// New generates a new UUIDv7 string.
// UUIDv7 embeds the Unix timestamp in its first 48 bits, so identifiers
// created later sort after earlier ones.
func New() string {
	v, err := uuid.NewV7()
	if err != nil {
		// Fallback to V4 if V7 fails (should never happen)
		return uuid.NewString()
	}
	return v.String()
}
