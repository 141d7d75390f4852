// Package id generates record identifiers for posted documents.
// Invoices and purchases carry opaque string ids; only collision
// resistance matters, not the exact algorithm.
package id

import (
	"github.com/google/uuid"
)

// Generator produces a unique string id per call.
type Generator func() string

// New returns a time-ordered UUIDv7 string, falling back to UUIDv4 in the
// unlikely case V7 generation fails.
func New() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
