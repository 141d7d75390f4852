// Package types provides shared numeric utilities for the ledger core.
package types

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Ceil2 rounds up to two decimal places: ceil(x * 100) / 100.
//
// Every monetary aggregate in the system passes through Ceil2 before being
// stored or compared, so the same logical total rounds identically
// regardless of computation order. Ceiling, not nearest, is the historical
// policy of the application and must not be changed.
func Ceil2(v float64) float64 {
	d := decimal.NewFromFloat(v).Mul(hundred).Ceil().Div(hundred)
	f, _ := d.Float64()
	return f
}

// IsFinite reports whether v is a usable numeric value (not NaN or ±Inf).
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
