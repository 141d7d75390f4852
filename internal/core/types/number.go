package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Number is an optional numeric input field.
//
// The application historically accepted monetary and quantity inputs as
// either JSON numbers or numeric strings, with blank strings meaning
// "use the default". Number is the single shared coercion point for that
// behavior; callers must not re-implement per-field parsing.
type Number struct {
	val float64
	set bool
}

// N returns a set Number holding v.
func N(v float64) Number {
	return Number{val: v, set: true}
}

// IsSet reports whether a value was provided.
func (n Number) IsSet() bool { return n.set }

// Value returns the held value, or 0 when unset.
func (n Number) Value() float64 { return n.val }

// Or returns the held value, or def when unset.
func (n Number) Or(def float64) float64 {
	if !n.set {
		return def
	}
	return n.val
}

// MarshalJSON encodes the value as a JSON number; unset encodes as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.val)
}

// UnmarshalJSON accepts a JSON number, a numeric string, a blank string
// (treated as unset) or null (treated as unset).
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Number{}
		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseNumber(s)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || !IsFinite(v) {
		return fmt.Errorf("not a number: %s", data)
	}
	*n = N(v)
	return nil
}

// ParseNumber parses a numeric string into a Number. A blank string yields
// an unset Number; anything else must parse to a finite float.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !IsFinite(v) {
		return Number{}, fmt.Errorf("not a number: %q", s)
	}
	return N(v), nil
}
