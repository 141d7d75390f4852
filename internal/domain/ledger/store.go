package ledger

import (
	"strings"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/clock"
	"ahbsales/internal/core/dates"
	"ahbsales/internal/core/id"
	"ahbsales/internal/core/types"
)

// Store mutates a Ledger. Exactly one Store owns a ledger at a time; all
// operations are synchronous and perform no I/O.
type Store struct {
	data  *Ledger
	clock clock.Clock
	newID id.Generator
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall-clock source.
func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithIDGenerator replaces the record id generator.
func WithIDGenerator(g id.Generator) Option {
	return func(s *Store) { s.newID = g }
}

// NewStore wraps data in a Store. The ledger must already be normalized.
func NewStore(data *Ledger, opts ...Option) *Store {
	s := &Store{
		data:  data,
		clock: clock.System(),
		newID: id.New,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Data exposes the underlying ledger for the report engine and codec.
func (s *Store) Data() *Ledger { return s.data }

func (s *Store) now() string {
	return dates.FormatISO(s.clock.Now())
}

// resolveDate returns the stored ISO form of raw, defaulting to now when
// raw is blank.
func (s *Store) resolveDate(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return s.now(), nil
	}
	t, err := dates.ParseInstant(raw)
	if err != nil {
		return "", apperror.NewValidation("invalid date").WithDetail("date", raw)
	}
	return dates.FormatISO(t), nil
}

// numberField resolves an optional numeric input, rejecting non-finite
// values with the field name in the message.
func numberField(n types.Number, field string, def float64) (float64, error) {
	v := n.Or(def)
	if !types.IsFinite(v) {
		return 0, apperror.NewValidation(field + " must be a number")
	}
	return v, nil
}

// trimOpt trims an optional text field; blank collapses to absent.
func trimOpt(s string) string {
	return strings.TrimSpace(s)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
