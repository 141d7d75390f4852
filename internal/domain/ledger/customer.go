package ledger

import (
	"sort"
	"strings"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/types"
)

// MaxPhoneLen caps stored phone numbers after trimming.
const MaxPhoneLen = 50

// Customer is a named buyer with an accounts-receivable balance.
// Outstanding is set at creation and thereafter changes only as a side
// effect of posting invoices.
type Customer struct {
	ID          int     `json:"id"`
	NameBn      string  `json:"nameBn"`
	NameEn      string  `json:"nameEn,omitempty"`
	Address     string  `json:"address,omitempty"`
	Phone       string  `json:"phone,omitempty"`
	Outstanding float64 `json:"outstanding"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// CustomerInput creates a customer. Outstanding is accepted here and only
// here; it defaults to 0.
type CustomerInput struct {
	ID          int          `json:"id"`
	NameBn      string       `json:"nameBn"`
	NameEn      string       `json:"nameEn,omitempty"`
	Address     string       `json:"address,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Outstanding types.Number `json:"outstanding,omitempty"`
	Active      *bool        `json:"active,omitempty"`
}

// CustomerPatch updates a customer. Outstanding deliberately has no seam
// that skips the policy check: a present Outstanding is rejected.
type CustomerPatch struct {
	NameBn      *string       `json:"nameBn,omitempty"`
	NameEn      *string       `json:"nameEn,omitempty"`
	Address     *string       `json:"address,omitempty"`
	Phone       *string       `json:"phone,omitempty"`
	Outstanding *types.Number `json:"outstanding,omitempty"`
	Active      *bool         `json:"active,omitempty"`
}

func normalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if len(phone) > MaxPhoneLen {
		phone = phone[:MaxPhoneLen]
	}
	return phone
}

// AddCustomer validates and appends a new customer.
func (s *Store) AddCustomer(in CustomerInput) (*Customer, error) {
	if in.ID < 1 {
		return nil, apperror.NewValidation("customer id must be a positive integer").
			WithDetail("id", in.ID)
	}
	name := strings.TrimSpace(in.NameBn)
	if name == "" {
		return nil, apperror.NewValidation("customer name (Bengali) is required")
	}
	if s.data.customerIndex(in.ID) >= 0 {
		return nil, apperror.NewDuplicate("customer", in.ID)
	}
	outstanding, err := numberField(in.Outstanding, "outstanding", 0)
	if err != nil {
		return nil, err
	}
	if outstanding < 0 {
		return nil, apperror.NewValidation("outstanding must be non-negative")
	}

	now := s.now()
	c := Customer{
		ID:          in.ID,
		NameBn:      name,
		NameEn:      trimOpt(in.NameEn),
		Address:     trimOpt(in.Address),
		Phone:       normalizePhone(in.Phone),
		Outstanding: outstanding,
		Active:      boolOr(in.Active, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.data.Customers = append(s.data.Customers, c)
	return &c, nil
}

// UpdateCustomer applies a patch. Attempts to set the outstanding balance
// are a policy violation: the balance mutates only via invoice posting.
func (s *Store) UpdateCustomer(customerID int, patch CustomerPatch) (*Customer, error) {
	i := s.data.customerIndex(customerID)
	if i < 0 {
		return nil, apperror.NewNotFound("customer", customerID)
	}
	if patch.Outstanding != nil {
		return nil, apperror.NewPolicy("outstanding cannot be edited directly; it changes only when invoices are posted")
	}

	c := s.data.Customers[i]
	if patch.NameBn != nil {
		name := strings.TrimSpace(*patch.NameBn)
		if name == "" {
			return nil, apperror.NewValidation("customer name (Bengali) is required")
		}
		c.NameBn = name
	}
	if patch.NameEn != nil {
		c.NameEn = trimOpt(*patch.NameEn)
	}
	if patch.Address != nil {
		c.Address = trimOpt(*patch.Address)
	}
	if patch.Phone != nil {
		c.Phone = normalizePhone(*patch.Phone)
	}
	if patch.Active != nil {
		c.Active = *patch.Active
	}
	c.UpdatedAt = s.now()

	s.data.Customers[i] = c
	return &c, nil
}

// GetCustomer returns a copy of the customer with the given id.
func (s *Store) GetCustomer(customerID int) (*Customer, error) {
	i := s.data.customerIndex(customerID)
	if i < 0 {
		return nil, apperror.NewNotFound("customer", customerID)
	}
	c := s.data.Customers[i]
	return &c, nil
}

// ListCustomers returns customers sorted by id, optionally active only.
func (s *Store) ListCustomers(activeOnly bool) []Customer {
	out := make([]Customer, 0, len(s.data.Customers))
	for _, c := range s.data.Customers {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}
