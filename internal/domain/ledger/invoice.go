package ledger

import (
	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/types"
)

// StatusPosted is the only invoice status; drafts and voids do not exist.
const StatusPosted = "posted"

// InvoiceLine is one sold item within an invoice.
type InvoiceLine struct {
	SN          int     `json:"sn"`
	ProductID   int     `json:"productId"`
	Unit        string  `json:"unit"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	LineTotal   float64 `json:"lineTotal"`
}

// InvoiceTotals carries the computed invoice aggregates.
type InvoiceTotals struct {
	Subtotal float64 `json:"subtotal"`
	Net      float64 `json:"net"`
}

// Invoice is a posted sale. CustomerID is nil for anonymous (walk-in)
// sales. Invoices are append-only; the human-readable number No is
// monotonic and never reused.
type Invoice struct {
	ID          string        `json:"id"`
	No          int           `json:"no"`
	Date        string        `json:"date"`
	CustomerID  *int          `json:"customerId"`
	Lines       []InvoiceLine `json:"lines"`
	Discount    float64       `json:"discount"`
	Notes       string        `json:"notes,omitempty"`
	Totals      InvoiceTotals `json:"totals"`
	Paid        float64       `json:"paid"`
	PreviousDue float64       `json:"previousDue"`
	CurrentDue  float64       `json:"currentDue"`
	Status      string        `json:"status"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// InvoiceLineInput is one requested line. Rate defaults to the product's
// current price when unset.
type InvoiceLineInput struct {
	ProductID   int          `json:"productId"`
	Quantity    types.Number `json:"quantity"`
	Rate        types.Number `json:"rate,omitempty"`
	Description string       `json:"description,omitempty"`
}

// InvoiceInput posts a sale. A nil CustomerID is an anonymous sale and
// must be fully paid at the point of sale.
type InvoiceInput struct {
	Date       string             `json:"date,omitempty"`
	CustomerID *int               `json:"customerId"`
	Lines      []InvoiceLineInput `json:"lines"`
	Discount   types.Number       `json:"discount,omitempty"`
	Paid       types.Number       `json:"paid,omitempty"`
	Notes      string             `json:"notes,omitempty"`
}

// PostInvoice posts a sale as a single logical transaction. All validation
// happens before the first mutation: on any error the ledger is untouched.
//
// Stock is decremented without a sufficiency check; negative stock is a
// deliberate policy of the business, not an oversight.
func (s *Store) PostInvoice(in InvoiceInput) (*Invoice, error) {
	date, err := s.resolveDate(in.Date)
	if err != nil {
		return nil, err
	}

	custIdx := -1
	previousDue := 0.0
	if in.CustomerID != nil {
		custIdx = s.data.customerIndex(*in.CustomerID)
		if custIdx < 0 {
			return nil, apperror.NewNotFound("customer", *in.CustomerID)
		}
		previousDue = s.data.Customers[custIdx].Outstanding
	}

	if len(in.Lines) == 0 {
		return nil, apperror.NewValidation("at least one line item is required")
	}

	lines := make([]InvoiceLine, 0, len(in.Lines))
	for idx, ln := range in.Lines {
		pi := s.data.productIndex(ln.ProductID)
		if pi < 0 {
			return nil, apperror.NewNotFound("product", ln.ProductID)
		}
		prod := s.data.Products[pi]

		qty := ln.Quantity.Value()
		if !ln.Quantity.IsSet() || !types.IsFinite(qty) || qty <= 0 {
			return nil, apperror.NewValidation("quantity must be > 0").
				WithDetail("line", idx+1)
		}
		rate := ln.Rate.Or(prod.Price)
		if !types.IsFinite(rate) || rate < 0 {
			return nil, apperror.NewValidation("rate must be >= 0").
				WithDetail("line", idx+1)
		}

		lines = append(lines, InvoiceLine{
			SN:          idx + 1,
			ProductID:   prod.ID,
			Unit:        prod.Unit,
			Description: trimOpt(ln.Description),
			Quantity:    qty,
			Rate:        rate,
			LineTotal:   types.Ceil2(qty * rate),
		})
	}

	subtotal := 0.0
	for _, l := range lines {
		subtotal += l.LineTotal
	}
	subtotal = types.Ceil2(subtotal)

	discount, err := numberField(in.Discount, "discount", 0)
	if err != nil {
		return nil, err
	}
	if discount < 0 {
		return nil, apperror.NewValidation("discount must be a non-negative number")
	}
	discount = types.Ceil2(discount)
	if discount > subtotal {
		return nil, apperror.NewValidation("discount cannot exceed subtotal")
	}
	net := types.Ceil2(subtotal - discount)

	paid, err := numberField(in.Paid, "paid", 0)
	if err != nil {
		return nil, err
	}
	if paid < 0 {
		return nil, apperror.NewValidation("paid must be a non-negative number")
	}
	paid = types.Ceil2(paid)

	var currentDue float64
	if in.CustomerID == nil {
		// Walk-in sales settle in full at the counter; there is no account
		// to carry a balance on.
		if paid != net {
			return nil, apperror.NewPolicy("walk-in sale must be fully paid")
		}
		previousDue, currentDue = 0, 0
	} else {
		if paid > previousDue+net {
			return nil, apperror.NewValidation("paid cannot exceed previous due plus net bill")
		}
		invoiceDue := types.Ceil2(net - paid)
		if invoiceDue < 0 {
			invoiceDue = 0
		}
		currentDue = types.Ceil2(previousDue + invoiceDue)
	}

	now := s.now()
	inv := Invoice{
		ID:          s.newID(),
		No:          s.data.InvoiceSeq,
		Date:        date,
		Lines:       lines,
		Discount:    discount,
		Notes:       trimOpt(in.Notes),
		Totals:      InvoiceTotals{Subtotal: subtotal, Net: net},
		Paid:        paid,
		PreviousDue: previousDue,
		CurrentDue:  currentDue,
		Status:      StatusPosted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.CustomerID != nil {
		cid := *in.CustomerID
		inv.CustomerID = &cid
	}

	// Commit point. Everything above was pure validation and computation.
	s.data.InvoiceSeq++
	s.data.Invoices = append(s.data.Invoices, inv)
	for _, l := range lines {
		pi := s.data.productIndex(l.ProductID)
		s.data.Products[pi].Stock -= l.Quantity
		s.data.Products[pi].UpdatedAt = now
	}
	if custIdx >= 0 {
		s.data.Customers[custIdx].Outstanding = currentDue
		s.data.Customers[custIdx].UpdatedAt = now
	}

	return &inv, nil
}
