package ledger

import (
	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/types"
)

// Purchase is a stock-in event. Purchases are append-only: once posted,
// never mutated or deleted.
type Purchase struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	ProductID int     `json:"productId"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// PurchaseInput posts a stock-in event. Date defaults to now when blank.
type PurchaseInput struct {
	Date      string       `json:"date,omitempty"`
	ProductID int          `json:"productId"`
	Quantity  types.Number `json:"quantity"`
	Notes     string       `json:"notes,omitempty"`
}

// PostPurchase validates the input, appends a purchase record and
// increases the product's stock. This is the only stock-increasing
// operation in the system.
func (s *Store) PostPurchase(in PurchaseInput) (*Purchase, error) {
	date, err := s.resolveDate(in.Date)
	if err != nil {
		return nil, err
	}
	i := s.data.productIndex(in.ProductID)
	if i < 0 {
		return nil, apperror.NewNotFound("product", in.ProductID)
	}
	qty := in.Quantity.Value()
	if !in.Quantity.IsSet() || !types.IsFinite(qty) || qty <= 0 {
		return nil, apperror.NewValidation("quantity must be > 0")
	}

	now := s.now()
	p := Purchase{
		ID:        s.newID(),
		Date:      date,
		ProductID: s.data.Products[i].ID,
		Unit:      s.data.Products[i].Unit,
		Quantity:  qty,
		Notes:     trimOpt(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.data.Purchases = append(s.data.Purchases, p)
	s.data.Products[i].Stock += qty
	s.data.Products[i].UpdatedAt = now
	return &p, nil
}

// ListProductPurchases returns the purchase history of one product in
// posting order.
func (s *Store) ListProductPurchases(productID int) []Purchase {
	out := []Purchase{}
	for _, p := range s.data.Purchases {
		if p.ProductID == productID {
			out = append(out, p)
		}
	}
	return out
}
