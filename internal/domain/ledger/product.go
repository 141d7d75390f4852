package ledger

import (
	"sort"
	"strings"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/types"
)

// Product id range is enforced at creation only; the bound matches the
// fixed id space the business assigns to its catalog.
const (
	MinProductID = 1
	MaxProductID = 1000
)

// DefaultUnit is used when a product is created with a blank unit label.
const DefaultUnit = "unit"

// Product is a catalog item. Products are never deleted; Active models
// deactivation.
type Product struct {
	ID          int     `json:"id"`
	NameBn      string  `json:"nameBn"`
	NameEn      string  `json:"nameEn,omitempty"`
	Description string  `json:"description,omitempty"`
	Unit        string  `json:"unit"`
	Price       float64 `json:"price"`
	Stock       float64 `json:"stock"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ProductInput creates a product. Price and Stock accept number-or-string
// input and default to 0; Active defaults to true.
type ProductInput struct {
	ID          int          `json:"id"`
	NameBn      string       `json:"nameBn"`
	NameEn      string       `json:"nameEn,omitempty"`
	Description string       `json:"description,omitempty"`
	Unit        string       `json:"unit,omitempty"`
	Price       types.Number `json:"price,omitempty"`
	Stock       types.Number `json:"stock,omitempty"`
	Active      *bool        `json:"active,omitempty"`
}

// ProductPatch updates a product. A present field replaces the stored
// value; an absent field retains it. ID and CreatedAt are immutable.
type ProductPatch struct {
	NameBn      *string       `json:"nameBn,omitempty"`
	NameEn      *string       `json:"nameEn,omitempty"`
	Description *string       `json:"description,omitempty"`
	Unit        *string       `json:"unit,omitempty"`
	Price       *types.Number `json:"price,omitempty"`
	Stock       *types.Number `json:"stock,omitempty"`
	Active      *bool         `json:"active,omitempty"`
}

// AddProduct validates and appends a new product.
func (s *Store) AddProduct(in ProductInput) (*Product, error) {
	if in.ID < MinProductID || in.ID > MaxProductID {
		return nil, apperror.NewValidation("product id must be an integer between 1 and 1000").
			WithDetail("id", in.ID)
	}
	name := strings.TrimSpace(in.NameBn)
	if name == "" {
		return nil, apperror.NewValidation("product name (Bengali) is required")
	}
	if s.data.productIndex(in.ID) >= 0 {
		return nil, apperror.NewDuplicate("product", in.ID)
	}
	price, err := numberField(in.Price, "price", 0)
	if err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, apperror.NewValidation("price must be non-negative")
	}
	stock, err := numberField(in.Stock, "stock", 0)
	if err != nil {
		return nil, err
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = DefaultUnit
	}

	now := s.now()
	p := Product{
		ID:          in.ID,
		NameBn:      name,
		NameEn:      trimOpt(in.NameEn),
		Description: trimOpt(in.Description),
		Unit:        unit,
		Price:       price,
		Stock:       stock,
		Active:      boolOr(in.Active, true),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.data.Products = append(s.data.Products, p)
	return &p, nil
}

// UpdateProduct applies a patch. Validation completes before any field is
// written; the updated timestamp refreshes unconditionally.
func (s *Store) UpdateProduct(productID int, patch ProductPatch) (*Product, error) {
	i := s.data.productIndex(productID)
	if i < 0 {
		return nil, apperror.NewNotFound("product", productID)
	}

	p := s.data.Products[i]
	if patch.NameBn != nil {
		name := strings.TrimSpace(*patch.NameBn)
		if name == "" {
			return nil, apperror.NewValidation("product name (Bengali) is required")
		}
		p.NameBn = name
	}
	if patch.NameEn != nil {
		p.NameEn = trimOpt(*patch.NameEn)
	}
	if patch.Description != nil {
		p.Description = trimOpt(*patch.Description)
	}
	if patch.Unit != nil {
		unit := strings.TrimSpace(*patch.Unit)
		if unit == "" {
			unit = DefaultUnit
		}
		p.Unit = unit
	}
	if patch.Price != nil {
		price, err := numberField(*patch.Price, "price", 0)
		if err != nil {
			return nil, err
		}
		if price < 0 {
			return nil, apperror.NewValidation("price must be non-negative")
		}
		p.Price = price
	}
	if patch.Stock != nil {
		stock, err := numberField(*patch.Stock, "stock", 0)
		if err != nil {
			return nil, err
		}
		p.Stock = stock
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	p.UpdatedAt = s.now()

	s.data.Products[i] = p
	return &p, nil
}

// GetProduct returns a copy of the product with the given id.
func (s *Store) GetProduct(productID int) (*Product, error) {
	i := s.data.productIndex(productID)
	if i < 0 {
		return nil, apperror.NewNotFound("product", productID)
	}
	p := s.data.Products[i]
	return &p, nil
}

// ListProducts returns products sorted by id, optionally active only.
func (s *Store) ListProducts(activeOnly bool) []Product {
	out := make([]Product, 0, len(s.data.Products))
	for _, p := range s.data.Products {
		if activeOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}
