package ledger

import (
	"testing"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/types"
)

func TestPostPurchase(t *testing.T) {
	s, _ := testStore()
	mustAddProduct(t, s, ProductInput{ID: 1, NameBn: "x", Unit: "kg", Stock: types.N(4)})

	p, err := s.PostPurchase(PurchaseInput{ProductID: 1, Quantity: types.N(6), Notes: " ট্রাকে এসেছে "})
	if err != nil {
		t.Fatal(err)
	}
	if p.ID == "" {
		t.Error("purchase must get a generated id")
	}
	if p.Unit != "kg" {
		t.Errorf("Unit = %q, must snapshot the product unit", p.Unit)
	}
	if p.Notes != "ট্রাকে এসেছে" {
		t.Errorf("Notes = %q, must be trimmed", p.Notes)
	}
	if p.Date != "2025-01-02T08:00:00.000Z" {
		t.Errorf("blank date must default to now, got %q", p.Date)
	}

	got, _ := s.GetProduct(1)
	if got.Stock != 10 {
		t.Errorf("stock = %v, want 10", got.Stock)
	}
}

func TestPostPurchaseExplicitDate(t *testing.T) {
	s, _ := testStore()
	mustAddProduct(t, s, ProductInput{ID: 1, NameBn: "x"})

	p, err := s.PostPurchase(PurchaseInput{ProductID: 1, Quantity: types.N(1), Date: "2025-03-10"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Date != "2025-03-10T00:00:00.000Z" {
		t.Errorf("Date = %q", p.Date)
	}
}

func TestPostPurchaseValidation(t *testing.T) {
	s, _ := testStore()
	mustAddProduct(t, s, ProductInput{ID: 1, NameBn: "x", Stock: types.N(3)})

	tests := []struct {
		name string
		in   PurchaseInput
		code string
	}{
		{"unknown product", PurchaseInput{ProductID: 2, Quantity: types.N(1)}, apperror.CodeNotFound},
		{"zero quantity", PurchaseInput{ProductID: 1, Quantity: types.N(0)}, apperror.CodeValidation},
		{"negative quantity", PurchaseInput{ProductID: 1, Quantity: types.N(-2)}, apperror.CodeValidation},
		{"missing quantity", PurchaseInput{ProductID: 1}, apperror.CodeValidation},
		{"bad date", PurchaseInput{ProductID: 1, Quantity: types.N(1), Date: "gestern"}, apperror.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.PostPurchase(tt.in)
			if !apperror.HasCode(err, tt.code) {
				t.Errorf("got %v, want code %s", err, tt.code)
			}
		})
	}

	if len(s.Data().Purchases) != 0 {
		t.Error("failed posts must not append")
	}
	got, _ := s.GetProduct(1)
	if got.Stock != 3 {
		t.Error("failed posts must not touch stock")
	}
}

func TestListProductPurchases(t *testing.T) {
	s, _ := testStore()
	mustAddProduct(t, s, ProductInput{ID: 1, NameBn: "x"})
	mustAddProduct(t, s, ProductInput{ID: 2, NameBn: "y"})

	for _, qty := range []float64{1, 2, 3} {
		if _, err := s.PostPurchase(PurchaseInput{ProductID: 1, Quantity: types.N(qty)}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.PostPurchase(PurchaseInput{ProductID: 2, Quantity: types.N(9)}); err != nil {
		t.Fatal(err)
	}

	got := s.ListProductPurchases(1)
	if len(got) != 3 {
		t.Fatalf("got %d purchases", len(got))
	}
	for i, want := range []float64{1, 2, 3} {
		if got[i].Quantity != want {
			t.Errorf("purchase %d quantity = %v, want %v (posting order)", i, got[i].Quantity, want)
		}
	}
}
