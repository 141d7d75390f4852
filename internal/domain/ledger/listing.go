package ledger

// ProductSale is a flattened invoice line for one product's sales history.
type ProductSale struct {
	InvoiceID  string  `json:"invoiceId"`
	InvoiceNo  int     `json:"invoiceNo"`
	Date       string  `json:"date"`
	CustomerID *int    `json:"customerId"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	Rate       float64 `json:"rate"`
	LineTotal  float64 `json:"lineTotal"`
}

// ListInvoicesByCustomer returns the invoices of one customer in posting
// order. Anonymous invoices never match.
func (s *Store) ListInvoicesByCustomer(customerID int) []Invoice {
	out := []Invoice{}
	for _, inv := range s.data.Invoices {
		if inv.CustomerID != nil && *inv.CustomerID == customerID {
			out = append(out, inv)
		}
	}
	return out
}

// ListProductSales flattens invoice lines referencing the product, in
// posting order.
func (s *Store) ListProductSales(productID int) []ProductSale {
	out := []ProductSale{}
	for _, inv := range s.data.Invoices {
		for _, ln := range inv.Lines {
			if ln.ProductID != productID {
				continue
			}
			out = append(out, ProductSale{
				InvoiceID:  inv.ID,
				InvoiceNo:  inv.No,
				Date:       inv.Date,
				CustomerID: inv.CustomerID,
				Unit:       ln.Unit,
				Quantity:   ln.Quantity,
				Rate:       ln.Rate,
				LineTotal:  ln.LineTotal,
			})
		}
	}
	return out
}
