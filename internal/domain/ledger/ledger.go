// Package ledger holds the canonical in-memory business state for one
// branch: products, customers, purchases, invoices and the invoice
// sequence. Every mutation either commits a fully consistent change or
// returns an error with no partial state observable.
package ledger

// Ledger is the business payload embedded in a document.
type Ledger struct {
	Products   []Product  `json:"products"`
	Customers  []Customer `json:"customers"`
	Purchases  []Purchase `json:"purchases"`
	Invoices   []Invoice  `json:"invoices"`
	InvoiceSeq int        `json:"invoiceSeq"`
}

// New returns an empty ledger with the invoice sequence at 1.
func New() Ledger {
	return Ledger{
		Products:   []Product{},
		Customers:  []Customer{},
		Purchases:  []Purchase{},
		Invoices:   []Invoice{},
		InvoiceSeq: 1,
	}
}

// Normalize backfills collections and defaults that older files may lack.
// It is applied once at load time; nothing else in the package tolerates a
// partially-shaped ledger.
func (l *Ledger) Normalize() {
	if l.Products == nil {
		l.Products = []Product{}
	}
	if l.Customers == nil {
		l.Customers = []Customer{}
	}
	if l.Purchases == nil {
		l.Purchases = []Purchase{}
	}
	if l.Invoices == nil {
		l.Invoices = []Invoice{}
	}
	if l.InvoiceSeq < 1 {
		l.InvoiceSeq = 1
	}
}

// productIndex returns the position of the product with the given id,
// or -1 when absent.
func (l *Ledger) productIndex(id int) int {
	for i := range l.Products {
		if l.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// customerIndex returns the position of the customer with the given id,
// or -1 when absent.
func (l *Ledger) customerIndex(id int) int {
	for i := range l.Customers {
		if l.Customers[i].ID == id {
			return i
		}
	}
	return -1
}
