// Package reports builds the money reports over the ledger's invoice
// history. Every function here is a pure read: no report mutates state,
// and an empty history yields empty rows with zeroed totals.
package reports

// --- Customer range report ---

// CustomerRangeRow is one invoice within the requested date range.
type CustomerRangeRow struct {
	// Date in DD-MM-YYYY display form
	Date string `json:"date"`

	// CustomerID is 0 for walk-in sales
	CustomerID   int    `json:"customerId"`
	CustomerName string `json:"customerName,omitempty"`

	NetBill     float64 `json:"netBill"`
	Paid        float64 `json:"paid"`
	Due         float64 `json:"due"`
	PreviousDue float64 `json:"previousDue"`
	TotalDue    float64 `json:"totalDue"`
}

// CustomerRangeTotals sums the row columns across the report.
type CustomerRangeTotals struct {
	NetBill float64 `json:"netBill"`
	Paid    float64 `json:"paid"`
	Due     float64 `json:"due"`
}

// CustomerRangeReport lists one row per invoice, newest date first.
type CustomerRangeReport struct {
	Rows   []CustomerRangeRow  `json:"rows"`
	Totals CustomerRangeTotals `json:"totals"`
}

// --- Day-wise report ---

// DayWiseRow aggregates one customer's invoices within a single day.
type DayWiseRow struct {
	CustomerID   int    `json:"customerId"`
	CustomerName string `json:"customerName"`

	Bill        float64 `json:"bill"`
	Discount    float64 `json:"discount"`
	NetBill     float64 `json:"netBill"`
	Paid        float64 `json:"paid"`
	Due         float64 `json:"due"`
	PreviousDue float64 `json:"previousDue"`
	TotalDue    float64 `json:"totalDue"`
}

// DayWiseTotals sums the row columns within a day.
type DayWiseTotals struct {
	Bill     float64 `json:"bill"`
	Discount float64 `json:"discount"`
	NetBill  float64 `json:"netBill"`
	Paid     float64 `json:"paid"`
	Due      float64 `json:"due"`
}

// DayWiseDay is one calendar day's rows and totals.
type DayWiseDay struct {
	// Date in DD-MM-YYYY display form
	Date   string        `json:"date"`
	Rows   []DayWiseRow  `json:"rows"`
	Totals DayWiseTotals `json:"totals"`
}

// DayWiseReport groups invoices by day, newest day first.
type DayWiseReport struct {
	Days []DayWiseDay `json:"days"`
}

// --- Daily payment report ---

// DailyPaymentHeader carries the report date in display form.
type DailyPaymentHeader struct {
	Date string `json:"date"`
}

// DailyPaymentRow is one invoice with a nonzero payment on the report day.
type DailyPaymentRow struct {
	InvoiceNo    int     `json:"invoiceNo"`
	CustomerID   int     `json:"customerId"`
	CustomerName string  `json:"customerName,omitempty"`
	Paid         float64 `json:"paid"`
}

// DailyPaymentTotals sums payments across the report.
type DailyPaymentTotals struct {
	Paid float64 `json:"paid"`
}

// DailyPaymentReport lists payments received on one calendar day.
type DailyPaymentReport struct {
	Header DailyPaymentHeader `json:"header"`
	Rows   []DailyPaymentRow  `json:"rows"`
	Totals DailyPaymentTotals `json:"totals"`
}
