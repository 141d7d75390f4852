package reports

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"ahbsales/internal/core/dates"
	"ahbsales/internal/core/types"
	"ahbsales/internal/domain/ledger"
)

// WalkInName labels anonymous sales in report rows. Customer names sort
// with a Bengali collator, matching the application's primary language.
const WalkInName = "Walk-in"

// Service reads one ledger. It never mutates it.
type Service struct {
	data *ledger.Ledger
	coll *collate.Collator
}

// NewService builds a report service over data.
func NewService(data *ledger.Ledger) *Service {
	return &Service{
		data: data,
		coll: collate.New(language.Bengali),
	}
}

// resolveCustomer maps an invoice's customer reference to the report
// sentinel id (0 for walk-in) and display name.
func (s *Service) resolveCustomer(customerID *int) (int, string) {
	if customerID == nil {
		return 0, ""
	}
	for i := range s.data.Customers {
		if s.data.Customers[i].ID == *customerID {
			return *customerID, s.data.Customers[i].NameBn
		}
	}
	return *customerID, ""
}

func invoiceDue(inv ledger.Invoice) float64 {
	due := types.Ceil2(inv.Totals.Net - inv.Paid)
	if due < 0 {
		due = 0
	}
	return due
}

// CustomerRange lists one row per invoice whose calendar date falls within
// [from, to] inclusive. Both bounds are YYYY-MM-DD strings; day membership
// is the zero-padded date prefix compared lexicographically.
func (s *Service) CustomerRange(from, to string) CustomerRangeReport {
	type keyed struct {
		ymd string
		row CustomerRangeRow
	}
	rows := []keyed{}

	for _, inv := range s.data.Invoices {
		ymd := dates.YMD(inv.Date)
		if ymd < from || ymd > to {
			continue
		}
		cid, name := s.resolveCustomer(inv.CustomerID)
		due := invoiceDue(inv)
		rows = append(rows, keyed{
			ymd: ymd,
			row: CustomerRangeRow{
				Date:         dates.DDMMYYYY(inv.Date),
				CustomerID:   cid,
				CustomerName: name,
				NetBill:      inv.Totals.Net,
				Paid:         inv.Paid,
				Due:          due,
				PreviousDue:  inv.PreviousDue,
				TotalDue:     types.Ceil2(inv.PreviousDue + due),
			},
		})
	}

	// Date descending, then customer id ascending, for deterministic order.
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].ymd != rows[b].ymd {
			return rows[a].ymd > rows[b].ymd
		}
		return rows[a].row.CustomerID < rows[b].row.CustomerID
	})

	report := CustomerRangeReport{Rows: make([]CustomerRangeRow, 0, len(rows))}
	var net, paid, due float64
	for _, r := range rows {
		report.Rows = append(report.Rows, r.row)
		net += r.row.NetBill
		paid += r.row.Paid
		due += r.row.Due
	}
	report.Totals = CustomerRangeTotals{
		NetBill: types.Ceil2(net),
		Paid:    types.Ceil2(paid),
		Due:     types.Ceil2(due),
	}
	return report
}

// DayWise groups invoices by calendar day, then by customer within each
// day. The group's previousDue is taken from the invoice with the
// earliest timestamp that day for that customer, not the true balance
// before the day started; this mirrors the historical report exactly.
func (s *Service) DayWise(from, to string) DayWiseReport {
	type group struct {
		row          DayWiseRow
		earliestDate string
	}
	days := map[string]map[int]*group{}

	for _, inv := range s.data.Invoices {
		ymd := dates.YMD(inv.Date)
		if ymd < from || ymd > to {
			continue
		}
		cid, name := s.resolveCustomer(inv.CustomerID)
		if name == "" {
			name = WalkInName
		}

		byCustomer, ok := days[ymd]
		if !ok {
			byCustomer = map[int]*group{}
			days[ymd] = byCustomer
		}
		g, ok := byCustomer[cid]
		if !ok {
			g = &group{
				row:          DayWiseRow{CustomerID: cid, CustomerName: name},
				earliestDate: inv.Date,
			}
			g.row.PreviousDue = inv.PreviousDue
			byCustomer[cid] = g
		}

		g.row.Bill += inv.Totals.Subtotal
		g.row.Discount += inv.Discount
		g.row.NetBill += inv.Totals.Net
		g.row.Paid += inv.Paid
		g.row.Due += invoiceDue(inv)
		if inv.Date < g.earliestDate {
			g.earliestDate = inv.Date
			g.row.PreviousDue = inv.PreviousDue
		}
	}

	ymds := make([]string, 0, len(days))
	for ymd := range days {
		ymds = append(ymds, ymd)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(ymds)))

	report := DayWiseReport{Days: make([]DayWiseDay, 0, len(ymds))}
	for _, ymd := range ymds {
		byCustomer := days[ymd]
		rows := make([]DayWiseRow, 0, len(byCustomer))
		for _, g := range byCustomer {
			r := g.row
			r.Bill = types.Ceil2(r.Bill)
			r.Discount = types.Ceil2(r.Discount)
			r.NetBill = types.Ceil2(r.NetBill)
			r.Paid = types.Ceil2(r.Paid)
			r.Due = types.Ceil2(r.Due)
			r.TotalDue = types.Ceil2(r.PreviousDue + r.Due)
			rows = append(rows, r)
		}
		sort.SliceStable(rows, func(a, b int) bool {
			return s.coll.CompareString(rows[a].CustomerName, rows[b].CustomerName) < 0
		})

		day := DayWiseDay{Date: dates.DDMMYYYY(ymd), Rows: rows}
		for _, r := range rows {
			day.Totals.Bill += r.Bill
			day.Totals.Discount += r.Discount
			day.Totals.NetBill += r.NetBill
			day.Totals.Paid += r.Paid
			day.Totals.Due += r.Due
		}
		day.Totals.Bill = types.Ceil2(day.Totals.Bill)
		day.Totals.Discount = types.Ceil2(day.Totals.Discount)
		day.Totals.NetBill = types.Ceil2(day.Totals.NetBill)
		day.Totals.Paid = types.Ceil2(day.Totals.Paid)
		day.Totals.Due = types.Ceil2(day.Totals.Due)
		report.Days = append(report.Days, day)
	}
	return report
}

// DailyPayments lists invoices on the exact given day with paid > 0.
// Zero-payment invoices are omitted entirely.
func (s *Service) DailyPayments(date string) DailyPaymentReport {
	report := DailyPaymentReport{
		Header: DailyPaymentHeader{Date: dates.DDMMYYYY(date)},
		Rows:   []DailyPaymentRow{},
	}

	for _, inv := range s.data.Invoices {
		if dates.YMD(inv.Date) != date || inv.Paid <= 0 {
			continue
		}
		cid, name := s.resolveCustomer(inv.CustomerID)
		if name == "" {
			name = WalkInName
		}
		report.Rows = append(report.Rows, DailyPaymentRow{
			InvoiceNo:    inv.No,
			CustomerID:   cid,
			CustomerName: name,
			Paid:         inv.Paid,
		})
	}

	sort.SliceStable(report.Rows, func(a, b int) bool {
		return s.coll.CompareString(report.Rows[a].CustomerName, report.Rows[b].CustomerName) < 0
	})

	var paid float64
	for _, r := range report.Rows {
		paid += r.Paid
	}
	report.Totals.Paid = types.Ceil2(paid)
	return report
}
