package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/types"
	"ahbsales/internal/domain/ledger"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Post and inspect sales invoices",
}

var invoicePostCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a sales invoice",
	Long: `Post a sales invoice as one transaction.

Each --line takes the form "productId:quantity" or "productId:quantity:rate";
when the rate is omitted the product's current price is used. Omit --customer
for a walk-in sale, which must be fully paid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		lines := make([]ledger.InvoiceLineInput, 0, len(flagInvoiceLines))
		for _, raw := range flagInvoiceLines {
			ln, err := parseLineFlag(raw)
			if err != nil {
				return err
			}
			lines = append(lines, ln)
		}

		discount, err := types.ParseNumber(flagInvoiceDiscount)
		if err != nil {
			return err
		}
		paid, err := types.ParseNumber(flagInvoicePaid)
		if err != nil {
			return err
		}

		in := ledger.InvoiceInput{
			Date:     flagInvoiceDate,
			Lines:    lines,
			Discount: discount,
			Paid:     paid,
			Notes:    flagInvoiceNotes,
		}
		if cmd.Flags().Changed("customer") {
			in.CustomerID = &flagInvoiceCustomer
		}

		inv, err := a.store().PostInvoice(in)
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}

		for _, l := range inv.Lines {
			if p, err := a.store().GetProduct(l.ProductID); err == nil && p.Stock < 0 {
				a.log.Warnw("stock went negative", "productId", p.ID, "stock", p.Stock)
			}
		}
		return printJSON(inv)
	},
}

var invoiceSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "List a product's sold lines in posting order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return printJSON(a.store().ListProductSales(flagInvoiceProduct))
	},
}

// parseLineFlag parses "productId:quantity[:rate]".
func parseLineFlag(raw string) (ledger.InvoiceLineInput, error) {
	bad := func() (ledger.InvoiceLineInput, error) {
		return ledger.InvoiceLineInput{}, apperror.NewValidation(
			"line must be productId:quantity or productId:quantity:rate").WithDetail("line", raw)
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return bad()
	}
	productID, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return bad()
	}
	qty, err := types.ParseNumber(parts[1])
	if err != nil {
		return bad()
	}
	ln := ledger.InvoiceLineInput{ProductID: productID, Quantity: qty}
	if len(parts) == 3 {
		rate, err := types.ParseNumber(parts[2])
		if err != nil {
			return bad()
		}
		ln.Rate = rate
	}
	return ln, nil
}

var (
	flagInvoiceCustomer int
	flagInvoiceLines    []string
	flagInvoiceDiscount string
	flagInvoicePaid     string
	flagInvoiceDate     string
	flagInvoiceNotes    string
	flagInvoiceProduct  int
)

func init() {
	f := invoicePostCmd.Flags()
	f.IntVar(&flagInvoiceCustomer, "customer", 0, "customer id (omit for a walk-in sale)")
	f.StringArrayVar(&flagInvoiceLines, "line", nil, "line item as productId:quantity[:rate] (repeatable)")
	f.StringVar(&flagInvoiceDiscount, "discount", "", "invoice-level discount")
	f.StringVar(&flagInvoicePaid, "paid", "", "amount paid at posting")
	f.StringVar(&flagInvoiceDate, "date", "", "invoice date (defaults to now)")
	f.StringVar(&flagInvoiceNotes, "notes", "", "free-text notes")
	_ = invoicePostCmd.MarkFlagRequired("line")

	invoiceSalesCmd.Flags().IntVar(&flagInvoiceProduct, "product", 0, "product id")
	_ = invoiceSalesCmd.MarkFlagRequired("product")

	invoiceCmd.AddCommand(invoicePostCmd, invoiceSalesCmd)
}
