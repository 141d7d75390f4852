package main

import (
	"github.com/spf13/cobra"

	"ahbsales/internal/core/types"
	"ahbsales/internal/domain/ledger"
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase",
	Short: "Record stock-in events",
}

var purchaseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Post a purchase and increase the product's stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		qty, err := types.ParseNumber(flagPurchaseQty)
		if err != nil {
			return err
		}

		p, err := a.store().PostPurchase(ledger.PurchaseInput{
			Date:      flagPurchaseDate,
			ProductID: flagPurchaseProduct,
			Quantity:  qty,
			Notes:     flagPurchaseNotes,
		})
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}
		return printJSON(p)
	},
}

var purchaseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a product's purchase history in posting order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return printJSON(a.store().ListProductPurchases(flagPurchaseProduct))
	},
}

var (
	flagPurchaseProduct int
	flagPurchaseQty     string
	flagPurchaseDate    string
	flagPurchaseNotes   string
)

func init() {
	for _, c := range []*cobra.Command{purchaseAddCmd, purchaseListCmd} {
		c.Flags().IntVar(&flagPurchaseProduct, "product", 0, "product id")
		_ = c.MarkFlagRequired("product")
	}
	purchaseAddCmd.Flags().StringVar(&flagPurchaseQty, "quantity", "", "quantity received (> 0)")
	purchaseAddCmd.Flags().StringVar(&flagPurchaseDate, "date", "", "purchase date (defaults to now)")
	purchaseAddCmd.Flags().StringVar(&flagPurchaseNotes, "notes", "", "free-text notes")
	_ = purchaseAddCmd.MarkFlagRequired("quantity")

	purchaseCmd.AddCommand(purchaseAddCmd, purchaseListCmd)
}
