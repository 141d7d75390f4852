package main

import (
	"github.com/spf13/cobra"

	"ahbsales/internal/core/types"
	"ahbsales/internal/domain/ledger"
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		price, err := types.ParseNumber(flagProductPrice)
		if err != nil {
			return err
		}
		stock, err := types.ParseNumber(flagProductStock)
		if err != nil {
			return err
		}

		active := !flagProductInactive
		p, err := a.store().AddProduct(ledger.ProductInput{
			ID:          flagProductID,
			NameBn:      flagProductNameBn,
			NameEn:      flagProductNameEn,
			Description: flagProductDesc,
			Unit:        flagProductUnit,
			Price:       price,
			Stock:       stock,
			Active:      &active,
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

var productUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields of an existing product",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		var patch ledger.ProductPatch
		flags := cmd.Flags()
		if flags.Changed("name-bn") {
			patch.NameBn = &flagProductNameBn
		}
		if flags.Changed("name-en") {
			patch.NameEn = &flagProductNameEn
		}
		if flags.Changed("description") {
			patch.Description = &flagProductDesc
		}
		if flags.Changed("unit") {
			patch.Unit = &flagProductUnit
		}
		if flags.Changed("price") {
			price, err := types.ParseNumber(flagProductPrice)
			if err != nil {
				return err
			}
			patch.Price = &price
		}
		if flags.Changed("stock") {
			stock, err := types.ParseNumber(flagProductStock)
			if err != nil {
				return err
			}
			patch.Stock = &stock
		}
		if flags.Changed("inactive") {
			active := !flagProductInactive
			patch.Active = &active
		}

		p, err := a.store().UpdateProduct(flagProductID, patch)
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}
		return printJSON(p)
	},
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products sorted by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		activeOnly, _ := cmd.Flags().GetBool("active-only")
		return printJSON(a.store().ListProducts(activeOnly))
	},
}

var (
	flagProductID       int
	flagProductNameBn   string
	flagProductNameEn   string
	flagProductDesc     string
	flagProductUnit     string
	flagProductPrice    string
	flagProductStock    string
	flagProductInactive bool
)

func init() {
	for _, c := range []*cobra.Command{productAddCmd, productUpdateCmd} {
		c.Flags().IntVar(&flagProductID, "id", 0, "product id (1..1000)")
		c.Flags().StringVar(&flagProductNameBn, "name-bn", "", "primary (Bengali) name")
		c.Flags().StringVar(&flagProductNameEn, "name-en", "", "secondary (English) name")
		c.Flags().StringVar(&flagProductDesc, "description", "", "free-text description")
		c.Flags().StringVar(&flagProductUnit, "unit", "", "unit label (defaults to \"unit\")")
		c.Flags().StringVar(&flagProductPrice, "price", "", "unit price")
		c.Flags().StringVar(&flagProductStock, "stock", "", "stock level")
		c.Flags().BoolVar(&flagProductInactive, "inactive", false, "mark the product inactive")
		_ = c.MarkFlagRequired("id")
	}
	productAddCmd.MarkFlagsRequiredTogether("id", "name-bn")

	productListCmd.Flags().Bool("active-only", false, "list active products only")

	productCmd.AddCommand(productAddCmd, productUpdateCmd, productListCmd)
}
