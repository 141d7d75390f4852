package main

import (
	"github.com/spf13/cobra"

	"ahbsales/internal/core/types"
	"ahbsales/internal/domain/ledger"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		outstanding, err := types.ParseNumber(flagCustomerOutstanding)
		if err != nil {
			return err
		}

		active := !flagCustomerInactive
		c, err := a.store().AddCustomer(ledger.CustomerInput{
			ID:          flagCustomerID,
			NameBn:      flagCustomerNameBn,
			NameEn:      flagCustomerNameEn,
			Address:     flagCustomerAddress,
			Phone:       flagCustomerPhone,
			Outstanding: outstanding,
			Active:      &active,
		})
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}
		return printJSON(c)
	},
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update fields of an existing customer",
	Long: `Update name, address, phone or active flag of a customer.

The outstanding balance cannot be edited here: it changes only as a side
effect of posting invoices.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		var patch ledger.CustomerPatch
		flags := cmd.Flags()
		if flags.Changed("name-bn") {
			patch.NameBn = &flagCustomerNameBn
		}
		if flags.Changed("name-en") {
			patch.NameEn = &flagCustomerNameEn
		}
		if flags.Changed("address") {
			patch.Address = &flagCustomerAddress
		}
		if flags.Changed("phone") {
			patch.Phone = &flagCustomerPhone
		}
		if flags.Changed("inactive") {
			active := !flagCustomerInactive
			patch.Active = &active
		}

		c, err := a.store().UpdateCustomer(flagCustomerID, patch)
		if err != nil {
			return err
		}
		if err := a.commit(); err != nil {
			return err
		}
		return printJSON(c)
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers sorted by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		activeOnly, _ := cmd.Flags().GetBool("active-only")
		return printJSON(a.store().ListCustomers(activeOnly))
	},
}

var customerInvoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List a customer's invoices in posting order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return printJSON(a.store().ListInvoicesByCustomer(flagCustomerID))
	},
}

var (
	flagCustomerID          int
	flagCustomerNameBn      string
	flagCustomerNameEn      string
	flagCustomerAddress     string
	flagCustomerPhone       string
	flagCustomerOutstanding string
	flagCustomerInactive    bool
)

func init() {
	for _, c := range []*cobra.Command{customerAddCmd, customerUpdateCmd, customerInvoicesCmd} {
		c.Flags().IntVar(&flagCustomerID, "id", 0, "customer id (positive integer)")
		_ = c.MarkFlagRequired("id")
	}
	for _, c := range []*cobra.Command{customerAddCmd, customerUpdateCmd} {
		c.Flags().StringVar(&flagCustomerNameBn, "name-bn", "", "primary (Bengali) name")
		c.Flags().StringVar(&flagCustomerNameEn, "name-en", "", "secondary (English) name")
		c.Flags().StringVar(&flagCustomerAddress, "address", "", "postal address")
		c.Flags().StringVar(&flagCustomerPhone, "phone", "", "phone number")
		c.Flags().BoolVar(&flagCustomerInactive, "inactive", false, "mark the customer inactive")
	}
	customerAddCmd.Flags().StringVar(&flagCustomerOutstanding, "outstanding", "",
		"opening outstanding balance (creation only)")

	customerListCmd.Flags().Bool("active-only", false, "list active customers only")

	customerCmd.AddCommand(customerAddCmd, customerUpdateCmd, customerListCmd, customerInvoicesCmd)
}
