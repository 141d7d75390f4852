package main

import (
	"github.com/spf13/cobra"

	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/dates"
	"ahbsales/internal/domain/reports"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Money reports over posted invoices",
}

var reportRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Customer-range report: one row per invoice in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYMD("from", flagReportFrom); err != nil {
			return err
		}
		if err := requireYMD("to", flagReportTo); err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		svc := reports.NewService(a.sess.Ledger())
		return printJSON(svc.CustomerRange(flagReportFrom, flagReportTo))
	},
}

var reportDayWiseCmd = &cobra.Command{
	Use:   "daywise",
	Short: "Day-wise report: per-day customer summaries in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYMD("from", flagReportFrom); err != nil {
			return err
		}
		if err := requireYMD("to", flagReportTo); err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		svc := reports.NewService(a.sess.Ledger())
		return printJSON(svc.DayWise(flagReportFrom, flagReportTo))
	},
}

var reportPaymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Daily payments report: cash collected on one day",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireYMD("date", flagReportDate); err != nil {
			return err
		}
		a, err := newApp()
		if err != nil {
			return err
		}
		svc := reports.NewService(a.sess.Ledger())
		return printJSON(svc.DailyPayments(flagReportDate))
	},
}

func requireYMD(name, v string) error {
	if !dates.IsYMD(v) {
		return apperror.NewValidation("--" + name + " must be a YYYY-MM-DD date")
	}
	return nil
}

var (
	flagReportFrom string
	flagReportTo   string
	flagReportDate string
)

func init() {
	for _, c := range []*cobra.Command{reportRangeCmd, reportDayWiseCmd} {
		c.Flags().StringVar(&flagReportFrom, "from", "", "start day (YYYY-MM-DD, inclusive)")
		c.Flags().StringVar(&flagReportTo, "to", "", "end day (YYYY-MM-DD, inclusive)")
		_ = c.MarkFlagRequired("from")
		_ = c.MarkFlagRequired("to")
	}
	reportPaymentsCmd.Flags().StringVar(&flagReportDate, "date", "", "day (YYYY-MM-DD)")
	_ = reportPaymentsCmd.MarkFlagRequired("date")

	reportCmd.AddCommand(reportRangeCmd, reportDayWiseCmd, reportPaymentsCmd)
}
