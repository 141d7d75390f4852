package main

import (
	"github.com/spf13/cobra"

	"ahbsales/internal/config"
	"ahbsales/internal/container"
	"ahbsales/internal/core/clock"
	"ahbsales/internal/infrastructure/filestore"
	"ahbsales/pkg/logger"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Create a new empty encrypted document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.Options{AllowInsecureZeroKey: flagInsecureKey})
		if err != nil {
			return err
		}
		log, err := logger.New(logger.Config{Level: cfg.LogLevel, OutputPaths: []string{"stderr"}})
		if err != nil {
			return err
		}

		sess := filestore.NewSession(container.NewCodec(cfg.Key), clock.System(), log)
		if err := sess.NewFile(args[0]); err != nil {
			return err
		}
		if branch, _ := cmd.Flags().GetString("branch"); branch != "" {
			sess.Document().Meta.BranchName = branch
			sess.MarkDirty()
			if err := sess.Save(); err != nil {
				return err
			}
		}
		touchRecent(sess.Path())
		return printJSON(map[string]any{"path": sess.Path(), "schemaVersion": container.SchemaVersion})
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show document metadata and record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		doc := a.sess.Document()
		data := a.sess.Ledger()
		return printJSON(map[string]any{
			"path":          a.sess.Path(),
			"schemaVersion": doc.SchemaVersion,
			"meta":          doc.Meta,
			"counts": map[string]int{
				"products":  len(data.Products),
				"customers": len(data.Customers),
				"purchases": len(data.Purchases),
				"invoices":  len(data.Invoices),
			},
			"invoiceSeq": data.InvoiceSeq,
		})
	},
}

func init() {
	initCmd.Flags().String("branch", "", "branch name stored in the document metadata")
}
