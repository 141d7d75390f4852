// Package main is the command-line shell around the ledger core. It plays
// the file-manager role: open the encrypted document, run one business
// operation, save. All business rules live in the internal packages.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ahbsales/internal/config"
	"ahbsales/internal/container"
	"ahbsales/internal/core/apperror"
	"ahbsales/internal/core/clock"
	"ahbsales/internal/domain/ledger"
	"ahbsales/internal/infrastructure/filestore"
	"ahbsales/pkg/logger"
)

var version = "1.0.0"

var (
	flagFile        string
	flagInsecureKey bool
)

var rootCmd = &cobra.Command{
	Use:     "ahbsales",
	Short:   "AHB Sales - encrypted single-file bookkeeping for a small retail branch",
	Version: version,
	Long: `ahbsales keeps one branch's products, customers, purchases and invoices
in a single AES-256-GCM encrypted .ahbs document.

The document key comes from the environment (or a .env file):
  AHB_KEY_HEX     64-hex-character key, or
  AHB_PASSPHRASE  passphrase the key is derived from`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// app bundles the per-invocation collaborators.
type app struct {
	sess *filestore.Session
	log  *logger.Logger
}

// newApp resolves the key, builds the codec and opens the --file document.
func newApp() (*app, error) {
	cfg, err := config.Load(config.Options{AllowInsecureZeroKey: flagInsecureKey})
	if err != nil {
		return nil, err
	}
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, OutputPaths: []string{"stderr"}})
	if err != nil {
		return nil, err
	}
	if flagFile == "" {
		return nil, apperror.NewValidation("--file is required")
	}

	sess := filestore.NewSession(container.NewCodec(cfg.Key), clock.System(), log)
	if err := sess.Open(flagFile); err != nil {
		return nil, err
	}
	return &app{sess: sess, log: log.WithComponent("cli")}, nil
}

func (a *app) store() *ledger.Store {
	return ledger.NewStore(a.sess.Ledger())
}

// commit marks the session dirty and saves in one step; CLI invocations
// are single-operation, so there is nothing to batch.
func (a *app) commit() error {
	a.sess.MarkDirty()
	return a.sess.Save()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func touchRecent(path string) {
	sp, err := filestore.SettingsPath()
	if err != nil {
		return
	}
	s := filestore.LoadSettings(sp)
	s.TouchRecent(path)
	_ = filestore.SaveSettings(sp, s)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "path to the .ahbs document")
	rootCmd.PersistentFlags().BoolVar(&flagInsecureKey, "insecure-zero-key", false,
		"run without a key source using the all-zero key (development only)")
	_ = rootCmd.PersistentFlags().MarkHidden("insecure-zero-key")

	rootCmd.AddCommand(initCmd, infoCmd)
	rootCmd.AddCommand(productCmd, customerCmd, purchaseCmd, invoiceCmd, reportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if appErr, ok := apperror.AsAppError(err); ok {
			fmt.Fprintf(os.Stderr, "error: %s\n", appErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
