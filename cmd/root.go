package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertex-gestao/prestacao/internal/config"
	"github.com/vertex-gestao/prestacao/internal/extract"
	"github.com/vertex-gestao/prestacao/internal/store"
	"github.com/vertex-gestao/prestacao/pkg/anthropic"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "prestacao",
	Short: "Expense reimbursement management pipeline",
	Long:  "Extracts structured data from invoices, quotation proposals and grant terms via Claude, reconciles funded-person records, and tracks eligibility.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newExtractor builds the extraction pipeline. The client is constructed
// here, once per invocation, from the configured credential.
func newExtractor() *extract.Extractor {
	client := anthropic.NewClient(cfg.Anthropic.Key)
	client = anthropic.NewRateLimited(client, cfg.Extract.RequestsPerMinute)

	return extract.New(client, extract.Opts{
		Model:          cfg.Anthropic.Model,
		MaxTokens:      cfg.Anthropic.MaxTokens,
		BaseRetryDelay: time.Duration(cfg.Extract.RetryBaseDelaySecs) * time.Second,
	})
}

func openStore() (store.Store, error) {
	return store.Open(cfg.Store)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
