package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vertex-gestao/prestacao/internal/model"
)

var extractImageURL string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run extraction flows on document text files",
}

var extractDocumentCmd = &cobra.Command{
	Use:   "document <file>",
	Short: "Extract purchase metadata from a single document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		data := newExtractor().ExtractDocument(cmd.Context(), string(text), extractImageURL)
		return printJSON(data)
	},
}

var extractProposalsCmd = &cobra.Command{
	Use:   "proposals <file>...",
	Short: "Extract quotation proposals from one or more documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor := newExtractor()

		var mu sync.Mutex
		all := []model.Proposal{}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Extract.BatchConcurrency)

		for _, path := range args {
			g.Go(func() error {
				text, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read document %s: %w", path, err)
				}

				proposals := extractor.ExtractProposals(ctx, string(text), "")
				zap.L().Info("document processed",
					zap.String("file", path),
					zap.Int("proposals", len(proposals)),
				)

				mu.Lock()
				all = append(all, proposals...)
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
		return printJSON(all)
	},
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	extractDocumentCmd.Flags().StringVar(&extractImageURL, "image", "", "optional image URL sent alongside the document text")
	extractCmd.AddCommand(extractDocumentCmd)
	extractCmd.AddCommand(extractProposalsCmd)
	rootCmd.AddCommand(extractCmd)
}
