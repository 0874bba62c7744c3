package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vertex-gestao/prestacao/internal/termo"
)

var termoCmd = &cobra.Command{
	Use:   "termo <file>",
	Short: "Heuristically parse a grant-term text for validity date and ceiling value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read termo: %w", err)
		}
		return printJSON(termo.Analyze(string(text)))
	},
}

func init() {
	rootCmd.AddCommand(termoCmd)
}
