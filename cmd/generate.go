package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:   "generate <purchase-id>",
	Short: "Generate the object description and justification for a stored purchase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		purchase, err := st.GetPurchase(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		narrative := newExtractor().GenerateNarrative(cmd.Context(), purchase)
		if purchase.Objeto == "" {
			purchase.Objeto = narrative.Objeto
		}
		if purchase.Justificativa == "" {
			purchase.Justificativa = narrative.Justificativa
		}

		updated, err := st.UpdatePurchase(cmd.Context(), *purchase)
		if err != nil {
			return err
		}

		zap.L().Info("narrative generated", zap.String("purchase", updated.ID))
		return printJSON(narrative)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
