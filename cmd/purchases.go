package main

import (
	"github.com/spf13/cobra"
)

var purchasesCmd = &cobra.Command{
	Use:   "purchases",
	Short: "Inspect stored purchase records",
}

var purchasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored purchases",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		purchases, err := st.ListPurchases(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(purchases)
	},
}

var purchasesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a stored purchase",
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
		return printJSON(purchase)
	},
}

func init() {
	purchasesCmd.AddCommand(purchasesListCmd)
	purchasesCmd.AddCommand(purchasesGetCmd)
	rootCmd.AddCommand(purchasesCmd)
}
