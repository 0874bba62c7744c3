package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vertex-gestao/prestacao/internal/bolsista"
	"github.com/vertex-gestao/prestacao/internal/normalize"
	"github.com/vertex-gestao/prestacao/internal/termo"
)

var (
	bolsistaProject   string
	bolsistaNome      string
	bolsistaCPF       string
	bolsistaFuncao    string
	bolsistaValor     float64
	bolsistaValorSet  bool
	bolsistaTermoFile string
	bolsistaEditID    string
	bolsistaFallback  string
)

var bolsistaCmd = &cobra.Command{
	Use:   "bolsista",
	Short: "Manage funded-person records for a project",
}

var bolsistaAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or edit a funded-person record",
	RunE: func(cmd *cobra.Command, args []string) error {
		cpfDigits := normalize.OnlyDigits(bolsistaCPF)
		if !normalize.ValidateCPF(cpfDigits) {
			return fmt.Errorf("CPF inválido: %s", bolsistaCPF)
		}

		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		var upload *bolsista.TermoUpload
		if bolsistaTermoFile != "" {
			text, err := os.ReadFile(bolsistaTermoFile)
			if err != nil {
				return fmt.Errorf("read termo: %w", err)
			}
			analysis := termo.Analyze(string(text))
			upload = &bolsista.TermoUpload{
				FileName: filepath.Base(bolsistaTermoFile),
				Parsed:   &analysis,
			}
		}

		roster, err := st.GetBolsistas(cmd.Context(), bolsistaProject)
		if err != nil {
			return err
		}

		var existing *bolsista.Record
		if bolsistaEditID != "" {
			for i := range roster {
				if roster[i].ID == bolsistaEditID {
					existing = &roster[i]
					break
				}
			}
			if existing == nil {
				return fmt.Errorf("bolsista %s não encontrado no projeto %s", bolsistaEditID, bolsistaProject)
			}
		}

		var valor *float64
		if bolsistaValorSet {
			valor = &bolsistaValor
		}

		rec := bolsista.BuildRecord(bolsista.BuildParams{
			EditingID:   bolsistaEditID,
			Nome:        bolsistaNome,
			CPFDigits:   cpfDigits,
			Funcao:      bolsistaFuncao,
			Valor:       valor,
			TermoUpload: upload,
			Existing:    existing,
		})

		updated := bolsista.Upsert(roster, rec, bolsistaEditID)
		if err := st.SetBolsistas(cmd.Context(), bolsistaProject, updated); err != nil {
			return err
		}

		zap.L().Info("bolsista saved",
			zap.String("project", bolsistaProject),
			zap.String("id", rec.ID),
			zap.Int("history_entries", len(rec.Historico)),
		)
		return printJSON(rec)
	},
}

var bolsistaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a project's funded persons with their eligibility status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		stored, err := st.GetBolsistas(cmd.Context(), bolsistaProject)
		if err != nil {
			return err
		}

		var previous []bolsista.Record
		if bolsistaFallback != "" {
			data, err := os.ReadFile(bolsistaFallback)
			if err != nil {
				return fmt.Errorf("read fallback roster: %w", err)
			}
			if err := json.Unmarshal(data, &previous); err != nil {
				return fmt.Errorf("decode fallback roster: %w", err)
			}
		}

		res := bolsista.ResolveStored(previous, stored, bolsistaProject)
		if res.ShouldPersist {
			if err := st.SetBolsistas(cmd.Context(), bolsistaProject, res.List); err != nil {
				return err
			}
			zap.L().Info("fallback roster persisted",
				zap.String("project", bolsistaProject),
				zap.Int("records", len(res.List)),
			)
		}
		roster := res.List

		now := time.Now()
		for _, rec := range roster {
			indicator := bolsista.Evaluate(rec, now)
			valor := "-"
			if rec.Valor != nil {
				valor = normalize.FormatBRL(*rec.Valor)
			}
			fmt.Printf("%s  %s  %s  %s  [%s] %s\n",
				rec.ID, rec.Nome, normalize.FormatCPF(rec.CPF), valor, indicator.Label, indicator.Detail)
		}
		return nil
	},
}

func init() {
	bolsistaCmd.PersistentFlags().StringVar(&bolsistaProject, "project", "", "project identifier")
	_ = bolsistaCmd.MarkPersistentFlagRequired("project")

	bolsistaAddCmd.Flags().StringVar(&bolsistaNome, "nome", "", "full name")
	bolsistaAddCmd.Flags().StringVar(&bolsistaCPF, "cpf", "", "CPF (any format)")
	bolsistaAddCmd.Flags().StringVar(&bolsistaFuncao, "funcao", "", "role in the project")
	bolsistaAddCmd.Flags().Float64Var(&bolsistaValor, "valor", 0, "monthly stipend value")
	bolsistaAddCmd.Flags().StringVar(&bolsistaTermoFile, "termo", "", "grant-term text file to parse")
	bolsistaAddCmd.Flags().StringVar(&bolsistaEditID, "edit", "", "record ID to edit instead of creating")
	_ = bolsistaAddCmd.MarkFlagRequired("nome")
	_ = bolsistaAddCmd.MarkFlagRequired("cpf")

	bolsistaAddCmd.PreRun = func(cmd *cobra.Command, args []string) {
		bolsistaValorSet = cmd.Flags().Changed("valor")
	}

	bolsistaListCmd.Flags().StringVar(&bolsistaFallback, "fallback", "", "roster JSON file to resurface when the store is empty")

	bolsistaCmd.AddCommand(bolsistaAddCmd)
	bolsistaCmd.AddCommand(bolsistaListCmd)
	rootCmd.AddCommand(bolsistaCmd)
}
