package bolsista

import (
	"fmt"
	"strings"
	"time"

	"github.com/vertex-gestao/prestacao/internal/normalize"
)

// Status is the eligibility verdict for a record.
type Status string

const (
	StatusVigente    Status = "vigente"
	StatusNaoVigente Status = "nao_vigente"
)

// valorTolerance absorbs float rounding when comparing the declared value
// against the term ceiling.
const valorTolerance = 0.009

// Indicator is the derived eligibility verdict. It is recomputed on every
// read and never persisted.
type Indicator struct {
	Status         Status `json:"status"`
	Label          string `json:"label"`
	Detail         string `json:"detail"`
	VigenciaDetail string `json:"vigenciaDetail"`
	ValorDetail    string `json:"valorDetail"`
}

// Evaluate derives the verdict for a record from its term snapshot. The date
// check compares date-only against now; the value check allows the ceiling
// plus tolerance.
func Evaluate(rec Record, now time.Time) Indicator {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var vigenciaISO string
	var valorMax *float64
	if rec.Termo != nil {
		vigenciaISO = rec.Termo.VigenciaISO
		valorMax = rec.Termo.ValorMaximo
	}

	okVigencia := true
	var vigenciaDetail string
	if vigenciaISO == "" {
		okVigencia = false
		vigenciaDetail = "Vigência não identificada."
	} else if date, err := time.ParseInLocation("2006-01-02", vigenciaISO, now.Location()); err != nil {
		okVigencia = false
		vigenciaDetail = "Data de vigência inválida no termo."
	} else if date.Before(today) {
		okVigencia = false
		vigenciaDetail = fmt.Sprintf("Termo vencido em %s.", normalize.FormatDateBR(vigenciaISO))
	} else {
		vigenciaDetail = fmt.Sprintf("Vigente até %s.", normalize.FormatDateBR(vigenciaISO))
	}

	okValor := true
	var valorDetail string
	if valorMax == nil {
		okValor = false
		valorDetail = "Valor máximo não encontrado no termo."
	} else if rec.Valor != nil && *rec.Valor > *valorMax+valorTolerance {
		okValor = false
		valorDetail = fmt.Sprintf("Valor acima do limite de %s.", normalize.FormatBRL(*valorMax))
	} else {
		valorDetail = fmt.Sprintf("Limite identificado: %s.", normalize.FormatBRL(*valorMax))
	}

	ok := okVigencia && okValor
	indicator := Indicator{
		VigenciaDetail: vigenciaDetail,
		ValorDetail:    valorDetail,
	}
	if ok {
		indicator.Status = StatusVigente
		indicator.Label = "Vigente"
		indicator.Detail = vigenciaDetail
	} else {
		indicator.Status = StatusNaoVigente
		indicator.Label = "Não Vigente"
		indicator.Detail = strings.TrimSpace(vigenciaDetail + " " + valorDetail)
	}
	return indicator
}
