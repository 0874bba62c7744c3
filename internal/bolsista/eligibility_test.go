package bolsista

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var evalNow = time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

func TestEvaluate_VigenteWithinLimits(t *testing.T) {
	t.Parallel()

	rec := Record{
		Valor: floatPtr(1500),
		Termo: &TermoData{VigenciaISO: "2031-12-31", ValorMaximo: floatPtr(2000)},
	}

	ind := Evaluate(rec, evalNow)

	assert.Equal(t, StatusVigente, ind.Status)
	assert.Equal(t, "Vigente", ind.Label)
	assert.Equal(t, "Vigente até 31/12/2031.", ind.VigenciaDetail)
	assert.Equal(t, "Limite identificado: R$ 2.000,00.", ind.ValorDetail)
	assert.Equal(t, ind.VigenciaDetail, ind.Detail)
}

func TestEvaluate_MissingTermo(t *testing.T) {
	t.Parallel()

	ind := Evaluate(Record{Valor: floatPtr(1500)}, evalNow)

	assert.Equal(t, StatusNaoVigente, ind.Status)
	assert.Equal(t, "Não Vigente", ind.Label)
	assert.Equal(t, "Vigência não identificada.", ind.VigenciaDetail)
	assert.Equal(t, "Valor máximo não encontrado no termo.", ind.ValorDetail)
}

func TestEvaluate_ExpiredTerm(t *testing.T) {
	t.Parallel()

	rec := Record{
		Valor: floatPtr(500),
		Termo: &TermoData{VigenciaISO: "2026-08-29", ValorMaximo: floatPtr(2000)},
	}

	ind := Evaluate(rec, evalNow)

	assert.Equal(t, StatusNaoVigente, ind.Status)
	assert.Equal(t, "Termo vencido em 29/08/2026.", ind.VigenciaDetail)
}

func TestEvaluate_EndDateTodayStillValid(t *testing.T) {
	t.Parallel()

	// The comparison is date-only: a term ending today is still in force
	// regardless of the hour.
	rec := Record{
		Valor: floatPtr(500),
		Termo: &TermoData{VigenciaISO: "2026-08-30", ValorMaximo: floatPtr(2000)},
	}

	ind := Evaluate(rec, evalNow)
	assert.Equal(t, StatusVigente, ind.Status)
}

func TestEvaluate_ValueTolerance(t *testing.T) {
	t.Parallel()

	termo := &TermoData{VigenciaISO: "2099-12-31", ValorMaximo: floatPtr(1000)}

	t.Run("within tolerance", func(t *testing.T) {
		t.Parallel()
		ind := Evaluate(Record{Valor: floatPtr(1000.009), Termo: termo}, evalNow)
		assert.Equal(t, StatusVigente, ind.Status)
	})

	t.Run("above tolerance", func(t *testing.T) {
		t.Parallel()
		ind := Evaluate(Record{Valor: floatPtr(1000.01), Termo: termo}, evalNow)
		assert.Equal(t, StatusNaoVigente, ind.Status)
		assert.Equal(t, "Valor acima do limite de R$ 1.000,00.", ind.ValorDetail)
	})
}

func TestEvaluate_MissingValorPassesValueCheck(t *testing.T) {
	t.Parallel()

	rec := Record{
		Termo: &TermoData{VigenciaISO: "2099-12-31", ValorMaximo: floatPtr(1000)},
	}

	ind := Evaluate(rec, evalNow)
	assert.Equal(t, StatusVigente, ind.Status)
	assert.Equal(t, "Limite identificado: R$ 1.000,00.", ind.ValorDetail)
}

func TestEvaluate_InvalidStoredDate(t *testing.T) {
	t.Parallel()

	rec := Record{
		Termo: &TermoData{VigenciaISO: "not-a-date", ValorMaximo: floatPtr(1000)},
	}

	ind := Evaluate(rec, evalNow)
	assert.Equal(t, StatusNaoVigente, ind.Status)
	assert.Equal(t, "Data de vigência inválida no termo.", ind.VigenciaDetail)
}

func TestEvaluate_DetailAggregatesFailures(t *testing.T) {
	t.Parallel()

	rec := Record{
		Valor: floatPtr(5000),
		Termo: &TermoData{VigenciaISO: "2020-01-01", ValorMaximo: floatPtr(1000)},
	}

	ind := Evaluate(rec, evalNow)

	assert.Equal(t, StatusNaoVigente, ind.Status)
	assert.Contains(t, ind.Detail, "Termo vencido em 01/01/2020.")
	assert.Contains(t, ind.Detail, "Valor acima do limite de R$ 1.000,00.")
}
