// Package bolsista maintains funded-person records: building them from form
// submissions, tracking field changes over time, and deriving eligibility
// against the uploaded grant-term snapshot.
package bolsista

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/vertex-gestao/prestacao/internal/termo"
)

// TermoData is the snapshot taken when a grant-term document is parsed.
// Edits to the owning record never mutate it; a new upload replaces it whole.
type TermoData struct {
	FileName       string    `json:"fileName"`
	VigenciaRaw    string    `json:"vigenciaRaw"`
	VigenciaISO    string    `json:"vigenciaISO,omitempty"`
	ValorMaximoRaw string    `json:"valorMaximoRaw"`
	ValorMaximo    *float64  `json:"valorMaximo"`
	ParsedAt       time.Time `json:"parsedAt"`
}

// ChangeEntry records one field mutation. Entries are kept newest first.
// Anterior and Atual hold the raw previous/new values; nil marks absence,
// which is distinct from zero or the empty string.
type ChangeEntry struct {
	Campo        string    `json:"campo"`
	Anterior     any       `json:"anterior"`
	Atual        any       `json:"atual"`
	ModificadoEm time.Time `json:"modificadoEm"`
}

// Record is a funded person tracked by a project. Nome and CPF are immutable
// after creation; Valor and Funcao changes append to Historico.
type Record struct {
	ID           string        `json:"id"`
	Nome         string        `json:"nome"`
	CPF          string        `json:"cpf"`
	Funcao       string        `json:"funcao"`
	Valor        *float64      `json:"valor"`
	Termo        *TermoData    `json:"termo"`
	AtualizadoEm time.Time     `json:"atualizadoEm"`
	Historico    []ChangeEntry `json:"historicoAlteracoes"`
}

// TermoUpload is a freshly parsed grant-term document.
type TermoUpload struct {
	FileName string
	Parsed   *termo.Analysis
}

// NewID generates a record identifier from the current time plus a random
// base-36 suffix, unique enough for the single-writer record store.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + strconv.FormatUint(rand.Uint64(), 36)
}

// BuildParams are the inputs for BuildRecord. Now and NewID default to the
// real clock and generator; tests override them.
type BuildParams struct {
	EditingID     string
	Nome          string
	CPFDigits     string
	Funcao        string
	Valor         *float64
	TermoUpload   *TermoUpload
	FallbackTermo *TermoData
	Existing      *Record
	Now           func() time.Time
	NewID         func() string
}

// BuildRecord merges submitted field values with prior record state. The
// identifier is reused when editing and generated otherwise. A fresh termo
// upload takes priority over the fallback snapshot, which takes priority
// over the existing record's. Valor and funcao differences against the
// existing record each prepend one change entry.
func BuildRecord(p BuildParams) Record {
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.NewID == nil {
		p.NewID = NewID
	}

	stamp := p.Now()

	historico := make([]ChangeEntry, 0)
	if p.Existing != nil {
		historico = append(historico, p.Existing.Historico...)
	}

	register := func(campo string, anterior, atual any) {
		entry := ChangeEntry{Campo: campo, Anterior: anterior, Atual: atual, ModificadoEm: stamp}
		historico = append([]ChangeEntry{entry}, historico...)
	}

	if p.Existing != nil {
		if !equalValor(p.Existing.Valor, p.Valor) {
			register("valor", valorOrNil(p.Existing.Valor), valorOrNil(p.Valor))
		}
		if p.Existing.Funcao != p.Funcao {
			register("funcao", p.Existing.Funcao, p.Funcao)
		}
	}

	id := p.EditingID
	if id == "" && p.Existing != nil {
		id = p.Existing.ID
	}
	if id == "" {
		id = p.NewID()
	}

	return Record{
		ID:           id,
		Nome:         p.Nome,
		CPF:          p.CPFDigits,
		Funcao:       p.Funcao,
		Valor:        p.Valor,
		Termo:        buildTermoData(p.TermoUpload, fallbackTermo(p), stamp),
		AtualizadoEm: stamp,
		Historico:    historico,
	}
}

// fallbackTermo prefers the explicit fallback snapshot, then the existing
// record's snapshot.
func fallbackTermo(p BuildParams) *TermoData {
	if p.FallbackTermo != nil {
		return p.FallbackTermo
	}
	if p.Existing != nil {
		return p.Existing.Termo
	}
	return nil
}

// buildTermoData snapshots a fresh upload, or copies the fallback unchanged.
func buildTermoData(upload *TermoUpload, fallback *TermoData, stamp time.Time) *TermoData {
	if upload != nil {
		data := &TermoData{
			FileName: upload.FileName,
			ParsedAt: stamp,
		}
		if upload.Parsed != nil {
			data.VigenciaRaw = upload.Parsed.VigenciaRaw
			data.VigenciaISO = upload.Parsed.VigenciaISO
			data.ValorMaximoRaw = upload.Parsed.ValorMaximoRaw
			data.ValorMaximo = upload.Parsed.ValorMaximo
		}
		return data
	}

	if fallback != nil {
		copied := *fallback
		return &copied
	}

	return nil
}

func equalValor(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// valorOrNil unwraps the pointer for storage in a ChangeEntry, keeping nil
// distinct from zero.
func valorOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Upsert replaces the roster entry matching editingID, or appends the record
// when no match exists. The input slice is not mutated.
func Upsert(list []Record, rec Record, editingID string) []Record {
	out := make([]Record, len(list))
	copy(out, list)

	if editingID != "" {
		for i := range out {
			if out[i].ID == editingID {
				out[i] = rec
				return out
			}
		}
	}

	return append(out, rec)
}
