package extract

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	// Placeholders keep both narrative fields non-empty when generation
	// fails or the model omits one of them.
	DefaultObjeto        = "Objeto não especificado"
	DefaultJustificativa = "Justificativa não especificada"
)

const narrativePrompt = `Com base nos dados da compra abaixo, gere:

1. OBJETO: Uma descrição clara e concisa do objeto da compra (1-2 frases)
2. JUSTIFICATIVA: Uma justificativa técnica para dispensa de licitação, explicando:
   - Por que este fornecedor foi escolhido
   - Características técnicas do produto/serviço
   - Urgência ou especificidade da demanda
   - Conformidade com a legislação

Dados da compra:
%s

Retorne no formato JSON:
{
  "objeto": "Descrição do objeto...",
  "justificativa": "Justificativa detalhada..."
}`

// NarrativeAttempts is the retry budget for narrative generation.
const NarrativeAttempts = 2

// Narrative holds the generated free-text purchase fields.
type Narrative struct {
	Objeto        string `json:"objeto"`
	Justificativa string `json:"justificativa"`
}

// GenerateNarrative produces the object description and the bid-waiver
// justification for a purchase. Both fields always come back non-empty.
func (e *Extractor) GenerateNarrative(ctx context.Context, purchase any) Narrative {
	narrative := Narrative{
		Objeto:        DefaultObjeto,
		Justificativa: DefaultJustificativa,
	}

	encoded, err := json.MarshalIndent(purchase, "", "  ")
	if err != nil {
		logRecovered("narrative", err)
		return narrative
	}

	prompt := fmt.Sprintf(narrativePrompt, encoded)
	result, err := e.extract(ctx, "narrative", prompt, "", NarrativeAttempts)
	if err != nil {
		logRecovered("narrative", err)
		return narrative
	}

	if s, ok := stringField(result, "objeto"); ok && s != "" {
		narrative.Objeto = s
	}
	if s, ok := stringField(result, "justificativa"); ok && s != "" {
		narrative.Justificativa = s
	}
	return narrative
}
