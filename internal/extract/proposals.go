package extract

import (
	"context"

	"go.uber.org/zap"

	"github.com/vertex-gestao/prestacao/internal/model"
)

const proposalsPrompt = `Analise o documento e extraia TODAS as propostas de cotação encontradas.

Para cada proposta, extraia:
- fornecedor: nome completo da empresa
- cnpj: CNPJ formatado (apenas números)
- valor: valor numérico (sem R$ ou pontos, apenas números e vírgula decimal)
- dataEmissao: data no formato YYYY-MM-DD
- numeroDocumento: número da nota/proposta (opcional)

IMPORTANTE:
1. Extraia TODAS as propostas encontradas, não apenas uma
2. Se houver múltiplas propostas, retorne um array com todas elas
3. Normalize os valores removendo símbolos de moeda
4. Converta datas para formato ISO (YYYY-MM-DD)
5. Remova caracteres especiais do CNPJ (apenas números)

Retorne no formato JSON:
{
  "propostas": [
    {
      "fornecedor": "Nome da Empresa",
      "cnpj": "12345678000190",
      "valor": 1500.50,
      "dataEmissao": "2025-01-15",
      "numeroDocumento": "NF-001"
    }
  ]
}`

// ProposalAttempts is the retry budget for multi-proposal extraction.
const ProposalAttempts = 3

// ExtractProposals recovers every quotation proposal present in the document
// text. A missing or malformed "propostas" list degrades to an empty slice,
// as does inference exhaustion; the caller is never blocked.
func (e *Extractor) ExtractProposals(ctx context.Context, text, imageURL string) []model.Proposal {
	result, err := e.extract(ctx, "proposals", proposalsPrompt+"\n\nTexto do documento:\n"+text, imageURL, ProposalAttempts)
	if err != nil {
		logRecovered("proposals", err)
		return []model.Proposal{}
	}

	raw, ok := result["propostas"].([]any)
	if !ok {
		zap.L().Warn("proposals response missing list field")
		return []model.Proposal{}
	}

	proposals := make([]model.Proposal, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		p := model.Proposal{
			DataEmissao: e.now().Format("2006-01-02"),
		}
		if s, ok := stringField(entry, "fornecedor"); ok {
			p.Fornecedor = s
		}
		if s, ok := digitsField(entry, "cnpj"); ok {
			p.CNPJ = s
		}
		if v, ok := moneyField(entry, "valor"); ok {
			p.Valor = v
		}
		if s, ok := stringField(entry, "dataEmissao"); ok && s != "" {
			p.DataEmissao = s
		}
		if s, ok := stringField(entry, "numeroDocumento"); ok {
			p.NumeroDocumento = s
		}
		proposals = append(proposals, p)
	}

	zap.L().Info("proposals extracted", zap.Int("count", len(proposals)))
	return proposals
}
