package extract

import (
	"context"

	"go.uber.org/zap"

	"github.com/vertex-gestao/prestacao/internal/model"
)

const documentPrompt = `Analise o documento e extraia as seguintes informações:

- instituicao: "vertex" ou "edge" (identifique pela instituição mencionada)
- cnpj: CNPJ da instituição (apenas números)
- termoParceria: número do termo de parceria
- projeto: nome do projeto
- rubrica: código ou nome da rubrica
- naturezaDispendio: tipo de despesa
- favorecido: nome do fornecedor/favorecido
- cnpjFavorecido: CNPJ do favorecido (apenas números)
- numeroNF: número da nota fiscal
- valorNF: valor da nota fiscal (número decimal)
- dataEmissaoNF: data de emissão da NF (formato YYYY-MM-DD)
- dataPagamento: data do pagamento (formato YYYY-MM-DD)
- objeto: descrição do objeto da compra
- justificativa: justificativa da dispensa de licitação

Retorne JSON com os campos encontrados. Se um campo não for encontrado, omita-o.`

// DocumentAttempts is the retry budget for single-document extraction.
const DocumentAttempts = 2

// ExtractDocument recovers structured purchase metadata from raw document
// text. Inference failure is never fatal: the zero ExtractedData comes back
// and record creation proceeds with defaults.
func (e *Extractor) ExtractDocument(ctx context.Context, text, imageURL string) model.ExtractedData {
	result, err := e.extract(ctx, "document", documentPrompt+"\n\nTexto do documento:\n"+text, imageURL, DocumentAttempts)
	if err != nil {
		logRecovered("document", err)
		return model.ExtractedData{}
	}

	var data model.ExtractedData

	if s, ok := stringField(result, "instituicao"); ok {
		data.Instituicao = model.ParseInstitution(s)
	}
	if s, ok := digitsField(result, "cnpj"); ok {
		data.CNPJ = s
	}
	if s, ok := stringField(result, "termoParceria"); ok {
		data.TermoParceria = s
	}
	if s, ok := stringField(result, "projeto"); ok {
		data.Projeto = s
	}
	if s, ok := stringField(result, "rubrica"); ok {
		data.Rubrica = s
	}
	if s, ok := stringField(result, "naturezaDispendio"); ok {
		data.NaturezaDispendio = s
	}
	if s, ok := stringField(result, "favorecido"); ok {
		data.Favorecido = s
	}
	if s, ok := digitsField(result, "cnpjFavorecido"); ok {
		data.CNPJFavorecido = s
	}
	if s, ok := stringField(result, "numeroNF"); ok {
		data.NumeroNF = s
	}
	if v, ok := moneyField(result, "valorNF"); ok {
		data.ValorNF = &v
	}
	if s, ok := stringField(result, "dataEmissaoNF"); ok {
		data.DataEmissaoNF = s
	}
	if s, ok := stringField(result, "dataPagamento"); ok {
		data.DataPagamento = s
	}
	if s, ok := stringField(result, "objeto"); ok {
		data.Objeto = s
	}
	if s, ok := stringField(result, "justificativa"); ok {
		data.Justificativa = s
	}

	zap.L().Info("document extraction complete", zap.String("projeto", data.Projeto))
	return data
}
