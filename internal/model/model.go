package model

import "time"

// Institution identifies which managing institution a purchase belongs to.
type Institution string

const (
	InstitutionVertex Institution = "vertex"
	InstitutionEdge   Institution = "edge"
)

// ParseInstitution coerces a raw value into a known institution.
// Anything that is not "edge" maps to vertex.
func ParseInstitution(raw string) Institution {
	if raw == string(InstitutionEdge) {
		return InstitutionEdge
	}
	return InstitutionVertex
}

// Proposal is one vendor's quoted price in a multi-quotation purchase record.
type Proposal struct {
	Fornecedor      string  `json:"fornecedor"`
	CNPJ            string  `json:"cnpj"`
	Valor           float64 `json:"valor"`
	DataEmissao     string  `json:"dataEmissao"`
	NumeroDocumento string  `json:"numeroDocumento,omitempty"`
}

// Purchase is a reimbursement record for a single expense.
type Purchase struct {
	ID                string      `json:"id"`
	Instituicao       Institution `json:"instituicao"`
	CNPJ              string      `json:"cnpj"`
	TermoParceria     string      `json:"termoParceria"`
	Projeto           string      `json:"projeto"`
	Rubrica           string      `json:"rubrica"`
	NaturezaDispendio string      `json:"naturezaDispendio"`
	Favorecido        string      `json:"favorecido"`
	CNPJFavorecido    string      `json:"cnpjFavorecido"`
	NumeroNF          string      `json:"numeroNF"`
	ValorNF           float64     `json:"valorNF"`
	DataEmissaoNF     string      `json:"dataEmissaoNF"`
	DataPagamento     string      `json:"dataPagamento"`
	Objeto            string      `json:"objeto"`
	Justificativa     string      `json:"justificativa"`
	Propostas         []Proposal  `json:"propostas"`
	Documentos        []string    `json:"documentos"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// ExtractedData holds the fields recovered from a single uploaded document.
// Absent fields stay at their zero value; defaulting happens at record
// creation, never here.
type ExtractedData struct {
	Instituicao       Institution `json:"instituicao,omitempty"`
	CNPJ              string      `json:"cnpj,omitempty"`
	TermoParceria     string      `json:"termoParceria,omitempty"`
	Projeto           string      `json:"projeto,omitempty"`
	Rubrica           string      `json:"rubrica,omitempty"`
	NaturezaDispendio string      `json:"naturezaDispendio,omitempty"`
	Favorecido        string      `json:"favorecido,omitempty"`
	CNPJFavorecido    string      `json:"cnpjFavorecido,omitempty"`
	NumeroNF          string      `json:"numeroNF,omitempty"`
	ValorNF           *float64    `json:"valorNF,omitempty"`
	DataEmissaoNF     string      `json:"dataEmissaoNF,omitempty"`
	DataPagamento     string      `json:"dataPagamento,omitempty"`
	Objeto            string      `json:"objeto,omitempty"`
	Justificativa     string      `json:"justificativa,omitempty"`
}

// Vendor is a supplier looked up or registered during purchase entry.
type Vendor struct {
	ID           string    `json:"id"`
	CNPJ         string    `json:"cnpj"`
	RazaoSocial  string    `json:"razaoSocial"`
	NomeFantasia string    `json:"nomeFantasia,omitempty"`
	Endereco     string    `json:"endereco,omitempty"`
	Telefone     string    `json:"telefone,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
