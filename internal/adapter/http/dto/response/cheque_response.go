package response

import (
	"time"

	"custodia_cheques/internal/domain/entities"
)

type ChequeResponse struct {
	ID              string             `json:"id"`
	Leitora         string             `json:"leitora"`
	NumeroCheque    string             `json:"numeroCheque"`
	Banco           string             `json:"banco"`
	Nome            string             `json:"nome"`
	CPF             string             `json:"cpf"`
	Valor           string             `json:"valor"`
	Vencimento      string             `json:"vencimento,omitempty"`
	MotivoDevolucao string             `json:"motivoDevolucao,omitempty"`
	NumeroOperacao  string             `json:"numeroOperacao,omitempty"`
	AnexoURL        string             `json:"anexoUrl,omitempty"`
	QuemRetirou     string             `json:"quemRetirou"`
	DataRetirada    string             `json:"dataRetirada"`
	Regiao          string             `json:"regiao,omitempty"`
	Local           string             `json:"local"`
	RemessaID       string             `json:"remessaId,omitempty"`
	ClienteID       string             `json:"clientId,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	Log             []LogEntryResponse `json:"log"`
}

func FromCheque(c entities.Cheque) ChequeResponse {
	return ChequeResponse{
		ID:              c.ID,
		Leitora:         c.Leitora,
		NumeroCheque:    c.NumeroCheque,
		Banco:           c.Banco,
		Nome:            c.Nome,
		CPF:             c.CPF,
		Valor:           c.Valor.String(),
		Vencimento:      c.Vencimento,
		MotivoDevolucao: c.MotivoDevolucao,
		NumeroOperacao:  c.NumeroOperacao,
		AnexoURL:        c.AnexoURL,
		QuemRetirou:     c.QuemRetirou,
		DataRetirada:    c.DataRetirada,
		Regiao:          c.Regiao,
		Local:           string(c.Local),
		RemessaID:       c.RemessaID,
		ClienteID:       c.ClienteID,
		CreatedAt:       c.CreatedAt,
		Log:             FromLog(c.Log),
	}
}

func FromCheques(cheques []entities.Cheque) []ChequeResponse {
	out := make([]ChequeResponse, 0, len(cheques))
	for _, c := range cheques {
		out = append(out, FromCheque(c))
	}
	return out
}
