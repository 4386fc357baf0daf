package response

import (
	"time"

	"custodia_cheques/internal/domain/entities"
)

type EstornoChequeResponse struct {
	ID              string    `json:"id"`
	EstornoID       string    `json:"estornoId"`
	Leitora         string    `json:"leitora,omitempty"`
	NumeroCheque    string    `json:"numeroCheque"`
	Nome            string    `json:"nome"`
	CPF             string    `json:"cpf,omitempty"`
	Valor           string    `json:"valor"`
	MotivoDevolucao string    `json:"motivoDevolucao,omitempty"`
	NumeroOperacao  string    `json:"numeroOperacao,omitempty"`
	AnexoURL        string    `json:"anexoUrl,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type EstornoResponse struct {
	ID           string                  `json:"id"`
	DataRetirada string                  `json:"dataRetirada"`
	QuemRetirou  string                  `json:"quemRetirou"`
	Protocolo    string                  `json:"protocolo"`
	Status       string                  `json:"status"`
	CreatedAt    time.Time               `json:"createdAt"`
	Log          []LogEntryResponse      `json:"log"`
	Cheques      []EstornoChequeResponse `json:"cheques,omitempty"`
}

func FromEstornoCheque(c entities.EstornoCheque) EstornoChequeResponse {
	return EstornoChequeResponse{
		ID:              c.ID,
		EstornoID:       c.EstornoID,
		Leitora:         c.Leitora,
		NumeroCheque:    c.NumeroCheque,
		Nome:            c.Nome,
		CPF:             c.CPF,
		Valor:           c.Valor.String(),
		MotivoDevolucao: c.MotivoDevolucao,
		NumeroOperacao:  c.NumeroOperacao,
		AnexoURL:        c.AnexoURL,
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
	}
}

func FromEstorno(e entities.Estorno, cheques []entities.EstornoCheque) EstornoResponse {
	itens := make([]EstornoChequeResponse, 0, len(cheques))
	for _, c := range cheques {
		itens = append(itens, FromEstornoCheque(c))
	}
	return EstornoResponse{
		ID:           e.ID,
		DataRetirada: e.DataRetirada,
		QuemRetirou:  e.QuemRetirou,
		Protocolo:    e.Protocolo,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		Log:          FromLog(e.Log),
		Cheques:      itens,
	}
}

func FromEstornos(estornos []entities.Estorno) []EstornoResponse {
	out := make([]EstornoResponse, 0, len(estornos))
	for _, e := range estornos {
		out = append(out, FromEstorno(e, nil))
	}
	return out
}
