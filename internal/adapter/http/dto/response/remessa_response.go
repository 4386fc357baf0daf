package response

import (
	"time"

	"custodia_cheques/internal/domain/entities"
)

type ChequeResumoResponse struct {
	ID           string `json:"id"`
	NumeroCheque string `json:"numeroCheque"`
	Banco        string `json:"banco"`
	Vencimento   string `json:"vencimento,omitempty"`
	Nome         string `json:"nome"`
	Valor        string `json:"valor"`
	Regiao       string `json:"regiao,omitempty"`
}

type RemessaResponse struct {
	ID                   string                 `json:"id"`
	Protocolo            string                 `json:"protocolo"`
	DataRemessa          time.Time              `json:"dataRemessa"`
	EmitidoPor           string                 `json:"emitidoPor"`
	Cheques              []ChequeResumoResponse `json:"cheques"`
	Status               string                 `json:"status"`
	DocumentoPdfURL      string                 `json:"documentoPdfUrl,omitempty"`
	DocumentoAssinadoURL string                 `json:"documentoAssinadoUrl,omitempty"`
	RecebidoPor          string                 `json:"recebidoPor,omitempty"`
	Log                  []LogEntryResponse     `json:"log"`
}

func FromRemessa(r entities.Remessa) RemessaResponse {
	cheques := make([]ChequeResumoResponse, 0, len(r.Cheques))
	for _, c := range r.Cheques {
		cheques = append(cheques, ChequeResumoResponse{
			ID:           c.ID,
			NumeroCheque: c.NumeroCheque,
			Banco:        c.Banco,
			Vencimento:   c.Vencimento,
			Nome:         c.Nome,
			Valor:        c.Valor.String(),
			Regiao:       c.Regiao,
		})
	}
	return RemessaResponse{
		ID:                   r.ID,
		Protocolo:            r.Protocolo,
		DataRemessa:          r.DataRemessa,
		EmitidoPor:           r.EmitidoPor,
		Cheques:              cheques,
		Status:               string(r.Status),
		DocumentoPdfURL:      r.DocumentoPdfURL,
		DocumentoAssinadoURL: r.DocumentoAssinadoURL,
		RecebidoPor:          r.RecebidoPor,
		Log:                  FromLog(r.Log),
	}
}

func FromRemessas(remessas []entities.Remessa) []RemessaResponse {
	out := make([]RemessaResponse, 0, len(remessas))
	for _, r := range remessas {
		out = append(out, FromRemessa(r))
	}
	return out
}
