package response

import (
	"time"

	"custodia_cheques/internal/domain/entities"
)

type ClienteResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	// SenhaGerada is only populated on create, when no senha was provided.
	SenhaGerada string `json:"senhaGerada,omitempty"`
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func FromClienteCriado(c entities.Cliente, senhaGerada string) ClienteResponse {
	resp := FromCliente(c)
	resp.SenhaGerada = senhaGerada
	return resp
}

func FromClientes(clientes []entities.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, FromCliente(c))
	}
	return out
}
