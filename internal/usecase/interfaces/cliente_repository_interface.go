package interfaces

import (
	"context"

	"custodia_cheques/internal/domain/entities"
)

// IClienteRepository abstracts persistence for client accounts.

type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	GetByEmail(ctx context.Context, email string) (entities.Cliente, error)
	List(ctx context.Context) ([]entities.Cliente, error)
	Delete(ctx context.Context, id string) error
}
