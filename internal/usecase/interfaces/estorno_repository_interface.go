package interfaces

import (
	"context"

	"custodia_cheques/internal/domain/entities"
)

// IEstornoRepository abstracts persistence for reversal cases and their line
// items. Line items live in a child table keyed by (estorno_id, id); there is
// no embedded copy and therefore no dual-write here.

type IEstornoRepository interface {
	Create(ctx context.Context, e entities.Estorno) (entities.Estorno, error)
	GetByID(ctx context.Context, id string) (entities.Estorno, error)
	List(ctx context.Context) ([]entities.Estorno, error)
	AddCheque(ctx context.Context, item entities.EstornoCheque) (entities.EstornoCheque, error)
	ListCheques(ctx context.Context, estornoID string) ([]entities.EstornoCheque, error)
	RemoveCheque(ctx context.Context, estornoID, chequeID string) error
}
