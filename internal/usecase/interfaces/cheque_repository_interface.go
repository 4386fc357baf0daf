package interfaces

import (
	"context"

	"custodia_cheques/internal/domain/entities"
)

// IChequeRepository abstracts DynamoDB persistence for the canonical check
// record.
//
// The custody service must be able to:
//   - create a check with its seed log entry
//   - list office checks for remessa selection and scope listings per client
//   - update fields appending a log entry in the same write
//   - transition the custody location when a remessa is created/finalized
//
// Updates of checks that belong to a remessa never go through Update here;
// they go through ITransacaoCustodia so both copies move together.

type IChequeRepository interface {
	Create(ctx context.Context, c entities.Cheque) (entities.Cheque, error)
	GetByID(ctx context.Context, id string) (entities.Cheque, error)
	List(ctx context.Context) ([]entities.Cheque, error)
	ListByLocal(ctx context.Context, local entities.LocalCheque) ([]entities.Cheque, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.Cheque, error)
	Update(ctx context.Context, c entities.Cheque, entrada entities.LogEntry) (entities.Cheque, error)
	Delete(ctx context.Context, id string) error
	TransitionLocal(ctx context.Context, id string, local entities.LocalCheque, remessaID string, entrada entities.LogEntry) error
}
