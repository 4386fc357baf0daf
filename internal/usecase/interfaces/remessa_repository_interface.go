package interfaces

import (
	"context"

	"custodia_cheques/internal/domain/entities"
)

// IRemessaRepository abstracts DynamoDB persistence for shipment batches.
//
// Finalizar carries a storage-level precondition (status <> Finalizada); it
// returns an empty remessa when the condition fails, so a double finalize is
// rejected even under races. AppendCheque appends the summary and the log
// entry with list_append so concurrent appends union instead of overwriting.

type IRemessaRepository interface {
	Create(ctx context.Context, r entities.Remessa) (entities.Remessa, error)
	GetByID(ctx context.Context, id string) (entities.Remessa, error)
	GetByProtocolo(ctx context.Context, protocolo string) (entities.Remessa, error)
	List(ctx context.Context) ([]entities.Remessa, error)
	SetDocumentoPdfURL(ctx context.Context, id, url string) error
	Finalizar(ctx context.Context, id, documentoAssinadoURL, recebidoPor string, entrada entities.LogEntry) (entities.Remessa, error)
	AppendCheque(ctx context.Context, id string, resumo entities.ChequeResumo, entrada entities.LogEntry) error
}
