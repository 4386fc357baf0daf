package interfaces

import (
	"context"
	"errors"

	"custodia_cheques/internal/domain/entities"
)

var (
	// ErrRemessaNaoEncontrada: the remessa referenced by the check no longer
	// exists. The canonical check must not be written either.
	ErrRemessaNaoEncontrada = errors.New("remessa não encontrada")
	// ErrChequeNaoEstaNaRemessa: the embedded summary list has no entry for
	// the check id. No write may happen on either document.
	ErrChequeNaoEstaNaRemessa = errors.New("cheque não encontrado na remessa")
	// ErrConflitoDeEscrita: optimistic retries exhausted on the remessa
	// version guard.
	ErrConflitoDeEscrita = errors.New("conflito de escrita na remessa")
)

// ITransacaoCustodia is the dual-write coordinator: it keeps the canonical
// check record and the denormalized copy embedded in its remessa moving as
// one logical transaction. Both writes commit or neither does.
//
// Once a check carries a RemessaID, callers must use these operations instead
// of IChequeRepository.Update/Delete.

type ITransacaoCustodia interface {
	// AtualizarChequeEmRemessa replaces the check's embedded summary with the
	// projection of the new fields, appends entradaRemessa to the remessa log
	// and writes the canonical check (with entradaCheque appended) in the
	// same transaction.
	AtualizarChequeEmRemessa(ctx context.Context, cheque entities.Cheque, entradaCheque, entradaRemessa entities.LogEntry) error
	// RemoverChequeDaRemessa filters the check out of the embedded list,
	// appends entradaRemessa to the remessa log and deletes the canonical
	// record in the same transaction.
	RemoverChequeDaRemessa(ctx context.Context, chequeID, remessaID string, entradaRemessa entities.LogEntry) error
}
