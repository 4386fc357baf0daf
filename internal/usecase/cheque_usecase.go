package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrChequeNotFound         = errors.New("cheque not found")
	ErrInvalidChequeID        = errors.New("invalid cheque id")
	ErrCamposObrigatorios     = errors.New("missing required cheque fields")
	ErrChequeEmDestinoFinal   = errors.New("cheque already at final destination")
	ErrChequeForaDaRemessa    = errors.New("cheque not found in remessa")
	ErrRemessaDoChequeAusente = errors.New("remessa referenced by cheque not found")
)

// ChequeInput carries the writable fields of a check. Valor must be positive;
// Anexo, when present, is uploaded before the record is persisted.
type ChequeInput struct {
	Leitora         string
	NumeroCheque    string
	Banco           string
	Nome            string
	CPF             string
	Valor           decimal.Decimal
	Vencimento      string
	MotivoDevolucao string
	NumeroOperacao  string
	QuemRetirou     string
	DataRetirada    string
	Regiao          string
	ClienteID       string
	Anexo           *entities.Arquivo
}

func (in ChequeInput) validar() error {
	if strings.TrimSpace(in.Leitora) == "" ||
		strings.TrimSpace(in.NumeroCheque) == "" ||
		strings.TrimSpace(in.Nome) == "" ||
		strings.TrimSpace(in.CPF) == "" ||
		!in.Valor.IsPositive() ||
		strings.TrimSpace(in.QuemRetirou) == "" ||
		strings.TrimSpace(in.DataRetirada) == "" ||
		strings.TrimSpace(in.Banco) == "" {
		return ErrCamposObrigatorios
	}
	return nil
}

// IChequeUseCase exposes the check lifecycle operations.
//
// Update and Delete route through the dual-write transaction whenever the
// check belongs to a remessa, so the canonical record and the embedded
// summary never drift.

type IChequeUseCase interface {
	Create(ctx context.Context, in ChequeInput, usuario entities.Usuario) (entities.Cheque, error)
	GetByID(ctx context.Context, id string) (entities.Cheque, error)
	List(ctx context.Context, clienteID string, local string) ([]entities.Cheque, error)
	Update(ctx context.Context, id string, in ChequeInput, usuario entities.Usuario) (entities.Cheque, error)
	Delete(ctx context.Context, id string, usuario entities.Usuario) error
}

type ChequeUseCase struct {
	repo      interfaces.IChequeRepository
	transacao interfaces.ITransacaoCustodia
	blobs     interfaces.IBlobStore
}

var _ IChequeUseCase = (*ChequeUseCase)(nil)

func NewChequeUseCase(repo interfaces.IChequeRepository, transacao interfaces.ITransacaoCustodia, blobs interfaces.IBlobStore) *ChequeUseCase {
	return &ChequeUseCase{repo: repo, transacao: transacao, blobs: blobs}
}

func (u *ChequeUseCase) Create(ctx context.Context, in ChequeInput, usuario entities.Usuario) (entities.Cheque, error) {
	if err := in.validar(); err != nil {
		return entities.Cheque{}, err
	}

	id := uuid.NewString()

	anexoURL := ""
	if in.Anexo != nil && len(in.Anexo.Conteudo) > 0 {
		url, err := u.blobs.Upload(ctx, caminhoAnexoCheque(id, in.Anexo.Nome), in.Anexo.Conteudo, in.Anexo.ContentType)
		if err != nil {
			log.Printf("[cheque][usecase] anexo upload failed cheque_id=%s err=%v", id, err)
			return entities.Cheque{}, fmt.Errorf("upload do anexo: %w", err)
		}
		anexoURL = url
	}

	c := entities.Cheque{
		ID:              id,
		Leitora:         in.Leitora,
		NumeroCheque:    in.NumeroCheque,
		Banco:           in.Banco,
		Nome:            in.Nome,
		CPF:             in.CPF,
		Valor:           in.Valor,
		Vencimento:      in.Vencimento,
		MotivoDevolucao: in.MotivoDevolucao,
		NumeroOperacao:  in.NumeroOperacao,
		AnexoURL:        anexoURL,
		QuemRetirou:     in.QuemRetirou,
		DataRetirada:    in.DataRetirada,
		Regiao:          in.Regiao,
		Local:           entities.LocalEscritorio,
		ClienteID:       in.ClienteID,
		CreatedAt:       time.Now().UTC(),
		Log:             []entities.LogEntry{entities.NovaEntradaLog("Cheque adicionado", usuario)},
	}
	return u.repo.Create(ctx, c)
}

func (u *ChequeUseCase) GetByID(ctx context.Context, id string) (entities.Cheque, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cheque{}, ErrInvalidChequeID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cheque{}, err
	}
	if c.ID == "" {
		return entities.Cheque{}, ErrChequeNotFound
	}
	return c, nil
}

// List scopes by cliente when clienteID is present; the scoping happens in
// the store query, never as a post-fetch filter.
func (u *ChequeUseCase) List(ctx context.Context, clienteID string, local string) ([]entities.Cheque, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID != "" {
		return u.repo.ListByClienteID(ctx, clienteID)
	}
	if local = strings.TrimSpace(local); local != "" {
		return u.repo.ListByLocal(ctx, entities.LocalCheque(local))
	}
	return u.repo.List(ctx)
}

func (u *ChequeUseCase) Update(ctx context.Context, id string, in ChequeInput, usuario entities.Usuario) (entities.Cheque, error) {
	existente, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Cheque{}, err
	}
	if err := in.validar(); err != nil {
		return entities.Cheque{}, err
	}

	regiao := strings.TrimSpace(in.Regiao)
	if regiao == "" {
		regiao = entities.RegiaoNaoDefinida
	}

	anexoURL := existente.AnexoURL
	if in.Anexo != nil && len(in.Anexo.Conteudo) > 0 {
		// Best effort on the old blob: a failed delete must not block the
		// replacement upload.
		if existente.AnexoURL != "" {
			if err := u.blobs.Delete(ctx, existente.AnexoURL); err != nil {
				log.Printf("[cheque][usecase] failed deleting previous anexo cheque_id=%s url=%s err=%v", id, existente.AnexoURL, err)
			}
		}
		url, err := u.blobs.Upload(ctx, caminhoAnexoCheque(id, in.Anexo.Nome), in.Anexo.Conteudo, in.Anexo.ContentType)
		if err != nil {
			return entities.Cheque{}, fmt.Errorf("upload do anexo: %w", err)
		}
		anexoURL = url
	}

	atualizado := existente
	atualizado.Leitora = in.Leitora
	atualizado.NumeroCheque = in.NumeroCheque
	atualizado.Banco = in.Banco
	atualizado.Nome = in.Nome
	atualizado.CPF = in.CPF
	atualizado.Valor = in.Valor
	atualizado.Vencimento = in.Vencimento
	atualizado.MotivoDevolucao = in.MotivoDevolucao
	atualizado.NumeroOperacao = in.NumeroOperacao
	atualizado.QuemRetirou = in.QuemRetirou
	atualizado.DataRetirada = in.DataRetirada
	atualizado.Regiao = regiao
	atualizado.AnexoURL = anexoURL

	entrada := entities.NovaEntradaLog("Cheque atualizado", usuario)

	if existente.RemessaID != "" {
		entradaRemessa := entities.NovaEntradaLog(fmt.Sprintf("Cheque %s atualizado", atualizado.NumeroCheque), usuario)
		if err := u.transacao.AtualizarChequeEmRemessa(ctx, atualizado, entrada, entradaRemessa); err != nil {
			return entities.Cheque{}, mapErroTransacao(err)
		}
		atualizado.Log = entities.AppendLog(atualizado.Log, entrada)
		return atualizado, nil
	}

	return u.repo.Update(ctx, atualizado, entrada)
}

func (u *ChequeUseCase) Delete(ctx context.Context, id string, usuario entities.Usuario) error {
	existente, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existente.Local == entities.LocalDestinoFinal {
		return ErrChequeEmDestinoFinal
	}

	if existente.AnexoURL != "" {
		if err := u.blobs.Delete(ctx, existente.AnexoURL); err != nil {
			return fmt.Errorf("exclusão do anexo: %w", err)
		}
	}

	if existente.RemessaID != "" {
		entradaRemessa := entities.NovaEntradaLog(fmt.Sprintf("Cheque %s excluído", existente.NumeroCheque), usuario)
		if err := u.transacao.RemoverChequeDaRemessa(ctx, existente.ID, existente.RemessaID, entradaRemessa); err != nil {
			return mapErroTransacao(err)
		}
		return nil
	}

	return u.repo.Delete(ctx, existente.ID)
}

func mapErroTransacao(err error) error {
	switch {
	case errors.Is(err, interfaces.ErrRemessaNaoEncontrada):
		return ErrRemessaDoChequeAusente
	case errors.Is(err, interfaces.ErrChequeNaoEstaNaRemessa):
		return ErrChequeForaDaRemessa
	default:
		return err
	}
}

func caminhoAnexoCheque(chequeID, nome string) string {
	return fmt.Sprintf("cheques/anexos/%s/%s", chequeID, nome)
}
