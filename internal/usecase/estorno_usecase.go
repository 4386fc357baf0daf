package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEstornoNotFound           = errors.New("estorno not found")
	ErrInvalidEstornoID          = errors.New("invalid estorno id")
	ErrCamposObrigatoriosEstorno = errors.New("missing required estorno fields")
	ErrEstornoChequeNotFound     = errors.New("estorno cheque not found")
)

// EstornoChequeInput carries a reversal line item. Lighter than ChequeInput:
// no custody location, no bank/due-date pair.
type EstornoChequeInput struct {
	Leitora         string
	NumeroCheque    string
	Nome            string
	CPF             string
	Valor           decimal.Decimal
	MotivoDevolucao string
	NumeroOperacao  string
	Anexo           *entities.Arquivo
}

type EstornoInput struct {
	DataRetirada string
	QuemRetirou  string
	Cheques      []EstornoChequeInput
}

// IEstornoUseCase exposes the reversal sub-ledger. Structurally a simplified
// remessa: protocoled case plus line items in a child table, no embedded copy
// and no audited finalize.

type IEstornoUseCase interface {
	Create(ctx context.Context, in EstornoInput, usuario entities.Usuario) (entities.Estorno, error)
	GetByID(ctx context.Context, id string) (entities.Estorno, []entities.EstornoCheque, error)
	List(ctx context.Context) ([]entities.Estorno, error)
	AddCheque(ctx context.Context, estornoID string, in EstornoChequeInput, usuario entities.Usuario) (entities.EstornoCheque, error)
	RemoveCheque(ctx context.Context, estornoID, chequeID string) error
}

type EstornoUseCase struct {
	repo  interfaces.IEstornoRepository
	blobs interfaces.IBlobStore
}

var _ IEstornoUseCase = (*EstornoUseCase)(nil)

func NewEstornoUseCase(repo interfaces.IEstornoRepository, blobs interfaces.IBlobStore) *EstornoUseCase {
	return &EstornoUseCase{repo: repo, blobs: blobs}
}

func (u *EstornoUseCase) Create(ctx context.Context, in EstornoInput, usuario entities.Usuario) (entities.Estorno, error) {
	if strings.TrimSpace(in.DataRetirada) == "" || strings.TrimSpace(in.QuemRetirou) == "" || len(in.Cheques) == 0 {
		return entities.Estorno{}, ErrCamposObrigatoriosEstorno
	}

	e := entities.Estorno{
		ID:           uuid.NewString(),
		DataRetirada: in.DataRetirada,
		QuemRetirou:  in.QuemRetirou,
		Protocolo:    entities.GerarProtocolo(),
		Status:       entities.EstornoStatusEscritorio,
		CreatedAt:    time.Now().UTC(),
		Log:          []entities.LogEntry{entities.NovaEntradaLog("Estorno criado", usuario)},
	}

	e, err := u.repo.Create(ctx, e)
	if err != nil {
		return entities.Estorno{}, err
	}

	for _, item := range in.Cheques {
		if _, err := u.addCheque(ctx, e.ID, item); err != nil {
			return entities.Estorno{}, err
		}
	}
	return e, nil
}

func (u *EstornoUseCase) GetByID(ctx context.Context, id string) (entities.Estorno, []entities.EstornoCheque, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estorno{}, nil, ErrInvalidEstornoID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estorno{}, nil, err
	}
	if e.ID == "" {
		return entities.Estorno{}, nil, ErrEstornoNotFound
	}

	cheques, err := u.repo.ListCheques(ctx, e.ID)
	if err != nil {
		return entities.Estorno{}, nil, err
	}
	return e, cheques, nil
}

func (u *EstornoUseCase) List(ctx context.Context) ([]entities.Estorno, error) {
	return u.repo.List(ctx)
}

func (u *EstornoUseCase) AddCheque(ctx context.Context, estornoID string, in EstornoChequeInput, usuario entities.Usuario) (entities.EstornoCheque, error) {
	estornoID = strings.TrimSpace(estornoID)
	if estornoID == "" {
		return entities.EstornoCheque{}, ErrInvalidEstornoID
	}

	e, err := u.repo.GetByID(ctx, estornoID)
	if err != nil {
		return entities.EstornoCheque{}, err
	}
	if e.ID == "" {
		return entities.EstornoCheque{}, ErrEstornoNotFound
	}

	return u.addCheque(ctx, e.ID, in)
}

func (u *EstornoUseCase) addCheque(ctx context.Context, estornoID string, in EstornoChequeInput) (entities.EstornoCheque, error) {
	if strings.TrimSpace(in.NumeroCheque) == "" || strings.TrimSpace(in.Nome) == "" || !in.Valor.IsPositive() {
		return entities.EstornoCheque{}, ErrCamposObrigatoriosEstorno
	}

	anexoURL := ""
	if in.Anexo != nil && len(in.Anexo.Conteudo) > 0 {
		url, err := u.blobs.Upload(ctx, caminhoAnexoEstorno(estornoID, in.Anexo.Nome), in.Anexo.Conteudo, in.Anexo.ContentType)
		if err != nil {
			return entities.EstornoCheque{}, fmt.Errorf("upload do anexo: %w", err)
		}
		anexoURL = url
	}

	item := entities.EstornoCheque{
		ID:              uuid.NewString(),
		EstornoID:       estornoID,
		Leitora:         in.Leitora,
		NumeroCheque:    in.NumeroCheque,
		Nome:            in.Nome,
		CPF:             in.CPF,
		Valor:           in.Valor,
		MotivoDevolucao: in.MotivoDevolucao,
		NumeroOperacao:  in.NumeroOperacao,
		AnexoURL:        anexoURL,
		Status:          entities.EstornoStatusEscritorio,
		CreatedAt:       time.Now().UTC(),
	}
	return u.repo.AddCheque(ctx, item)
}

func (u *EstornoUseCase) RemoveCheque(ctx context.Context, estornoID, chequeID string) error {
	estornoID = strings.TrimSpace(estornoID)
	chequeID = strings.TrimSpace(chequeID)
	if estornoID == "" || chequeID == "" {
		return ErrInvalidEstornoID
	}
	return u.repo.RemoveCheque(ctx, estornoID, chequeID)
}

func caminhoAnexoEstorno(estornoID, nome string) string {
	return fmt.Sprintf("estornos/%s/anexos/%s", estornoID, nome)
}
