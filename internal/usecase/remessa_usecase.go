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
)

var (
	ErrRemessaNotFound         = errors.New("remessa not found")
	ErrInvalidRemessaID        = errors.New("invalid remessa id")
	ErrNenhumChequeSelecionado = errors.New("no cheque selected for remessa")
	ErrChequeForaDoEscritorio  = errors.New("cheque is not at the office")
	ErrRemessaFinalizada       = errors.New("remessa already finalized")
	ErrCamposFinalizacao       = errors.New("missing signed document or receiver")
	ErrProtocoloIndisponivel   = errors.New("could not allocate a unique protocolo")
	ErrTransicaoParcial        = errors.New("some cheques were not transitioned")
)

const maxTentativasProtocolo = 3

// IRemessaUseCase exposes the shipment batch operations.
//
// State machine: Transporte --Finalizar--> Finalizada (terminal). Any
// mutation on a finalized remessa is rejected, and the finalize update itself
// carries a storage-level status precondition.

type IRemessaUseCase interface {
	Create(ctx context.Context, chequeIDs []string, usuario entities.Usuario) (entities.Remessa, error)
	GetByID(ctx context.Context, id string) (entities.Remessa, error)
	List(ctx context.Context) ([]entities.Remessa, error)
	Finalizar(ctx context.Context, id string, documentoAssinado *entities.Arquivo, recebidoPor string, usuario entities.Usuario) (entities.Remessa, error)
	AppendCheque(ctx context.Context, remessaID string, in ChequeInput, usuario entities.Usuario) (entities.Cheque, error)
}

type RemessaUseCase struct {
	repo       interfaces.IRemessaRepository
	cheques    interfaces.IChequeRepository
	blobs      interfaces.IBlobStore
	manifestos interfaces.IManifestoGenerator
}

var _ IRemessaUseCase = (*RemessaUseCase)(nil)

func NewRemessaUseCase(
	repo interfaces.IRemessaRepository,
	cheques interfaces.IChequeRepository,
	blobs interfaces.IBlobStore,
	manifestos interfaces.IManifestoGenerator,
) *RemessaUseCase {
	return &RemessaUseCase{repo: repo, cheques: cheques, blobs: blobs, manifestos: manifestos}
}

// Create persists the remessa with the selected checks snapshotted into
// embedded summaries, generates and uploads the manifest, then transitions
// every check to Transporte. The transitions are independent remote writes;
// on partial failure the remessa stays persisted and the error names how many
// checks remain, so the caller can retry the remainder.
func (u *RemessaUseCase) Create(ctx context.Context, chequeIDs []string, usuario entities.Usuario) (entities.Remessa, error) {
	if len(chequeIDs) == 0 {
		return entities.Remessa{}, ErrNenhumChequeSelecionado
	}

	selecionados := make([]entities.Cheque, 0, len(chequeIDs))
	for _, id := range chequeIDs {
		c, err := u.cheques.GetByID(ctx, strings.TrimSpace(id))
		if err != nil {
			return entities.Remessa{}, err
		}
		if c.ID == "" {
			return entities.Remessa{}, ErrChequeNotFound
		}
		if c.Local != entities.LocalEscritorio {
			return entities.Remessa{}, ErrChequeForaDoEscritorio
		}
		selecionados = append(selecionados, c)
	}

	protocolo, err := u.alocarProtocolo(ctx)
	if err != nil {
		return entities.Remessa{}, err
	}

	resumos := make([]entities.ChequeResumo, 0, len(selecionados))
	for _, c := range selecionados {
		resumos = append(resumos, c.Resumo())
	}

	r := entities.Remessa{
		ID:          uuid.NewString(),
		Protocolo:   protocolo,
		DataRemessa: time.Now().UTC(),
		EmitidoPor:  usuario.Atribuicao(),
		Cheques:     resumos,
		Status:      entities.RemessaStatusTransporte,
		Log:         []entities.LogEntry{entities.NovaEntradaLog("Remessa criada", usuario)},
	}

	r, err = u.repo.Create(ctx, r)
	if err != nil {
		return entities.Remessa{}, err
	}
	log.Printf("[remessa][usecase] created id=%s protocolo=%s cheques=%d", r.ID, r.Protocolo, len(r.Cheques))

	pdf, err := u.manifestos.GerarManifesto(r)
	if err != nil {
		return entities.Remessa{}, fmt.Errorf("geração do manifesto: %w", err)
	}
	pdfURL, err := u.blobs.Upload(ctx, caminhoDocumentoRemessa(r.ID, fmt.Sprintf("Remessa_%s.pdf", r.Protocolo)), pdf, "application/pdf")
	if err != nil {
		return entities.Remessa{}, fmt.Errorf("upload do manifesto: %w", err)
	}
	if err := u.repo.SetDocumentoPdfURL(ctx, r.ID, pdfURL); err != nil {
		return entities.Remessa{}, err
	}
	r.DocumentoPdfURL = pdfURL

	msg := fmt.Sprintf("Cheque incluído na remessa %s", r.Protocolo)
	for i, c := range selecionados {
		entrada := entities.NovaEntradaLog(msg, usuario)
		if err := u.cheques.TransitionLocal(ctx, c.ID, entities.LocalTransporte, r.ID, entrada); err != nil {
			restantes := chequeIDsAPartirDe(selecionados, i)
			log.Printf("[remessa][usecase] partial transition remessa_id=%s failed_at=%s remaining=%d err=%v", r.ID, c.ID, len(restantes), err)
			return r, fmt.Errorf("%w: %s", ErrTransicaoParcial, strings.Join(restantes, ", "))
		}
	}

	return r, nil
}

func (u *RemessaUseCase) GetByID(ctx context.Context, id string) (entities.Remessa, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Remessa{}, ErrInvalidRemessaID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Remessa{}, err
	}
	if r.ID == "" {
		return entities.Remessa{}, ErrRemessaNotFound
	}
	return r, nil
}

func (u *RemessaUseCase) List(ctx context.Context) ([]entities.Remessa, error) {
	return u.repo.List(ctx)
}

// Finalizar is the terminal transition. The repository write conditions on
// status <> Finalizada, so losing a race to another finalize still fails.
func (u *RemessaUseCase) Finalizar(ctx context.Context, id string, documentoAssinado *entities.Arquivo, recebidoPor string, usuario entities.Usuario) (entities.Remessa, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Remessa{}, err
	}
	if r.Status == entities.RemessaStatusFinalizada {
		return entities.Remessa{}, ErrRemessaFinalizada
	}
	recebidoPor = strings.TrimSpace(recebidoPor)
	if documentoAssinado == nil || len(documentoAssinado.Conteudo) == 0 || recebidoPor == "" {
		return entities.Remessa{}, ErrCamposFinalizacao
	}

	docURL, err := u.blobs.Upload(ctx, caminhoDocumentoRemessa(r.ID, documentoAssinado.Nome), documentoAssinado.Conteudo, documentoAssinado.ContentType)
	if err != nil {
		return entities.Remessa{}, fmt.Errorf("upload do documento assinado: %w", err)
	}

	entrada := entities.NovaEntradaLog("Remessa finalizada", usuario)
	finalizada, err := u.repo.Finalizar(ctx, r.ID, docURL, recebidoPor, entrada)
	if err != nil {
		return entities.Remessa{}, err
	}
	if finalizada.ID == "" {
		return entities.Remessa{}, ErrRemessaFinalizada
	}

	msg := fmt.Sprintf("Remessa %s finalizada", r.Protocolo)
	for i, resumo := range finalizada.Cheques {
		if err := u.cheques.TransitionLocal(ctx, resumo.ID, entities.LocalDestinoFinal, "", entities.NovaEntradaLog(msg, usuario)); err != nil {
			restantes := make([]string, 0, len(finalizada.Cheques)-i)
			for _, rest := range finalizada.Cheques[i:] {
				restantes = append(restantes, rest.ID)
			}
			log.Printf("[remessa][usecase] partial finalize transition remessa_id=%s remaining=%d err=%v", finalizada.ID, len(restantes), err)
			return finalizada, fmt.Errorf("%w: %s", ErrTransicaoParcial, strings.Join(restantes, ", "))
		}
	}

	return finalizada, nil
}

// AppendCheque adds a brand new check straight into an existing, still open
// remessa. The canonical record is created with the batch-scoped location
// label and the remessa receives the summary plus a log entry via
// list_append.
func (u *RemessaUseCase) AppendCheque(ctx context.Context, remessaID string, in ChequeInput, usuario entities.Usuario) (entities.Cheque, error) {
	r, err := u.GetByID(ctx, remessaID)
	if err != nil {
		return entities.Cheque{}, err
	}
	if r.Status == entities.RemessaStatusFinalizada {
		return entities.Cheque{}, ErrRemessaFinalizada
	}
	if err := in.validar(); err != nil {
		return entities.Cheque{}, err
	}

	regiao := strings.TrimSpace(in.Regiao)
	if regiao == "" {
		regiao = entities.RegiaoNaoDefinida
	}

	id := uuid.NewString()
	anexoURL := ""
	if in.Anexo != nil && len(in.Anexo.Conteudo) > 0 {
		url, err := u.blobs.Upload(ctx, caminhoAnexoCheque(id, in.Anexo.Nome), in.Anexo.Conteudo, in.Anexo.ContentType)
		if err != nil {
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
		Regiao:          regiao,
		Local:           entities.LocalRemessa(r.Protocolo),
		RemessaID:       r.ID,
		ClienteID:       in.ClienteID,
		CreatedAt:       time.Now().UTC(),
		Log:             []entities.LogEntry{entities.NovaEntradaLog("Cheque adicionado à remessa", usuario)},
	}

	c, err = u.cheques.Create(ctx, c)
	if err != nil {
		return entities.Cheque{}, err
	}

	entrada := entities.NovaEntradaLog(fmt.Sprintf("Cheque %s adicionado à remessa", c.NumeroCheque), usuario)
	if err := u.repo.AppendCheque(ctx, r.ID, c.Resumo(), entrada); err != nil {
		return entities.Cheque{}, err
	}

	return c, nil
}

func (u *RemessaUseCase) alocarProtocolo(ctx context.Context) (string, error) {
	for i := 0; i < maxTentativasProtocolo; i++ {
		protocolo := entities.GerarProtocolo()
		existente, err := u.repo.GetByProtocolo(ctx, protocolo)
		if err != nil {
			return "", err
		}
		if existente.ID == "" {
			return protocolo, nil
		}
		log.Printf("[remessa][usecase] protocolo collision protocolo=%s attempt=%d", protocolo, i+1)
	}
	return "", ErrProtocoloIndisponivel
}

func chequeIDsAPartirDe(cheques []entities.Cheque, i int) []string {
	ids := make([]string, 0, len(cheques)-i)
	for _, c := range cheques[i:] {
		ids = append(ids, c.ID)
	}
	return ids
}

func caminhoDocumentoRemessa(remessaID, nome string) string {
	return fmt.Sprintf("remessas/%s/%s", remessaID, nome)
}
