package handlers

import (
	"errors"
	"log"
	"net/http"

	request "custodia_cheques/internal/adapter/http/dto/request"
	response "custodia_cheques/internal/adapter/http/dto/response"
	"custodia_cheques/internal/usecase"
	"custodia_cheques/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRemessaPayload = pkg.NewDomainErrorSimple("INVALID_REMESSA_INPUT", "Invalid remessa payload", http.StatusBadRequest)
)

// RemessaHandler handles HTTP requests for shipment batches.

type RemessaHandler struct {
	usecase usecase.IRemessaUseCase
}

func NewRemessaHandler(uc usecase.IRemessaUseCase) *RemessaHandler {
	return &RemessaHandler{usecase: uc}
}

// CreateRemessa batches office checks into a new remessa, generates its
// manifest and moves every check to Transporte.
func (h *RemessaHandler) CreateRemessa(c *gin.Context) {
	var payload request.CriarRemessaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRemessaPayload.HTTPStatus, errInvalidRemessaPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ChequeIDs, usuarioDaRequisicao(c))
	if err != nil {
		// A partially transitioned remessa was persisted; return it with the
		// partial status so the caller can retry the remaining checks.
		if errors.Is(err, usecase.ErrTransicaoParcial) {
			log.Printf("[remessa][handler] create partial remessa_id=%s err=%v", created.ID, err)
			c.JSON(http.StatusMultiStatus, response.FromRemessa(created))
			return
		}
		log.Printf("[remessa][handler] create failed err=%v", err)
		appErr := mapRemessaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[remessa][handler] create success remessa_id=%s protocolo=%s", created.ID, created.Protocolo)

	c.JSON(http.StatusCreated, response.FromRemessa(created))
}

func (h *RemessaHandler) ListRemessas(c *gin.Context) {
	remessas, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[remessa][handler] list failed err=%v", err)
		appErr := mapRemessaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRemessas(remessas))
}

func (h *RemessaHandler) GetRemessa(c *gin.Context) {
	id := c.Param("id")

	remessa, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapRemessaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRemessa(remessa))
}

// FinalizarRemessa is the terminal transition: signed receipt uploaded,
// status set to Finalizada and every check moved to Destino Final.
func (h *RemessaHandler) FinalizarRemessa(c *gin.Context) {
	id := c.Param("id")

	var form request.FinalizarRemessaForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidRemessaPayload.HTTPStatus, errInvalidRemessaPayload.ToHTTPError())
		return
	}
	documento, err := lerArquivo(c, "documento_assinado")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DOCUMENTO", "Could not read documento_assinado", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	finalizada, err := h.usecase.Finalizar(c.Request.Context(), id, documento, form.RecebidoPor, usuarioDaRequisicao(c))
	if err != nil {
		if errors.Is(err, usecase.ErrTransicaoParcial) {
			log.Printf("[remessa][handler] finalize partial remessa_id=%s err=%v", id, err)
			c.JSON(http.StatusMultiStatus, response.FromRemessa(finalizada))
			return
		}
		log.Printf("[remessa][handler] finalize failed remessa_id=%s err=%v", id, err)
		appErr := mapRemessaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[remessa][handler] finalize success remessa_id=%s protocolo=%s", finalizada.ID, finalizada.Protocolo)

	c.JSON(http.StatusOK, response.FromRemessa(finalizada))
}

// AppendCheque registers a brand new check directly into an open remessa.
func (h *RemessaHandler) AppendCheque(c *gin.Context) {
	id := c.Param("id")

	in, appErr := chequeInputDaRequisicao(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.AppendCheque(c.Request.Context(), id, in, usuarioDaRequisicao(c))
	if err != nil {
		log.Printf("[remessa][handler] append-cheque failed remessa_id=%s err=%v", id, err)
		appErr := mapRemessaError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[remessa][handler] append-cheque success remessa_id=%s cheque_id=%s", id, created.ID)

	c.JSON(http.StatusCreated, response.FromCheque(created))
}

func mapRemessaError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRemessaID),
		errors.Is(err, usecase.ErrNenhumChequeSelecionado),
		errors.Is(err, usecase.ErrCamposFinalizacao),
		errors.Is(err, usecase.ErrCamposObrigatorios):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRemessaNotFound):
		return pkg.NewDomainErrorSimple("REMESSA_NOT_FOUND", "Remessa not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChequeNotFound):
		return pkg.NewDomainErrorSimple("CHEQUE_NOT_FOUND", "Cheque not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChequeForaDoEscritorio):
		return pkg.NewDomainErrorSimple("CHEQUE_NOT_AT_OFFICE", "Cheque is not at the office", http.StatusConflict)
	case errors.Is(err, usecase.ErrRemessaFinalizada):
		return pkg.NewDomainErrorSimple("REMESSA_FINALIZADA", "Remessa already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrProtocoloIndisponivel):
		return pkg.NewDomainErrorSimple("PROTOCOLO_UNAVAILABLE", "Could not allocate a unique protocolo", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
