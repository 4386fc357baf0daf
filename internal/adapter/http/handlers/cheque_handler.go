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
	errInvalidChequePayload = pkg.NewDomainErrorSimple("INVALID_CHEQUE_INPUT", "Invalid cheque payload", http.StatusBadRequest)
)

// ChequeHandler handles HTTP requests for check custody.

type ChequeHandler struct {
	usecase usecase.IChequeUseCase
}

func NewChequeHandler(uc usecase.IChequeUseCase) *ChequeHandler {
	return &ChequeHandler{usecase: uc}
}

// CreateCheque registers a check at the office, with an optional anexo part.
func (h *ChequeHandler) CreateCheque(c *gin.Context) {
	in, appErr := chequeInputDaRequisicao(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in, usuarioDaRequisicao(c))
	if err != nil {
		log.Printf("[cheque][handler] create failed err=%v", err)
		appErr := mapChequeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[cheque][handler] create success cheque_id=%s numero=%s", created.ID, created.NumeroCheque)

	c.JSON(http.StatusCreated, response.FromCheque(created))
}

// ListCheques lists checks. X-Cliente-Id scopes the listing to one client;
// otherwise ?local= filters by custody location.
func (h *ChequeHandler) ListCheques(c *gin.Context) {
	clienteID := c.GetHeader(HeaderClienteID)

	cheques, err := h.usecase.List(c.Request.Context(), clienteID, c.Query("local"))
	if err != nil {
		log.Printf("[cheque][handler] list failed err=%v", err)
		appErr := mapChequeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheques(cheques))
}

func (h *ChequeHandler) GetCheque(c *gin.Context) {
	id := c.Param("id")

	cheque, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapChequeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheque(cheque))
}

// UpdateCheque rewrites the check's writable fields. When the check belongs
// to a remessa, the use case routes the write through the dual-write
// transaction so the embedded summary moves with it.
func (h *ChequeHandler) UpdateCheque(c *gin.Context) {
	id := c.Param("id")
	in, appErr := chequeInputDaRequisicao(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, in, usuarioDaRequisicao(c))
	if err != nil {
		log.Printf("[cheque][handler] update failed cheque_id=%s err=%v", id, err)
		appErr := mapChequeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[cheque][handler] update success cheque_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromCheque(updated))
}

func (h *ChequeHandler) DeleteCheque(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id, usuarioDaRequisicao(c)); err != nil {
		log.Printf("[cheque][handler] delete failed cheque_id=%s err=%v", id, err)
		appErr := mapChequeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[cheque][handler] delete success cheque_id=%s", id)

	c.Status(http.StatusNoContent)
}

func chequeInputDaRequisicao(c *gin.Context) (usecase.ChequeInput, *pkg.AppError) {
	var form request.ChequeForm
	if err := c.ShouldBind(&form); err != nil {
		return usecase.ChequeInput{}, errInvalidChequePayload
	}

	valor, err := form.ResolveValor()
	if err != nil {
		return usecase.ChequeInput{}, errInvalidChequePayload
	}

	anexo, err := lerArquivo(c, "anexo")
	if err != nil {
		return usecase.ChequeInput{}, pkg.NewDomainErrorSimple("INVALID_ANEXO", "Could not read anexo", http.StatusBadRequest)
	}

	return usecase.ChequeInput{
		Leitora:         form.Leitora,
		NumeroCheque:    form.NumeroCheque,
		Banco:           form.Banco,
		Nome:            form.Nome,
		CPF:             form.CPF,
		Valor:           valor,
		Vencimento:      form.Vencimento,
		MotivoDevolucao: form.MotivoDevolucao,
		NumeroOperacao:  form.NumeroOperacao,
		QuemRetirou:     form.QuemRetirou,
		DataRetirada:    form.DataRetirada,
		Regiao:          form.Regiao,
		ClienteID:       form.ClienteID,
		Anexo:           anexo,
	}, nil
}

func mapChequeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChequeID), errors.Is(err, usecase.ErrCamposObrigatorios):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChequeNotFound):
		return pkg.NewDomainErrorSimple("CHEQUE_NOT_FOUND", "Cheque not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChequeEmDestinoFinal):
		return pkg.NewDomainErrorSimple("CHEQUE_AT_FINAL_DESTINATION", "Cheque already at final destination", http.StatusConflict)
	case errors.Is(err, usecase.ErrChequeForaDaRemessa):
		return pkg.NewDomainErrorSimple("CHEQUE_NOT_IN_REMESSA", "Cheque not found in remessa", http.StatusConflict)
	case errors.Is(err, usecase.ErrRemessaDoChequeAusente):
		return pkg.NewDomainErrorSimple("REMESSA_NOT_FOUND", "Remessa referenced by cheque not found", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
