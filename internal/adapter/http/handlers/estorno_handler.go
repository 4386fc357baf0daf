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
	errInvalidEstornoPayload = pkg.NewDomainErrorSimple("INVALID_ESTORNO_INPUT", "Invalid estorno payload", http.StatusBadRequest)
)

// EstornoHandler handles HTTP requests for the reversal sub-ledger.

type EstornoHandler struct {
	usecase usecase.IEstornoUseCase
}

func NewEstornoHandler(uc usecase.IEstornoUseCase) *EstornoHandler {
	return &EstornoHandler{usecase: uc}
}

func (h *EstornoHandler) CreateEstorno(c *gin.Context) {
	var payload request.CriarEstornoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstornoPayload.HTTPStatus, errInvalidEstornoPayload.ToHTTPError())
		return
	}

	cheques := make([]usecase.EstornoChequeInput, 0, len(payload.Cheques))
	for _, item := range payload.Cheques {
		valor, err := item.ResolveValor()
		if err != nil {
			c.JSON(errInvalidEstornoPayload.HTTPStatus, errInvalidEstornoPayload.ToHTTPError())
			return
		}
		cheques = append(cheques, usecase.EstornoChequeInput{
			Leitora:         item.Leitora,
			NumeroCheque:    item.NumeroCheque,
			Nome:            item.Nome,
			CPF:             item.CPF,
			Valor:           valor,
			MotivoDevolucao: item.MotivoDevolucao,
			NumeroOperacao:  item.NumeroOperacao,
		})
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.EstornoInput{
		DataRetirada: payload.DataRetirada,
		QuemRetirou:  payload.QuemRetirou,
		Cheques:      cheques,
	}, usuarioDaRequisicao(c))
	if err != nil {
		log.Printf("[estorno][handler] create failed err=%v", err)
		appErr := mapEstornoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[estorno][handler] create success estorno_id=%s protocolo=%s", created.ID, created.Protocolo)

	c.JSON(http.StatusCreated, response.FromEstorno(created, nil))
}

func (h *EstornoHandler) ListEstornos(c *gin.Context) {
	estornos, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[estorno][handler] list failed err=%v", err)
		appErr := mapEstornoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstornos(estornos))
}

func (h *EstornoHandler) GetEstorno(c *gin.Context) {
	id := c.Param("id")

	estorno, cheques, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapEstornoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstorno(estorno, cheques))
}

// AddCheque appends one line item to an existing estorno, with an optional
// anexo part.
func (h *EstornoHandler) AddCheque(c *gin.Context) {
	id := c.Param("id")

	var form request.EstornoChequeForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidEstornoPayload.HTTPStatus, errInvalidEstornoPayload.ToHTTPError())
		return
	}
	valor, err := form.ResolveValor()
	if err != nil {
		c.JSON(errInvalidEstornoPayload.HTTPStatus, errInvalidEstornoPayload.ToHTTPError())
		return
	}
	anexo, err := lerArquivo(c, "anexo")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ANEXO", "Could not read anexo", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	item, err := h.usecase.AddCheque(c.Request.Context(), id, usecase.EstornoChequeInput{
		Leitora:         form.Leitora,
		NumeroCheque:    form.NumeroCheque,
		Nome:            form.Nome,
		CPF:             form.CPF,
		Valor:           valor,
		MotivoDevolucao: form.MotivoDevolucao,
		NumeroOperacao:  form.NumeroOperacao,
		Anexo:           anexo,
	}, usuarioDaRequisicao(c))
	if err != nil {
		log.Printf("[estorno][handler] add-cheque failed estorno_id=%s err=%v", id, err)
		appErr := mapEstornoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[estorno][handler] add-cheque success estorno_id=%s item_id=%s", id, item.ID)

	c.JSON(http.StatusCreated, response.FromEstornoCheque(item))
}

func (h *EstornoHandler) RemoveCheque(c *gin.Context) {
	estornoID := c.Param("id")
	chequeID := c.Param("chequeId")

	if err := h.usecase.RemoveCheque(c.Request.Context(), estornoID, chequeID); err != nil {
		log.Printf("[estorno][handler] remove-cheque failed estorno_id=%s item_id=%s err=%v", estornoID, chequeID, err)
		appErr := mapEstornoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEstornoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstornoID), errors.Is(err, usecase.ErrCamposObrigatoriosEstorno):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstornoNotFound):
		return pkg.NewDomainErrorSimple("ESTORNO_NOT_FOUND", "Estorno not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstornoChequeNotFound):
		return pkg.NewDomainErrorSimple("ESTORNO_CHEQUE_NOT_FOUND", "Estorno cheque not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
