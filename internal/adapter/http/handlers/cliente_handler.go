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
	errInvalidClientePayload = pkg.NewDomainErrorSimple("INVALID_CLIENTE_INPUT", "Invalid cliente payload", http.StatusBadRequest)
)

// ClienteHandler handles HTTP requests for client accounts.

type ClienteHandler struct {
	usecase usecase.IClienteUseCase
}

func NewClienteHandler(uc usecase.IClienteUseCase) *ClienteHandler {
	return &ClienteHandler{usecase: uc}
}

// CreateCliente registers an account. When no senha is sent, the generated
// credential is returned in this response and never again.
func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	var payload request.CriarClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	created, senhaGerada, err := h.usecase.Create(c.Request.Context(), payload.Nome, payload.Email, payload.Senha)
	if err != nil {
		log.Printf("[cliente][handler] create failed err=%v", err)
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[cliente][handler] create success cliente_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromClienteCriado(created, senhaGerada))
}

func (h *ClienteHandler) ListClientes(c *gin.Context) {
	clientes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[cliente][handler] list failed err=%v", err)
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientes(clientes))
}

func (h *ClienteHandler) GetCliente(c *gin.Context) {
	id := c.Param("id")

	cliente, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

func (h *ClienteHandler) DeleteCliente(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[cliente][handler] delete failed cliente_id=%s err=%v", id, err)
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Login checks credentials and returns the account on success.
func (h *ClienteHandler) Login(c *gin.Context) {
	var payload request.LoginClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	cliente, err := h.usecase.VerificarSenha(c.Request.Context(), payload.Email, payload.Senha)
	if err != nil {
		appErr := mapClienteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

func mapClienteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClienteID), errors.Is(err, usecase.ErrCamposObrigatoriosCliente):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClienteJaExiste):
		return pkg.NewDomainErrorSimple("CLIENTE_ALREADY_EXISTS", "Cliente already exists for this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrCredenciaisInvalidas):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
