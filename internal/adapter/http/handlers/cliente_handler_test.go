package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"custodia_cheques/internal/adapter/http/handlers/mocks"
	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newClienteRouter(uc usecase.IClienteUseCase) *gin.Engine {
	h := NewClienteHandler(uc)
	router := gin.New()
	router.POST("/clientes", h.CreateCliente)
	router.GET("/clientes", h.ListClientes)
	router.GET("/clientes/:id", h.GetCliente)
	router.DELETE("/clientes/:id", h.DeleteCliente)
	router.POST("/clientes/login", h.Login)
	return router
}

func TestCreateCliente(t *testing.T) {
	t.Run("returns the generated senha once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClienteUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), "Maria", "maria@example.com", "").
			Return(entities.Cliente{ID: "cl1", Nome: "Maria", Email: "maria@example.com"}, "Xk29mP", nil)

		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(`{"nome":"Maria","email":"maria@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newClienteRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"senhaGerada":"Xk29mP"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClienteUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Cliente{}, "", usecase.ErrClienteJaExiste)

		req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(`{"nome":"Maria","email":"maria@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newClienteRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
		}
	})
}

func TestLoginCliente(t *testing.T) {
	t.Run("invalid credentials are unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClienteUseCase(ctrl)

		uc.EXPECT().VerificarSenha(gomock.Any(), "maria@example.com", "errada").
			Return(entities.Cliente{}, usecase.ErrCredenciaisInvalidas)

		req := httptest.NewRequest(http.MethodPost, "/clientes/login", strings.NewReader(`{"email":"maria@example.com","senha":"errada"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newClienteRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("valid credentials return the account without the senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClienteUseCase(ctrl)

		uc.EXPECT().VerificarSenha(gomock.Any(), "maria@example.com", "s3cret").
			Return(entities.Cliente{ID: "cl1", Nome: "Maria", Email: "maria@example.com", SenhaHash: "hash"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/clientes/login", strings.NewReader(`{"email":"maria@example.com","senha":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newClienteRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
		}
		if strings.Contains(rec.Body.String(), "hash") || strings.Contains(rec.Body.String(), "senha") {
			t.Fatalf("credential material leaked into the response: %s", rec.Body.String())
		}
	})
}
