package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"custodia_cheques/internal/adapter/http/handlers/mocks"
	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func chequeFormBody() url.Values {
	return url.Values{
		"numeroCheque": {"000123"},
		"banco":        {"Banco do Brasil"},
		"nome":         {"Maria da Silva"},
		"cpf":          {"12345678901"},
		"valor":        {"150,00"},
		"quemRetirou":  {"João"},
		"dataRetirada": {"2024-05-10"},
	}
}

func newChequeRouter(uc usecase.IChequeUseCase) *gin.Engine {
	h := NewChequeHandler(uc)
	router := gin.New()
	router.POST("/cheques", h.CreateCheque)
	router.GET("/cheques", h.ListCheques)
	router.GET("/cheques/:id", h.GetCheque)
	router.PUT("/cheques/:id", h.UpdateCheque)
	router.DELETE("/cheques/:id", h.DeleteCheque)
	return router
}

func TestCreateCheque(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChequeUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), entities.Usuario{Nome: "Ana"}).DoAndReturn(
			func(_ any, in usecase.ChequeInput, _ entities.Usuario) (entities.Cheque, error) {
				if in.NumeroCheque != "000123" {
					t.Fatalf("unexpected numero %q", in.NumeroCheque)
				}
				if in.Valor.String() != "150" {
					t.Fatalf("expected comma valor parsed, got %s", in.Valor)
				}
				return entities.Cheque{ID: "c1", NumeroCheque: in.NumeroCheque, Valor: in.Valor}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/cheques", strings.NewReader(chequeFormBody().Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(HeaderUsuarioNome, "Ana")
		rec := httptest.NewRecorder()
		newChequeRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"id":"c1"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("invalid valor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChequeUseCase(ctrl)

		body := chequeFormBody()
		body.Set("valor", "abc")
		req := httptest.NewRequest(http.MethodPost, "/cheques", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		newChequeRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestListCheques(t *testing.T) {
	t.Run("cliente header forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChequeUseCase(ctrl)

		uc.EXPECT().List(gomock.Any(), "cliente-1", "").Return([]entities.Cheque{{ID: "c1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/cheques", nil)
		req.Header.Set(HeaderClienteID, "cliente-1")
		rec := httptest.NewRecorder()
		newChequeRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("local filter forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChequeUseCase(ctrl)

		uc.EXPECT().List(gomock.Any(), "", "Escritório").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/cheques?local="+url.QueryEscape("Escritório"), nil)
		rec := httptest.NewRecorder()
		newChequeRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
		}
	})
}

func TestGetCheque(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChequeUseCase(ctrl)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Cheque{}, usecase.ErrChequeNotFound)

		req := httptest.NewRequest(http.MethodGet, "/cheques/missing", nil)
		rec := httptest.NewRecorder()
		newChequeRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected %d, got %d", http.StatusNotFound, rec.Code)
		}
	})
}

func TestDeleteCheque(t *testing.T) {
	t.Run("no content on success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChequeUseCase(ctrl)

		uc.EXPECT().Delete(gomock.Any(), "c1", gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/cheques/c1", nil)
		rec := httptest.NewRecorder()
		newChequeRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
		}
	})

	t.Run("final destination conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIChequeUseCase(ctrl)

		uc.EXPECT().Delete(gomock.Any(), "c1", gomock.Any()).Return(usecase.ErrChequeEmDestinoFinal)

		req := httptest.NewRequest(http.MethodDelete, "/cheques/c1", nil)
		rec := httptest.NewRecorder()
		newChequeRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
		}
	})
}

func TestMapChequeError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"campos obrigatorios", usecase.ErrCamposObrigatorios, http.StatusBadRequest, "INVALID_REQUEST"},
		{"not found", usecase.ErrChequeNotFound, http.StatusNotFound, "CHEQUE_NOT_FOUND"},
		{"destino final", usecase.ErrChequeEmDestinoFinal, http.StatusConflict, "CHEQUE_AT_FINAL_DESTINATION"},
		{"fora da remessa", usecase.ErrChequeForaDaRemessa, http.StatusConflict, "CHEQUE_NOT_IN_REMESSA"},
		{"remessa ausente", usecase.ErrRemessaDoChequeAusente, http.StatusConflict, "REMESSA_NOT_FOUND"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapChequeError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected %q, got %q", tc.code, appErr.Code)
			}
		})
	}
}
