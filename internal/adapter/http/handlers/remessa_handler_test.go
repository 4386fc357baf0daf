package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
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

func newRemessaRouter(uc usecase.IRemessaUseCase) *gin.Engine {
	h := NewRemessaHandler(uc)
	router := gin.New()
	router.POST("/remessas", h.CreateRemessa)
	router.GET("/remessas", h.ListRemessas)
	router.GET("/remessas/:id", h.GetRemessa)
	router.POST("/remessas/:id/finalizar", h.FinalizarRemessa)
	router.POST("/remessas/:id/cheques", h.AppendCheque)
	return router
}

func TestCreateRemessa(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRemessaUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), []string{"c1", "c2"}, entities.Usuario{Nome: "Ana"}).
			Return(entities.Remessa{ID: "r1", Protocolo: "150520241234", Status: entities.RemessaStatusTransporte}, nil)

		req := httptest.NewRequest(http.MethodPost, "/remessas", strings.NewReader(`{"cheque_ids":["c1","c2"]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUsuarioNome, "Ana")
		rec := httptest.NewRecorder()
		newRemessaRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"protocolo":"150520241234"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("missing cheque_ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRemessaUseCase(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/remessas", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newRemessaRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})

	t.Run("partial transition returns multi status with the remessa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRemessaUseCase(ctrl)

		partial := entities.Remessa{ID: "r1", Protocolo: "150520241234", Status: entities.RemessaStatusTransporte}
		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(partial, fmt.Errorf("%w: c2", usecase.ErrTransicaoParcial))

		req := httptest.NewRequest(http.MethodPost, "/remessas", strings.NewReader(`{"cheque_ids":["c1","c2"]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newRemessaRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusMultiStatus {
			t.Fatalf("expected %d, got %d", http.StatusMultiStatus, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"id":"r1"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("cheque away from the office", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRemessaUseCase(ctrl)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Remessa{}, usecase.ErrChequeForaDoEscritorio)

		req := httptest.NewRequest(http.MethodPost, "/remessas", strings.NewReader(`{"cheque_ids":["c1"]}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		newRemessaRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
		}
	})
}

func TestFinalizarRemessa(t *testing.T) {
	t.Run("uploads the signed document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRemessaUseCase(ctrl)

		uc.EXPECT().Finalizar(gomock.Any(), "r1", gomock.Any(), "Carlos", gomock.Any()).DoAndReturn(
			func(_ any, _ string, documento *entities.Arquivo, _ string, _ entities.Usuario) (entities.Remessa, error) {
				if documento == nil || documento.Nome != "assinado.pdf" {
					t.Fatalf("expected the signed document part, got %+v", documento)
				}
				return entities.Remessa{ID: "r1", Status: entities.RemessaStatusFinalizada}, nil
			})

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		if err := w.WriteField("recebidoPor", "Carlos"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fw, err := w.CreateFormFile("documento_assinado", "assinado.pdf")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := fw.Write([]byte("%PDF-fake")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.Close()

		req := httptest.NewRequest(http.MethodPost, "/remessas/r1/finalizar", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())
		rec := httptest.NewRecorder()
		newRemessaRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"status":"Finalizada"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("already finalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRemessaUseCase(ctrl)

		uc.EXPECT().Finalizar(gomock.Any(), "r1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Remessa{}, usecase.ErrRemessaFinalizada)

		req := httptest.NewRequest(http.MethodPost, "/remessas/r1/finalizar", strings.NewReader("recebidoPor=Carlos"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		newRemessaRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected %d, got %d", http.StatusConflict, rec.Code)
		}
	})
}

func TestAppendChequeToRemessa(t *testing.T) {
	t.Run("created inside the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIRemessaUseCase(ctrl)

		uc.EXPECT().AppendCheque(gomock.Any(), "r1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.ChequeInput, _ entities.Usuario) (entities.Cheque, error) {
				return entities.Cheque{ID: "c9", NumeroCheque: in.NumeroCheque, Local: entities.LocalRemessa("150520241234")}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/remessas/r1/cheques", strings.NewReader(chequeFormBody().Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		newRemessaRouter(uc).ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected %d, got %d", http.StatusCreated, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"local":"Remessa 150520241234"`) {
			t.Fatalf("unexpected body: %s", rec.Body.String())
		}
	})
}

func TestMapRemessaError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"nenhum cheque", usecase.ErrNenhumChequeSelecionado, http.StatusBadRequest, "INVALID_REQUEST"},
		{"campos finalizacao", usecase.ErrCamposFinalizacao, http.StatusBadRequest, "INVALID_REQUEST"},
		{"remessa not found", usecase.ErrRemessaNotFound, http.StatusNotFound, "REMESSA_NOT_FOUND"},
		{"cheque not found", usecase.ErrChequeNotFound, http.StatusNotFound, "CHEQUE_NOT_FOUND"},
		{"fora do escritorio", usecase.ErrChequeForaDoEscritorio, http.StatusConflict, "CHEQUE_NOT_AT_OFFICE"},
		{"finalizada", usecase.ErrRemessaFinalizada, http.StatusConflict, "REMESSA_FINALIZADA"},
		{"protocolo", usecase.ErrProtocoloIndisponivel, http.StatusConflict, "PROTOCOLO_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapRemessaError(tc.err)
			if appErr.HTTPStatus != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, appErr.HTTPStatus)
			}
			if appErr.Code != tc.code {
				t.Fatalf("expected %q, got %q", tc.code, appErr.Code)
			}
		})
	}
}
