package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"custodia_cheques/internal/domain/entities"
	mock_interfaces "custodia_cheques/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newRemessaUseCaseForTest(t *testing.T) (*RemessaUseCase, *mock_interfaces.MockIRemessaRepository, *mock_interfaces.MockIChequeRepository, *mock_interfaces.MockIBlobStore, *mock_interfaces.MockIManifestoGenerator) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIRemessaRepository(ctrl)
	cheques := mock_interfaces.NewMockIChequeRepository(ctrl)
	blobs := mock_interfaces.NewMockIBlobStore(ctrl)
	manifestos := mock_interfaces.NewMockIManifestoGenerator(ctrl)
	return NewRemessaUseCase(repo, cheques, blobs, manifestos), repo, cheques, blobs, manifestos
}

func chequeNoEscritorio(id string) entities.Cheque {
	return entities.Cheque{
		ID:           id,
		NumeroCheque: "n-" + id,
		Banco:        "Itaú",
		Nome:         "Fulano",
		Valor:        decimal.NewFromInt(10),
		Local:        entities.LocalEscritorio,
	}
}

func TestRemessaUseCase_Create(t *testing.T) {
	t.Run("no cheque selected", func(t *testing.T) {
		uc, _, _, _, _ := newRemessaUseCaseForTest(t)

		if _, err := uc.Create(context.Background(), nil, entities.Usuario{}); !errors.Is(err, ErrNenhumChequeSelecionado) {
			t.Fatalf("expected ErrNenhumChequeSelecionado, got %v", err)
		}
	})

	t.Run("cheque away from the office", func(t *testing.T) {
		uc, _, cheques, _, _ := newRemessaUseCaseForTest(t)

		c := chequeNoEscritorio("c1")
		c.Local = entities.LocalTransporte
		cheques.EXPECT().GetByID(gomock.Any(), "c1").Return(c, nil)

		if _, err := uc.Create(context.Background(), []string{"c1"}, entities.Usuario{}); !errors.Is(err, ErrChequeForaDoEscritorio) {
			t.Fatalf("expected ErrChequeForaDoEscritorio, got %v", err)
		}
	})

	t.Run("snapshots, manifest and transitions", func(t *testing.T) {
		uc, repo, cheques, blobs, manifestos := newRemessaUseCaseForTest(t)

		cheques.EXPECT().GetByID(gomock.Any(), "c1").Return(chequeNoEscritorio("c1"), nil)
		cheques.EXPECT().GetByID(gomock.Any(), "c2").Return(chequeNoEscritorio("c2"), nil)
		repo.EXPECT().GetByProtocolo(gomock.Any(), gomock.Any()).Return(entities.Remessa{}, nil)

		var persisted entities.Remessa
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Remessa) (entities.Remessa, error) {
				persisted = r
				return r, nil
			})
		manifestos.EXPECT().GerarManifesto(gomock.Any()).Return([]byte("%PDF-fake"), nil)
		blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), []byte("%PDF-fake"), "application/pdf").Return("https://blobs/manifesto.pdf", nil)
		repo.EXPECT().SetDocumentoPdfURL(gomock.Any(), gomock.Any(), "https://blobs/manifesto.pdf").Return(nil)
		cheques.EXPECT().TransitionLocal(gomock.Any(), "c1", entities.LocalTransporte, gomock.Any(), gomock.Any()).Return(nil)
		cheques.EXPECT().TransitionLocal(gomock.Any(), "c2", entities.LocalTransporte, gomock.Any(), gomock.Any()).Return(nil)

		created, err := uc.Create(context.Background(), []string{"c1", "c2"}, entities.Usuario{Nome: "Ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.RemessaStatusTransporte {
			t.Fatalf("expected status %q, got %q", entities.RemessaStatusTransporte, created.Status)
		}
		if created.DocumentoPdfURL != "https://blobs/manifesto.pdf" {
			t.Fatalf("expected manifest url, got %q", created.DocumentoPdfURL)
		}
		if len(persisted.Cheques) != 2 || persisted.Cheques[0].ID != "c1" || persisted.Cheques[1].ID != "c2" {
			t.Fatalf("unexpected embedded summaries: %+v", persisted.Cheques)
		}
		if persisted.EmitidoPor != "Ana" {
			t.Fatalf("expected emitido_por attribution, got %q", persisted.EmitidoPor)
		}
		if len(persisted.Log) != 1 || persisted.Log[0].Message != "Remessa criada" {
			t.Fatalf("unexpected seed log: %+v", persisted.Log)
		}
	})

	t.Run("protocolo collisions exhaust retries", func(t *testing.T) {
		uc, repo, cheques, _, _ := newRemessaUseCaseForTest(t)

		cheques.EXPECT().GetByID(gomock.Any(), "c1").Return(chequeNoEscritorio("c1"), nil)
		repo.EXPECT().GetByProtocolo(gomock.Any(), gomock.Any()).Return(entities.Remessa{ID: "other"}, nil).Times(maxTentativasProtocolo)

		if _, err := uc.Create(context.Background(), []string{"c1"}, entities.Usuario{}); !errors.Is(err, ErrProtocoloIndisponivel) {
			t.Fatalf("expected ErrProtocoloIndisponivel, got %v", err)
		}
	})

	t.Run("partial transition keeps the remessa and names the rest", func(t *testing.T) {
		uc, repo, cheques, blobs, manifestos := newRemessaUseCaseForTest(t)

		cheques.EXPECT().GetByID(gomock.Any(), "c1").Return(chequeNoEscritorio("c1"), nil)
		cheques.EXPECT().GetByID(gomock.Any(), "c2").Return(chequeNoEscritorio("c2"), nil)
		repo.EXPECT().GetByProtocolo(gomock.Any(), gomock.Any()).Return(entities.Remessa{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Remessa) (entities.Remessa, error) { return r, nil })
		manifestos.EXPECT().GerarManifesto(gomock.Any()).Return([]byte("pdf"), nil)
		blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil)
		repo.EXPECT().SetDocumentoPdfURL(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		cheques.EXPECT().TransitionLocal(gomock.Any(), "c1", entities.LocalTransporte, gomock.Any(), gomock.Any()).Return(nil)
		cheques.EXPECT().TransitionLocal(gomock.Any(), "c2", entities.LocalTransporte, gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		created, err := uc.Create(context.Background(), []string{"c1", "c2"}, entities.Usuario{})
		if !errors.Is(err, ErrTransicaoParcial) {
			t.Fatalf("expected ErrTransicaoParcial, got %v", err)
		}
		if !strings.Contains(err.Error(), "c2") {
			t.Fatalf("expected the remaining id in the error, got %q", err.Error())
		}
		if created.ID == "" {
			t.Fatalf("expected the persisted remessa back on partial failure")
		}
	})
}

func TestRemessaUseCase_Finalizar(t *testing.T) {
	documento := &entities.Arquivo{Nome: "assinado.pdf", ContentType: "application/pdf", Conteudo: []byte("pdf")}

	t.Run("already finalized", func(t *testing.T) {
		uc, repo, _, _, _ := newRemessaUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Remessa{ID: "r1", Status: entities.RemessaStatusFinalizada}, nil)

		if _, err := uc.Finalizar(context.Background(), "r1", documento, "Carlos", entities.Usuario{}); !errors.Is(err, ErrRemessaFinalizada) {
			t.Fatalf("expected ErrRemessaFinalizada, got %v", err)
		}
	})

	t.Run("missing signed document or receiver", func(t *testing.T) {
		uc, repo, _, _, _ := newRemessaUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Remessa{ID: "r1", Status: entities.RemessaStatusTransporte}, nil).Times(2)

		if _, err := uc.Finalizar(context.Background(), "r1", nil, "Carlos", entities.Usuario{}); !errors.Is(err, ErrCamposFinalizacao) {
			t.Fatalf("expected ErrCamposFinalizacao, got %v", err)
		}
		if _, err := uc.Finalizar(context.Background(), "r1", documento, "  ", entities.Usuario{}); !errors.Is(err, ErrCamposFinalizacao) {
			t.Fatalf("expected ErrCamposFinalizacao, got %v", err)
		}
	})

	t.Run("lost race maps to finalized error", func(t *testing.T) {
		uc, repo, _, blobs, _ := newRemessaUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Remessa{ID: "r1", Status: entities.RemessaStatusTransporte}, nil)
		blobs.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("url", nil)
		repo.EXPECT().Finalizar(gomock.Any(), "r1", "url", "Carlos", gomock.Any()).Return(entities.Remessa{}, nil)

		if _, err := uc.Finalizar(context.Background(), "r1", documento, "Carlos", entities.Usuario{}); !errors.Is(err, ErrRemessaFinalizada) {
			t.Fatalf("expected ErrRemessaFinalizada, got %v", err)
		}
	})

	t.Run("moves every cheque to the final destination", func(t *testing.T) {
		uc, repo, cheques, blobs, _ := newRemessaUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Remessa{ID: "r1", Protocolo: "150520241234", Status: entities.RemessaStatusTransporte}, nil)
		blobs.EXPECT().Upload(gomock.Any(), "remessas/r1/assinado.pdf", []byte("pdf"), "application/pdf").Return("https://blobs/assinado.pdf", nil)
		finalizada := entities.Remessa{
			ID:        "r1",
			Protocolo: "150520241234",
			Status:    entities.RemessaStatusFinalizada,
			Cheques:   []entities.ChequeResumo{{ID: "c1"}, {ID: "c2"}},
		}
		repo.EXPECT().Finalizar(gomock.Any(), "r1", "https://blobs/assinado.pdf", "Carlos", gomock.Any()).Return(finalizada, nil)
		cheques.EXPECT().TransitionLocal(gomock.Any(), "c1", entities.LocalDestinoFinal, "", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ entities.LocalCheque, _ string, entrada entities.LogEntry) error {
				if entrada.Message != "Remessa 150520241234 finalizada" {
					t.Fatalf("unexpected transition log message %q", entrada.Message)
				}
				return nil
			})
		cheques.EXPECT().TransitionLocal(gomock.Any(), "c2", entities.LocalDestinoFinal, "", gomock.Any()).Return(nil)

		got, err := uc.Finalizar(context.Background(), "r1", documento, "Carlos", entities.Usuario{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.RemessaStatusFinalizada {
			t.Fatalf("expected finalized status, got %q", got.Status)
		}
	})
}

func TestRemessaUseCase_AppendCheque(t *testing.T) {
	t.Run("finalized remessa rejects new cheques", func(t *testing.T) {
		uc, repo, _, _, _ := newRemessaUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Remessa{ID: "r1", Status: entities.RemessaStatusFinalizada}, nil)

		if _, err := uc.AppendCheque(context.Background(), "r1", validChequeInput(), entities.Usuario{}); !errors.Is(err, ErrRemessaFinalizada) {
			t.Fatalf("expected ErrRemessaFinalizada, got %v", err)
		}
	})

	t.Run("creates the canonical record inside the batch", func(t *testing.T) {
		uc, repo, cheques, _, _ := newRemessaUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.Remessa{ID: "r1", Protocolo: "150520241234", Status: entities.RemessaStatusTransporte}, nil)
		cheques.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cheque) (entities.Cheque, error) {
				if c.Local != entities.LocalRemessa("150520241234") {
					t.Fatalf("expected batch-scoped local, got %q", c.Local)
				}
				if c.RemessaID != "r1" {
					t.Fatalf("expected remessa back-reference, got %q", c.RemessaID)
				}
				if len(c.Log) != 1 || c.Log[0].Message != "Cheque adicionado à remessa" {
					t.Fatalf("unexpected seed log: %+v", c.Log)
				}
				return c, nil
			})
		repo.EXPECT().AppendCheque(gomock.Any(), "r1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, resumo entities.ChequeResumo, entrada entities.LogEntry) error {
				if resumo.NumeroCheque != "000123" {
					t.Fatalf("unexpected summary: %+v", resumo)
				}
				if entrada.Message != "Cheque 000123 adicionado à remessa" {
					t.Fatalf("unexpected remessa log message %q", entrada.Message)
				}
				return nil
			})

		created, err := uc.AppendCheque(context.Background(), "r1", validChequeInput(), entities.Usuario{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Regiao != entities.RegiaoNaoDefinida {
			t.Fatalf("expected default regiao, got %q", created.Regiao)
		}
	})
}
