package usecase

import (
	"context"
	"errors"
	"testing"

	"custodia_cheques/internal/domain/entities"
	mock_interfaces "custodia_cheques/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newEstornoUseCaseForTest(t *testing.T) (*EstornoUseCase, *mock_interfaces.MockIEstornoRepository, *mock_interfaces.MockIBlobStore) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEstornoRepository(ctrl)
	blobs := mock_interfaces.NewMockIBlobStore(ctrl)
	return NewEstornoUseCase(repo, blobs), repo, blobs
}

func validEstornoInput() EstornoInput {
	return EstornoInput{
		DataRetirada: "2024-05-10",
		QuemRetirou:  "João",
		Cheques: []EstornoChequeInput{
			{NumeroCheque: "000123", Nome: "Maria da Silva", Valor: decimal.NewFromInt(80)},
		},
	}
}

func TestEstornoUseCase_Create(t *testing.T) {
	t.Run("missing header fields", func(t *testing.T) {
		uc, _, _ := newEstornoUseCaseForTest(t)

		in := validEstornoInput()
		in.QuemRetirou = "  "
		if _, err := uc.Create(context.Background(), in, entities.Usuario{}); !errors.Is(err, ErrCamposObrigatoriosEstorno) {
			t.Fatalf("expected ErrCamposObrigatoriosEstorno, got %v", err)
		}
	})

	t.Run("no line items", func(t *testing.T) {
		uc, _, _ := newEstornoUseCaseForTest(t)

		in := validEstornoInput()
		in.Cheques = nil
		if _, err := uc.Create(context.Background(), in, entities.Usuario{}); !errors.Is(err, ErrCamposObrigatoriosEstorno) {
			t.Fatalf("expected ErrCamposObrigatoriosEstorno, got %v", err)
		}
	})

	t.Run("creates the case then the line items", func(t *testing.T) {
		uc, repo, _ := newEstornoUseCaseForTest(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estorno) (entities.Estorno, error) {
				if e.Protocolo == "" {
					t.Fatalf("expected a generated protocolo")
				}
				if e.Status != entities.EstornoStatusEscritorio {
					t.Fatalf("expected status %q, got %q", entities.EstornoStatusEscritorio, e.Status)
				}
				if len(e.Log) != 1 || e.Log[0].Message != "Estorno criado" {
					t.Fatalf("unexpected seed log: %+v", e.Log)
				}
				return e, nil
			})
		repo.EXPECT().AddCheque(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.EstornoCheque) (entities.EstornoCheque, error) {
				if item.EstornoID == "" || item.NumeroCheque != "000123" {
					t.Fatalf("unexpected line item: %+v", item)
				}
				return item, nil
			})

		if _, err := uc.Create(context.Background(), validEstornoInput(), entities.Usuario{Nome: "Ana"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid line item aborts", func(t *testing.T) {
		uc, repo, _ := newEstornoUseCaseForTest(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estorno) (entities.Estorno, error) { return e, nil })

		in := validEstornoInput()
		in.Cheques[0].Valor = decimal.Zero
		if _, err := uc.Create(context.Background(), in, entities.Usuario{}); !errors.Is(err, ErrCamposObrigatoriosEstorno) {
			t.Fatalf("expected ErrCamposObrigatoriosEstorno, got %v", err)
		}
	})
}

func TestEstornoUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newEstornoUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estorno{}, nil)

		if _, _, err := uc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrEstornoNotFound) {
			t.Fatalf("expected ErrEstornoNotFound, got %v", err)
		}
	})

	t.Run("returns the case with its line items", func(t *testing.T) {
		uc, repo, _ := newEstornoUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estorno{ID: "e1"}, nil)
		repo.EXPECT().ListCheques(gomock.Any(), "e1").Return([]entities.EstornoCheque{{ID: "i1"}}, nil)

		e, cheques, err := uc.GetByID(context.Background(), "e1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ID != "e1" || len(cheques) != 1 {
			t.Fatalf("unexpected result: %+v %+v", e, cheques)
		}
	})
}

func TestEstornoUseCase_AddCheque(t *testing.T) {
	t.Run("estorno not found", func(t *testing.T) {
		uc, repo, _ := newEstornoUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estorno{}, nil)

		if _, err := uc.AddCheque(context.Background(), "missing", validEstornoInput().Cheques[0], entities.Usuario{}); !errors.Is(err, ErrEstornoNotFound) {
			t.Fatalf("expected ErrEstornoNotFound, got %v", err)
		}
	})

	t.Run("anexo uploaded before persisting", func(t *testing.T) {
		uc, repo, blobs := newEstornoUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "e1").Return(entities.Estorno{ID: "e1"}, nil)
		blobs.EXPECT().Upload(gomock.Any(), "estornos/e1/anexos/cheque.png", []byte("conteudo"), "image/png").Return("https://blobs/cheque.png", nil)
		repo.EXPECT().AddCheque(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.EstornoCheque) (entities.EstornoCheque, error) {
				if item.AnexoURL != "https://blobs/cheque.png" {
					t.Fatalf("expected anexo url on the line item, got %q", item.AnexoURL)
				}
				return item, nil
			})

		in := validEstornoInput().Cheques[0]
		in.Anexo = &entities.Arquivo{Nome: "cheque.png", ContentType: "image/png", Conteudo: []byte("conteudo")}
		if _, err := uc.AddCheque(context.Background(), "e1", in, entities.Usuario{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstornoUseCase_RemoveCheque(t *testing.T) {
	t.Run("blank ids", func(t *testing.T) {
		uc, _, _ := newEstornoUseCaseForTest(t)

		if err := uc.RemoveCheque(context.Background(), "e1", " "); !errors.Is(err, ErrInvalidEstornoID) {
			t.Fatalf("expected ErrInvalidEstornoID, got %v", err)
		}
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		uc, repo, _ := newEstornoUseCaseForTest(t)

		repo.EXPECT().RemoveCheque(gomock.Any(), "e1", "i1").Return(nil)

		if err := uc.RemoveCheque(context.Background(), "e1", "i1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
