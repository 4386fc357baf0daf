package usecase

import (
	"context"
	"errors"
	"testing"

	"custodia_cheques/internal/domain/entities"
	mock_interfaces "custodia_cheques/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newClienteUseCaseForTest(t *testing.T) (*ClienteUseCase, *mock_interfaces.MockIClienteRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIClienteRepository(ctrl)
	return NewClienteUseCase(repo), repo
}

func clienteComSenha(t *testing.T, senha string) entities.Cliente {
	t.Helper()
	hash, salt, err := hashSenha(senha)
	if err != nil {
		t.Fatalf("unexpected error hashing: %v", err)
	}
	return entities.Cliente{ID: "cl1", Nome: "Maria", Email: "maria@example.com", SenhaHash: hash, SenhaSalt: salt}
}

func TestClienteUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc, _ := newClienteUseCaseForTest(t)

		if _, _, err := uc.Create(context.Background(), " ", "maria@example.com", ""); !errors.Is(err, ErrCamposObrigatoriosCliente) {
			t.Fatalf("expected ErrCamposObrigatoriosCliente, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.Cliente{ID: "other"}, nil)

		if _, _, err := uc.Create(context.Background(), "Maria", "maria@example.com", "s3cret"); !errors.Is(err, ErrClienteJaExiste) {
			t.Fatalf("expected ErrClienteJaExiste, got %v", err)
		}
	})

	t.Run("hashes the provided senha", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.Cliente{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
				if c.SenhaHash == "" || c.SenhaSalt == "" {
					t.Fatalf("expected hash and salt on the record")
				}
				ok, err := verificarSenha("s3cret", c.SenhaSalt, c.SenhaHash)
				if err != nil || !ok {
					t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
				}
				return c, nil
			})

		_, senhaGerada, err := uc.Create(context.Background(), "Maria", "maria@example.com", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if senhaGerada != "" {
			t.Fatalf("expected no generated senha, got %q", senhaGerada)
		}
	})

	t.Run("generates a senha when none is given", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.Cliente{}, nil)

		var persisted entities.Cliente
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
				persisted = c
				return c, nil
			})

		_, senhaGerada, err := uc.Create(context.Background(), "Maria", "maria@example.com", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(senhaGerada) != 6 {
			t.Fatalf("expected a 6 character generated senha, got %q", senhaGerada)
		}
		ok, err := verificarSenha(senhaGerada, persisted.SenhaSalt, persisted.SenhaHash)
		if err != nil || !ok {
			t.Fatalf("generated senha does not verify: ok=%v err=%v", ok, err)
		}
	})
}

func TestClienteUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Cliente{}, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("deletes after lookup", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByID(gomock.Any(), "cl1").Return(entities.Cliente{ID: "cl1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "cl1").Return(nil)

		if err := uc.Delete(context.Background(), "cl1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestClienteUseCase_VerificarSenha(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.Cliente{}, nil)

		if _, err := uc.VerificarSenha(context.Background(), "maria@example.com", "s3cret"); !errors.Is(err, ErrCredenciaisInvalidas) {
			t.Fatalf("expected ErrCredenciaisInvalidas, got %v", err)
		}
	})

	t.Run("wrong senha", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(clienteComSenha(t, "s3cret"), nil)

		if _, err := uc.VerificarSenha(context.Background(), "maria@example.com", "errada"); !errors.Is(err, ErrCredenciaisInvalidas) {
			t.Fatalf("expected ErrCredenciaisInvalidas, got %v", err)
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		uc, repo := newClienteUseCaseForTest(t)

		repo.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(clienteComSenha(t, "s3cret"), nil)

		c, err := uc.VerificarSenha(context.Background(), "maria@example.com", "s3cret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "cl1" {
			t.Fatalf("unexpected cliente: %+v", c)
		}
	})
}
