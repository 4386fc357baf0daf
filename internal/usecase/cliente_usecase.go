package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClienteNotFound           = errors.New("cliente not found")
	ErrInvalidClienteID          = errors.New("invalid cliente id")
	ErrCamposObrigatoriosCliente = errors.New("missing required cliente fields")
	ErrClienteJaExiste           = errors.New("cliente already exists for this email")
	ErrCredenciaisInvalidas      = errors.New("invalid cliente credentials")
)

// IClienteUseCase manages client-role accounts. Passwords are hashed with
// argon2id before persistence; when senha is empty a 6-character credential
// is generated and returned in clear text exactly once, on create.

type IClienteUseCase interface {
	Create(ctx context.Context, nome, email, senha string) (cliente entities.Cliente, senhaGerada string, err error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context) ([]entities.Cliente, error)
	Delete(ctx context.Context, id string) error
	VerificarSenha(ctx context.Context, email, senha string) (entities.Cliente, error)
}

type ClienteUseCase struct {
	repo interfaces.IClienteRepository
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

func (u *ClienteUseCase) Create(ctx context.Context, nome, email, senha string) (entities.Cliente, string, error) {
	nome = strings.TrimSpace(nome)
	email = strings.TrimSpace(email)
	if nome == "" || email == "" {
		return entities.Cliente{}, "", ErrCamposObrigatoriosCliente
	}

	existente, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Cliente{}, "", err
	}
	if existente.ID != "" {
		return entities.Cliente{}, "", ErrClienteJaExiste
	}

	senhaGerada := ""
	if senha == "" {
		senhaGerada, err = gerarSenha()
		if err != nil {
			return entities.Cliente{}, "", err
		}
		senha = senhaGerada
	}

	hash, salt, err := hashSenha(senha)
	if err != nil {
		return entities.Cliente{}, "", err
	}

	c := entities.Cliente{
		ID:        uuid.NewString(),
		Nome:      nome,
		Email:     email,
		SenhaHash: hash,
		SenhaSalt: salt,
		CreatedAt: time.Now().UTC(),
	}
	c, err = u.repo.Create(ctx, c)
	if err != nil {
		return entities.Cliente{}, "", err
	}
	return c, senhaGerada, nil
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidClienteID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) List(ctx context.Context) ([]entities.Cliente, error) {
	return u.repo.List(ctx)
}

func (u *ClienteUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *ClienteUseCase) VerificarSenha(ctx context.Context, email, senha string) (entities.Cliente, error) {
	email = strings.TrimSpace(email)
	if email == "" || senha == "" {
		return entities.Cliente{}, ErrCredenciaisInvalidas
	}

	c, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrCredenciaisInvalidas
	}

	ok, err := verificarSenha(senha, c.SenhaSalt, c.SenhaHash)
	if err != nil {
		return entities.Cliente{}, err
	}
	if !ok {
		return entities.Cliente{}, ErrCredenciaisInvalidas
	}
	return c, nil
}
