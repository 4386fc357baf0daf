package handlers

import (
	"io"
	"mime/multipart"
	"strings"

	"custodia_cheques/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUsuarioNome  = "X-Usuario-Nome"
	HeaderUsuarioEmail = "X-Usuario-Email"
	HeaderClienteID    = "X-Cliente-Id"
)

// usuarioDaRequisicao extracts the acting user from the identity headers set
// by the edge. Missing headers fall back to the unknown-user attribution
// inside the entity, never to an empty string in the audit log.
func usuarioDaRequisicao(c *gin.Context) entities.Usuario {
	return entities.Usuario{
		Nome:  strings.TrimSpace(c.GetHeader(HeaderUsuarioNome)),
		Email: strings.TrimSpace(c.GetHeader(HeaderUsuarioEmail)),
	}
}

// lerArquivo reads an optional multipart file field into memory. A missing
// part returns (nil, nil).
func lerArquivo(c *gin.Context, campo string) (*entities.Arquivo, error) {
	fh, err := c.FormFile(campo)
	if err != nil {
		return nil, nil
	}
	return lerArquivoHeader(fh)
}

func lerArquivoHeader(fh *multipart.FileHeader) (*entities.Arquivo, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conteudo, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &entities.Arquivo{
		Nome:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Conteudo:    conteudo,
	}, nil
}
