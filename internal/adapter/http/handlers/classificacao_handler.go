package handlers

import (
	"net/http"

	"custodia_cheques/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ListClassificacoes serves the static return-reason table.
func ListClassificacoes(c *gin.Context) {
	c.JSON(http.StatusOK, entities.Classificacoes)
}
