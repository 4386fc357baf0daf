package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLocalRemessa(t *testing.T) {
	assert.Equal(t, LocalCheque("Remessa 150520241234"), LocalRemessa("150520241234"))
}

func TestResumo(t *testing.T) {
	c := Cheque{
		ID:           "c1",
		NumeroCheque: "000123",
		Banco:        "Itaú",
		Vencimento:   "2024-06-01",
		Nome:         "Maria da Silva",
		Valor:        decimal.NewFromInt(150),
		Regiao:       "Sul",
		CPF:          "12345678901",
		AnexoURL:     "https://blobs/cheque.png",
	}

	resumo := c.Resumo()

	assert.Equal(t, "c1", resumo.ID)
	assert.Equal(t, "000123", resumo.NumeroCheque)
	assert.Equal(t, "Itaú", resumo.Banco)
	assert.Equal(t, "Maria da Silva", resumo.Nome)
	assert.True(t, resumo.Valor.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "Sul", resumo.Regiao)
}
