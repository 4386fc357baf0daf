package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

type EstornoChequeRequest struct {
	Leitora         string `json:"leitora"`
	NumeroCheque    string `json:"numeroCheque" binding:"required"`
	Nome            string `json:"nome" binding:"required"`
	CPF             string `json:"cpf"`
	Valor           string `json:"valor" binding:"required"`
	MotivoDevolucao string `json:"motivoDevolucao"`
	NumeroOperacao  string `json:"numeroOperacao"`
}

func (r EstornoChequeRequest) ResolveValor() (decimal.Decimal, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(r.Valor), ",", ".")
	if raw == "" {
		return decimal.Zero, ErrValorInvalido
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrValorInvalido
	}
	return v, nil
}

type CriarEstornoRequest struct {
	DataRetirada string                 `json:"dataRetirada" binding:"required"`
	QuemRetirou  string                 `json:"quemRetirou" binding:"required"`
	Cheques      []EstornoChequeRequest `json:"cheques" binding:"required"`
}

// EstornoChequeForm is the multipart variant used when a single line item is
// appended to an existing estorno with its anexo.
type EstornoChequeForm struct {
	Leitora         string `form:"leitora"`
	NumeroCheque    string `form:"numeroCheque"`
	Nome            string `form:"nome"`
	CPF             string `form:"cpf"`
	Valor           string `form:"valor"`
	MotivoDevolucao string `form:"motivoDevolucao"`
	NumeroOperacao  string `form:"numeroOperacao"`
}

func (f EstornoChequeForm) ResolveValor() (decimal.Decimal, error) {
	return EstornoChequeRequest{Valor: f.Valor}.ResolveValor()
}
