package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrValorInvalido = errors.New("invalid valor")
)

// ChequeForm is the multipart payload for check creation and update. The
// anexo file travels as a separate part and is read by the handler.
type ChequeForm struct {
	Leitora         string `form:"leitora"`
	NumeroCheque    string `form:"numeroCheque"`
	Banco           string `form:"banco"`
	Nome            string `form:"nome"`
	CPF             string `form:"cpf"`
	Valor           string `form:"valor"`
	Vencimento      string `form:"vencimento"`
	MotivoDevolucao string `form:"motivoDevolucao"`
	NumeroOperacao  string `form:"numeroOperacao"`
	QuemRetirou     string `form:"quemRetirou"`
	DataRetirada    string `form:"dataRetirada"`
	Regiao          string `form:"regiao"`
	ClienteID       string `form:"clientId"`
}

func (f ChequeForm) ResolveValor() (decimal.Decimal, error) {
	raw := strings.TrimSpace(f.Valor)
	if raw == "" {
		return decimal.Zero, ErrValorInvalido
	}
	// Brazilian forms send comma decimals.
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrValorInvalido
	}
	return v, nil
}
