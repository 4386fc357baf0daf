package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estorno is a reversal case: a simpler, protocoled grouping of checks for
// the bank-reversal workflow. Unlike a remessa it keeps its line items in a
// child table instead of an embedded copy, so no dual-write applies.
//
// Storage model (DynamoDB):
//   - table "estornos": PK id
//   - table "estornos_cheques": PK estorno_id, SK id

type Estorno struct {
	ID           string     `json:"id"`
	DataRetirada string     `json:"dataRetirada"`
	QuemRetirou  string     `json:"quemRetirou"`
	Protocolo    string     `json:"protocolo"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	Log          []LogEntry `json:"log,omitempty"`
}

// EstornoStatusEscritorio is the initial (and, in practice, only) case status.
const EstornoStatusEscritorio = "Escritório"

// EstornoCheque is a reversal line item. Lighter schema than Cheque: no
// custody location and no cross-link back to a remessa.
type EstornoCheque struct {
	ID              string          `json:"id"`
	EstornoID       string          `json:"estornoId"`
	Leitora         string          `json:"leitora"`
	NumeroCheque    string          `json:"numeroCheque"`
	Nome            string          `json:"nome"`
	CPF             string          `json:"cpf"`
	Valor           decimal.Decimal `json:"valor"`
	MotivoDevolucao string          `json:"motivoDevolucao,omitempty"`
	NumeroOperacao  string          `json:"numeroOperacao,omitempty"`
	AnexoURL        string          `json:"anexoUrl,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}
