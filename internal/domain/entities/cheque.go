package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// LocalCheque is the custody state of a physical check.
//
// Lifecycle: Escritório até entrar numa remessa, Transporte enquanto a
// remessa circula, Destino Final quando a remessa é finalizada. Cheques
// adicionados a uma remessa já existente carregam o rótulo da remessa
// ("Remessa <protocolo>") como local.

type LocalCheque string

const (
	LocalEscritorio   LocalCheque = "Escritório"
	LocalTransporte   LocalCheque = "Transporte"
	LocalDestinoFinal LocalCheque = "Destino Final"
)

// LocalRemessa builds the batch-scoped location label.
func LocalRemessa(protocolo string) LocalCheque {
	return LocalCheque(fmt.Sprintf("Remessa %s", protocolo))
}

// Cheque is the canonical check record.
//
// Storage model (DynamoDB, table "cheques"):
//   - PK: id
//   - GSI local-index (PK: local) — office listing for remessa selection
//   - GSI client_id-index (PK: client_id) — client-role scoping
//   - GSI remessa_id-index (PK: remessa_id)

type Cheque struct {
	ID              string          `json:"id"`
	Leitora         string          `json:"leitora"`
	NumeroCheque    string          `json:"numeroCheque"`
	Banco           string          `json:"banco"`
	Nome            string          `json:"nome"`
	CPF             string          `json:"cpf"`
	Valor           decimal.Decimal `json:"valor"`
	Vencimento      string          `json:"vencimento"`
	MotivoDevolucao string          `json:"motivoDevolucao,omitempty"`
	NumeroOperacao  string          `json:"numeroOperacao,omitempty"`
	AnexoURL        string          `json:"anexoUrl,omitempty"`
	QuemRetirou     string          `json:"quemRetirou"`
	DataRetirada    string          `json:"dataRetirada"`
	Regiao          string          `json:"regiao,omitempty"`
	Local           LocalCheque     `json:"local"`
	RemessaID       string          `json:"remessaId,omitempty"`
	ClienteID       string          `json:"clientId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	Log             []LogEntry      `json:"log,omitempty"`
}

// RegiaoNaoDefinida is stored when the edit form leaves the region blank.
const RegiaoNaoDefinida = "Não definido"

// Resumo projects the denormalized subset embedded in a remessa document.
func (c Cheque) Resumo() ChequeResumo {
	return ChequeResumo{
		ID:           c.ID,
		NumeroCheque: c.NumeroCheque,
		Banco:        c.Banco,
		Vencimento:   c.Vencimento,
		Nome:         c.Nome,
		Valor:        c.Valor,
		Regiao:       c.Regiao,
	}
}
