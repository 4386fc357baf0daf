package entities

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// RemessaStatus is the shipment batch state. The machine has a single
// transition: Transporte --finalizar--> Finalizada (terminal).

type RemessaStatus string

const (
	RemessaStatusTransporte RemessaStatus = "Transporte"
	RemessaStatusFinalizada RemessaStatus = "Finalizada"
)

// ChequeResumo is the denormalized check summary embedded in a remessa for
// fast listing. It exists purely for the read path; the dual-write
// transaction keeps it in sync with the canonical record.
type ChequeResumo struct {
	ID           string          `json:"id"`
	NumeroCheque string          `json:"numeroCheque"`
	Banco        string          `json:"banco"`
	Vencimento   string          `json:"vencimento"`
	Nome         string          `json:"nome"`
	Valor        decimal.Decimal `json:"valor"`
	Regiao       string          `json:"regiao,omitempty"`
}

// Remessa is a protocoled bundle of checks shipped together.
//
// Storage model (DynamoDB, table "remessas"):
//   - PK: id
//   - GSI protocolo-index (PK: protocolo) — collision check on creation
//
// Versao guards the embedded cheque list under the dual-write transaction:
// every transactional rewrite of the list increments it and conditions on the
// value it read.

type Remessa struct {
	ID                   string         `json:"id"`
	Protocolo            string         `json:"protocolo"`
	DataRemessa          time.Time      `json:"dataRemessa"`
	EmitidoPor           string         `json:"emitidoPor"`
	Cheques              []ChequeResumo `json:"cheques"`
	Status               RemessaStatus  `json:"status"`
	DocumentoPdfURL      string         `json:"documentoPdfUrl,omitempty"`
	DocumentoAssinadoURL string         `json:"documentoAssinadoUrl,omitempty"`
	RecebidoPor          string         `json:"recebidoPor,omitempty"`
	Versao               int64          `json:"-"`
	Log                  []LogEntry     `json:"log,omitempty"`
}

// IndexCheque locates a summary by check id. Returns -1 when absent.
func (r Remessa) IndexCheque(chequeID string) int {
	for i, c := range r.Cheques {
		if c.ID == chequeID {
			return i
		}
	}
	return -1
}

// GerarProtocolo builds the human-facing batch identifier: current date as
// ddMMyyyy followed by 4 random digits. Not unique by construction; callers
// that need uniqueness check the protocolo index and regenerate.
func GerarProtocolo() string {
	return fmt.Sprintf("%s%d", time.Now().Format("02012006"), 1000+rand.Intn(9000))
}
