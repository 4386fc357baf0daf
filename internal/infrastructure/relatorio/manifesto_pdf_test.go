package relatorio

import (
	"bytes"
	"testing"
	"time"

	"custodia_cheques/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestGerarManifesto(t *testing.T) {
	g := NewManifestoPDFGenerator()

	r := entities.Remessa{
		ID:          "r1",
		Protocolo:   "150520241234",
		DataRemessa: time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC),
		EmitidoPor:  "Ana",
		Cheques: []entities.ChequeResumo{
			{ID: "c1", NumeroCheque: "000123", Banco: "Itaú", Vencimento: "2024-06-01", Nome: "Maria da Silva", Valor: decimal.NewFromInt(150)},
			{ID: "c2", NumeroCheque: "000124", Banco: "Bradesco", Vencimento: "2024-06-15", Nome: "José Souza", Valor: decimal.RequireFromString("80.50")},
		},
	}

	pdf, err := g.GerarManifesto(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got prefix %q", pdf[:min(8, len(pdf))])
	}
}

func TestGerarManifestoSemCheques(t *testing.T) {
	g := NewManifestoPDFGenerator()

	pdf, err := g.GerarManifesto(entities.Remessa{Protocolo: "150520241234", DataRemessa: time.Now()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("expected a non empty document")
	}
}
