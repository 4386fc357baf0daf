package relatorio

import (
	"bytes"
	"fmt"

	"custodia_cheques/internal/domain/entities"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

// ManifestoPDFGenerator renders the remessa manifest handed to the transport
// carrier: protocol header, one row per check and a signature line for the
// receiving party.
type ManifestoPDFGenerator struct{}

var _ interfaces.IManifestoGenerator = (*ManifestoPDFGenerator)(nil)

func NewManifestoPDFGenerator() *ManifestoPDFGenerator {
	return &ManifestoPDFGenerator{}
}

var colunasManifesto = []struct {
	titulo  string
	largura float64
}{
	{"#", 10},
	{"Número", 28},
	{"Banco", 30},
	{"Vencimento", 28},
	{"Nome", 64},
	{"Valor", 30},
}

func (g *ManifestoPDFGenerator) GerarManifesto(r entities.Remessa) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Remessa de Cheques"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Protocolo: %s", r.Protocolo)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Data da Remessa: %s", r.DataRemessa.Format("02/01/2006 15:04"))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Emitido por: %s", r.EmitidoPor)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range colunasManifesto {
		pdf.CellFormat(col.largura, 7, tr(col.titulo), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, c := range r.Cheques {
		valores := []string{
			fmt.Sprintf("%d", i+1),
			c.NumeroCheque,
			c.Banco,
			c.Vencimento,
			c.Nome,
			c.Valor.StringFixed(2),
		}
		for j, col := range colunasManifesto {
			pdf.CellFormat(col.largura, 7, tr(valores[j]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr("Assinatura de Recebimento:"), "", 1, "L", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(90, 0, "", "T", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("geração do manifesto: %w", err)
	}
	return buf.Bytes(), nil
}
