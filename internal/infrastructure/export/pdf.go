package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"mystore/internal/core/types"
	"mystore/internal/domain/reports"
)

// WritePDF writes the report as an A4 portrait PDF.
func WritePDF(w io.Writer, s *reports.Summary) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetTitle(Title, true)
	pdf.AddPage()

	// Core fonts are cp1252; accents in names need translating.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetTextColor(0x2F, 0x4F, 0x4F)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, tr(Title), "B", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(0x5A, 0x8F, 0x7B)
	pdf.CellFormat(contentW, 6, tr("Filtro aplicado: "+s.Description), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Profit card ──────────────────────────────────────────────────────────
	pdf.SetFillColor(0x5A, 0x8F, 0x7B)
	pdf.SetTextColor(0xFF, 0xFF, 0xFF)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 8, tr("Lucro Total (Período)"), "", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 12, types.Format(s.PeriodProfit), "", 1, "C", true, 0, "")
	pdf.Ln(6)

	// ── Table ────────────────────────────────────────────────────────────────
	widths := []float64{contentW * 0.32, contentW * 0.17, contentW * 0.17, contentW * 0.16, contentW * 0.18}
	headers := []string{"Produto", "Entrada (Total)", "Saída (Período)", "Estoque (Atual)", "Lucro (Período)"}

	pdf.SetFillColor(0x2F, 0x4F, 0x4F)
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetTextColor(0x32, 0x5E, 0x54)
	pdf.SetFont("Helvetica", "", 9)
	for n, item := range s.Items {
		fill := n%2 == 1
		pdf.SetFillColor(0xF7, 0xF5, 0xEF)
		name := item.Name
		if len([]rune(name)) > 34 {
			name = string([]rune(name)[:33]) + "..."
		}
		pdf.CellFormat(widths[0], 6, tr(name), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%d un.", item.TotalEntered), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%d un.", item.SoldInPeriod), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%d un.", item.AvailableNow), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(widths[4], 6, types.Format(item.ProfitInPeriod), "1", 1, "L", fill, 0, "")
	}

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, tr("Gerado em "+s.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}
