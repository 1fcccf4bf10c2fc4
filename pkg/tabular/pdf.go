package tabular

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the table as a paginated PDF grid. The header row repeats
// on every page. Layout is intentionally simple: equal column widths across
// the usable page width.
func (t Table) WritePDF(w io.Writer, title string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
	}

	if len(t.Columns) == 0 {
		return pdf.Output(w)
	}

	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(t.Columns))
	rowH := 6.0

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range t.Columns {
			pdf.CellFormat(colW, rowH, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	writeHeader()
	for _, row := range t.Rows {
		if pdf.GetY()+rowH > pageH-bottom {
			pdf.AddPage()
			pdf.SetY(top)
			writeHeader()
		}
		for _, cell := range normalizeRow(row, len(t.Columns)) {
			pdf.CellFormat(colW, rowH, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
