package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	landscapeWidth = 277.0
	rowHeight      = 7.0
)

// PDFExporter renders datasets as a landscape A4 table. Rows sharing the
// value of GroupBy are separated by a shaded band naming that value.
type PDFExporter struct {
	GroupBy string
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates the document with a title line and an optional subtitle.
func (e *PDFExporter) Render(data Dataset, title, subtitle string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title != "" {
		pdf.SetFont("Arial", "B", 15)
		pdf.CellFormat(0, 9, tr(title), "", 1, "C", false, 0, "")
	}
	if subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	headers := data.Headers
	if e.GroupBy != "" {
		headers = without(headers, e.GroupBy)
	}
	colWidth := landscapeWidth / float64(len(headers))

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, header := range headers {
			pdf.CellFormat(colWidth, 8, tr(header), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	writeHeader()

	group := ""
	pdf.SetFont("Arial", "", 9)
	for i, row := range data.Rows {
		if e.GroupBy != "" && (i == 0 || row[e.GroupBy] != group) {
			group = row[e.GroupBy]
			pdf.SetFont("Arial", "B", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.CellFormat(landscapeWidth, rowHeight, tr(group), "1", 1, "L", true, 0, "")
			pdf.SetFont("Arial", "", 9)
		}
		for _, header := range headers {
			pdf.CellFormat(colWidth, rowHeight, tr(row[header]), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func without(headers []string, drop string) []string {
	out := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != drop {
			out = append(out, h)
		}
	}
	return out
}
