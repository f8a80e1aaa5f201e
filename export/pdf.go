package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"scriptstudio/models"
)

const pdfFontFamily = "Helvetica"

// pdfMetrics measures text with the writer's real font tables so the layout
// wraps exactly where the PDF will.
type pdfMetrics struct {
	pdf       *fpdf.Fpdf
	translate func(string) string
}

func (m pdfMetrics) Width(text string, style Style) float64 {
	m.pdf.SetFont(pdfFontFamily, fontStyle(style), style.Size)
	return m.pdf.GetStringWidth(m.translate(text))
}

func fontStyle(style Style) string {
	if style.Bold {
		return "B"
	}
	return ""
}

// PDF lays the script out on A4 pages and serializes them to a PDF
// document.
func PDF(script *models.Script) ([]byte, error) {
	return PDFWithLayout(script, A4, DefaultMargins)
}

// PDFWithLayout is PDF with an explicit page size and margins.
func PDFWithLayout(script *models.Script, size PageSize, margins Margins) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: size.Width, Ht: size.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	translate := pdf.UnicodeTranslatorFromDescriptor("")

	metrics := pdfMetrics{pdf: pdf, translate: translate}
	pages := Layout(script, script.Title(), size, margins, metrics)

	for _, page := range pages {
		pdf.AddPage()
		for _, line := range page.Lines {
			pdf.SetFont(pdfFontFamily, fontStyle(line.Style), line.Style.Size)
			// Line.Y is the top of the line box; Text wants the baseline.
			pdf.Text(line.X, line.Y+line.Style.Size, translate(line.Text))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
