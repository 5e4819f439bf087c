package export

import (
	"fmt"
	"io"
	"math"

	"github.com/phpdave11/gofpdf"

	"github.com/roach88/shieldlab/internal/attenuation"
)

// Page geometry in mm (A4 portrait, 10mm margins).
const (
	pageWidth  = 190.0
	rowHeight  = 6.0
	chartH     = 80.0
	chartYMin  = 1e-4
	chartYMax  = 1.1
	maxPDFRows = 40
)

// compressPDF controls page stream compression. Tests turn it off to
// inspect the rendered text.
var compressPDF = true

// WritePDF renders doc as a PDF report. Text is drawn with the cp1252 core
// fonts, so material ids and the title are translated from UTF-8.
func WritePDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compressPDF)
	pdf.SetTitle(doc.title(), true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.title()))
	pdf.Ln(12)

	cmp := doc.Comparison
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Build-up model: %s", cmp.Model))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Thickness range: 0 - %s cm, %d samples", formatLength(attenuation.Domain(cmp.Domain).Max()), len(cmp.Domain)))
	pdf.Ln(10)

	if len(cmp.Entries) > 0 {
		drawChart(pdf, tr, doc)
		writeSummaryTable(pdf, tr, doc)
		writeTransmissionTable(pdf, tr, doc)
	} else {
		pdf.Cell(0, 6, "No materials selected.")
		pdf.Ln(8)
	}

	if len(doc.Targets) > 0 {
		writeTargets(pdf, tr, doc)
	}
	if doc.Load != nil {
		writeLoad(pdf, tr, doc)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

// drawChart plots every curve on a log-scale y axis clamped to
// [chartYMin, chartYMax].
func drawChart(pdf *gofpdf.Fpdf, tr func(string) string, doc Document) {
	cmp := doc.Comparison
	heading(pdf, "Transmission (broad beam)")

	x0, y0 := 25.0, pdf.GetY()
	width := pageWidth - 55
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x0, y0, width, chartH, "D")

	logMin, logMax := math.Log10(chartYMin), math.Log10(chartYMax)
	yFor := func(v float64) float64 {
		v = math.Min(math.Max(v, chartYMin), chartYMax)
		return y0 + chartH*(logMax-math.Log10(v))/(logMax-logMin)
	}
	maxT := attenuation.Domain(cmp.Domain).Max()
	xFor := func(t float64) float64 {
		if maxT == 0 {
			return x0
		}
		return x0 + width*t/maxT
	}

	pdf.SetFont("Helvetica", "", 8)
	for exp := -4; exp <= 0; exp++ {
		y := yFor(math.Pow(10, float64(exp)))
		pdf.Text(x0-12, y+1, fmt.Sprintf("1e%d", exp))
	}
	pdf.Text(x0, y0+chartH+5, "0")
	pdf.Text(x0+width-8, y0+chartH+5, formatLength(maxT)+" cm")

	pdf.SetLineWidth(0.5)
	for i, e := range cmp.Entries {
		r, g, b := parseHexColor(e.Material.Color)
		pdf.SetDrawColor(r, g, b)
		pts := e.Result.Points
		for j := 1; j < len(pts); j++ {
			pdf.Line(xFor(pts[j-1].Thickness), yFor(pts[j-1].Transmission),
				xFor(pts[j].Thickness), yFor(pts[j].Transmission))
		}

		// Legend
		ly := y0 + 4 + float64(i)*5
		pdf.Line(x0+width+3, ly, x0+width+9, ly)
		pdf.Text(x0+width+11, ly+1, tr(e.Material.ID))
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.SetY(y0 + chartH + 10)
}

func writeSummaryTable(pdf *gofpdf.Fpdf, tr func(string) string, doc Document) {
	heading(pdf, "Summary")

	headers := []string{"Material", "Density (g/cm3)", "HVL (cm)", "TVL (cm)"}
	col := pageWidth / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range headers {
		pdf.CellFormat(col, rowHeight, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Comparison.Summary {
		pdf.CellFormat(col, rowHeight, tr(row.Material), "1", 0, "L", false, 0, "")
		pdf.CellFormat(col, rowHeight, formatLength(row.Density), "1", 0, "R", false, 0, "")
		pdf.CellFormat(col, rowHeight, formatLength(row.HVL), "1", 0, "R", false, 0, "")
		pdf.CellFormat(col, rowHeight, formatLength(row.TVL), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, layerNote, "", "L", false)
	pdf.Ln(4)
}

// writeTransmissionTable lists at most maxPDFRows samples, evenly picked
// from the domain.
func writeTransmissionTable(pdf *gofpdf.Fpdf, tr func(string) string, doc Document) {
	cmp := doc.Comparison
	heading(pdf, "Transmission ratio I/I0")

	col := pageWidth / float64(len(cmp.Entries)+1)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col, rowHeight, "t (cm)", "1", 0, "C", false, 0, "")
	for _, e := range cmp.Entries {
		pdf.CellFormat(col, rowHeight, tr(e.Material.ID), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, i := range sampleRows(len(cmp.Domain), maxPDFRows) {
		pdf.CellFormat(col, rowHeight, formatLength(cmp.Domain[i]), "1", 0, "R", false, 0, "")
		for _, e := range cmp.Entries {
			pdf.CellFormat(col, rowHeight, formatRatio(e.Result.Points[i].Transmission), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func writeTargets(pdf *gofpdf.Fpdf, tr func(string) string, doc Document) {
	heading(pdf, "Thickness for target transmission")

	for _, t := range doc.Targets {
		pdf.Cell(0, rowHeight, fmt.Sprintf("%s to %s: %s cm broad beam (%s cm narrow beam, %s model)",
			tr(t.Material), formatRatio(t.Transmission), formatLength(t.BroadBeam), formatLength(t.NarrowBeam), t.Model))
		pdf.Ln(rowHeight)
	}
	pdf.Ln(4)
}

func writeLoad(pdf *gofpdf.Fpdf, tr func(string) string, doc Document) {
	l := doc.Load
	heading(pdf, "Structural load")

	lines := []string{
		fmt.Sprintf("Material: %s", tr(l.Material)),
		fmt.Sprintf("Area: %.2f m2, volume: %.3f m3", l.AreaM2, l.VolumeM3),
		fmt.Sprintf("Total weight: %.1f kg", l.TotalWeightKg),
		fmt.Sprintf("Areal load: %.1f kg/m2 of %.1f kg/m2 (%.1f%%)", l.ArealLoadKgM2, l.CapacityKgM2, l.CapacityUsedPct),
		fmt.Sprintf("Verdict: %s", l.Verdict),
	}
	if l.OverageKgM2 > 0 {
		lines = append(lines, fmt.Sprintf("Overage: %.1f kg/m2", l.OverageKgM2))
	}
	for _, line := range lines {
		pdf.Cell(0, rowHeight, line)
		pdf.Ln(rowHeight)
	}
}

// sampleRows returns up to limit indexes spread evenly over [0, n), always
// including the first and last.
func sampleRows(n, limit int) []int {
	if n <= limit {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	idx := make([]int, limit)
	for i := range idx {
		idx[i] = int(math.Round(float64(i) * float64(n-1) / float64(limit-1)))
	}
	return idx
}
