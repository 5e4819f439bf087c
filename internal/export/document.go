// Package export renders a comparison report to file formats: PDF via
// gofpdf and XLSX via excelize.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/lab"
	"github.com/roach88/shieldlab/internal/structural"
)

// Format is an export file format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPDF, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want pdf or xlsx)", s)
	}
}

// Document is everything a report contains. Load and Targets are optional.
type Document struct {
	Title      string
	Comparison lab.Comparison
	Load       *structural.Result
	Targets    []attenuation.Target
}

// layerNote is printed beneath every summary table.
const layerNote = "HVL and TVL are narrow-beam values and ignore build-up; " +
	"they underestimate the thickness needed for a broad-beam target."

// Write renders doc in format f to w.
func Write(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatPDF:
		return WritePDF(w, doc)
	case FormatXLSX:
		return WriteXLSX(w, doc)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

func (d Document) title() string {
	if d.Title == "" {
		return "Shielding Comparison Report"
	}
	return d.Title
}

// parseHexColor decodes "#rrggbb". Anything else maps to black.
func parseHexColor(s string) (r, g, b int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int((v >> 16) & 0xff), int((v >> 8) & 0xff), int(v & 0xff)
}

func formatRatio(x float64) string {
	return strconv.FormatFloat(x, 'e', 3, 64)
}

func formatLength(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
