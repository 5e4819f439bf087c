package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/batch"
	"github.com/roach88/shieldlab/internal/lab"
	"github.com/roach88/shieldlab/internal/store"
	"github.com/roach88/shieldlab/internal/structural"
)

// Views are the payloads handed to OutputFormatter.Success. They marshal
// to JSON directly and render tables through String in text mode.

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// renderTable draws a bordered table. Columns listed in numeric are right
// aligned.
func renderTable(headers []string, rows [][]string, numeric ...int) string {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})
	return t.String()
}

func fmtLength(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }
func fmtRatio(x float64) string  { return strconv.FormatFloat(x, 'e', 3, 64) }

const narrowBeamNote = "HVL and TVL are narrow-beam values and ignore build-up."

type materialRow struct {
	ID           string  `json:"id"`
	Mu           float64 `json:"mu"`
	Density      float64 `json:"density"`
	BuildupSlope float64 `json:"buildup_slope"`
	Color        string  `json:"color,omitempty"`
	HVL          float64 `json:"hvl_cm"`
	TVL          float64 `json:"tvl_cm"`
}

type materialsView struct {
	Model     string        `json:"model"`
	Materials []materialRow `json:"materials"`
}

func (v materialsView) String() string {
	rows := make([][]string, len(v.Materials))
	for i, m := range v.Materials {
		rows[i] = []string{
			m.ID,
			strconv.FormatFloat(m.Mu, 'f', 3, 64),
			strconv.FormatFloat(m.Density, 'f', 3, 64),
			strconv.FormatFloat(m.BuildupSlope, 'f', 2, 64),
			fmtLength(m.HVL),
			fmtLength(m.TVL),
		}
	}
	return renderTable(
		[]string{"Material", "mu (1/cm)", "Density (g/cm3)", "Build-up slope", "HVL (cm)", "TVL (cm)"},
		rows, 1, 2, 3, 4, 5,
	) + "\n" + narrowBeamNote
}

type transmissionView struct {
	attenuation.Result
}

func (v transmissionView) String() string {
	rows := make([][]string, len(v.Points))
	for i, p := range v.Points {
		rows[i] = []string{fmtLength(p.Thickness), fmtRatio(p.Transmission)}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (build-up model: %s)\n", v.Material, v.Model)
	b.WriteString(renderTable([]string{"Thickness (cm)", "I/I0"}, rows, 0, 1))
	fmt.Fprintf(&b, "\nHVL %s cm, TVL %s cm. %s", fmtLength(v.HVL), fmtLength(v.TVL), narrowBeamNote)
	return b.String()
}

type loadView struct {
	structural.Result
	MaxThicknessCm float64 `json:"max_thickness_cm"`
	Transmission   float64 `json:"transmission"`
	Model          string  `json:"model"`
	RecordID       string  `json:"record_id,omitempty"`
}

func (v loadView) String() string {
	rows := [][]string{
		{"Area (m2)", fmtLength(v.AreaM2)},
		{"Volume (m3)", strconv.FormatFloat(v.VolumeM3, 'f', 3, 64)},
		{"Total weight (kg)", strconv.FormatFloat(v.TotalWeightKg, 'f', 1, 64)},
		{"Areal load (kg/m2)", strconv.FormatFloat(v.ArealLoadKgM2, 'f', 1, 64)},
		{"Floor capacity (kg/m2)", strconv.FormatFloat(v.CapacityKgM2, 'f', 1, 64)},
		{"Capacity used (%)", strconv.FormatFloat(v.CapacityUsedPct, 'f', 1, 64)},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s wall\n", v.Material)
	b.WriteString(renderTable([]string{"Metric", "Value"}, rows, 1))
	fmt.Fprintf(&b, "\nVerdict: %s", v.Verdict)
	if v.Verdict == structural.Exceeded {
		fmt.Fprintf(&b, " (over by %.1f kg/m2)", v.OverageKgM2)
	}
	fmt.Fprintf(&b, "\nThickest wall this floor can carry: %s cm", fmtLength(v.MaxThicknessCm))
	fmt.Fprintf(&b, "\nTransmission through the wall: %s (%s model)", fmtRatio(v.Transmission), v.Model)
	writeRecordID(&b, v.RecordID)
	return b.String()
}

type comparisonView struct {
	lab.Comparison
	RecordID string `json:"record_id,omitempty"`
}

func (v comparisonView) String() string {
	if len(v.Entries) == 0 {
		return "No materials selected."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Build-up model: %s\n", v.Model)

	summary := make([][]string, len(v.Summary))
	for i, r := range v.Summary {
		summary[i] = []string{r.Material, fmtLength(r.Density), fmtLength(r.HVL), fmtLength(r.TVL)}
	}
	b.WriteString(renderTable([]string{"Material", "Density (g/cm3)", "HVL (cm)", "TVL (cm)"}, summary, 1, 2, 3))
	b.WriteString("\n" + narrowBeamNote + "\n\n")

	headers := []string{"Thickness (cm)"}
	numeric := []int{0}
	for i, e := range v.Entries {
		headers = append(headers, e.Material.ID)
		numeric = append(numeric, i+1)
	}
	curves := make([][]string, len(v.Domain))
	for i, t := range v.Domain {
		row := []string{fmtLength(t)}
		for _, e := range v.Entries {
			row = append(row, fmtRatio(e.Result.Points[i].Transmission))
		}
		curves[i] = row
	}
	b.WriteString(renderTable(headers, curves, numeric...))
	writeRecordID(&b, v.RecordID)
	return b.String()
}

type targetView struct {
	attenuation.Target
	RecordID string `json:"record_id,omitempty"`
}

func (v targetView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s to transmission %s:\n", v.Material, fmtRatio(v.Transmission))
	fmt.Fprintf(&b, "  %s cm with build-up (%s model)\n", fmtLength(v.BroadBeam), v.Model)
	fmt.Fprintf(&b, "  %s cm narrow beam", fmtLength(v.NarrowBeam))
	writeRecordID(&b, v.RecordID)
	return b.String()
}

type exportView struct {
	Path      string   `json:"path"`
	Format    string   `json:"format"`
	Materials []string `json:"materials"`
	Bytes     int      `json:"bytes"`
}

func (v exportView) String() string {
	return fmt.Sprintf("Wrote %s report (%d bytes, %d materials) to %s", v.Format, v.Bytes, len(v.Materials), v.Path)
}

type batchView struct {
	*batch.Report
}

func (v batchView) String() string {
	var b strings.Builder
	_ = v.Report.WriteText(&b)
	return strings.TrimSuffix(b.String(), "\n")
}

type historyView struct {
	Records []store.Record `json:"records"`
}

func (v historyView) String() string {
	if len(v.Records) == 0 {
		return "No saved records."
	}
	rows := make([][]string, len(v.Records))
	for i, r := range v.Records {
		rows[i] = []string{strconv.FormatInt(r.Seq, 10), r.ID, string(r.Kind), r.Model, compactJSON(r.Request)}
	}
	return renderTable([]string{"Seq", "ID", "Kind", "Model", "Request"}, rows, 0)
}

type recordView struct {
	store.Record
}

func (v recordView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Record %s (#%d, %s", v.ID, v.Seq, v.Kind)
	if v.Model != "" {
		fmt.Fprintf(&b, ", %s model", v.Model)
	}
	b.WriteString(")\n")
	fmt.Fprintf(&b, "Request: %s\n", compactJSON(v.Request))
	b.WriteString("Result:\n")
	b.WriteString(indentJSON(v.Result))
	return b.String()
}

func writeRecordID(b *strings.Builder, id string) {
	if id != "" {
		fmt.Fprintf(b, "\nSaved as %s", id)
	}
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "  ", "  "); err != nil {
		return string(raw)
	}
	return "  " + buf.String()
}
