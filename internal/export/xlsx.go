package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/roach88/shieldlab/internal/report"
)

const (
	sheetSummary      = "Summary"
	sheetTransmission = "Transmission"
	sheetTargets      = "Targets"
	sheetLoad         = "Load"
)

// WriteXLSX renders doc as a workbook. Transmission values are written at
// full precision; the sheet holds every sample of the domain.
func WriteXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	if err := writeSummarySheet(f, doc, bold); err != nil {
		return err
	}
	if len(doc.Comparison.Entries) > 0 {
		if err := writeTransmissionSheet(f, doc, bold); err != nil {
			return err
		}
	}
	if len(doc.Targets) > 0 {
		if err := writeTargetsSheet(f, doc, bold); err != nil {
			return err
		}
	}
	if doc.Load != nil {
		if err := writeLoadSheet(f, doc, bold); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, doc Document, bold int) error {
	rows := [][]any{
		{doc.title()},
		{"Build-up model", doc.Comparison.Model},
		{"Samples", len(doc.Comparison.Domain)},
		{},
		{"Material", "Density (g/cm3)", "HVL (cm)", "TVL (cm)"},
	}
	for _, r := range doc.Comparison.Summary {
		rows = append(rows, []any{r.Material, r.Density, r.HVL, r.TVL})
	}
	rows = append(rows, []any{}, []any{layerNote})

	if err := setRows(f, sheetSummary, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, "A5", "D5", bold); err != nil {
		return fmt.Errorf("xlsx %s: %w", sheetSummary, err)
	}
	return f.SetColWidth(sheetSummary, "A", "D", 18)
}

func writeTransmissionSheet(f *excelize.File, doc Document, bold int) error {
	if _, err := f.NewSheet(sheetTransmission); err != nil {
		return fmt.Errorf("xlsx %s: %w", sheetTransmission, err)
	}

	cmp := doc.Comparison
	header := []any{"Thickness (cm)"}
	for _, e := range cmp.Entries {
		header = append(header, e.Material.ID)
	}
	rows := [][]any{header}
	for i, t := range cmp.Domain {
		row := []any{t}
		for _, e := range cmp.Entries {
			row = append(row, e.Result.Points[i].Transmission)
		}
		rows = append(rows, row)
	}
	if err := setRows(f, sheetTransmission, rows); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("xlsx %s: %w", sheetTransmission, err)
	}
	if err := f.SetCellStyle(sheetTransmission, "A1", last, bold); err != nil {
		return fmt.Errorf("xlsx %s: %w", sheetTransmission, err)
	}

	return addTransmissionChart(f, cmp.Entries, len(cmp.Domain))
}

// addTransmissionChart places a log-scale line chart to the right of the
// data table.
func addTransmissionChart(f *excelize.File, entries []report.Entry, samples int) error {
	categories := fmt.Sprintf("%s!$A$2:$A$%d", sheetTransmission, samples+1)

	series := make([]excelize.ChartSeries, 0, len(entries))
	for i := range entries {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return fmt.Errorf("xlsx chart: %w", err)
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("%s!$%s$1", sheetTransmission, col),
			Categories: categories,
			Values:     fmt.Sprintf("%s!$%s$2:$%s$%d", sheetTransmission, col, col, samples+1),
		})
	}

	anchor, err := excelize.CoordinatesToCellName(len(entries)+3, 2)
	if err != nil {
		return fmt.Errorf("xlsx chart: %w", err)
	}
	err = f.AddChart(sheetTransmission, anchor, &excelize.Chart{
		Type:   excelize.Line,
		Series: series,
		YAxis:  excelize.ChartAxis{LogBase: 10},
		Legend: excelize.ChartLegend{Position: "bottom"},
	})
	if err != nil {
		return fmt.Errorf("xlsx chart: %w", err)
	}
	return nil
}

func writeTargetsSheet(f *excelize.File, doc Document, bold int) error {
	if _, err := f.NewSheet(sheetTargets); err != nil {
		return fmt.Errorf("xlsx %s: %w", sheetTargets, err)
	}

	rows := [][]any{{"Material", "Model", "Transmission", "Broad beam (cm)", "Narrow beam (cm)"}}
	for _, t := range doc.Targets {
		rows = append(rows, []any{t.Material, t.Model, t.Transmission, t.BroadBeam, t.NarrowBeam})
	}
	if err := setRows(f, sheetTargets, rows); err != nil {
		return err
	}
	return f.SetCellStyle(sheetTargets, "A1", "E1", bold)
}

func writeLoadSheet(f *excelize.File, doc Document, bold int) error {
	if _, err := f.NewSheet(sheetLoad); err != nil {
		return fmt.Errorf("xlsx %s: %w", sheetLoad, err)
	}

	l := doc.Load
	rows := [][]any{
		{"Material", l.Material},
		{"Area (m2)", l.AreaM2},
		{"Volume (m3)", l.VolumeM3},
		{"Total weight (kg)", l.TotalWeightKg},
		{"Areal load (kg/m2)", l.ArealLoadKgM2},
		{"Floor capacity (kg/m2)", l.CapacityKgM2},
		{"Capacity used (%)", l.CapacityUsedPct},
		{"Verdict", l.Verdict.String()},
		{"Overage (kg/m2)", l.OverageKgM2},
	}
	if err := setRows(f, sheetLoad, rows); err != nil {
		return err
	}
	return f.SetCellStyle(sheetLoad, "A1", fmt.Sprintf("A%d", len(rows)), bold)
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
