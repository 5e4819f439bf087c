package batch

import (
	"fmt"
	"io"
	"strings"
)

// WriteText renders the report as plain text. Lengths are printed with two
// decimals and loads with one.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Job: %s\n", r.Job)
	if r.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", r.Description)
	}
	fmt.Fprintf(&b, "Model: %s\n", r.Model)

	switch {
	case r.ComparisonError != "":
		fmt.Fprintf(&b, "\nComparison: error: %s\n", r.ComparisonError)
	case r.Comparison != nil:
		cmp := r.Comparison
		var maxT float64
		if n := len(cmp.Domain); n > 0 {
			maxT = cmp.Domain[n-1]
		}
		fmt.Fprintf(&b, "\nComparison: 0-%.2f cm, %d samples\n", maxT, len(cmp.Domain))
		fmt.Fprintf(&b, "  %-14s%10s%10s%10s\n", "Material", "Density", "HVL cm", "TVL cm")
		for _, row := range cmp.Summary {
			fmt.Fprintf(&b, "  %-14s%10.2f%10.2f%10.2f\n", row.Material, row.Density, row.HVL, row.TVL)
		}
	}

	if len(r.Walls) > 0 {
		b.WriteString("\nWalls:\n")
		for i, o := range r.Walls {
			wall := o.Wall
			fmt.Fprintf(&b, "  %d. %s %.2f x %.2f m, %.2f cm: ", i+1, wall.Material, wall.HeightM, wall.WidthM, wall.ThicknessCm)
			if o.Error != "" {
				fmt.Fprintf(&b, "error: %s\n", o.Error)
				continue
			}
			res := o.Result
			fmt.Fprintf(&b, "%.1f kg/m2 of %.1f (%.1f%%) %s", res.ArealLoadKgM2, res.CapacityKgM2, res.CapacityUsedPct, res.Verdict)
			if res.OverageKgM2 > 0 {
				fmt.Fprintf(&b, " by %.1f", res.OverageKgM2)
			}
			fmt.Fprintf(&b, "; max %.2f cm\n", o.MaxThicknessCm)
		}
	}

	if len(r.Targets) > 0 {
		b.WriteString("\nTargets:\n")
		for i, o := range r.Targets {
			fmt.Fprintf(&b, "  %d. %s to %.3e: ", i+1, o.Query.Material, o.Query.Transmission)
			if o.Error != "" {
				fmt.Fprintf(&b, "error: %s\n", o.Error)
				continue
			}
			fmt.Fprintf(&b, "%.2f cm broad beam, %.2f cm narrow beam\n", o.Result.BroadBeam, o.Result.NarrowBeam)
		}
	}

	fmt.Fprintf(&b, "\nFailures: %d\n", r.Failures)

	_, err := io.WriteString(w, b.String())
	return err
}
