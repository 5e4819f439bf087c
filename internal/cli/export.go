package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/export"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output       string
	Title        string
	MaxThickness float64
	Samples      int

	// Wall check, included when WallMaterial is set.
	WallMaterial string
	HeightM      float64
	WidthM       float64
	ThicknessCm  float64
	CapacityKgM2 float64

	// Targets are transmission ratios solved for every selected material.
	Targets []float64
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <pdf|xlsx> [materials...]",
		Short: "Write a comparison report to PDF or XLSX",
		Long: `Write a comparison report file: summary table, transmission table and
chart, plus an optional wall load check and target thicknesses.
With no materials every registered material is included.

Example:
  shieldlab export pdf -o report.pdf "Lead (Pb)" Concrete --target 0.001
  shieldlab export xlsx -o report.xlsx --wall "Lead (Pb)" --height 2 --width 3 --thickness 10`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().StringVar(&opts.Title, "title", "", "report title")
	cmd.Flags().Float64Var(&opts.MaxThickness, "max", 0, "maximum thickness in cm (0 uses defaults.max_thickness)")
	cmd.Flags().IntVar(&opts.Samples, "samples", 0, "number of thickness samples (0 uses defaults.samples)")
	cmd.Flags().StringVar(&opts.WallMaterial, "wall", "", "material of a wall to load-check")
	cmd.Flags().Float64Var(&opts.HeightM, "height", 0, "wall height in m")
	cmd.Flags().Float64Var(&opts.WidthM, "width", 0, "wall width in m")
	cmd.Flags().Float64Var(&opts.ThicknessCm, "thickness", 0, "wall thickness in cm")
	cmd.Flags().Float64Var(&opts.CapacityKgM2, "capacity", 0, "floor capacity in kg/m2 (0 uses defaults.floor_capacity)")
	cmd.Flags().Float64SliceVar(&opts.Targets, "target", nil, "target transmission ratios to solve for")

	return cmd
}

func runExport(opts *ExportOptions, formatName string, ids []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return formatter.Fail(fmt.Errorf("%w: %v", errInvalidFlag, err))
	}

	env, err := loadEnvironment(opts.RootOptions)
	if err != nil {
		return formatter.Fail(err)
	}
	if len(ids) == 0 {
		ids = env.lab.ListMaterials()
	}

	maxThickness, samples := env.resolveDomain(opts.MaxThickness, opts.Samples)
	cmp, err := env.lab.BuildComparison(ids, maxThickness, samples)
	if err != nil {
		return formatter.Fail(err)
	}
	doc := export.Document{Title: opts.Title, Comparison: cmp}

	if opts.WallMaterial != "" {
		res, err := env.lab.ComputeLoad(opts.WallMaterial, opts.HeightM, opts.WidthM, opts.ThicknessCm, env.resolveCapacity(opts.CapacityKgM2))
		if err != nil {
			return formatter.Fail(err)
		}
		doc.Load = &res
	}

	for _, ratio := range opts.Targets {
		for _, e := range cmp.Entries {
			t, err := env.lab.TargetThickness(e.Material.ID, ratio)
			if err != nil {
				return formatter.Fail(err)
			}
			doc.Targets = append(doc.Targets, t)
		}
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, doc); err != nil {
		return formatter.Fail(err)
	}
	if err := os.WriteFile(opts.Output, buf.Bytes(), 0o644); err != nil {
		return formatter.Fail(fmt.Errorf("%w: %v", errWriteFailed, err))
	}

	materials := make([]string, len(cmp.Entries))
	for i, e := range cmp.Entries {
		materials[i] = e.Material.ID
	}

	formatter.VerboseLog("Wrote %s", opts.Output)
	return formatter.Success(exportView{
		Path:      opts.Output,
		Format:    string(format),
		Materials: materials,
		Bytes:     buf.Len(),
	})
}
