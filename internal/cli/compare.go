package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/store"
)

// CompareOptions holds flags for the compare command.
type CompareOptions struct {
	*RootOptions
	MaxThickness float64
	Samples      int
	Save         bool
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompareOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compare [materials...]",
		Short: "Compare materials side by side",
		Long: `Compute transmission curves for several materials over the same
thickness range and print a summary table of density, HVL and TVL.
With no arguments every registered material is compared.

Example:
  shieldlab compare "Lead (Pb)" Concrete --max 50 --samples 6
  shieldlab compare --save --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts, args, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.MaxThickness, "max", 0, "maximum thickness in cm (0 uses defaults.max_thickness)")
	cmd.Flags().IntVar(&opts.Samples, "samples", 0, "number of thickness samples (0 uses defaults.samples)")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "save the comparison to the history database")

	return cmd
}

func runCompare(opts *CompareOptions, ids []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	env, err := loadEnvironment(opts.RootOptions)
	if err != nil {
		return formatter.Fail(err)
	}
	if len(ids) == 0 {
		ids = env.lab.ListMaterials()
	}

	maxThickness, samples := env.resolveDomain(opts.MaxThickness, opts.Samples)
	formatter.VerboseLog("Comparing %d material(s) over 0-%g cm, %d samples", len(ids), maxThickness, samples)

	cmp, err := env.lab.BuildComparison(ids, maxThickness, samples)
	if err != nil {
		return formatter.Fail(err)
	}

	view := comparisonView{Comparison: cmp}
	if opts.Save {
		req := comparisonRequest{MaxThicknessCm: maxThickness, Samples: samples, Model: cmp.Model}
		for _, e := range cmp.Entries {
			req.Materials = append(req.Materials, e.Material)
		}
		view.RecordID, err = saveRecord(cmd, env, store.KindComparison, cmp.Model, req, cmp)
		if err != nil {
			return formatter.Fail(err)
		}
	}
	return formatter.Success(view)
}
