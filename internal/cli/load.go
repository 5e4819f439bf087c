package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/store"
)

// LoadOptions holds flags for the load command.
type LoadOptions struct {
	*RootOptions
	HeightM      float64
	WidthM       float64
	ThicknessCm  float64
	CapacityKgM2 float64
	Save         bool
}

// NewLoadCommand creates the load command.
func NewLoadCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoadOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "load <material>",
		Short: "Check the floor load of a shielding wall",
		Long: `Compute volume, weight and areal floor load of a wall and compare it
with the floor capacity. An EXCEEDED verdict is a result, not an error.

Example:
  shieldlab load "Lead (Pb)" --height 2 --width 3 --thickness 10 --capacity 1000`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.HeightM, "height", 0, "wall height in m (required)")
	_ = cmd.MarkFlagRequired("height")
	cmd.Flags().Float64Var(&opts.WidthM, "width", 0, "wall width in m (required)")
	_ = cmd.MarkFlagRequired("width")
	cmd.Flags().Float64Var(&opts.ThicknessCm, "thickness", 0, "wall thickness in cm (required)")
	_ = cmd.MarkFlagRequired("thickness")
	cmd.Flags().Float64Var(&opts.CapacityKgM2, "capacity", 0, "floor capacity in kg/m2 (0 uses defaults.floor_capacity)")
	cmd.Flags().BoolVar(&opts.Save, "save", false, "save the result to the history database")

	return cmd
}

func runLoad(opts *LoadOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	env, err := loadEnvironment(opts.RootOptions)
	if err != nil {
		return formatter.Fail(err)
	}

	capacity := env.resolveCapacity(opts.CapacityKgM2)
	res, err := env.lab.ComputeLoad(id, opts.HeightM, opts.WidthM, opts.ThicknessCm, capacity)
	if err != nil {
		return formatter.Fail(err)
	}
	maxThickness, err := env.lab.MaxWallThickness(id, capacity)
	if err != nil {
		return formatter.Fail(err)
	}

	transmission, err := env.lab.WallTransmission(id, opts.ThicknessCm)
	if err != nil {
		return formatter.Fail(err)
	}

	view := loadView{Result: res, MaxThicknessCm: maxThickness, Transmission: transmission, Model: env.lab.ModelName()}
	if opts.Save {
		m, err := env.lab.Material(id)
		if err != nil {
			return formatter.Fail(err)
		}
		req := loadRequest{
			Material:     m,
			HeightM:      opts.HeightM,
			WidthM:       opts.WidthM,
			ThicknessCm:  opts.ThicknessCm,
			CapacityKgM2: capacity,
		}
		view.RecordID, err = saveRecord(cmd, env, store.KindLoad, "", req, res)
		if err != nil {
			return formatter.Fail(err)
		}
	}
	return formatter.Success(view)
}
