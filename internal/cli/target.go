package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/store"
)

// TargetOptions holds flags for the target command.
type TargetOptions struct {
	*RootOptions
	Save bool
}

// NewTargetCommand creates the target command.
func NewTargetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TargetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "target <material> <transmission>",
		Short: "Thickness needed for a target transmission",
		Long: `Solve for the slab thickness at which the build-up corrected
transmission of a material falls to the given ratio, and show the
narrow-beam thickness for comparison.

Example:
  shieldlab target "Lead (Pb)" 0.001
  shieldlab target Concrete 1e-2 --model none`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTarget(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Save, "save", false, "save the result to the history database")

	return cmd
}

func runTarget(opts *TargetOptions, id, ratio string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	transmission, err := strconv.ParseFloat(ratio, 64)
	if err != nil {
		return formatter.Fail(fmt.Errorf("%w: transmission %q is not a number", errInvalidFlag, ratio))
	}

	env, err := loadEnvironment(opts.RootOptions)
	if err != nil {
		return formatter.Fail(err)
	}

	res, err := env.lab.TargetThickness(id, transmission)
	if err != nil {
		return formatter.Fail(err)
	}

	view := targetView{Target: res}
	if opts.Save {
		m, err := env.lab.Material(id)
		if err != nil {
			return formatter.Fail(err)
		}
		req := targetRequest{Material: m, Transmission: transmission, Model: res.Model}
		view.RecordID, err = saveRecord(cmd, env, store.KindTarget, res.Model, req, res)
		if err != nil {
			return formatter.Fail(err)
		}
	}
	return formatter.Success(view)
}
