package cli

import (
	"github.com/spf13/cobra"
)

// TransmissionOptions holds flags for the transmission command.
type TransmissionOptions struct {
	*RootOptions
	MaxThickness float64
	Samples      int
}

// NewTransmissionCommand creates the transmission command.
func NewTransmissionCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TransmissionOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "transmission <material>",
		Short: "Transmission curve of one material",
		Long: `Compute the build-up corrected transmission ratio I/I0 of one material
over evenly spaced thicknesses from 0 to --max cm.

Example:
  shieldlab transmission "Lead (Pb)" --max 10 --samples 11`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransmission(opts, args[0], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.MaxThickness, "max", 0, "maximum thickness in cm (0 uses defaults.max_thickness)")
	cmd.Flags().IntVar(&opts.Samples, "samples", 0, "number of thickness samples (0 uses defaults.samples)")

	return cmd
}

func runTransmission(opts *TransmissionOptions, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	env, err := loadEnvironment(opts.RootOptions)
	if err != nil {
		return formatter.Fail(err)
	}

	maxThickness, samples := env.resolveDomain(opts.MaxThickness, opts.Samples)
	res, err := env.lab.ComputeTransmission(id, maxThickness, samples)
	if err != nil {
		return formatter.Fail(err)
	}
	return formatter.Success(transmissionView{Result: res})
}
