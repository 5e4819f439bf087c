package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/batch"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <job.yaml>",
		Short: "Run a batch job file",
		Long: `Run a YAML job: one material comparison, a list of wall load checks
and a list of target-thickness queries. Failing steps are reported and the
command exits with status 1.

Example job:
  name: ward-b
  materials: ["Lead (Pb)", Concrete]
  max_thickness_cm: 50
  samples: 11
  walls:
    - {material: "Lead (Pb)", height_m: 2, width_m: 3, thickness_cm: 10}
  targets:
    - {material: Concrete, transmission: 0.01}`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	job, err := batch.LoadJob(path)
	if err != nil {
		return formatter.Fail(err)
	}

	env, err := loadEnvironment(opts)
	if err != nil {
		return formatter.Fail(err)
	}

	runner := batch.NewRunner(env.lab, batch.Defaults{
		MaxThicknessCm: env.cfg.Defaults.MaxThickness,
		Samples:        env.cfg.Defaults.Samples,
		FloorCapacity:  env.cfg.Defaults.FloorCapacity,
	})
	report, err := runner.Run(cmd.Context(), job)
	if err != nil {
		return formatter.Fail(err)
	}

	if err := formatter.Success(batchView{Report: report}); err != nil {
		return err
	}
	if report.Failures > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d batch step(s) failed", report.Failures))
	}
	return nil
}
