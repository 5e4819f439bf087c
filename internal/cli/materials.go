package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/attenuation"
)

// NewMaterialsCommand creates the materials command.
func NewMaterialsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List registered shielding materials",
		Long: `List the materials in the registry with their attenuation coefficient,
density, build-up slope and narrow-beam half- and tenth-value layers.

Example:
  shieldlab materials
  shieldlab materials --materials ./site.cue --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaterials(rootOpts, cmd)
		},
	}

	return cmd
}

func runMaterials(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	env, err := loadEnvironment(opts)
	if err != nil {
		return formatter.Fail(err)
	}

	list := env.lab.Registry().List()
	view := materialsView{Model: env.lab.ModelName(), Materials: make([]materialRow, len(list))}
	for i, m := range list {
		view.Materials[i] = materialRow{
			ID:           m.ID,
			Mu:           m.Mu,
			Density:      m.Density,
			BuildupSlope: m.BuildupSlope,
			Color:        m.Color,
			HVL:          attenuation.HVL(m.Mu),
			TVL:          attenuation.TVL(m.Mu),
		}
	}
	return formatter.Success(view)
}
