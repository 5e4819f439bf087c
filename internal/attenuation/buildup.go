package attenuation

// BuildupModel computes the build-up factor B for a material's build-up
// slope at a given number of mean free paths.
//
// Implementations must return exactly 1 at mfp = 0.
type BuildupModel interface {
	Name() string
	Factor(slope, mfp float64) float64
}

// Model names accepted by ModelByName.
const (
	ModelLinear = "linear"
	ModelNone   = "none"
)

// Linear is the linear build-up approximation B = 1 + slope*mfp.
// It is only meaningful at the single reference energy the slopes were
// fitted for.
type Linear struct{}

func (Linear) Name() string { return ModelLinear }

func (Linear) Factor(slope, mfp float64) float64 {
	return 1 + slope*mfp
}

// NarrowBeam ignores scatter: B = 1. Transmission reduces to exp(-mfp).
type NarrowBeam struct{}

func (NarrowBeam) Name() string { return ModelNone }

func (NarrowBeam) Factor(_, _ float64) float64 {
	return 1
}

var models = []BuildupModel{Linear{}, NarrowBeam{}}

// ModelByName returns the build-up model registered under name.
// An empty name selects Linear.
func ModelByName(name string) (BuildupModel, error) {
	if name == "" {
		return Linear{}, nil
	}
	for _, m := range models {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, &UnknownModelError{Name: name}
}

// ModelNames lists the registered model names.
func ModelNames() []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name()
	}
	return names
}
