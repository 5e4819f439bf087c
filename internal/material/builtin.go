package material

// Built-in material ids.
const (
	Lead     = "Lead (Pb)"
	Tungsten = "Tungsten (W)"
	Iron     = "Iron (Fe)"
	Concrete = "Concrete"
	Water    = "Water (H2O)"
)

// builtin is the 1.0 MeV photon dataset, in display order.
var builtin = []Material{
	{ID: Lead, Mu: 0.771, Density: 11.34, BuildupSlope: 1.2, Color: "#7f8c8d"},
	{ID: Tungsten, Mu: 1.250, Density: 19.30, BuildupSlope: 1.1, Color: "#2c3e50"},
	{ID: Iron, Mu: 0.443, Density: 7.874, BuildupSlope: 1.8, Color: "#a04000"},
	{ID: Concrete, Mu: 0.151, Density: 2.35, BuildupSlope: 2.5, Color: "#bdc3c7"},
	{ID: Water, Mu: 0.070, Density: 1.00, BuildupSlope: 3.2, Color: "#3498db"},
}

// Default returns a registry holding the built-in dataset.
func Default() *Registry {
	return MustRegistry(builtin...)
}
