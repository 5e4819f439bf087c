package material

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Material holds the physical constants of a shielding material at the
// reference photon energy.
type Material struct {
	// ID uniquely identifies the material and doubles as its display name.
	ID string `json:"id"`

	// Mu is the linear attenuation coefficient in cm^-1.
	Mu float64 `json:"mu"`

	// Density in g/cm^3.
	Density float64 `json:"density"`

	// BuildupSlope is the dimensionless linear build-up coefficient.
	BuildupSlope float64 `json:"buildup_slope"`

	// Color is a presentation attribute. Not used by any calculation.
	Color string `json:"color,omitempty"`
}

// Validate checks the registry invariants for a single material.
func (m Material) Validate() error {
	switch {
	case NormalizeID(m.ID) == "":
		return &InvalidMaterialError{ID: m.ID, Field: "id", Message: "id is required"}
	case !(m.Mu > 0) || math.IsInf(m.Mu, 0):
		return &InvalidMaterialError{ID: m.ID, Field: "mu", Message: "must be a positive number"}
	case !(m.Density > 0) || math.IsInf(m.Density, 0):
		return &InvalidMaterialError{ID: m.ID, Field: "density", Message: "must be a positive number"}
	case !(m.BuildupSlope >= 0) || math.IsInf(m.BuildupSlope, 0):
		return &InvalidMaterialError{ID: m.ID, Field: "buildup_slope", Message: "must be zero or positive"}
	}
	return nil
}

// NormalizeID returns the lookup key for an identifier: surrounding
// whitespace trimmed, NFC normalized.
func NormalizeID(id string) string {
	return norm.NFC.String(strings.TrimSpace(id))
}
