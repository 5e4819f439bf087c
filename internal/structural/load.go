// Package structural derives mass and floor-loading metrics for a flat
// shielding wall and checks them against a floor capacity.
package structural

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/roach88/shieldlab/internal/material"
)

// Verdict is the outcome of a floor capacity check.
type Verdict int

const (
	Safe Verdict = iota
	Exceeded
)

func (v Verdict) String() string {
	switch v {
	case Safe:
		return "SAFE"
	case Exceeded:
		return "EXCEEDED"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// MarshalJSON encodes the verdict by name.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a verdict name.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "SAFE":
		*v = Safe
	case "EXCEEDED":
		*v = Exceeded
	default:
		return fmt.Errorf("unknown verdict %q", s)
	}
	return nil
}

// Wall is a flat slab of uniform cross-section.
type Wall struct {
	HeightM     float64
	WidthM      float64
	ThicknessCm float64
	Material    material.Material
}

// Validate checks that all dimensions are positive finite numbers.
func (w Wall) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"height", w.HeightM},
		{"width", w.WidthM},
		{"thickness", w.ThicknessCm},
	}
	for _, d := range dims {
		if !isPositiveFinite(d.value) {
			return &InvalidGeometryError{Dimension: d.name, Value: d.value}
		}
	}
	if !(w.Material.Density > 0) {
		return &InvalidGeometryError{Dimension: "density", Value: w.Material.Density}
	}
	return nil
}

// Result holds the load metrics of a wall.
type Result struct {
	Material        string  `json:"material"`
	AreaM2          float64 `json:"area_m2"`
	VolumeM3        float64 `json:"volume_m3"`
	TotalWeightKg   float64 `json:"total_weight_kg"`
	ArealLoadKgM2   float64 `json:"areal_load_kg_m2"`
	CapacityKgM2    float64 `json:"capacity_kg_m2"`
	CapacityUsedPct float64 `json:"capacity_used_pct"`
	Verdict         Verdict `json:"verdict"`

	// OverageKgM2 is ArealLoadKgM2 - CapacityKgM2 when Exceeded, else 0.
	OverageKgM2 float64 `json:"overage_kg_m2"`
}

// Compute derives the load metrics of w against floorCapacity (kg/m^2).
func Compute(w Wall, floorCapacity float64) (Result, error) {
	if err := w.Validate(); err != nil {
		return Result{}, err
	}
	if !(floorCapacity > 0) || math.IsInf(floorCapacity, 0) {
		return Result{}, &InvalidCapacityError{Value: floorCapacity}
	}

	area := w.HeightM * w.WidthM
	volume := area * (w.ThicknessCm / 100)
	densityKgM3 := w.Material.Density * 1000
	weight := volume * densityKgM3
	// Areal load is density times thickness; it does not depend on the
	// footprint, so it stays defined when area overflows or underflows.
	areal := densityKgM3 * (w.ThicknessCm / 100)

	derived := []struct {
		name  string
		value float64
	}{
		{"area", area},
		{"volume", volume},
		{"weight", weight},
		{"areal load", areal},
	}
	for _, d := range derived {
		if !isPositiveFinite(d.value) {
			return Result{}, &InvalidGeometryError{Dimension: d.name, Value: d.value}
		}
	}

	res := Result{
		Material:        w.Material.ID,
		AreaM2:          area,
		VolumeM3:        volume,
		TotalWeightKg:   weight,
		ArealLoadKgM2:   areal,
		CapacityKgM2:    floorCapacity,
		CapacityUsedPct: areal / floorCapacity * 100,
		Verdict:         Safe,
	}
	if areal > floorCapacity {
		res.Verdict = Exceeded
		res.OverageKgM2 = areal - floorCapacity
	}
	return res, nil
}

// MaxThickness returns the thickest wall of m, in cm, whose areal load does
// not exceed floorCapacity. Areal load does not depend on height or width.
func MaxThickness(m material.Material, floorCapacity float64) (float64, error) {
	if !(floorCapacity > 0) || math.IsInf(floorCapacity, 0) {
		return 0, &InvalidCapacityError{Value: floorCapacity}
	}
	if !(m.Density > 0) {
		return 0, &InvalidGeometryError{Dimension: "density", Value: m.Density}
	}
	// areal load = density[g/cm3] * 1000 * thickness[cm] / 100
	return floorCapacity / (m.Density * 10), nil
}

func isPositiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
