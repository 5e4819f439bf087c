package attenuation

import (
	"math"

	"github.com/roach88/shieldlab/internal/material"
)

// Bisection limits for ThicknessFor.
const (
	maxBracketMFP = 4096
	maxBisections = 200
	mfpTolerance  = 1e-12
)

// Point is one sample of a transmission curve.
type Point struct {
	Thickness    float64 `json:"thickness_cm"`
	Transmission float64 `json:"transmission"`
}

// Result is a transmission curve for one material over one domain.
//
// HVL and TVL are narrow-beam reference values (no build-up) and do not
// depend on the domain.
type Result struct {
	Material string  `json:"material"`
	Model    string  `json:"model"`
	Points   []Point `json:"points"`
	HVL      float64 `json:"hvl_cm"`
	TVL      float64 `json:"tvl_cm"`
}

// Target is the slab thickness needed to bring transmission down to a
// requested ratio.
type Target struct {
	Material     string  `json:"material"`
	Model        string  `json:"model"`
	Transmission float64 `json:"transmission"`

	// BroadBeam is the build-up corrected thickness in cm.
	BroadBeam float64 `json:"broad_beam_cm"`

	// NarrowBeam is -ln(transmission)/mu, the thickness ignoring build-up.
	NarrowBeam float64 `json:"narrow_beam_cm"`
}

// Engine computes transmission curves under a fixed build-up model.
// The zero value is not usable; use NewEngine.
type Engine struct {
	model BuildupModel
}

// NewEngine returns an engine using model. A nil model selects Linear.
func NewEngine(model BuildupModel) *Engine {
	if model == nil {
		model = Linear{}
	}
	return &Engine{model: model}
}

// Model returns the engine's build-up model.
func (e *Engine) Model() BuildupModel {
	return e.model
}

// Compute returns the transmission curve of m over d.
// No partial result is returned on error.
func (e *Engine) Compute(m material.Material, d Domain) (Result, error) {
	if err := checkMu(m); err != nil {
		return Result{}, err
	}
	if err := d.Validate(); err != nil {
		return Result{}, err
	}

	points := make([]Point, len(d))
	for i, t := range d {
		points[i] = Point{Thickness: t, Transmission: e.transmission(m, m.Mu*t)}
	}

	return Result{
		Material: m.ID,
		Model:    e.model.Name(),
		Points:   points,
		HVL:      HVL(m.Mu),
		TVL:      TVL(m.Mu),
	}, nil
}

// Transmission returns the build-up corrected transmission ratio through
// a slab of thickness cm.
func (e *Engine) Transmission(m material.Material, thickness float64) (float64, error) {
	if err := checkMu(m); err != nil {
		return 0, err
	}
	if err := (Domain{thickness}).Validate(); err != nil {
		return 0, err
	}
	return e.transmission(m, m.Mu*thickness), nil
}

// ThicknessFor returns the thickness at which the build-up corrected
// transmission of m falls to target, together with the narrow-beam
// thickness for the same target.
func (e *Engine) ThicknessFor(m material.Material, target float64) (Target, error) {
	if err := checkMu(m); err != nil {
		return Target{}, err
	}
	if !(target > 0 && target < 1) {
		return Target{}, &InvalidTargetError{Target: target}
	}

	// Transmission starts at 1, may rise above 1, then decays. Values
	// below 1 only occur on the decaying branch, so the crossing in
	// [0, hi] is unique.
	lo, hi := 0.0, 1.0
	for e.transmission(m, hi) > target {
		lo = hi
		hi *= 2
		if hi > maxBracketMFP {
			return Target{}, &InvalidTargetError{Target: target}
		}
	}

	for i := 0; i < maxBisections && hi-lo > mfpTolerance; i++ {
		mid := lo + (hi-lo)/2
		if e.transmission(m, mid) > target {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Target{
		Material:     m.ID,
		Model:        e.model.Name(),
		Transmission: target,
		BroadBeam:    hi / m.Mu,
		NarrowBeam:   -math.Log(target) / m.Mu,
	}, nil
}

func (e *Engine) transmission(m material.Material, mfp float64) float64 {
	if mfp == 0 {
		return 1
	}
	return e.model.Factor(m.BuildupSlope, mfp) * math.Exp(-mfp)
}

// HVL is the narrow-beam half-value layer ln(2)/mu in cm.
// It ignores build-up.
func HVL(mu float64) float64 {
	return math.Ln2 / mu
}

// TVL is the narrow-beam tenth-value layer ln(10)/mu in cm.
// It ignores build-up.
func TVL(mu float64) float64 {
	return math.Ln10 / mu
}

func checkMu(m material.Material) error {
	if !(m.Mu > 0) || math.IsInf(m.Mu, 0) {
		return &InvalidDomainError{Index: -1, Value: m.Mu, Message: "attenuation coefficient of " + m.ID + " must be positive"}
	}
	return nil
}

var defaultEngine = NewEngine(Linear{})

// Compute is Engine.Compute with the linear build-up model.
func Compute(m material.Material, d Domain) (Result, error) {
	return defaultEngine.Compute(m, d)
}
