// Package lab is the entry point presentation layers use: it takes
// primitive parameters (material ids, maximum thickness, sample count, wall
// dimensions) and delegates to the registry, the attenuation engine, the
// structural calculator and the comparison assembler.
//
// A Lab holds only immutable state and is safe for concurrent use.
package lab

import (
	"log/slog"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/material"
	"github.com/roach88/shieldlab/internal/report"
	"github.com/roach88/shieldlab/internal/structural"
)

// Comparison is the output of BuildComparison: one curve per selected
// material plus the rounded summary rows, both in selection order.
type Comparison struct {
	Model   string         `json:"model"`
	Domain  []float64      `json:"domain_cm"`
	Entries []report.Entry `json:"entries"`
	Summary []report.Row   `json:"summary"`
}

// Lab wires the calculation components around one registry.
type Lab struct {
	registry  *material.Registry
	engine    *attenuation.Engine
	assembler *report.Assembler
}

// Option configures a Lab.
type Option func(*Lab)

// WithModel selects the build-up model. The default is linear.
func WithModel(m attenuation.BuildupModel) Option {
	return func(l *Lab) {
		l.engine = attenuation.NewEngine(m)
	}
}

// New returns a Lab over registry. A nil registry uses material.Default().
func New(registry *material.Registry, opts ...Option) *Lab {
	if registry == nil {
		registry = material.Default()
	}
	l := &Lab{registry: registry, engine: attenuation.NewEngine(nil)}
	for _, opt := range opts {
		opt(l)
	}
	l.assembler = report.NewAssembler(l.registry, l.engine)
	return l
}

// Registry returns the lab's material registry.
func (l *Lab) Registry() *material.Registry {
	return l.registry
}

// ModelName returns the name of the build-up model in use.
func (l *Lab) ModelName() string {
	return l.engine.Model().Name()
}

// ListMaterials returns the registered material ids in registration order.
func (l *Lab) ListMaterials() []string {
	return l.registry.IDs()
}

// Material returns the registered material with the given id.
func (l *Lab) Material(id string) (material.Material, error) {
	return l.registry.Lookup(id)
}

// ComputeTransmission returns the transmission curve of one material over
// sampleCount evenly spaced thicknesses from 0 to maxThickness cm.
func (l *Lab) ComputeTransmission(id string, maxThickness float64, sampleCount int) (attenuation.Result, error) {
	m, err := l.registry.Lookup(id)
	if err != nil {
		return attenuation.Result{}, err
	}
	d, err := attenuation.NewDomain(maxThickness, sampleCount)
	if err != nil {
		return attenuation.Result{}, err
	}

	slog.Debug("computing transmission",
		"material", m.ID,
		"max_thickness_cm", maxThickness,
		"samples", sampleCount,
		"model", l.ModelName(),
	)
	return l.engine.Compute(m, d)
}

// ComputeLoad returns the load metrics of a wall of the given material.
func (l *Lab) ComputeLoad(id string, heightM, widthM, thicknessCm, floorCapacity float64) (structural.Result, error) {
	m, err := l.registry.Lookup(id)
	if err != nil {
		return structural.Result{}, err
	}

	res, err := structural.Compute(structural.Wall{
		HeightM:     heightM,
		WidthM:      widthM,
		ThicknessCm: thicknessCm,
		Material:    m,
	}, floorCapacity)
	if err != nil {
		return structural.Result{}, err
	}

	slog.Debug("computed wall load",
		"material", m.ID,
		"areal_load_kg_m2", res.ArealLoadKgM2,
		"verdict", res.Verdict.String(),
	)
	return res, nil
}

// BuildComparison returns curves and summary rows for ids over sampleCount
// evenly spaced thicknesses from 0 to maxThickness cm. An empty selection
// is valid and yields an empty comparison.
func (l *Lab) BuildComparison(ids []string, maxThickness float64, sampleCount int) (Comparison, error) {
	d, err := attenuation.NewDomain(maxThickness, sampleCount)
	if err != nil {
		return Comparison{}, err
	}

	entries, err := l.assembler.BuildComparison(ids, d)
	if err != nil {
		return Comparison{}, err
	}

	slog.Debug("built comparison", "materials", len(entries), "samples", len(d), "model", l.ModelName())
	return Comparison{
		Model:   l.ModelName(),
		Domain:  d,
		Entries: entries,
		Summary: report.SummaryTable(entries),
	}, nil
}

// TargetThickness returns the build-up corrected and narrow-beam thickness
// of material id that brings transmission down to target.
func (l *Lab) TargetThickness(id string, target float64) (attenuation.Target, error) {
	m, err := l.registry.Lookup(id)
	if err != nil {
		return attenuation.Target{}, err
	}
	return l.engine.ThicknessFor(m, target)
}

// WallTransmission returns the build-up corrected transmission ratio through
// a wall of material id that is thicknessCm thick.
func (l *Lab) WallTransmission(id string, thicknessCm float64) (float64, error) {
	m, err := l.registry.Lookup(id)
	if err != nil {
		return 0, err
	}
	return l.engine.Transmission(m, thicknessCm)
}

// MaxWallThickness returns the thickest wall of material id that a floor
// rated at floorCapacity kg/m^2 can carry.
func (l *Lab) MaxWallThickness(id string, floorCapacity float64) (float64, error) {
	m, err := l.registry.Lookup(id)
	if err != nil {
		return 0, err
	}
	return structural.MaxThickness(m, floorCapacity)
}
