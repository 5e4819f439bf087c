// Package report assembles per-material attenuation results into the
// comparison series and summary rows a presentation layer renders.
package report

import (
	"math"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/material"
)

// Entry pairs a selected material with its transmission curve.
type Entry struct {
	Material material.Material  `json:"material"`
	Result   attenuation.Result `json:"result"`
}

// Row is one line of the summary table. Lengths and density are rounded
// to two decimals.
type Row struct {
	Material string  `json:"material"`
	Density  float64 `json:"density_g_cm3"`
	HVL      float64 `json:"hvl_cm"`
	TVL      float64 `json:"tvl_cm"`
}

// Assembler composes the registry and the attenuation engine.
type Assembler struct {
	registry *material.Registry
	engine   *attenuation.Engine
}

// NewAssembler returns an assembler over registry. A nil engine uses the
// linear build-up model.
func NewAssembler(registry *material.Registry, engine *attenuation.Engine) *Assembler {
	if engine == nil {
		engine = attenuation.NewEngine(nil)
	}
	return &Assembler{registry: registry, engine: engine}
}

// BuildComparison computes a transmission curve for each id, in selection
// order. Every id must be registered: an unknown id fails the whole call
// with material.UnknownMaterialError rather than being dropped. An empty
// selection yields an empty, non-nil result.
func (a *Assembler) BuildComparison(ids []string, d attenuation.Domain) ([]Entry, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	materials := make([]material.Material, len(ids))
	for i, id := range ids {
		m, err := a.registry.Lookup(id)
		if err != nil {
			return nil, err
		}
		materials[i] = m
	}

	entries := make([]Entry, 0, len(materials))
	for _, m := range materials {
		res, err := a.engine.Compute(m, d)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Material: m, Result: res})
	}
	return entries, nil
}

// SummaryTable returns one row per entry, in entry order.
func SummaryTable(entries []Entry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Material: e.Material.ID,
			Density:  Round2(e.Material.Density),
			HVL:      Round2(e.Result.HVL),
			TVL:      Round2(e.Result.TVL),
		}
	}
	return rows
}

// Round2 rounds x to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
