// Package batch runs YAML job files through the lab: one comparison, a
// list of wall load checks and a list of target-thickness queries.
//
// A failing step does not stop the job. Its error is recorded in the
// report and counted in Report.Failures.
package batch

import (
	"context"
	"log/slog"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/lab"
	"github.com/roach88/shieldlab/internal/structural"
)

// Defaults fill in job values left at zero.
type Defaults struct {
	MaxThicknessCm float64
	Samples        int
	FloorCapacity  float64
}

// Report is the outcome of one job.
type Report struct {
	Job         string `json:"job"`
	Description string `json:"description,omitempty"`
	Model       string `json:"model"`

	Comparison      *lab.Comparison `json:"comparison,omitempty"`
	ComparisonError string          `json:"comparison_error,omitempty"`

	Walls    []WallOutcome   `json:"walls"`
	Targets  []TargetOutcome `json:"targets"`
	Failures int             `json:"failures"`
}

// WallOutcome is the result of one wall check. MaxThicknessCm is the
// thickest wall of the same material the floor can carry.
type WallOutcome struct {
	Wall           WallCheck          `json:"wall"`
	Result         *structural.Result `json:"result,omitempty"`
	MaxThicknessCm float64            `json:"max_thickness_cm,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// TargetOutcome is the result of one target query.
type TargetOutcome struct {
	Query  TargetQuery         `json:"query"`
	Result *attenuation.Target `json:"result,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// Runner executes jobs against a lab.
type Runner struct {
	lab      *lab.Lab
	defaults Defaults
}

// NewRunner returns a runner over l.
func NewRunner(l *lab.Lab, defaults Defaults) *Runner {
	return &Runner{lab: l, defaults: defaults}
}

// Run executes job. The only errors returned are context errors; step
// failures are recorded in the report.
func (r *Runner) Run(ctx context.Context, job *Job) (*Report, error) {
	rep := &Report{
		Job:         job.Name,
		Description: job.Description,
		Model:       r.lab.ModelName(),
		Walls:       make([]WallOutcome, 0, len(job.Walls)),
		Targets:     make([]TargetOutcome, 0, len(job.Targets)),
	}
	slog.Debug("running batch job", "job", job.Name, "materials", len(job.Materials),
		"walls", len(job.Walls), "targets", len(job.Targets))

	if len(job.Materials) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cmp, err := r.lab.BuildComparison(job.Materials, r.maxThickness(job), r.samples(job))
		if err != nil {
			rep.ComparisonError = err.Error()
			rep.Failures++
		} else {
			rep.Comparison = &cmp
		}
	}

	for _, w := range job.Walls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := r.checkWall(w)
		if out.Error != "" {
			rep.Failures++
		}
		rep.Walls = append(rep.Walls, out)
	}

	for _, q := range job.Targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := TargetOutcome{Query: q}
		res, err := r.lab.TargetThickness(q.Material, q.Transmission)
		if err != nil {
			out.Error = err.Error()
			rep.Failures++
		} else {
			out.Result = &res
		}
		rep.Targets = append(rep.Targets, out)
	}

	slog.Debug("batch job finished", "job", job.Name, "failures", rep.Failures)
	return rep, nil
}

func (r *Runner) checkWall(w WallCheck) WallOutcome {
	if w.CapacityKgM2 == 0 {
		w.CapacityKgM2 = r.defaults.FloorCapacity
	}
	out := WallOutcome{Wall: w}

	res, err := r.lab.ComputeLoad(w.Material, w.HeightM, w.WidthM, w.ThicknessCm, w.CapacityKgM2)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Result = &res

	// Cannot fail once ComputeLoad accepted the material and capacity.
	out.MaxThicknessCm, _ = r.lab.MaxWallThickness(w.Material, w.CapacityKgM2)
	return out
}

func (r *Runner) maxThickness(job *Job) float64 {
	if job.MaxThicknessCm != 0 {
		return job.MaxThicknessCm
	}
	return r.defaults.MaxThicknessCm
}

func (r *Runner) samples(job *Job) int {
	if job.Samples != 0 {
		return job.Samples
	}
	return r.defaults.Samples
}
