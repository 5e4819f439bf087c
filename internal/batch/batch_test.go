package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shieldlab/internal/lab"
	"github.com/roach88/shieldlab/internal/material"
	"github.com/roach88/shieldlab/internal/structural"
)

var testDefaults = Defaults{MaxThicknessCm: 50, Samples: 5, FloorCapacity: 1000}

func writeJob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadJob_ValidFile(t *testing.T) {
	job, err := LoadJob(filepath.Join("testdata", "ward_b.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "ward-b", job.Name)
	assert.Equal(t, []string{material.Lead, material.Concrete, material.Water}, job.Materials)
	assert.Equal(t, 50.0, job.MaxThicknessCm)
	assert.Equal(t, 11, job.Samples)
	require.Len(t, job.Walls, 4)
	assert.Equal(t, WallCheck{Material: material.Lead, HeightM: 2, WidthM: 3, ThicknessCm: 10, CapacityKgM2: 1000}, job.Walls[0])
	require.Len(t, job.Targets, 3)
	assert.Equal(t, TargetQuery{Material: material.Lead, Transmission: 0.001}, job.Targets[0])
}

func TestLoadJob_MissingFile(t *testing.T) {
	_, err := LoadJob("/nonexistent/job.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job file")
}

func TestLoadJob_UnknownField(t *testing.T) {
	path := writeJob(t, `
name: typo
materail:
  - Lead (Pb)
`)
	_, err := LoadJob(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseJob_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "materials: [Concrete]\n",
			wantErr: "name is required",
		},
		{
			name:    "nothing to do",
			yaml:    "name: empty\n",
			wantErr: "at least one of materials, walls or targets is required",
		},
		{
			name:    "negative samples",
			yaml:    "name: x\nmaterials: [Concrete]\nsamples: -1\n",
			wantErr: "samples must be non-negative",
		},
		{
			name:    "wall without material",
			yaml:    "name: x\nwalls:\n  - height_m: 1\n",
			wantErr: "walls[0]: material is required",
		},
		{
			name:    "target without material",
			yaml:    "name: x\ntargets:\n  - transmission: 0.1\n",
			wantErr: "targets[0]: material is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJob([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid job")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRun_Golden(t *testing.T) {
	job, err := LoadJob(filepath.Join("testdata", "ward_b.yaml"))
	require.NoError(t, err)

	rep, err := NewRunner(lab.New(nil), testDefaults).Run(context.Background(), job)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "ward_b", buf.Bytes())
}

func TestRun_RecordsFailuresAndContinues(t *testing.T) {
	job := &Job{
		Name:      "mixed",
		Materials: []string{"Unobtainium"},
		Walls: []WallCheck{
			{Material: material.Concrete, HeightM: 3, WidthM: 4, ThicknessCm: 30},
		},
		Targets: []TargetQuery{{Material: material.Lead, Transmission: 0}},
	}

	rep, err := NewRunner(lab.New(nil), testDefaults).Run(context.Background(), job)
	require.NoError(t, err)

	assert.Nil(t, rep.Comparison)
	assert.Contains(t, rep.ComparisonError, `unknown material "Unobtainium"`)

	require.Len(t, rep.Walls, 1)
	assert.Empty(t, rep.Walls[0].Error)
	assert.Equal(t, 1000.0, rep.Walls[0].Wall.CapacityKgM2, "default capacity applied")
	assert.Equal(t, structural.Safe, rep.Walls[0].Result.Verdict)

	require.Len(t, rep.Targets, 1)
	assert.Nil(t, rep.Targets[0].Result)
	assert.Contains(t, rep.Targets[0].Error, "invalid target transmission")

	assert.Equal(t, 2, rep.Failures)
}

func TestRun_AppliesDomainDefaults(t *testing.T) {
	job := &Job{Name: "defaults", Materials: []string{material.Water}}

	rep, err := NewRunner(lab.New(nil), testDefaults).Run(context.Background(), job)
	require.NoError(t, err)

	require.NotNil(t, rep.Comparison)
	assert.Equal(t, []float64{0, 12.5, 25, 37.5, 50}, rep.Comparison.Domain)
	assert.Equal(t, "linear", rep.Model)
	assert.Zero(t, rep.Failures)
	assert.NotNil(t, rep.Walls)
	assert.NotNil(t, rep.Targets)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := &Job{Name: "cancelled", Materials: []string{material.Lead}}
	_, err := NewRunner(lab.New(nil), testDefaults).Run(ctx, job)
	require.ErrorIs(t, err, context.Canceled)
}
