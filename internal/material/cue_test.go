package material

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDataset = `
material: "Borated Polyethylene": {
	mu:            0.085
	density:       1.04
	buildup_slope: 3.0
	color:         "#f1c40f"
}

material: "Lead (Pb)": {
	mu:            0.771
	density:       11.34
	buildup_slope: 1.2
}
`

func TestCompileDataset(t *testing.T) {
	r, err := Compile("materials.cue", []byte(validDataset))
	require.NoError(t, err)

	assert.Equal(t, []string{"Borated Polyethylene", "Lead (Pb)"}, r.IDs())

	m, err := r.Lookup("Borated Polyethylene")
	require.NoError(t, err)
	assert.Equal(t, 0.085, m.Mu)
	assert.Equal(t, 1.04, m.Density)
	assert.Equal(t, 3.0, m.BuildupSlope)
	assert.Equal(t, "#f1c40f", m.Color)

	lead, err := r.Lookup("Lead (Pb)")
	require.NoError(t, err)
	assert.Empty(t, lead.Color)
}

func TestCompileDatasetIntegerConstants(t *testing.T) {
	r, err := Compile("ints.cue", []byte(`material: Slab: { mu: 1, density: 2, buildup_slope: 0 }`))
	require.NoError(t, err)

	m, err := r.Lookup("Slab")
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Mu)
	assert.Equal(t, 2.0, m.Density)
	assert.Equal(t, 0.0, m.BuildupSlope)
}

func TestCompileDatasetRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"non-positive mu", `material: X: { mu: 0, density: 1, buildup_slope: 1 }`},
		{"negative density", `material: X: { mu: 1, density: -2, buildup_slope: 1 }`},
		{"negative slope", `material: X: { mu: 1, density: 1, buildup_slope: -1 }`},
		{"missing field", `material: X: { mu: 1, density: 1 }`},
		{"unknown field", `material: X: { mu: 1, density: 1, buildup_slope: 1, energy: 2 }`},
		{"wrong type", `material: X: { mu: "high", density: 1, buildup_slope: 1 }`},
		{"syntax error", `material: X: { mu: 1,, }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile("bad.cue", []byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestCompileDatasetEmpty(t *testing.T) {
	_, err := Compile("empty.cue", []byte(`other: 1`))
	require.Error(t, err)

	var de *DatasetError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "material", de.Field)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.cue")
	require.NoError(t, os.WriteFile(path, []byte(validDataset), 0o644))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read material dataset")
}

func TestDatasetErrorFormat(t *testing.T) {
	err := &DatasetError{Field: "material.X.mu", Message: "bad"}
	assert.Equal(t, "material.X.mu: bad", err.Error())
}
