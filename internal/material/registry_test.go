package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryOrder(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{Lead, Tungsten, Iron, Concrete, Water}, r.IDs())
	assert.Equal(t, 5, r.Len())
}

func TestDefaultRegistryInvariants(t *testing.T) {
	for _, m := range Default().List() {
		t.Run(m.ID, func(t *testing.T) {
			assert.Greater(t, m.Mu, 0.0)
			assert.Greater(t, m.Density, 0.0)
			assert.GreaterOrEqual(t, m.BuildupSlope, 0.0)
			assert.NotEmpty(t, m.Color)
		})
	}
}

func TestLookup(t *testing.T) {
	r := Default()

	m, err := r.Lookup(Lead)
	require.NoError(t, err)
	assert.Equal(t, 0.771, m.Mu)
	assert.Equal(t, 11.34, m.Density)
	assert.Equal(t, 1.2, m.BuildupSlope)
}

func TestLookupNormalizesID(t *testing.T) {
	r := MustRegistry(Material{ID: "Caf\u00e9 Block", Mu: 0.2, Density: 2, BuildupSlope: 1})

	// Decomposed e + combining acute accent, with padding.
	m, err := r.Lookup("  Cafe\u0301 Block ")
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9 Block", m.ID)
}

func TestLookupUnknown(t *testing.T) {
	r := Default()

	_, err := r.Lookup("nonexistent")
	require.Error(t, err)
	assert.True(t, IsUnknownMaterial(err))

	var ue *UnknownMaterialError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "nonexistent", ue.ID)
	assert.Empty(t, ue.Suggestions)
	assert.Equal(t, `unknown material "nonexistent"`, err.Error())
}

func TestLookupUnknownSuggestions(t *testing.T) {
	r := Default()

	tests := []struct {
		name  string
		input string
		first string
	}{
		{"substring", "lead", Lead},
		{"typo", "Concrte", Concrete},
		{"missing formula", "Water", Water},
		{"case", "iron (fe)", Iron},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Lookup is case sensitive; suggestions are not.
			_, err := r.Lookup(tt.input)
			var ue *UnknownMaterialError
			require.ErrorAs(t, err, &ue)
			require.NotEmpty(t, ue.Suggestions)
			assert.Equal(t, tt.first, ue.Suggestions[0])
			assert.LessOrEqual(t, len(ue.Suggestions), maxSuggestions)
			assert.Contains(t, err.Error(), "did you mean")
		})
	}
}

func TestListIsCopy(t *testing.T) {
	r := Default()

	list := r.List()
	list[0].Mu = 99

	m, err := r.Lookup(Lead)
	require.NoError(t, err)
	assert.Equal(t, 0.771, m.Mu)
}

func TestNewRegistryRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		m     Material
		field string
	}{
		{"empty id", Material{ID: "  ", Mu: 1, Density: 1}, "id"},
		{"zero mu", Material{ID: "x", Mu: 0, Density: 1}, "mu"},
		{"negative density", Material{ID: "x", Mu: 1, Density: -1}, "density"},
		{"negative slope", Material{ID: "x", Mu: 1, Density: 1, BuildupSlope: -0.1}, "buildup_slope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.m)
			require.Error(t, err)

			var ie *InvalidMaterialError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.field, ie.Field)
			assert.True(t, IsInvalidMaterial(err))
		})
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry(
		Material{ID: "Steel", Mu: 0.4, Density: 7.8},
		Material{ID: " Steel", Mu: 0.5, Density: 7.9},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestMustRegistryPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustRegistry(Material{ID: "bad"})
	})
}
