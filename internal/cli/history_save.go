package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/shieldlab/internal/material"
	"github.com/roach88/shieldlab/internal/store"
)

// Requests stored alongside results in the history database. They carry
// the resolved material constants, not just ids, so the same id under a
// different dataset is a different request.

type loadRequest struct {
	Material     material.Material `json:"material"`
	HeightM      float64           `json:"height_m"`
	WidthM       float64           `json:"width_m"`
	ThicknessCm  float64           `json:"thickness_cm"`
	CapacityKgM2 float64           `json:"capacity_kg_m2"`
}

type comparisonRequest struct {
	Materials      []material.Material `json:"materials"`
	MaxThicknessCm float64             `json:"max_thickness_cm"`
	Samples        int                 `json:"samples"`
	Model          string              `json:"model"`
}

type targetRequest struct {
	Material     material.Material `json:"material"`
	Transmission float64           `json:"transmission"`
	Model        string            `json:"model"`
}

// saveRecord stores a calculation in the history database and returns the
// record id. An identical earlier request returns the existing id.
func saveRecord(cmd *cobra.Command, env *environment, kind store.Kind, model string, request, result any) (string, error) {
	st, err := env.openStore()
	if err != nil {
		return "", err
	}
	defer closeHistory(st)

	rec, created, err := st.Save(cmd.Context(), kind, model, request, result)
	if err != nil {
		return "", err
	}
	slog.Debug("saved record", "id", rec.ID, "kind", kind, "created", created)
	return rec.ID, nil
}
