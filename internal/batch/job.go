package batch

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Job describes a batch of calculations run against one registry.
type Job struct {
	// Name identifies the job in reports.
	Name string `yaml:"name"`

	// Description is free text copied into the report.
	Description string `yaml:"description,omitempty"`

	// Materials selects the materials of the comparison. An empty list
	// skips the comparison.
	Materials []string `yaml:"materials,omitempty"`

	// MaxThicknessCm and Samples define the comparison domain. Zero values
	// fall back to the runner defaults.
	MaxThicknessCm float64 `yaml:"max_thickness_cm,omitempty"`
	Samples        int     `yaml:"samples,omitempty"`

	// Walls are structural load checks.
	Walls []WallCheck `yaml:"walls,omitempty"`

	// Targets are target-transmission thickness queries.
	Targets []TargetQuery `yaml:"targets,omitempty"`
}

// WallCheck is one wall to check against a floor capacity.
type WallCheck struct {
	Material    string  `yaml:"material" json:"material"`
	HeightM     float64 `yaml:"height_m" json:"height_m"`
	WidthM      float64 `yaml:"width_m" json:"width_m"`
	ThicknessCm float64 `yaml:"thickness_cm" json:"thickness_cm"`

	// CapacityKgM2 of zero uses the runner's default floor capacity.
	CapacityKgM2 float64 `yaml:"capacity_kg_m2,omitempty" json:"capacity_kg_m2"`
}

// TargetQuery asks for the thickness of Material that brings transmission
// down to Transmission.
type TargetQuery struct {
	Material     string  `yaml:"material" json:"material"`
	Transmission float64 `yaml:"transmission" json:"transmission"`
}

// LoadJob reads and parses a job YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields, or is missing required fields.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}
	return ParseJob(data)
}

// ParseJob parses job YAML.
func ParseJob(data []byte) (*Job, error) {
	var job Job
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateJob(&job); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return &job, nil
}

// validateJob checks structure only. Numeric ranges are left to the
// calculators so that each failing step is reported on its own.
func validateJob(j *Job) error {
	if j.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(j.Materials) == 0 && len(j.Walls) == 0 && len(j.Targets) == 0 {
		return fmt.Errorf("at least one of materials, walls or targets is required")
	}

	if j.Samples < 0 {
		return fmt.Errorf("samples must be non-negative")
	}

	for i, id := range j.Materials {
		if id == "" {
			return fmt.Errorf("materials[%d]: id is required", i)
		}
	}

	for i, w := range j.Walls {
		if w.Material == "" {
			return fmt.Errorf("walls[%d]: material is required", i)
		}
	}

	for i, q := range j.Targets {
		if q.Material == "" {
			return fmt.Errorf("targets[%d]: material is required", i)
		}
	}

	return nil
}
