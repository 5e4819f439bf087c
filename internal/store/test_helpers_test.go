package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type loadRequest struct {
	Material    string  `json:"material"`
	ThicknessCm float64 `json:"thickness_cm"`
}

type loadResult struct {
	ArealLoad float64 `json:"areal_load_kg_m2"`
}
