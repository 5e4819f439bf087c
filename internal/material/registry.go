package material

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps the close matches attached to an UnknownMaterialError.
const maxSuggestions = 3

// Registry is an immutable, ordered set of materials.
type Registry struct {
	order []Material
	byID  map[string]int
}

// NewRegistry builds a registry in the given order.
// Returns InvalidMaterialError if any entry violates the invariants or
// if two entries share an id.
func NewRegistry(materials ...Material) (*Registry, error) {
	r := &Registry{
		order: make([]Material, 0, len(materials)),
		byID:  make(map[string]int, len(materials)),
	}

	for _, m := range materials {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		key := NormalizeID(m.ID)
		if _, dup := r.byID[key]; dup {
			return nil, &InvalidMaterialError{ID: m.ID, Field: "id", Message: "duplicate id"}
		}
		m.ID = key
		r.byID[key] = len(r.order)
		r.order = append(r.order, m)
	}

	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
// Intended for fixed built-in datasets.
func MustRegistry(materials ...Material) *Registry {
	r, err := NewRegistry(materials...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the material registered under id.
func (r *Registry) Lookup(id string) (Material, error) {
	if i, ok := r.byID[NormalizeID(id)]; ok {
		return r.order[i], nil
	}
	return Material{}, &UnknownMaterialError{ID: id, Suggestions: r.suggest(id)}
}

// List returns all materials in registration order.
// The returned slice is a copy.
func (r *Registry) List() []Material {
	out := make([]Material, len(r.order))
	copy(out, r.order)
	return out
}

// IDs returns all material ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	for i, m := range r.order {
		ids[i] = m.ID
	}
	return ids
}

// Len returns the number of registered materials.
func (r *Registry) Len() int {
	return len(r.order)
}

// suggest ranks registered ids by edit distance to id.
// A case-insensitive substring match ranks ahead of any edit distance.
func (r *Registry) suggest(id string) []string {
	needle := strings.ToLower(NormalizeID(id))
	if needle == "" {
		return nil
	}

	type candidate struct {
		id   string
		dist int
		pos  int
	}

	var candidates []candidate
	for i, m := range r.order {
		hay := strings.ToLower(m.ID)
		dist := levenshtein.ComputeDistance(needle, hay)
		if strings.Contains(hay, needle) {
			dist = 0
		}
		if dist > threshold(needle) {
			continue
		}
		candidates = append(candidates, candidate{id: m.ID, dist: dist, pos: i})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].pos < candidates[j].pos
	})

	var out []string
	for _, c := range candidates {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.id)
	}
	return out
}

// threshold is the largest edit distance still worth suggesting.
func threshold(needle string) int {
	if n := len(needle) / 2; n > 2 {
		return n
	}
	return 2
}
