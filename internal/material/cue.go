package material

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaCUE string

// DatasetError is a problem found while loading a CUE material dataset.
type DatasetError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *DatasetError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoadFile reads a CUE material dataset and builds a registry from it.
//
// The file declares materials under a top-level "material" struct:
//
//	material: "Lead (Pb)": {
//		mu:            0.771
//		density:       11.34
//		buildup_slope: 1.2
//		color:         "#7f8c8d"
//	}
//
// Registration order is declaration order.
func LoadFile(path string) (*Registry, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read material dataset: %w", err)
	}
	return Compile(path, src)
}

// Compile builds a registry from CUE source. filename is used in error
// positions only.
func Compile(filename string, src []byte) (*Registry, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile material schema: %w", err)
	}

	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := schema.Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	materialsVal := v.LookupPath(cue.ParsePath("material"))
	if !materialsVal.Exists() {
		return nil, &DatasetError{Field: "material", Message: "no materials declared", Pos: data.Pos()}
	}

	iter, err := materialsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var materials []Material
	for iter.Next() {
		m, err := decodeMaterial(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}

	if len(materials) == 0 {
		return nil, &DatasetError{Field: "material", Message: "no materials declared", Pos: materialsVal.Pos()}
	}

	return NewRegistry(materials...)
}

func decodeMaterial(id string, v cue.Value) (Material, error) {
	m := Material{ID: id}

	fields := []struct {
		name string
		dst  *float64
	}{
		{"mu", &m.Mu},
		{"density", &m.Density},
		{"buildup_slope", &m.BuildupSlope},
	}
	for _, f := range fields {
		val := v.LookupPath(cue.ParsePath(f.name))
		n, err := val.Float64()
		if err != nil {
			return Material{}, &DatasetError{
				Field:   "material." + id + "." + f.name,
				Message: err.Error(),
				Pos:     val.Pos(),
			}
		}
		*f.dst = n
	}

	if colorVal := v.LookupPath(cue.ParsePath("color")); colorVal.Exists() {
		color, err := colorVal.String()
		if err != nil {
			return Material{}, formatCUEError(err)
		}
		m.Color = color
	}

	return m, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := errors.Positions(first)
	if len(positions) > 0 {
		return &DatasetError{
			Field:   "cue",
			Message: first.Error(),
			Pos:     positions[0],
		}
	}
	return err
}
