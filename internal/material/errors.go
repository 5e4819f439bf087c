package material

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownMaterialError is returned when an identifier is not in the registry.
type UnknownMaterialError struct {
	ID string

	// Suggestions lists registered ids close to ID, best match first.
	Suggestions []string
}

func (e *UnknownMaterialError) Error() string {
	if len(e.Suggestions) > 0 {
		return fmt.Sprintf("unknown material %q (did you mean %s?)", e.ID, quoteJoin(e.Suggestions))
	}
	return fmt.Sprintf("unknown material %q", e.ID)
}

// InvalidMaterialError is returned when a dataset entry violates the
// registry invariants (non-positive mu or density, negative slope,
// duplicate or empty id).
type InvalidMaterialError struct {
	ID      string
	Field   string
	Message string
}

func (e *InvalidMaterialError) Error() string {
	return fmt.Sprintf("invalid material %q: %s: %s", e.ID, e.Field, e.Message)
}

// IsUnknownMaterial reports whether err is, or wraps, an UnknownMaterialError.
func IsUnknownMaterial(err error) bool {
	var ue *UnknownMaterialError
	return errors.As(err, &ue)
}

// IsInvalidMaterial reports whether err is, or wraps, an InvalidMaterialError.
func IsInvalidMaterial(err error) bool {
	var ie *InvalidMaterialError
	return errors.As(err, &ie)
}

func quoteJoin(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = fmt.Sprintf("%q", id)
	}
	return strings.Join(quoted, " or ")
}
