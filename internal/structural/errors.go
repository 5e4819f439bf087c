package structural

import (
	"errors"
	"fmt"
	"math"
)

// InvalidGeometryError is returned for a non-positive wall dimension, or
// one whose derived area, volume or weight is out of range.
type InvalidGeometryError struct {
	Dimension string
	Value     float64
}

func (e *InvalidGeometryError) Error() string {
	if math.IsInf(e.Value, 0) {
		return fmt.Sprintf("invalid wall geometry: %s is out of range, got %g", e.Dimension, e.Value)
	}
	return fmt.Sprintf("invalid wall geometry: %s must be positive, got %g", e.Dimension, e.Value)
}

// InvalidCapacityError is returned for a non-positive floor capacity.
type InvalidCapacityError struct {
	Value float64
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid floor capacity: must be positive, got %g kg/m2", e.Value)
}

// IsInvalidGeometry reports whether err is, or wraps, an InvalidGeometryError.
func IsInvalidGeometry(err error) bool {
	var ge *InvalidGeometryError
	return errors.As(err, &ge)
}

// IsInvalidCapacity reports whether err is, or wraps, an InvalidCapacityError.
func IsInvalidCapacity(err error) bool {
	var ce *InvalidCapacityError
	return errors.As(err, &ce)
}
