package attenuation

import (
	"errors"
	"fmt"
)

// InvalidDomainError is returned for a malformed thickness domain or a
// material whose attenuation coefficient is not positive.
type InvalidDomainError struct {
	// Index of the offending thickness, or -1 when the error is not about a
	// single sample.
	Index   int
	Value   float64
	Message string
}

func (e *InvalidDomainError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid thickness domain: sample %d (%g): %s", e.Index, e.Value, e.Message)
	}
	return fmt.Sprintf("invalid thickness domain: %s", e.Message)
}

// InvalidTargetError is returned by ThicknessFor when the requested
// transmission is outside (0, 1).
type InvalidTargetError struct {
	Target float64
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target transmission %g: must be between 0 and 1 exclusive", e.Target)
}

// UnknownModelError is returned by ModelByName for an unregistered model.
type UnknownModelError struct {
	Name string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown build-up model %q (want one of %v)", e.Name, ModelNames())
}

// IsInvalidDomain reports whether err is, or wraps, an InvalidDomainError.
func IsInvalidDomain(err error) bool {
	var de *InvalidDomainError
	return errors.As(err, &de)
}

// IsInvalidTarget reports whether err is, or wraps, an InvalidTargetError.
func IsInvalidTarget(err error) bool {
	var te *InvalidTargetError
	return errors.As(err, &te)
}
