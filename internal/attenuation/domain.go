package attenuation

import "math"

// MinSamples is the smallest sample count NewDomain accepts.
const MinSamples = 2

// Domain is an ordered sequence of slab thicknesses in cm.
type Domain []float64

// NewDomain returns samples evenly spaced thicknesses from 0 to maxThickness
// inclusive.
func NewDomain(maxThickness float64, samples int) (Domain, error) {
	if !(maxThickness > 0) || math.IsInf(maxThickness, 0) {
		return nil, &InvalidDomainError{Index: -1, Message: "maximum thickness must be a positive number"}
	}
	if samples < MinSamples {
		return nil, &InvalidDomainError{Index: -1, Message: "at least 2 samples are required"}
	}

	d := make(Domain, samples)
	step := maxThickness / float64(samples-1)
	for i := range d {
		d[i] = float64(i) * step
	}
	d[samples-1] = maxThickness
	return d, nil
}

// Validate checks that the domain is non-empty and every thickness is a
// finite, non-negative number.
func (d Domain) Validate() error {
	if len(d) == 0 {
		return &InvalidDomainError{Index: -1, Message: "domain is empty"}
	}
	for i, t := range d {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return &InvalidDomainError{Index: i, Value: t, Message: "thickness must be finite"}
		}
		if t < 0 {
			return &InvalidDomainError{Index: i, Value: t, Message: "thickness must not be negative"}
		}
	}
	return nil
}

// Max returns the largest thickness in the domain, or 0 if it is empty.
func (d Domain) Max() float64 {
	var m float64
	for _, t := range d {
		if t > m {
			m = t
		}
	}
	return m
}
