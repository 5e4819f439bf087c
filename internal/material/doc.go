// Package material holds the shielding material registry.
//
// A Registry is built once, at process start, either from the built-in
// 1.0 MeV dataset (Default) or from a CUE dataset file (LoadFile). After
// construction it is read-only and safe for concurrent use.
//
// The constants are illustrative single-energy values. The build-up slope is
// the coefficient of the linear build-up approximation B = 1 + slope*mfp and
// is not taken from tabulated build-up factor data.
package material
