// Package attenuation computes broad-beam photon transmission through a flat
// slab, corrected for scattered-photon build-up.
//
// For each thickness t in a domain:
//
//	mfp          = mu * t
//	B            = model.Factor(slope, mfp)   // linear: 1 + slope*mfp
//	transmission = B * exp(-mfp)
//
// With the linear model transmission can rise slightly above 1 for small mfp
// before it decays; it is non-increasing once mfp >= (slope-1)/slope. Callers
// must not assume strict monotonicity from t = 0.
//
// HVL and TVL are narrow-beam values derived from mu alone. They ignore
// build-up and therefore underestimate the thickness needed to reach a
// build-up corrected transmission; use ThicknessFor for that.
package attenuation
