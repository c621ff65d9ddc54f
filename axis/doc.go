// Package axis implements a unit-aware spectroscopic coordinate axis.
//
// An [Axis] wraps the independent coordinate of a spectrum (wavelength,
// frequency, or velocity samples) together with its unit, quantity
// family, and reference-frame label. Conversions mutate the axis in
// place:
//
//	a, _ := axis.New([]float64{0, 1000}, "m/s")
//	err := a.VelocityToFrequency(1.42e9)          // radio convention, Hz
//	err = a.ConvertTo("GHz")                      // same-family rescale
//
// Velocity and frequency representations are related through one of the
// radio, optical, or relativistic Doppler conventions; see
// [Convention].
//
// An axis is owned by a single caller. Conversions are destructive and
// the package does no internal locking; callers that share an axis
// across goroutines must serialize access themselves.
package axis
