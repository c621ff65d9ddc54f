package axis

import (
	"fmt"
	"math"

	"github.com/Tawhia/pyspeckit/units"
)

// SpeedOfLight is the speed of light in vacuum, in meters per second.
const SpeedOfLight = 2.99792458e8

// Convention selects one of the astronomical Doppler formulas relating
// velocity and frequency shift, as defined in the NRAO Doppler track
// documentation (https://www.gb.nrao.edu/~fghigo/gbtdoc/doppler.html):
//
//	radio         V = c (f0 - f)/f0    f(V) = f0 (1 - V/c)
//	optical       V = c (f0 - f)/f     f(V) = f0 / (1 + V/c)
//	relativistic  V = c (f0² - f²)/(f0² + f²)
//	              f(V) = f0 sqrt(1 - (V/c)²) / (1 + V/c)
type Convention string

// The supported Doppler conventions.
const (
	Radio        Convention = "radio"
	Optical      Convention = "optical"
	Relativistic Convention = "relativistic"
)

// ParseConvention resolves a convention name.
func ParseConvention(name string) (Convention, error) {
	switch Convention(name) {
	case Radio, Optical, Relativistic:
		return Convention(name), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownConvention, name)
}

// frequencyFromVelocity returns the shifted frequency in Hz for a
// source moving at velocityMS (m/s, positive receding) relative to the
// rest frequency centerHz. The convention must already be validated.
func frequencyFromVelocity(c Convention, centerHz, velocityMS float64) float64 {
	beta := velocityMS / SpeedOfLight

	switch c {
	case Radio:
		return centerHz * (1 - beta)
	case Optical:
		return centerHz / (1 + beta)
	case Relativistic:
		return centerHz * math.Sqrt(1-beta*beta) / (1 + beta)
	}

	return math.NaN()
}

// velocityFromFrequency returns the velocity in m/s implied by the
// observed frequency freqHz against the rest frequency centerHz. The
// convention must already be validated.
func velocityFromFrequency(c Convention, centerHz, freqHz float64) float64 {
	switch c {
	case Radio:
		return SpeedOfLight * (centerHz - freqHz) / centerHz
	case Optical:
		return SpeedOfLight * (centerHz - freqHz) / freqHz
	case Relativistic:
		c2 := centerHz * centerHz
		f2 := freqHz * freqHz

		return SpeedOfLight * (c2 - f2) / (c2 + f2)
	}

	return math.NaN()
}

type dopplerConfig struct {
	frequencyUnits string
	centerUnits    string
	velocityUnits  string
	convention     Convention
}

// DopplerOption configures a velocity/frequency conversion.
type DopplerOption func(*dopplerConfig)

// WithFrequencyUnits sets the unit of the center frequency argument and
// of the resulting frequency values in [Axis.VelocityToFrequency].
// Defaults to "Hz".
func WithFrequencyUnits(unit string) DopplerOption {
	return func(c *dopplerConfig) { c.frequencyUnits = unit }
}

// WithCenterUnits sets the unit of the center frequency argument in
// [Axis.FrequencyToVelocity]. Defaults to "Hz".
func WithCenterUnits(unit string) DopplerOption {
	return func(c *dopplerConfig) { c.centerUnits = unit }
}

// WithVelocityUnits sets the unit of the resulting velocity values in
// [Axis.FrequencyToVelocity]. Defaults to "m/s".
func WithVelocityUnits(unit string) DopplerOption {
	return func(c *dopplerConfig) { c.velocityUnits = unit }
}

// WithConvention selects the Doppler convention. Defaults to [Radio].
func WithConvention(conv Convention) DopplerOption {
	return func(c *dopplerConfig) { c.convention = conv }
}

func newDopplerConfig(opts []DopplerOption) dopplerConfig {
	cfg := dopplerConfig{
		frequencyUnits: "Hz",
		centerUnits:    "Hz",
		velocityUnits:  "m/s",
		convention:     Radio,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// VelocityToFrequency converts a velocity axis in place to frequencies
// using the selected Doppler convention. centerFrequency is the rest
// frequency of the line, expressed in the frequency units of the call
// (see [WithFrequencyUnits]); the converted values come out in those
// same units.
//
// A non-positive center frequency fails with
// [ErrMissingCenterFrequency]. The axis must currently be
// velocity-typed. All validation happens before the values are touched.
func (a *Axis) VelocityToFrequency(centerFrequency float64, opts ...DopplerOption) error {
	cfg := newDopplerConfig(opts)

	if centerFrequency <= 0 {
		return ErrMissingCenterFrequency
	}

	if a.xtype != units.Velocity {
		return fmt.Errorf("%w: axis is %s, not velocity", ErrIncompatibleFamily, a.xtype)
	}

	if _, err := ParseConvention(string(cfg.convention)); err != nil {
		return err
	}

	freqScale, err := a.reg.ScaleFactor(units.Frequency, cfg.frequencyUnits)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, cfg.frequencyUnits)
	}

	velScale, err := a.reg.ScaleFactor(units.Velocity, a.units)
	if err != nil {
		return err
	}

	centerHz := centerFrequency * freqScale

	for i, v := range a.Values {
		fHz := frequencyFromVelocity(cfg.convention, centerHz, v*velScale)
		a.Values[i] = fHz / freqScale
	}

	a.units = cfg.frequencyUnits
	a.xtype = units.Frequency

	return nil
}

// FrequencyToVelocity converts a frequency axis in place to velocities
// using the selected Doppler convention. centerFrequency is the rest
// frequency, in the units given by [WithCenterUnits]; the converted
// values come out in the units given by [WithVelocityUnits].
//
// A non-positive center frequency fails with
// [ErrMissingCenterFrequency]. The axis must currently be
// frequency-typed. All validation happens before the values are
// touched.
func (a *Axis) FrequencyToVelocity(centerFrequency float64, opts ...DopplerOption) error {
	cfg := newDopplerConfig(opts)

	if centerFrequency <= 0 {
		return ErrMissingCenterFrequency
	}

	if a.xtype != units.Frequency {
		return fmt.Errorf("%w: axis is %s, not frequency", ErrIncompatibleFamily, a.xtype)
	}

	if _, err := ParseConvention(string(cfg.convention)); err != nil {
		return err
	}

	centerScale, err := a.reg.ScaleFactor(units.Frequency, cfg.centerUnits)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, cfg.centerUnits)
	}

	velScale, err := a.reg.ScaleFactor(units.Velocity, cfg.velocityUnits)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidUnit, cfg.velocityUnits)
	}

	freqScale, err := a.reg.ScaleFactor(units.Frequency, a.units)
	if err != nil {
		return err
	}

	centerHz := centerFrequency * centerScale

	for i, f := range a.Values {
		vms := velocityFromFrequency(cfg.convention, centerHz, f*freqScale)
		a.Values[i] = vms / velScale
	}

	a.units = cfg.velocityUnits
	a.xtype = units.Velocity

	return nil
}
