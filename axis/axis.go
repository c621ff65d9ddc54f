package axis

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-vecmath"

	"github.com/Tawhia/pyspeckit/units"
)

// DefaultFrame is the reference-frame label an axis carries when none
// is given or implied.
const DefaultFrame = "rest"

// Axis is a spectroscopic coordinate axis: a caller-owned sample buffer
// annotated with unit, quantity-family, and reference-frame metadata.
//
// Values is mutated in place by conversions. The unexported metadata is
// kept consistent by the conversion methods and read through accessors;
// after any successful conversion the axis family always matches the
// family of the current unit.
type Axis struct {
	// Values holds the coordinate samples. Conversions rescale or
	// replace the elements in place; the slice header never changes.
	Values []float64

	units string
	frame string
	xtype units.Family

	refFreq     float64
	hasRefFreq  bool
	redshift    float64
	hasRedshift bool

	reg    *units.Registry
	logger *slog.Logger
}

type config struct {
	frame    string
	axisType string

	refFreq     float64
	hasRefFreq  bool
	redshift    float64
	hasRedshift bool

	reg    *units.Registry
	logger *slog.Logger
}

// Option configures axis construction.
type Option func(*config)

// WithFrame sets the reference-frame label. It is overridden when a
// recognized axis-type token is also given, since the token implies a
// frame of its own.
func WithFrame(frame string) Option {
	return func(c *config) { c.frame = frame }
}

// WithAxisType supplies an explicit axis-type token such as "VLSR" or
// "FREQ". A recognized token determines both the quantity family and
// the frame; an unrecognized token is ignored and the family is
// inferred from the unit instead.
func WithAxisType(token string) Option {
	return func(c *config) { c.axisType = token }
}

// WithRefFreq attaches a reference frequency. The value is carried for
// downstream use and not read by any conversion.
func WithRefFreq(hz float64) Option {
	return func(c *config) {
		c.refFreq = hz
		c.hasRefFreq = true
	}
}

// WithRedshift attaches a redshift. The value is carried for downstream
// use and not read by any conversion.
func WithRedshift(z float64) Option {
	return func(c *config) {
		c.redshift = z
		c.hasRedshift = true
	}
}

// WithRegistry uses a custom unit registry instead of [units.Default].
func WithRegistry(reg *units.Registry) Option {
	return func(c *config) { c.reg = reg }
}

// WithLogger sets the logger used for informational notices.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New creates an axis over values in the given unit. The slice is not
// copied; the axis owns it from here on and conversions mutate it.
//
// The quantity family is resolved from an explicit axis-type token when
// one is recognized (which also fixes the frame), and from the unit
// name otherwise. An unknown unit with no recognized token fails with
// [units.ErrUnknownUnit].
func New(values []float64, unit string, opts ...Option) (*Axis, error) {
	cfg := config{
		frame:  DefaultFrame,
		reg:    units.Default(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Axis{
		Values:      values,
		units:       unit,
		frame:       cfg.frame,
		refFreq:     cfg.refFreq,
		hasRefFreq:  cfg.hasRefFreq,
		redshift:    cfg.redshift,
		hasRedshift: cfg.hasRedshift,
		reg:         cfg.reg,
		logger:      cfg.logger,
	}

	if cfg.axisType != "" {
		if f, frame, err := cfg.reg.FamilyAndFrameOf(cfg.axisType); err == nil {
			a.xtype = f
			a.frame = frame

			return a, nil
		}
	}

	f, err := cfg.reg.FamilyOf(unit)
	if err != nil {
		return nil, err
	}

	a.xtype = f

	return a, nil
}

// Units returns the current unit name.
func (a *Axis) Units() string { return a.units }

// Frame returns the current reference-frame label.
func (a *Axis) Frame() string { return a.frame }

// XType returns the quantity family the axis currently represents.
func (a *Axis) XType() units.Family { return a.xtype }

// RefFreq returns the attached reference frequency, if any.
func (a *Axis) RefFreq() (float64, bool) { return a.refFreq, a.hasRefFreq }

// Redshift returns the attached redshift, if any.
func (a *Axis) Redshift() (float64, bool) { return a.redshift, a.hasRedshift }

type convertConfig struct {
	frame string
}

// ConvertOption configures a ConvertTo call.
type ConvertOption func(*convertConfig)

// WithTargetFrame requests a target reference frame. Anything other
// than the axis's current frame makes ConvertTo fail with
// [ErrFrameConversionUnsupported]; the option exists so callers state
// the frame they expect rather than getting a silent non-transform.
func WithTargetFrame(frame string) ConvertOption {
	return func(c *convertConfig) { c.frame = frame }
}

// ConvertTo rescales the axis in place to another unit of the same
// quantity family. The target frame defaults to [DefaultFrame].
//
// Converting to the current unit and frame is a no-op: it logs an
// informational notice and returns nil. A target unit from a different
// family fails with [ErrIncompatibleFamily]; an unregistered unit fails
// with [units.ErrUnknownUnit]. On error the axis is untouched.
func (a *Axis) ConvertTo(targetUnit string, opts ...ConvertOption) error {
	cfg := convertConfig{frame: DefaultFrame}
	for _, opt := range opts {
		opt(&cfg)
	}

	if targetUnit == a.units && cfg.frame == a.frame {
		a.logger.Info("axis already in requested units and frame",
			"units", a.units, "frame", a.frame)

		return nil
	}

	if cfg.frame != a.frame {
		return fmt.Errorf("%w: %s to %s", ErrFrameConversionUnsupported, a.frame, cfg.frame)
	}

	current, err := a.reg.ScaleFactor(a.xtype, a.units)
	if err != nil {
		return err
	}

	target, err := a.reg.ScaleFactor(a.xtype, targetUnit)
	if err != nil {
		if f, ferr := a.reg.FamilyOf(targetUnit); ferr == nil && f != a.xtype {
			return fmt.Errorf("%w: %q is a %s unit, axis is %s",
				ErrIncompatibleFamily, targetUnit, f, a.xtype)
		}

		return err
	}

	vecmath.ScaleBlockInPlace(a.Values, current/target)
	a.units = targetUnit

	return nil
}
