package axis

import "errors"

// Errors returned by axis conversions. Every conversion validates its
// arguments before touching the axis, so a non-nil error means the
// values and metadata are exactly as they were before the call.
var (
	ErrIncompatibleFamily         = errors.New("axis: unit belongs to a different quantity family")
	ErrMissingCenterFrequency     = errors.New("axis: a positive center frequency is required")
	ErrInvalidUnit                = errors.New("axis: unit is not registered")
	ErrUnknownConvention          = errors.New("axis: unknown doppler convention")
	ErrFrameConversionUnsupported = errors.New("axis: reference-frame conversion is not supported")
)
