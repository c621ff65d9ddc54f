package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors returned by registry lookups.
var (
	ErrUnknownUnit     = errors.New("units: unknown unit")
	ErrUnknownAxisType = errors.New("units: unknown axis type")
	ErrUnknownFamily   = errors.New("units: unknown quantity family")
)

// Family identifies a class of physically comparable units.
type Family string

// The quantity families. Redshift is recognized as an axis type but has
// no scale table and cannot be converted.
const (
	Length    Family = "length"
	Frequency Family = "frequency"
	Velocity  Family = "velocity"
	Redshift  Family = "redshift"
)

// ParseFamily resolves a family name, accepting the short aliases used
// in FITS-style headers ("FREQ", "velo", ...). Matching is
// case-insensitive.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(name) {
	case "length", "wav", "wave", "wavelength":
		return Length, nil
	case "frequency", "freq":
		return Frequency, nil
	case "velocity", "velo":
		return Velocity, nil
	case "redshift", "z":
		return Redshift, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Registry holds the unit scale tables and axis-type mappings. It is
// immutable after construction; all methods are pure lookups.
type Registry struct {
	scales     map[Family]map[string]float64
	unitFamily map[string]Family
	axisFamily map[string]Family
	axisFrame  map[string]string
}

// ScaleFactor returns how many canonical SI units (meter, hertz,
// meter/second) one unit of the given name equals, within the given
// family.
func (r *Registry) ScaleFactor(f Family, unit string) (float64, error) {
	table, ok := r.scales[f]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, f)
	}

	factor, ok := table[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s unit", ErrUnknownUnit, unit, f)
	}

	return factor, nil
}

// FamilyOf returns the quantity family a unit name belongs to.
func (r *Registry) FamilyOf(unit string) (Family, error) {
	f, ok := r.unitFamily[unit]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}

	return f, nil
}

// FamilyAndFrameOf resolves an axis-type token (e.g. "VLSR", "FREQ")
// to its quantity family and reference-frame label.
func (r *Registry) FamilyAndFrameOf(axisType string) (Family, string, error) {
	f, ok := r.axisFamily[axisType]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownAxisType, axisType)
	}

	return f, r.axisFrame[axisType], nil
}

// Units returns the unit names registered under a family, sorted.
func (r *Registry) Units(f Family) []string {
	table := r.scales[f]
	if len(table) == 0 {
		return nil
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Families returns the families that carry a scale table, sorted.
func (r *Registry) Families() []Family {
	fams := make([]Family, 0, len(r.scales))
	for f := range r.scales {
		fams = append(fams, f)
	}

	sort.Slice(fams, func(i, j int) bool { return fams[i] < fams[j] })

	return fams
}

// AxisTypes returns the registered axis-type tokens, sorted.
func (r *Registry) AxisTypes() []string {
	toks := make([]string, 0, len(r.axisFamily))
	for t := range r.axisFamily {
		toks = append(toks, t)
	}

	sort.Strings(toks)

	return toks
}

// newRegistry copies the tables into a fresh registry and checks the
// structural invariants: positive scale factors, a family entry for
// every registered unit, and a frame label for every axis-type token.
func newRegistry(scales map[Family]map[string]float64, axisFamily map[string]Family, axisFrame map[string]string) (*Registry, error) {
	r := &Registry{
		scales:     make(map[Family]map[string]float64, len(scales)),
		unitFamily: make(map[string]Family),
		axisFamily: make(map[string]Family, len(axisFamily)),
		axisFrame:  make(map[string]string, len(axisFrame)),
	}

	for f, table := range scales {
		dst := make(map[string]float64, len(table))

		for name, factor := range table {
			if factor <= 0 {
				return nil, fmt.Errorf("units: scale factor for %q must be positive, got %g", name, factor)
			}

			if prev, ok := r.unitFamily[name]; ok && prev != f {
				return nil, fmt.Errorf("units: unit %q registered under both %s and %s", name, prev, f)
			}

			dst[name] = factor
			r.unitFamily[name] = f
		}

		r.scales[f] = dst
	}

	for tok, f := range axisFamily {
		frame, ok := axisFrame[tok]
		if !ok {
			return nil, fmt.Errorf("units: axis type %q has no reference frame", tok)
		}

		r.axisFamily[tok] = f
		r.axisFrame[tok] = frame
	}

	return r, nil
}
