package units

import (
	"errors"
	"sort"
	"testing"
)

func TestScaleFactorKnownUnits(t *testing.T) {
	cases := []struct {
		family Family
		unit   string
		want   float64
	}{
		{Length, "m", 1.0},
		{Length, "meters", 1.0},
		{Length, "cm", 1e-2},
		{Length, "nm", 1e-9},
		{Length, "angstroms", 1e-10},
		{Length, "A", 1e-10},
		{Length, "micron", 1e-6},
		{Frequency, "Hz", 1.0},
		{Frequency, "MHz", 1e6},
		{Frequency, "THz", 1e12},
		{Velocity, "m/s", 1.0},
		{Velocity, "km/s", 1e3},
		{Velocity, "kms", 1e3},
		{Velocity, "cm/s", 1e-2},
	}

	reg := Default()

	for _, tc := range cases {
		got, err := reg.ScaleFactor(tc.family, tc.unit)
		if err != nil {
			t.Fatalf("ScaleFactor(%s, %q): %v", tc.family, tc.unit, err)
		}

		if got != tc.want {
			t.Errorf("ScaleFactor(%s, %q) = %g, want %g", tc.family, tc.unit, got, tc.want)
		}
	}
}

func TestScaleFactorUnknown(t *testing.T) {
	reg := Default()

	if _, err := reg.ScaleFactor(Length, "furlongs"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("ScaleFactor(length, furlongs) err = %v, want ErrUnknownUnit", err)
	}

	// Hz is a real unit but not a length.
	if _, err := reg.ScaleFactor(Length, "Hz"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("ScaleFactor(length, Hz) err = %v, want ErrUnknownUnit", err)
	}

	// Redshift has no scale table at all.
	if _, err := reg.ScaleFactor(Redshift, "z"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("ScaleFactor(redshift, z) err = %v, want ErrUnknownFamily", err)
	}
}

func TestFamilyOf(t *testing.T) {
	cases := []struct {
		unit string
		want Family
	}{
		{"nm", Length},
		{"angstroms", Length},
		{"GHz", Frequency},
		{"km/s", Velocity},
		{"meters/second", Velocity},
	}

	reg := Default()

	for _, tc := range cases {
		got, err := reg.FamilyOf(tc.unit)
		if err != nil {
			t.Fatalf("FamilyOf(%q): %v", tc.unit, err)
		}

		if got != tc.want {
			t.Errorf("FamilyOf(%q) = %s, want %s", tc.unit, got, tc.want)
		}
	}

	if _, err := reg.FamilyOf("furlongs"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("FamilyOf(furlongs) err = %v, want ErrUnknownUnit", err)
	}
}

func TestFamilyAndFrameOf(t *testing.T) {
	cases := []struct {
		token  string
		family Family
		frame  string
	}{
		{"VLSR", Velocity, "LSR"},
		{"VRAD", Velocity, "LSR"},
		{"VOPT", Velocity, "LSR"},
		{"VHEL", Velocity, "heliocentric"},
		{"VGEO", Velocity, "geocentric"},
		{"VREST", Velocity, "rest"},
		{"Z", Redshift, "rest"},
		{"FREQ", Frequency, "rest"},
		{"WAVE", Length, "rest"},
		{"wavelength", Length, "rest"},
	}

	reg := Default()

	for _, tc := range cases {
		f, frame, err := reg.FamilyAndFrameOf(tc.token)
		if err != nil {
			t.Fatalf("FamilyAndFrameOf(%q): %v", tc.token, err)
		}

		if f != tc.family || frame != tc.frame {
			t.Errorf("FamilyAndFrameOf(%q) = (%s, %s), want (%s, %s)",
				tc.token, f, frame, tc.family, tc.frame)
		}
	}

	if _, _, err := reg.FamilyAndFrameOf("BOGUS"); !errors.Is(err, ErrUnknownAxisType) {
		t.Errorf("FamilyAndFrameOf(BOGUS) err = %v, want ErrUnknownAxisType", err)
	}
}

func TestEveryAxisTypeHasFrame(t *testing.T) {
	reg := Default()

	for _, tok := range reg.AxisTypes() {
		_, frame, err := reg.FamilyAndFrameOf(tok)
		if err != nil {
			t.Fatalf("FamilyAndFrameOf(%q): %v", tok, err)
		}

		if frame == "" {
			t.Errorf("axis type %q has no frame", tok)
		}
	}
}

func TestEveryUnitMapsToItsFamily(t *testing.T) {
	reg := Default()

	for _, f := range reg.Families() {
		for _, name := range reg.Units(f) {
			got, err := reg.FamilyOf(name)
			if err != nil {
				t.Fatalf("FamilyOf(%q): %v", name, err)
			}

			if got != f {
				t.Errorf("unit %q listed under %s but FamilyOf says %s", name, f, got)
			}
		}
	}
}

func TestUnitsSorted(t *testing.T) {
	reg := Default()

	names := reg.Units(Frequency)
	if len(names) != 5 {
		t.Fatalf("Units(frequency) returned %d names, want 5", len(names))
	}

	if !sort.StringsAreSorted(names) {
		t.Errorf("Units(frequency) not sorted: %v", names)
	}

	if reg.Units(Redshift) != nil {
		t.Errorf("Units(redshift) = %v, want nil", reg.Units(Redshift))
	}
}

func TestParseFamily(t *testing.T) {
	cases := []struct {
		in   string
		want Family
	}{
		{"length", Length},
		{"Length", Length},
		{"WAVE", Length},
		{"frequency", Frequency},
		{"FREQ", Frequency},
		{"velocity", Velocity},
		{"VELO", Velocity},
		{"velo", Velocity},
		{"Z", Redshift},
		{"redshift", Redshift},
	}

	for _, tc := range cases {
		got, err := ParseFamily(tc.in)
		if err != nil {
			t.Fatalf("ParseFamily(%q): %v", tc.in, err)
		}

		if got != tc.want {
			t.Errorf("ParseFamily(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseFamily("mass"); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("ParseFamily(mass) err = %v, want ErrUnknownFamily", err)
	}
}
