package units

// Built-in scale tables, expressed relative to the canonical SI unit of
// each family: meter, hertz, meter/second.
var (
	lengthTable = map[string]float64{
		"meters": 1.0, "m": 1.0,
		"centimeters": 1e-2, "cm": 1e-2,
		"millimeters": 1e-3, "mm": 1e-3,
		"nanometers": 1e-9, "nm": 1e-9,
		"micrometers": 1e-6, "micron": 1e-6, "microns": 1e-6, "um": 1e-6,
		"kilometers": 1e3, "km": 1e3,
		"angstroms": 1e-10, "A": 1e-10,
	}

	frequencyTable = map[string]float64{
		"Hz":  1.0,
		"kHz": 1e3,
		"MHz": 1e6,
		"GHz": 1e9,
		"THz": 1e12,
	}

	velocityTable = map[string]float64{
		"meters/second": 1.0, "m/s": 1.0,
		"kilometers/s": 1e3, "km/s": 1e3, "kms": 1e3,
		"centimeters/s": 1e-2, "cm/s": 1e-2, "cms": 1e-2,
	}
)

// Axis-type tokens as found in FITS-style spectral headers, mapped to
// the quantity family they imply.
var axisTypeFamilies = map[string]Family{
	"VLSR":       Velocity,
	"VRAD":       Velocity,
	"VELO":       Velocity,
	"VOPT":       Velocity,
	"VHEL":       Velocity,
	"VGEO":       Velocity,
	"VREST":      Velocity,
	"velocity":   Velocity,
	"Z":          Redshift,
	"FREQ":       Frequency,
	"frequency":  Frequency,
	"WAV":        Length,
	"WAVE":       Length,
	"wavelength": Length,
}

// Reference-frame labels implied by each axis-type token. Frame is
// descriptive metadata only; no transform acts on it.
var axisTypeFrames = map[string]string{
	"VLSR":       "LSR",
	"VRAD":       "LSR",
	"VELO":       "LSR",
	"VOPT":       "LSR",
	"VHEL":       "heliocentric",
	"VGEO":       "geocentric",
	"VREST":      "rest",
	"velocity":   "LSR",
	"Z":          "rest",
	"FREQ":       "rest",
	"frequency":  "rest",
	"WAV":        "rest",
	"WAVE":       "rest",
	"wavelength": "rest",
}

var defaultRegistry = mustRegistry()

func mustRegistry() *Registry {
	r, err := newRegistry(map[Family]map[string]float64{
		Length:    lengthTable,
		Frequency: frequencyTable,
		Velocity:  velocityTable,
	}, axisTypeFamilies, axisTypeFrames)
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the built-in registry. The returned value is shared
// and must not be assumed to change between calls.
func Default() *Registry {
	return defaultRegistry
}
