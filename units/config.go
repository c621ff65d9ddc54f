package units

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a registry configuration that fails the
// structural invariants (empty tables, non-positive scale factors,
// axis types without a frame, ...).
var ErrInvalidConfig = errors.New("units: invalid registry configuration")

// fileConfig mirrors the YAML registry document:
//
//	families:
//	  length:
//	    m: 1.0
//	    cm: 0.01
//	axisTypes:
//	  VLSR:
//	    family: velocity
//	    frame: LSR
//
// Unit names and axis-type tokens are case-sensitive (MHz is not mHz),
// so the document is decoded with yaml directly rather than through a
// key-folding config layer.
type fileConfig struct {
	Families  map[string]map[string]float64 `yaml:"families"`
	AxisTypes map[string]axisTypeConfig     `yaml:"axisTypes"`
}

type axisTypeConfig struct {
	Family string `yaml:"family"`
	Frame  string `yaml:"frame"`
}

// Load builds a registry from a YAML registry document.
func Load(r io.Reader) (*Registry, error) {
	var cfg fileConfig

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if len(cfg.Families) == 0 {
		return nil, fmt.Errorf("%w: no families defined", ErrInvalidConfig)
	}

	scales := make(map[Family]map[string]float64, len(cfg.Families))

	for name, table := range cfg.Families {
		f, err := ParseFamily(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}

		if len(table) == 0 {
			return nil, fmt.Errorf("%w: family %q has no units", ErrInvalidConfig, name)
		}

		scales[f] = table
	}

	axisFamily := make(map[string]Family, len(cfg.AxisTypes))
	axisFrame := make(map[string]string, len(cfg.AxisTypes))

	for tok, at := range cfg.AxisTypes {
		f, err := ParseFamily(at.Family)
		if err != nil {
			return nil, fmt.Errorf("%w: axis type %q: %v", ErrInvalidConfig, tok, err)
		}

		if at.Frame == "" {
			return nil, fmt.Errorf("%w: axis type %q has no frame", ErrInvalidConfig, tok)
		}

		axisFamily[tok] = f
		axisFrame[tok] = at.Frame
	}

	reg, err := newRegistry(scales, axisFamily, axisFrame)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return reg, nil
}

// LoadFile reads a YAML registry configuration from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("units: read config: %w", err)
	}
	defer f.Close()

	return Load(f)
}
