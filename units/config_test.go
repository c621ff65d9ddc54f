package units

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRegistryYAML = `
families:
  length:
    m: 1.0
    cm: 0.01
  frequency:
    Hz: 1.0
    MHz: 1.0e6
  velocity:
    m/s: 1.0
    km/s: 1000
axisTypes:
  VLSR:
    family: velocity
    frame: LSR
  FREQ:
    family: frequency
    frame: rest
`

func TestLoadValidRegistry(t *testing.T) {
	reg, err := Load(strings.NewReader(validRegistryYAML))
	require.NoError(t, err)

	factor, err := reg.ScaleFactor(Frequency, "MHz")
	require.NoError(t, err)
	assert.Equal(t, 1e6, factor)

	// Unit-name case must survive loading: MHz, not mhz.
	_, err = reg.ScaleFactor(Frequency, "mhz")
	assert.ErrorIs(t, err, ErrUnknownUnit)

	f, err := reg.FamilyOf("km/s")
	require.NoError(t, err)
	assert.Equal(t, Velocity, f)

	fam, frame, err := reg.FamilyAndFrameOf("VLSR")
	require.NoError(t, err)
	assert.Equal(t, Velocity, fam)
	assert.Equal(t, "LSR", frame)
}

func TestLoadInvalidRegistry(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty document", ""},
		{"no families", "axisTypes:\n  FREQ:\n    family: frequency\n    frame: rest\n"},
		{"unknown family", "families:\n  mass:\n    kg: 1.0\n"},
		{"empty family", "families:\n  length:\n"},
		{"non-positive scale", "families:\n  length:\n    m: 0\n"},
		{"axis type without frame", validRegistryYAML + "  WAVE:\n    family: length\n"},
		{"axis type with unknown family", "families:\n  length:\n    m: 1.0\naxisTypes:\n  Q:\n    family: charge\n    frame: rest\n"},
		{"unknown top-level key", "families:\n  length:\n    m: 1.0\nscales: {}\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.yaml))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validRegistryYAML), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)

	factor, err := reg.ScaleFactor(Length, "cm")
	require.NoError(t, err)
	assert.Equal(t, 0.01, factor)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
