// Package units provides the unit registry for spectroscopic axes.
//
// A registry maps unit names to scale factors relative to a canonical
// SI unit per quantity family (meter, hertz, meter/second), maps unit
// names back to their family, and resolves axis-type tokens such as
// "VLSR" or "FREQ" to a quantity family and a reference-frame label.
//
// The built-in registry returned by [Default] covers the common
// spectroscopic units. A custom registry can be loaded from a YAML
// configuration file with [LoadFile]:
//
//	reg, err := units.LoadFile("units.yaml")
//
// Registries are immutable after construction and safe for concurrent
// use.
package units
