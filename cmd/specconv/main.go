// Command specconv converts spectroscopic axis values between units
// and between velocity and frequency representations.
//
// Usage:
//
//	specconv units [family]
//	specconv convert --unit m --to cm 1.0 2.5
//	specconv v2f --unit m/s --center 1.42e9 0 1000
//	specconv f2v --unit GHz --center 1.42 --center-unit GHz --velocity-unit km/s 1.42 1.41999
//
// A custom unit registry can be supplied with --registry pointing at a
// YAML registry document; defaults for the registry path and the
// Doppler convention can also be placed in a specconv config file (see
// --config).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
