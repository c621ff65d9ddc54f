package axis_test

import (
	"fmt"

	"github.com/Tawhia/pyspeckit/axis"
)

func ExampleNew() {
	a, err := axis.New([]float64{1, 2, 3}, "nm")
	if err != nil {
		panic(err)
	}

	fmt.Println(a.Units(), a.XType(), a.Frame())
	// Output:
	// nm length rest
}

func ExampleAxis_ConvertTo() {
	a, err := axis.New([]float64{1, 2.5}, "meters")
	if err != nil {
		panic(err)
	}

	if err := a.ConvertTo("centimeters"); err != nil {
		panic(err)
	}

	fmt.Println(a.Values, a.Units())
	// Output:
	// [100 250] centimeters
}

func ExampleAxis_VelocityToFrequency() {
	a, err := axis.New([]float64{0, 1000}, "m/s")
	if err != nil {
		panic(err)
	}

	// HI line rest frequency, radio convention.
	if err := a.VelocityToFrequency(1.42e9); err != nil {
		panic(err)
	}

	fmt.Printf("%.0f %.0f %s\n", a.Values[0], a.Values[1], a.Units())
	// Output:
	// 1420000000 1419995263 Hz
}

func ExampleAxis_FrequencyToVelocity() {
	a, err := axis.New([]float64{1.42}, "GHz")
	if err != nil {
		panic(err)
	}

	err = a.FrequencyToVelocity(1.42,
		axis.WithCenterUnits("GHz"),
		axis.WithVelocityUnits("km/s"),
		axis.WithConvention(axis.Optical),
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0f %s\n", a.Values[0], a.Units())
	// Output:
	// 0 km/s
}
