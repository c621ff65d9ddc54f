package axis

import "testing"

func benchValues(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(i) * 0.25
	}

	return values
}

func BenchmarkConvertTo(b *testing.B) {
	a, err := New(benchValues(4096), "m")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := a.ConvertTo("cm"); err != nil {
			b.Fatal(err)
		}

		if err := a.ConvertTo("m"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVelocityFrequencyRoundTrip(b *testing.B) {
	a, err := New(benchValues(4096), "km/s")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := a.VelocityToFrequency(1.42, WithFrequencyUnits("GHz"))
		if err != nil {
			b.Fatal(err)
		}

		err = a.FrequencyToVelocity(1.42, WithCenterUnits("GHz"), WithVelocityUnits("km/s"))
		if err != nil {
			b.Fatal(err)
		}
	}
}
