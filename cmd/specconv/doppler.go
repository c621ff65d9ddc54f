package main

import (
	"github.com/spf13/cobra"

	"github.com/Tawhia/pyspeckit/axis"
)

var (
	v2fUnit       string
	v2fCenter     float64
	v2fFreqUnit   string
	v2fConvention string
)

var v2fCmd = &cobra.Command{
	Use:   "v2f --unit U --center F0 value...",
	Short: "Convert velocities to frequencies via a Doppler convention",
	Long: `Convert velocity samples to frequencies around a line rest frequency.

The center frequency and the output share the unit given by --freq-unit.`,
	Example: `  specconv v2f --unit m/s --center 1.42e9 0 1000
  specconv v2f --unit km/s --center 1420 --freq-unit MHz --convention optical 0 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runV2F,
}

var (
	f2vUnit       string
	f2vCenter     float64
	f2vCenterUnit string
	f2vVelUnit    string
	f2vConvention string
)

var f2vCmd = &cobra.Command{
	Use:   "f2v --unit U --center F0 value...",
	Short: "Convert frequencies to velocities via a Doppler convention",
	Example: `  specconv f2v --unit Hz --center 1.42e9 1419995263.39
  specconv f2v --unit GHz --center 1.42 --center-unit GHz --velocity-unit km/s 1.41999`,
	Args: cobra.MinimumNArgs(1),
	RunE: runF2V,
}

func init() {
	v2fCmd.Flags().StringVar(&v2fUnit, "unit", "", "current velocity unit of the values")
	v2fCmd.Flags().Float64Var(&v2fCenter, "center", 0, "line rest frequency, in --freq-unit")
	v2fCmd.Flags().StringVar(&v2fFreqUnit, "freq-unit", "Hz", "frequency unit of the center and the output")
	v2fCmd.Flags().StringVar(&v2fConvention, "convention", "", "doppler convention: radio, optical, relativistic")
	_ = v2fCmd.MarkFlagRequired("unit")

	f2vCmd.Flags().StringVar(&f2vUnit, "unit", "", "current frequency unit of the values")
	f2vCmd.Flags().Float64Var(&f2vCenter, "center", 0, "line rest frequency, in --center-unit")
	f2vCmd.Flags().StringVar(&f2vCenterUnit, "center-unit", "Hz", "unit of the center frequency")
	f2vCmd.Flags().StringVar(&f2vVelUnit, "velocity-unit", "m/s", "velocity unit of the output")
	f2vCmd.Flags().StringVar(&f2vConvention, "convention", "", "doppler convention: radio, optical, relativistic")
	_ = f2vCmd.MarkFlagRequired("unit")
}

// resolveConvention applies the --convention flag over the configured
// default and validates the result.
func resolveConvention(flagValue string) (axis.Convention, error) {
	name := flagValue
	if name == "" {
		name = defaultConvention
	}

	return axis.ParseConvention(name)
}

func runV2F(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("center") {
		return axis.ErrMissingCenterFrequency
	}

	conv, err := resolveConvention(v2fConvention)
	if err != nil {
		return err
	}

	values, err := parseValues(args)
	if err != nil {
		return err
	}

	a, err := axis.New(values, v2fUnit,
		axis.WithRegistry(registry),
		axis.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	err = a.VelocityToFrequency(v2fCenter,
		axis.WithFrequencyUnits(v2fFreqUnit),
		axis.WithConvention(conv),
	)
	if err != nil {
		return err
	}

	printValues(cmd, a.Values, a.Units())

	return nil
}

func runF2V(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("center") {
		return axis.ErrMissingCenterFrequency
	}

	conv, err := resolveConvention(f2vConvention)
	if err != nil {
		return err
	}

	values, err := parseValues(args)
	if err != nil {
		return err
	}

	a, err := axis.New(values, f2vUnit,
		axis.WithRegistry(registry),
		axis.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	err = a.FrequencyToVelocity(f2vCenter,
		axis.WithCenterUnits(f2vCenterUnit),
		axis.WithVelocityUnits(f2vVelUnit),
		axis.WithConvention(conv),
	)
	if err != nil {
		return err
	}

	printValues(cmd, a.Values, a.Units())

	return nil
}
