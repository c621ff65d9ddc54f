package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Tawhia/pyspeckit/units"
)

var unitsCmd = &cobra.Command{
	Use:   "units [family]",
	Short: "List registered units and scale factors",
	Long: `List the units the registry knows, with their scale factor relative
to the canonical SI unit of their family (meter, hertz, meter/second).

With a family argument (length, frequency, velocity) only that family
is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	families := registry.Families()

	if len(args) == 1 {
		f, err := units.ParseFamily(args[0])
		if err != nil {
			return err
		}

		families = []units.Family{f}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tUNIT\tSCALE")

	for _, f := range families {
		for _, name := range registry.Units(f) {
			factor, err := registry.ScaleFactor(f, name)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%s\t%s\t%g\n", f, name, factor)
		}
	}

	return w.Flush()
}
