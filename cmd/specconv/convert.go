package main

import (
	"github.com/spf13/cobra"

	"github.com/Tawhia/pyspeckit/axis"
)

var (
	convertUnit  string
	convertTo    string
	convertFrame string
)

var convertCmd = &cobra.Command{
	Use:   "convert --unit U --to U2 value...",
	Short: "Convert values to another unit of the same family",
	Example: `  specconv convert --unit m --to cm 1.0 2.5
  specconv convert --unit GHz --to MHz 1.42`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertUnit, "unit", "", "current unit of the values")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target unit")
	convertCmd.Flags().StringVar(&convertFrame, "frame", axis.DefaultFrame, "reference frame of the values")
	_ = convertCmd.MarkFlagRequired("unit")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}

	a, err := axis.New(values, convertUnit,
		axis.WithFrame(convertFrame),
		axis.WithRegistry(registry),
		axis.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if err := a.ConvertTo(convertTo, axis.WithTargetFrame(convertFrame)); err != nil {
		return err
	}

	printValues(cmd, a.Values, a.Units())

	return nil
}
