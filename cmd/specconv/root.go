package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Tawhia/pyspeckit/units"
)

// Config keys recognized in the specconv config file.
const (
	cfgKeyRegistry   = "registry"
	cfgKeyConvention = "convention"
)

// Global flag values.
var (
	flagConfigFile string
	flagRegistry   string
)

// Resolved by PersistentPreRunE for all subcommands.
var (
	registry          *units.Registry
	defaultConvention string
	logger            *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "specconv",
	Short:         "Convert spectroscopic axis values between units",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		registryPath := flagRegistry
		if registryPath == "" {
			registryPath = cfg.GetString(cfgKeyRegistry)
		}

		if registryPath != "" {
			registry, err = units.LoadFile(registryPath)
			if err != nil {
				return err
			}
		} else {
			registry = units.Default()
		}

		defaultConvention = cfg.GetString(cfgKeyConvention)
		if defaultConvention == "" {
			defaultConvention = "radio"
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "", "config file (default: $HOME/.specconv.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagRegistry, "registry", "", "YAML unit registry document (default: built-in registry)")

	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(v2fCmd)
	rootCmd.AddCommand(f2vCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the optional specconv config file with viper. A
// missing file is not an error.
func loadConfig() (*viper.Viper, error) {
	v := viper.New()

	if flagConfigFile != "" {
		v.SetConfigFile(flagConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return v, nil
		}

		v.SetConfigName(".specconv")
		v.SetConfigType("yaml")
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}

		if os.IsNotExist(err) {
			return v, nil
		}

		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// parseValues parses the positional arguments as float64 samples.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))

	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", arg)
		}

		values[i] = v
	}

	return values, nil
}

// printValues writes the converted samples, one line, space separated.
func printValues(cmd *cobra.Command, values []float64, unit string) {
	for i, v := range values {
		if i > 0 {
			fmt.Fprint(cmd.OutOrStdout(), " ")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%g", v)
	}

	fmt.Fprintf(cmd.OutOrStdout(), " %s\n", unit)
}
