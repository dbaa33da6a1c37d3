package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-vector/pkg/logger"
	"github.com/huynhanx03/go-vector/pkg/settings"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "vectorctl",
	Short: "Exercise and inspect the vector container",
	Long: `vectorctl drives vector.Array from the command line: it shows the
growth policy, renders arrays and runs parallel workloads against
independent arrays.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log reallocations at debug level")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads --config, or returns the defaults when it is not set.
func loadConfig() (settings.Config, error) {
	if configPath == "" {
		return settings.Default(), nil
	}
	return settings.Load(configPath)
}

// newLogger builds the logger for cfg, lowered to debug by --verbose.
func newLogger(cfg settings.Logger) (*zap.Logger, error) {
	if verbose {
		cfg.LogLevel = "debug"
	}
	return logger.New(cfg)
}
