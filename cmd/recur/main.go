package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dategrid/librecur/recur"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recur",
		Short: "Expand recurring calendar patterns into concrete dates",
		Long:  "Expand declarative recurrence specs (daily/weekly/monthly/yearly) into date sequences, export them as iCalendar, or serve the engine over HTTP.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(expandCmd(), icalCmd(), serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initLogger() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
}

// cliConfig holds the settings shared by the subcommands.
type cliConfig struct {
	Listen   string
	BaseURI  string
	MaxDates int
}

// loadConfig reads settings from the optional config file and RECUR_*
// environment variables, falling back to defaults.
func loadConfig() cliConfig {
	v := viper.New()
	v.SetDefault("listen", ":8080")
	v.SetDefault("base_uri", "/recurrence")
	v.SetDefault("max_dates", recur.DefaultMaxDates)
	v.SetEnvPrefix("RECUR")
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			logger.Warn("failed to read config, using defaults",
				zap.String("path", configPath), zap.Error(err))
		}
	}

	return cliConfig{
		Listen:   v.GetString("listen"),
		BaseURI:  v.GetString("base_uri"),
		MaxDates: v.GetInt("max_dates"),
	}
}

// readSpecFile loads a JSON recurrence spec from disk.
func readSpecFile(path string) (recur.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return recur.Spec{}, fmt.Errorf("reading spec file: %w", err)
	}
	return recur.ParseSpecJSON(data)
}
