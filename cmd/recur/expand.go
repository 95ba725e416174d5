package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emersion/go-ical"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dategrid/librecur/recur"
	"github.com/dategrid/librecur/server"
)

func expandCmd() *cobra.Command {
	var specPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand a recurrence spec into its concrete dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readSpecFile(specPath)
			if err != nil {
				return err
			}

			cfg := loadConfig()
			engineCfg := recur.DisabledCacheConfig // one-shot run, nothing to memoize
			engineCfg.MaxDates = cfg.MaxDates
			engine := recur.NewEngineWithConfig(engineCfg)
			defer engine.Close()

			dates := engine.ExpandStrings(spec)
			logger.Info("expanded spec",
				zap.String("frequency", string(spec.Frequency)),
				zap.Int("dates", len(dates)))

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(dates)
			}
			for _, d := range dates {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "Path to a JSON recurrence spec")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as a JSON array")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func icalCmd() *cobra.Command {
	var specPath string
	var summary string

	cmd := &cobra.Command{
		Use:   "ical",
		Short: "Export a recurrence spec as an iCalendar event",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readSpecFile(specPath)
			if err != nil {
				return err
			}

			cal, err := recur.ExportICal(spec, summary)
			if err != nil {
				return fmt.Errorf("exporting calendar: %w", err)
			}
			return ical.NewEncoder(cmd.OutOrStdout()).Encode(cal)
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "Path to a JSON recurrence spec")
	cmd.Flags().StringVar(&summary, "summary", "Recurring event", "Event summary")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the recurrence engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			engineCfg := recur.DefaultEngineConfig
			engineCfg.MaxDates = cfg.MaxDates
			engine := recur.NewEngineWithConfig(engineCfg)
			defer engine.Close()

			srv, err := server.New(engine, cfg.BaseURI, nil)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle(cfg.BaseURI+"/", srv)

			logger.Info("listening",
				zap.String("addr", cfg.Listen),
				zap.String("base_uri", cfg.BaseURI))
			return http.ListenAndServe(cfg.Listen, mux)
		},
	}
	return cmd
}
