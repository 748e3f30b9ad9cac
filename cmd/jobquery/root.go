package main

import (
	"os"
	"time"

	"jobquery/internal/config"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "jobquery",
	Short: "Boolean search queries for job posts",
	Long:  "jobquery turns a job title into boolean queries for searching hiring posts, enriched with related titles.",
	// Running the binary without a subcommand starts the HTTP server.
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (overrides LOG_LEVEL)")
}

func setupLogger(level string, dbg bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if dbg {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           lvl,
	})
}

// loadConfig loads the configuration and the logger configured by it.
func loadConfig() (config.Config, *log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, setupLogger("info", debug), err
	}
	return cfg, setupLogger(cfg.App.LogLevel, debug), nil
}
