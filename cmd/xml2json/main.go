// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the xml2json CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/xml2json/internal/config"
	"github.com/pdiddy/xml2json/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from --log-level before any subcommand runs.
var logger = slog.New(slog.DiscardHandler)

// rootCmd is the base command for the xml2json CLI.
var rootCmd = &cobra.Command{
	Use:   "xml2json",
	Short: "Convert XML response documents to JSON",
	Long: `xml2json converts XML response documents into JSON. Repeated elements
become arrays, MatchDetails always becomes an array of Match wrappers, Values
blocks collapse into a single Value field, and the total of all Score elements
is injected as ResultBlock.MatchSummary.TotalMatchScore.

Behaviour is tuned through a key=value properties file (--config, or
./xml2json.properties when present) and XML2JSON_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", level, err)
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "properties file (default: ./"+config.DefaultFile+" when present)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().Bool("strict-config", false, "fail on malformed config values instead of using defaults")
	rootCmd.PersistentFlags().String("score-data-type", "", "override converter.score.data.type: integer or long")
	rootCmd.PersistentFlags().Bool("match-summary", true, "override feature.match.summary.enabled")
}

// loadSettings resolves Settings for cmd: defaults, properties file,
// environment, then any explicitly set flags.
func loadSettings(cmd *cobra.Command) (types.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	src, used, err := config.Open(path)
	if err != nil {
		return types.Settings{}, err
	}
	if used != "" {
		logger.Info("using config file", "path", used)
	}

	bindings := map[string]string{
		config.KeyScoreDataType:       "score-data-type",
		config.KeyMatchSummaryEnabled: "match-summary",
	}
	for key, flag := range bindings {
		if err := src.BindFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return types.Settings{}, fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	strict, _ := cmd.Flags().GetBool("strict-config")
	return config.Resolve(src, config.Options{Strict: strict, Logger: logger})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
