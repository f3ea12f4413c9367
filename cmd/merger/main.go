package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"transaction-merger/internal/config"
	"transaction-merger/internal/gateway"
	"transaction-merger/internal/logger"
	"transaction-merger/internal/presenter"
	"transaction-merger/internal/usecase"
)

const defaultConfigFile = "merger.yaml"

// Version is set at build time using ldflags.
var Version = "dev"

type options struct {
	configFile string
	sources    []string
	logFile    string
	logLevel   string
	currency   string
	locale     string
	jsonOutput bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "merger",
		Short:         "Merge transaction files and report count, total and max value",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configFile, "config", defaultConfigFile, "Path to the YAML configuration file")
	flags.StringArrayVar(&opts.sources, "source", nil, "Transaction file to import, repeatable (overrides config sources)")
	flags.StringVar(&opts.logFile, "log-file", "", "Append diagnostics to this file (overrides config)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.StringVar(&opts.currency, "currency", "", "ISO 4217 currency code for the report (overrides config)")
	flags.StringVar(&opts.locale, "locale", "", "BCP 47 locale for the report (overrides config)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print the full report as JSON to stdout")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Display the application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "merger %s (%s)\n", Version, runtime.Version())
		},
	})

	return rootCmd
}

func run(cmd *cobra.Command, opts *options) error {
	// Only an explicitly chosen config file must exist.
	cfg, err := config.Load(opts.configFile, !cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	applyOverrides(cmd, cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	formatter, err := presenter.NewCurrencyFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	sink, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		RunID:   runID,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	defer sink.Close()

	// --- Dependency Injection (Wiring the application) ---
	opener := gateway.NewFileSourceOpener()
	mergeUseCase := usecase.NewMergeUseCase(opener, sink)

	report := mergeUseCase.Merge(context.Background(), runID, cfg.Sources)

	for _, line := range formatter.SummaryLines(report.Summary) {
		sink.Info(line)
	}

	if opts.jsonOutput {
		// the run has completed; an encoding failure is only reported
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			sink.Error("failed to generate JSON report", err)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
	}
	return nil
}

func applyOverrides(cmd *cobra.Command, cfg *config.Config, opts *options) {
	flags := cmd.Flags()
	if len(opts.sources) > 0 {
		cfg.Sources = opts.sources
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("currency") {
		cfg.Currency = opts.currency
	}
	if flags.Changed("locale") {
		cfg.Locale = opts.locale
	}
}
