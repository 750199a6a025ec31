// negspace identifies what is conspicuously missing from a block of text,
// without proposing what should be added.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/negspace-ai/negspace/internal/config"
	"github.com/negspace-ai/negspace/internal/mapper"
	"github.com/negspace-ai/negspace/internal/render"
	"github.com/negspace-ai/negspace/internal/telemetry"
)

var (
	// Global flags
	configPath    string
	format        string
	verbose       bool
	minConfidence float64

	cfg    *config.Config
	logger *zap.Logger
	tel    *telemetry.Provider
)

var rootCmd = &cobra.Command{
	Use:   "negspace [text|@file]",
	Short: "Negative Space Mapper — identify what's missing, not what's wrong",
	Long: `negspace scans a block of text for domain signals and reports the
expected elements that never appear: missing error handling in a deployment
plan, a missing human override path in an agent description, a governance
document with no review cycle.

It names voids. It never proposes how to fill them.

Input is the first argument, or @filename to read from a file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !cmd.Flags().Changed("format") && cfg.Output.Format != "" {
			format = cfg.Output.Format
		}
		if !cmd.Flags().Changed("verbose") {
			verbose = cfg.Output.Verbose
		}
		if !cmd.Flags().Changed("min-confidence") {
			minConfidence = cfg.Output.MinConfidence
		}
		cfg.Output.Format = format
		cfg.Output.Verbose = verbose
		cfg.Output.MinConfidence = minConfidence
		if err := config.Validate(cfg); err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		tel, err = telemetry.NewProvider(cmd.Context(), telemetry.Config{
			Enabled:  cfg.Telemetry.Enabled,
			Endpoint: cfg.Telemetry.Endpoint,
			Protocol: cfg.Telemetry.Protocol,
			Service:  cfg.Telemetry.Service,
			Version:  version,
		})
		if err != nil {
			return fmt.Errorf("initialize telemetry: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if tel != nil {
			_ = tel.Shutdown(cmd.Context())
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runMap,
}

const version = "1.0.0"

// runMap is the default command: map the input text directly.
func runMap(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	eng := mapper.New()
	result := eng.Map(text)
	tel.RecordMapping(cmd.Context(), len(result.Absences), result.KernelCompliant)
	logger.Debug("mapped input",
		zap.Int("absences", len(result.Absences)),
		zap.Bool("kernel_compliant", result.KernelCompliant),
	)

	return render.Result(cmd.OutOrStdout(), result, renderOptions())
}

// readInput resolves the @file indirection. File errors belong to this
// layer; the engine itself accepts any string.
func readInput(arg string) (string, error) {
	if len(arg) > 0 && arg[0] == '@' {
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(data), nil
	}
	return arg, nil
}

func renderOptions() render.Options {
	return render.Options{
		Format:        format,
		Verbose:       verbose,
		MinConfidence: minConfidence,
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "negspace.yaml", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "output format (text|json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show absence type, context, and confidence")
	rootCmd.PersistentFlags().Float64VarP(&minConfidence, "min-confidence", "c", 0.0, "minimum confidence threshold for absences (0.0-1.0)")

	rootCmd.AddCommand(oracleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
