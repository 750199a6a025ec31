package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/negspace-ai/negspace/internal/config"
	"github.com/negspace-ai/negspace/internal/mapper"
	"github.com/negspace-ai/negspace/internal/oracle"
	"github.com/negspace-ai/negspace/internal/provider"
	"github.com/negspace-ai/negspace/internal/render"
)

var (
	oracleProvider string
	oracleModel    string
)

var oracleCmd = &cobra.Command{
	Use:   "oracle [prompt|@file]",
	Short: "Ask a model, then map its answer for negative space",
	Long: `oracle sends the prompt to a configured text-generation provider and
feeds the returned text into the mapping engine exactly as if it were direct
user input. The result pairs the model's own analysis with the voids found
in it.`,
	Args: cobra.ExactArgs(1),
	RunE: runOracle,
}

func runOracle(cmd *cobra.Command, args []string) error {
	prompt, err := readInput(args[0])
	if err != nil {
		return err
	}

	name := oracleProvider
	if name == "" {
		name = cfg.DefaultProvider
	}
	if name == "" {
		return fmt.Errorf("no provider configured: set default_provider in %s or pass --provider", configPath)
	}
	pc, ok := cfg.Providers[name]
	if !ok {
		return fmt.Errorf("provider %q is not defined under providers", name)
	}

	model := oracleModel
	if model == "" {
		model = pc.Model
	}

	prov, err := buildProvider(cmd, name, pc)
	if err != nil {
		return err
	}

	o := oracle.New(name, model, prov, mapper.New(), tel, logger)
	analysis, err := o.Analyze(cmd.Context(), prompt)
	if err != nil {
		return err
	}

	opts := renderOptions()
	if opts.Format == "json" {
		filtered := render.Filter(analysis.Absences, opts.MinConfidence)
		analysis.Absences = filtered
		analysis.NamedVoids = voidNames(filtered)
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	render.Original(cmd.OutOrStdout(), analysis.OriginalAnalysis)
	result := mapper.MappingResult{
		Statement:       mapper.ExtractStatement(analysis.OriginalAnalysis),
		Absences:        analysis.Absences,
		KernelCompliant: analysis.KernelCompliant,
		Violation:       analysis.Violation,
	}
	return render.Result(cmd.OutOrStdout(), result, opts)
}

func buildProvider(cmd *cobra.Command, name string, pc config.ProviderConfig) (provider.Provider, error) {
	apiKey := os.Getenv(pc.APIKeyEnv)
	switch pc.Type {
	case "openai":
		return provider.NewOpenAI(pc.BaseURL, apiKey, 60*time.Second, 0), nil
	case "gemini":
		return provider.NewGemini(cmd.Context(), apiKey, pc.Model)
	default:
		return nil, fmt.Errorf("provider %q: unknown type %q", name, pc.Type)
	}
}

func voidNames(absences []mapper.Absence) []string {
	names := make([]string, len(absences))
	for i, a := range absences {
		names[i] = a.Name
	}
	return names
}

func init() {
	oracleCmd.Flags().StringVar(&oracleProvider, "provider", "", "provider name from config (default: default_provider)")
	oracleCmd.Flags().StringVar(&oracleModel, "model", "", "model override for this call")
}
