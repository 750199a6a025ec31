package config

import "fmt"

// Validate checks the loaded configuration for contradictions before any
// command runs with it.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}

	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", cfg.Output.Format)
	}

	if cfg.Output.MinConfidence < 0 || cfg.Output.MinConfidence > 1 {
		return fmt.Errorf("output.min_confidence must be in [0,1], got %v", cfg.Output.MinConfidence)
	}

	for name, p := range cfg.Providers {
		switch p.Type {
		case "openai", "gemini":
		default:
			return fmt.Errorf("provider %q: unknown type %q", name, p.Type)
		}
	}

	if cfg.DefaultProvider != "" {
		if _, ok := cfg.Providers[cfg.DefaultProvider]; !ok {
			return fmt.Errorf("default_provider %q is not defined under providers", cfg.DefaultProvider)
		}
	}

	switch cfg.Telemetry.Protocol {
	case "", "grpc", "http":
	default:
		return fmt.Errorf("telemetry.protocol must be \"grpc\" or \"http\", got %q", cfg.Telemetry.Protocol)
	}

	return nil
}
