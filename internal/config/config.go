// Package config loads negspace configuration from YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds negspace configuration.
type Config struct {
	Output          OutputConfig              `yaml:"output"`
	Providers       map[string]ProviderConfig `yaml:"providers"`
	DefaultProvider string                    `yaml:"default_provider"`
	Telemetry       TelemetryConfig           `yaml:"telemetry"`
}

// OutputConfig sets rendering defaults; CLI flags override these.
type OutputConfig struct {
	Format        string  `yaml:"format"`         // text | json
	Verbose       bool    `yaml:"verbose"`        // show type/context/confidence
	MinConfidence float64 `yaml:"min_confidence"` // drop absences below this
}

type ProviderConfig struct {
	Type      string `yaml:"type"`        // openai | gemini
	BaseURL   string `yaml:"base_url"`    // e.g. "https://api.openai.com/v1"
	APIKeyEnv string `yaml:"api_key_env"` // e.g. "OPENAI_API_KEY"
	Model     string `yaml:"model"`       // e.g. "gpt-4.1-mini"
}

type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Protocol string `yaml:"protocol"` // grpc | http
	Service  string `yaml:"service"`
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:        "text",
			MinConfidence: 0,
		},
		Providers: map[string]ProviderConfig{},
		Telemetry: TelemetryConfig{
			Protocol: "http",
			Service:  "negspace",
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}

	// If no default provider is set but there's exactly one provider,
	// use that as default.
	if cfg.DefaultProvider == "" && len(cfg.Providers) == 1 {
		for name := range cfg.Providers {
			cfg.DefaultProvider = name
			break
		}
	}

	if cfg.Telemetry.Protocol == "" {
		cfg.Telemetry.Protocol = "http"
	}
	if cfg.Telemetry.Service == "" {
		cfg.Telemetry.Service = "negspace"
	}
}
