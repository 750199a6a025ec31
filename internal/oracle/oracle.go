// Package oracle sends a prompt to an upstream model and maps the returned
// text for negative space, exactly as if the model's answer had been typed
// in directly. The provider call is the only network hop in the system.
package oracle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/negspace-ai/negspace/internal/inference"
	"github.com/negspace-ai/negspace/internal/mapper"
	"github.com/negspace-ai/negspace/internal/provider"
	"github.com/negspace-ai/negspace/internal/redact"
	"github.com/negspace-ai/negspace/internal/telemetry"
)

// Analysis is the combined result of one oracle run: the model's own text
// plus the voids the engine found in it.
type Analysis struct {
	OriginalAnalysis string           `json:"original_analysis"`
	NamedVoids       []string         `json:"named_voids"`
	Absences         []mapper.Absence `json:"absences"`
	KernelCompliant  bool             `json:"kernel_compliant"`
	Violation        string           `json:"violation,omitempty"`
	Provider         string           `json:"provider"`
	Model            string           `json:"model"`
	Usage            inference.Usage  `json:"usage"`
}

// Oracle pairs a model provider with the mapping engine.
type Oracle struct {
	providerName string
	model        string
	prov         provider.Provider
	eng          *mapper.Mapper
	tel          *telemetry.Provider
	log          *zap.Logger
}

// New builds an Oracle. logger and tel may not be nil; pass no-op instances
// when the caller has nothing better.
func New(providerName, model string, prov provider.Provider, eng *mapper.Mapper, tel *telemetry.Provider, logger *zap.Logger) *Oracle {
	return &Oracle{
		providerName: providerName,
		model:        model,
		prov:         prov,
		eng:          eng,
		tel:          tel,
		log:          logger,
	}
}

// Analyze sends prompt to the provider and maps the response text. The
// engine never errors; every error path here belongs to the provider call.
func (o *Oracle) Analyze(ctx context.Context, prompt string) (*Analysis, error) {
	ctx, span := o.tel.Tracer().Start(ctx, "oracle.analyze")
	defer span.End()

	req := &inference.Request{
		Model: o.model,
		Messages: []inference.Message{
			{Role: "user", Content: prompt},
		},
		Timings: &inference.Timings{},
	}

	o.log.Debug("oracle: sending prompt",
		zap.String("provider", o.providerName),
		zap.String("model", o.model),
		zap.String("prompt_preview", redact.Preview(prompt, 200)),
	)

	start := time.Now()
	resp, err := o.prov.ChatCompletion(ctx, req)
	req.Timings.Provider = time.Since(start)
	o.tel.RecordProviderLatency(ctx, o.providerName, float64(req.Timings.Provider)/float64(time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", o.providerName, err)
	}

	start = time.Now()
	result := o.eng.Map(resp.Message.Content)
	req.Timings.Mapping = time.Since(start)
	o.tel.RecordMapping(ctx, len(result.Absences), result.KernelCompliant)

	names := make([]string, len(result.Absences))
	for i, a := range result.Absences {
		names[i] = a.Name
	}

	if !result.KernelCompliant {
		o.log.Warn("oracle: kernel violation in mapped output",
			zap.String("violation", result.Violation))
	}

	return &Analysis{
		OriginalAnalysis: resp.Message.Content,
		NamedVoids:       names,
		Absences:         result.Absences,
		KernelCompliant:  result.KernelCompliant,
		Violation:        result.Violation,
		Provider:         o.providerName,
		Model:            o.model,
		Usage:            resp.Usage,
	}, nil
}
