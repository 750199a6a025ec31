package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/negspace-ai/negspace/internal/mapper"
)

func sampleResult() mapper.MappingResult {
	return mapper.MappingResult{
		Statement: "We deployed a new API",
		Absences: []mapper.Absence{
			{Name: "rollback_plan", Type: mapper.TypeOverlooked, Context: "software_domain", Confidence: 0.6},
			{Name: "monitoring", Type: mapper.TypeOverlooked, Context: "software_domain", Confidence: 0.6},
			{Name: "user", Type: mapper.TypeOverlooked, Context: "stakeholder", Confidence: 0.5},
		},
		KernelCompliant: true,
	}
}

func TestFilter(t *testing.T) {
	res := sampleResult()

	all := Filter(res.Absences, 0)
	assert.Len(t, all, 3)

	high := Filter(res.Absences, 0.6)
	require.Len(t, high, 2)
	assert.Equal(t, "rollback_plan", high[0].Name)
	assert.Equal(t, "monitoring", high[1].Name)

	none := Filter(res.Absences, 0.9)
	assert.Empty(t, none)
}

func TestResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Result(&buf, sampleResult(), Options{Format: "json"}))

	var out struct {
		Statement       string           `json:"statement"`
		Absences        []mapper.Absence `json:"absences"`
		KernelCompliant bool             `json:"kernel_compliant"`
		Violation       *string          `json:"violation"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "We deployed a new API", out.Statement)
	assert.Len(t, out.Absences, 3)
	assert.True(t, out.KernelCompliant)
	// Compliant results serialize violation as an explicit null.
	assert.Nil(t, out.Violation)
	assert.Contains(t, buf.String(), `"violation": null`)

	assert.Equal(t, "overlooked", string(out.Absences[0].Type))
}

func TestResultJSONViolation(t *testing.T) {
	res := sampleResult()
	res.KernelCompliant = false
	res.Violation = "output contains solution language (recommend); voids must be named, not filled"

	var buf bytes.Buffer
	require.NoError(t, Result(&buf, res, Options{Format: "json"}))

	var out struct {
		KernelCompliant bool    `json:"kernel_compliant"`
		Violation       *string `json:"violation"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.False(t, out.KernelCompliant)
	require.NotNil(t, out.Violation)
	assert.Contains(t, *out.Violation, "recommend")
}

func TestResultJSONAppliesFilter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Result(&buf, sampleResult(), Options{Format: "json", MinConfidence: 0.6}))

	var out struct {
		Absences []mapper.Absence `json:"absences"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Len(t, out.Absences, 2)
}

func TestResultText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Result(&buf, sampleResult(), Options{Format: "text"}))

	out := buf.String()
	assert.Contains(t, out, "STATEMENT:")
	assert.Contains(t, out, "We deployed a new API")
	assert.Contains(t, out, "NAMED VOIDS:")
	assert.Contains(t, out, "rollback_plan")
	assert.Contains(t, out, "Kernel compliant")
	assert.NotContains(t, out, "confidence:")
}

func TestResultTextVerbose(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Result(&buf, sampleResult(), Options{Format: "text", Verbose: true}))

	out := buf.String()
	assert.Contains(t, out, "type: overlooked | context: software_domain | confidence: 60%")
}

func TestResultTextEmpty(t *testing.T) {
	res := mapper.MappingResult{Statement: "A quiet walk in the park", KernelCompliant: true}

	var buf bytes.Buffer
	require.NoError(t, Result(&buf, res, Options{Format: "text"}))
	assert.Contains(t, buf.String(), "(none detected)")
}

func TestResultTextViolation(t *testing.T) {
	res := sampleResult()
	res.KernelCompliant = false
	res.Violation = "output contains solution language (recommend); voids must be named, not filled"

	var buf bytes.Buffer
	require.NoError(t, Result(&buf, res, Options{Format: "text"}))
	assert.Contains(t, buf.String(), "KERNEL VIOLATION")
}

func TestOriginal(t *testing.T) {
	var buf bytes.Buffer
	Original(&buf, "model output here")

	out := buf.String()
	assert.Contains(t, out, "ORIGINAL ANALYSIS:")
	assert.Contains(t, out, "model output here")
}
