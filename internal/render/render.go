// Package render turns a MappingResult into terminal text or JSON. The
// confidence filter lives here, on the presentation side; the engine always
// reports everything it found.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/negspace-ai/negspace/internal/mapper"
)

var (
	headingStyle   = lipgloss.NewStyle().Bold(true)
	voidStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	detailStyle    = lipgloss.NewStyle().Faint(true)
	violationStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Options control rendering.
type Options struct {
	Format        string // text | json
	Verbose       bool
	MinConfidence float64
}

// Filter returns the absences at or above the confidence threshold,
// preserving order.
func Filter(absences []mapper.Absence, minConfidence float64) []mapper.Absence {
	out := make([]mapper.Absence, 0, len(absences))
	for _, a := range absences {
		if a.Confidence >= minConfidence {
			out = append(out, a)
		}
	}
	return out
}

// Result writes the mapping result to w in the configured format.
func Result(w io.Writer, res mapper.MappingResult, opts Options) error {
	filtered := Filter(res.Absences, opts.MinConfidence)
	if opts.Format == "json" {
		return writeJSON(w, res, filtered)
	}
	return writeText(w, res, filtered, opts.Verbose)
}

// jsonResult mirrors the wire shape of the original tool: violation is null
// when compliant.
type jsonResult struct {
	Statement       string           `json:"statement"`
	Absences        []mapper.Absence `json:"absences"`
	KernelCompliant bool             `json:"kernel_compliant"`
	Violation       *string          `json:"violation"`
}

func writeJSON(w io.Writer, res mapper.MappingResult, filtered []mapper.Absence) error {
	out := jsonResult{
		Statement:       res.Statement,
		Absences:        filtered,
		KernelCompliant: res.KernelCompliant,
	}
	if !res.KernelCompliant {
		out.Violation = &res.Violation
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeText(w io.Writer, res mapper.MappingResult, filtered []mapper.Absence, verbose bool) error {
	fmt.Fprintf(w, "\n%s\n%s\n\n", headingStyle.Render("STATEMENT:"), res.Statement)
	fmt.Fprintln(w, headingStyle.Render("NAMED VOIDS:"))

	if len(filtered) == 0 {
		fmt.Fprintln(w, "  (none detected)")
	}
	for _, a := range filtered {
		fmt.Fprintf(w, "  • %s\n", voidStyle.Render(a.Name))
		if verbose {
			detail := fmt.Sprintf("type: %s | context: %s | confidence: %.0f%%", a.Type, a.Context, a.Confidence*100)
			fmt.Fprintf(w, "    %s\n", detailStyle.Render(detail))
		}
	}

	fmt.Fprintln(w)
	if res.KernelCompliant {
		fmt.Fprintln(w, okStyle.Render("✓ Kernel compliant"))
	} else {
		fmt.Fprintln(w, violationStyle.Render("⚠ KERNEL VIOLATION: "+res.Violation))
	}
	return nil
}

// Original writes the model's own text ahead of the mapped voids, for the
// text-mode oracle output.
func Original(w io.Writer, text string) {
	fmt.Fprintf(w, "\n%s\n%s\n", headingStyle.Render("ORIGINAL ANALYSIS:"), text)
}
