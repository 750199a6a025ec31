package mapper

import (
	"reflect"
	"strings"
	"testing"
)

func TestMapReturnsResultForAnyInput(t *testing.T) {
	m := New()

	inputs := []string{
		"",
		"We are building an API with Python.",
		"¿Dónde está el manejo de errores? 日本語のテキスト。",
		strings.Repeat("lorem ipsum ", 10000),
	}
	for _, in := range inputs {
		result := m.Map(in)
		if result.Statement == "" && in != "" {
			t.Fatalf("empty statement for input %.40q", in)
		}
		for _, a := range result.Absences {
			if a.Confidence < 0 || a.Confidence > 1 {
				t.Fatalf("confidence out of range: %+v", a)
			}
			if a.Type != TypeDeliberate && a.Type != TypeOverlooked && a.Type != TypeStructural {
				t.Fatalf("unclassified absence: %+v", a)
			}
		}
	}
}

func TestMapEmptyInput(t *testing.T) {
	result := New().Map("")
	if result.Statement != "..." {
		t.Fatalf("statement = %q", result.Statement)
	}
	if len(result.Absences) != 0 {
		t.Fatalf("expected no absences for empty input, got %v", names(result.Absences))
	}
	if !result.KernelCompliant || result.Violation != "" {
		t.Fatalf("empty input must be compliant: %+v", result)
	}
}

func TestMapIsDeterministic(t *testing.T) {
	m := New()
	text := "The board will deploy an autonomous agent that processes user data."
	first := m.Map(text)
	second := m.Map(text)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different results:\n%+v\n%+v", first, second)
	}
}

func TestMapStateResetBetweenCalls(t *testing.T) {
	m := New()
	loaded := m.Map("Building an authentication system with OAuth2 for user data.")
	quiet := m.Map("A quiet walk in the park.")
	if len(quiet.Absences) != 0 {
		t.Fatalf("absences leaked across calls: %v", names(quiet.Absences))
	}
	if len(loaded.Absences) == 0 {
		t.Fatal("expected absences for the signal-heavy input")
	}
}

func TestMapDeploymentScenario(t *testing.T) {
	result := New().Map("State: We deployed a new API. No error handling was added.")

	if !strings.HasPrefix(result.Statement, "We deployed a new API") {
		t.Fatalf("statement = %q", result.Statement)
	}

	// "error" appears in the text, so the error_handling concern is not
	// conspicuous; the software-domain essential is satisfied verbatim too.
	if hasName(result.Absences, "error_handling") {
		t.Fatalf("error_handling must not be flagged: %v", names(result.Absences))
	}
	for _, want := range []string{"validation", "testing", "documentation", "security"} {
		if !hasName(result.Absences, want) {
			t.Fatalf("expected %s among %v", want, names(result.Absences))
		}
	}
	if !result.KernelCompliant {
		t.Fatalf("kernel violation: %s", result.Violation)
	}
}

func TestMapGovernanceScenario(t *testing.T) {
	result := New().Map("The board will implement a new compliance policy for the organization.")
	if got := countContext(result.Absences, "governance"); got != 4 {
		t.Fatalf("expected exactly 4 governance absences, got %d: %v", got, names(result.Absences))
	}
}

func TestMapGatingInvariants(t *testing.T) {
	result := New().Map("Gardening tips: water tomatoes before noon and plan the next sowing.")
	if n := countContext(result.Absences, "governance"); n != 0 {
		t.Fatalf("governance detector fired without signals: %v", names(result.Absences))
	}
	if n := countContext(result.Absences, "ai_safety"); n != 0 {
		t.Fatalf("safety detector fired without signals: %v", names(result.Absences))
	}
}

func TestMapDeliberateOverride(t *testing.T) {
	result := New().Map("Monitoring is out of scope. We deployed a new api for user data.")
	if len(result.Absences) == 0 {
		t.Fatal("expected absences")
	}
	for _, a := range result.Absences {
		if a.Type != TypeDeliberate {
			t.Fatalf("scoping phrase must reclassify everything, got %+v", a)
		}
	}
}

func TestMapKernelViolationStillReturnsAbsences(t *testing.T) {
	result := New().Map("We recommend caution. The system processes user data in production.")
	if result.KernelCompliant {
		t.Fatal("expected kernel violation")
	}
	if result.Violation == "" {
		t.Fatal("violation message must be set")
	}
	if len(result.Absences) == 0 {
		t.Fatal("absences must be returned even when non-compliant")
	}
}

func TestMapDetectorOrder(t *testing.T) {
	// Signals for technical, domain, stakeholder, governance and safety at
	// once; contexts must come out grouped in detector execution order.
	text := "The board will deploy an autonomous agent that processes user data."
	result := New().Map(text)

	rank := map[string]int{
		"technical": 0, "healthcare_domain": 1, "software_domain": 1,
		"business_domain": 1, "research_domain": 1, "nonprofit_domain": 1,
		"ai_safety_domain": 1, "stakeholder": 2, "temporal": 3,
		"governance": 4, "ai_safety": 5,
	}
	last := -1
	for _, a := range result.Absences {
		r, ok := rank[a.Context]
		if !ok {
			t.Fatalf("unknown context %q", a.Context)
		}
		if r < last {
			t.Fatalf("absences out of detector order: %v", result.Absences)
		}
		last = r
	}
}

// Cases ported from the ecosystem research that motivated the tool.

func TestMapDetectsMissingErrorHandling(t *testing.T) {
	result := New().Map("We are building a system that processes user data and deploys to production.")
	if !hasName(result.Absences, "error_handling") {
		t.Fatalf("expected error_handling among %v", names(result.Absences))
	}
}

func TestMapAgenticDocument(t *testing.T) {
	result := New().Map("The autonomous agent will access email, calendar, and files to complete tasks assigned by the user.")
	if !hasName(result.Absences, "human_override_path") && !hasName(result.Absences, "scope_boundary") {
		t.Fatalf("expected override or scope voids among %v", names(result.Absences))
	}
}

func TestMapNonprofitGovernanceDocument(t *testing.T) {
	result := New().Map("Our board meets monthly to review mission alignment and donor reports. Volunteers coordinate program delivery.")
	if len(result.Absences) == 0 {
		t.Fatal("expected absences for nonprofit governance text")
	}
	found := false
	for _, want := range []string{"succession", "financial_controls", "board_oversight"} {
		if hasName(result.Absences, want) {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a nonprofit essential among %v", names(result.Absences))
	}
}

func TestMapTemporalScenario(t *testing.T) {
	result := New().Map("The previous rollout went well and the planned follow-up is larger.")
	count := 0
	for _, a := range result.Absences {
		if a.Context == "temporal" {
			count++
			if a.Name != "current_state" || a.Confidence != 0.7 {
				t.Fatalf("bad temporal absence: %+v", a)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected a single temporal absence, got %d", count)
	}
}
