// Package vocabulary holds the static signal tables the absence detectors
// scan against: trigger patterns, domain signals, expected companion terms.
// All tables are built once by Default and never mutated afterwards.
package vocabulary

import (
	"regexp"
	"strings"
)

// TechnicalConcern pairs a trigger pattern with the related terms that make
// the concern's absence conspicuous rather than merely irrelevant.
type TechnicalConcern struct {
	Name    string
	Trigger *regexp.Regexp
	Related []string
}

// Vocabulary is the full read-only signal vocabulary.
type Vocabulary struct {
	// Technical concerns, in fixed reporting order.
	Technical []TechnicalConcern

	// Domain activation signals and the essentials expected once a domain
	// is active. Domains listed in fixed reporting order.
	Domains          []string
	DomainSignals    map[string]*regexp.Regexp
	DomainEssentials map[string][]string

	// Stakeholder roles, in fixed reporting order.
	Stakeholders []string

	PastIndicators   *regexp.Regexp
	FutureIndicators *regexp.Regexp

	GovernanceSignals    *regexp.Regexp
	GovernanceEssentials []Essential

	AISignals        *regexp.Regexp
	SafetyEssentials []Essential
}

// Essential is a named expected element with the phrase variants that count
// as it being present.
type Essential struct {
	Name     string
	Variants []string
}

// signalPattern compiles a word-boundary alternation over the given terms.
// Boundaries keep short signals like "ai" from firing inside unrelated words.
func signalPattern(terms ...string) *regexp.Regexp {
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Default builds the canonical vocabulary. Call once at startup and share
// the result; the tables are never written after construction.
func Default() *Vocabulary {
	return &Vocabulary{
		Technical: []TechnicalConcern{
			{
				Name:    "error_handling",
				Trigger: regexp.MustCompile(`(?i)error|exception|fail`),
				Related: []string{"api", "database", "network", "file", "request", "process", "system", "integration"},
			},
			{
				Name:    "validation",
				Trigger: regexp.MustCompile(`(?i)validat|verif|sanitiz`),
				Related: []string{"input", "data", "user", "form", "api", "function"},
			},
			{
				Name:    "testing",
				Trigger: regexp.MustCompile(`(?i)test|coverage|assertion`),
				Related: []string{"function", "code", "system", "operation", "deploy", "production"},
			},
			{
				Name:    "documentation",
				Trigger: regexp.MustCompile(`(?i)document|readme|changelog|comment`),
				Related: []string{"api", "function", "module", "interface", "endpoint", "code"},
			},
			{
				Name:    "security",
				Trigger: regexp.MustCompile(`(?i)secur|auth|encrypt|permission`),
				Related: []string{"user", "data", "api", "network", "password", "production"},
			},
		},

		Domains: []string{"healthcare", "software", "business", "research", "nonprofit", "ai_safety"},
		DomainSignals: map[string]*regexp.Regexp{
			"healthcare": signalPattern("patient", "patients", "medical", "doctor", "hospital", "clinical", "healthcare"),
			"software":   signalPattern("api", "code", "deploy", "deploys", "deployed", "software", "database", "server"),
			"business":   signalPattern("revenue", "customer", "customers", "market", "sales", "profit", "strategy"),
			"research":   signalPattern("study", "hypothesis", "experiment", "methodology", "findings", "peer-reviewed"),
			"nonprofit":  signalPattern("donor", "donors", "volunteer", "volunteers", "mission", "grant", "community", "board"),
			"ai_safety":  signalPattern("ai", "agent", "agents", "autonomous", "autonomously", "llm", "model", "machine learning"),
		},
		DomainEssentials: map[string][]string{
			"healthcare": {"patient_consent", "privacy_compliance", "emergency_protocol"},
			"software":   {"error_handling", "rollback_plan", "monitoring"},
			"business":   {"exit_strategy", "cash_flow", "competitor_analysis"},
			"research":   {"control_group", "peer_review", "replication"},
			"nonprofit":  {"succession", "financial_controls", "board_oversight"},
			"ai_safety":  {"human_override", "failure_disclosure", "capability_limits"},
		},

		Stakeholders: []string{"user", "developer", "manager", "customer", "regulator", "community"},

		PastIndicators:   signalPattern("was", "were", "had", "previous", "previously", "before", "historically", "last year", "last quarter", "used to"),
		FutureIndicators: signalPattern("will", "going to", "planned", "planning", "upcoming", "roadmap", "next year", "next quarter", "future", "soon"),

		GovernanceSignals: signalPattern("board", "governance", "policy", "policies", "committee", "oversight", "compliance", "bylaws"),
		GovernanceEssentials: []Essential{
			{Name: "accountability_owner", Variants: []string{"accountable", "responsible for", "owner", "in charge"}},
			{Name: "failure_protocol", Variants: []string{"if this fails", "failure protocol", "contingency", "fallback"}},
			{Name: "review_cycle", Variants: []string{"review cycle", "quarterly review", "annual review", "periodic review"}},
			{Name: "exit_condition", Variants: []string{"exit condition", "sunset", "wind down", "termination criteria"}},
		},

		AISignals: signalPattern("ai", "agent", "agents", "autonomous", "autonomously", "llm", "model", "machine learning", "automated"),
		SafetyEssentials: []Essential{
			{Name: "human_override_path", Variants: []string{"override", "escalate", "approve", "human approval", "manual intervention"}},
			{Name: "scope_boundary", Variants: []string{"scope boundary", "will not", "limited to", "out of bounds", "cannot"}},
			{Name: "honest_failure_mode", Variants: []string{"stop", "halt", "refuse", "admit failure", "report failure"}},
			{Name: "session_termination", Variants: []string{"terminate", "end session", "time limit", "shut down", "timeout"}},
		},
	}
}

// ContainsTerm reports whether term (underscores read as spaces) occurs in
// the lowercased text. This is the loose substring check the essential and
// stakeholder tables rely on.
func ContainsTerm(lowerText, term string) bool {
	return strings.Contains(lowerText, strings.ReplaceAll(strings.ToLower(term), "_", " "))
}

// ContainsAnyVariant reports whether any phrase variant occurs in the
// lowercased text.
func ContainsAnyVariant(lowerText string, variants []string) bool {
	for _, v := range variants {
		if strings.Contains(lowerText, strings.ToLower(v)) {
			return true
		}
	}
	return false
}
