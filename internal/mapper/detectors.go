package mapper

import (
	"strings"

	"github.com/negspace-ai/negspace/internal/vocabulary"
)

// Detector scans raw text against the vocabulary and emits unclassified
// absence candidates. Every candidate starts as TypeOverlooked; the
// classifier overwrites the type afterwards.
type Detector func(text string, v *vocabulary.Vocabulary) []Absence

// Fixed per-detector confidences. Assigned once at emission, never
// recomputed.
const (
	confidenceTechnical   = 0.7
	confidenceDomain      = 0.6
	confidenceStakeholder = 0.5
	confidenceTemporal    = 0.7
	confidenceGovernance  = 0.65
	confidenceSafety      = 0.75
)

// detectors lists all six detectors in execution order. The order is part
// of the output contract: absences appear grouped by detector.
func detectors() []Detector {
	return []Detector{
		detectTechnical,
		detectDomain,
		detectStakeholder,
		detectTemporal,
		detectGovernance,
		detectSafety,
	}
}

// detectTechnical flags each technical concern whose trigger never appears
// while at least one related term does. The related-term check is what makes
// the absence conspicuous: a recipe that never says "error" is not missing
// error handling, but an API deployment that never says it is.
func detectTechnical(text string, v *vocabulary.Vocabulary) []Absence {
	lower := strings.ToLower(text)
	var out []Absence
	for _, c := range v.Technical {
		if c.Trigger.MatchString(text) {
			continue
		}
		for _, related := range c.Related {
			if strings.Contains(lower, related) {
				out = append(out, Absence{
					Name:       c.Name,
					Type:       TypeOverlooked,
					Context:    "technical",
					Confidence: confidenceTechnical,
				})
				break
			}
		}
	}
	return out
}

// detectDomain activates every domain whose signal terms appear, then flags
// each of that domain's essentials not found in the text.
func detectDomain(text string, v *vocabulary.Vocabulary) []Absence {
	lower := strings.ToLower(text)
	var out []Absence
	for _, domain := range v.Domains {
		if !v.DomainSignals[domain].MatchString(text) {
			continue
		}
		for _, essential := range v.DomainEssentials[domain] {
			if vocabulary.ContainsTerm(lower, essential) {
				continue
			}
			out = append(out, Absence{
				Name:       essential,
				Type:       TypeOverlooked,
				Context:    domain + "_domain",
				Confidence: confidenceDomain,
			})
		}
	}
	return out
}

// detectStakeholder emits one absence per unmentioned role, but only once
// the text mentions at least one role. A document that never engages with
// stakeholders at all is not penalized for it.
func detectStakeholder(text string, v *vocabulary.Vocabulary) []Absence {
	lower := strings.ToLower(text)
	mentioned := make(map[string]bool, len(v.Stakeholders))
	any := false
	for _, role := range v.Stakeholders {
		if vocabulary.ContainsTerm(lower, role) {
			mentioned[role] = true
			any = true
		}
	}
	if !any {
		return nil
	}
	var out []Absence
	for _, role := range v.Stakeholders {
		if mentioned[role] {
			continue
		}
		out = append(out, Absence{
			Name:       role + "_perspective",
			Type:       TypeOverlooked,
			Context:    "stakeholder",
			Confidence: confidenceStakeholder,
		})
	}
	return out
}

// detectTemporal flags the missing present: text that covers both past and
// future but never anchors the current state.
func detectTemporal(text string, v *vocabulary.Vocabulary) []Absence {
	lower := strings.ToLower(text)
	if !v.PastIndicators.MatchString(text) || !v.FutureIndicators.MatchString(text) {
		return nil
	}
	if strings.Contains(lower, "current") || strings.Contains(lower, "present") {
		return nil
	}
	return []Absence{{
		Name:       "current_state",
		Type:       TypeOverlooked,
		Context:    "temporal",
		Confidence: confidenceTemporal,
	}}
}

// detectGovernance is gated on governance signals: no board/policy/oversight
// language, no governance absences.
func detectGovernance(text string, v *vocabulary.Vocabulary) []Absence {
	if !v.GovernanceSignals.MatchString(text) {
		return nil
	}
	return missingEssentials(text, v.GovernanceEssentials, "governance", confidenceGovernance)
}

// detectSafety is gated on AI signals the same way.
func detectSafety(text string, v *vocabulary.Vocabulary) []Absence {
	if !v.AISignals.MatchString(text) {
		return nil
	}
	return missingEssentials(text, v.SafetyEssentials, "ai_safety", confidenceSafety)
}

func missingEssentials(text string, essentials []vocabulary.Essential, context string, confidence float64) []Absence {
	lower := strings.ToLower(text)
	var out []Absence
	for _, e := range essentials {
		if vocabulary.ContainsAnyVariant(lower, e.Variants) {
			continue
		}
		out = append(out, Absence{
			Name:       e.Name,
			Type:       TypeOverlooked,
			Context:    context,
			Confidence: confidence,
		})
	}
	return out
}
