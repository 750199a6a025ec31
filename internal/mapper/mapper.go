package mapper

import "github.com/negspace-ai/negspace/internal/vocabulary"

// Mapper runs the fixed protocol State -> Map -> Classify -> Return over a
// block of text. It holds only the read-only vocabulary; every Map call
// works on its own local accumulators, so a single Mapper is safe for
// concurrent callers.
type Mapper struct {
	vocab *vocabulary.Vocabulary
}

// New returns a Mapper over the canonical vocabulary.
func New() *Mapper {
	return &Mapper{vocab: vocabulary.Default()}
}

// NewWithVocabulary returns a Mapper over a caller-supplied vocabulary.
// The vocabulary must not be mutated after this call.
func NewWithVocabulary(v *vocabulary.Vocabulary) *Mapper {
	return &Mapper{vocab: v}
}

// Map analyzes text and returns a freshly constructed MappingResult. It is
// total: every input, including the empty string, produces a result, and
// identical input always produces an identical result.
func (m *Mapper) Map(text string) MappingResult {
	statement := ExtractStatement(text)

	var absences []Absence
	for _, detect := range detectors() {
		absences = append(absences, detect(text, m.vocab)...)
	}

	for i := range absences {
		absences[i].Type = Classify(absences[i].Name, text)
	}

	compliant, violation := CheckKernel(statement, absences)

	return MappingResult{
		Statement:       statement,
		Absences:        absences,
		KernelCompliant: compliant,
		Violation:       violation,
	}
}
