package mapper

import (
	"fmt"
	"regexp"
	"strings"
)

// solutionPatterns are the phrasings the engine must never emit. Naming
// voids is the whole job; proposing how to fill them is the one behavior
// the kernel forbids.
var solutionPatterns = []struct {
	label   string
	pattern *regexp.Regexp
}{
	{"should add/include/implement", regexp.MustCompile(`(?i)should\s+(add|include|implement)`)},
	{"could use/try/do", regexp.MustCompile(`(?i)could\s+(use|try|do)`)},
	{"recommend", regexp.MustCompile(`(?i)recommend`)},
	{"suggest", regexp.MustCompile(`(?i)suggest`)},
	{"fix by", regexp.MustCompile(`(?i)fix\s+by`)},
	{"solve by", regexp.MustCompile(`(?i)solve\s+by`)},
}

// CheckKernel scans the assembled output (statement plus absence names) for
// solution language. On a hit it returns false and a violation message
// naming the offending pattern; the absences themselves are still returned
// to the caller, flagged rather than discarded.
func CheckKernel(statement string, absences []Absence) (bool, string) {
	names := make([]string, len(absences))
	for i, a := range absences {
		names[i] = a.Name
	}
	check := statement + " " + strings.Join(names, " ")

	for _, sp := range solutionPatterns {
		if sp.pattern.MatchString(check) {
			return false, fmt.Sprintf("output contains solution language (%s); voids must be named, not filled", sp.label)
		}
	}
	return true, ""
}
