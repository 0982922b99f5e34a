package munge

import "strings"

// Paradigm names an inflectional pattern class that the dictionary frontend
// can render a layout for.
type Paradigm string

const (
	ParadigmNA  Paradigm = "NA"
	ParadigmNI  Paradigm = "NI"
	ParadigmNDA Paradigm = "NDA"
	ParadigmNDI Paradigm = "NDI"
	ParadigmVTA Paradigm = "VTA"
	ParadigmVTI Paradigm = "VTI"
	ParadigmVAI Paradigm = "VAI"
	ParadigmVII Paradigm = "VII"
	// ParadigmPersonalPronouns covers the closed niya/kiya/wiya set.
	ParadigmPersonalPronouns Paradigm = "personal-pronouns"
	// ParadigmDemonstrativePronouns covers the closed awa/ôma/... set.
	ParadigmDemonstrativePronouns Paradigm = "demonstrative-pronouns"
)

func (p Paradigm) Valid() bool {
	switch p {
	case ParadigmNA, ParadigmNI, ParadigmNDA, ParadigmNDI,
		ParadigmVTA, ParadigmVTI, ParadigmVAI, ParadigmVII,
		ParadigmPersonalPronouns, ParadigmDemonstrativePronouns:
		return true
	default:
		return false
	}
}

// wordClassRule pins a word class to a paradigm, guarded by the suffix tags
// an analysis must carry to count as a member of that class.
type wordClassRule struct {
	Paradigm     Paradigm
	RequiredTags []string
}

var wordClassTable = map[string]wordClassRule{
	"NA":  {ParadigmNA, []string{"+N", "+A"}},
	"NI":  {ParadigmNI, []string{"+N", "+I"}},
	"NDA": {ParadigmNDA, []string{"+N", "+A", "+D"}},
	"NDI": {ParadigmNDI, []string{"+N", "+I", "+D"}},
	"VTA": {ParadigmVTA, []string{"+V", "+TA"}},
	"VTI": {ParadigmVTI, []string{"+V", "+TI"}},
	"VAI": {ParadigmVAI, []string{"+V", "+AI"}},
	"VII": {ParadigmVII, []string{"+V", "+II"}},
}

// SpecificWordClass strips the trailing variant suffix from a part-of-speech
// code: "NA-1" and "NA-4w" both classify as "NA".
func SpecificWordClass(pos string) string {
	if i := strings.IndexByte(pos, '-'); i >= 0 {
		return pos[:i]
	}

	return pos
}

// wordClassParadigm resolves a part-of-speech against the word-class table.
// The analysis must carry every required tag for the row to apply.
func wordClassParadigm(pos string, analysis *Analysis) (Paradigm, bool) {
	rule, ok := wordClassTable[SpecificWordClass(pos)]
	if !ok {
		return "", false
	}

	for _, tag := range rule.RequiredTags {
		if !analysis.HasTag(tag) {
			return "", false
		}
	}

	return rule.Paradigm, true
}
