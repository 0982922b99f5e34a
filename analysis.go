package munge

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Analysis is one candidate decomposition of a wordform as returned by the
// morphological analyzer: prefix tags (kept with their trailing "+", e.g.
// "PV/e+"), the lemma, and suffix tags (kept with their leading "+", e.g.
// "+Sg"). Analyses are never modified after the analyzer returns them.
type Analysis struct {
	Prefix []string
	Lemma  string
	Suffix []string
}

// Smush flattens the analysis into the single-string form used by the FST
// toolchain, e.g. "PV/e+maskwa+N+A+Sg". It is used as a signature for
// tie-breaker lookup and as a cache/debug key, never for equality checks
// between analyses (see Equal).
func (a *Analysis) Smush() string {
	sb := strings.Builder{}
	sb.Grow(len(a.Lemma) + 8*(len(a.Prefix)+len(a.Suffix)))

	for _, tag := range a.Prefix {
		sb.WriteString(tag)
	}
	sb.WriteString(a.Lemma)
	for _, tag := range a.Suffix {
		sb.WriteString(tag)
	}

	return sb.String()
}

// Equal compares the full triple. Two analyses with the same prefix tags,
// lemma and suffix tags are the same analysis.
func (a *Analysis) Equal(other *Analysis) bool {
	if a.Lemma != other.Lemma || len(a.Prefix) != len(other.Prefix) || len(a.Suffix) != len(other.Suffix) {
		return false
	}

	for i, tag := range a.Prefix {
		if other.Prefix[i] != tag {
			return false
		}
	}
	for i, tag := range a.Suffix {
		if other.Suffix[i] != tag {
			return false
		}
	}

	return true
}

// TagCount is the total number of prefix and suffix tags. Fewer tags means a
// plainer reading of the wordform.
func (a *Analysis) TagCount() int {
	return len(a.Prefix) + len(a.Suffix)
}

// HasTag reports whether the suffix tag sequence contains the given tag
// (with its leading "+").
func (a *Analysis) HasTag(tag string) bool {
	for _, t := range a.Suffix {
		if t == tag {
			return true
		}
	}

	return false
}

func (a *Analysis) Copy() Analysis {
	a2 := *a
	a2.Prefix = append(a.Prefix[:0:0], a.Prefix...)
	a2.Suffix = append(a.Suffix[:0:0], a.Suffix...)

	return a2
}

// MarshalJSON renders the importjson tuple form: [[prefixTags], lemma, [suffixTags]].
func (a Analysis) MarshalJSON() ([]byte, error) {
	prefix := a.Prefix
	if prefix == nil {
		prefix = []string{}
	}
	suffix := a.Suffix
	if suffix == nil {
		suffix = []string{}
	}

	return json.Marshal([3]interface{}{prefix, a.Lemma, suffix})
}

func (a *Analysis) UnmarshalJSON(data []byte) error {
	var tuple [3]json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}

	if err := json.Unmarshal(tuple[0], &a.Prefix); err != nil {
		return fmt.Errorf("analysis prefix tags: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &a.Lemma); err != nil {
		return fmt.Errorf("analysis lemma: %w", err)
	}
	if err := json.Unmarshal(tuple[2], &a.Suffix); err != nil {
		return fmt.Errorf("analysis suffix tags: %w", err)
	}

	return nil
}

// Prefix tags without a "/" in them, i.e. anything not a preverb or prenoun tag.
var bareVerbalPrefixTags = map[string]bool{
	"IC":    true,
	"RdplW": true,
	"RdplS": true,
}

// ParseAnalysis splits an FST output string like "PV/e+maskwa+N+A+Sg" into
// its triple. Tokens before the lemma qualify as prefix tags when they carry
// a "/" (PV/..., PN/...) or name a reduplication or initial-change process.
func ParseAnalysis(smushed string) (Analysis, error) {
	tokens := strings.Split(smushed, "+")
	if len(tokens) == 0 || smushed == "" {
		return Analysis{}, fmt.Errorf("empty analysis string")
	}

	res := Analysis{}
	i := 0
	for ; i < len(tokens)-1; i++ {
		if !strings.Contains(tokens[i], "/") && !bareVerbalPrefixTags[tokens[i]] {
			break
		}

		res.Prefix = append(res.Prefix, tokens[i]+"+")
	}

	if tokens[i] == "" {
		return Analysis{}, fmt.Errorf("analysis %q has no lemma", smushed)
	}
	res.Lemma = tokens[i]

	for _, token := range tokens[i+1:] {
		if token == "" {
			return Analysis{}, fmt.Errorf("analysis %q has an empty suffix tag", smushed)
		}

		res.Suffix = append(res.Suffix, "+"+token)
	}

	return res, nil
}
