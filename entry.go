package munge

import (
	"context"
	"sort"
	"strings"
)

// Sense is one definition together with the source dictionaries that give
// it. Identical definition texts from different sources collapse into one
// sense listing all contributing sources.
type Sense struct {
	Definition string   `json:"definition"`
	Sources    []string `json:"sources"`
}

type LinguistInfo struct {
	POS      string `json:"pos"`
	Analysis string `json:"analysis,omitempty"`
	Stem     string `json:"stem,omitempty"`
}

// Entry is one importjson dictionary entry. Analysis and Paradigm are null
// unless disambiguation picked a single winner; OK is also true for entries
// exempt from analysis (preverbs and phrases).
type Entry struct {
	Head         string       `json:"head"`
	Slug         string       `json:"slug"`
	Senses       []Sense      `json:"senses"`
	LinguistInfo LinguistInfo `json:"linguistInfo"`
	Analysis     *Analysis    `json:"analysis"`
	Paradigm     *Paradigm    `json:"paradigm"`
	OK           bool         `json:"ok"`
}

func (e *Entry) Copy() Entry {
	e2 := *e
	e2.Senses = make([]Sense, 0, len(e.Senses))
	for _, sense := range e.Senses {
		sense.Sources = append(sense.Sources[:0:0], sense.Sources...)
		e2.Senses = append(e2.Senses, sense)
	}
	if e.Analysis != nil {
		analysis := e.Analysis.Copy()
		e2.Analysis = &analysis
	}
	if e.Paradigm != nil {
		paradigm := *e.Paradigm
		e2.Paradigm = &paradigm
	}

	return e2
}

// Slugify derives the URL slug from the head: runs of spaces and slashes
// become a single underscore.
func Slugify(head string) string {
	sb := strings.Builder{}
	sb.Grow(len(head))

	pending := false
	for _, r := range head {
		if r == ' ' || r == '/' {
			pending = sb.Len() > 0
			continue
		}

		if pending {
			sb.WriteByte('_')
			pending = false
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// BuildEntry aggregates one toolbox record into an entry and runs
// disambiguation on it. A nil entry with a nil error means the record was
// skipped (no head, or a bound morpheme); those are not part of the output.
func BuildEntry(ctx context.Context, record Record, disamb *Disambiguator, analyzer Analyzer) (*Entry, error) {
	head := record.Lemma
	if head == "" {
		return nil, nil
	}
	if strings.HasPrefix(head, "-") {
		return nil, nil
	}
	if strings.HasSuffix(head, "-") && record.POS != posPreverb {
		return nil, nil
	}

	entry := &Entry{
		Head:   head,
		Slug:   Slugify(head),
		Senses: aggregateSenses(record.Senses),
		LinguistInfo: LinguistInfo{
			POS:  record.POS,
			Stem: record.Stem,
		},
	}

	if Exempt(head, record.POS) {
		entry.OK = true
		return entry, nil
	}

	candidates, err := analyzer.Lookup(ctx, head)
	if err != nil {
		return nil, err
	}

	verdict, err := disamb.Disambiguate(head, record.POS, candidates)
	if err != nil {
		return nil, err
	}

	entry.OK = verdict.OK
	entry.Analysis = verdict.Analysis
	entry.Paradigm = verdict.Paradigm
	if verdict.Analysis != nil {
		entry.LinguistInfo.Analysis = verdict.Analysis.Smush()
	}

	return entry, nil
}

// aggregateSenses merges the per-source definition lists. Sources are
// visited in sorted key order so output does not depend on map iteration;
// distinct definitions keep first-seen order, and each definition collects
// its contributing source abbreviations in contribution order.
func aggregateSenses(defs map[string][]string) []Sense {
	sources := make([]string, 0, len(defs))
	for source := range defs {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	senses := make([]Sense, 0, 4)
	byDefinition := make(map[string]int, 4)

	for _, source := range sources {
		for _, definition := range defs[source] {
			if definition == "" {
				continue
			}

			i, ok := byDefinition[definition]
			if !ok {
				byDefinition[definition] = len(senses)
				senses = append(senses, Sense{Definition: definition, Sources: []string{source}})
				continue
			}

			if !containsString(senses[i].Sources, source) {
				senses[i].Sources = append(senses[i].Sources, source)
			}
		}
	}

	return senses
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
