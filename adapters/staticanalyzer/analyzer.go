// Package staticanalyzer is an in-memory stand-in for the FST, used in
// tests and for generating fixtures without a transducer on disk.
package staticanalyzer

import (
	"context"
	"fmt"

	"github.com/altlab/munge"
)

type staticAnalyzer struct {
	analyses map[string][]munge.Analysis
}

func New(analyses map[string][]munge.Analysis) munge.Analyzer {
	return &staticAnalyzer{analyses: analyses}
}

// FromStrings builds the analyzer from smushed analysis strings, the same
// form the FST emits.
func FromStrings(analyses map[string][]string) (munge.Analyzer, error) {
	parsed := make(map[string][]munge.Analysis, len(analyses))
	for lemma, list := range analyses {
		for _, smushed := range list {
			analysis, err := munge.ParseAnalysis(smushed)
			if err != nil {
				return nil, fmt.Errorf("analyses for %q: %w", lemma, err)
			}

			parsed[lemma] = append(parsed[lemma], analysis)
		}
	}

	return New(parsed), nil
}

func (a *staticAnalyzer) Lookup(_ context.Context, lemma string) ([]munge.Analysis, error) {
	res := make([]munge.Analysis, 0, len(a.analyses[lemma]))
	for _, analysis := range a.analyses[lemma] {
		res = append(res, analysis.Copy())
	}

	return res, nil
}
