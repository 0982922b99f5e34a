package munge

import (
	"fmt"
	"strings"
)

// Part-of-speech codes from the toolbox export.
const (
	posParticlePrefix   = "IPC"
	posPreverb          = "IPV"
	posPronounAnimate   = "PrA"
	posPronounInanimate = "PrI"
)

// Analyzer tags involved in part-of-speech gating.
const (
	tagParticle      = "+Ipc"
	tagPronoun       = "+Pron"
	tagPersonal      = "+Pers"
	tagDemonstrative = "+Dem"
)

// Verdict is the outcome of disambiguating one headword. OK means either a
// single analysis survived or the entry is exempt from analysis altogether.
// MatchCount is only meaningful when OK is false.
type Verdict struct {
	OK         bool
	Analysis   *Analysis
	Paradigm   *Paradigm
	MatchCount int
}

// Reporter receives a diagnostic whenever disambiguation fails: the entry
// key and the number of matches still standing (0 for no analysis at all).
type Reporter func(key string, matchCount int)

// Disambiguator picks the single best analysis for a headword out of the
// analyzer's candidates. Ruleset must be set; a nil Normalizer disables
// lookalike folding and a nil Report discards diagnostics.
type Disambiguator struct {
	Ruleset    *Ruleset
	Normalizer Normalizer
	Report     Reporter
}

func NewDisambiguator(rs *Ruleset) *Disambiguator {
	return &Disambiguator{
		Ruleset:    rs,
		Normalizer: FoldLookalikes,
	}
}

// Exempt reports whether the entry skips analysis entirely: preverbs have no
// paradigm to pick, and phrases are out of the analyzer's reach.
func Exempt(head, pos string) bool {
	return pos == posPreverb || strings.Contains(head, " ")
}

type poolMatch struct {
	analysis Analysis
	paradigm Paradigm // empty means matched without a paradigm
}

// Disambiguate runs the candidates through the lemma filter, the
// part-of-speech gate and the tie-breaks, and returns the verdict. The only
// error it can return is ErrTieBreakDrift, which signals that the
// tie-breaker table and the filtering logic no longer agree and the batch
// must not continue.
func (d *Disambiguator) Disambiguate(head, pos string, candidates []Analysis) (Verdict, error) {
	if Exempt(head, pos) {
		return Verdict{OK: true}, nil
	}

	pool := make([]poolMatch, 0, len(candidates))
	for _, candidate := range candidates {
		if !d.lemmaMatches(head, candidate.Lemma) {
			continue
		}

		paradigm, ok := d.matchPOS(head, pos, &candidate)
		if !ok {
			continue
		}

		pool = append(pool, poolMatch{analysis: candidate.Copy(), paradigm: paradigm})
	}

	pool = preferParadigm(pool)
	pool = keepMinimalTagCount(pool)

	if len(pool) == 1 {
		return verdictFor(pool[0]), nil
	}

	if len(pool) > 1 {
		signatures := make([]string, 0, len(pool))
		for i := range pool {
			signatures = append(signatures, pool[i].analysis.Smush())
		}

		if winner, ok := d.Ruleset.FindTieBreaker(signatures); ok {
			for i := range pool {
				if signatures[i] == winner {
					return verdictFor(pool[i]), nil
				}
			}

			return Verdict{}, fmt.Errorf("%w: rule winner %q not in pool", ErrTieBreakDrift, winner)
		}
	}

	if d.Report != nil {
		d.Report(head, len(pool))
	}

	return Verdict{MatchCount: len(pool)}, nil
}

func (d *Disambiguator) lemmaMatches(head, lemma string) bool {
	if lemma == head {
		return true
	}
	if d.Normalizer != nil && d.Normalizer(lemma) == d.Normalizer(head) {
		return true
	}

	return false
}

// matchPOS gates a candidate against the part-of-speech. The second return
// distinguishes "matched without a paradigm" (empty Paradigm, true) from
// "rejected" (false).
func (d *Disambiguator) matchPOS(head, pos string, analysis *Analysis) (Paradigm, bool) {
	if strings.HasPrefix(pos, posParticlePrefix) && analysis.HasTag(tagParticle) {
		return "", true
	}

	if pos == posPronounAnimate && d.Ruleset.IsPersonalPronoun(head) &&
		analysis.HasTag(tagPronoun) && analysis.HasTag(tagPersonal) {
		return ParadigmPersonalPronouns, true
	}

	if pos == posPronounAnimate || pos == posPronounInanimate {
		if d.Ruleset.IsDemonstrativePronoun(head) &&
			analysis.HasTag(tagPronoun) && analysis.HasTag(tagDemonstrative) {
			return ParadigmDemonstrativePronouns, true
		}
		if analysis.HasTag(tagPronoun) {
			return "", true
		}
	}

	return wordClassParadigm(pos, analysis)
}

// preferParadigm drops paradigm-less matches once anything in the pool has a
// paradigm. Running it twice changes nothing.
func preferParadigm(pool []poolMatch) []poolMatch {
	withParadigm := false
	for i := range pool {
		if pool[i].paradigm != "" {
			withParadigm = true
			break
		}
	}
	if !withParadigm {
		return pool
	}

	ri := 0
	for i := range pool {
		if pool[i].paradigm != "" {
			pool[ri] = pool[i]
			ri++
		}
	}

	return pool[:ri]
}

func keepMinimalTagCount(pool []poolMatch) []poolMatch {
	if len(pool) < 2 {
		return pool
	}

	min := pool[0].analysis.TagCount()
	for i := range pool[1:] {
		if count := pool[i+1].analysis.TagCount(); count < min {
			min = count
		}
	}

	ri := 0
	for i := range pool {
		if pool[i].analysis.TagCount() == min {
			pool[ri] = pool[i]
			ri++
		}
	}

	return pool[:ri]
}

func verdictFor(match poolMatch) Verdict {
	res := Verdict{OK: true, Analysis: &match.analysis}
	if match.paradigm != "" {
		paradigm := match.paradigm
		res.Paradigm = &paradigm
	}

	return res
}
