package munge

import "strings"

// Normalizer folds lookalike spellings before the head/lemma comparison.
// Head and candidate lemma are both passed through it, and a candidate
// survives if either the literal or the folded comparison matches.
type Normalizer func(string) string

// Maskwacîs spellings write the "c" phoneme as the "ch" digraph and leave
// the always-long "e" unmarked, while the analyzer emits SRO ("atchakosuk"
// vs "acâhkos"). This is a workaround for that mismatch, not orthography
// conversion; retire it by swapping in a different Normalizer.
var lookalikes = strings.NewReplacer(
	"ch", "c",
	"e", "ê",
)

func FoldLookalikes(s string) string {
	return lookalikes.Replace(s)
}
