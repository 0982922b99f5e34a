package munge

// Record is one entry from a toolbox export dump: the lemma, its
// part-of-speech code, an optional stem, and definitions keyed by source
// dictionary abbreviation (e.g. "CW", "MD").
type Record struct {
	Lemma  string              `json:"lemma"`
	POS    string              `json:"pos"`
	Stem   string              `json:"stem,omitempty"`
	Senses map[string][]string `json:"senses"`
}

// TestWords is the fixture allow-list used by -test-words-only runs: a small
// set of lemmas that between them exercise every disambiguation path.
var TestWords = map[string]bool{
	"maskwa":        true,
	"niska":         true,
	"môswa":         true,
	"atim":          true,
	"acâhkos":       true,
	"niya":          true,
	"kiya":          true,
	"ôma":           true,
	"awa":           true,
	"mîna":          true,
	"nipâw":         true,
	"wâpamêw":       true,
	"maskwa mostos": true,
	"ati-":          true,
}
