package munge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TieBreaker resolves one known two-way ambiguity: when the surviving
// matches are exactly {Keep, Over}, the analysis smushing to Keep wins.
// Rules are exact pairs; three-way ties are never resolved by the table.
type TieBreaker struct {
	Keep string `yaml:"keep"`
	Over string `yaml:"over"`
}

// Ruleset is the closed-class word data and tie-breaker table the
// disambiguator runs against. It is loaded once at startup and never
// modified afterwards.
type Ruleset struct {
	PersonalPronouns      []string     `yaml:"personal_pronouns"`
	DemonstrativePronouns []string     `yaml:"demonstrative_pronouns"`
	TieBreakers           []TieBreaker `yaml:"tie_breakers"`

	personal      map[string]bool
	demonstrative map[string]bool
}

// DefaultRuleset returns the Plains Cree rules: the closed personal and
// demonstrative pronoun sets, and the tie-breakers for animate nouns in -wa
// and -ka whose singular and obviative forms coincide.
func DefaultRuleset() *Ruleset {
	rs := &Ruleset{
		PersonalPronouns: []string{
			"niya", "kiya", "wiya",
			"niyanân", "kiyânaw", "kiyawâw", "wiyawâw",
		},
		DemonstrativePronouns: []string{
			"awa", "ana", "nâha", "ôki", "aniki", "nêki",
			"ôma", "anima", "nêma", "ôhi", "anihi", "nêhi",
		},
		TieBreakers: []TieBreaker{
			{Keep: "maskwa+N+A+Sg", Over: "maskwa+N+A+Obv"},
			{Keep: "niska+N+A+Sg", Over: "niska+N+A+Obv"},
			{Keep: "môswa+N+A+Sg", Over: "môswa+N+A+Obv"},
		},
	}
	rs.index()

	return rs
}

// LoadRuleset reads a YAML ruleset file. Any section left empty in the file
// falls back to the default rules, so a deployment can extend just the
// tie-breaker table.
func LoadRuleset(path string) (*Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rs := &Ruleset{}
	if err := yaml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}

	defaults := DefaultRuleset()
	if len(rs.PersonalPronouns) == 0 {
		rs.PersonalPronouns = defaults.PersonalPronouns
	}
	if len(rs.DemonstrativePronouns) == 0 {
		rs.DemonstrativePronouns = defaults.DemonstrativePronouns
	}
	if len(rs.TieBreakers) == 0 {
		rs.TieBreakers = defaults.TieBreakers
	}
	rs.index()

	return rs, nil
}

func (rs *Ruleset) index() {
	rs.personal = make(map[string]bool, len(rs.PersonalPronouns))
	for _, p := range rs.PersonalPronouns {
		rs.personal[p] = true
	}

	rs.demonstrative = make(map[string]bool, len(rs.DemonstrativePronouns))
	for _, p := range rs.DemonstrativePronouns {
		rs.demonstrative[p] = true
	}
}

func (rs *Ruleset) IsPersonalPronoun(head string) bool {
	return rs.personal[head]
}

func (rs *Ruleset) IsDemonstrativePronoun(head string) bool {
	return rs.demonstrative[head]
}

// FindTieBreaker checks the remaining signatures against the rule table.
// A rule applies only when the pool is exactly its pair; the pair order on
// the rule decides the winner, not the pool order.
func (rs *Ruleset) FindTieBreaker(signatures []string) (string, bool) {
	if len(signatures) != 2 || signatures[0] == signatures[1] {
		return "", false
	}

	for _, rule := range rs.TieBreakers {
		if signatures[0] == rule.Keep && signatures[1] == rule.Over {
			return rule.Keep, true
		}
		if signatures[0] == rule.Over && signatures[1] == rule.Keep {
			return rule.Keep, true
		}
	}

	return "", false
}
