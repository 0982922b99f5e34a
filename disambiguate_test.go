package munge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analysisMaskwaSg = Analysis{Lemma: "maskwa", Suffix: []string{"+N", "+A", "+Sg"}}
var analysisMaskwaObv = Analysis{Lemma: "maskwa", Suffix: []string{"+N", "+A", "+Obv"}}
var analysisNiyaPron = Analysis{Lemma: "niya", Suffix: []string{"+Pron", "+Pers", "+1Sg"}}
var analysisAtimSg = Analysis{Lemma: "atim", Suffix: []string{"+N", "+A", "+Sg"}}

func TestDisambiguator_Disambiguate(t *testing.T) {
	table := []struct {
		Label            string
		Head             string
		POS              string
		Candidates       []Analysis
		ExpectedOK       bool
		ExpectedAnalysis *Analysis
		ExpectedParadigm Paradigm
		ExpectedCount    int
	}{
		{
			"Tie-breaker picks the singular over the obviative",
			"maskwa", "NA",
			[]Analysis{analysisMaskwaSg, analysisMaskwaObv},
			true, &analysisMaskwaSg, ParadigmNA, 0,
		},
		{
			"Tie-breaker pair also matches in the other order",
			"maskwa", "NA",
			[]Analysis{analysisMaskwaObv, analysisMaskwaSg},
			true, &analysisMaskwaSg, ParadigmNA, 0,
		},
		{
			"Personal pronoun",
			"niya", "PrA",
			[]Analysis{analysisNiyaPron},
			true, &analysisNiyaPron, ParadigmPersonalPronouns, 0,
		},
		{
			"Demonstrative pronoun",
			"ôma", "PrI",
			[]Analysis{{Lemma: "ôma", Suffix: []string{"+Pron", "+Dem", "+I", "+Sg"}}},
			true, &Analysis{Lemma: "ôma", Suffix: []string{"+Pron", "+Dem", "+I", "+Sg"}}, ParadigmDemonstrativePronouns, 0,
		},
		{
			"Generic pronoun matches without a paradigm",
			"awîna", "PrA",
			[]Analysis{{Lemma: "awîna", Suffix: []string{"+Pron", "+Intr"}}},
			true, &Analysis{Lemma: "awîna", Suffix: []string{"+Pron", "+Intr"}}, "", 0,
		},
		{
			"Variant suffix strips to the word class",
			"atim", "NA-1",
			[]Analysis{analysisAtimSg},
			true, &analysisAtimSg, ParadigmNA, 0,
		},
		{
			"Dependent noun table row needs the +D tag",
			"nîki", "NDI",
			[]Analysis{{Lemma: "nîki", Suffix: []string{"+N", "+I", "+D", "+Sg"}}},
			true, &Analysis{Lemma: "nîki", Suffix: []string{"+N", "+I", "+D", "+Sg"}}, ParadigmNDI, 0,
		},
		{
			"Transitive animate verb",
			"wâpamêw", "VTA-1",
			[]Analysis{{Lemma: "wâpamêw", Suffix: []string{"+V", "+TA", "+Ind", "+3Sg+4Sg/PlO"}}},
			true, &Analysis{Lemma: "wâpamêw", Suffix: []string{"+V", "+TA", "+Ind", "+3Sg+4Sg/PlO"}}, ParadigmVTA, 0,
		},
		{
			"Particle with the Ipc tag and no paradigm",
			"mîna", "IPC",
			[]Analysis{{Lemma: "mîna", Suffix: []string{"+Ipc"}}},
			true, &Analysis{Lemma: "mîna", Suffix: []string{"+Ipc"}}, "", 0,
		},
		{
			"No candidates at all",
			"foo", "NA",
			nil,
			false, nil, "", 0,
		},
		{
			"All candidates fail the lemma filter",
			"foo", "NA",
			[]Analysis{analysisMaskwaSg},
			false, nil, "", 0,
		},
		{
			"Two-way tie with no rule stays ambiguous",
			"sîsîp", "NA",
			[]Analysis{
				{Lemma: "sîsîp", Suffix: []string{"+N", "+A", "+Sg"}},
				{Lemma: "sîsîp", Suffix: []string{"+N", "+A", "+Obv"}},
			},
			false, nil, "", 2,
		},
		{
			"Paradigm preference beats the lower tag count",
			"awa", "PrA",
			[]Analysis{
				{Lemma: "awa", Suffix: []string{"+Pron", "+Indef"}},
				{Lemma: "awa", Suffix: []string{"+Pron", "+Dem", "+A", "+Sg"}},
			},
			true, &Analysis{Lemma: "awa", Suffix: []string{"+Pron", "+Dem", "+A", "+Sg"}}, ParadigmDemonstrativePronouns, 0,
		},
		{
			"Minimal tag count wins over a preverbed reading",
			"nipâw", "VAI-1",
			[]Analysis{
				{Prefix: []string{"PV/e+"}, Lemma: "nipâw", Suffix: []string{"+V", "+AI", "+Cnj", "+3Sg"}},
				{Lemma: "nipâw", Suffix: []string{"+V", "+AI", "+Ind", "+3Sg"}},
			},
			true, &Analysis{Lemma: "nipâw", Suffix: []string{"+V", "+AI", "+Ind", "+3Sg"}}, ParadigmVAI, 0,
		},
		{
			"Lookalike folding on the ch digraph",
			"chîmân", "NI",
			[]Analysis{{Lemma: "cîmân", Suffix: []string{"+N", "+I", "+Sg"}}},
			true, &Analysis{Lemma: "cîmân", Suffix: []string{"+N", "+I", "+Sg"}}, ParadigmNI, 0,
		},
		{
			"Lookalike folding on the e vowel",
			"nipew", "VAI",
			[]Analysis{{Lemma: "nipêw", Suffix: []string{"+V", "+AI", "+Ind", "+3Sg"}}},
			true, &Analysis{Lemma: "nipêw", Suffix: []string{"+V", "+AI", "+Ind", "+3Sg"}}, ParadigmVAI, 0,
		},
		{
			"Preverb is exempt",
			"ati-", "IPV",
			nil,
			true, nil, "", 0,
		},
		{
			"Phrase is exempt regardless of part-of-speech",
			"maskwa mostos", "NA",
			[]Analysis{analysisMaskwaSg},
			true, nil, "", 0,
		},
		{
			"Unknown word class is rejected",
			"maskwa", "XYZ",
			[]Analysis{analysisMaskwaSg},
			false, nil, "", 0,
		},
		{
			"Word class tags must all be present",
			"maskwa", "NDA",
			[]Analysis{analysisMaskwaSg},
			false, nil, "", 0,
		},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			d := NewDisambiguator(DefaultRuleset())

			reported := -1
			d.Report = func(key string, matchCount int) {
				assert.Equal(t, row.Head, key)
				reported = matchCount
			}

			verdict, err := d.Disambiguate(row.Head, row.POS, row.Candidates)
			require.NoError(t, err)

			assert.Equal(t, row.ExpectedOK, verdict.OK)
			if row.ExpectedAnalysis != nil {
				require.NotNil(t, verdict.Analysis)
				assert.True(t, verdict.Analysis.Equal(row.ExpectedAnalysis), "got %s", verdict.Analysis.Smush())
			} else {
				assert.Nil(t, verdict.Analysis)
			}
			if row.ExpectedParadigm != "" {
				require.NotNil(t, verdict.Paradigm)
				assert.Equal(t, row.ExpectedParadigm, *verdict.Paradigm)
			} else {
				assert.Nil(t, verdict.Paradigm)
			}
			if !row.ExpectedOK {
				assert.Equal(t, row.ExpectedCount, verdict.MatchCount)
				assert.Equal(t, row.ExpectedCount, reported)
			} else {
				assert.Equal(t, -1, reported)
			}
		})
	}
}

func TestDisambiguator_CandidateOrder(t *testing.T) {
	d := NewDisambiguator(DefaultRuleset())

	ordered := []Analysis{
		{Prefix: []string{"PV/e+"}, Lemma: "maskwa", Suffix: []string{"+N", "+A", "+Sg"}},
		analysisMaskwaSg,
		analysisMaskwaObv,
		{Lemma: "maskos", Suffix: []string{"+N", "+A", "+Sg"}},
	}
	shuffled := []Analysis{ordered[3], ordered[2], ordered[0], ordered[1]}

	first, err := d.Disambiguate("maskwa", "NA", ordered)
	require.NoError(t, err)
	second, err := d.Disambiguate("maskwa", "NA", shuffled)
	require.NoError(t, err)

	require.True(t, first.OK)
	require.True(t, second.OK)
	assert.True(t, first.Analysis.Equal(second.Analysis))
	assert.Equal(t, "maskwa+N+A+Sg", first.Analysis.Smush())
}

func TestDisambiguator_ThreeWayTieUnresolved(t *testing.T) {
	d := NewDisambiguator(DefaultRuleset())

	verdict, err := d.Disambiguate("maskwa", "NA", []Analysis{
		analysisMaskwaSg,
		analysisMaskwaObv,
		{Lemma: "maskwa", Suffix: []string{"+N", "+A", "+Loc"}},
	})
	require.NoError(t, err)

	assert.False(t, verdict.OK)
	assert.Nil(t, verdict.Analysis)
	assert.Equal(t, 3, verdict.MatchCount)
}

func TestDisambiguator_NilNormalizerIsStrict(t *testing.T) {
	d := NewDisambiguator(DefaultRuleset())
	d.Normalizer = nil

	verdict, err := d.Disambiguate("nipew", "VAI", []Analysis{
		{Lemma: "nipêw", Suffix: []string{"+V", "+AI", "+Ind", "+3Sg"}},
	})
	require.NoError(t, err)

	assert.False(t, verdict.OK)
	assert.Equal(t, 0, verdict.MatchCount)
}

func TestPreferParadigmIdempotent(t *testing.T) {
	pool := []poolMatch{
		{analysis: analysisMaskwaSg, paradigm: ParadigmNA},
		{analysis: analysisMaskwaObv, paradigm: ""},
		{analysis: analysisAtimSg, paradigm: ParadigmNA},
	}

	once := preferParadigm(pool)
	require.Len(t, once, 2)

	twice := preferParadigm(append(once[:0:0], once...))
	assert.Equal(t, once, twice)
}
