package hfstanalyzer

import (
	"bytes"
	"testing"

	"github.com/altlab/munge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	out := bytes.NewBufferString(
		"maskwa\tmaskwa+N+A+Sg\t0.000000\n" +
			"maskwa\tmaskwa+N+A+Obv\t0.000000\n" +
			"\n" +
			"êkwa\tPV/e+kwa+?\tinf\n",
	)

	analyses, err := ParseOutput(out)
	require.NoError(t, err)
	require.Len(t, analyses, 2)

	assert.Equal(t, "maskwa+N+A+Sg", analyses[0].Smush())
	assert.Equal(t, "maskwa+N+A+Obv", analyses[1].Smush())
}

func TestParseOutput_NoAnalyses(t *testing.T) {
	analyses, err := ParseOutput(bytes.NewBufferString("foo\tfoo+?\tinf\n"))
	require.NoError(t, err)
	assert.Empty(t, analyses)
}

func TestParseOutput_Garbage(t *testing.T) {
	_, err := ParseOutput(bytes.NewBufferString("not tab separated\n"))
	assert.Error(t, err)
}

func TestNew_MissingTransducer(t *testing.T) {
	_, err := New("", "/nonexistent/crk.hfstol")
	assert.ErrorIs(t, err, munge.ErrAnalyzerUnavailable)
}
