package toolboxreader

import (
	"strings"
	"testing"

	"github.com/altlab/munge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_NDJSON(t *testing.T) {
	input := `
{"lemma": "maskwa", "pos": "NA-1", "senses": {"CW": ["a bear"]}}
{"lemma": "atim", "pos": "NA-1", "stem": "atimw-", "senses": {"MD": ["a dog"]}}
{"pos": "NA"}
`

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "maskwa", records[0].Lemma)
	assert.Equal(t, []string{"a bear"}, records[0].Senses["CW"])
	assert.Equal(t, "atimw-", records[1].Stem)
	assert.Equal(t, "", records[2].Lemma, "headless records pass through; the aggregator skips them")
}

func TestRead_Array(t *testing.T) {
	input := ` [
		{"lemma": "maskwa", "pos": "NA-1", "senses": {"CW": ["a bear"]}},
		{"lemma": "niska", "pos": "NA-1", "senses": {"CW": ["a goose"]}}
	]`

	records, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "niska", records[1].Lemma)
}

func TestRead_Empty(t *testing.T) {
	records, err := Read(strings.NewReader("  \n "))
	require.NoError(t, err)
	assert.Equal(t, []munge.Record{}, records)
}

func TestRead_Malformed(t *testing.T) {
	_, err := Read(strings.NewReader(`{"lemma": "maskwa"` + "\n"))
	assert.Error(t, err)

	_, err = Read(strings.NewReader(`[{"lemma": 42}]`))
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile("/nonexistent/dump.ndjson")
	assert.Error(t, err)
}
