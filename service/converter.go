package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/altlab/munge"
	"github.com/google/uuid"
)

// Converter runs one batch over a toolbox record stream and produces the
// importjson entry list. The analyzer is memoized per distinct lemma, so
// feeding the same dump twice costs one FST pass.
type Converter struct {
	Analyzer      munge.Analyzer
	Disambiguator *munge.Disambiguator
}

func NewConverter(analyzer munge.Analyzer, ruleset *munge.Ruleset) *Converter {
	return &Converter{
		Analyzer:      munge.Cached(analyzer),
		Disambiguator: munge.NewDisambiguator(ruleset),
	}
}

// Stats summarizes one conversion run. Skipped records (no head, bound
// morphemes) are not part of OK/NotOK.
type Stats struct {
	RunID   string `json:"runId"`
	OK      int    `json:"ok"`
	NotOK   int    `json:"notOk"`
	Skipped int    `json:"skipped"`
}

// Convert processes the records in order. Ambiguous and unanalyzable
// entries are kept with ok=false and logged; any error from the analyzer or
// the disambiguator aborts the batch with no partial result.
func (c *Converter) Convert(ctx context.Context, records []munge.Record) ([]munge.Entry, Stats, error) {
	id := uuid.New()
	stats := Stats{RunID: base64.RawURLEncoding.EncodeToString(id[:])}

	disamb := *c.Disambiguator
	disamb.Report = func(key string, matchCount int) {
		log.Printf("%d matches for %s", matchCount, key)
	}

	entries := make([]munge.Entry, 0, len(records))
	seenSlugs := make(map[string]int, len(records))

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, Stats{}, err
		}

		entry, err := munge.BuildEntry(ctx, record, &disamb, c.Analyzer)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("entry %q: %w", record.Lemma, err)
		}
		if entry == nil {
			stats.Skipped++
			continue
		}

		// Homographs share a head; their slugs get @2, @3, ... so the
		// importjson consumer can key on slug alone.
		seenSlugs[entry.Slug]++
		if n := seenSlugs[entry.Slug]; n > 1 {
			entry.Slug = fmt.Sprintf("%s@%d", entry.Slug, n)
		}

		if entry.OK {
			stats.OK++
		} else {
			stats.NotOK++
		}

		entries = append(entries, *entry)
	}

	log.Printf("conversion %s done: {ok: %d, notOk: %d}", stats.RunID, stats.OK, stats.NotOK)

	return entries, stats, nil
}
