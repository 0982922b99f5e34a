package munge

import (
	"context"
	"sync"
)

// Analyzer is the external morphological analyzer, treated as a black box
// that maps a lemma to its candidate analyses. Implementations must be
// deterministic per lemma, but the order of the returned candidates carries
// no meaning and must not be relied upon.
type Analyzer interface {
	Lookup(ctx context.Context, lemma string) ([]Analysis, error)
}

type AnalyzerFunc func(ctx context.Context, lemma string) ([]Analysis, error)

func (f AnalyzerFunc) Lookup(ctx context.Context, lemma string) ([]Analysis, error) {
	return f(ctx, lemma)
}

// Cached wraps an analyzer with a per-lemma memo. Identical lemmas always
// yield identical candidate sets, so a batch run only pays for each distinct
// lemma once.
func Cached(inner Analyzer) Analyzer {
	return &cachedAnalyzer{
		inner: inner,
		memo:  make(map[string][]Analysis, 1024),
	}
}

type cachedAnalyzer struct {
	mu    sync.Mutex
	inner Analyzer
	memo  map[string][]Analysis
}

func (c *cachedAnalyzer) Lookup(ctx context.Context, lemma string) ([]Analysis, error) {
	c.mu.Lock()
	cached, ok := c.memo[lemma]
	c.mu.Unlock()

	if !ok {
		res, err := c.inner.Lookup(ctx, lemma)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.memo[lemma] = res
		c.mu.Unlock()

		cached = res
	}

	res := make([]Analysis, 0, len(cached))
	for i := range cached {
		res = append(res, cached[i].Copy())
	}

	return res, nil
}
