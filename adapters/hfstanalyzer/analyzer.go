// Package hfstanalyzer shells out to hfst-optimized-lookup for candidate
// analyses. The transducer is a pre-built artifact; this adapter only runs
// it, it never inspects it.
package hfstanalyzer

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/altlab/munge"
)

const DefaultExecutable = "hfst-optimized-lookup"

type Analyzer struct {
	executable string
	transducer string
}

// New checks that the transducer file exists up front, since a missing
// analyzer resource must fail the batch before any output is produced.
func New(executable, transducer string) (*Analyzer, error) {
	if executable == "" {
		executable = DefaultExecutable
	}

	if _, err := os.Stat(transducer); err != nil {
		return nil, fmt.Errorf("%w: %s", munge.ErrAnalyzerUnavailable, transducer)
	}

	return &Analyzer{executable: executable, transducer: transducer}, nil
}

// Lookup runs one lemma through the transducer. Output lines are
// tab-separated: input, analysis, weight; a "+?" marks no analysis. Wrap
// the adapter in munge.Cached for batch runs.
func (a *Analyzer) Lookup(ctx context.Context, lemma string) ([]munge.Analysis, error) {
	cmd := exec.CommandContext(ctx, a.executable, "-q", a.transducer)
	cmd.Stdin = strings.NewReader(lemma + "\n")

	out := bytes.Buffer{}
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %s", munge.ErrAnalyzerUnavailable, a.executable, err)
	}

	return ParseOutput(&out)
}

func ParseOutput(out io.Reader) ([]munge.Analysis, error) {
	res := make([]munge.Analysis, 0, 4)

	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, fmt.Errorf("unexpected analyzer output line: %q", line)
		}
		if strings.HasSuffix(fields[1], "+?") {
			continue
		}

		analysis, err := munge.ParseAnalysis(fields[1])
		if err != nil {
			return nil, err
		}

		res = append(res, analysis)
	}

	return res, scanner.Err()
}
