// Package toolboxreader reads raw lexical-database dumps into records.
// Exports come in two dialects: one JSON array, or newline-delimited JSON
// objects. The first non-space byte tells them apart.
package toolboxreader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/altlab/munge"
)

func ReadFile(path string) ([]munge.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

func Read(r io.Reader) ([]munge.Record, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if err == io.EOF {
		return []munge.Record{}, nil
	} else if err != nil {
		return nil, err
	}

	if first == '[' {
		var records []munge.Record
		if err := json.NewDecoder(br).Decode(&records); err != nil {
			return nil, err
		}

		return records, nil
	}

	// ND-JSON, or any concatenated stream of objects.
	records := make([]munge.Record, 0, 1024)
	dec := json.NewDecoder(br)
	for {
		var record munge.Record
		if err := dec.Decode(&record); err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}

		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}

		if err := br.UnreadByte(); err != nil {
			return 0, err
		}

		return b, nil
	}
}
