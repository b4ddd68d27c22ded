// Package research provides the subject-pair table and per-subject
// research lookups that feed blog generation.
package research

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
)

// Pair table errors.
var (
	ErrNoPairs = errors.New("no subject pairs found in the pair table")
)

// Pair is one row of the subject-pair table: the two terms to compare.
type Pair struct {
	TermA string
	TermB string
}

// PairTable holds the subject pairs loaded from the delimited table file.
// Rows are consumed by index: the first two fields of each data row are
// the subjects, whatever the header calls them.
type PairTable struct {
	Pairs []Pair
}

// LoadPairTable reads the pair table from a CSV file with a header row.
// A missing file is an error; rows with fewer than two fields are skipped.
func LoadPairTable(path string) (*PairTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pair table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read pair table: %w", err)
	}

	table := &PairTable{}

	for i, record := range records {
		if i == 0 {
			// Header row.
			continue
		}

		if len(record) < 2 {
			continue
		}

		table.Pairs = append(table.Pairs, Pair{TermA: record[0], TermB: record[1]})
	}

	return table, nil
}

// Len returns the number of data rows.
func (t *PairTable) Len() int {
	return len(t.Pairs)
}

// Random selects a random pair.
func (t *PairTable) Random() (Pair, error) {
	if len(t.Pairs) == 0 {
		return Pair{}, ErrNoPairs
	}

	return t.Pairs[rand.Intn(len(t.Pairs))], nil
}

// Range returns the pairs for an inclusive range of 1-based file line
// numbers, where line 2 is the first data row. Out-of-range bounds are
// clamped rather than rejected.
func (t *PairTable) Range(startLine, endLine int) []Pair {
	start := startLine - 2
	end := endLine - 2

	if start < 0 {
		start = 0
	}

	if end >= len(t.Pairs) {
		end = len(t.Pairs) - 1
	}

	if len(t.Pairs) == 0 || start > end {
		return nil
	}

	return t.Pairs[start : end+1]
}
