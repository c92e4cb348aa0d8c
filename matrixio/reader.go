// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/NirBendov/symnmf/matrix"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 16 << 20

// isDelimiter reports whether r separates tokens within a row.
func isDelimiter(r rune) bool {
	switch r {
	case ',', ' ', '\t', '\r':
		return true
	}

	return false
}

// Read parses a matrix from r.
//
// Errors: ErrMalformedInput (wrapped with the 1-based line number) for a
// ragged row, a non-numeric or non-finite token, or input with no rows;
// read errors from r are returned as is.
func Read(r io.Reader) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows [][]float64
		cols int
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.FieldsFunc(sc.Text(), isDelimiter)
		if len(fields) == 0 {
			continue
		}
		if rows == nil {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("line %d: %d values, want %d: %w", line, len(fields), cols, ErrMalformedInput)
		}
		row := make([]float64, len(fields))
		for j, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: token %q: %w", line, tok, ErrMalformedInput)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("line %d: non-finite token %q: %w", line, tok, ErrMalformedInput)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrixio: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows: %w", ErrMalformedInput)
	}

	return matrix.NewDenseFrom(rows)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
