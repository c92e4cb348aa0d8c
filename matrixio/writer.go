// SPDX-License-Identifier: MIT

package matrixio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/NirBendov/symnmf/matrix"
)

// appendRow formats one row of m into buf.
func appendRow(buf []byte, m matrix.Matrix, i int) ([]byte, error) {
	for j := 0; j < m.Cols(); j++ {
		if j > 0 {
			buf = append(buf, ',')
		}
		v, err := m.At(i, j)
		if err != nil {
			return nil, err
		}
		buf = strconv.AppendFloat(buf, v, 'f', 4, 64)
	}

	return append(buf, '\n'), nil
}

// Write prints m to w, one "%.4f"-formatted, comma-separated row per line.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	var (
		buf []byte
		err error
	)
	for i := 0; i < m.Rows(); i++ {
		if buf, err = appendRow(buf[:0], m, i); err != nil {
			return err
		}
		if _, err = bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Format returns the text Write would print for m.
func Format(m matrix.Matrix) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, m); err != nil {
		return "", err
	}

	return sb.String(), nil
}
