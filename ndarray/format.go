// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtDimsHead = "Array dimensions: "
	_fmtDimsSep  = " x "
)

// String renders the array:
//   - rank 1: "[v0, v1, ...]"
//   - rank 2: one bracketed row per index of dimension 0, rows joined by '\n'
//   - rank >= 3: "Array dimensions: d0 x d1 x ..." without elements
//
// Full dumps of higher ranks are left to All/Values.
func (a *Array[T]) String() string {
	var b strings.Builder
	switch len(a.dims) {
	case 0:
	case 1:
		writeRow(&b, a.data)
	case 2:
		rows, cols := a.dims[0], a.dims[1]
		row := make([]T, cols)
		for i := 0; i < rows; i++ {
			if i > 0 {
				b.WriteByte('\n')
			}
			// (i, j) lives at i + j*rows.
			for j := 0; j < cols; j++ {
				row[j] = a.data[i+j*rows]
			}
			writeRow(&b, row)
		}
	default:
		b.WriteString(_fmtDimsHead)
		for k, d := range a.dims {
			if k > 0 {
				b.WriteString(_fmtDimsSep)
			}
			fmt.Fprint(&b, d)
		}
	}

	return b.String()
}

func writeRow[T Number](b *strings.Builder, row []T) {
	b.WriteString(_fmtRowOpen)
	for i, v := range row {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(b, v)
	}
	b.WriteString(_fmtRowClose)
}

// Display writes String() followed by a newline to w.
func (a *Array[T]) Display(w io.Writer) error {
	_, err := io.WriteString(w, a.String()+"\n")

	return err
}
