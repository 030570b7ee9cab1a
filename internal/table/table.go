// Package table renders whitespace-aligned transition tables.
//
// The DFA and NFA serializers both emit tables whose columns are padded to a
// common width so that the output is readable and reparses to the exact same
// automaton.
package table

import (
	"strings"
	"unicode/utf8"
)

// Writer accumulates rows of cells and renders them with every column padded
// to the width of its widest cell. Rows may have differing lengths; missing
// trailing cells are simply absent from the output.
type Writer struct {
	rows [][]string
}

// AddRow appends a row of cells.
func (w *Writer) AddRow(cells ...string) {
	w.rows = append(w.rows, cells)
}

// String renders the table. Cells are separated by a single space beyond the
// padding, lines end with LF, and trailing whitespace is trimmed from each
// line. Widths are measured in runes.
func (w *Writer) String() string {
	var widths []int
	for _, row := range w.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}

	var sb strings.Builder
	for _, row := range w.rows {
		var line strings.Builder
		for i, cell := range row {
			line.WriteString(cell)
			if i < len(row)-1 {
				pad := widths[i] - utf8.RuneCountInString(cell) + 1
				for j := 0; j < pad; j++ {
					line.WriteByte(' ')
				}
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}
