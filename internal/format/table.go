package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Tabler is implemented by command results that have a natural tabular shape.
type Tabler interface {
	Table() Table
}

type Table struct {
	Header []string
	Rows   [][]string
}

const maxCellWidth = 40

// WriteTable writes an aligned plain-text table. Cells wider than
// maxCellWidth are truncated with an ellipsis; width accounting is
// ANSI-aware so styled values do not skew columns.
func WriteTable(w io.Writer, t Table) error {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = ansi.StringWidth(h)
	}
	rows := make([][]string, len(t.Rows))
	for ri, row := range t.Rows {
		cells := make([]string, len(t.Header))
		for i := range t.Header {
			var cell string
			if i < len(row) {
				cell = ansi.Truncate(row[i], maxCellWidth, "…")
			}
			cells[i] = cell
			if w := ansi.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
		rows[ri] = cells
	}

	if err := writeRow(w, t.Header, widths); err != nil {
		return err
	}
	sep := make([]string, len(t.Header))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if err := writeRow(w, sep, widths); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - ansi.StringWidth(cell)
		if pad < 0 {
			pad = 0
		}
		parts[i] = cell + strings.Repeat(" ", pad)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}
