package panel

import (
	"fmt"
	"image"

	"github.com/npillmayer/pipes"
)

// Row is one row of a sample table: a curve parameter and the point at it.
type Row struct {
	T   float64
	Pen pipes.Pair
}

func (r Row) String() string {
	return fmt.Sprintf("%.2f | (%g, %g)", r.T, pipes.Round2(r.Pen.X()), pipes.Round2(r.Pen.Y()))
}

// Table is a panel with rows and at most one highlighted row.
type Table struct {
	Container
	rows      []Row
	highlight int
}

// NewTable creates an empty table.
func NewTable(name string) *Table {
	return &Table{Container: Container{name: name}, highlight: -1}
}

// SetRows replaces the row body and clears the highlight.
func (t *Table) SetRows(rows []Row) {
	t.rows = append(t.rows[:0], rows...)
	t.highlight = -1
}

// Rows returns the rows of the table.
func (t *Table) Rows() []Row { return t.rows }

// Highlight marks row i. Indices out of range clear the highlight.
func (t *Table) Highlight(i int) {
	if i < 0 || i >= len(t.rows) {
		t.highlight = -1
		return
	}
	t.highlight = i
}

// Highlighted returns the index of the highlighted row, or -1.
func (t *Table) Highlighted() int { return t.highlight }

// Render draws a header and all rows; the highlighted row is marked.
func (t *Table) Render() image.Image {
	lines := make([]string, 0, len(t.rows)+1)
	lines = append(lines, "    t  | B(t)")
	for i, r := range t.rows {
		mark := "  "
		if i == t.highlight {
			mark = "> "
		}
		lines = append(lines, mark+r.String())
	}
	return renderLines(lines...)
}
