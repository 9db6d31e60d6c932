package fifo

import (
	"strconv"
	"strings"

	"github.com/etnz/fifo/date"
)

// CellKind tells which variant a Cell holds.
type CellKind int

const (
	Missing CellKind = iota
	Text
	Number
	DateValue
)

// Cell is one raw value of a sheet row. The zero value is a missing cell.
type Cell struct {
	kind CellKind
	text string
	num  float64
	date date.Date
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{kind: Text, text: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{kind: Number, num: f} }

// DateCell returns an already typed date cell.
func DateCell(d date.Date) Cell { return Cell{kind: DateValue, date: d} }

// MissingCell returns an empty cell.
func MissingCell() Cell { return Cell{} }

// Kind returns the variant held by c.
func (c Cell) Kind() CellKind { return c.kind }

// IsEmpty reports whether c is missing or blank text.
func (c Cell) IsEmpty() bool {
	return c.kind == Missing || (c.kind == Text && strings.TrimSpace(c.text) == "")
}

// Number returns the numeric value of a Number cell.
func (c Cell) Number() (float64, bool) { return c.num, c.kind == Number }

// Date returns the value of a DateValue cell.
func (c Cell) Date() (date.Date, bool) { return c.date, c.kind == DateValue }

// String returns the cell as text, as a spreadsheet would display it unformatted.
// Missing cells are the empty string.
func (c Cell) String() string {
	switch c.kind {
	case Text:
		return c.text
	case Number:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case DateValue:
		return c.date.String()
	default:
		return ""
	}
}

// Row is a raw sheet row.
type Row struct {
	// Number is the 1-based row number in the source, the header being row 1.
	// Zero means unknown.
	Number int
	Cells  []Cell
}

// Cell returns the cell at column i, or a missing cell when i is out of range.
func (r Row) Cell(i int) Cell {
	if i < 0 || i >= len(r.Cells) {
		return Cell{}
	}
	return r.Cells[i]
}

// IsBlank reports whether every cell of r is empty.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Table is a header row and the data rows below it.
type Table struct {
	Headers []string
	Rows    []Row
}

// SourceRow returns the audit row number of the i-th data row.
func (t Table) SourceRow(i int) int {
	if n := t.Rows[i].Number; n > 0 {
		return n
	}
	return i + 2
}
