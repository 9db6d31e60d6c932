package fifo

import (
	"time"

	"github.com/etnz/fifo/date"
	"github.com/google/go-cmp/cmp"
)

// cmpOpts compares quantities by value and dates by day.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// day is a helper for test to create dates in May 2021 from the day of the month.
func day(d int) date.Date { return date.New(2021, time.May, d) }

// tx is a helper for test to create a transaction.
func tx(on date.Date, dir Side, qty float64, cnc string, row int) Transaction {
	return Transaction{
		Date:      on,
		Direction: dir,
		Quantity:  Q(qty),
		TRN:       "T" + cnc,
		CNC:       cnc,
		SourceRow: row,
	}
}

// textRow is a helper for test to create a row of text cells.
func textRow(values ...string) Row {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v == "" {
			continue
		}
		cells[i] = TextCell(v)
	}
	return Row{Cells: cells}
}

// testHeaders and testMapping describe the tables built by textRow in tests.
var (
	testHeaders = []string{"Value Date", "B/S", "Nominal", "TRN", "CNC", "PCK"}
	testMapping = Mapping{RoleDate: 0, RoleDirection: 1, RoleNominal: 2, RoleTRN: 3, RoleCNC: 4, RolePCK: 5}
)
