package fifo

import (
	"log/slog"
	"math"
	"strings"

	"github.com/etnz/fifo/date"
)

// Transaction is a typed trade record produced by Normalize and consumed once by Match.
type Transaction struct {
	Date      date.Date
	Direction Side
	Quantity  Quantity // always positive
	TRN       string   // transaction reference
	CNC       string   // contract code
	PCK       string   // package reference
	SourceRow int
}

// Normalize converts the table rows into transactions, in row order.
//
// Rows whose direction matches neither keyword or both, and rows whose nominal is
// not a positive number once rounded to Precision, are left out. Unreadable dates
// are kept as date.Invalid. The mapping is assumed to be valid.
func Normalize(t Table, m Mapping, kw Keywords) []Transaction {
	kw = kw.normalized()
	var (
		dateCol = m.Column(RoleDate)
		dirCol  = m.Column(RoleDirection)
		nomCol  = m.Column(RoleNominal)
		trnCol  = m.Column(RoleTRN)
		cncCol  = m.Column(RoleCNC)
		pckCol  = m.Column(RolePCK)
	)

	txs := make([]Transaction, 0, len(t.Rows))
	for i, row := range t.Rows {
		src := t.SourceRow(i)

		dir, ok := resolveDirection(row.Cell(dirCol), kw)
		if !ok {
			slog.Debug("row dropped: no single direction", "row", src, "direction", row.Cell(dirCol).String())
			continue
		}
		qty, ok := resolveQuantity(row.Cell(nomCol))
		if !ok {
			slog.Debug("row dropped: nominal is not a positive number", "row", src, "nominal", row.Cell(nomCol).String())
			continue
		}

		txs = append(txs, Transaction{
			Date:      resolveDate(row.Cell(dateCol)),
			Direction: dir,
			Quantity:  qty,
			TRN:       strings.TrimSpace(row.Cell(trnCol).String()),
			CNC:       strings.TrimSpace(row.Cell(cncCol).String()),
			PCK:       strings.TrimSpace(row.Cell(pckCol).String()),
			SourceRow: src,
		})
	}
	return txs
}

// resolveDirection matches the lower-cased cell against already normalized keywords.
func resolveDirection(c Cell, kw Keywords) (Side, bool) {
	v := strings.ToLower(strings.TrimSpace(c.String()))
	isBuy := kw.Buy != "" && strings.Contains(v, kw.Buy)
	isSell := kw.Sell != "" && strings.Contains(v, kw.Sell)
	switch {
	case isBuy && !isSell:
		return Buy, true
	case isSell && !isBuy:
		return Sell, true
	default:
		return 0, false
	}
}

func resolveQuantity(c Cell) (Quantity, bool) {
	var (
		q  Quantity
		ok bool
	)
	if f, isNum := c.Number(); isNum {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Quantity{}, false
		}
		q, ok = Q(f).Abs(), true
	} else {
		q, ok = ParseQuantity(c.String())
	}
	// Nominals enter the engine at Precision so that every later sum is exact.
	q = q.Round()
	if !ok || !q.IsPositive() {
		return Quantity{}, false
	}
	return q, true
}

// resolveDate takes typed dates as they are, reads numbers as spreadsheet serials
// and falls back to free-text parsing, for numbers too: 20210524 is a date.
func resolveDate(c Cell) date.Date {
	switch c.Kind() {
	case DateValue:
		d, _ := c.Date()
		return d
	case Number:
		f, _ := c.Number()
		if d, ok := date.FromSerial(f); ok {
			return d
		}
		d, _ := date.ParseText(c.String())
		return d
	case Text:
		d, _ := date.ParseText(c.String())
		return d
	default:
		return date.Invalid
	}
}
