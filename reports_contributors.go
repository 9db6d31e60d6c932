package fifo

import (
	"strconv"

	"github.com/etnz/fifo/date"
)

// RemainingAfter replays the contributions of l in order and returns the lot's
// remaining quantity right after each of them.
func RemainingAfter(l Lot) []Quantity {
	after := make([]Quantity, len(l.Contributors))
	var running Quantity
	for i, c := range l.Contributors {
		running = running.Add(signed(l.Side, c))
		after[i] = running
	}
	return after
}

// ContributorRow is one (lot, contribution) pair, flattened for tabular export.
type ContributorRow struct {
	LotID          int       `json:"lotId"`
	Side           Side      `json:"side"`
	Status         Status    `json:"status"`
	LotDate        date.Date `json:"lotDate"`
	LotOpenQty     Quantity  `json:"lotOpenQty"`
	Direction      Side      `json:"direction"`
	Qty            Quantity  `json:"qty"`
	RemainingAfter Quantity  `json:"remainingAfter"`
	Date           date.Date `json:"date"`
	TRN            string    `json:"trn"`
	CNC            string    `json:"cnc"`
	PCK            string    `json:"pck"`
	SourceRow      int       `json:"sourceRow"`
}

// ContributorHeader names the columns of ContributorRow.Record, in order.
var ContributorHeader = []string{
	"Lot", "Side", "Status", "Lot Date", "Lot Open Qty",
	"Contributor Direction", "Contributor Qty", "Remaining After", "Contributor Date",
	"TRN", "CNC", "PCK", "Source Row",
}

// Record returns r as text fields in ContributorHeader order.
func (r ContributorRow) Record() []string {
	return []string{
		strconv.Itoa(r.LotID),
		r.Side.String(),
		r.Status.String(),
		r.LotDate.String(),
		r.LotOpenQty.String(),
		r.Direction.String(),
		r.Qty.String(),
		r.RemainingAfter.String(),
		r.Date.String(),
		r.TRN,
		r.CNC,
		r.PCK,
		strconv.Itoa(r.SourceRow),
	}
}

// ContributorRows flattens lots into one row per contribution, lot by lot.
func ContributorRows(lots []Lot) []ContributorRow {
	var rows []ContributorRow
	for _, l := range lots {
		after := RemainingAfter(l)
		for i, c := range l.Contributors {
			rows = append(rows, ContributorRow{
				LotID:          l.ID,
				Side:           l.Side,
				Status:         l.Status,
				LotDate:        l.Date,
				LotOpenQty:     l.OpenQty,
				Direction:      c.Direction,
				Qty:            c.Qty,
				RemainingAfter: after[i],
				Date:           c.Date,
				TRN:            c.TRN,
				CNC:            c.CNC,
				PCK:            c.PCK,
				SourceRow:      c.SourceRow,
			})
		}
	}
	return rows
}
