package fifo

import (
	"errors"
	"fmt"

	"github.com/etnz/fifo/date"
)

// ErrInvariant reports a broken matching invariant. It is a programming error, never
// a consequence of bad input.
var ErrInvariant = errors.New("fifo: invariant violated")

// Contribution records how much of one transaction was applied to one lot.
type Contribution struct {
	Direction Side      `json:"direction"`
	Qty       Quantity  `json:"qty"`
	Date      date.Date `json:"date"`
	TRN       string    `json:"trn"`
	CNC       string    `json:"cnc"`
	PCK       string    `json:"pck"`
	SourceRow int       `json:"sourceRow"`
}

// Lot is a quantity opened on one side by a transaction that could not be fully
// matched, together with every contribution that later reduced it.
type Lot struct {
	ID           int            `json:"id"`
	Side         Side           `json:"side"`
	OpenQty      Quantity       `json:"openQty"`
	RemainingQty Quantity       `json:"remainingQty"`
	Status       Status         `json:"status"`
	Date         date.Date      `json:"date"`
	TRN          string         `json:"trn"`
	CNC          string         `json:"cnc"`
	PCK          string         `json:"pck"`
	Contributors []Contribution `json:"contributors"`
}

// contribution returns the part qty of tx as a Contribution.
func contribution(tx Transaction, qty Quantity) Contribution {
	return Contribution{
		Direction: tx.Direction,
		Qty:       qty,
		Date:      tx.Date,
		TRN:       tx.TRN,
		CNC:       tx.CNC,
		PCK:       tx.PCK,
		SourceRow: tx.SourceRow,
	}
}

// openLot creates the lot opened by the unmatched qty of tx.
func openLot(id int, tx Transaction, qty Quantity) *Lot {
	return &Lot{
		ID:           id,
		Side:         tx.Direction,
		OpenQty:      qty,
		RemainingQty: qty,
		Status:       Open,
		Date:         tx.Date,
		TRN:          tx.TRN,
		CNC:          tx.CNC,
		PCK:          tx.PCK,
		Contributors: []Contribution{contribution(tx, qty)},
	}
}

// lotQueue is a FIFO of indices into the lot collection. Popping advances a cursor
// instead of shifting the slice; the consumed prefix is reclaimed once it dominates.
type lotQueue struct {
	items []int
	head  int
}

func (q *lotQueue) len() int   { return len(q.items) - q.head }
func (q *lotQueue) front() int { return q.items[q.head] }
func (q *lotQueue) push(i int) { q.items = append(q.items, i) }

func (q *lotQueue) pop() {
	q.head++
	if q.head >= 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
}

// matcher holds the state of one Match run.
type matcher struct {
	lots   []*Lot
	queues [2]lotQueue // open lot indices, by Side
}

// Match runs FIFO matching over transactions already in SortTransactions order.
// Each transaction first reduces the oldest open lots of the opposite side, and any
// rest opens a new lot on its own side.
//
// The result is a pure function of the input order.
func Match(txs []Transaction) ([]Lot, error) {
	m := &matcher{}
	for _, tx := range txs {
		if err := m.apply(tx); err != nil {
			return nil, err
		}
	}

	lots := make([]Lot, len(m.lots))
	for i, l := range m.lots {
		lots[i] = *l
	}
	if err := Verify(lots); err != nil {
		return nil, err
	}
	return lots, nil
}

func (m *matcher) apply(tx Transaction) error {
	if !tx.Quantity.IsPositive() {
		return fmt.Errorf("%w: transaction at row %d has non positive quantity %v", ErrInvariant, tx.SourceRow, tx.Quantity)
	}
	opposing := &m.queues[tx.Direction.Opposite()]
	remaining := tx.Quantity

	for remaining.IsPositive() && opposing.len() > 0 {
		lot := m.lots[opposing.front()]
		if lot.Status != Open {
			return fmt.Errorf("%w: closed lot %d is still queued", ErrInvariant, lot.ID)
		}
		consume := remaining.Min(lot.RemainingQty)
		lot.RemainingQty = lot.RemainingQty.Sub(consume)
		remaining = remaining.Sub(consume)
		if lot.RemainingQty.IsNegative() || remaining.IsNegative() {
			return fmt.Errorf("%w: lot %d went negative matching row %d", ErrInvariant, lot.ID, tx.SourceRow)
		}
		lot.Contributors = append(lot.Contributors, contribution(tx, consume))

		if lot.RemainingQty.IsZero() {
			lot.Status = Closed
			opposing.pop()
		}
	}

	if remaining.IsPositive() {
		m.lots = append(m.lots, openLot(len(m.lots)+1, tx, remaining))
		m.queues[tx.Direction].push(len(m.lots) - 1)
	}
	return nil
}

// FilterLots returns the lots passing f, in order.
func FilterLots(lots []Lot, f StatusFilter) []Lot {
	if f == AllLots {
		return lots
	}
	var kept []Lot
	for _, l := range lots {
		if f.Keep(l.Status) {
			kept = append(kept, l)
		}
	}
	return kept
}
