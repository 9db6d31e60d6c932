package fifo

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/fifo/date"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// contractOrder compares contract codes. It holds a collator, which is not safe for
// concurrent use: make one per sort.
type contractOrder struct {
	collator *collate.Collator
}

func newContractOrder() *contractOrder {
	return &contractOrder{collator: collate.New(language.Und, collate.Numeric, collate.Loose)}
}

// compare orders two contract codes:
//   - two codes that both read as finite numbers compare numerically,
//   - a non-empty code comes before an empty one,
//   - otherwise text compares numerically aware and ignoring case and accents,
//     so "A2" < "a10".
//
// Mixing numeric and text codes is not transitive ("9" < "1e1" < "2a" < "9"); the
// stable sort keeps such inputs deterministic, not totally ordered.
func (o *contractOrder) compare(a, b string) int {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == b {
		return 0
	}
	an, aIsNum := contractNumber(a)
	bn, bIsNum := contractNumber(b)
	if aIsNum && bIsNum {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}
	return o.collator.CompareString(a, b)
}

func contractNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// CompareContract compares two contract codes the way SortTransactions does.
func CompareContract(a, b string) int { return newContractOrder().compare(a, b) }

// SortTransactions sorts txs in place into FIFO precedence: by date (invalid dates
// last), then contract code, then source row.
func SortTransactions(txs []Transaction) {
	order := newContractOrder()
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		if c := date.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		if c := order.compare(a.CNC, b.CNC); c != 0 {
			return c
		}
		return a.SourceRow - b.SourceRow
	})
}
