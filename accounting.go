package fifo

import "fmt"

// Result is the outcome of one Compute run.
type Result struct {
	Rows         int     `json:"rows"`         // data rows read
	Transactions int     `json:"transactions"` // rows kept by Normalize
	Lots         []Lot   `json:"lots"`
	Summary      Summary `json:"summary"`
}

// Dropped returns how many rows Normalize left out.
func (r *Result) Dropped() int { return r.Rows - r.Transactions }

// Compute is the whole engine as a pure function: it normalizes the table rows,
// orders them and matches them into lots. Nothing is kept between calls, so
// independent tables can be computed concurrently.
//
// The mapping and keywords are the caller's responsibility (see Mapping.Validate
// and Keywords.Validate); an error is only returned if matching breaks an invariant.
func Compute(t Table, m Mapping, kw Keywords) (*Result, error) {
	txs := Normalize(t, m, kw)
	SortTransactions(txs)

	lots, err := Match(txs)
	if err != nil {
		return nil, fmt.Errorf("matching %d transactions: %w", len(txs), err)
	}
	return &Result{
		Rows:         len(t.Rows),
		Transactions: len(txs),
		Lots:         lots,
		Summary:      NewSummary(lots),
	}, nil
}
