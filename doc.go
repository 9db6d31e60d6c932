// Package fifo reconciles buy and sell nominal quantities of one instrument into
// lots, using First-In-First-Out matching, and keeps an auditable ledger of which
// transaction closed which lot and by how much.
//
// The engine is a pure batch transform in three stages:
//   - Normalize turns raw sheet rows (a Table of tagged Cells, a column Mapping and
//     buy/sell Keywords) into typed Transactions, silently leaving out rows without
//     a single direction or a positive nominal.
//   - SortTransactions establishes FIFO precedence: value date, then contract code
//     (numeric aware), then source row.
//   - Match consumes the ordered transactions with one queue of open lots per side.
//     A transaction reduces the oldest open lots of the opposite side first, and the
//     rest opens a new lot on its own side.
//
// Every quantity update is rounded to Precision decimal places immediately, so
// that long chains of partial fills stay stable. Compute chains the three stages.
//
// Summary, RemainingAfter and ContributorRows derive the figures and the flattened
// audit trail consumed by the renderer, the exports and the HTTP API.
//
// This package serves as the foundational logic for the `lots` command-line tool.
package fifo
