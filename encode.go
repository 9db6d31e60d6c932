package fifo

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file contains the export formats for lots:
//   - CSV: one row per (lot, contribution) pair, see ContributorHeader.
//   - JSONL: one lot per line with its full contributor ledger, git-friendly and
//     decodable back with DecodeLots.

// EncodeContributorsCSV writes the contributor rows of lots as CSV, header first.
func EncodeContributorsCSV(w io.Writer, lots []Lot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ContributorHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range ContributorRows(lots) {
		if err := cw.Write(row.Record()); err != nil {
			return fmt.Errorf("failed to write CSV row for lot %d: %w", row.LotID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeLots writes lots as JSONL, one lot per line, in id order.
func EncodeLots(w io.Writer, lots []Lot) error {
	enc := json.NewEncoder(w)
	for _, l := range lots {
		if err := enc.Encode(l); err != nil {
			return fmt.Errorf("failed to encode lot %d: %w", l.ID, err)
		}
	}
	return nil
}

// DecodeLots reads lots written by EncodeLots. name is for error messages only.
func DecodeLots(name string, r io.Reader) ([]Lot, error) {
	var lots []Lot
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Bytes()
		if len(strings.TrimSpace(string(txt))) == 0 {
			continue
		}
		var l Lot
		if err := json.Unmarshal(txt, &l); err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", name, line, err)
		}
		lots = append(lots, l)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return lots, nil
}
