package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/fifo"
)

// sniffCandidates are the delimiters tried on the header line, in order of preference.
var sniffCandidates = []rune{',', ';', '\t', '|'}

// ReadCSV reads delimited text. A zero comma sniffs the delimiter from the first line.
// All values are read as text cells.
func ReadCSV(r io.Reader, comma rune) (fifo.Table, error) {
	br := bufio.NewReader(r)
	if comma == 0 {
		comma = sniffComma(br)
	}

	reader := csv.NewReader(br)
	reader.Comma = comma
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var b builder
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fifo.Table{}, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if !b.hasHeader && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		b.textRecord(line, record)
	}
	return b.result()
}

// sniffComma picks the candidate found most often on the first line.
func sniffComma(br *bufio.Reader) rune {
	head, _ := br.Peek(4096)
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	best, count := ',', 0
	for _, c := range sniffCandidates {
		if n := bytes.Count(head, []byte(string(c))); n > count {
			best, count = c, n
		}
	}
	return best
}
