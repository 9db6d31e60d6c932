// Package sheet reads tabular trade exports into a fifo.Table.
//
// Three sources are supported, chosen by file extension: delimited text (.csv, .tsv,
// .txt), Excel workbooks (.xlsx, .xlsm) and JSON documents (.json). The first record of
// a source is its header; headers are trimmed and blank data rows are skipped. Every
// kept row remembers its physical position in the source, the header being row 1.
//
// AutoMap guesses which column plays which role from the header names, and a Profile
// pins roles, keywords and JSON record selection in a YAML file.
package sheet

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/fifo"
)

var (
	// ErrUnsupportedFormat is returned for a file extension no reader handles.
	ErrUnsupportedFormat = errors.New("sheet: unsupported format")
	// ErrNoRows is returned when a source has no header or no data row.
	ErrNoRows = errors.New("sheet: file has no data rows")
)

// Format identifies a reader.
type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	JSON Format = "json"
)

// Options tune the readers. The zero value reads the first sheet of a workbook,
// sniffs the CSV delimiter and takes the JSON document root as the record list.
type Options struct {
	Sheet   string // workbook sheet name
	Comma   rune   // CSV delimiter, 0 to sniff
	Records string // jsonpath selecting the records of a JSON document
}

// DetectFormat returns the format matching the extension of name.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".tsv", ".txt":
		return CSV, nil
	case ".xlsx", ".xlsm":
		return XLSX, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(name))
	}
}

// Load reads the file at path.
func Load(path string, opts Options) (fifo.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return fifo.Table{}, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()
	return Read(path, f, opts)
}

// Read reads r with the reader matching the extension of name.
func Read(name string, r io.Reader, opts Options) (fifo.Table, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return fifo.Table{}, err
	}
	if opts.Comma == 0 && strings.EqualFold(filepath.Ext(name), ".tsv") {
		opts.Comma = '\t'
	}

	var t fifo.Table
	switch format {
	case CSV:
		t, err = ReadCSV(r, opts.Comma)
	case XLSX:
		t, err = ReadXLSX(r, opts.Sheet)
	case JSON:
		t, err = ReadJSON(r, opts.Records)
	}
	if err != nil {
		return fifo.Table{}, fmt.Errorf("failed to read %q: %w", filepath.Base(name), err)
	}
	slog.Info("sheet loaded", "file", filepath.Base(name), "format", format, "columns", len(t.Headers), "rows", len(t.Rows))
	return t, nil
}

// builder accumulates records into a table: the first non-blank record is the header,
// blank records are skipped.
type builder struct {
	table     fifo.Table
	hasHeader bool
}

// header sets the table headers, trimmed.
func (b *builder) header(values []string) {
	b.table.Headers = make([]string, len(values))
	for i, v := range values {
		b.table.Headers[i] = strings.TrimSpace(v)
	}
	b.hasHeader = true
}

// textRecord adds a record of text values read at the physical row number.
func (b *builder) textRecord(number int, values []string) {
	if !b.hasHeader {
		if !blank(values) {
			b.header(values)
		}
		return
	}
	cells := make([]fifo.Cell, len(values))
	for i, v := range values {
		if strings.TrimSpace(v) != "" {
			cells[i] = fifo.TextCell(v)
		}
	}
	b.row(fifo.Row{Number: number, Cells: cells})
}

// row adds a data row unless it is blank.
func (b *builder) row(r fifo.Row) {
	if r.IsBlank() {
		return
	}
	b.table.Rows = append(b.table.Rows, r)
}

func (b *builder) result() (fifo.Table, error) {
	if !b.hasHeader || len(b.table.Rows) == 0 {
		return fifo.Table{}, ErrNoRows
	}
	return b.table, nil
}

func blank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
