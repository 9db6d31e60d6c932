package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fifo"
)

// ReadJSON reads an array of objects. path is a jsonpath selecting that array in the
// document, "$" if empty. Headers are the union of the object keys, sorted. Numbers
// become number cells and strings text cells; nested values are kept as JSON text.
//
// Records are numbered as spreadsheet rows would be: the first one is row 2.
func ReadJSON(r io.Reader, path string) (fifo.Table, error) {
	if path == "" {
		path = "$"
	}
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fifo.Table{}, fmt.Errorf("failed to decode JSON: %w", err)
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return fifo.Table{}, fmt.Errorf("failed to select records with %q: %w", path, err)
	}

	var records []map[string]any
	switch v := selected.(type) {
	case []any:
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return fifo.Table{}, fmt.Errorf("record %d selected by %q is not an object", i, path)
			}
			records = append(records, obj)
		}
	case map[string]any:
		records = append(records, v)
	default:
		return fifo.Table{}, fmt.Errorf("%q does not select an array of objects", path)
	}

	keys := make(map[string]bool)
	for _, rec := range records {
		for k := range rec {
			keys[k] = true
		}
	}
	var b builder
	b.header(slices.Sorted(maps.Keys(keys)))
	for i, rec := range records {
		cells := make([]fifo.Cell, len(b.table.Headers))
		for j, h := range b.table.Headers {
			cells[j] = jsonCell(rec[h])
		}
		b.row(fifo.Row{Number: i + 2, Cells: cells})
	}
	return b.result()
}

func jsonCell(v any) fifo.Cell {
	switch v := v.(type) {
	case nil:
		return fifo.MissingCell()
	case string:
		return fifo.TextCell(v)
	case float64:
		return fifo.NumberCell(v)
	case bool:
		return fifo.TextCell(strconv.FormatBool(v))
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fifo.MissingCell()
		}
		return fifo.TextCell(string(data))
	}
}
