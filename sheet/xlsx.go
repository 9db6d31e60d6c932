package sheet

import (
	"fmt"
	"io"

	"github.com/etnz/fifo"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads one sheet of an Excel workbook, the first one if name is empty.
//
// Cells are read raw: a date comes out as its serial number and a figure without its
// display format. Both are text cells, the engine reads serials from the date column.
func ReadXLSX(r io.Reader, name string) (fifo.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return fifo.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return fifo.Table{}, ErrNoRows
		}
		name = sheets[0]
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return fifo.Table{}, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	var b builder
	for i, values := range rows {
		b.textRecord(i+1, values)
	}
	return b.result()
}
