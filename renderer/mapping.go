package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/fifo"
	md "github.com/nao1215/markdown"
)

// PreviewRows is the number of data rows shown by MappingMarkdown.
const PreviewRows = 10

// MappingMarkdown renders the column chosen for each role and a preview of the first
// PreviewRows data rows.
func MappingMarkdown(t fifo.Table, m fifo.Mapping) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Column Mapping")
	roles := md.TableSet{Header: []string{"Role", "Column", "Header"}}
	for _, r := range fifo.Roles {
		i := m.Column(r)
		if i < 0 || i >= len(t.Headers) {
			roles.Rows = append(roles.Rows, []string{string(r), "", md.Italic("not found")})
			continue
		}
		roles.Rows = append(roles.Rows, []string{string(r), strconv.Itoa(i + 1), cell(t.Headers[i])})
	}
	blank(doc)
	doc.Table(roles)
	if err := m.Validate(len(t.Headers)); err != nil {
		doc.PlainText(md.Bold("Mapping is incomplete:"))
		blank(doc)
		var problems []string
		for _, e := range unwrapAll(err) {
			problems = append(problems, cell(e.Error()))
		}
		doc.BulletList(problems...)
	}

	doc.H2("Preview")
	if len(t.Headers) == 0 {
		doc.PlainText(md.Italic("No columns."))
		return doc.String()
	}
	preview := md.TableSet{Header: append([]string{"Row"}, escapeAll(t.Headers)...)}
	for i, row := range t.Rows {
		if i == PreviewRows {
			break
		}
		values := []string{strconv.Itoa(t.SourceRow(i))}
		for j := range t.Headers {
			values = append(values, cell(row.Cell(j).String()))
		}
		preview.Rows = append(preview.Rows, values)
	}
	blank(doc)
	doc.Table(preview)
	if len(t.Rows) > PreviewRows {
		doc.PlainText(fmt.Sprintf("Showing %d of %d rows.", PreviewRows, len(t.Rows)))
	}
	return doc.String()
}

func escapeAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = cell(v)
	}
	return out
}

// unwrapAll lists the errors joined in err, or err alone.
func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ WrappedErrors() []error }); ok {
		return joined.WrappedErrors()
	}
	return []error{err}
}
