// Package renderer turns lots, summaries and mapping previews into markdown.
package renderer

import (
	"strings"

	md "github.com/nao1215/markdown"
)

// cell escapes a value for use inside a markdown table.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// alignments returns n right-aligned columns after the left-aligned ones.
func alignments(left, right int) []md.TableAlignment {
	a := make([]md.TableAlignment, 0, left+right)
	for range left {
		a = append(a, md.AlignLeft)
	}
	for range right {
		a = append(a, md.AlignRight)
	}
	return a
}

// blank separates blocks with an empty line.
func blank(doc *md.Markdown) { doc.PlainText("") }
