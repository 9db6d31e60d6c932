package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fifo"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the aggregate figures of a run.
func SummaryMarkdown(s fifo.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Summary")
	blank(doc)
	summaryTable(doc, s)
	return doc.String()
}

func summaryTable(doc *md.Markdown, s fifo.Summary) {
	doc.Table(md.TableSet{
		Alignment: alignments(1, 1),
		Header:    []string{"Figure", "Value"},
		Rows: [][]string{
			{"Total Lots", fmt.Sprint(s.Lots)},
			{"Open Lots", fmt.Sprint(s.OpenLots)},
			{"Closed Lots", fmt.Sprint(s.ClosedLots)},
			{"Open Long", s.OpenLong.String()},
			{"Open Short", s.OpenShort.String()},
			{"Net Open", s.NetOpen.String()},
			{"Total Bought", s.TotalBought.String()},
			{"Total Sold", s.TotalSold.String()},
		},
	})
}
