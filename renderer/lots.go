package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/fifo"
	md "github.com/nao1215/markdown"
)

// LotsOptions holds configuration for rendering a lots report.
type LotsOptions struct {
	Filter  fifo.StatusFilter // lots to list, the summary always covers all of them
	Details bool              // render the contributor ledger of each listed lot
}

// ReportMarkdown renders a full run: input statistics, the summary and the lots.
func ReportMarkdown(res *fifo.Result, opts LotsOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("FIFO Lots")
	doc.PlainText(fmt.Sprintf("%d rows read, %d transactions matched, %d rows ignored.",
		res.Rows, res.Transactions, res.Dropped()))

	doc.H2("Summary")
	blank(doc)
	summaryTable(doc, res.Summary)

	lotsSection(doc, fifo.FilterLots(res.Lots, opts.Filter), opts)
	return doc.String()
}

// LotsMarkdown renders the lots alone.
func LotsMarkdown(lots []fifo.Lot, opts LotsOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("FIFO Lots")
	lotsSection(doc, fifo.FilterLots(lots, opts.Filter), opts)
	return doc.String()
}

func lotsSection(doc *md.Markdown, lots []fifo.Lot, opts LotsOptions) {
	title := "Lots"
	if opts.Filter != fifo.AllLots {
		title = fmt.Sprintf("Lots (%s)", opts.Filter)
	}
	doc.H2(title)
	if len(lots) == 0 {
		doc.PlainText(md.Italic("No lots."))
		return
	}

	table := md.TableSet{
		Alignment: append(alignments(7, 2), md.AlignRight),
		Header:    []string{"Lot", "Side", "Status", "Date", "TRN", "CNC", "PCK", "Open Qty", "Remaining", "Contributors"},
	}
	for _, l := range lots {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(l.ID),
			l.Side.String(),
			l.Status.String(),
			l.Date.String(),
			cell(l.TRN),
			cell(l.CNC),
			cell(l.PCK),
			l.OpenQty.String(),
			l.RemainingQty.String(),
			strconv.Itoa(len(l.Contributors)),
		})
	}
	blank(doc)
	doc.Table(table)

	if !opts.Details {
		return
	}
	for _, l := range lots {
		contributorsSection(doc, l)
	}
}

// contributorsSection renders the ledger of one lot, opening contribution first.
func contributorsSection(doc *md.Markdown, l fifo.Lot) {
	doc.H3(fmt.Sprintf("Lot %d: %s %s, %s", l.ID, l.Side, l.OpenQty, l.Status))
	table := md.TableSet{
		Alignment: append(alignments(1, 2), alignments(5, 0)...),
		Header:    []string{"Direction", "Qty", "Remaining After", "Date", "TRN", "CNC", "PCK", "Row"},
	}
	after := fifo.RemainingAfter(l)
	for i, c := range l.Contributors {
		table.Rows = append(table.Rows, []string{
			c.Direction.String(),
			c.Qty.String(),
			after[i].String(),
			c.Date.String(),
			cell(c.TRN),
			cell(c.CNC),
			cell(c.PCK),
			strconv.Itoa(c.SourceRow),
		})
	}
	blank(doc)
	doc.Table(table)
}
