package output

import (
	"fmt"
	"io"
	"strings"

	"copyshop-pricing/core/quote"
	"copyshop-pricing/core/types"
)

const tableWidth = 73

// CLIFormatter writes box-drawn tables
type CLIFormatter struct{}

// Format returns FormatCLI
func (CLIFormatter) Format() Format { return FormatCLI }

// RenderQuote writes a reservation summary with one row per group
func (CLIFormatter) RenderQuote(w io.Writer, q *quote.Quote, details bool) error {
	t := &table{w: w}
	t.rule("┌", "┐")
	t.title(fmt.Sprintf("QUOTE %s  price book %s", q.ID, displayID(q.PriceBook)))
	t.rule("├", "┤")
	t.row("group", "one face", "two faces")

	for _, g := range q.Groups {
		label := g.ID
		if g.IsRounded {
			label += fmt.Sprintf(" (rounded to %s)", g.RoundTo)
		}
		t.row(label, money(g.GroupTotal.OneFace), money(g.GroupTotal.TwoFaces))
		if !details {
			continue
		}
		for _, item := range g.ItemPrices {
			t.row(fmt.Sprintf("  └─ %s × %d", item.ID, item.Quantity),
				money(item.Total.OneFace), money(item.Total.TwoFaces))
		}
	}

	t.rule("├", "┤")
	for _, agg := range q.PaperTypes() {
		t.row(fmt.Sprintf("%s (%d copies, %d pages)", agg.Label, agg.Quantity, agg.Pages),
			money(agg.Total.OneFace), money(agg.Total.TwoFaces))
	}
	t.rule("├", "┤")
	t.row("TOTAL "+string(q.Currency), money(q.Total.OneFace), money(q.Total.TwoFaces))
	t.rule("└", "┘")

	if len(q.Diagnostics) > 0 {
		t.printf("\n%d warning(s):\n", len(q.Diagnostics))
		for _, d := range q.Diagnostics {
			t.printf("  ! %s: %s\n", d.LineID, d.Message)
		}
	}
	return t.err
}

// RenderPrice writes a single price and its cover options
func (CLIFormatter) RenderPrice(w io.Writer, r *PriceReport) error {
	t := &table{w: w}
	t.rule("┌", "┐")
	t.title(fmt.Sprintf("%s: %d pages on %s", displayID(r.Record.ID), r.Record.Pages, displayID(r.Record.PaperTypeID)))
	t.rule("├", "┤")
	t.row("", "one face", "two faces")

	cover := "no cover"
	if r.Result.ResolvedCover != nil {
		cover = r.Result.ResolvedCover.ID
	}
	t.row("price ("+cover+")", money(r.Result.OneFacePrice), money(r.Result.TwoFacesPrice))

	if len(r.Options) > 0 {
		t.rule("├", "┤")
		for _, opt := range r.Options {
			t.row("  "+opt.Label(), money(opt.Price.OneFacePrice), money(opt.Price.TwoFacesPrice))
		}
	}
	t.rule("└", "┘")

	if !r.Result.PaperPriceFound {
		t.printf("\n  ! no price for paper %s; print cost counted as zero\n", displayID(r.Record.PaperTypeID))
	}
	return t.err
}

type table struct {
	w   io.Writer
	err error
}

func (t *table) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *table) rule(left, right string) {
	t.printf("%s%s%s\n", left, strings.Repeat("─", tableWidth), right)
}

func (t *table) title(s string) {
	t.printf("│ %-*s │\n", tableWidth-2, truncate(s, tableWidth-2))
}

func (t *table) row(label, a, b string) {
	t.printf("│ %-43s %13s %13s │\n", truncate(label, 43), a, b)
}

func money(m types.Money) string {
	return m.StringFixed(2)
}

func displayID(id string) string {
	if id == "" {
		return "(none)"
	}
	return id
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
