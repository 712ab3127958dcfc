package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"cargo-market/core/engine"
)

const (
	boxTop    = "┌─────────────────────────────────────────────────────────────────────────┐"
	boxRule   = "├─────────────────────────────────────────────────────────────────────────┤"
	boxBottom = "└─────────────────────────────────────────────────────────────────────────┘"
	boxInner  = 71
)

// TextFormatter renders a boxed summary table
type TextFormatter struct {
	opts Options
}

// Format implements Formatter
func (f *TextFormatter) Format() Format {
	return FormatText
}

// Render implements Formatter
func (f *TextFormatter) Render(w io.Writer, result *engine.PipelineResult) error {
	p := &printer{w: w}
	s := result.Settlement

	p.line(boxTop)
	p.centered("CARGO OFFERS")
	p.line(boxRule)
	p.row(s.Name, strings.ToUpper(s.Season.String()))
	p.row(fmt.Sprintf("%s, %s", s.SizeDescription, orDash(s.Region)), "pop. "+humanize.Comma(int64(s.Population)))
	p.row(fmt.Sprintf("Wealth %d (%s)", s.WealthRating, orDash(s.WealthDescription)), fmt.Sprintf("%d slots", result.SlotPlan.TotalSlots))
	if len(result.Flags.Modifiers) > 0 {
		names := make([]string, len(result.Flags.Modifiers))
		for i, m := range result.Flags.Modifiers {
			names[i] = m.Flag
		}
		p.row("Flags: "+strings.Join(names, ", "), "")
	}
	p.line(boxRule)

	shown := 0
	for _, slot := range result.Slots {
		if !slot.Available() && !f.opts.ShowUnavailable {
			continue
		}
		shown++
		f.renderSlot(p, slot)
	}
	if shown == 0 {
		p.row("No merchants are selling", "")
	}

	p.line(boxRule)
	p.row("TOTAL OFFERED VALUE", result.TotalValue().StringFixed(2))
	p.line(boxBottom)

	if result.Metadata.Seed != nil {
		p.printf("\nSeed: %d\n", *result.Metadata.Seed)
	}
	return p.err
}

func (f *TextFormatter) renderSlot(p *printer, slot engine.SlotResult) {
	label := fmt.Sprintf("#%d %s (%s)", slot.SlotNumber, slot.Cargo.Name, slot.EffectiveQuality())
	if slot.Contraband.Contraband {
		label += " [contraband]"
	}
	value := fmt.Sprintf("%s EP @ %s", humanize.Comma(int64(slot.Pricing.Quantity)), slot.Pricing.FinalPricePerEP.StringFixed(2))
	p.row(label, value)

	switch {
	case slot.Desperation.Success:
		p.detail("desperate seller, "+string(slot.Balance.State)+" market", slot.Pricing.TotalValue.StringFixed(2))
	case slot.Merchant.Available:
		p.detail("merchant, "+string(slot.Balance.State)+" market", slot.Pricing.TotalValue.StringFixed(2))
	default:
		p.detail(fmt.Sprintf("no seller (rolled %d vs %.0f)", slot.Merchant.Roll, slot.Merchant.TargetChance), "-")
	}

	if !f.opts.ShowHistory {
		return
	}
	p.detail(fmt.Sprintf("supply %d / demand %d", slot.Balance.Supply, slot.Balance.Demand), "")
	for _, t := range slot.Balance.History {
		p.detail(fmt.Sprintf("  %s %s %+.0f%%", t.Label, t.Direction, t.Percentage*100), fmt.Sprintf("%d/%d", t.After.Supply, t.After.Demand))
	}
	for _, step := range slot.Pricing.Steps {
		p.detail("  "+step.Label, step.Value.StringFixed(4))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printer remembers the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(s string) {
	p.printf("%s\n", s)
}

func (p *printer) centered(s string) {
	pad := (boxInner - len([]rune(s))) / 2
	p.printf("│ %-*s │\n", boxInner, strings.Repeat(" ", pad)+s)
}

func (p *printer) row(left, right string) {
	p.printf("│ %-50s %20s │\n", truncate(left, 50), truncate(right, 20))
}

func (p *printer) detail(left, right string) {
	p.printf("│   └─ %-45s %20s │\n", truncate(left, 45), truncate(right, 20))
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
