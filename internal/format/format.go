// Package format turns a raw BOQ payload into display-ready values:
// locale-grouped quantities, Rand currency, and per-item glyphs.
// Pure transformation; no network or storage access.
package format

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/costcorrect/costcorrect/internal/boq"
)

// NotAvailable marks a missing per-line cost. Never rendered as 0 or blank.
const NotAvailable = "N/A"

// printer is pinned to a fixed locale so output is identical on every
// host, matching the original's en-ZA toLocaleString rendering.
var printer = message.NewPrinter(language.English)

// Quantity renders a number with grouping and at most two fraction digits.
func Quantity(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// Rand renders a monetary amount in Rand with exactly two fraction digits.
func Rand(v float64) string {
	return "R" + printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// icon table: ordered keyword → glyph pairs; first case-insensitive
// substring match wins.
var icons = []struct {
	keyword string
	glyph   string
}{
	{"brick", "🧱"},
	{"cement", "🏗️"},
	{"sand", "⏳"},
}

// DefaultIcon is used for items matching no keyword.
const DefaultIcon = "📦"

// Icon resolves an item name to its display glyph. Total and
// deterministic: every name resolves to something.
func Icon(item string) string {
	lower := strings.ToLower(item)
	for _, entry := range icons {
		if strings.Contains(lower, entry.keyword) {
			return entry.glyph
		}
	}
	return DefaultIcon
}

// Row is one display-ready materials line.
type Row struct {
	Icon     string
	Item     string
	Quantity string // quantity plus unit, e.g. "3,089 bricks"
	Cost     string // empty when the result carries no costs at all
}

// HasCosts reports whether the result carries a total estimated cost,
// which is what decides whether a cost column is rendered.
func HasCosts(r *boq.Result) bool {
	return r.TotalEstimatedCost != nil
}

// Rows converts the materials table into display rows. When the result
// carries a total cost, lines missing their own cost get the explicit
// not-available marker.
func Rows(r *boq.Result) []Row {
	rows := make([]Row, 0, len(r.Materials))
	withCosts := HasCosts(r)
	for _, m := range r.Materials {
		row := Row{
			Icon:     Icon(m.Item),
			Item:     m.Item,
			Quantity: Quantity(m.Quantity) + " " + m.Unit,
		}
		if withCosts {
			if m.EstimatedCost != nil {
				row.Cost = Rand(*m.EstimatedCost)
			} else {
				row.Cost = NotAvailable
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// TotalCost renders the result's total estimated cost, or "" when absent.
func TotalCost(r *boq.Result) string {
	if r.TotalEstimatedCost == nil {
		return ""
	}
	return Rand(*r.TotalEstimatedCost)
}
