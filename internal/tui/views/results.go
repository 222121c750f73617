package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/format"
	"github.com/costcorrect/costcorrect/internal/tui"
)

// Results renders a received bill of quantities: metadata chips, the
// materials table, and the confidence note. notice carries transient
// feedback such as an export confirmation or refusal.
func Results(r *boq.Result, notice string) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Bill of Quantities"))
	b.WriteString("\n\n")
	b.WriteString(chips(r))
	b.WriteString("\n\n")
	b.WriteString(materialsTable(r))

	if r.ConfidenceNote != "" {
		b.WriteString("\n\n")
		b.WriteString(tui.DimStyle.Render("AI note: " + r.ConfidenceNote))
	}

	if notice != "" {
		b.WriteString("\n\n")
		b.WriteString(tui.SuccessStyle.Render(notice))
	}

	b.WriteString("\n\n")
	keys := tui.DefaultKeyMap
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("%s export document · %s new plan · %s toggle theme · %s exit",
		keys.Export.Help().Key, keys.Reset.Help().Key, keys.Theme.Help().Key, keys.Quit.Help().Key)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func chips(r *boq.Result) string {
	chip := func(label, value string) string {
		return tui.ChipLabelStyle.Render(label+" ") + tui.ChipValueStyle.Render(value)
	}

	line1 := strings.Join([]string{
		chip("plan", r.Filename),
		chip("scale", r.Scale),
		chip("wall height", format.Quantity(r.WallHeightM)+" m"),
		chip("wastage", format.Quantity(r.WastagePercent)+"%"),
	}, "   ")
	line2 := strings.Join([]string{
		chip("230 mm walls", format.Quantity(r.Walls230LinearM)+" m"),
		chip("110 mm walls", format.Quantity(r.Walls110LinearM)+" m"),
		chip("bricks", format.Quantity(float64(r.TotalBricks))),
		chip("cement", format.Quantity(r.CementBags)+" bags"),
		chip("sand", format.Quantity(r.SandCubes)+" m³"),
	}, "   ")

	return line1 + "\n" + line2
}

func materialsTable(r *boq.Result) string {
	rows := format.Rows(r)
	withCosts := format.HasCosts(r)

	itemW, qtyW, costW := len("Material"), len("Quantity"), len("Estimated cost")
	for _, row := range rows {
		label := row.Icon + " " + row.Item
		itemW = max(itemW, lipgloss.Width(label))
		qtyW = max(qtyW, lipgloss.Width(row.Quantity))
		costW = max(costW, lipgloss.Width(row.Cost))
	}

	var b strings.Builder
	header := pad("Material", itemW) + "  " + rpad("Quantity", qtyW)
	if withCosts {
		header += "  " + rpad("Estimated cost", costW)
	}
	b.WriteString(tui.TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for _, row := range rows {
		line := pad(row.Icon+" "+row.Item, itemW) + "  " + rpad(row.Quantity, qtyW)
		if withCosts {
			line += "  " + rpad(row.Cost, costW)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if withCosts {
		total := pad("Total estimated cost", itemW+qtyW+2) + "  " + rpad(format.TotalCost(r), costW)
		b.WriteString(tui.TableHeaderStyle.Render(total))
	}

	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(w-lipgloss.Width(s), 0))
}

func rpad(s string, w int) string {
	return strings.Repeat(" ", max(w-lipgloss.Width(s), 0)) + s
}
