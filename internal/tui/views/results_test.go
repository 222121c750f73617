package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/costcorrect/costcorrect/internal/boq"
)

func sample(withCosts bool) *boq.Result {
	r := boq.Calculate(boq.CalcInput{
		Filename:       "seapoint-villa.pdf",
		Scale:          "1:100",
		Walls230M:      24.5,
		Walls110M:      18.2,
		WallHeightM:    2.7,
		Floors:         1,
		EstimatePrices: withCosts,
		ConfidenceNote: "Scale read from the title block.",
	})
	return r
}

func TestResultsRendersQuantitiesAndNote(t *testing.T) {
	out := Results(sample(false), "")

	assert.Contains(t, out, "Bill of Quantities")
	assert.Contains(t, out, "seapoint-villa.pdf")
	assert.Contains(t, out, "Scale read from the title block.")
	assert.NotContains(t, out, "Estimated cost")
}

func TestResultsRendersCostColumnWhenPriced(t *testing.T) {
	out := Results(sample(true), "")

	assert.Contains(t, out, "Estimated cost")
	assert.Contains(t, out, "Total estimated cost")
	assert.Contains(t, out, "R")
}

func TestResultsShowsNotice(t *testing.T) {
	out := Results(sample(false), "Exported to /tmp/seapoint-villa-boq.html")

	assert.Contains(t, out, "Exported to /tmp/seapoint-villa-boq.html")
}
