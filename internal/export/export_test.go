package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costcorrect/costcorrect/internal/boq"
)

func sampleResult(prices bool) *boq.Result {
	return boq.Calculate(boq.CalcInput{
		Filename:       "seapoint-villa.pdf",
		Scale:          "1:100",
		Walls230M:      24,
		Walls110M:      12,
		EstimatePrices: prices,
	})
}

func TestFreeTierIsInert(t *testing.T) {
	dir := t.TempDir()

	path, err := Write("free", sampleResult(false), dir)
	assert.ErrorIs(t, err, ErrUpgradeRequired)
	assert.Empty(t, path)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no document may be produced for free tier")
}

func TestPaidTierWritesTitledDocument(t *testing.T) {
	dir := t.TempDir()

	path, err := Write("pro", sampleResult(false), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "seapoint-villa-boq.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "<title>seapoint-villa — Bill of Quantities</title>")
	assert.Contains(t, html, "seapoint-villa.pdf")
	assert.NotContains(t, html, "Estimated cost", "no cost column without pricing")
}

func TestExportIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	r := sampleResult(true)

	first, err := Write("pro", r, dir)
	require.NoError(t, err)
	firstData, err := os.ReadFile(first)
	require.NoError(t, err)

	second, err := Write("pro", r, dir)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstData, secondData)
}

func TestRenderIncludesCostsWhenPresent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, sampleResult(true)))

	html := buf.String()
	assert.Contains(t, html, "Estimated cost")
	assert.Contains(t, html, "Total estimated cost")
}

func TestRenderShowsNAForMissingLineCost(t *testing.T) {
	r := sampleResult(true)
	r.Materials[3].EstimatedCost = nil // sand line loses its cost

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r))
	assert.Contains(t, buf.String(), ">N/A<")
}

func TestDocumentTitle(t *testing.T) {
	assert.Equal(t, "house — Bill of Quantities", DocumentTitle("house.pdf"))
	assert.Equal(t, "plan — Bill of Quantities", DocumentTitle(""))
}
