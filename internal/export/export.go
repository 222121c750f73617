// Package export renders a received BOQ into a printable HTML document.
// The action is tier-gated: free-tier invocations produce nothing.
package export

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/format"
	"github.com/costcorrect/costcorrect/internal/workflow"
)

// ErrUpgradeRequired is surfaced synchronously when a free-tier user
// invokes export. No document is produced and no state changes.
var ErrUpgradeRequired = errors.New("Exporting documents is a Pro feature. Please upgrade your account.")

// DocumentTitle derives the printable document's title from the source
// filename, deterministically: the same plan always titles the same.
func DocumentTitle(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "plan"
	}
	return base + " — Bill of Quantities"
}

// documentName is the on-disk name for the exported document.
func documentName(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if base == "" {
		base = "plan"
	}
	return base + "-boq.html"
}

// Write exports the result for the given tier to dir, returning the path
// of the written document. Idempotent: re-exporting overwrites the same
// file with the same content.
func Write(tier string, r *boq.Result, dir string) (string, error) {
	if tier == workflow.FreeTier {
		return "", ErrUpgradeRequired
	}
	if r == nil {
		return "", fmt.Errorf("exporting: no result to export")
	}

	path := filepath.Join(dir, documentName(r.Filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("exporting: %w", err)
	}
	defer f.Close()

	if err := Render(f, r); err != nil {
		return "", err
	}
	return path, nil
}

// Render writes the printable document to w. Only the result content is
// included; action controls and chrome stay out of the document.
func Render(w io.Writer, r *boq.Result) error {
	data := templateData{
		Title:          DocumentTitle(r.Filename),
		Filename:       r.Filename,
		Scale:          r.Scale,
		WallHeight:     format.Quantity(r.WallHeightM) + " m",
		Walls230:       format.Quantity(r.Walls230LinearM) + " m",
		Walls110:       format.Quantity(r.Walls110LinearM) + " m",
		TotalBricks:    format.Quantity(float64(r.TotalBricks)),
		CementBags:     format.Quantity(r.CementBags),
		SandCubes:      format.Quantity(r.SandCubes),
		Wastage:        format.Quantity(r.WastagePercent) + "%",
		Rows:           format.Rows(r),
		HasCosts:       format.HasCosts(r),
		TotalCost:      format.TotalCost(r),
		ConfidenceNote: r.ConfidenceNote,
	}
	if err := documentTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	return nil
}

type templateData struct {
	Title          string
	Filename       string
	Scale          string
	WallHeight     string
	Walls230       string
	Walls110       string
	TotalBricks    string
	CementBags     string
	SandCubes      string
	Wastage        string
	Rows           []format.Row
	HasCosts       bool
	TotalCost      string
	ConfidenceNote string
}

var documentTmpl = template.Must(template.New("boq").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, serif; margin: 2rem auto; max-width: 48rem; color: #111; }
h1 { font-size: 1.4rem; border-bottom: 2px solid #111; padding-bottom: .4rem; }
dl { display: grid; grid-template-columns: max-content auto; gap: .2rem 1rem; }
dt { font-weight: bold; }
table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
th, td { text-align: left; padding: .4rem .6rem; border-bottom: 1px solid #ccc; }
td.num, th.num { text-align: right; }
tfoot td { font-weight: bold; border-top: 2px solid #111; }
.note { margin-top: 1rem; font-style: italic; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<dl>
<dt>Source plan</dt><dd>{{.Filename}}</dd>
<dt>Scale</dt><dd>{{.Scale}}</dd>
<dt>Wall height</dt><dd>{{.WallHeight}}</dd>
<dt>230 mm walls</dt><dd>{{.Walls230}}</dd>
<dt>110 mm walls</dt><dd>{{.Walls110}}</dd>
<dt>Total bricks</dt><dd>{{.TotalBricks}}</dd>
<dt>Cement</dt><dd>{{.CementBags}} bags</dd>
<dt>Sand</dt><dd>{{.SandCubes}} m³</dd>
<dt>Wastage</dt><dd>{{.Wastage}}</dd>
</dl>
<table>
<thead>
<tr><th>Material</th><th class="num">Quantity</th>{{if .HasCosts}}<th class="num">Estimated cost</th>{{end}}</tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Icon}} {{.Item}}</td><td class="num">{{.Quantity}}</td>{{if $.HasCosts}}<td class="num">{{.Cost}}</td>{{end}}</tr>
{{end}}</tbody>
{{if .HasCosts}}<tfoot><tr><td colspan="2">Total estimated cost</td><td class="num">{{.TotalCost}}</td></tr></tfoot>{{end}}
</table>
{{if .ConfidenceNote}}<p class="note">AI note: {{.ConfidenceNote}}</p>{{end}}
</body>
</html>
`))
