// Package commands contains the asynchronous operations the TUI runs
// off the update loop.
package commands

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/costcorrect/costcorrect/internal/boq"
	"github.com/costcorrect/costcorrect/internal/client"
	"github.com/costcorrect/costcorrect/internal/config"
	"github.com/costcorrect/costcorrect/internal/export"
	"github.com/costcorrect/costcorrect/internal/intake"
	"github.com/costcorrect/costcorrect/internal/tier"
	"github.com/costcorrect/costcorrect/internal/tui"
	"github.com/costcorrect/costcorrect/internal/workflow"
)

// resolveTimeout bounds the startup tier lookup so a dead service does
// not stall the interface.
const resolveTimeout = 5 * time.Second

// SelectFile stages the file at path for analysis.
func SelectFile(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := intake.Select(path)
		if err != nil {
			return tui.FileRejectedMsg{Err: err}
		}
		return tui.FileSelectedMsg{File: f}
	}
}

// Analyse uploads the request's file to the analysis service and
// reports the outcome keyed by the request ID.
func Analyse(c *client.Client, req workflow.Request) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Analyse(context.Background(), req.File, req.Params)
		if err != nil {
			var cerr *client.Error
			if !errors.As(err, &cerr) {
				cerr = &client.Error{Cause: client.CauseTransport, Message: err.Error()}
			}
			return tui.AnalysisFailedMsg{RequestID: req.ID, Err: cerr}
		}
		return tui.AnalysisCompleteMsg{RequestID: req.ID, Result: result}
	}
}

// ResolveTier determines the account tier from config override or the
// service's /api/me endpoint.
func ResolveTier(cfg *config.Config, c *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		defer cancel()
		return tui.TierResolvedMsg{Tier: tier.Resolve(ctx, cfg, c)}
	}
}

// Export writes the analysis result as a print-ready document.
func Export(tierName string, r *boq.Result, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Write(tierName, r, dir)
		if err != nil {
			return tui.ExportFailedMsg{Err: err}
		}
		return tui.ExportDoneMsg{Path: path}
	}
}
