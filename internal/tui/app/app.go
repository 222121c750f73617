// Package app wires the TUI screens to the workflow controller.
package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/costcorrect/costcorrect/internal/client"
	"github.com/costcorrect/costcorrect/internal/config"
	"github.com/costcorrect/costcorrect/internal/export"
	applog "github.com/costcorrect/costcorrect/internal/log"
	"github.com/costcorrect/costcorrect/internal/theme"
	"github.com/costcorrect/costcorrect/internal/tui"
	"github.com/costcorrect/costcorrect/internal/tui/commands"
	"github.com/costcorrect/costcorrect/internal/tui/views"
	"github.com/costcorrect/costcorrect/internal/workflow"
)

// App is the root Bubble Tea model. All workflow mutations go through
// the controller; the app only translates messages into transitions.
type App struct {
	ctl    *workflow.Controller
	cfg    *config.Config
	client *client.Client
	themes *theme.Manager
	logger *applog.Logger

	keys    tui.KeyMap
	upload  views.Upload
	spinner spinner.Model

	// notice is transient feedback outside the workflow error slot:
	// export confirmations, rejected paths.
	notice string

	quitting bool
}

// New creates the root model. The tier starts as free and is corrected
// asynchronously once the service answers.
func New(cfg *config.Config, c *client.Client, tm *theme.Manager, logger *applog.Logger) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"})

	return App{
		ctl:     workflow.NewController(workflow.FreeTier),
		cfg:     cfg,
		client:  c,
		themes:  tm,
		logger:  logger,
		keys:    tui.DefaultKeyMap,
		upload:  views.NewUpload("."),
		spinner: sp,
	}
}

// Controller exposes the workflow state. Used by tests.
func (a App) Controller() *workflow.Controller { return a.ctl }

// Init starts the picker, the spinner, and the tier lookup.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.upload.Init(), a.spinner.Tick, commands.ResolveTier(a.cfg, a.client))
}

// Update routes messages to the controller and the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)

	case spinner.TickMsg:
		if a.ctl.Phase() != workflow.PhaseUploading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tui.FileSelectedMsg:
		if err := a.ctl.SelectFile(msg.File); err != nil {
			return a, nil
		}
		a.notice = ""
		return a, nil

	case tui.FileRejectedMsg:
		a.notice = msg.Err.Error()
		return a, nil

	case tui.TierResolvedMsg:
		a.ctl.SetTier(msg.Tier)
		return a, nil

	case tui.AnalysisCompleteMsg:
		if a.ctl.Complete(msg.RequestID, msg.Result) {
			a.log(applog.Event{
				Event:     applog.EventAnalysisComplete,
				RequestID: msg.RequestID,
				Filename:  msg.Result.Filename,
			})
		}
		return a, nil

	case tui.AnalysisFailedMsg:
		if a.ctl.Fail(msg.RequestID, msg.Err.Message) {
			a.log(applog.Event{
				Event:     applog.EventAnalysisFailed,
				RequestID: msg.RequestID,
				Cause:     msg.Err.Cause,
				Status:    msg.Err.Status,
				Error:     msg.Err.Message,
			})
		}
		return a, nil

	case tui.ExportDoneMsg:
		a.notice = "Exported to " + msg.Path
		a.log(applog.Event{Event: applog.EventExported, Document: msg.Path, Tier: a.ctl.Tier()})
		return a, nil

	case tui.ExportFailedMsg:
		a.notice = msg.Err.Error()
		if errors.Is(msg.Err, export.ErrUpgradeRequired) {
			a.log(applog.Event{Event: applog.EventExportBlocked, Tier: a.ctl.Tier()})
		}
		return a, nil
	}

	return a.routeToScreen(msg)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always exits; the rest of the global bindings yield to the
	// path field while it has focus.
	if msg.String() == tui.KeyCtrlC {
		a.quitting = true
		return a, tea.Quit
	}
	typing := a.ctl.Phase() != workflow.PhaseUploading && a.ctl.Phase() != workflow.PhaseDone && a.upload.Typing()

	if !typing {
		switch {
		case key.Matches(msg, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit

		case key.Matches(msg, a.keys.Theme):
			mode := a.themes.Toggle()
			a.log(applog.Event{Event: applog.EventThemeToggled, Theme: string(mode)})
			return a, nil
		}
	}

	switch a.ctl.Phase() {
	case workflow.PhaseUploading:
		// Inputs are frozen while a request is in flight.
		return a, nil

	case workflow.PhaseDone:
		return a.handleResultsKey(msg)

	default:
		return a.handleUploadKey(msg, typing)
	}
}

func (a App) handleUploadKey(msg tea.KeyMsg, typing bool) (tea.Model, tea.Cmd) {
	if !typing {
		switch {
		case key.Matches(msg, a.keys.Analyse):
			return a.submit()

		case key.Matches(msg, a.keys.Floors):
			p := a.ctl.Params()
			next := p.Floors%4 + 1
			_ = a.ctl.SetFloors(next)
			return a, nil

		case key.Matches(msg, a.keys.Prices):
			_ = a.ctl.SetEstimatePrices(!a.ctl.Params().EstimatePrices)
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.upload, cmd = a.upload.Update(msg)
	return a, cmd
}

func (a App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Export):
		a.notice = ""
		return a, commands.Export(a.ctl.Tier(), a.ctl.Result(), a.cfg.Export.Dir)

	case key.Matches(msg, a.keys.Reset):
		a.ctl.Reset()
		a.notice = ""
		return a, nil
	}
	return a, nil
}

func (a App) submit() (tea.Model, tea.Cmd) {
	req, err := a.ctl.Submit()
	if err != nil {
		return a, nil
	}
	a.log(applog.Event{
		Event:     applog.EventAnalysisStarted,
		RequestID: req.ID,
		Filename:  req.File.Name,
		Floors:    req.Params.Floors,
		Tier:      a.ctl.Tier(),
	})
	return a, tea.Batch(a.spinner.Tick, commands.Analyse(a.client, req))
}

func (a App) routeToScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.upload, cmd = a.upload.Update(msg)
	return a, cmd
}

// View renders the screen for the current phase.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.ctl.Phase() {
	case workflow.PhaseUploading:
		name := ""
		if f := a.ctl.File(); f != nil {
			name = f.Name
		}
		body := fmt.Sprintf("%s Analysing %s…\n\n%s",
			a.spinner.View(), name,
			tui.DimStyle.Render("This can take a moment. ctrl+c to exit."))
		return lipgloss.NewStyle().Padding(1, 2).Render(tui.BoxStyle.Render(body))

	case workflow.PhaseDone:
		return views.Results(a.ctl.Result(), a.notice)

	default:
		return a.upload.View(a.ctl, a.notice)
	}
}

func (a App) log(e applog.Event) {
	if a.logger != nil {
		_ = a.logger.Append(e)
	}
}
