// Package views contains the screens of the CostCorrect TUI.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/costcorrect/costcorrect/internal/intake"
	"github.com/costcorrect/costcorrect/internal/tui"
	"github.com/costcorrect/costcorrect/internal/tui/commands"
	"github.com/costcorrect/costcorrect/internal/workflow"
)

// Upload is the plan-selection screen: a file picker, plus a free-form
// path field for plans outside the browsed tree.
type Upload struct {
	keys      tui.KeyMap
	picker    filepicker.Model
	pathInput textinput.Model
	typing    bool
	width     int
	height    int
}

// NewUpload creates the upload screen rooted at dir.
func NewUpload(dir string) Upload {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = intake.AcceptedExtensions
	fp.DirAllowed = false
	fp.FileAllowed = true

	ti := textinput.New()
	ti.Placeholder = "path to a floor plan (.pdf .png .jpg .jpeg)"
	ti.CharLimit = 512

	return Upload{
		keys:      tui.DefaultKeyMap,
		picker:    fp,
		pathInput: ti,
	}
}

// Init starts the file picker's directory read.
func (u Upload) Init() tea.Cmd {
	return u.picker.Init()
}

// Typing reports whether the free-form path field has focus, in which
// case printable keys belong to it rather than to global bindings.
func (u Upload) Typing() bool { return u.typing }

// Update handles picker and path-field input. File choices are staged
// asynchronously and come back as FileSelectedMsg or FileRejectedMsg.
func (u Upload) Update(msg tea.Msg) (Upload, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		u.width = m.Width
		u.height = m.Height
		u.picker.Height = max(m.Height-14, 5)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, u.keys.Tab):
			u.typing = !u.typing
			if u.typing {
				u.pathInput.Focus()
			} else {
				u.pathInput.Blur()
			}
			return u, nil
		case u.typing && key.Matches(keyMsg, u.keys.Enter):
			path := strings.TrimSpace(u.pathInput.Value())
			if path == "" {
				return u, nil
			}
			return u, commands.SelectFile(path)
		case u.typing && key.Matches(keyMsg, u.keys.Escape):
			u.typing = false
			u.pathInput.Blur()
			return u, nil
		}
	}

	if u.typing {
		var cmd tea.Cmd
		u.pathInput, cmd = u.pathInput.Update(msg)
		return u, cmd
	}

	var cmd tea.Cmd
	u.picker, cmd = u.picker.Update(msg)
	if ok, path := u.picker.DidSelectFile(msg); ok {
		return u, tea.Batch(cmd, commands.SelectFile(path))
	}
	return u, cmd
}

// View renders the screen against the controller's current state.
// notice carries transient feedback, e.g. a rejected path.
func (u Upload) View(ctl *workflow.Controller, notice string) string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("CostCorrect — floor plan analysis"))
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("tier: %s", ctl.Tier())))
	b.WriteString("\n\n")

	if ctl.Phase() == workflow.PhaseError && ctl.ErrorMessage() != "" {
		b.WriteString(tui.ErrorBannerStyle.Render(ctl.ErrorMessage()))
		b.WriteString("\n\n")
	}
	if notice != "" {
		b.WriteString(tui.ErrorStyle.Render(notice))
		b.WriteString("\n\n")
	}

	if f := ctl.File(); f != nil {
		b.WriteString(tui.SuccessStyle.Render(fmt.Sprintf("Selected: %s (%s)", f.Name, intake.FormatSize(f.Size))))
		if !f.Accepted() {
			b.WriteString(" " + tui.DimStyle.Render("(unrecognised type; the service may reject it)"))
		}
		b.WriteString("\n\n")
	}

	if u.typing {
		b.WriteString(u.pathInput.View())
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render("enter to stage · esc to go back to the picker"))
	} else {
		b.WriteString(u.picker.View())
	}
	b.WriteString("\n\n")

	b.WriteString(u.paramsView(ctl))
	b.WriteString("\n\n")
	b.WriteString(u.helpView(ctl))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (u Upload) paramsView(ctl *workflow.Controller) string {
	p := ctl.Params()
	prices := "off"
	if p.EstimatePrices {
		prices = "on"
	}
	line := fmt.Sprintf("floors: %d   price estimate: %s", p.Floors, prices)
	if !ctl.CanConfigure() {
		if ctl.Tier() == workflow.FreeTier {
			line += "   " + tui.DimStyle.Render("(Pro features)")
		}
		return tui.DimStyle.Render(line)
	}
	return line
}

func (u Upload) helpView(ctl *workflow.Controller) string {
	entries := []key.Binding{u.keys.Tab}
	if ctl.CanSubmit() {
		entries = append(entries, u.keys.Analyse)
	}
	if ctl.CanConfigure() {
		entries = append(entries, u.keys.Floors, u.keys.Prices)
	}
	entries = append(entries, u.keys.Theme, u.keys.Quit)

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		h := e.Help()
		parts = append(parts, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	return tui.DimStyle.Render(strings.Join(parts, " · "))
}
