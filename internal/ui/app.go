package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/brief/internal/render"
)

// App is the root Bubble Tea model for the brief viewer.
// IMPORTANT: App holds no engine or store handles. It receives documents
// via messages from injected command funcs.
type App struct {
	generate func(style render.Style) tea.Cmd
	save     func(doc render.Document, raw []byte) tea.Cmd

	style   render.Style
	doc     render.Document
	raw     []byte
	urgency string

	vp      viewport.Model
	spin    spinner.Model
	err     error
	width   int
	height  int
	ready   bool
	loading bool
	status  string
}

// NewApp creates a new App with the given command functions.
// generate: returns a Cmd that runs the engine for a style
// save: returns a Cmd that persists the current document (nil to disable)
func NewApp(generate func(render.Style) tea.Cmd, save func(render.Document, []byte) tea.Cmd) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return App{
		generate: generate,
		save:     save,
		style:    render.StyleMissionBrief,
		spin:     sp,
	}
}

// Init starts by generating the default style.
func (a App) Init() tea.Cmd {
	a.loading = true
	return tea.Batch(a.spin.Tick, a.generate(a.style))
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Header, tab row, status bar
		a.vp = viewport.New(msg.Width, msg.Height-3)
		a.vp.SetContent(string(a.raw))
		a.ready = true
		return a, nil

	case BriefLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.style = msg.Style
		a.doc = msg.Doc
		a.raw = msg.JSON
		a.urgency = msg.Urgency
		if a.ready {
			a.vp.SetContent(string(a.raw))
			a.vp.GotoTop()
		}
		return a, nil

	case BriefSaved:
		if msg.Err != nil {
			a.err = msg.Err
		} else {
			a.status = "saved to history"
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear any existing error on key press
	if a.err != nil {
		a.err = nil
	}
	a.status = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		return a.switchStyle(render.Styles[idx])

	case "tab":
		for i, s := range render.Styles {
			if s == a.style {
				return a.switchStyle(render.Styles[(i+1)%len(render.Styles)])
			}
		}
		return a, nil

	case "r":
		a.loading = true
		return a, tea.Batch(a.spin.Tick, a.generate(a.style))

	case "s":
		if a.save != nil && a.doc != nil {
			return a, a.save(a.doc, a.raw)
		}
		return a, nil

	case "j", "down":
		a.vp.ScrollDown(1)
		return a, nil

	case "k", "up":
		a.vp.ScrollUp(1)
		return a, nil

	case "g", "home":
		a.vp.GotoTop()
		return a, nil

	case "G", "end":
		a.vp.GotoBottom()
		return a, nil
	}

	return a, nil
}

func (a App) switchStyle(style render.Style) (tea.Model, tea.Cmd) {
	if style == a.style {
		return a, nil
	}
	a.style = style
	a.loading = true
	return a, tea.Batch(a.spin.Tick, a.generate(style))
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	subject, _ := render.Headline(a.doc)
	header := Header.Width(a.width).Render(subject)

	tabs := make([]string, 0, len(render.Styles)+1)
	for _, s := range render.Styles {
		tabs = append(tabs, StyleTab(string(s), s == a.style))
	}
	if a.urgency != "" {
		tabs = append(tabs, UrgencyBadge(a.urgency))
	}
	tabRow := strings.Join(tabs, " ")

	body := a.vp.View()
	if a.loading {
		body = a.spin.View() + " generating..."
	}

	status := a.statusLine()
	return header + "\n" + tabRow + "\n" + body + "\n" + status
}

func (a App) statusLine() string {
	if a.err != nil {
		return ErrorStyle.Width(a.width).Render("Error: " + a.err.Error())
	}
	line := fmt.Sprintf("[%s] 1-4/tab: style  r: regenerate  s: save  q: quit", a.style)
	if a.status != "" {
		line += "  (" + a.status + ")"
	}
	return StatusBar.Width(a.width).Render(line)
}

// Style returns the active style (for testing).
func (a App) Style() render.Style { return a.style }
