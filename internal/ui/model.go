// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fdick/Console/internal/config"
	"github.com/fdick/Console/internal/console"
	"github.com/fdick/Console/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a config re-read from disk. Limits that the
// session and screen can change live are applied; history capacity is fixed
// for the lifetime of the session.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// MODEL
// =============================================================================

// Options configures a Model.
type Options struct {
	Session *console.Session
	Screen  *Screen
	Theme   *styles.Theme
	Config  *config.Config

	// Title is shown in the header
	Title string

	// Done is polled after each submit; returning true quits the program
	Done func() bool
}

// Model is the Bubble Tea model for the console. It translates key presses
// into session events and renders the Screen the session writes into.
type Model struct {
	session *console.Session
	screen  *Screen
	theme   *styles.Theme
	keys    KeyMap
	title   string
	done    func() bool

	input    textinput.Model
	viewport viewport.Model

	width  int
	height int

	hidden       bool
	lastRevision int
}

// New creates a console model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(cfg.UI)
	}
	title := opts.Title
	if title == "" {
		title = "devconsole"
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a command, or <command>? for help"
	ti.CharLimit = cfg.Console.MaxInputLength
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Focus()

	vp := viewport.New(80, 20)

	m := Model{
		session:      opts.Session,
		screen:       opts.Screen,
		theme:        theme,
		keys:         DefaultKeyMap(),
		title:        title,
		done:         opts.Done,
		input:        ti,
		viewport:     vp,
		width:        80,
		height:       24,
		lastRevision: -1,
	}
	m.screen.SetCapacity(cfg.Console.TranscriptCapacity)
	m.sync()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ConfigReloadedMsg:
		if msg.Config != nil {
			m.applyConfig(msg.Config)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		var cmds []tea.Cmd
		if !m.hidden {
			var inputCmd tea.Cmd
			m.input, inputCmd = m.input.Update(msg)
			cmds = append(cmds, inputCmd)
		}
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
		return m, tea.Batch(cmds...)
	}
}

// View renders the console.
func (m Model) View() string {
	return m.render()
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.hidden = !m.hidden
		if m.hidden {
			m.input.Blur()
			return m, nil
		}
		return m, m.input.Focus()
	}

	// Hidden consoles swallow input.
	if m.hidden {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		m.session.Submit()
		m.sync()
		if m.done != nil && m.done() {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		m.session.CompleteRequest()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.HistoryPrev):
		m.session.HistoryPrev()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.PredictionNext):
		m.session.PredictionNext()
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.session.InputChanged(after)
		m.sync()
	}
	return m, cmd
}

// =============================================================================
// STATE SYNC
// =============================================================================

// sync copies what the session wrote into the screen onto the widgets.
func (m *Model) sync() {
	if text, ok := m.screen.TakeEdit(); ok {
		m.input.SetValue(text)
		m.input.CursorEnd()
	}
	if m.screen.TakeFocus() && !m.hidden {
		m.input.Focus()
	}
	if rev := m.screen.Revision(); rev != m.lastRevision {
		m.lastRevision = rev
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
	}
	m.layout()
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.input.CharLimit = cfg.Console.MaxInputLength
	m.screen.SetCapacity(cfg.Console.TranscriptCapacity)
	m.session.SetMaxPredictions(cfg.Console.MaxPredictions)
	m.lastRevision = -1
	m.sync()
}

// layout sizes the transcript to the space left by the fixed rows and the
// prediction list.
func (m *Model) layout() {
	const (
		headerHeight    = 1
		inputAreaHeight = 2 // separator + input line
		statusBarHeight = 1
	)

	reserved := headerHeight + inputAreaHeight + statusBarHeight
	if n := len(m.screen.Predictions()); n > 0 {
		reserved += n + 2 // rounded border
	}

	h := m.height - reserved
	if h < 1 {
		h = 1
	}
	w := m.width
	if w < 1 {
		w = 1
	}
	m.viewport.Width = w
	m.viewport.Height = h

	const promptLen = 2
	inputWidth := m.width - 4 - promptLen
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth
}
