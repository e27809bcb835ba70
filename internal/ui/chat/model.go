// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the Bubble Tea widget for the booking
// assistant: a toggleable chat window with streamed bot responses
// rendered as markdown.
package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/pokecruise/cruisebot/internal/assistant"
	"github.com/pokecruise/cruisebot/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat widget state.
type Model struct {
	ctrl *assistant.Controller

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	width    int
	height   int
	ready    bool
	wordWrap int

	// notice is a transient footer line (rate limit hint).
	notice string
}

// New creates the widget around an initialized controller.
func New(ctrl *assistant.Controller, wordWrap int) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about cruises..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(styles.Ocean)

	term := styles.DetectTerminal()
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(term.GlamourStyle()),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		renderer = nil
	}

	return Model{
		ctrl:     ctrl,
		input:    ti,
		spinner:  sp,
		renderer: renderer,
		wordWrap: wordWrap,
	}
}

// Init starts the blink, the spinner and the change subscription.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, waitForChange(m.ctrl))
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab:
			m.ctrl.Toggle()
			return m, waitForChange(m.ctrl)

		case tea.KeyCtrlE:
			return m, exportTranscript(m.ctrl.State())

		case tea.KeyEnter:
			m.notice = ""
			text := m.input.Value()
			if err := m.ctrl.SendMessage(text); err != nil {
				if errors.Is(err, assistant.ErrRateLimited) {
					m.notice = "One moment - you're sending messages too quickly."
				} else {
					m.notice = err.Error()
				}
				return m, nil
			}
			m.input.Reset()
			m.refreshViewport()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutViewport()
		m.refreshViewport()

	case stateChangedMsg:
		m.refreshViewport()
		cmds = append(cmds, waitForChange(m.ctrl))

	case exportDoneMsg:
		if msg.err != nil {
			m.notice = "Export failed: " + msg.err.Error()
		} else {
			m.notice = "Transcript saved to " + msg.path
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// layoutViewport sizes the conversation area within the window,
// leaving room for the header, status line and input box.
func (m *Model) layoutViewport() {
	const chromeLines = 6
	h := m.height - chromeLines
	if h < 3 {
		h = 3
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, h)
		m.ready = true
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
}

// refreshViewport re-renders the conversation and follows the tail.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderConversation(m.ctrl.State()))
	m.viewport.GotoBottom()
}
