// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pokecruise/cruisebot/internal/assistant"
	"github.com/pokecruise/cruisebot/internal/ui/styles"
	"github.com/pokecruise/cruisebot/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the widget: a launcher hint while minimized, the full
// chat window while open.
func (m Model) View() string {
	snap := m.ctrl.State()

	if !snap.Open {
		return "\n" + styles.Launcher.Render("Cruisebot  [tab] to chat") +
			"\n" + styles.Help.Render("tab: open assistant | esc: quit") + "\n"
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render("Cruisebot - Pokemon Cruise Assistant"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusView(snap))
	b.WriteString("\n")
	b.WriteString(styles.InputBox.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(styles.Help.Render("enter: send | tab: minimize | ctrl+e: export | esc: quit"))
	return b.String()
}

// statusView renders the footer line: download progress, the loading
// spinner, a transient notice, or nothing.
func (m Model) statusView(snap assistant.Snapshot) string {
	switch {
	case !snap.Available:
		return styles.Degraded.Render("Assistant unavailable on this system")
	case snap.Progress != "":
		return styles.ProgressLine.Render(m.spinner.View() + " " + snap.Progress)
	case snap.Loading:
		return styles.StatusLine.Render(m.spinner.View() + " Cruisebot is thinking...")
	case m.notice != "":
		return styles.StatusLine.Render(util.TruncateWidth(m.notice, m.width))
	default:
		return ""
	}
}

// renderConversation lays out the message log as labeled bubbles.
func (m Model) renderConversation(snap assistant.Snapshot) string {
	if len(snap.Messages) == 0 {
		return styles.StatusLine.Render("Ask me about our Pokemon cruises!")
	}

	var parts []string
	for _, msg := range snap.Messages {
		parts = append(parts, m.renderMessage(msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderMessage renders one bubble. Bot messages go through the
// markdown renderer; failures get the error style.
func (m Model) renderMessage(msg assistant.ChatMessage) string {
	if msg.Sender == assistant.SenderUser {
		return styles.SenderLabel.Render("You") + "\n" +
			styles.UserBubble.Render(msg.Text)
	}

	text := msg.Text
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(text); err == nil {
			text = strings.TrimRight(rendered, "\n")
		}
	}

	bubble := styles.BotBubble
	if strings.HasPrefix(msg.Text, "Error:") {
		bubble = styles.ErrorBubble
	}
	return styles.SenderLabel.Render("Cruisebot") + "\n" + bubble.Render(text)
}
