// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// CHAT WIDGET STYLES
// =============================================================================

// Header is the widget title bar.
var Header = lipgloss.NewStyle().
	Bold(true).
	Foreground(Ocean).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(Overlay).
	Padding(0, 1)

// UserBubble wraps a user message.
var UserBubble = lipgloss.NewStyle().
	Foreground(UserBubbleFg).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(UserBubbleBorder).
	Padding(0, 1)

// BotBubble wraps a bot message.
var BotBubble = lipgloss.NewStyle().
	Foreground(BotBubbleFg).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(BotBubbleBorder).
	Padding(0, 1)

// ErrorBubble wraps a failure message.
var ErrorBubble = lipgloss.NewStyle().
	Foreground(ErrorBubbleFg).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(ErrorBubbleBorder).
	Padding(0, 1)

// SenderLabel tags a bubble with who wrote it.
var SenderLabel = lipgloss.NewStyle().
	Bold(true).
	Foreground(TextSecondary)

// StatusLine renders the loading/progress footer text.
var StatusLine = lipgloss.NewStyle().
	Foreground(TextMuted).
	Italic(true)

// ProgressLine renders model download status.
var ProgressLine = lipgloss.NewStyle().
	Foreground(Amber)

// InputBox frames the text input.
var InputBox = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderTop(true).
	BorderForeground(Overlay).
	Padding(0, 1)

// Launcher is the minimized widget hint.
var Launcher = lipgloss.NewStyle().
	Bold(true).
	Foreground(Ocean).
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(Ocean).
	Padding(0, 2)

// Degraded renders the unavailable notice.
var Degraded = lipgloss.NewStyle().
	Foreground(Rose).
	Bold(true)

// Help renders the key hint footer.
var Help = lipgloss.NewStyle().
	Foreground(TextMuted)
