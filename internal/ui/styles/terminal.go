// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/muesli/termenv"

// =============================================================================
// TERMINAL CAPABILITIES
// =============================================================================

// TerminalInfo describes what the host terminal can render.
type TerminalInfo struct {
	ColorProfile      termenv.Profile
	SupportsTrueColor bool
	DarkBackground    bool
}

// DetectTerminal probes the terminal once at startup.
func DetectTerminal() TerminalInfo {
	profile := termenv.ColorProfile()
	return TerminalInfo{
		ColorProfile:      profile,
		SupportsTrueColor: profile == termenv.TrueColor,
		DarkBackground:    termenv.HasDarkBackground(),
	}
}

// GlamourStyle returns the markdown style name matching the terminal
// background.
func (t TerminalInfo) GlamourStyle() string {
	if t.DarkBackground {
		return "dark"
	}
	return "light"
}
