// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokecruise/cruisebot/internal/assistant"
)

// =============================================================================
// TEA MESSAGES
// =============================================================================

// stateChangedMsg signals that the controller mutated conversation
// state and the view should re-render.
type stateChangedMsg struct{}

// waitForChange blocks on the controller's change channel and turns
// the next tick into a tea message. Re-issued after every receive.
func waitForChange(ctrl *assistant.Controller) tea.Cmd {
	return func() tea.Msg {
		<-ctrl.Changed()
		return stateChangedMsg{}
	}
}
