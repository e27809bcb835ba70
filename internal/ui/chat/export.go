// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pokecruise/cruisebot/internal/assistant"
	"github.com/pokecruise/cruisebot/internal/config"
	"github.com/pokecruise/cruisebot/internal/util"
)

// =============================================================================
// TRANSCRIPT EXPORT
// =============================================================================

// exportDoneMsg reports the outcome of a transcript export.
type exportDoneMsg struct {
	path string
	err  error
}

// exportTranscript writes the conversation to a markdown file under
// ~/.cruisebot/transcripts/. Runs asynchronously as a tea command.
func exportTranscript(snap assistant.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if len(snap.Messages) == 0 {
			return exportDoneMsg{err: fmt.Errorf("nothing to export")}
		}

		dir, err := config.Dir()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		dir = filepath.Join(dir, "transcripts")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return exportDoneMsg{err: err}
		}

		name := time.Now().Format("2006-01-02") + "-" + uuid.New().String()[:8] + ".md"
		path := filepath.Join(dir, name)

		if err := util.AtomicWriteFile(path, []byte(renderTranscript(snap)), 0644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// renderTranscript formats the conversation as markdown.
func renderTranscript(snap assistant.Snapshot) string {
	var b strings.Builder
	b.WriteString("# Cruisebot conversation\n\n")
	fmt.Fprintf(&b, "Exported %s\n\n", time.Now().Format(time.RFC1123))

	for _, msg := range snap.Messages {
		label := "Cruisebot"
		if msg.Sender == assistant.SenderUser {
			label = "You"
		}
		fmt.Fprintf(&b, "**%s:** %s\n\n", label, msg.Text)
	}
	return b.String()
}
