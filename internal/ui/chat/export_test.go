// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	"github.com/pokecruise/cruisebot/internal/assistant"
)

func TestRenderTranscript(t *testing.T) {
	snap := assistant.Snapshot{
		Messages: []assistant.ChatMessage{
			{Text: "book the S.S. Anne", Sender: assistant.SenderUser},
			{Text: "Great choice!", Sender: assistant.SenderBot},
		},
	}

	out := renderTranscript(snap)
	if !strings.HasPrefix(out, "# Cruisebot conversation") {
		t.Error("transcript missing title")
	}
	if !strings.Contains(out, "**You:** book the S.S. Anne") {
		t.Error("transcript missing user message")
	}
	if !strings.Contains(out, "**Cruisebot:** Great choice!") {
		t.Error("transcript missing bot message")
	}
}
