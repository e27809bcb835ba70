// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateWidth truncates s to at most maxWidth terminal cells,
// appending "..." when truncation happens. Width is measured in display
// cells, not bytes or runes, so CJK and emoji content truncates cleanly.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// CollapseWhitespace replaces runs of whitespace (including newlines)
// with single spaces and trims the result. Used for single-line
// previews of chat messages.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
