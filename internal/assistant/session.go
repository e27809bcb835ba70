// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

// =============================================================================
// CONVERSATION SESSION
// =============================================================================

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// ChatMessage is one entry in the conversation log. Messages carry no
// identifiers or timestamps; insertion order is display order.
type ChatMessage struct {
	Text   string
	Sender Sender
}

// Session is the conversation state owned by the controller: the
// append-only message log, the pending input buffer, and the widget
// flags. Not safe for concurrent use on its own; the controller
// serializes access.
type Session struct {
	messages  []ChatMessage
	input     string
	open      bool
	loading   bool
	available bool

	// streamIdx is the index of the bot message currently accumulating
	// update fragments, or -1 when no stream is active. Tracking the
	// index instead of "the last message" keeps fragments flowing into
	// their own message even when another answer lands mid-stream.
	streamIdx int
}

// NewSession creates an empty session. Availability starts true and
// is revised once by the capability check.
func NewSession() *Session {
	return &Session{available: true, streamIdx: -1}
}

// Messages returns a copy of the conversation log.
func (s *Session) Messages() []ChatMessage {
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *Session) Len() int {
	return len(s.messages)
}

// Last returns the most recent message, or a zero message when empty.
func (s *Session) Last() (ChatMessage, bool) {
	if len(s.messages) == 0 {
		return ChatMessage{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// AppendUser adds a user message. An active stream keeps its target.
func (s *Session) AppendUser(text string) {
	s.messages = append(s.messages, ChatMessage{Text: text, Sender: SenderUser})
}

// AppendBot adds a complete bot message. It is never a streaming
// target, and an active stream keeps accumulating into its own
// message.
func (s *Session) AppendBot(text string) {
	s.messages = append(s.messages, ChatMessage{Text: text, Sender: SenderBot})
}

// AppendFragment merges a streamed fragment into the active streaming
// message, starting a new bot message and making it the target when
// none is active. Fragments must be applied in arrival order.
func (s *Session) AppendFragment(fragment string) {
	if s.streamIdx >= 0 {
		s.messages[s.streamIdx].Text += fragment
		return
	}
	s.messages = append(s.messages, ChatMessage{Text: fragment, Sender: SenderBot})
	s.streamIdx = len(s.messages) - 1
}

// StreamedText returns the text accumulated in the active streaming
// message, or empty when no stream is active.
func (s *Session) StreamedText() string {
	if s.streamIdx < 0 {
		return ""
	}
	return s.messages[s.streamIdx].Text
}

// EndStream marks streaming accumulation finished; the accumulated
// text is final.
func (s *Session) EndStream() {
	s.streamIdx = -1
}

// Input returns the pending input buffer.
func (s *Session) Input() string { return s.input }

// SetInput replaces the pending input buffer.
func (s *Session) SetInput(text string) { s.input = text }

// Open reports widget visibility.
func (s *Session) Open() bool { return s.open }

// Toggle flips widget visibility. Purely presentational.
func (s *Session) Toggle() { s.open = !s.open }

// Loading reports whether a response is in flight.
func (s *Session) Loading() bool { return s.loading }

// SetLoading sets the in-flight flag.
func (s *Session) SetLoading(v bool) { s.loading = v }

// Available reports whether the assistant can generate at all.
func (s *Session) Available() bool { return s.available }

// SetUnavailable marks the session degraded. One-way: availability
// never recovers within a session.
func (s *Session) SetUnavailable() { s.available = false }
