// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

// =============================================================================
// WORKER PROTOCOL
// =============================================================================

// The controller and the generation worker share no memory. One
// request kind goes in; events of the kinds below come out, in order,
// ending with exactly one terminal event (complete or error).

// EventKind identifies a worker event.
type EventKind int

const (
	// EventProgress reports pipeline construction status (model
	// download). Informational; not part of the answer.
	EventProgress EventKind = iota
	// EventUpdate carries one streamed answer fragment.
	EventUpdate
	// EventComplete is terminal: Output holds the full answer.
	EventComplete
	// EventError is terminal: Err holds the failure.
	EventError
)

// Event is one message from the worker to the controller.
type Event struct {
	Kind   EventKind
	Output string
	Err    error
}

// Terminal reports whether the event ends its request.
func (e Event) Terminal() bool {
	return e.Kind == EventComplete || e.Kind == EventError
}
