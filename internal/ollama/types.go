// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import "time"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// GenerateRequest is a completion request against /api/generate.
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`

	Options *Options `json:"options,omitempty"`
}

// Options carries sampling parameters.
type Options struct {
	// NumPredict bounds the number of generated tokens.
	NumPredict int `json:"num_predict,omitempty"`
	// Temperature for sampling.
	Temperature float64 `json:"temperature,omitempty"`
	// TopP nucleus sampling parameter.
	TopP float64 `json:"top_p,omitempty"`
}

// ShowModelRequest queries /api/show for a local model.
type ShowModelRequest struct {
	Name string `json:"name"`
}

// PullRequest downloads a model via /api/pull.
type PullRequest struct {
	Name   string `json:"name"`
	Stream bool   `json:"stream"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// GenerateChunk is one line of a streaming generate response.
type GenerateChunk struct {
	// Response is the token fragment in this chunk.
	Response string
	// Done indicates the final chunk of the stream.
	Done bool
	// DoneReason explains why generation stopped ("stop", "length").
	DoneReason string
	// Model that produced the chunk.
	Model string

	// Statistics, populated on the final chunk.
	TotalDuration    time.Duration
	LoadDuration     time.Duration
	EvalDuration     time.Duration
	PromptTokens     int
	CompletionTokens int

	// Error, when the stream failed mid-flight.
	Error error
}

// PullProgress is one line of a streaming pull response.
type PullProgress struct {
	// Status is the human-readable pull phase ("pulling manifest",
	// "downloading ...", "success").
	Status string `json:"status"`
	// Total bytes for the current layer, when known.
	Total int64 `json:"total,omitempty"`
	// Completed bytes for the current layer, when known.
	Completed int64 `json:"completed,omitempty"`
}

// Percent returns download progress in [0, 100], or -1 when unknown.
func (p PullProgress) Percent() int {
	if p.Total <= 0 {
		return -1
	}
	return int(p.Completed * 100 / p.Total)
}

// APIError is the error body Ollama returns on failed requests.
type APIError struct {
	Error string `json:"error"`
}
