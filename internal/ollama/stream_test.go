// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"context"
	"strings"
	"testing"
)

func TestStreamReaderAccumulates(t *testing.T) {
	input := `{"model":"qwen2.5:3b","response":"The ","done":false}
{"model":"qwen2.5:3b","response":"S.S. ","done":false}
{"model":"qwen2.5:3b","response":"Anne","done":false}
{"model":"qwen2.5:3b","response":"","done":true,"done_reason":"stop","eval_count":3}
`
	reader := NewStreamReader(strings.NewReader(input))

	var got []string
	var final GenerateChunk
	err := reader.Process(context.Background(), func(chunk GenerateChunk) {
		if chunk.Done {
			final = chunk
			return
		}
		got = append(got, chunk.Response)
	})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if reader.Accumulated() != "The S.S. Anne" {
		t.Errorf("unexpected accumulated content: %q", reader.Accumulated())
	}
	if len(got) != 3 {
		t.Errorf("expected 3 content chunks, got %d", len(got))
	}
	if !final.Done || final.DoneReason != "stop" {
		t.Errorf("final chunk not marked done: %+v", final)
	}
	if final.CompletionTokens != 3 {
		t.Errorf("expected 3 completion tokens, got %d", final.CompletionTokens)
	}
}

func TestStreamReaderSkipsMalformedLines(t *testing.T) {
	input := `{"response":"ok","done":false}
this is not json
{"response":"","done":true}
`
	reader := NewStreamReader(strings.NewReader(input))

	count := 0
	err := reader.Process(context.Background(), func(chunk GenerateChunk) {
		count++
	})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 chunks (malformed skipped), got %d", count)
	}
	if reader.Accumulated() != "ok" {
		t.Errorf("unexpected accumulated content: %q", reader.Accumulated())
	}
}

func TestStreamReaderStopsOnCancel(t *testing.T) {
	// An endless reader; cancellation must break the loop.
	input := strings.NewReader(`{"response":"a","done":false}` + "\n")
	reader := NewStreamReader(input)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := reader.Process(ctx, func(GenerateChunk) {})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPullProgressPercent(t *testing.T) {
	p := PullProgress{Status: "downloading", Total: 200, Completed: 50}
	if p.Percent() != 25 {
		t.Errorf("expected 25, got %d", p.Percent())
	}

	unknown := PullProgress{Status: "pulling manifest"}
	if unknown.Percent() != -1 {
		t.Errorf("expected -1 for unknown total, got %d", unknown.Percent())
	}
}
