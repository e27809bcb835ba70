// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCheckRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Ollama is running")
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	if err := client.CheckRunning(context.Background()); err != nil {
		t.Errorf("expected healthy, got %v", err)
	}
}

func TestCheckRunningDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Immediately closed: connection refused

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	err := client.CheckRunning(context.Background())
	if !IsNotRunning(err) {
		t.Errorf("expected not-running error, got %v", err)
	}
}

func TestModelExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ShowModelRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Name == "qwen2.5:3b" {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})

	ok, err := client.ModelExists(context.Background(), "qwen2.5:3b")
	if err != nil || !ok {
		t.Errorf("expected model to exist, got ok=%v err=%v", ok, err)
	}

	ok, err = client.ModelExists(context.Background(), "missing:1b")
	if err != nil || ok {
		t.Errorf("expected model to be absent, got ok=%v err=%v", ok, err)
	}
}

func TestGenerateStreams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var req GenerateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if !req.Stream {
			t.Error("expected streaming request")
		}
		if req.Options == nil || req.Options.NumPredict != 200 {
			t.Errorf("options not forwarded: %+v", req.Options)
		}

		lines := []string{
			`{"model":"qwen2.5:3b","response":"Hello","done":false}`,
			`{"model":"qwen2.5:3b","response":" there","done":false}`,
			`{"model":"qwen2.5:3b","response":"","done":true,"done_reason":"stop"}`,
		}
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})

	var sb strings.Builder
	err := client.Generate(context.Background(), GenerateRequest{
		Model:   "qwen2.5:3b",
		Prompt:  "hi",
		Options: &Options{NumPredict: 200, Temperature: 0.2, TopP: 0.9},
	}, func(chunk GenerateChunk) {
		sb.WriteString(chunk.Response)
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if sb.String() != "Hello there" {
		t.Errorf("unexpected content: %q", sb.String())
	}
}

func TestGenerateModelNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	err := client.Generate(context.Background(), GenerateRequest{Prompt: "hi"}, func(GenerateChunk) {})
	if !IsModelNotFound(err) {
		t.Errorf("expected model-not-found, got %v", err)
	}
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"model requires more system memory"}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	err := client.Generate(context.Background(), GenerateRequest{Prompt: "hi"}, func(GenerateChunk) {})
	if err == nil || !strings.Contains(err.Error(), "more system memory") {
		t.Errorf("expected server error message, got %v", err)
	}
}

func TestPullStreamsProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/pull" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		lines := []string{
			`{"status":"pulling manifest"}`,
			`{"status":"downloading sha256:abc","total":1000,"completed":500}`,
			`{"status":"success"}`,
		}
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})

	var statuses []string
	err := client.Pull(context.Background(), "qwen2.5:3b", func(p PullProgress) {
		statuses = append(statuses, p.Status)
	})
	if err != nil {
		t.Fatalf("Pull failed: %v", err)
	}
	if len(statuses) != 3 || statuses[2] != "success" {
		t.Errorf("unexpected statuses: %v", statuses)
	}
}

func TestPullInStreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"status":"pulling manifest"}`)
		fmt.Fprintln(w, `{"error":"pull model manifest: file does not exist"}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL})
	err := client.Pull(context.Background(), "missing:1b", func(PullProgress) {})
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("expected in-stream error, got %v", err)
	}
}
