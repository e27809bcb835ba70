// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokecruise/cruisebot/internal/assistant"
	"github.com/pokecruise/cruisebot/internal/booking"
	"github.com/pokecruise/cruisebot/internal/catalog"
	"github.com/pokecruise/cruisebot/internal/detect"
	"github.com/pokecruise/cruisebot/internal/pipeline"
)

func newTestModel(t *testing.T, gpu bool) Model {
	t.Helper()

	store, err := booking.NewStore(filepath.Join(t.TempDir(), "booking.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	typ := detect.GpuTypeNvidia
	if !gpu {
		typ = detect.GpuTypeCPU
	}
	ctrl := assistant.NewController(assistant.Options{
		Catalog: catalog.Default(),
		Store:   store,
		Factory: pipeline.NewFactoryWithBuild(func(ctx context.Context, progress pipeline.ProgressFunc) (pipeline.Generator, error) {
			t.Fatal("pipeline build should not run in view tests")
			return nil, nil
		}),
		Prober: detect.StaticProber{Cap: detect.Capability{Type: typ, Name: "test"}},
	})
	ctrl.Initialize(context.Background())
	t.Cleanup(ctrl.Close)

	m := New(ctrl, 76)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestViewShowsLauncherWhileClosed(t *testing.T) {
	m := newTestModel(t, true)

	view := m.View()
	if !strings.Contains(view, "Cruisebot") {
		t.Error("launcher missing widget name")
	}
	if strings.Contains(view, "enter: send") {
		t.Error("closed widget should not render the input chrome")
	}
}

func TestViewShowsChatWhileOpen(t *testing.T) {
	m := newTestModel(t, true)
	m.ctrl.Toggle()

	view := m.View()
	if !strings.Contains(view, "Pokemon Cruise Assistant") {
		t.Error("open widget missing header")
	}
	if !strings.Contains(view, "enter: send") {
		t.Error("open widget missing key hints")
	}
}

func TestViewShowsDegradedState(t *testing.T) {
	m := newTestModel(t, false)
	m.ctrl.Toggle()

	view := m.View()
	if !strings.Contains(view, "Assistant unavailable") {
		t.Error("degraded state not surfaced")
	}
	if !strings.Contains(view, "GPU acceleration") {
		t.Error("explanatory bot message not rendered")
	}
}

func TestErrorMessagesUseErrorBubble(t *testing.T) {
	m := newTestModel(t, true)

	out := m.renderMessage(assistant.ChatMessage{Text: "Error: model exploded", Sender: assistant.SenderBot})
	if !strings.Contains(out, "Cruisebot") {
		t.Error("error bubble missing sender label")
	}
	if !strings.Contains(out, "model exploded") {
		t.Error("error bubble missing detail")
	}
}
