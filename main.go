// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Cruisebot is the terminal booking assistant for Pokemon cruises.
// It grounds a local Ollama model in the cruise catalog and answers
// booking questions, with cheap keyword rules handling the common
// actions without touching the model at all.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/pokecruise/cruisebot/internal/assistant"
	"github.com/pokecruise/cruisebot/internal/booking"
	"github.com/pokecruise/cruisebot/internal/catalog"
	"github.com/pokecruise/cruisebot/internal/config"
	"github.com/pokecruise/cruisebot/internal/detect"
	"github.com/pokecruise/cruisebot/internal/ollama"
	"github.com/pokecruise/cruisebot/internal/pipeline"
	"github.com/pokecruise/cruisebot/internal/ui/chat"
)

var version = "dev"

func main() {
	var (
		configPath  = flag.String("config", "", "path to config file (default ~/.cruisebot/config.toml)")
		modelName   = flag.String("model", "", "override the generation model")
		openOnStart = flag.Bool("open", false, "open the chat widget immediately")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("cruisebot " + version)
		return
	}

	if err := run(*configPath, *modelName, *openOnStart); err != nil {
		fmt.Fprintln(os.Stderr, "cruisebot:", err)
		os.Exit(1)
	}
}

func run(configPath, modelName string, openOnStart bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if modelName != "" {
		cfg.Model.Name = modelName
	}
	config.SetGlobal(cfg)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("cruisebot is interactive; run it in a terminal")
	}

	statePath, err := cfg.BookingStatePath()
	if err != nil {
		return err
	}
	store, err := booking.NewStore(statePath)
	if err != nil {
		return err
	}
	defer store.Close()
	if cfg.Booking.WatchExternal {
		if err := store.Watch(); err != nil {
			return err
		}
	}

	client := ollama.NewClientWithConfig(&ollama.ClientConfig{
		BaseURL:      cfg.Model.OllamaURL,
		DefaultModel: cfg.Model.Name,
	})

	cat := catalog.Default()
	ctrl := assistant.NewController(assistant.Options{
		Catalog:        cat,
		Store:          store,
		Factory:        pipeline.NewFactory(client, cat, cfg),
		Prober:         prober(),
		SendsPerMinute: cfg.UI.SendsPerMinute,
	})
	ctrl.Initialize(context.Background())
	defer ctrl.Close()

	if openOnStart || cfg.UI.OpenOnStart {
		ctrl.Toggle()
	}

	p := tea.NewProgram(chat.New(ctrl, cfg.UI.WordWrap), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// prober picks the capability source. CRUISEBOT_FORCE_CPU exists for
// testing the degraded path on GPU machines.
func prober() detect.Prober {
	if os.Getenv("CRUISEBOT_FORCE_CPU") != "" {
		return detect.StaticProber{Cap: detect.Capability{Type: detect.GpuTypeCPU, Name: "CPU"}}
	}
	return detect.NewGPUProber()
}
