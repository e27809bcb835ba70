// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pipeline builds and caches the catalog-grounded generation
// pipeline.
//
// Construction is expensive (health check, model presence check,
// possibly a multi-gigabyte pull), so the Factory memoizes it: the
// first request pays the cost, later requests reuse the result. Only
// a successful build is cached; a failed build is retried on the next
// request.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pokecruise/cruisebot/internal/catalog"
	"github.com/pokecruise/cruisebot/internal/config"
	"github.com/pokecruise/cruisebot/internal/ollama"
)

// =============================================================================
// GENERATOR INTERFACE
// =============================================================================

// Generator produces a grounded answer to one user message, streaming
// token fragments to onToken as they arrive. The returned string is
// the complete answer.
type Generator interface {
	Generate(ctx context.Context, userInput string, onToken func(fragment string)) (string, error)
}

// =============================================================================
// PIPELINE
// =============================================================================

// Pipeline is the Ollama-backed Generator. It is safe for concurrent
// use, though the assistant worker serializes requests anyway.
type Pipeline struct {
	client  *ollama.Client
	catalog *catalog.Catalog
	model   string
	opts    ollama.Options
}

// Generate renders the grounded prompt for userInput and streams the
// model's answer. Fragments are delivered in order; the return value
// is their concatenation.
func (p *Pipeline) Generate(ctx context.Context, userInput string, onToken func(fragment string)) (string, error) {
	req := ollama.GenerateRequest{
		Model:   p.model,
		Prompt:  BuildPrompt(p.catalog, userInput),
		Options: &p.opts,
	}

	var sb strings.Builder
	err := p.client.Generate(ctx, req, func(chunk ollama.GenerateChunk) {
		if chunk.Response == "" {
			return
		}
		sb.WriteString(chunk.Response)
		if onToken != nil {
			onToken(chunk.Response)
		}
	})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	return sb.String(), nil
}

// Model returns the model this pipeline generates with.
func (p *Pipeline) Model() string {
	return p.model
}

// =============================================================================
// FACTORY
// =============================================================================

// ProgressFunc receives human-readable build progress ("pulling
// model... 42%"). It may be nil.
type ProgressFunc func(status string)

// BuildFunc constructs a Generator from scratch.
type BuildFunc func(ctx context.Context, progress ProgressFunc) (Generator, error)

// Factory memoizes pipeline construction. Concurrent callers of Get
// serialize: the first runs the build, the rest wait and share its
// outcome. A build error is returned to the waiting caller but NOT
// cached, so the next Get attempts construction again.
type Factory struct {
	mu     sync.Mutex
	cached Generator
	build  BuildFunc
}

// NewFactory creates a factory that builds an Ollama-backed pipeline:
// verify the server is reachable, ensure the model is present (pulling
// it when cfg.Model.AutoPull is set), then wire the generation options.
func NewFactory(client *ollama.Client, cat *catalog.Catalog, cfg *config.Config) *Factory {
	return &Factory{
		build: func(ctx context.Context, progress ProgressFunc) (Generator, error) {
			if err := client.CheckRunning(ctx); err != nil {
				return nil, err
			}

			model := cfg.Model.Name
			exists, err := client.ModelExists(ctx, model)
			if err != nil {
				return nil, err
			}
			if !exists {
				if !cfg.Model.AutoPull {
					return nil, ollama.ErrModelNotFound
				}
				report(progress, "downloading model "+model+"...")
				err := client.Pull(ctx, model, func(p ollama.PullProgress) {
					if pct := p.Percent(); pct >= 0 {
						report(progress, fmt.Sprintf("downloading model %s... %d%%", model, pct))
					} else if p.Status != "" {
						report(progress, p.Status)
					}
				})
				if err != nil {
					return nil, fmt.Errorf("model pull failed: %w", err)
				}
			}

			return &Pipeline{
				client:  client,
				catalog: cat,
				model:   model,
				opts: ollama.Options{
					NumPredict:  cfg.Generation.MaxTokens,
					Temperature: cfg.Generation.Temperature,
					TopP:        cfg.Generation.TopP,
				},
			}, nil
		},
	}
}

// NewFactoryWithBuild creates a factory around a custom build function.
func NewFactoryWithBuild(build BuildFunc) *Factory {
	return &Factory{build: build}
}

// Get returns the memoized Generator, building it on first use.
func (f *Factory) Get(ctx context.Context, progress ProgressFunc) (Generator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cached != nil {
		return f.cached, nil
	}

	gen, err := f.build(ctx, progress)
	if err != nil {
		return nil, err
	}
	f.cached = gen
	return gen, nil
}

// Ready reports whether a pipeline has been built already.
func (f *Factory) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cached != nil
}

func report(progress ProgressFunc, status string) {
	if progress != nil {
		progress(status)
	}
}
