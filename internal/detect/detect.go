// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package detect probes the host for the GPU acceleration the
// generation pipeline requires.
//
// The probe runs once per session, before the assistant worker is
// constructed. When no supported GPU is present the assistant degrades
// to a static unavailability message and never spawns the worker.
//
// Supported GPU types:
//   - NVIDIA (via nvidia-smi)
//   - AMD (via rocm-smi)
//   - Apple Silicon (via sysctl on macOS)
package detect

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// probeTimeout bounds each external detection command.
const probeTimeout = 10 * time.Second

// =============================================================================
// GPU TYPES
// =============================================================================

// GpuType identifies the kind of accelerator found on the host.
type GpuType int

const (
	// GpuTypeCPU indicates no supported GPU; the pipeline cannot run.
	GpuTypeCPU GpuType = iota
	// GpuTypeNvidia indicates a CUDA-capable NVIDIA GPU.
	GpuTypeNvidia
	// GpuTypeAmd indicates a ROCm-capable AMD GPU.
	GpuTypeAmd
	// GpuTypeAppleSilicon indicates Apple Silicon with Metal support.
	GpuTypeAppleSilicon
)

// String returns the string representation of the GPU type.
func (t GpuType) String() string {
	switch t {
	case GpuTypeNvidia:
		return "NVIDIA"
	case GpuTypeAmd:
		return "AMD"
	case GpuTypeAppleSilicon:
		return "Apple Silicon"
	case GpuTypeCPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Capability is the result of a hardware probe.
type Capability struct {
	// Type of accelerator found.
	Type GpuType
	// Name of the device (e.g. "NVIDIA RTX 4090").
	Name string
	// VramGB is the available VRAM in gigabytes, when reported.
	VramGB uint32
}

// Available reports whether the generation pipeline can run here.
func (c Capability) Available() bool {
	return c.Type != GpuTypeCPU
}

// String returns a short human-readable description.
func (c Capability) String() string {
	if !c.Available() {
		return "CPU only (no supported GPU)"
	}
	if c.VramGB > 0 {
		return fmt.Sprintf("%s (%dGB VRAM)", c.Name, c.VramGB)
	}
	return c.Name
}

// =============================================================================
// PROBER
// =============================================================================

// Prober answers the one capability question the assistant asks at
// startup. It exists as an interface so tests can stub the hardware.
type Prober interface {
	Probe(ctx context.Context) Capability
}

// GPUProber probes real hardware. The result is cached: capability is
// assumed static for the life of the session.
type GPUProber struct {
	once   sync.Once
	cached Capability
}

// NewGPUProber creates a hardware prober.
func NewGPUProber() *GPUProber {
	return &GPUProber{}
}

// Probe detects an accelerator, trying NVIDIA first (most common),
// then AMD, then Apple Silicon. Repeated calls return the first
// result without re-running external commands.
func (p *GPUProber) Probe(ctx context.Context) Capability {
	p.once.Do(func() {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, probeTimeout)
			defer cancel()
		}

		if cap, ok := detectNvidia(ctx); ok {
			p.cached = cap
			return
		}
		if cap, ok := detectAmd(ctx); ok {
			p.cached = cap
			return
		}
		if cap, ok := detectAppleSilicon(ctx); ok {
			p.cached = cap
			return
		}
		p.cached = Capability{Type: GpuTypeCPU, Name: "CPU"}
	})
	return p.cached
}

// StaticProber returns a fixed capability; used in tests and by the
// CRUISEBOT_FORCE_CPU escape hatch.
type StaticProber struct {
	Cap Capability
}

// Probe returns the fixed capability.
func (s StaticProber) Probe(context.Context) Capability {
	return s.Cap
}

// =============================================================================
// DETECTION BACKENDS
// =============================================================================

// detectNvidia queries nvidia-smi for the first GPU's name and memory.
func detectNvidia(ctx context.Context) (Capability, bool) {
	out, err := exec.CommandContext(ctx, "nvidia-smi",
		"--query-gpu=name,memory.total", "--format=csv,noheader,nounits").Output()
	if err != nil {
		return Capability{}, false
	}

	line := firstLine(string(out))
	if line == "" {
		return Capability{}, false
	}

	parts := strings.Split(line, ",")
	cap := Capability{Type: GpuTypeNvidia, Name: strings.TrimSpace(parts[0])}
	if len(parts) > 1 {
		if mb, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			cap.VramGB = uint32(mb / 1024)
		}
	}
	return cap, true
}

// detectAmd queries rocm-smi for a product name.
func detectAmd(ctx context.Context) (Capability, bool) {
	out, err := exec.CommandContext(ctx, "rocm-smi", "--showproductname").Output()
	if err != nil {
		return Capability{}, false
	}

	for _, line := range strings.Split(string(out), "\n") {
		if strings.Contains(line, "Card series") || strings.Contains(line, "Card SKU") {
			idx := strings.LastIndex(line, ":")
			if idx >= 0 {
				name := strings.TrimSpace(line[idx+1:])
				if name != "" {
					return Capability{Type: GpuTypeAmd, Name: name}, true
				}
			}
		}
	}
	return Capability{}, false
}

// detectAppleSilicon checks for an Apple Silicon chip on macOS.
func detectAppleSilicon(ctx context.Context) (Capability, bool) {
	if runtime.GOOS != "darwin" || runtime.GOARCH != "arm64" {
		return Capability{}, false
	}

	out, err := exec.CommandContext(ctx, "sysctl", "-n", "machdep.cpu.brand_string").Output()
	if err != nil {
		// arm64 darwin is Apple Silicon even if sysctl fails
		return Capability{Type: GpuTypeAppleSilicon, Name: "Apple Silicon"}, true
	}
	return Capability{Type: GpuTypeAppleSilicon, Name: firstLine(string(out))}, true
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
