// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import "strings"

// =============================================================================
// CATALOG ACCESS
// =============================================================================

// Catalog is an ordered, immutable list of cruise offerings.
//
// Order matters: prompt serialization walks the catalog front to back,
// and the determinism guarantee (same catalog, same prompt bytes)
// depends on that order never changing within a session.
type Catalog struct {
	cruises []Cruise
}

// New creates a catalog over the given cruises. The slice is not
// copied; callers must not mutate it afterwards.
func New(cruises []Cruise) *Catalog {
	return &Catalog{cruises: cruises}
}

// Default returns the built-in Pokemon Cruises catalog.
func Default() *Catalog {
	return New(cruises)
}

// Cruises returns the cruises in catalog order.
func (c *Catalog) Cruises() []Cruise {
	return c.cruises
}

// Len returns the number of cruises.
func (c *Catalog) Len() int {
	return len(c.cruises)
}

// ByID returns the cruise with the given ID, or nil.
func (c *Catalog) ByID(id string) *Cruise {
	for i := range c.cruises {
		if c.cruises[i].ID == id {
			return &c.cruises[i]
		}
	}
	return nil
}

// ByRegion returns all cruises in the given region, in catalog order.
func (c *Catalog) ByRegion(region string) []Cruise {
	var out []Cruise
	for _, cr := range c.cruises {
		if cr.Region == region {
			out = append(out, cr)
		}
	}
	return out
}

// Featured returns the featured cruises, in catalog order.
func (c *Catalog) Featured() []Cruise {
	var out []Cruise
	for _, cr := range c.cruises {
		if cr.Featured {
			out = append(out, cr)
		}
	}
	return out
}

// Regions returns the distinct regions, in first-appearance order.
func (c *Catalog) Regions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, cr := range c.cruises {
		if !seen[cr.Region] {
			seen[cr.Region] = true
			out = append(out, cr.Region)
		}
	}
	return out
}

// MatchName returns the first cruise whose name appears as a
// case-insensitive substring of text. This backs local intent
// resolution: "I want to book the S.S. Anne Luxury Voyage" matches the
// cruise of that name without a model round-trip.
func (c *Catalog) MatchName(text string) *Cruise {
	lower := strings.ToLower(text)
	for i := range c.cruises {
		if strings.Contains(lower, strings.ToLower(c.cruises[i].Name)) {
			return &c.cruises[i]
		}
	}
	return nil
}
