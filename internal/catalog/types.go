// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog defines the cruise offerings of Pokemon Cruises.
//
// The catalog is static configuration data compiled into the binary.
// It is read-only at runtime: the assistant serializes it into
// generation prompts and scans it for name matches, the booking flow
// reads prices and capacities from it, and nothing ever writes to it.
package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// =============================================================================
// CATALOG TYPES
// =============================================================================

// Port is a place a cruise calls at.
type Port struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	// Coordinates is [latitude, longitude].
	Coordinates [2]float64 `json:"coordinates"`
	Activities  []string   `json:"activities"`
	Image       string     `json:"image,omitempty"`
}

// CabinType is a bookable cabin category on a cruise.
type CabinType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

// ItineraryDay is one day of a cruise itinerary.
type ItineraryDay struct {
	Day        int      `json:"day"`
	Port       Port     `json:"port"`
	Activities []string `json:"activities"`
}

// Cruise is a single bookable cruise offering.
type Cruise struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Region           string         `json:"region"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	Highlights       []string       `json:"highlights"`
	StartingPrice    int            `json:"startingPrice"`
	// Duration is in days.
	Duration   int            `json:"duration"`
	Itinerary  []ItineraryDay `json:"itinerary"`
	CabinTypes []CabinType    `json:"cabinTypes"`
	Images     []string       `json:"images"`
	Amenities  []string       `json:"amenities"`
	MapImage   string         `json:"mapImage"`
	Featured   bool           `json:"featured"`
}

// =============================================================================
// FORMATTING
// =============================================================================

// pricePrinter renders prices with grouping separators ("$2,500").
var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a catalog price for display and for prompt
// serialization. The output must be stable across calls: the prompt
// builder relies on byte-identical serialization of the same catalog.
func FormatPrice(price int) string {
	return pricePrinter.Sprintf("$%d", price)
}
