// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intent performs local intent resolution on user messages.
//
// Two cheap keyword rules run before any model generation: explicit
// booking requests that name a cruise from the catalog, and passenger
// count updates. Everything else falls through to the generation
// worker. Matching is substring-based and case-insensitive; this is a
// shortcut, not a parser.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pokecruise/cruisebot/internal/catalog"
)

// =============================================================================
// RESOLUTION TYPES
// =============================================================================

// Kind identifies which local rule fired.
type Kind int

const (
	// KindNone means no rule matched; delegate to the worker.
	KindNone Kind = iota
	// KindBookCruise means a booking request named a known cruise.
	KindBookCruise
	// KindSetPassengers means the message updates passenger counts.
	KindSetPassengers
)

// Resolution is the outcome of local intent matching.
type Resolution struct {
	Kind Kind

	// Cruise is the matched catalog entry for KindBookCruise.
	Cruise *catalog.Cruise

	// Passenger counts for KindSetPassengers. The Has flags
	// distinguish "not mentioned" from zero.
	Adults      int
	HasAdults   bool
	Children    int
	HasChildren bool
}

// =============================================================================
// KEYWORD RULES
// =============================================================================

// Trigger keywords. Booking keywords gate the catalog name scan;
// passenger keywords gate count extraction.
var (
	bookingKeywords   = []string{"book", "cruise"}
	passengerKeywords = []string{"passengers", "adults", "children"}
)

// Count patterns: the first integer preceding the trigger word wins.
var (
	adultCountRe = regexp.MustCompile(`(?i)(\d+)\s*adults?\b`)
	childCountRe = regexp.MustCompile(`(?i)(\d+)\s*(?:children|child)\b`)
)

// Resolve applies the local rules in priority order:
//
//  1. Booking: the message contains "book" or "cruise" AND a cruise
//     name from the catalog appears as a substring.
//  2. Passengers: the message contains "passengers", "adults" or
//     "children", and at least one count pattern matched.
//
// A keyword trigger without a match resolves to KindNone; the caller
// forwards the message to the worker.
func Resolve(text string, c *catalog.Catalog) Resolution {
	lower := strings.ToLower(text)

	if containsAny(lower, bookingKeywords) {
		if cr := c.MatchName(text); cr != nil {
			return Resolution{Kind: KindBookCruise, Cruise: cr}
		}
		// Booking keyword without a recognizable cruise name: let
		// the model ask a clarifying question instead of guessing.
		return Resolution{Kind: KindNone}
	}

	if containsAny(lower, passengerKeywords) {
		res := Resolution{Kind: KindSetPassengers}
		if n, ok := extractCount(adultCountRe, text); ok {
			res.Adults = n
			res.HasAdults = true
		}
		if n, ok := extractCount(childCountRe, text); ok {
			res.Children = n
			res.HasChildren = true
		}
		if res.HasAdults || res.HasChildren {
			return res
		}
	}

	return Resolution{Kind: KindNone}
}

// extractCount pulls the first integer captured by re out of text.
func extractCount(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
