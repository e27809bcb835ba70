// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package pipeline

import (
	"fmt"
	"strings"

	"github.com/pokecruise/cruisebot/internal/catalog"
)

// promptPreamble instructs the model to answer only from the catalog
// lines that follow.
const promptPreamble = "You are a helpful assistant for booking Pokemon cruises. " +
	"Use the following cruise information to answer questions and assist with booking."

// BuildPrompt renders the grounded generation prompt for one user
// message. Every bookable fact about a cruise is serialized: identity,
// description, highlights, ship amenities, the cabin options with
// price and capacity, and the day-by-day itinerary, so the model never
// has to invent details. The serialization is deterministic: the same
// catalog and input always produce byte-identical output, so prompts
// are cacheable and testable.
func BuildPrompt(c *catalog.Catalog, userInput string) string {
	var sb strings.Builder
	sb.WriteString(promptPreamble)
	sb.WriteString("\nCruise Information:\n")

	for _, cr := range c.Cruises() {
		fmt.Fprintf(&sb, "Cruise ID: %s, Name: %s, Region: %s, Duration: %d days, Starting Price: %s, Featured: %s\n",
			cr.ID, cr.Name, cr.Region, cr.Duration,
			catalog.FormatPrice(cr.StartingPrice), yesNo(cr.Featured))
		fmt.Fprintf(&sb, "  Description: %s\n", cr.Description)
		fmt.Fprintf(&sb, "  Highlights: %s\n", strings.Join(cr.Highlights, ", "))
		fmt.Fprintf(&sb, "  Ship Amenities: %s\n", strings.Join(cr.Amenities, ", "))
		for _, cab := range cr.CabinTypes {
			fmt.Fprintf(&sb, "  Cabin: %s, Price: %s, Sleeps: %d, Amenities: %s\n",
				cab.Name, catalog.FormatPrice(cab.Price), cab.Capacity,
				strings.Join(cab.Amenities, ", "))
		}
		for _, day := range cr.Itinerary {
			fmt.Fprintf(&sb, "  Day %d: %s, Activities: %s\n",
				day.Day, day.Port.Name, strings.Join(day.Activities, ", "))
		}
	}

	sb.WriteString("\nUser: ")
	sb.WriteString(userInput)
	sb.WriteString("\nChatbot:")
	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
