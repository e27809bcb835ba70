// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import "testing"

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	if c.Len() != 4 {
		t.Fatalf("expected 4 cruises, got %d", c.Len())
	}

	for _, cr := range c.Cruises() {
		if cr.ID == "" || cr.Name == "" || cr.Region == "" {
			t.Errorf("cruise missing identity fields: %+v", cr.ID)
		}
		if len(cr.Itinerary) != cr.Duration {
			t.Errorf("cruise %s: itinerary has %d days, duration says %d", cr.ID, len(cr.Itinerary), cr.Duration)
		}
		if len(cr.CabinTypes) == 0 {
			t.Errorf("cruise %s: no cabin types", cr.ID)
		}
		for _, cab := range cr.CabinTypes {
			if cab.Price <= 0 || cab.Capacity <= 0 {
				t.Errorf("cruise %s cabin %s: bad price/capacity", cr.ID, cab.ID)
			}
		}
	}
}

func TestByID(t *testing.T) {
	c := Default()

	cr := c.ByID("ss-anne-kanto")
	if cr == nil {
		t.Fatal("expected ss-anne-kanto to exist")
	}
	if cr.Name != "S.S. Anne Luxury Voyage" {
		t.Errorf("unexpected name: %s", cr.Name)
	}

	if c.ByID("no-such-cruise") != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestByRegionAndFeatured(t *testing.T) {
	c := Default()

	johto := c.ByRegion("Johto")
	if len(johto) != 1 || johto[0].ID != "aqua-marina-johto" {
		t.Errorf("unexpected Johto cruises: %v", johto)
	}

	featured := c.Featured()
	if len(featured) != 3 {
		t.Errorf("expected 3 featured cruises, got %d", len(featured))
	}

	regions := c.Regions()
	want := []string{"Kanto", "Johto", "Hoenn", "Sinnoh"}
	if len(regions) != len(want) {
		t.Fatalf("expected %d regions, got %d", len(want), len(regions))
	}
	for i, r := range want {
		if regions[i] != r {
			t.Errorf("region[%d]: expected %s, got %s", i, r, regions[i])
		}
	}
}

func TestMatchName(t *testing.T) {
	c := Default()

	cr := c.MatchName("I want to book the S.S. Anne Luxury Voyage")
	if cr == nil || cr.ID != "ss-anne-kanto" {
		t.Fatalf("expected ss-anne-kanto match, got %v", cr)
	}

	// Case-insensitive
	cr = c.MatchName("book the AQUA MARINA JOHTO EXPLORER please")
	if cr == nil || cr.ID != "aqua-marina-johto" {
		t.Fatalf("expected aqua-marina-johto match, got %v", cr)
	}

	if c.MatchName("a cruise around the moon") != nil {
		t.Error("expected no match for unknown name")
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(2500); got != "$2,500" {
		t.Errorf("expected $2,500, got %s", got)
	}
	if got := FormatPrice(450); got != "$450" {
		t.Errorf("expected $450, got %s", got)
	}
}
