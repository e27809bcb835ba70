// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package booking

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "booking.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInitialState(t *testing.T) {
	s := newTestStore(t)

	st := s.Get()
	if st.CruiseID != "" || st.Region != "" || st.CabinType != "" {
		t.Errorf("fresh state has selections: %+v", st)
	}
	if st.Passengers.Adults != 2 || st.Passengers.Children != 0 {
		t.Errorf("unexpected default passengers: %+v", st.Passengers)
	}
	if st.TotalPassengers() != 2 {
		t.Errorf("expected 2 total passengers, got %d", st.TotalPassengers())
	}
}

func TestSettersPartialUpdate(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetCruise("ss-anne-kanto", "Kanto"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetAdults(3); err != nil {
		t.Fatal(err)
	}

	st := s.Get()
	if st.CruiseID != "ss-anne-kanto" || st.Region != "Kanto" {
		t.Errorf("cruise not recorded: %+v", st)
	}
	if st.Passengers.Adults != 3 {
		t.Errorf("adults not updated: %+v", st.Passengers)
	}
	// Children untouched by the adults update
	if st.Passengers.Children != 0 {
		t.Errorf("children should be unchanged: %+v", st.Passengers)
	}

	if err := s.SetChildren(1); err != nil {
		t.Fatal(err)
	}
	st = s.Get()
	if st.Passengers.Adults != 3 || st.Passengers.Children != 1 {
		t.Errorf("expected {3 1}, got %+v", st.Passengers)
	}
	if st.TotalPassengers() != 4 {
		t.Errorf("expected 4 total, got %d", st.TotalPassengers())
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)

	s.SetCruise("hoenn-seafarer", "Hoenn")
	s.SetCabinType("suite")
	s.SetChildren(2)

	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	st := s.Get()
	if st.CruiseID != "" || st.CabinType != "" {
		t.Errorf("reset did not clear selections: %+v", st)
	}
	if st.Passengers.Adults != 2 || st.Passengers.Children != 0 {
		t.Errorf("reset did not restore default passengers: %+v", st.Passengers)
	}
}

func TestPersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.json")

	s1, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	s1.SetCruise("glacial-explorer-sinnoh", "Sinnoh")
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 8)
	s1.SetDates(&start, &end)
	s1.Close()

	s2, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	st := s2.Get()
	if st.CruiseID != "glacial-explorer-sinnoh" {
		t.Errorf("cruise not persisted: %+v", st)
	}
	if st.Dates.Start == nil || !st.Dates.Start.Equal(start) {
		t.Errorf("dates not persisted: %+v", st.Dates)
	}
}

func TestCorruptFileFallsBackToInitial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("corrupt file should not fail startup: %v", err)
	}
	defer s.Close()

	if s.Get().Passengers.Adults != 2 {
		t.Errorf("expected initial state, got %+v", s.Get())
	}
}

func TestStateEqualComparesDatesByInstant(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 8)
	// Fresh allocations of the same instants, as a JSON reload produces.
	start2, end2 := start, end

	a := State{CruiseID: "ss-anne-kanto", Dates: Dates{Start: &start, End: &end}}
	b := State{CruiseID: "ss-anne-kanto", Dates: Dates{Start: &start2, End: &end2}}
	if !a.Equal(b) {
		t.Error("states with equal date instants behind distinct pointers must compare equal")
	}

	// Same instant in a different location is still the same moment.
	shifted := start.In(time.FixedZone("UTC+2", 2*60*60))
	c := State{CruiseID: "ss-anne-kanto", Dates: Dates{Start: &shifted, End: &end2}}
	if !a.Equal(c) {
		t.Error("same instant in a different zone must compare equal")
	}

	d := State{CruiseID: "ss-anne-kanto", Dates: Dates{Start: &start}}
	if a.Equal(d) {
		t.Error("nil versus set end date must not compare equal")
	}
	if !d.Equal(d) {
		t.Error("state must equal itself")
	}
}

func TestWatchIgnoresEquivalentRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if err := s.SetDates(&start, nil); err != nil {
		t.Fatal(err)
	}

	notified := make(chan State, 4)
	s.Subscribe(func(st State) { notified <- st })
	if err := s.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Rewrite the file with byte-different but semantically identical
	// content; the reload must not fire subscribers.
	data, _ := json.Marshal(s.Get())
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case st := <-notified:
		t.Errorf("equivalent rewrite must not notify, got %+v", st)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestSubscribeNotifies(t *testing.T) {
	s := newTestStore(t)

	var got []State
	s.Subscribe(func(st State) { got = append(got, st) })

	s.SetAdults(4)
	s.SetCabinType("balcony-cabin")

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[1].Passengers.Adults != 4 || got[1].CabinType != "balcony-cabin" {
		t.Errorf("unexpected final snapshot: %+v", got[1])
	}
}

func TestWatchReloadsExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "booking.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	changed := make(chan State, 1)
	s.Subscribe(func(st State) {
		select {
		case changed <- st:
		default:
		}
	})
	if err := s.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	external := State{CruiseID: "aqua-marina-johto", Region: "Johto", Passengers: Passengers{Adults: 1}}
	data, _ := json.Marshal(external)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case st := <-changed:
		if st.CruiseID != "aqua-marina-johto" {
			t.Errorf("unexpected reloaded state: %+v", st)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("external change not observed")
	}
}
