// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package booking holds the in-progress booking selection.
//
// The Store is the single source of truth for what the visitor has
// picked so far (cruise, region, dates, passengers, cabin). It is
// passed explicitly to whoever mutates it - the chat assistant's
// local intent rules and the booking flow - rather than living in a
// package-level global. State persists across sessions as one small
// JSON document, and an optional fsnotify watch reloads it when
// another process writes the file.
package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pokecruise/cruisebot/internal/util"
)

// =============================================================================
// STATE
// =============================================================================

// Passengers is the party composition.
type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// Dates is the selected travel window. Nil pointers mean unselected.
type Dates struct {
	Start *time.Time `json:"startDate"`
	End   *time.Time `json:"endDate"`
}

// State is the complete booking selection. Empty strings mean
// unselected.
type State struct {
	CruiseID   string     `json:"cruiseId"`
	Region     string     `json:"region"`
	Dates      Dates      `json:"dates"`
	Passengers Passengers `json:"passengers"`
	CabinType  string     `json:"cabinType"`
}

// initialState is what a fresh or reset booking looks like. Two
// adults is the common case and saves a step for most parties.
func initialState() State {
	return State{
		Passengers: Passengers{Adults: 2, Children: 0},
	}
}

// TotalPassengers returns the party size.
func (s State) TotalPassengers() int {
	return s.Passengers.Adults + s.Passengers.Children
}

// Equal reports whether two selections describe the same booking.
// Dates compare by instant, not by pointer, so a reloaded state with
// freshly allocated times still compares equal.
func (s State) Equal(o State) bool {
	return s.CruiseID == o.CruiseID &&
		s.Region == o.Region &&
		s.Passengers == o.Passengers &&
		s.CabinType == o.CabinType &&
		timeEqual(s.Dates.Start, o.Dates.Start) &&
		timeEqual(s.Dates.End, o.Dates.End)
}

func timeEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// =============================================================================
// STORE
// =============================================================================

// Store owns the booking state and its persistence.
//
// All methods are safe for concurrent use. Every mutation writes the
// state file atomically before returning.
type Store struct {
	mu    sync.RWMutex
	state State
	path  string

	subscribers []func(State)

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewStore creates a store backed by the JSON file at path. An
// existing file is loaded; a missing file yields the initial state.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  path,
		state: initialState(),
		done:  make(chan struct{}),
	}

	if err := s.loadFile(); err != nil {
		return nil, err
	}
	return s, nil
}

// loadFile reads the state file into the store. Missing file is fine;
// a corrupt file is replaced by the initial state rather than
// blocking startup.
func (s *Store) loadFile() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read booking state: %w", err)
	}

	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil
	}

	s.mu.Lock()
	s.state = loaded
	s.mu.Unlock()
	return nil
}

// save persists the current state atomically. Called with s.mu held.
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal booking state: %w", err)
	}
	return util.AtomicWriteFile(s.path, data, 0644)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Get returns a snapshot of the booking state.
func (s *Store) Get() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetCruise records the selected cruise and its region.
func (s *Store) SetCruise(cruiseID, region string) error {
	return s.update(func(st *State) {
		st.CruiseID = cruiseID
		st.Region = region
	})
}

// SetDates records the travel window.
func (s *Store) SetDates(start, end *time.Time) error {
	return s.update(func(st *State) {
		st.Dates = Dates{Start: start, End: end}
	})
}

// SetAdults records the adult count, leaving children untouched.
func (s *Store) SetAdults(n int) error {
	return s.update(func(st *State) {
		st.Passengers.Adults = n
	})
}

// SetChildren records the child count, leaving adults untouched.
func (s *Store) SetChildren(n int) error {
	return s.update(func(st *State) {
		st.Passengers.Children = n
	})
}

// SetCabinType records the selected cabin.
func (s *Store) SetCabinType(cabinType string) error {
	return s.update(func(st *State) {
		st.CabinType = cabinType
	})
}

// Reset returns the booking to its initial state.
func (s *Store) Reset() error {
	return s.update(func(st *State) {
		*st = initialState()
	})
}

// update applies fn under the lock, persists, then notifies
// subscribers with the new snapshot.
func (s *Store) update(fn func(*State)) error {
	s.mu.Lock()
	fn(&s.state)
	snapshot := s.state
	err := s.save()
	subs := s.subscribers
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
	return err
}

// Subscribe registers fn to run after every state change, including
// external file reloads. Not removable; subscribe for the life of the
// store.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// =============================================================================
// EXTERNAL CHANGE WATCH
// =============================================================================

// Watch reloads the state file when another process modifies it. The
// watch runs until Close.
func (s *Store) Watch() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory: atomic writes replace the file via rename,
	// which drops a watch on the file itself.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return fmt.Errorf("failed to watch state directory: %w", err)
	}
	s.watcher = w

	go func() {
		for {
			select {
			case <-s.done:
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				s.reloadExternal()
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// reloadExternal re-reads the file and notifies subscribers when the
// content changed.
func (s *Store) reloadExternal() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var loaded State
	if err := json.Unmarshal(data, &loaded); err != nil {
		return
	}

	s.mu.Lock()
	if loaded.Equal(s.state) {
		s.mu.Unlock()
		return
	}
	s.state = loaded
	snapshot := s.state
	subs := s.subscribers
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snapshot)
	}
}

// Close stops the external watch.
func (s *Store) Close() error {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}
