// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant implements the conversational booking assistant:
// a controller that owns the conversation session and a generation
// worker it delegates to.
//
// The controller tries two cheap local intent rules before involving
// the model; local matches mutate the booking store and answer
// synchronously. Everything else goes to the worker, whose streamed
// output the controller merges back into the message log. Messages
// sent while a response is in flight are queued and served in order.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pokecruise/cruisebot/internal/catalog"
	"github.com/pokecruise/cruisebot/internal/detect"
	"github.com/pokecruise/cruisebot/internal/intent"
	"github.com/pokecruise/cruisebot/internal/pipeline"
	"github.com/pokecruise/cruisebot/internal/util"
)

// unavailableMessage seeds the log when the capability probe fails.
const unavailableMessage = "Sorry, your system does not have the GPU acceleration required for the assistant."

// ErrRateLimited is returned when messages are submitted faster than
// the configured send rate.
var ErrRateLimited = fmt.Errorf("sending too fast, slow down")

// =============================================================================
// CONTROLLER
// =============================================================================

// BookingStore is the slice of the booking store the controller
// mutates on local intent matches. *booking.Store satisfies it.
type BookingStore interface {
	SetCruise(cruiseID, region string) error
	SetAdults(n int) error
	SetChildren(n int) error
}

// Controller mediates between the UI and the generation worker. All
// exported methods are safe for concurrent use.
type Controller struct {
	mu      sync.Mutex
	session *Session
	catalog *catalog.Catalog
	store   BookingStore
	factory *pipeline.Factory
	prober  detect.Prober
	limiter *rate.Limiter

	worker *Worker

	// queue holds messages submitted while a response was in flight;
	// they are dispatched one at a time, in order.
	queue []string
	// inFlight is true while a worker request is being processed.
	inFlight bool
	// streamed counts update fragments for the current request, to
	// tell a streamed answer from a complete-only one.
	streamed int

	// progress is the latest pipeline construction status line.
	progress string

	// changed receives a tick after every state mutation so the UI
	// can re-render. Non-blocking; coalesced.
	changed chan struct{}

	ctx    context.Context
	cancel context.CancelFunc
}

// Options wires the controller's collaborators.
type Options struct {
	Catalog *catalog.Catalog
	Store   BookingStore
	Factory *pipeline.Factory
	Prober  detect.Prober
	// SendsPerMinute caps message submission; zero disables the cap.
	SendsPerMinute int
}

// NewController creates an uninitialized controller. Call Initialize
// before sending messages.
func NewController(opts Options) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		session: NewSession(),
		catalog: opts.Catalog,
		store:   opts.Store,
		factory: opts.Factory,
		prober:  opts.Prober,
		changed: make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
	}
	if opts.SendsPerMinute > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.SendsPerMinute)), opts.SendsPerMinute)
	}
	return c
}

// Initialize runs the one-time capability check. When the required
// acceleration is absent the session degrades: availability goes
// false, the log gets a single explanatory bot message and no worker
// is ever constructed. Otherwise the generation worker starts.
func (c *Controller) Initialize(ctx context.Context) {
	cap := c.prober.Probe(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !cap.Available() {
		c.session.SetUnavailable()
		c.session.AppendBot(unavailableMessage)
		c.notifyLocked()
		return
	}

	c.worker = NewWorker(c.factory)
	c.notifyLocked()
}

// SendMessage accepts one user message. Empty (after trimming) input
// is a no-op. Local intent rules run first; unmatched messages are
// delegated to the worker, queueing behind any in-flight request.
func (c *Controller) SendMessage(text string) error {
	// Pasted input can carry newlines and runs of spaces; normalize
	// before matching and logging.
	trimmed := util.CollapseWhitespace(text)
	if trimmed == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.session.Available() {
		return nil
	}
	if c.limiter != nil && !c.limiter.Allow() {
		return ErrRateLimited
	}

	c.session.AppendUser(trimmed)
	c.session.SetInput("")
	c.session.SetLoading(true)

	res := intent.Resolve(trimmed, c.catalog)
	switch res.Kind {
	case intent.KindBookCruise:
		c.applyBooking(res)
	case intent.KindSetPassengers:
		c.applyPassengers(res)
	default:
		if c.worker == nil {
			c.session.AppendBot("Error: the assistant is not ready yet.")
			c.session.SetLoading(false)
			break
		}
		if c.inFlight {
			c.queue = append(c.queue, trimmed)
		} else {
			c.dispatchLocked(trimmed)
		}
	}
	c.notifyLocked()
	return nil
}

// applyBooking handles a locally resolved booking request. A failed
// store write gets an error answer, never a false confirmation.
// Called with c.mu held.
func (c *Controller) applyBooking(res intent.Resolution) {
	if c.store != nil {
		if err := c.store.SetCruise(res.Cruise.ID, res.Cruise.Region); err != nil {
			c.localErrorLocked("could not save your cruise selection", err)
			return
		}
	}
	c.session.AppendBot(fmt.Sprintf(
		"Great choice! I've selected the %s for your booking. %d-day voyage through %s, cabins from %s.",
		res.Cruise.Name, res.Cruise.Duration, res.Cruise.Region,
		catalog.FormatPrice(res.Cruise.StartingPrice)))
	if !c.inFlight {
		c.session.SetLoading(false)
	}
}

// applyPassengers handles a locally resolved passenger update. Only
// the mentioned counts change. Called with c.mu held.
func (c *Controller) applyPassengers(res intent.Resolution) {
	if c.store != nil {
		if res.HasAdults {
			if err := c.store.SetAdults(res.Adults); err != nil {
				c.localErrorLocked("could not update your party", err)
				return
			}
		}
		if res.HasChildren {
			if err := c.store.SetChildren(res.Children); err != nil {
				c.localErrorLocked("could not update your party", err)
				return
			}
		}
	}

	var parts []string
	if res.HasAdults {
		parts = append(parts, fmt.Sprintf("%d %s", res.Adults, plural(res.Adults, "adult", "adults")))
	}
	if res.HasChildren {
		parts = append(parts, fmt.Sprintf("%d %s", res.Children, plural(res.Children, "child", "children")))
	}
	c.session.AppendBot("Got it, I've updated your party to " + strings.Join(parts, " and ") + ".")
	if !c.inFlight {
		c.session.SetLoading(false)
	}
}

// localErrorLocked answers a local intent whose store write failed.
// Called with c.mu held.
func (c *Controller) localErrorLocked(what string, err error) {
	c.session.AppendBot(fmt.Sprintf("Error: %s: %s", what, errorText(err)))
	if !c.inFlight {
		c.session.SetLoading(false)
	}
}

// dispatchLocked hands one message to the worker and spawns the event
// consumer. Called with c.mu held.
func (c *Controller) dispatchLocked(text string) {
	c.inFlight = true
	c.streamed = 0
	events := c.worker.Ask(c.ctx, text)
	go c.consume(events)
}

// consume applies worker events for one request, in arrival order,
// then dispatches the next queued message if any.
func (c *Controller) consume(events <-chan Event) {
	for ev := range events {
		c.apply(ev)
	}
}

// apply folds one worker event into the session.
func (c *Controller) apply(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev.Kind {
	case EventProgress:
		c.progress = ev.Output

	case EventUpdate:
		c.session.AppendFragment(ev.Output)
		c.streamed++

	case EventComplete:
		// Streamed fragments already hold the full answer; a
		// complete-only response (no fragments) lands here whole.
		if c.streamed == 0 && ev.Output != "" {
			c.session.AppendBot(ev.Output)
		}
		c.session.EndStream()
		c.finishLocked()

	case EventError:
		c.session.EndStream()
		c.session.AppendBot("Error: " + errorText(ev.Err))
		c.finishLocked()
	}
	c.notifyLocked()
}

// finishLocked ends the in-flight request and serves the queue.
// Called with c.mu held.
func (c *Controller) finishLocked() {
	c.inFlight = false
	c.progress = ""
	if len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.dispatchLocked(next)
		return
	}
	c.session.SetLoading(false)
}

// Toggle flips the widget's open state.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Toggle()
	c.notifyLocked()
}

// SetInput replaces the pending input buffer.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.SetInput(text)
}

// Close cancels any in-flight generation and stops the worker.
func (c *Controller) Close() {
	c.cancel()
	c.mu.Lock()
	w := c.worker
	c.mu.Unlock()
	if w != nil {
		w.Close()
	}
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// Snapshot is a consistent read of the session for rendering.
type Snapshot struct {
	Messages  []ChatMessage
	Input     string
	Open      bool
	Loading   bool
	Available bool
	Progress  string
}

// State returns a consistent snapshot of the conversation.
func (c *Controller) State() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Messages:  c.session.Messages(),
		Input:     c.session.Input(),
		Open:      c.session.Open(),
		Loading:   c.session.Loading(),
		Available: c.session.Available(),
		Progress:  c.progress,
	}
}

// Changed returns a channel that receives a tick after state
// mutations. Ticks are coalesced; treat a receive as "re-render now".
func (c *Controller) Changed() <-chan struct{} {
	return c.changed
}

// notifyLocked signals the UI without blocking. Called with c.mu held.
func (c *Controller) notifyLocked() {
	select {
	case c.changed <- struct{}{}:
	default:
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func errorText(err error) string {
	if err == nil {
		return "an unknown error occurred"
	}
	return err.Error()
}
