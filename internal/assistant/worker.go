// Copyright (c) 2025 Pokecruise Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/pokecruise/cruisebot/internal/pipeline"
)

// ErrWorkerClosed is returned for requests sent after Close.
var ErrWorkerClosed = errors.New("generation worker is closed")

// =============================================================================
// GENERATION WORKER
// =============================================================================

// Worker runs generation on its own goroutine, isolated from the
// controller. Requests are processed one at a time in submission
// order; each request gets its own event channel, which the worker
// closes after the terminal event.
//
// The pipeline is built lazily through the factory on the first
// request that needs it. A build failure is reported as an error
// event and retried on the next request.
type Worker struct {
	factory  *pipeline.Factory
	requests chan workerRequest
	quit     chan struct{}

	mu     sync.Mutex
	closed bool
}

type workerRequest struct {
	ctx    context.Context
	text   string
	events chan Event
}

// NewWorker creates the worker and starts its goroutine.
func NewWorker(factory *pipeline.Factory) *Worker {
	w := &Worker{
		factory:  factory,
		requests: make(chan workerRequest, 16),
		quit:     make(chan struct{}),
	}
	go w.loop()
	return w
}

// Ask submits one user message. The returned channel delivers events
// in order and is closed after the terminal event. The context bounds
// pipeline construction and generation for this request.
func (w *Worker) Ask(ctx context.Context, text string) <-chan Event {
	events := make(chan Event, 64)
	req := workerRequest{ctx: ctx, text: text, events: events}

	// The lock orders Ask against Close: once closed is set nothing
	// else enters the queue, so drain answers every request submitted
	// before shutdown. No request is ever stranded without a terminal
	// event.
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		events <- Event{Kind: EventError, Err: ErrWorkerClosed}
		close(events)
		return events
	}
	w.requests <- req
	w.mu.Unlock()
	return events
}

// Close stops the worker after the in-flight request, if any,
// finishes. Queued requests are answered with an error. Idempotent.
func (w *Worker) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	close(w.quit)
}

func (w *Worker) loop() {
	for {
		select {
		case <-w.quit:
			w.drain()
			return
		case req := <-w.requests:
			w.handle(req)
		}
	}
}

// drain fails any requests still queued at shutdown.
func (w *Worker) drain() {
	for {
		select {
		case req := <-w.requests:
			req.events <- Event{Kind: EventError, Err: ErrWorkerClosed}
			close(req.events)
		default:
			return
		}
	}
}

// handle processes one request end to end. A panic anywhere in the
// pipeline becomes an error event instead of killing the worker
// goroutine; the loop keeps serving.
func (w *Worker) handle(req workerRequest) {
	defer close(req.events)
	defer func() {
		if r := recover(); r != nil {
			req.events <- Event{Kind: EventError, Err: fmt.Errorf("generation panic: %v", r)}
		}
	}()

	gen, err := w.factory.Get(req.ctx, func(status string) {
		req.events <- Event{Kind: EventProgress, Output: status}
	})
	if err != nil {
		req.events <- Event{Kind: EventError, Err: err}
		return
	}

	full, err := gen.Generate(req.ctx, req.text, func(fragment string) {
		req.events <- Event{Kind: EventUpdate, Output: fragment}
	})
	if err != nil {
		req.events <- Event{Kind: EventError, Err: err}
		return
	}

	req.events <- Event{Kind: EventComplete, Output: full}
}
