// Package worker implements the task-processing loop: a long-lived
// consumer that pulls task envelopes from an inbound queue, dispatches by
// kind, and pushes result envelopes to an outbound queue until it observes
// a stop frame.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/devdollz/swarm-go/internal/bus"
	"github.com/devdollz/swarm-go/internal/envelope"
)

// State is the worker loop's lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateProcessing
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const (
	defaultPollTimeout = 1 * time.Second
	defaultYield       = 10 * time.Millisecond
)

// Options tune a worker's polling behavior.
type Options struct {
	PollTimeout time.Duration // bounded-wait receive timeout (default 1s)
	Yield       time.Duration // pause after emitting a result (default 10ms)
}

// Worker consumes task envelopes from an inbound queue and produces result
// envelopes on an outbound queue.
type Worker struct {
	name        string
	in          *bus.Queue
	out         *bus.ResultQueue
	registry    *Registry
	pollTimeout time.Duration
	yield       time.Duration
	state       atomic.Int32
}

// New creates a worker. A nil registry gets the built-in kinds.
func New(name string, in *bus.Queue, out *bus.ResultQueue, registry *Registry, opts Options) *Worker {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = defaultPollTimeout
	}
	if opts.Yield <= 0 {
		opts.Yield = defaultYield
	}
	return &Worker{
		name:        name,
		in:          in,
		out:         out,
		registry:    registry,
		pollTimeout: opts.PollTimeout,
		yield:       opts.Yield,
	}
}

// Name returns the worker identifier used as the source of its results.
func (w *Worker) Name() string { return w.name }

// State returns the current loop state.
func (w *Worker) State() State { return State(w.state.Load()) }

// Run executes the worker loop. It returns nil after a stop frame,
// ctx.Err() on cancellation, and a wrapped bus.ErrClosed if the inbound
// queue becomes unusable. Everything else is contained per message.
func (w *Worker) Run(ctx context.Context) error {
	log.Printf("[worker:%s] started, kinds: %s", w.name, strings.Join(w.registry.Kinds(), ", "))
	for {
		if err := ctx.Err(); err != nil {
			w.state.Store(int32(StateStopped))
			log.Printf("[worker:%s] context cancelled", w.name)
			return err
		}

		frame, err := w.in.Pop(w.pollTimeout)
		if errors.Is(err, bus.ErrTimeout) {
			continue
		}
		if err != nil {
			w.state.Store(int32(StateStopped))
			return fmt.Errorf("inbound queue unusable: %w", err)
		}
		if frame.Stop {
			w.state.Store(int32(StateStopped))
			log.Printf("[worker:%s] stop received, shutting down", w.name)
			return nil
		}

		w.state.Store(int32(StateProcessing))
		w.out.Push(w.process(frame.Data).Encode())
		w.state.Store(int32(StateIdle))

		// Bound CPU usage between cycles. Already-queued frames wait at
		// most this long.
		time.Sleep(w.yield)
	}
}

// process turns one inbound frame into exactly one result envelope. All
// failures are contained here so a bad task never stops the loop.
func (w *Worker) process(data []byte) (result envelope.Envelope) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[worker:%s] handler panic: %v", w.name, r)
			result = envelope.NewError(fmt.Sprintf("task failed: %v", r), w.name, fmt.Sprint(r))
		}
	}()

	task, err := envelope.Decode(data)
	if err != nil {
		log.Printf("[worker:%s] %v", w.name, err)
		return envelope.NewError("could not decode task: "+err.Error(), w.name, err.Error())
	}

	kind := task.Kind()
	handler := w.registry.Get(kind)
	if handler == nil {
		return envelope.NewError(
			fmt.Sprintf("unknown task kind %q, available: %s", kind, strings.Join(w.registry.Kinds(), ", ")),
			w.name, "")
	}

	text, err := handler(task.Content)
	if err != nil {
		return envelope.NewError(fmt.Sprintf("%s task failed: %v", kind, err), w.name, err.Error())
	}
	return envelope.NewResult(text, w.name)
}
