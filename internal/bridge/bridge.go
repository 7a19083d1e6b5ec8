// Package bridge lets synchronous callers trigger asynchronous pulse
// operations without blocking. Each bridge owns a single background actor
// goroutine that drains a submission queue; Submit is a channel send, so no
// cross-thread scheduling primitive is needed and submissions from one
// caller are scheduled in order.
package bridge

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devdollz/swarm-go/internal/pulse"
	"github.com/devdollz/swarm-go/internal/transport"
)

var (
	// ErrClosed means Submit was called after Shutdown was requested.
	ErrClosed = errors.New("bridge is shut down")

	// ErrBusy means the submission queue is full. Submit never blocks, so
	// callers get this instead of waiting.
	ErrBusy = errors.New("bridge queue is full")
)

// Bridge modes.
const (
	ModeLive      = "live"
	ModeSimulated = "simulated"
)

const (
	defaultQueueSize   = 64
	defaultInitTimeout = 10 * time.Second
)

// Config tunes a bridge.
type Config struct {
	QueueSize   int           // submission queue capacity (default 64)
	InitTimeout time.Duration // transport probe timeout (default 10s)
}

// Bridge owns a dedicated background actor running pulse operations.
type Bridge struct {
	op      *pulse.Operation
	tr      transport.Transport
	capable bool

	tasks    chan string
	done     chan struct{}
	stopped  chan struct{}
	shutdown sync.Once
	running  atomic.Bool
}

// New builds a bridge, probes the transport, and starts the actor.
// Construction never fails: a failed probe downgrades to simulated mode.
func New(tr transport.Transport, composer *pulse.Composer, cfg Config) *Bridge {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.InitTimeout <= 0 {
		cfg.InitTimeout = defaultInitTimeout
	}

	capable := false
	if tr != nil {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.InitTimeout)
		if err := tr.Init(ctx); err != nil {
			log.Printf("[bridge] transport %s unavailable, running simulated: %v", tr.Name(), err)
		} else {
			capable = true
			log.Printf("[bridge] transport %s ready", tr.Name())
		}
		cancel()
	} else {
		log.Printf("[bridge] no transport configured, running simulated")
	}

	b := &Bridge{
		op:      &pulse.Operation{Composer: composer, Transport: tr, Capable: capable},
		tr:      tr,
		capable: capable,
		tasks:   make(chan string, cfg.QueueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	b.running.Store(true)
	go b.run()
	return b
}

// run is the actor loop, the only goroutine that executes operations.
func (b *Bridge) run() {
	defer close(b.stopped)
	defer b.running.Store(false)
	for {
		select {
		case <-b.done:
			return
		case payload := <-b.tasks:
			b.op.Run(context.Background(), payload)
		}
	}
}

// Submit schedules a pulse operation for the payload and returns without
// waiting for it. Safe for concurrent callers. Returns ErrClosed once
// shutdown has been requested and ErrBusy when the queue is full.
func (b *Bridge) Submit(payload string) error {
	select {
	case <-b.done:
		return ErrClosed
	default:
	}
	select {
	case b.tasks <- payload:
		return nil
	case <-b.done:
		return ErrClosed
	default:
		return ErrBusy
	}
}

// Shutdown stops the actor and waits for it to exit, then closes the
// transport. Idempotent: later calls just re-observe the stopped state.
// The in-flight operation runs to completion; submissions still queued
// behind it are dropped.
func (b *Bridge) Shutdown() {
	b.shutdown.Do(func() {
		close(b.done)
		<-b.stopped
		if b.tr != nil {
			_ = b.tr.Close()
		}
		log.Printf("[bridge] shutdown complete")
	})
	<-b.stopped
}

// Running reports whether the actor is alive.
func (b *Bridge) Running() bool { return b.running.Load() }

// Live reports whether the downstream transport probe succeeded.
func (b *Bridge) Live() bool { return b.capable }

// Mode returns ModeLive or ModeSimulated.
func (b *Bridge) Mode() string {
	if b.capable {
		return ModeLive
	}
	return ModeSimulated
}

// Pending returns the number of queued submissions.
func (b *Bridge) Pending() int { return len(b.tasks) }
