package transport

import (
	"context"
	"log"
	"sync"
)

// Simulated is the fallback transport: it records and logs deliveries
// without touching the network.
type Simulated struct {
	mu        sync.Mutex
	delivered []string
}

// NewSimulated creates a simulated transport.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Name identifies the transport.
func (s *Simulated) Name() string { return "simulated" }

// Init always succeeds.
func (s *Simulated) Init(ctx context.Context) error { return nil }

// Deliver records the text and logs what would have been sent.
func (s *Simulated) Deliver(ctx context.Context, text string) error {
	s.mu.Lock()
	s.delivered = append(s.delivered, text)
	s.mu.Unlock()
	log.Printf("[transport:simulated] would deliver: %s", text)
	return nil
}

// Close is a no-op.
func (s *Simulated) Close() error { return nil }

// Delivered returns a copy of everything delivered so far.
func (s *Simulated) Delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.delivered))
	copy(out, s.delivered)
	return out
}
