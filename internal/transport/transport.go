// Package transport defines the delivery capability behind the execution
// bridge, with simulated and live implementations.
package transport

import "context"

// Transport is the downstream delivery collaborator. Init probes whether
// live delivery is possible; a failed probe downgrades the owner to
// simulated mode instead of aborting construction.
type Transport interface {
	// Name returns the transport identifier for logging.
	Name() string

	// Init attempts to make the transport usable. An error means "not
	// capable", not "fatal".
	Init(ctx context.Context) error

	// Deliver sends one result text downstream.
	Deliver(ctx context.Context, text string) error

	// Close releases the transport. Safe to call when Init failed.
	Close() error
}
