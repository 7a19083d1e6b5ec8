// Package bus provides the FIFO queues connecting task producers to the
// worker loop. Buffered Go channels give queue semantics directly:
// concurrent producers and consumers are safe by construction.
package bus

import (
	"errors"
	"time"
)

var (
	// ErrTimeout means no frame arrived within the bounded wait.
	ErrTimeout = errors.New("queue receive timed out")

	// ErrClosed means the queue was closed and fully drained. Consumers
	// treat this as fatal: the queue is unusable from here on.
	ErrClosed = errors.New("queue is closed")
)

const defaultQueueSize = 100

// Frame is a single inbound queue entry: either an encoded envelope or the
// stop signal. Carrying stop as a tagged variant keeps it distinct from
// every possible payload value.
type Frame struct {
	Stop bool
	Data []byte
}

// Queue is the inbound task queue.
type Queue struct {
	ch chan Frame
}

// NewQueue creates a buffered inbound queue.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{ch: make(chan Frame, size)}
}

// PushTask enqueues an encoded envelope.
func (q *Queue) PushTask(data []byte) {
	q.ch <- Frame{Data: data}
}

// PushStop enqueues the stop signal. Tasks pushed earlier are still
// delivered first; stop does not jump the queue.
func (q *Queue) PushStop() {
	q.ch <- Frame{Stop: true}
}

// Close marks the queue unusable. Producers must stop pushing before Close;
// Pop keeps returning buffered frames and then ErrClosed.
func (q *Queue) Close() {
	close(q.ch)
}

// Pop receives the next frame in FIFO order, waiting at most timeout.
func (q *Queue) Pop(timeout time.Duration) (Frame, error) {
	select {
	case f, ok := <-q.ch:
		if !ok {
			return Frame{}, ErrClosed
		}
		return f, nil
	case <-time.After(timeout):
		return Frame{}, ErrTimeout
	}
}

// Len returns the number of pending frames.
func (q *Queue) Len() int {
	return len(q.ch)
}

// ResultQueue is the outbound queue. It only ever carries encoded
// envelopes, never a stop frame.
type ResultQueue struct {
	ch chan []byte
}

// NewResultQueue creates a buffered outbound queue.
func NewResultQueue(size int) *ResultQueue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &ResultQueue{ch: make(chan []byte, size)}
}

// Push enqueues an encoded result envelope.
func (q *ResultQueue) Push(data []byte) {
	q.ch <- data
}

// Pop receives the next result, waiting at most timeout.
func (q *ResultQueue) Pop(timeout time.Duration) ([]byte, error) {
	select {
	case data := <-q.ch:
		return data, nil
	case <-time.After(timeout):
		return nil, ErrTimeout
	}
}

// Len returns the number of pending results.
func (q *ResultQueue) Len() int {
	return len(q.ch)
}
