// Package eventbus carries messages from command goroutines and outside
// callers to the single update loop, in arrival order.
package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Rorical/NearCounter/internal/models"
)

// ErrClosed is returned by operations on a closed bus.
var ErrClosed = errors.New("event bus closed")

// Envelope is one entry on the bus. Command is set when the entry is the
// outcome of a scheduled command; Msg is nil for commands that resolve
// without a message.
type Envelope struct {
	Msg     models.Msg
	Command models.Command
}

// FromCommand reports whether the envelope settles a scheduled command.
func (e Envelope) FromCommand() bool {
	return e.Command != models.NoCommand
}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

// EventBus is a FIFO queue with a single consumer. Senders block rather
// than drop, so every command outcome is delivered.
type EventBus struct {
	queue         chan Envelope
	done          chan struct{}
	closeOnce     sync.Once
	mu            sync.RWMutex
	errorCallback func(EventBusError)
}

func NewEventBus(capacity int) *EventBus {
	if capacity <= 0 {
		capacity = 100
	}
	return &EventBus{
		queue: make(chan Envelope, capacity),
		done:  make(chan struct{}),
	}
}

func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) {
	eb.mu.RLock()
	callback := eb.errorCallback
	eb.mu.RUnlock()

	if callback != nil {
		callback(EventBusError{
			Operation: operation,
			Err:       err,
			Timestamp: time.Now(),
		})
	}
}

// Send enqueues env, waiting for room if the queue is full.
func (eb *EventBus) Send(ctx context.Context, env Envelope) error {
	select {
	case <-eb.done:
		eb.reportError("Send", ErrClosed)
		return ErrClosed
	default:
	}

	select {
	case eb.queue <- env:
		return nil
	case <-eb.done:
		eb.reportError("Send", ErrClosed)
		return ErrClosed
	case <-ctx.Done():
		eb.reportError("Send", ctx.Err())
		return ctx.Err()
	}
}

// Receive returns the oldest envelope, waiting until one arrives.
func (eb *EventBus) Receive(ctx context.Context) (Envelope, error) {
	select {
	case env := <-eb.queue:
		return env, nil
	default:
	}

	select {
	case env := <-eb.queue:
		return env, nil
	case <-eb.done:
		return Envelope{}, ErrClosed
	case <-ctx.Done():
		return Envelope{}, ctx.Err()
	}
}

// Len returns the number of queued envelopes.
func (eb *EventBus) Len() int {
	return len(eb.queue)
}

// Close stops the bus. Queued envelopes are discarded.
func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.done)
	})
}
