// Package bridge is the typed message channel between the foreground (client
// session) context and the background (worker) context. The two contexts
// share no memory; every cross-context request travels through an envelope
// with an optional one-shot reply channel.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

var (
	// ErrClosed is returned when the bridge is shut down
	ErrClosed = errors.New("bridge is closed")
	// ErrBusy is returned when the background context is not draining messages
	ErrBusy = errors.New("background context not receiving")
	// ErrUnknownKind is returned for message kinds outside the closed set
	ErrUnknownKind = errors.New("unknown message kind")
	// ErrAckTimeout is returned when no acknowledgment arrives in time
	ErrAckTimeout = errors.New("acknowledgment timed out")
)

// Kind discriminates the closed set of message kinds
type Kind string

// the complete message vocabulary; anything else is rejected, never ignored
const (
	KindShowNotification     Kind = "SHOW_NOTIFICATION"
	KindScheduleNotification Kind = "SCHEDULE_NOTIFICATION"
)

// SchedulePayload carries a schedule change to the background context.
// Advisory only, timer ownership stays with the foreground.
type SchedulePayload struct {
	Hour    int  `json:"hour"`
	Minute  int  `json:"minute"`
	Enabled bool `json:"enabled"`
}

// Message is a tagged union over the message kinds. Schedule is set only
// for KindScheduleNotification.
type Message struct {
	Kind     Kind
	Schedule *SchedulePayload
}

// Ack is the one-shot acknowledgment for a request
type Ack struct {
	Success bool
	Reason  string
}

// Envelope wraps a message with its reply channel
type Envelope struct {
	Msg     Message
	reply   chan Ack
	ackOnce sync.Once
}

// Reply delivers the acknowledgment. Safe to call at most once; repeated
// calls are dropped.
func (e *Envelope) Reply(a Ack) {
	if e.reply == nil {
		return
	}
	e.ackOnce.Do(func() { e.reply <- a })
}

// Bridge is the channel between the two execution contexts
type Bridge struct {
	ch      chan *Envelope
	timeout time.Duration

	mu     sync.Mutex
	closed bool
}

// New creates a bridge with the given queue capacity and mandatory ack
// timeout. Zero timeout gets a sane default rather than waiting forever on
// a reply nobody consumes.
func New(capacity int, timeout time.Duration) *Bridge {
	if capacity <= 0 {
		capacity = 16
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Bridge{ch: make(chan *Envelope, capacity), timeout: timeout}
}

// Post sends a message without waiting for acknowledgment. Fails when the
// background context is not draining the queue, so a dispatch failure is
// observable by the caller.
func (b *Bridge) Post(ctx context.Context, msg Message) error {
	if err := b.send(ctx, &Envelope{Msg: msg}); err != nil {
		return err
	}
	lgr.Printf("[DEBUG] posted %s", msg.Kind)
	return nil
}

// Request sends a message and waits for the one-shot acknowledgment, bounded
// by the bridge timeout. The sender treats the change as applied only after
// the ack arrives.
func (b *Bridge) Request(ctx context.Context, msg Message) (Ack, error) {
	env := &Envelope{Msg: msg, reply: make(chan Ack, 1)}
	if err := b.send(ctx, env); err != nil {
		return Ack{}, err
	}

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case ack := <-env.reply:
		return ack, nil
	case <-timer.C:
		return Ack{}, ErrAckTimeout
	case <-ctx.Done():
		return Ack{}, ctx.Err()
	}
}

// Receive returns the channel the background context drains
func (b *Bridge) Receive() <-chan *Envelope {
	return b.ch
}

// Close shuts the bridge down; subsequent sends fail with ErrClosed
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.ch)
}

// send enqueues the envelope. The closed check and the channel send happen
// under the same lock Close takes, so a send can never race a close of the
// underlying channel.
func (b *Bridge) send(ctx context.Context, env *Envelope) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	if err := validateKind(env.Msg); err != nil {
		return err
	}

	select {
	case b.ch <- env:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBusy
	}
}

func validateKind(msg Message) error {
	switch msg.Kind {
	case KindShowNotification:
		return nil
	case KindScheduleNotification:
		if msg.Schedule == nil {
			return fmt.Errorf("%s requires a schedule payload", msg.Kind)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, msg.Kind)
	}
}
