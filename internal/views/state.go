// Package views loads display-ready data for each page of the site and
// reports progress through a small fetch state machine.
package views

import (
	"context"
	"errors"
	"sync"
)

// Status is the lifecycle stage of a data-bound view
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is what a view renders: a spinner, its data or an error message
type State struct {
	Status Status `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Loading is the initial state of every view
func Loading() State {
	return State{Status: StatusLoading}
}

// Succeeded wraps loaded data
func Succeeded(data any) State {
	return State{Status: StatusSuccess, Data: data}
}

// Failed wraps a load error as the message shown to the visitor
func Failed(err error) State {
	return State{Status: StatusError, Error: Message(err)}
}

// Fetch loads the data of one view
type Fetch func(ctx context.Context) (any, error)

// Run emits loading, performs fetch and emits exactly one terminal state,
// which it also returns
func Run(ctx context.Context, fetch Fetch, emit func(State)) State {
	if emit == nil {
		emit = func(State) {}
	}
	emit(Loading())

	final := settle(ctx, fetch)
	emit(final)
	return final
}

func settle(ctx context.Context, fetch Fetch) State {
	data, err := fetch(ctx)
	if err != nil {
		return Failed(err)
	}
	return Succeeded(data)
}

// Latest tracks the newest load per slot. Beginning a load on a slot cancels
// the one before it, and only the newest load may publish its result.
type Latest struct {
	mu       sync.Mutex
	emitMu   sync.Mutex
	seq      uint64
	inflight map[string]*ticket
}

type ticket struct {
	seq    uint64
	cancel context.CancelFunc
}

// NewLatest creates an empty tracker
func NewLatest() *Latest {
	return &Latest{inflight: make(map[string]*ticket)}
}

// Begin registers a new load for slot and returns its context and sequence
// number. The previous load of the slot, if any, is cancelled.
func (l *Latest) Begin(parent context.Context, slot string) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	l.mu.Lock()
	defer l.mu.Unlock()

	if prev, ok := l.inflight[slot]; ok {
		prev.cancel()
	}
	l.seq++
	l.inflight[slot] = &ticket{seq: l.seq, cancel: cancel}
	return ctx, l.seq
}

// Current reports whether seq is still the newest load of slot
func (l *Latest) Current(slot string, seq uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.inflight[slot]
	return ok && t.seq == seq
}

// Finish releases slot if seq is still its newest load
func (l *Latest) Finish(slot string, seq uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.inflight[slot]; ok && t.seq == seq {
		t.cancel()
		delete(l.inflight, slot)
	}
}

// CancelAll aborts every in-flight load
func (l *Latest) CancelAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for slot, t := range l.inflight {
		t.cancel()
		delete(l.inflight, slot)
	}
}

// Run is the slot-aware form of Run. States of a superseded load are
// dropped; the return value reports whether the terminal state was emitted.
func (l *Latest) Run(parent context.Context, slot string, fetch Fetch, emit func(State)) (State, bool) {
	ctx, seq := l.Begin(parent, slot)
	return l.Exec(ctx, slot, seq, fetch, emit)
}

// Exec runs fetch for a load already registered with Begin. Callers that
// accept loads concurrently call Begin in arrival order and Exec in their
// own goroutine.
func (l *Latest) Exec(ctx context.Context, slot string, seq uint64, fetch Fetch, emit func(State)) (State, bool) {
	defer l.Finish(slot, seq)

	if !l.emitIfCurrent(slot, seq, Loading(), emit) {
		return Loading(), false
	}

	final := settle(ctx, fetch)
	return final, l.emitIfCurrent(slot, seq, final, emit)
}

func (l *Latest) emitIfCurrent(slot string, seq uint64, s State, emit func(State)) bool {
	l.emitMu.Lock()
	defer l.emitMu.Unlock()

	if !l.Current(slot, seq) {
		return false
	}
	if emit != nil {
		emit(s)
	}
	return true
}

// ViewError carries the message a page shows for a failed load
type ViewError struct {
	Message string
	Err     error
}

func (e *ViewError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

func fail(message string, err error) error {
	return &ViewError{Message: message, Err: err}
}

// Message returns the visitor-facing text for a load error
func Message(err error) string {
	var ve *ViewError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrBlogNotFound):
		return "Blog post not found"
	case errors.Is(err, ErrFreeCourseNotFound):
		return "Course not found"
	case errors.Is(err, context.Canceled):
		return "Request cancelled"
	default:
		return "Something went wrong. Please try again."
	}
}
