package mode

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/gosketch/internal/logging"
	"github.com/philipparndt/gosketch/pkg/input"
)

// Handler processes one input event for the mode on top of the stack and
// reports whether it consumed the event.
type Handler func(data Data, ev input.Event) (bool, error)

// Behavior is the table entry for one mode tag
type Behavior struct {
	Handle Handler
	// Exit runs when the mode leaves the stack. It discards pending state
	// and must not touch the entity store.
	Exit func(data Data)
}

// Table maps each tag to its behavior
type Table map[ID]Behavior

// HandlerFor adapts a handler that works on a concrete data type
func HandlerFor[T any](fn func(*T, input.Event) (bool, error)) Handler {
	return func(d Data, ev input.Event) (bool, error) {
		t, ok := d.(*T)
		if !ok {
			return false, fmt.Errorf("mode data has type %T, want %T", d, t)
		}
		return fn(t, ev)
	}
}

// ExitFor adapts an exit hook that works on a concrete data type
func ExitFor[T any](fn func(*T)) func(Data) {
	return func(d Data) {
		if t, ok := d.(*T); ok {
			fn(t)
		}
	}
}

// Change describes one applied (or rejected) message
type Change struct {
	Message Message
	Modes   []ID
	Err     error
}

// Observer is notified after each message is processed
type Observer func(Change)

// Option configures a Stack
type Option func(*Stack)

// WithLogger sets the logger used for stack transitions
func WithLogger(l *slog.Logger) Option {
	return func(s *Stack) { s.logger = l }
}

// WithObserver registers a change observer
func WithObserver(o Observer) Option {
	return func(s *Stack) { s.observers = append(s.observers, o) }
}

// WithBaseData sets the data passed to the Base handler
func WithBaseData(d Data) Option {
	return func(s *Stack) { s.entries[0].Data = d }
}

// Stack is the ordered set of active modes. The bottom entry is always
// Base and only the top entry receives input.
type Stack struct {
	entries   []Mode
	index     map[ID]int
	table     Table
	queue     *Queue
	logger    *slog.Logger
	observers []Observer
}

// NewStack creates a stack holding only Base. Messages are read from queue.
func NewStack(table Table, queue *Queue, opts ...Option) *Stack {
	s := &Stack{
		entries: []Mode{{ID: Base}},
		index:   map[ID]int{Base: 0},
		table:   table,
		queue:   queue,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch sends ev to the top mode and then applies every message queued
// so far. Handler and message errors are joined in the returned error; the
// stack stays usable after any of them.
func (s *Stack) Dispatch(ev input.Event) (bool, error) {
	top := s.Top()
	var consumed bool
	var handleErr error
	if b, ok := s.table[top.ID]; ok && b.Handle != nil {
		consumed, handleErr = b.Handle(top.Data, ev)
		if handleErr != nil {
			handleErr = fmt.Errorf("%s mode: %w", top.ID, handleErr)
		}
	}
	return consumed, errors.Join(handleErr, s.Flush())
}

// Flush applies the queued messages in order. Messages enqueued by exit
// hooks while flushing wait for the next flush.
func (s *Stack) Flush() error {
	var errs []error
	for _, msg := range s.queue.drain() {
		err := s.apply(msg)
		s.assertBase()

		if err != nil {
			errs = append(errs, err)
			if errors.Is(err, ErrPopBase) {
				s.logger.Warn("ignored stack message", "msg", msg.String(), "err", err)
			} else {
				s.logger.Info("rejected stack message", "msg", msg.String(), "err", err)
			}
		} else {
			s.logger.Debug("mode stack changed", "msg", msg.String(), "modes", fmt.Sprint(s.Modes()))
		}

		change := Change{Message: msg, Modes: s.Modes(), Err: err}
		for _, o := range s.observers {
			o(change)
		}
	}
	return errors.Join(errs...)
}

// Top returns the mode currently receiving input
func (s *Stack) Top() Mode {
	return s.entries[len(s.entries)-1]
}

// Len returns the number of active modes, Base included
func (s *Stack) Len() int {
	return len(s.entries)
}

// Modes returns the active tags from bottom to top
func (s *Stack) Modes() []ID {
	ids := make([]ID, len(s.entries))
	for i, m := range s.entries {
		ids[i] = m.ID
	}
	return ids
}

// Contains reports whether a tag is active
func (s *Stack) Contains(id ID) bool {
	_, ok := s.index[id]
	return ok
}

// Data returns the data of an active mode by tag
func (s *Stack) Data(id ID) (Data, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entries[i].Data, true
}

func (s *Stack) apply(msg Message) error {
	switch msg.Op {
	case OpPush:
		return s.push(msg.Mode)
	case OpPop:
		if len(s.entries) == 1 {
			return ErrPopBase
		}
		s.removeTop()
		return nil
	case OpPopAndPush, OpReplace:
		if len(s.entries) == 1 {
			return s.push(msg.Mode)
		}
		if i, ok := s.index[msg.Mode.ID]; ok && i != len(s.entries)-1 {
			return fmt.Errorf("%s: %w", msg.Mode.ID, ErrDuplicateMode)
		}
		s.removeTop()
		return s.push(msg.Mode)
	case OpPopUntil:
		if _, ok := s.index[msg.Mode.ID]; !ok {
			return fmt.Errorf("%s: %w", msg.Mode.ID, ErrModeNotActive)
		}
		for s.entries[len(s.entries)-1].ID != msg.Mode.ID {
			s.removeTop()
		}
		return nil
	default:
		return fmt.Errorf("unknown stack operation %s", msg.Op)
	}
}

func (s *Stack) push(m Mode) error {
	if _, ok := s.index[m.ID]; ok {
		return fmt.Errorf("%s: %w", m.ID, ErrDuplicateMode)
	}
	s.index[m.ID] = len(s.entries)
	s.entries = append(s.entries, m)
	return nil
}

func (s *Stack) removeTop() {
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	delete(s.index, top.ID)
	if b, ok := s.table[top.ID]; ok && b.Exit != nil {
		b.Exit(top.Data)
	}
}

func (s *Stack) assertBase() {
	if len(s.entries) == 0 || s.entries[0].ID != Base {
		panic("mode: stack lost its base entry")
	}
}
