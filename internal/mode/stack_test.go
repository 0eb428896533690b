package mode

import (
	"errors"
	"testing"

	"github.com/philipparndt/gosketch/pkg/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events  int
	exited  int
	onEvent func(p *recorder) error
}

func recorderTable() Table {
	b := Behavior{
		Handle: HandlerFor(func(p *recorder, ev input.Event) (bool, error) {
			p.events++
			if p.onEvent != nil {
				return true, p.onEvent(p)
			}
			return true, nil
		}),
		Exit: ExitFor(func(p *recorder) { p.exited++ }),
	}
	table := Table{}
	for _, id := range All() {
		table[id] = b
	}
	return table
}

func newRecorderStack(opts ...Option) (*Stack, *Queue, *recorder) {
	q := NewQueue()
	base := &recorder{}
	opts = append([]Option{WithBaseData(base)}, opts...)
	return NewStack(recorderTable(), q, opts...), q, base
}

var anyKey = input.KeyDown(input.KeyRune('x'), 0)

func TestPushPushPopPop(t *testing.T) {
	s, q, _ := newRecorderStack()

	q.Push(New(Sketch, &recorder{}))
	require.NoError(t, s.Flush())
	q.Push(New(Line, &recorder{}))
	require.NoError(t, s.Flush())
	assert.Equal(t, []ID{Base, Sketch, Line}, s.Modes())

	q.Pop()
	require.NoError(t, s.Flush())
	q.Pop()
	require.NoError(t, s.Flush())
	assert.Equal(t, []ID{Base}, s.Modes())
}

func TestPopBaseIsReportedNoOp(t *testing.T) {
	s, q, base := newRecorderStack()

	q.Pop()
	err := s.Flush()
	assert.ErrorIs(t, err, ErrPopBase)
	assert.Equal(t, []ID{Base}, s.Modes())
	assert.Zero(t, base.exited)

	_, err = s.Dispatch(anyKey)
	assert.NoError(t, err, "stack stays usable after a rejected pop")
	assert.Equal(t, 1, base.events)
}

func TestDuplicatePush(t *testing.T) {
	s, q, _ := newRecorderStack()
	first := &recorder{}

	q.Push(New(Sketch, first))
	q.Push(New(Sketch, &recorder{}))
	err := s.Flush()

	assert.ErrorIs(t, err, ErrDuplicateMode)
	assert.Equal(t, []ID{Base, Sketch}, s.Modes())
	data, ok := s.Data(Sketch)
	require.True(t, ok)
	assert.Same(t, first, data)

	q.Push(New(Base, &recorder{}))
	assert.ErrorIs(t, s.Flush(), ErrDuplicateMode)
}

func TestMessagesApplyAfterDispatchInOrder(t *testing.T) {
	s, q, base := newRecorderStack()
	line := &recorder{}
	circle := &recorder{}

	var duringDispatch []ID
	base.onEvent = func(p *recorder) error {
		q.Push(New(Line, line))
		duringDispatch = s.Modes()
		q.Push(New(Circle, circle))
		return nil
	}

	consumed, err := s.Dispatch(anyKey)
	require.NoError(t, err)
	assert.True(t, consumed)
	assert.Equal(t, []ID{Base}, duringDispatch, "no mutation is visible while the handler runs")
	assert.Equal(t, []ID{Base, Line, Circle}, s.Modes())

	_, err = s.Dispatch(anyKey)
	require.NoError(t, err)
	assert.Equal(t, 1, base.events)
	assert.Zero(t, line.events, "only the top mode receives input")
	assert.Equal(t, 1, circle.events)
}

func TestPopAndPushIsAtomic(t *testing.T) {
	var changes []Change
	s, q, _ := newRecorderStack(WithObserver(func(c Change) { changes = append(changes, c) }))
	line := &recorder{}

	q.Push(New(Sketch, &recorder{}))
	q.Push(New(Line, line))
	require.NoError(t, s.Flush())
	changes = nil

	q.PopAndPush(New(Circle, &recorder{}))
	require.NoError(t, s.Flush())

	assert.Equal(t, []ID{Base, Sketch, Circle}, s.Modes())
	assert.Equal(t, 1, line.exited)
	require.Len(t, changes, 1)
	assert.Equal(t, []ID{Base, Sketch, Circle}, changes[0].Modes)

	q.PopAndPush(New(Sketch, &recorder{}))
	assert.ErrorIs(t, s.Flush(), ErrDuplicateMode)
	assert.Equal(t, []ID{Base, Sketch, Circle}, s.Modes(), "rejected message must not pop")
}

func TestPopAndPushOnBase(t *testing.T) {
	s, q, _ := newRecorderStack()

	q.PopAndPush(New(Sketch, &recorder{}))
	require.NoError(t, s.Flush())
	assert.Equal(t, []ID{Base, Sketch}, s.Modes())
}

func TestReplaceSwapsTopMode(t *testing.T) {
	var changes []Change
	s, q, _ := newRecorderStack(WithObserver(func(c Change) { changes = append(changes, c) }))
	sketch := &recorder{}
	line := &recorder{}
	circle := &recorder{}

	q.Push(New(Sketch, sketch))
	q.Push(New(Line, line))
	require.NoError(t, s.Flush())
	changes = nil

	q.Replace(New(Circle, circle))
	require.NoError(t, s.Flush())

	assert.Equal(t, []ID{Base, Sketch, Circle}, s.Modes())
	assert.Equal(t, 1, line.exited)
	assert.Zero(t, sketch.exited)
	data, _ := s.Data(Circle)
	assert.Same(t, circle, data)
	require.Len(t, changes, 1, "pop and push are observed as one change")
	assert.Equal(t, []ID{Base, Sketch, Circle}, changes[0].Modes)

	q.Replace(New(Sketch, &recorder{}))
	assert.ErrorIs(t, s.Flush(), ErrDuplicateMode)
	assert.Equal(t, []ID{Base, Sketch, Circle}, s.Modes(), "rejected message must not pop")
	assert.Zero(t, circle.exited)

	q.Replace(New(Base, &recorder{}))
	assert.ErrorIs(t, s.Flush(), ErrDuplicateMode)
}

func TestPopUntil(t *testing.T) {
	s, q, _ := newRecorderStack()
	sketch := &recorder{}
	line := &recorder{}

	q.Push(New(Sketch, sketch))
	q.Push(New(Line, line))
	require.NoError(t, s.Flush())

	q.PopUntil(Circle)
	assert.ErrorIs(t, s.Flush(), ErrModeNotActive)
	assert.Equal(t, []ID{Base, Sketch, Line}, s.Modes())

	q.PopUntil(Sketch)
	require.NoError(t, s.Flush())
	assert.Equal(t, []ID{Base, Sketch}, s.Modes())
	assert.Equal(t, 1, line.exited)

	q.PopUntil(Base)
	q.Push(New(Circle, &recorder{}))
	require.NoError(t, s.Flush())
	assert.Equal(t, []ID{Base, Circle}, s.Modes())
	assert.Equal(t, 1, sketch.exited)

	q.PopUntil(Base)
	q.PopUntil(Base)
	require.NoError(t, s.Flush(), "unwinding to the top mode is a no-op")
	assert.Equal(t, []ID{Base}, s.Modes())
}

func TestHandlerErrorIsReturned(t *testing.T) {
	s, q, base := newRecorderStack()
	boom := errors.New("boom")
	base.onEvent = func(p *recorder) error {
		q.Push(New(Sketch, &recorder{}))
		return boom
	}

	consumed, err := s.Dispatch(anyKey)
	assert.True(t, consumed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []ID{Base, Sketch}, s.Modes(), "queued messages still apply")
}

func TestMissingHandlerDoesNotConsume(t *testing.T) {
	q := NewQueue()
	s := NewStack(Table{}, q)

	consumed, err := s.Dispatch(anyKey)
	assert.NoError(t, err)
	assert.False(t, consumed)
}

func TestHandlerForRejectsWrongData(t *testing.T) {
	h := HandlerFor(func(p *recorder, ev input.Event) (bool, error) { return true, nil })
	_, err := h("not a recorder", anyKey)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	id, err := Parse("line")
	require.NoError(t, err)
	assert.Equal(t, Line, id)

	_, err = Parse("Extrude")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
