package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/input"
)

func TestReadAndExpand(t *testing.T) {
	src := `
steps:
  - key: s
  - click: [1, 2]
  - click: [3, 2]
    button: Shift+Middle
  - move: [3, 5]
  - scroll: -1
`
	s, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, s.Steps, 5)

	events, err := s.Events()
	require.NoError(t, err)

	kinds := make([]input.Kind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []input.Kind{
		input.KeyPress, input.KeyRelease,
		input.MouseMove, input.MousePress, input.MouseRelease,
		input.MouseMove, input.MousePress, input.MouseRelease,
		input.MouseMove,
		input.Scroll,
	}, kinds)

	assert.Equal(t, input.KeyRune('s'), events[0].Key)
	assert.Equal(t, geometry.Vector2{X: 1, Y: 2}, events[3].Position)
	assert.Equal(t, input.ButtonLeft, events[3].Button)
	assert.Equal(t, input.ButtonMiddle, events[6].Button)
	assert.Equal(t, input.ModShift, events[6].Mods)
	assert.Equal(t, geometry.Vector2{X: 2}, events[5].Delta)
	assert.Equal(t, geometry.Vector2{Y: 3}, events[8].Delta)
	assert.Equal(t, geometry.Vector2{X: 3, Y: 5}, events[9].Position)
	assert.Equal(t, -1.0, events[9].Delta.Y)
}

func TestInvalidSteps(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty step", "steps:\n  - {}\n"},
		{"two inputs", "steps:\n  - key: a\n    move: [1, 1]\n"},
		{"bad key", "steps:\n  - key: Hyper+a\n"},
		{"bad button", "steps:\n  - click: [0, 0]\n    button: Thumb\n"},
		{"short position", "steps:\n  - click: [1]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Read(strings.NewReader(tt.src))
			require.NoError(t, err)
			_, err = s.Events()
			assert.ErrorIs(t, err, ErrInvalidStep)
		})
	}
}

func TestUnknownField(t *testing.T) {
	_, err := Read(strings.NewReader("steps:\n  - press: a\n"))
	assert.Error(t, err)
}

func TestEmptyScript(t *testing.T) {
	s, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	events, err := s.Events()
	require.NoError(t, err)
	assert.Empty(t, events)
}

type recorder struct {
	events []input.Event
}

func (r *recorder) HandleEvent(ev input.Event) (bool, error) {
	r.events = append(r.events, ev)
	if ev.Kind == input.MousePress {
		return true, errBoom
	}
	return ev.Kind == input.KeyPress, nil
}

var errBoom = errors.New("boom")

func TestRunCollectsErrorsAndContinues(t *testing.T) {
	s, err := Read(strings.NewReader("steps:\n  - click: [1, 1]\n  - key: l\n  - click: [2, 2]\n"))
	require.NoError(t, err)

	var r recorder
	res, err := s.Run(&r)
	require.NoError(t, err)

	assert.Equal(t, 8, res.Events)
	assert.Len(t, r.events, 8)
	// one key press and two mouse presses
	assert.Equal(t, 3, res.Consumed)
	require.Len(t, res.Errors, 2)
	assert.ErrorIs(t, res.Errors[0], errBoom)
	assert.Contains(t, res.Errors[0].Error(), "event 2")
}

func TestRunStopsOnInvalidStep(t *testing.T) {
	s := &Script{Steps: []Step{{Key: "NoSuchKey"}}}
	var r recorder
	_, err := s.Run(&r)
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.Empty(t, r.events)
}
