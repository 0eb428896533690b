// Package script reads recorded input sequences used to drive an editor
// session without a window.
//
// A script is YAML:
//
//	steps:
//	  - key: s
//	  - key: l
//	  - click: [0, 0]
//	  - click: [4, 0]
//	    button: Shift+Left
//	  - move: [5, 5]
//	  - scroll: -1
//
// Every step holds exactly one of key, click, move or scroll.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/input"
)

// ErrInvalidStep is wrapped by step decoding failures
var ErrInvalidStep = errors.New("invalid script step")

// Step is one scripted input
type Step struct {
	Key    string    `mapstructure:"key"`
	Click  []float64 `mapstructure:"click"`
	Button string    `mapstructure:"button"`
	Move   []float64 `mapstructure:"move"`
	Scroll float64   `mapstructure:"scroll"`
}

// Script is a decoded input sequence
type Script struct {
	Steps []Step `mapstructure:"steps"`
}

// Load reads a script file
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a script
func Read(r io.Reader) (*Script, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	var s Script
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode script: %w", err)
	}
	return &s, nil
}

// Events expands the script into input events. Keys and clicks become a
// press followed by a release.
func (s *Script) Events() ([]input.Event, error) {
	var events []input.Event
	var last geometry.Vector2
	for i, step := range s.Steps {
		evs, err := step.events(last)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		for _, ev := range evs {
			if ev.Kind == input.MouseMove || ev.Kind == input.MousePress {
				last = ev.Position
			}
		}
		events = append(events, evs...)
	}
	return events, nil
}

func (st Step) events(last geometry.Vector2) ([]input.Event, error) {
	set := 0
	if st.Key != "" {
		set++
	}
	if st.Click != nil {
		set++
	}
	if st.Move != nil {
		set++
	}
	if st.Scroll != 0 {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: need exactly one of key, click, move or scroll", ErrInvalidStep)
	}

	switch {
	case st.Key != "":
		c, err := input.ParseChord(st.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
		return []input.Event{input.KeyDown(c.Key, c.Mods), input.KeyUp(c.Key, c.Mods)}, nil

	case st.Click != nil:
		pos, err := position(st.Click)
		if err != nil {
			return nil, err
		}
		button := st.Button
		if button == "" {
			button = "Left"
		}
		c, err := input.ParseMouseChord(button)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
		return []input.Event{
			input.Move(pos, pos.Sub(last), c.Mods),
			input.MouseDown(c.Button, pos, c.Mods),
			input.MouseUp(c.Button, pos, c.Mods),
		}, nil

	case st.Move != nil:
		pos, err := position(st.Move)
		if err != nil {
			return nil, err
		}
		return []input.Event{input.Move(pos, pos.Sub(last), 0)}, nil

	default:
		return []input.Event{input.Wheel(last, geometry.Vector2{Y: st.Scroll}, 0)}, nil
	}
}

func position(xy []float64) (geometry.Vector2, error) {
	if len(xy) != 2 {
		return geometry.Vector2{}, fmt.Errorf("%w: position needs [x, y], got %v", ErrInvalidStep, xy)
	}
	p := geometry.Vector2{X: xy[0], Y: xy[1]}
	if !p.IsFinite() {
		return geometry.Vector2{}, fmt.Errorf("%w: position %v is not finite", ErrInvalidStep, xy)
	}
	return p, nil
}

// Handler consumes input events, typically an editor session
type Handler interface {
	HandleEvent(ev input.Event) (bool, error)
}

// Result summarizes a run
type Result struct {
	Events   int
	Consumed int
	// Errors holds the rejected events. They do not stop the run.
	Errors []error
}

// Run feeds every event of the script to h
func (s *Script) Run(h Handler) (Result, error) {
	var res Result
	events, err := s.Events()
	if err != nil {
		return res, err
	}
	for i, ev := range events {
		consumed, err := h.HandleEvent(ev)
		res.Events++
		if consumed {
			res.Consumed++
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("event %d (%s): %w", i+1, ev, err))
		}
	}
	return res, nil
}
