package keymap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gosketch/internal/mode"
	"github.com/philipparndt/gosketch/pkg/input"
)

// ErrSyntax is wrapped by every ConfigError
var ErrSyntax = errors.New("keymap syntax error")

// ConfigError is a problem on one line of a keymap file
type ConfigError struct {
	Line    int
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return ErrSyntax
}

// Load reads a keymap file. Like Parse it returns the readable bindings
// together with any syntax errors.
func Load(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keymap: %w", err)
	}
	defer f.Close()
	km, err := Parse(f)
	if err != nil {
		return km, fmt.Errorf("%s: %w", path, err)
	}
	return km, nil
}

// ParseString parses keymap source held in memory
func ParseString(s string) (*Keymap, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads keymap source. Every faulty line is reported: the returned
// error joins one *ConfigError per line. The keymap holding all lines that
// did parse is returned even when err is non-nil.
func Parse(r io.Reader) (*Keymap, error) {
	km := New()
	var errs []error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if msg := km.parseLine(line); msg != "" {
			errs = append(errs, &ConfigError{Line: lineNo, Message: msg})
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("reading keymap: %w", err))
	}
	return km, errors.Join(errs...)
}

// parseLine applies one command and returns a message describing what is
// wrong with it, or "" on success.
func (k *Keymap) parseLine(line string) string {
	parts, err := splitLine(line)
	if err != nil {
		return err.Error()
	}

	switch strings.ToLower(parts[0]) {
	case "bind":
		if len(parts) != 4 {
			return "Bind requires exactly 3 arguments: <mode> <chord> <action>"
		}
		s, err := parseScope(parts[1])
		if err != nil {
			return err.Error()
		}
		chord, err := input.ParseChord(parts[2])
		if err != nil {
			return fmt.Sprintf("cannot bind key %q: %v", parts[2], err)
		}
		action, err := ParseAction(parts[3])
		if err != nil {
			return err.Error()
		}
		k.bindKey(s, chord, action)

	case "mousebind":
		if len(parts) != 4 {
			return "MouseBind requires exactly 3 arguments: <mode> <mouse-chord> <action>"
		}
		s, err := parseScope(parts[1])
		if err != nil {
			return err.Error()
		}
		chord, err := input.ParseMouseChord(parts[2])
		if err != nil {
			return fmt.Sprintf("invalid mouse input %q: %v", parts[2], err)
		}
		action, err := ParseAction(parts[3])
		if err != nil {
			return err.Error()
		}
		k.bindMouse(s, chord, action)

	case "set":
		if len(parts) != 3 {
			return "Set requires exactly 2 arguments: <setting> <value>"
		}
		return k.set(parts[1], parts[2])

	default:
		return fmt.Sprintf("unknown command %q", parts[0])
	}
	return ""
}

func (k *Keymap) set(name, value string) string {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return fmt.Sprintf("setting %s needs a positive number, got %q", name, value)
	}
	switch strings.ToLower(name) {
	case "snap_radius":
		k.Settings.SnapRadius = v
	case "pick_radius":
		k.Settings.PickRadius = v
	case "zoom_step":
		if v <= 1 {
			return fmt.Sprintf("zoom_step must be greater than 1, got %q", value)
		}
		k.Settings.ZoomStep = v
	default:
		return fmt.Sprintf("unknown setting %q", name)
	}
	return ""
}

func parseScope(name string) (scope, error) {
	if strings.EqualFold(name, "global") {
		return global, nil
	}
	id, err := mode.Parse(name)
	if err != nil {
		return 0, err
	}
	return scope(id), nil
}

// splitLine splits a line on white space. Double quotes group a token that
// contains spaces; a # outside quotes starts a trailing comment.
func splitLine(line string) ([]string, error) {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	quoted := false

	flush := func() {
		if cur.Len() > 0 || quoted {
			parts = append(parts, cur.String())
		}
		cur.Reset()
		quoted = false
	}

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			quoted = true
		case inQuotes:
			cur.WriteRune(r)
		case r == '#':
			flush()
			return parts, nil
		case r == ' ' || r == '\t':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuotes {
		return nil, errors.New("unterminated quoted string")
	}
	flush()
	return parts, nil
}
