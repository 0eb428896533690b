package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := map[string]Key{
		"Escape": KeyEscape,
		"esc":    KeyEscape,
		"Return": KeyEnter,
		"F5":     KeyF5,
		"l":      KeyRune('l'),
		"L":      KeyRune('l'),
		"plus":   KeyRune('+'),
		"1":      KeyRune('1'),
	}
	for in, expected := range tests {
		k, err := ParseKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, k, in)
	}

	_, err := ParseKey("Hyper")
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestParseChord(t *testing.T) {
	c, err := ParseChord("Ctrl+Shift+s")
	require.NoError(t, err)
	assert.Equal(t, Chord{Key: KeyRune('s'), Mods: ModCtrl | ModShift}, c)
	assert.Equal(t, "Ctrl+Shift+s", c.String())

	c, err = ParseChord("Delete")
	require.NoError(t, err)
	assert.Equal(t, Chord{Key: KeyDelete}, c)

	_, err = ParseChord("Ctrl+")
	assert.ErrorIs(t, err, ErrUnknownInput)

	_, err = ParseChord("Fn+a")
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestParseMouseChord(t *testing.T) {
	c, err := ParseMouseChord("Shift+Middle")
	require.NoError(t, err)
	assert.Equal(t, MouseChord{Button: ButtonMiddle, Mods: ModShift}, c)

	c, err = ParseMouseChord("scrollup")
	require.NoError(t, err)
	assert.Equal(t, ScrollUp, c.Button)

	_, err = ParseMouseChord("Left+Right")
	assert.ErrorIs(t, err, ErrUnknownInput)
}

func TestKeyRune(t *testing.T) {
	r, ok := KeyRune('Q').Rune()
	require.True(t, ok)
	assert.Equal(t, 'q', r)
	assert.Equal(t, KeyNone, KeyRune('\n'))
	assert.Equal(t, "q", KeyRune('q').String())
}

func TestEventString(t *testing.T) {
	ev := KeyDown(KeyEscape, ModCtrl)
	assert.Equal(t, "key-press Ctrl+Escape", ev.String())
}

func TestArrowKeysAndKeyEvents(t *testing.T) {
	up, err := ParseKey("Up")
	require.NoError(t, err)
	assert.Equal(t, KeyArrowUp, up)
	down, err := ParseKey("down")
	require.NoError(t, err)
	assert.Equal(t, KeyArrowDown, down)
	assert.Equal(t, "Up", KeyArrowUp.String())

	press := KeyDown(KeyArrowUp, 0)
	release := KeyUp(KeyArrowDown, ModShift)
	assert.Equal(t, KeyPress, press.Kind)
	assert.Equal(t, KeyArrowUp, press.Key)
	assert.Equal(t, "key-release Shift+Down", release.String())
}
