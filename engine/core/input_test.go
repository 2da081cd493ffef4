package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputHeldSet(t *testing.T) {
	in := NewInput()

	in.press(KeyA)
	in.press(KeyB)
	in.press(KeyA) // duplicate press is idempotent
	assert.True(t, in.IsHeld(KeyA))
	assert.True(t, in.IsHeld(KeyB))
	assert.Len(t, in.Held(), 2)
	assert.Equal(t, KeyA, in.LastKey())

	in.release(KeyA)
	assert.False(t, in.IsHeld(KeyA))
	assert.True(t, in.IsHeld(KeyB))
	assert.Equal(t, KeyA, in.LastKey(), "releases update the last transition too")

	in.release(KeyA) // releasing a key that is not held is harmless
	assert.Len(t, in.Held(), 1)
}

func TestKeyEventsInvokeCallbackAndRepaint(t *testing.T) {
	var seen []Key
	cfg := &Config{
		KeyDown: func(p *P5, k Key) error {
			seen = append(seen, k)
			return nil
		},
	}
	p, win := newTestP5(cfg)

	require.NoError(t, p.OnKeyDown(KeySpace))
	assert.Equal(t, []Key{KeySpace}, seen)
	assert.Equal(t, 1, win.repaints)
	assert.True(t, p.Input().IsHeld(KeySpace))

	// A release runs through the same KeyDown callback; the held set
	// is how the client tells the transitions apart.
	require.NoError(t, p.OnKeyUp(KeySpace))
	assert.Equal(t, []Key{KeySpace, KeySpace}, seen)
	assert.Equal(t, 2, win.repaints)
	assert.False(t, p.Input().IsHeld(KeySpace))
}

func TestKeyCallbackErrorPropagates(t *testing.T) {
	cfg := &Config{
		KeyDown: func(p *P5, k Key) error { return assert.AnError },
	}
	p, win := newTestP5(cfg)

	assert.ErrorIs(t, p.OnKeyDown(KeyA), assert.AnError)
	// The repaint request still happens; the error is the host's to
	// act on.
	assert.Equal(t, 1, win.repaints)
}

func TestKeyEventsWithoutCallback(t *testing.T) {
	p, win := newTestP5(&Config{})
	require.NoError(t, p.OnKeyDown(KeyA))
	require.NoError(t, p.OnKeyUp(KeyA))
	assert.Equal(t, 2, win.repaints)
}
