package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		spec string
		want Color
	}{
		{"#ff0000", Color{255, 0, 0, 255}},
		{"#00ff00", Color{0, 255, 0, 255}},
		{"#112233", Color{0x11, 0x22, 0x33, 255}},
		{"#11223344", Color{0x11, 0x22, 0x33, 0x44}},
		{"#f00", Color{255, 0, 0, 255}},
		{"#f008", Color{255, 0, 0, 0x88}},
	}
	for _, tt := range tests {
		c, err := Parse(tt.spec)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.want, c, tt.spec)
	}
}

func TestParseNamed(t *testing.T) {
	c, err := Parse("red")
	require.NoError(t, err)
	assert.Equal(t, Color{255, 0, 0, 255}, c)

	// Lookup is case-insensitive.
	upper, err := Parse("Red")
	require.NoError(t, err)
	assert.Equal(t, c, upper)
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("NotAColor")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "NotAColor")
}

func TestParseBadHex(t *testing.T) {
	for _, spec := range []string{"#", "#zzz", "#12345", "#gg0000"} {
		_, err := Parse(spec)
		assert.ErrorIs(t, err, ErrNotFound, spec)
	}
}

func TestColorImplementsColor(t *testing.T) {
	r, g, b, a := Color{255, 0, 0, 255}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}
