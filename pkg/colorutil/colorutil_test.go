package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"blue", Blue},
		{" Red ", Red},
		{"#00f", Blue},
		{"#ff0000", Red},
		{"#ff000080", color.RGBA{R: 0x80, A: 0x80}},
		{"#ffffff00", color.RGBA{}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseTranslucentRoundTrip(t *testing.T) {
	c, err := Parse("#00ff0080")
	require.NoError(t, err)
	assert.LessOrEqual(t, c.G, c.A, "premultiplied channel exceeds alpha")
	assert.Equal(t, "#00ff0080", Hex(c))
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "purple", "#12", "#gggggg"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0000ff", Hex(Blue))
	assert.Equal(t, "#11223344", Hex(color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}))
}
