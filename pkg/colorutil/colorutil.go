// Package colorutil provides shared color utilities for the matching board.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common stroke and highlight colors used throughout the application.
var (
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Blue        = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Transparent = color.RGBA{}
	ActiveFill  = color.RGBA{R: 0xD6, G: 0xE4, B: 0xFF, A: 255} // Pale blue behind active items
	ItemBorder  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 255}
)

var named = map[string]color.RGBA{
	"black": Black,
	"white": White,
	"blue":  Blue,
	"red":   Red,
}

// Parse converts "#rgb", "#rrggbb", "#rrggbbaa" or a basic color name
// (black, white, blue, red) into an RGBA color.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := named[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if hex == s {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("bad color length %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	// Hex digits are straight alpha; color.RGBA is premultiplied.
	n := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(n).(color.RGBA), nil
}

// Hex formats a color as "#rrggbb", appending alpha when not opaque.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
