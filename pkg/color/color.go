// Package color implements the RGBA value type carried by color dialog
// controls. Parsing is deliberately permissive: values arrive from scripts
// and from previously serialised dialog state, and an unreadable value
// should degrade to the zero color rather than fail control construction.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGBA value. The zero value is black with a
// zero alpha channel.
type Color struct {
	R, G, B, A uint8
}

// New builds a color from explicit channel values.
func New(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Parse reads a color from any of the accepted source representations:
//
//	#RGB, #RRGGBB, #RRGGBBAA  (leading # optional)
//	rgb(r, g, b), rgba(r, g, b, a)  with decimal channels
//	&HBBGGRR&, &HAABBGGRR&  (ASS override style, alpha leading)
//
// Unparseable input yields the zero Color.
func Parse(s string) Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}
	}

	if strings.HasPrefix(s, "&") {
		return parseASS(s)
	}
	if lower := strings.ToLower(s); strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(s)
	}
	return parseHex(strings.TrimPrefix(s, "#"))
}

func parseHex(s string) Color {
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return Color{}
		}
		r := uint8(v >> 8 & 0xF)
		g := uint8(v >> 4 & 0xF)
		b := uint8(v & 0xF)
		return Color{R: r<<4 | r, G: g<<4 | g, B: b<<4 | b}
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}
		}
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	case 8:
		v, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return Color{}
		}
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	default:
		return Color{}
	}
}

func parseRGBFunc(s string) Color {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end < open {
		return Color{}
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}
	}
	channels := make([]uint8, 0, 4)
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 16)
		if err != nil {
			return Color{}
		}
		if v > 255 {
			v = 255
		}
		channels = append(channels, uint8(v))
	}
	c := Color{R: channels[0], G: channels[1], B: channels[2]}
	if len(channels) == 4 {
		c.A = channels[3]
	}
	return c
}

// parseASS reads the &H...& override form, which stores channels in
// blue-green-red order with an optional leading alpha byte.
func parseASS(s string) Color {
	body := strings.Trim(s, "&")
	body = strings.TrimPrefix(strings.TrimPrefix(body, "H"), "h")
	if body == "" || len(body) > 8 {
		return Color{}
	}
	v, err := strconv.ParseUint(body, 16, 64)
	if err != nil {
		return Color{}
	}
	c := Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
	}
	if len(body) > 6 {
		c.A = uint8(v >> 24)
	}
	return c
}

// Hex formats the color as `#RRGGBB`, or `#RRGGBBAA` when withAlpha is set.
// This is the canonical form used for serialisation and readback.
func (c Color) Hex(withAlpha bool) string {
	if withAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the alpha-less hex form.
func (c Color) String() string {
	return c.Hex(false)
}
