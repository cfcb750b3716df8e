package backend

import (
	"image/color"

	"github.com/charmbracelet/x/ansi"

	"pkt.systems/efitui/internal/firmware"
)

// Colors used when a cell color has no firmware equivalent.
const (
	DefaultForeground = firmware.White
	DefaultBackground = firmware.Black
)

// nativeColors maps the sixteen basic ANSI colors onto the firmware palette.
// The firmware has a single yellow, so bright yellow shares it.
var nativeColors = map[ansi.BasicColor]firmware.Color{
	ansi.Black:         firmware.Black,
	ansi.Red:           firmware.Red,
	ansi.Green:         firmware.Green,
	ansi.Yellow:        firmware.Yellow,
	ansi.Blue:          firmware.Blue,
	ansi.Magenta:       firmware.Magenta,
	ansi.Cyan:          firmware.Cyan,
	ansi.White:         firmware.LightGray,
	ansi.BrightBlack:   firmware.DarkGray,
	ansi.BrightRed:     firmware.LightRed,
	ansi.BrightGreen:   firmware.LightGreen,
	ansi.BrightYellow:  firmware.Yellow,
	ansi.BrightBlue:    firmware.LightBlue,
	ansi.BrightMagenta: firmware.LightMagenta,
	ansi.BrightCyan:    firmware.LightCyan,
	ansi.BrightWhite:   firmware.White,
}

// NativeColor maps c onto the firmware palette. Reset (nil), indexed and RGB
// colors are unmapped.
func NativeColor(c color.Color) (firmware.Color, bool) {
	bc, ok := c.(ansi.BasicColor)
	if !ok {
		return 0, false
	}
	native, ok := nativeColors[bc]
	return native, ok
}

func foreground(c color.Color) firmware.Color {
	if native, ok := NativeColor(c); ok {
		return native
	}
	return DefaultForeground
}

func background(c color.Color) firmware.Color {
	if native, ok := NativeColor(c); ok {
		return native
	}
	return DefaultBackground
}
