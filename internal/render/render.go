// Package render turns firmware console attributes and snapshots into ANSI
// escape sequences.
package render

import (
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/terminal"
)

// palette maps EFI colors onto the sixteen ANSI colors.
var palette = [...]ansi.BasicColor{
	firmware.Black:        ansi.Black,
	firmware.Blue:         ansi.Blue,
	firmware.Green:        ansi.Green,
	firmware.Cyan:         ansi.Cyan,
	firmware.Red:          ansi.Red,
	firmware.Magenta:      ansi.Magenta,
	firmware.Brown:        ansi.Yellow,
	firmware.LightGray:    ansi.White,
	firmware.DarkGray:     ansi.BrightBlack,
	firmware.LightBlue:    ansi.BrightBlue,
	firmware.LightGreen:   ansi.BrightGreen,
	firmware.LightCyan:    ansi.BrightCyan,
	firmware.LightRed:     ansi.BrightRed,
	firmware.LightMagenta: ansi.BrightMagenta,
	firmware.Yellow:       ansi.BrightYellow,
	firmware.White:        ansi.BrightWhite,
}

// ANSIColor returns the ANSI color displaying c.
func ANSIColor(c firmware.Color) ansi.BasicColor {
	return palette[c&0x0f]
}

// FirmwareColor returns the EFI color whose ANSI rendition equals c. A nil
// color yields def.
func FirmwareColor(c color.Color, def firmware.Color) firmware.Color {
	if c == nil {
		return def
	}
	if bc, ok := c.(ansi.BasicColor); ok && int(bc) < len(palette) {
		for i, p := range palette {
			if p == bc {
				return firmware.Color(i)
			}
		}
	}
	key := colorKey(c)
	for i, p := range palette {
		if colorKey(p) == key {
			return firmware.Color(i)
		}
	}
	return def
}

// SGR returns a sequence that resets attributes and selects the pair.
func SGR(fg, bg firmware.Color) string {
	return ansi.ResetStyle + ansi.NewStyle().
		ForegroundColor(ANSIColor(fg)).
		BackgroundColor(ANSIColor(bg)).
		String()
}

// Snapshot renders a snapshot to the writer using ANSI escapes.
func Snapshot(w io.Writer, snap terminal.Snapshot) error {
	var b strings.Builder
	b.WriteString(ansi.ResetStyle)
	first := true
	var curFG, curBG firmware.Color
	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			c := snap.Cells[y*snap.Cols+x]
			if c.Content == "" && c.Width == 0 {
				continue
			}
			if first || c.FG != curFG || c.BG != curBG {
				b.WriteString(SGR(c.FG, c.BG))
				curFG, curBG = c.FG, c.BG
				first = false
			}
			if c.Content == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c.Content)
		}
		b.WriteString(ansi.ResetStyle)
		b.WriteByte('\n')
		first = true
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func colorKey(c color.Color) uint32 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return uint32(n.R)<<24 | uint32(n.G)<<16 | uint32(n.B)<<8 | uint32(n.A)
}
