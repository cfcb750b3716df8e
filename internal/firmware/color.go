package firmware

import "fmt"

// Color is an EFI text attribute color.
type Color uint8

// EFI text colors. Only the first eight are valid backgrounds.
const (
	Black        Color = 0x0
	Blue         Color = 0x1
	Green        Color = 0x2
	Cyan         Color = 0x3
	Red          Color = 0x4
	Magenta      Color = 0x5
	Brown        Color = 0x6
	LightGray    Color = 0x7
	DarkGray     Color = 0x8
	LightBlue    Color = 0x9
	LightGreen   Color = 0xA
	LightCyan    Color = 0xB
	LightRed     Color = 0xC
	LightMagenta Color = 0xD
	Yellow       Color = 0xE
	White        Color = 0xF
)

var colorNames = [...]string{
	"Black", "Blue", "Green", "Cyan", "Red", "Magenta", "Brown", "LightGray",
	"DarkGray", "LightBlue", "LightGreen", "LightCyan", "LightRed", "LightMagenta", "Yellow", "White",
}

// Valid reports whether c is one of the sixteen EFI colors.
func (c Color) Valid() bool {
	return c <= White
}

func (c Color) String() string {
	if c.Valid() {
		return colorNames[c]
	}
	return fmt.Sprintf("Color(%#x)", uint8(c))
}

// TextAttr packs a color pair the way EFI_TEXT_ATTR does. The background
// keeps only its low three bits.
func TextAttr(fg, bg Color) uint8 {
	return uint8(fg&0x0f) | uint8(bg&0x07)<<4
}

// SplitAttr unpacks an EFI text attribute.
func SplitAttr(attr uint8) (fg, bg Color) {
	return Color(attr & 0x0f), Color((attr >> 4) & 0x07)
}
