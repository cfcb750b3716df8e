package firmware

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ScanCode identifies a non-printable key in EFI_INPUT_KEY.
type ScanCode uint16

// EFI scan codes.
const (
	ScanNull           ScanCode = 0x00
	ScanUp             ScanCode = 0x01
	ScanDown           ScanCode = 0x02
	ScanRight          ScanCode = 0x03
	ScanLeft           ScanCode = 0x04
	ScanHome           ScanCode = 0x05
	ScanEnd            ScanCode = 0x06
	ScanInsert         ScanCode = 0x07
	ScanDelete         ScanCode = 0x08
	ScanPageUp         ScanCode = 0x09
	ScanPageDown       ScanCode = 0x0A
	ScanF1             ScanCode = 0x0B
	ScanF2             ScanCode = 0x0C
	ScanF3             ScanCode = 0x0D
	ScanF4             ScanCode = 0x0E
	ScanF5             ScanCode = 0x0F
	ScanF6             ScanCode = 0x10
	ScanF7             ScanCode = 0x11
	ScanF8             ScanCode = 0x12
	ScanF9             ScanCode = 0x13
	ScanF10            ScanCode = 0x14
	ScanF11            ScanCode = 0x15
	ScanF12            ScanCode = 0x16
	ScanEsc            ScanCode = 0x17
	ScanPause          ScanCode = 0x48
	ScanF13            ScanCode = 0x68
	ScanF14            ScanCode = 0x69
	ScanF15            ScanCode = 0x6A
	ScanF16            ScanCode = 0x6B
	ScanF17            ScanCode = 0x6C
	ScanF18            ScanCode = 0x6D
	ScanF19            ScanCode = 0x6E
	ScanF20            ScanCode = 0x6F
	ScanF21            ScanCode = 0x70
	ScanF22            ScanCode = 0x71
	ScanF23            ScanCode = 0x72
	ScanF24            ScanCode = 0x73
	ScanMute           ScanCode = 0x7F
	ScanVolumeUp       ScanCode = 0x80
	ScanVolumeDown     ScanCode = 0x81
	ScanBrightnessUp   ScanCode = 0x100
	ScanBrightnessDown ScanCode = 0x101
	ScanSuspend        ScanCode = 0x102
	ScanHibernate      ScanCode = 0x103
	ScanToggleDisplay  ScanCode = 0x104
	ScanRecovery       ScanCode = 0x105
	ScanEject          ScanCode = 0x106
)

var scanNames = map[ScanCode]string{
	ScanUp:             "up",
	ScanDown:           "down",
	ScanRight:          "right",
	ScanLeft:           "left",
	ScanHome:           "home",
	ScanEnd:            "end",
	ScanInsert:         "insert",
	ScanDelete:         "delete",
	ScanPageUp:         "pgup",
	ScanPageDown:       "pgdown",
	ScanF1:             "f1",
	ScanF2:             "f2",
	ScanF3:             "f3",
	ScanF4:             "f4",
	ScanF5:             "f5",
	ScanF6:             "f6",
	ScanF7:             "f7",
	ScanF8:             "f8",
	ScanF9:             "f9",
	ScanF10:            "f10",
	ScanF11:            "f11",
	ScanF12:            "f12",
	ScanEsc:            "esc",
	ScanPause:          "pause",
	ScanF13:            "f13",
	ScanF14:            "f14",
	ScanF15:            "f15",
	ScanF16:            "f16",
	ScanF17:            "f17",
	ScanF18:            "f18",
	ScanF19:            "f19",
	ScanF20:            "f20",
	ScanF21:            "f21",
	ScanF22:            "f22",
	ScanF23:            "f23",
	ScanF24:            "f24",
	ScanMute:           "mute",
	ScanVolumeUp:       "volumeup",
	ScanVolumeDown:     "volumedown",
	ScanBrightnessUp:   "brightnessup",
	ScanBrightnessDown: "brightnessdown",
	ScanSuspend:        "suspend",
	ScanHibernate:      "hibernate",
	ScanToggleDisplay:  "toggledisplay",
	ScanRecovery:       "recovery",
	ScanEject:          "eject",
}

// Printable characters that have names of their own.
var charNames = map[uint16]string{
	'\r': "enter",
	'\t': "tab",
	0x08: "backspace",
	' ':  "space",
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"pageup":   "pgup",
	"pagedown": "pgdown",
	"return":   "enter",
	"raisevol": "volumeup",
	"lowervol": "volumedown",
}

var scanByName = func() map[string]ScanCode {
	m := make(map[string]ScanCode, len(scanNames))
	for code, name := range scanNames {
		m[name] = code
	}
	return m
}()

var charByName = func() map[string]uint16 {
	m := make(map[string]uint16, len(charNames))
	for ch, name := range charNames {
		m[name] = ch
	}
	return m
}()

func (s ScanCode) String() string {
	if s == ScanNull {
		return "null"
	}
	if name, ok := scanNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scan(%#x)", uint16(s))
}

// Key mirrors EFI_INPUT_KEY. A key with ScanNull is printable and carries a
// UCS-2 character; any other scan code is a special key.
type Key struct {
	ScanCode    ScanCode
	UnicodeChar uint16
}

// PrintableKey returns the key for a printable UCS-2 character.
func PrintableKey(r rune) Key {
	return Key{ScanCode: ScanNull, UnicodeChar: uint16(r)}
}

// SpecialKey returns the key for a scan code.
func SpecialKey(code ScanCode) Key {
	return Key{ScanCode: code}
}

// Printable returns the character of a printable key.
func (k Key) Printable() (rune, bool) {
	if k.ScanCode != ScanNull {
		return 0, false
	}
	return rune(k.UnicodeChar), true
}

func (k Key) String() string {
	r, ok := k.Printable()
	if !ok {
		return k.ScanCode.String()
	}
	if name, ok := charNames[k.UnicodeChar]; ok {
		return name
	}
	return string(r)
}

// ParseKey parses a key name such as "q", "enter", "down", "f5" or "mute".
func ParseKey(name string) (Key, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r > 0xffff {
			return Key{}, fmt.Errorf("key %q is outside UCS-2", name)
		}
		return PrintableKey(r), nil
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[lower]; ok {
		lower = alias
	}
	if ch, ok := charByName[lower]; ok {
		return Key{UnicodeChar: ch}, nil
	}
	if code, ok := scanByName[lower]; ok {
		return SpecialKey(code), nil
	}
	return Key{}, fmt.Errorf("unknown key %q", name)
}

// ParseKeys parses a list of key names.
func ParseKeys(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		key, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
