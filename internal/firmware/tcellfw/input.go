package tcellfw

import (
	"github.com/gdamore/tcell/v2"

	"pkt.systems/efitui/internal/firmware"
)

var scanCodes = map[tcell.Key]firmware.ScanCode{
	tcell.KeyUp:     firmware.ScanUp,
	tcell.KeyDown:   firmware.ScanDown,
	tcell.KeyRight:  firmware.ScanRight,
	tcell.KeyLeft:   firmware.ScanLeft,
	tcell.KeyHome:   firmware.ScanHome,
	tcell.KeyEnd:    firmware.ScanEnd,
	tcell.KeyInsert: firmware.ScanInsert,
	tcell.KeyDelete: firmware.ScanDelete,
	tcell.KeyPgUp:   firmware.ScanPageUp,
	tcell.KeyPgDn:   firmware.ScanPageDown,
	tcell.KeyEscape: firmware.ScanEsc,
	tcell.KeyF1:     firmware.ScanF1,
	tcell.KeyF2:     firmware.ScanF2,
	tcell.KeyF3:     firmware.ScanF3,
	tcell.KeyF4:     firmware.ScanF4,
	tcell.KeyF5:     firmware.ScanF5,
	tcell.KeyF6:     firmware.ScanF6,
	tcell.KeyF7:     firmware.ScanF7,
	tcell.KeyF8:     firmware.ScanF8,
	tcell.KeyF9:     firmware.ScanF9,
	tcell.KeyF10:    firmware.ScanF10,
	tcell.KeyF11:    firmware.ScanF11,
	tcell.KeyF12:    firmware.ScanF12,
}

// TranslateKey turns a tcell key event into the keystroke a firmware
// keyboard driver would report. Keys without an EFI form are dropped.
func TranslateKey(ev *tcell.EventKey) (firmware.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r > 0xffff {
			return firmware.Key{}, false
		}
		return firmware.PrintableKey(r), true
	case tcell.KeyEnter:
		return firmware.PrintableKey('\r'), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return firmware.PrintableKey(0x08), true
	case tcell.KeyTab:
		return firmware.PrintableKey('\t'), true
	}
	if scan, ok := scanCodes[ev.Key()]; ok {
		return firmware.SpecialKey(scan), true
	}
	return firmware.Key{}, false
}

// pump moves terminal events into the key buffer until the screen is
// finalized.
func (c *Console) pump() {
	defer close(c.pumpDone)
	defer c.keys.Close()
	for {
		ev := c.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			k, ok := TranslateKey(ev)
			if !ok {
				c.logger.Debug("key dropped", "key", ev.Name())
				continue
			}
			if !c.keys.Push(k) {
				c.logger.Warn("key buffer full, dropping key", "key", k.String())
			}
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

// WaitForKey blocks until a key is pending. After Close it returns
// StatusAborted once the buffer is drained.
func (c *Console) WaitForKey() error {
	return c.keys.Wait()
}

// ReadKeyStroke takes the next key. An empty buffer yields the not-ready
// outcome.
func (c *Console) ReadKeyStroke() (firmware.Key, bool, error) {
	k, ok := c.keys.Pop()
	return k, ok, nil
}

// PendingKeys returns the number of buffered keys.
func (c *Console) PendingKeys() int {
	return c.keys.Len()
}
