// Package firmware models the pre-boot console services the adapters talk to:
// the EFI Simple Text Output and Simple Text Input protocols, the status codes
// they return, and exclusive scoped access to protocol handles.
package firmware

import (
	"fmt"
	"sync"
)

// Mode describes a text mode: its number and geometry in character cells.
type Mode struct {
	Number  int
	Columns int
	Rows    int
}

// TextOutput is the Simple Text Output protocol. Every call is synchronous.
type TextOutput interface {
	// OutputString writes s at the cursor and advances the cursor.
	OutputString(s string) error
	// SetCursorPosition moves the cursor. Positions outside the current mode
	// are rejected.
	SetCursorPosition(col, row int) error
	// CursorPosition reports the cursor register.
	CursorPosition() (col, row int)
	// SetAttribute sets the color pair used by subsequent output.
	SetAttribute(fg, bg Color) error
	// EnableCursor toggles cursor visibility. Many implementations return
	// StatusUnsupported.
	EnableCursor(visible bool) error
	// ClearScreen clears the display with the current background and homes
	// the cursor.
	ClearScreen() error
	// CurrentMode returns the active text mode; ok is false when no mode is
	// set.
	CurrentMode() (mode Mode, ok bool, err error)
}

// TextInput is the Simple Text Input protocol.
type TextInput interface {
	// WaitForKey blocks until a keystroke is available. There is no timeout
	// and no way to cancel the wait.
	WaitForKey() error
	// ReadKeyStroke takes the next pending keystroke; ok is false when none
	// is available.
	ReadKeyStroke() (key Key, ok bool, err error)
}

// Handle identifies a firmware object that carries protocol interfaces.
type Handle uintptr

// GUID identifies a protocol.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// Protocol GUIDs for the console protocols.
var (
	TextOutputProtocolGUID = GUID{0x387477c2, 0x69c7, 0x11d2, [8]byte{0x8e, 0x39, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b}}
	TextInputProtocolGUID  = GUID{0x387477c1, 0x69c7, 0x11d2, [8]byte{0x8e, 0x39, 0x00, 0xa0, 0xc9, 0x69, 0x72, 0x3b}}
)

// BootServices is the subset of boot services used to obtain console
// protocols.
type BootServices interface {
	// HandleForProtocol returns the first handle supporting guid.
	HandleForProtocol(guid GUID) (Handle, error)
	// OpenProtocolExclusive opens guid on handle for a single holder. The
	// returned release func closes it again. A second open while the first
	// is held fails with StatusAccessDenied.
	OpenProtocolExclusive(handle Handle, guid GUID) (iface any, release func(), err error)
}

// Scoped holds an exclusively opened protocol until Close.
type Scoped[P any] struct {
	handle  Handle
	proto   P
	release func()
	once    sync.Once
}

// NewScoped wraps an opened protocol with its release func.
func NewScoped[P any](handle Handle, proto P, release func()) *Scoped[P] {
	return &Scoped[P]{handle: handle, proto: proto, release: release}
}

// Protocol returns the protocol interface.
func (s *Scoped[P]) Protocol() P {
	return s.proto
}

// Handle returns the handle the protocol was opened on.
func (s *Scoped[P]) Handle() Handle {
	return s.handle
}

// Close releases the handle. Safe to call multiple times.
func (s *Scoped[P]) Close() error {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
	return nil
}

// OpenExclusive locates the first handle supporting guid and opens it
// exclusively as protocol P.
func OpenExclusive[P any](bs BootServices, guid GUID) (*Scoped[P], error) {
	handle, err := bs.HandleForProtocol(guid)
	if err != nil {
		return nil, fmt.Errorf("locate protocol %s: %w", guid, err)
	}
	iface, release, err := bs.OpenProtocolExclusive(handle, guid)
	if err != nil {
		return nil, fmt.Errorf("open protocol %s: %w", guid, err)
	}
	proto, ok := iface.(P)
	if !ok {
		if release != nil {
			release()
		}
		return nil, fmt.Errorf("open protocol %s: unexpected interface %T: %w", guid, iface, StatusUnsupported)
	}
	return NewScoped(handle, proto, release), nil
}

// OpenTextOutput opens the console output protocol exclusively.
func OpenTextOutput(bs BootServices) (*Scoped[TextOutput], error) {
	return OpenExclusive[TextOutput](bs, TextOutputProtocolGUID)
}

// OpenTextInput opens the console input protocol exclusively.
func OpenTextInput(bs BootServices) (*Scoped[TextInput], error) {
	return OpenExclusive[TextInput](bs, TextInputProtocolGUID)
}
