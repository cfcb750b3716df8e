package input

import (
	"errors"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"

	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/firmware/memfw"
)

type stubInput struct {
	waitErr error
	key     firmware.Key
	ok      bool
	readErr error
	waits   int
	reads   int
}

func (s *stubInput) WaitForKey() error {
	s.waits++
	return s.waitErr
}

func (s *stubInput) ReadKeyStroke() (firmware.Key, bool, error) {
	s.reads++
	return s.key, s.ok, s.readErr
}

func newStubReader(s *stubInput) *Reader {
	return New(firmware.NewScoped[firmware.TextInput](1, s, nil), nil)
}

func newReader(t *testing.T, console *memfw.Console) *Reader {
	t.Helper()
	in, err := firmware.OpenTextInput(console)
	if err != nil {
		t.Fatalf("OpenTextInput: %v", err)
	}
	r := New(in, nil)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func assertPress(t *testing.T, ev uv.Event, code rune, text string) {
	t.Helper()
	press, ok := ev.(uv.KeyPressEvent)
	if !ok {
		t.Fatalf("event = %#v, want KeyPressEvent", ev)
	}
	if press.Code != code {
		t.Fatalf("Code = %q, want %q", press.Code, code)
	}
	if press.Text != text {
		t.Fatalf("Text = %q, want %q", press.Text, text)
	}
	if press.Mod != 0 {
		t.Fatalf("Mod = %v, want none", press.Mod)
	}
	if press.IsRepeat {
		t.Fatalf("IsRepeat = true, want false")
	}
}

func TestTranslateTable(t *testing.T) {
	cases := []struct {
		scan firmware.ScanCode
		want rune
	}{
		{firmware.ScanEsc, uv.KeyEscape},
		{firmware.ScanUp, uv.KeyUp},
		{firmware.ScanDown, uv.KeyDown},
		{firmware.ScanLeft, uv.KeyLeft},
		{firmware.ScanRight, uv.KeyRight},
		{firmware.ScanPageUp, uv.KeyPgUp},
		{firmware.ScanPageDown, uv.KeyPgDown},
		{firmware.ScanHome, uv.KeyHome},
		{firmware.ScanEnd, uv.KeyEnd},
		{firmware.ScanInsert, uv.KeyInsert},
		{firmware.ScanDelete, uv.KeyDelete},
		{firmware.ScanMute, uv.KeyMute},
		{firmware.ScanVolumeUp, uv.KeyRaiseVol},
		{firmware.ScanVolumeDown, uv.KeyLowerVol},
	}
	for i := 0; i < 12; i++ {
		cases = append(cases, struct {
			scan firmware.ScanCode
			want rune
		}{firmware.ScanF1 + firmware.ScanCode(i), uv.KeyF1 + rune(i)})
	}
	for _, tc := range cases {
		t.Run(tc.scan.String(), func(t *testing.T) {
			ev, ok := Translate(firmware.SpecialKey(tc.scan))
			if !ok {
				t.Fatalf("Translate(%s) unmapped", tc.scan)
			}
			assertPress(t, ev, tc.want, "")
		})
	}
}

func TestTranslateUnmapped(t *testing.T) {
	for _, scan := range []firmware.ScanCode{firmware.ScanPause, firmware.ScanF13, firmware.ScanBrightnessUp, firmware.ScanEject, 0x55} {
		if ev, ok := Translate(firmware.SpecialKey(scan)); ok {
			t.Fatalf("Translate(%s) = %v, want unmapped", scan, ev)
		}
	}
}

func TestTranslatePrintable(t *testing.T) {
	ev, ok := Translate(firmware.PrintableKey('\r'))
	if !ok {
		t.Fatalf("carriage return unmapped")
	}
	assertPress(t, ev, uv.KeyEnter, "")

	ev, _ = Translate(firmware.PrintableKey('A'))
	assertPress(t, ev, 'A', "A")

	ev, _ = Translate(firmware.PrintableKey('é'))
	assertPress(t, ev, 'é', "é")

	ev, _ = Translate(firmware.PrintableKey('\t'))
	assertPress(t, ev, '\t', "")
}

func TestReadEventPageDown(t *testing.T) {
	console := memfw.New(memfw.Options{Keys: []firmware.Key{firmware.SpecialKey(firmware.ScanPageDown)}})
	r := newReader(t, console)

	ev, err := r.ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	assertPress(t, ev, uv.KeyPgDown, "")

	calls := console.Calls()
	if len(calls) != 2 || calls[0].Op != memfw.OpWaitForKey || calls[1].Op != memfw.OpReadKeyStroke {
		t.Fatalf("calls = %v, want wait then read", calls)
	}
}

func TestReadEventUnmappedIsNoEvent(t *testing.T) {
	console := memfw.New(memfw.Options{Keys: []firmware.Key{firmware.SpecialKey(firmware.ScanPause)}})
	r := newReader(t, console)

	ev, err := r.ReadEvent()
	if err != nil {
		t.Fatalf("ReadEvent: %v", err)
	}
	if ev != nil {
		t.Fatalf("event = %v, want none", ev)
	}
}

func TestReadEventNotReadyIsNoEvent(t *testing.T) {
	stub := &stubInput{}
	r := newStubReader(stub)
	ev, err := r.ReadEvent()
	if err != nil || ev != nil {
		t.Fatalf("ReadEvent = %v, %v; want no event", ev, err)
	}
	if stub.waits != 1 || stub.reads != 1 {
		t.Fatalf("waits %d reads %d, want 1 and 1", stub.waits, stub.reads)
	}
}

func TestReadEventReadFailure(t *testing.T) {
	stub := &stubInput{readErr: firmware.StatusDeviceError}
	_, err := newStubReader(stub).ReadEvent()
	if !errors.Is(err, ErrRead) || !errors.Is(err, ErrInput) {
		t.Fatalf("err = %v, want %v", err, ErrRead)
	}
	if !errors.Is(err, firmware.StatusDeviceError) {
		t.Fatalf("err = %v, want firmware status", err)
	}
}

func TestReadEventWaitFailure(t *testing.T) {
	stub := &stubInput{waitErr: firmware.StatusInvalidParameter}
	_, err := newStubReader(stub).ReadEvent()
	if !errors.Is(err, ErrWait) || !errors.Is(err, ErrInput) {
		t.Fatalf("err = %v, want %v", err, ErrWait)
	}
	if stub.reads != 0 {
		t.Fatalf("reads = %d, want no read after failed wait", stub.reads)
	}
}

func TestReadEventAbortedScript(t *testing.T) {
	console := memfw.New(memfw.Options{})
	console.CloseInput()
	r := newReader(t, console)
	if _, err := r.ReadEvent(); !errors.Is(err, firmware.StatusAborted) {
		t.Fatalf("err = %v, want %v", err, firmware.StatusAborted)
	}
}
