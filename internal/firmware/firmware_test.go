package firmware

import (
	"errors"
	"testing"
	"time"
)

type fakeOutput struct{ TextOutput }

func TestStatusError(t *testing.T) {
	if got := StatusAccessDenied.Error(); got != "EFI_ACCESS_DENIED" {
		t.Fatalf("Error() = %q, want %q", got, "EFI_ACCESS_DENIED")
	}
	if !StatusDeviceError.IsError() {
		t.Fatalf("expected device error to be an error status")
	}
	if StatusSuccess.Err() != nil {
		t.Fatalf("StatusSuccess.Err() = %v, want nil", StatusSuccess.Err())
	}
	var err error = StatusUnsupported
	if !errors.Is(err, StatusUnsupported) {
		t.Fatalf("errors.Is failed for status value")
	}
}

func TestTextAttrMasksBackground(t *testing.T) {
	attr := TextAttr(Red, White)
	fg, bg := SplitAttr(attr)
	if fg != Red {
		t.Fatalf("fg = %v, want %v", fg, Red)
	}
	if bg != LightGray {
		t.Fatalf("bg = %v, want %v", bg, LightGray)
	}
	if attr := TextAttr(White, Black); attr != 0x0f {
		t.Fatalf("TextAttr(White, Black) = %#x, want 0x0f", attr)
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		name string
		want Key
	}{
		{"q", PrintableKey('q')},
		{"Q", PrintableKey('Q')},
		{"enter", PrintableKey('\r')},
		{"Return", PrintableKey('\r')},
		{"down", SpecialKey(ScanDown)},
		{"PageDown", SpecialKey(ScanPageDown)},
		{"f5", SpecialKey(ScanF5)},
		{"mute", SpecialKey(ScanMute)},
		{"escape", SpecialKey(ScanEsc)},
		{"pause", SpecialKey(ScanPause)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKey(tc.name)
			if err != nil {
				t.Fatalf("ParseKey: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseKey(%q) = %+v, want %+v", tc.name, got, tc.want)
			}
		})
	}
	if _, err := ParseKey("hyper"); err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, err := ParseKey("😀"); err == nil {
		t.Fatalf("expected error for key outside UCS-2")
	}
}

func TestKeyString(t *testing.T) {
	if got := PrintableKey('\r').String(); got != "enter" {
		t.Fatalf("String() = %q, want %q", got, "enter")
	}
	if got := SpecialKey(ScanPageDown).String(); got != "pgdown" {
		t.Fatalf("String() = %q, want %q", got, "pgdown")
	}
	if got := SpecialKey(0x55).String(); got != "scan(0x55)" {
		t.Fatalf("String() = %q, want %q", got, "scan(0x55)")
	}
}

func TestExclusiveOpen(t *testing.T) {
	var table HandleTable
	handle := table.Install(TextOutputProtocolGUID, fakeOutput{})

	first, err := OpenTextOutput(&table)
	if err != nil {
		t.Fatalf("OpenTextOutput: %v", err)
	}
	if first.Handle() != handle {
		t.Fatalf("Handle() = %v, want %v", first.Handle(), handle)
	}
	if _, err := OpenTextOutput(&table); !errors.Is(err, StatusAccessDenied) {
		t.Fatalf("second open err = %v, want %v", err, StatusAccessDenied)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if table.IsOpen(handle, TextOutputProtocolGUID) {
		t.Fatalf("handle still open after Close")
	}
	again, err := OpenTextOutput(&table)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = again.Close()
}

func TestOpenMissingProtocol(t *testing.T) {
	var table HandleTable
	if _, err := OpenTextInput(&table); !errors.Is(err, StatusNotFound) {
		t.Fatalf("err = %v, want %v", err, StatusNotFound)
	}
}

func TestOpenWrongInterfaceReleases(t *testing.T) {
	var table HandleTable
	handle := table.Install(TextInputProtocolGUID, "not a protocol")
	if _, err := OpenTextInput(&table); !errors.Is(err, StatusUnsupported) {
		t.Fatalf("err = %v, want %v", err, StatusUnsupported)
	}
	if table.IsOpen(handle, TextInputProtocolGUID) {
		t.Fatalf("handle left open after type mismatch")
	}
}

func TestKeyBufferWaitAndClose(t *testing.T) {
	buf := NewKeyBuffer(2)
	done := make(chan error, 1)
	go func() { done <- buf.Wait() }()

	select {
	case err := <-done:
		t.Fatalf("Wait returned early: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	if !buf.Push(PrintableKey('a')) {
		t.Fatalf("Push rejected")
	}
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Wait did not wake")
	}

	buf.Push(PrintableKey('b'))
	if buf.Push(PrintableKey('c')) {
		t.Fatalf("Push accepted beyond capacity")
	}
	buf.Close()
	if err := buf.Wait(); err != nil {
		t.Fatalf("Wait with pending keys after Close: %v", err)
	}
	if k, _ := buf.Pop(); k != PrintableKey('a') {
		t.Fatalf("Pop = %v, want a", k)
	}
	buf.Pop()
	if err := buf.Wait(); !errors.Is(err, StatusAborted) {
		t.Fatalf("Wait after drain = %v, want %v", err, StatusAborted)
	}
}
