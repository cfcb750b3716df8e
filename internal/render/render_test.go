package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"pkt.systems/efitui/internal/firmware"
	"pkt.systems/efitui/internal/terminal"
)

func TestSGRSelectsBasicColors(t *testing.T) {
	got := SGR(firmware.Red, firmware.Black)
	if !strings.HasPrefix(got, ansi.ResetStyle) {
		t.Fatalf("expected reset prefix, got %q", got)
	}
	if !strings.Contains(got, "31") || !strings.Contains(got, "40") {
		t.Fatalf("expected red on black codes, got %q", got)
	}
}

func TestSGRUsesBrightCodesForLightColors(t *testing.T) {
	got := SGR(firmware.White, firmware.Black)
	if !strings.Contains(got, "97") {
		t.Fatalf("expected bright white code 97, got %q", got)
	}
	got = SGR(firmware.Brown, firmware.Black)
	if !strings.Contains(got, "33") {
		t.Fatalf("expected yellow code 33 for brown, got %q", got)
	}
}

func TestFirmwareColorRoundTrip(t *testing.T) {
	for c := firmware.Black; c <= firmware.White; c++ {
		if got := FirmwareColor(ANSIColor(c), firmware.Black); got != c {
			t.Fatalf("FirmwareColor(ANSIColor(%v)) = %v", c, got)
		}
	}
	if got := FirmwareColor(nil, firmware.LightGray); got != firmware.LightGray {
		t.Fatalf("FirmwareColor(nil) = %v, want default", got)
	}
	if got := FirmwareColor(ansi.IndexedColor(9), firmware.Black); got != firmware.LightRed {
		t.Fatalf("FirmwareColor(indexed 9) = %v, want %v", got, firmware.LightRed)
	}
}

func TestSnapshotResetsRowAttributes(t *testing.T) {
	snap := terminal.Snapshot{
		Cols: 2,
		Rows: 2,
		Cells: []terminal.Cell{
			{Content: "a", Width: 1, FG: firmware.Red, BG: firmware.Black},
			{Content: "b", Width: 1, FG: firmware.Red, BG: firmware.Black},
			{Content: "c", Width: 1, FG: firmware.Green, BG: firmware.Blue},
			{Content: "d", Width: 1, FG: firmware.Green, BG: firmware.Blue},
		},
	}
	var buf bytes.Buffer
	if err := Snapshot(&buf, snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], SGR(firmware.Red, firmware.Black)+"ab") {
		t.Fatalf("row 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "cd"+ansi.ResetStyle) {
		t.Fatalf("row 1 = %q", lines[1])
	}
}

func TestSnapshotSkipsWidePlaceholders(t *testing.T) {
	snap := terminal.Snapshot{
		Cols: 3,
		Rows: 1,
		Cells: []terminal.Cell{
			{Content: "世", Width: 2},
			{},
			{Content: "x", Width: 1},
		},
	}
	var buf bytes.Buffer
	if err := Snapshot(&buf, snap); err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !strings.Contains(buf.String(), "世x") {
		t.Fatalf("output = %q", buf.String())
	}
	if got := snap.String(); got != "世x" {
		t.Fatalf("String() = %q, want %q", got, "世x")
	}
}
