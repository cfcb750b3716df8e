package backend

import (
	"errors"
	"fmt"
)

// Errors returned by OutputBackend. Firmware failures are wrapped alongside
// them, so both the kind and the firmware status match errors.Is.
var (
	ErrSetCursorPosition = errors.New("failed to set cursor")
	ErrSetColor          = errors.New("failed to set color")
	ErrWriteCharacter    = errors.New("failed to write character")
	ErrClear             = errors.New("failed to clear")
	ErrGetCurrentMode    = errors.New("failed to get current mode")
	ErrNoCurrentMode     = errors.New("no current mode available")
	ErrUnsupportedClear  = errors.New("clear type not supported")
)

// ClearType selects the region ClearRegion clears.
type ClearType int

// Clear regions.
const (
	ClearAll ClearType = iota
	ClearAfterCursor
	ClearBeforeCursor
	ClearCurrentLine
	ClearUntilNewLine
)

func (c ClearType) String() string {
	switch c {
	case ClearAll:
		return "All"
	case ClearAfterCursor:
		return "AfterCursor"
	case ClearBeforeCursor:
		return "BeforeCursor"
	case ClearCurrentLine:
		return "CurrentLine"
	case ClearUntilNewLine:
		return "UntilNewLine"
	default:
		return fmt.Sprintf("ClearType(%d)", int(c))
	}
}

// UnsupportedClearError reports a clear region the firmware cannot clear.
type UnsupportedClearError struct {
	ClearType ClearType
}

func (e *UnsupportedClearError) Error() string {
	return fmt.Sprintf("clear_type [%s] not supported with this backend", e.ClearType)
}

// Is matches ErrUnsupportedClear.
func (e *UnsupportedClearError) Is(target error) bool {
	return target == ErrUnsupportedClear
}
