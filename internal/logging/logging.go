// Package logging holds logger helpers shared by the library packages.
package logging

import (
	"io"

	"pkt.systems/pslog"
)

// Discard returns a logger that writes nowhere.
func Discard() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:             pslog.ModeStructured,
		DisableTimestamp: true,
		NoColor:          true,
	})
}

// Or returns logger, or a discarding logger when it is nil. Library code
// never logs to the console it is drawing on.
func Or(logger pslog.Logger) pslog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
