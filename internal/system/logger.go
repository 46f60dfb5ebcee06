package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger for CLI output.
// It prints to stderr; validation logs swallowed probe failures at debug
// level, which is enabled by setting XTASK_DEBUG to a non-empty value.
var Logger = newLogger()

func newLogger() *clog.Logger {
	l := clog.NewWithOptions(os.Stderr, clog.Options{
		ReportTimestamp: false,
	})
	if os.Getenv("XTASK_DEBUG") != "" {
		l.SetLevel(clog.DebugLevel)
	}
	return l
}
