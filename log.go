package aoc

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is where solvers report what they are doing. It only prints
// warnings and errors unless SetDebug(true) was called.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "aoc",
	Level:  log.WarnLevel,
})

// SetDebug turns debug logging on or off.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(log.DebugLevel)
		return
	}
	Logger.SetLevel(log.WarnLevel)
}

// Debugging reports whether debug logging is on, for callers that need to
// do extra work to produce a debug message.
func Debugging() bool {
	return Logger.GetLevel() <= log.DebugLevel
}

func Debug(msg any, keyvals ...any) {
	Logger.Debug(msg, keyvals...)
}

func Debugf(format string, args ...any) {
	Logger.Debugf(format, args...)
}
