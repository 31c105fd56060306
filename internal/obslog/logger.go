// Package obslog is the engine's single logging entry point: a
// charmbracelet/log logger, configured the way the teacher's cmd/simulate
// and cmd/poker-odds binaries configure theirs (log.NewWithOptions against
// stderr, level selected by verbosity). The evaluator and combination
// enumerator never log — they are on the hot loop — so every call site
// through this package is bring-up (worker-pool sizing) or the CLI
// boundary (translating an error to an exit code).
package obslog

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide logger. Tests and alternate entry points may
// replace it.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:  log.WarnLevel,
	Prefix: "pokerodds",
})

// SetDebug raises the logger to debug level, mirroring the teacher's
// --verbose/-v CLI flag handling.
func SetDebug(debug bool) {
	if debug {
		Logger.SetLevel(log.DebugLevel)
	} else {
		Logger.SetLevel(log.WarnLevel)
	}
}
