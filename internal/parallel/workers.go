package parallel

import (
	"runtime"
	"sync"

	"github.com/lox/pokerodds/internal/obslog"
)

var (
	workerCountOnce sync.Once
	workerCount     int
)

// Workers returns the fixed worker count used by every parallel region in
// this engine: the OS-reported parallelism, falling back to 1 (logged at
// warn level) if the runtime cannot report a usable value. Grounded on
// original_source's get_parallelism_from_os, which does the same fallback
// and the same warn-level log.
func Workers() int {
	workerCountOnce.Do(func() {
		n := runtime.GOMAXPROCS(0)
		if n < 1 {
			obslog.Logger.Warn("failed to determine OS parallelism, falling back to 1 worker")
			n = 1
		}
		workerCount = n
	})
	return workerCount
}
