package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timing for the render passes. Sections accumulate under a
// name until ResetFrame, so a pass tracked twice in one frame sums up.

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track records elapsed time under name when the returned stop function
// runs. Usage: defer profiling.Track("renderer.renderSky")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears the accumulated totals. Call once at the start of
// each frame.
func ResetFrame() {
	mu.Lock()
	for k := range totals {
		delete(totals, k)
	}
	mu.Unlock()
}

// Snapshot returns a copy of the current frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// TopN reports the n most expensive sections of the current frame as
// "name:1.2ms" pairs, most expensive first. Empty when nothing was
// tracked since the last ResetFrame.
func TopN(n int) string {
	snap := Snapshot()
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return snap[names[i]] > snap[names[j]] })
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(snap[name]))
	}
	return strings.Join(parts, ", ")
}

// formatMs renders a duration in milliseconds with one decimal, dropping
// a trailing ".0" so whole milliseconds stay short.
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
