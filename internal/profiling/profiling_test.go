package profiling

import (
	"testing"
	"time"
)

func setTotals(m map[string]time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	for k := range totals {
		delete(totals, k)
	}
	for k, v := range m {
		totals[k] = v
	}
}

func TestTrackAccumulatesUnderName(t *testing.T) {
	ResetFrame()
	stop := Track("pass.a")
	time.Sleep(2 * time.Millisecond)
	stop()
	Track("pass.a")()

	snap := Snapshot()
	if got := snap["pass.a"]; got < 2*time.Millisecond {
		t.Errorf("accumulated duration = %v, want at least 2ms", got)
	}
	if len(snap) != 1 {
		t.Errorf("snapshot has %d entries, want 1", len(snap))
	}
}

func TestTopNOrdersByCost(t *testing.T) {
	setTotals(map[string]time.Duration{
		"pass.slow": 4200 * time.Microsecond,
		"pass.fast": 300 * time.Microsecond,
		"pass.mid":  1500 * time.Microsecond,
	})
	got := TopN(2)
	want := "pass.slow:4.2ms, pass.mid:1.5ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
}

func TestTopNTrimsWholeMilliseconds(t *testing.T) {
	setTotals(map[string]time.Duration{"pass.a": 3 * time.Millisecond})
	if got := TopN(1); got != "pass.a:3ms" {
		t.Errorf("TopN(1) = %q, want %q", got, "pass.a:3ms")
	}
}

func TestResetFrameClears(t *testing.T) {
	setTotals(map[string]time.Duration{"pass.a": time.Millisecond})
	ResetFrame()
	if got := TopN(3); got != "" {
		t.Errorf("TopN after reset = %q, want empty", got)
	}
}
