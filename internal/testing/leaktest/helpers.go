package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = 2 * time.Second

// GoroutineChecker detects goroutines left running after a server or store is shut down
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the goroutine count before the code under test runs
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check polls until the goroutine count falls back to the baseline plus tolerance
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after > target && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(10 * time.Millisecond)
		after = runtime.NumGoroutine()
	}

	if after > target {
		g.t.Errorf("goroutine leak: before=%d, after=%d, tolerance=%d", g.before, after, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails t if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
