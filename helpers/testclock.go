package helpers

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// TestNow returns the fixed instant tests start their fake clocks at (2026-02-11 12:00:00 UTC).
func TestNow() time.Time {
	return time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
}

// NewTestClock returns a clockwork fake clock set to TestNow. Tests move it with Advance to
// expire endpoint cache entries without sleeping.
func NewTestClock() clockwork.FakeClock {
	return clockwork.NewFakeClockAt(TestNow())
}
