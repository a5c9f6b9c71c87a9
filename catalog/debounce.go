package catalog

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the quiet interval applied to search-as-you-type
// input before the filter engine is invoked.
const DefaultSearchDebounce = 300 * time.Millisecond

// Debouncer coalesces bursts of calls into a single deferred execution.
// At most one timer is ever pending: scheduling while a call is pending
// cancels the previous timer and restarts the interval, so no two executions
// for the same input stream can run concurrently.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the quiet interval, cancelling any previously
// pending execution.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels a pending execution, if any. It reports whether a pending
// execution was cancelled.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}
