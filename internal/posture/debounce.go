package posture

// AlarmThreshold is the number of consecutive incorrect frames that fire an alarm.
const AlarmThreshold = 30

// Debouncer counts consecutive incorrect frames. It is not safe for
// concurrent use: the monitor loop goroutine is its only writer.
type Debouncer struct {
	threshold int
	counter   int
}

func NewDebouncer(threshold int) *Debouncer {
	if threshold <= 0 {
		threshold = AlarmThreshold
	}
	return &Debouncer{threshold: threshold}
}

// Observe feeds one classified frame and reports whether the alarm should
// fire. Firing resets the counter, as does any correct frame.
func (d *Debouncer) Observe(incorrect bool) bool {
	if !incorrect {
		d.counter = 0
		return false
	}

	d.counter++
	if d.counter >= d.threshold {
		d.counter = 0
		return true
	}
	return false
}

func (d *Debouncer) Count() int {
	return d.counter
}
