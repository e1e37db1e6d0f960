package adapters

import "time"

// window is the fetch horizon, inclusive on both ends.
type window struct {
	from time.Time
	to   time.Time
}

func newWindow(daysBack, daysForward int) window {
	now := time.Now()
	return window{
		from: now.AddDate(0, 0, -daysBack),
		to:   now.AddDate(0, 0, daysForward),
	}
}

func (w window) contains(t time.Time) bool {
	return !t.Before(w.from) && !t.After(w.to)
}
