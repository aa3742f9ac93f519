package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall time; session dates are rendered in the
// user's own calendar day.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
