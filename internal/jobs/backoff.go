package jobs

import "time"

// Backoff returns the delay before the given retry attempt. Attempt 1 waits
// base, attempt 2 waits 2*base and so on, capped at cap. Attempts below 1 are
// treated as 1.
func Backoff(attempt int, base, cap time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= cap {
			return cap
		}
	}
	if d > cap {
		return cap
	}
	return d
}
