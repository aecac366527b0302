package domain

import "time"

// IsFresh reports whether a row updated at updatedAt may still be served at now.
// The comparison is strict: a row exactly interval old is stale. A zero timestamp is always stale.
func IsFresh(now, updatedAt time.Time, interval time.Duration) bool {
	if updatedAt.IsZero() {
		return false
	}
	return now.Sub(updatedAt) < interval
}

// IsFreshPtr is IsFresh for nullable timestamp columns
func IsFreshPtr(now time.Time, updatedAt *time.Time, interval time.Duration) bool {
	if updatedAt == nil {
		return false
	}
	return IsFresh(now, *updatedAt, interval)
}
