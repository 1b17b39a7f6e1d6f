package ratelimit

// Limiter is the quota component handed to the HTTP layer. It is
// injected rather than reached through a package global so a shared
// counter store can replace the in-memory one without touching
// handlers.
type Limiter interface {
	// Allow reports whether the identity still has quota left.
	Allow(identity string) bool
	// Record counts one call against the identity's window.
	Record(identity string)
	// Limit returns the configured calls-per-window ceiling.
	Limit() int
}
