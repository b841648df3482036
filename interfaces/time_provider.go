package interfaces

import "time"

// TimeProvider supplies the current time used for entry timestamps and expiry age.
// Injected so tests can drive the clock instead of time.Now().
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; controlled clock in tests).
	Now() time.Time
}
