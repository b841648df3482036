package interfaces

import "time"

// SweepMetrics records the outcome of expiry sweeps.
//
//go:generate moq -stub -out mock/sweep_metrics.go -pkg mock . SweepMetrics
type SweepMetrics interface {
	// SweepCompleted is called after a sweep finished with the number of removed entries.
	SweepCompleted(removed int, duration time.Duration)
	// SweepFailed is called when a sweep could not list the keyspace.
	SweepFailed()
	// SweepSkipped is called when a tick fired while the previous sweep was still running.
	SweepSkipped()
}
