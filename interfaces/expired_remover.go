package interfaces

import (
	"context"
	"time"
)

// ExpiredRemover deletes entries that stopped reporting. Implemented by the presence store,
// driven by service.ExpirySweeper.
//
//go:generate moq -stub -out mock/expired_remover.go -pkg mock . ExpiredRemover
type ExpiredRemover interface {
	// RemoveExpired deletes every entry whose last heartbeat is at least maxAge old and
	// returns how many were deleted. Fails only when the keyspace can't be listed.
	RemoveExpired(ctx context.Context, maxAge time.Duration) (int, error)
}
