package interfaces

import (
	"context"

	"mypresence/domain"
)

// PresenceStore owns the lifecycle of presence entries and keeps the group index in step with them.
// Implemented by service.presenceStore, consumed by handlers.HTTPServer.
//
//go:generate moq -stub -out mock/presence_store.go -pkg mock . PresenceStore
type PresenceStore interface {
	// GetEntry returns the entry for (group, id).
	// Returns:
	// 1) (entry, true, nil) when it exists;
	// 2) (zero, false, nil) when it does not;
	// 3) (zero, false, storage_unavailable) when storage fails.
	GetEntry(ctx context.Context, group, id string) (domain.Entry, bool, error)

	// SetEntry records a heartbeat: creates the entry on first call, refreshes updatedAt and
	// replaces meta on later calls. Returns storage_unavailable when the read or the write fails.
	SetEntry(ctx context.Context, group, id string, meta map[string]any) (domain.FullEntry, error)

	// GetGroup returns the entries of a group in no particular order.
	// Entries that can't be read are left out.
	GetGroup(ctx context.Context, group string) ([]domain.FullEntry, error)

	// GetGroups returns a summary for every group with at least one live entry.
	GetGroups(ctx context.Context) ([]domain.Group, error)

	// DeleteEntry removes (group, id) and returns the number of removed entries (0 or 1).
	DeleteEntry(ctx context.Context, group, id string) (int64, error)
}
