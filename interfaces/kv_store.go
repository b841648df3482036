package interfaces

import "context"

// KeyValueStore is the remote key-value service the presence store is built on.
// Every method is a single storage primitive and is atomic on its own; nothing is atomic across calls.
//
//go:generate moq -stub -out mock/kv_store.go -pkg mock . KeyValueStore
type KeyValueStore interface {
	// HashSet creates or overwrites the given fields of the hash at key.
	// Returns storage_unavailable when the storage write fails.
	HashSet(ctx context.Context, key string, fields map[string]string) error

	// HashGetAll returns all fields of the hash at key.
	// Returns:
	// 1) (fields, nil) when the hash exists;
	// 2) (empty map, nil) when key is absent;
	// 3) (nil, storage_unavailable) when the storage read fails.
	HashGetAll(ctx context.Context, key string) (map[string]string, error)

	// Delete removes key. Returns 1 if it existed, 0 otherwise.
	Delete(ctx context.Context, key string) (int64, error)

	// KeysMatching returns all keys matching the glob pattern, unordered.
	KeysMatching(ctx context.Context, pattern string) ([]string, error)

	// SetAdd adds member to the set at setKey. Returns 1 if newly added, 0 if already present.
	SetAdd(ctx context.Context, setKey string, member string) (int64, error)

	// SetRemove removes member from the set at setKey. Returns 1 if removed, 0 if absent.
	SetRemove(ctx context.Context, setKey string, member string) (int64, error)

	// SetMembers returns all members of the set at setKey, unordered.
	SetMembers(ctx context.Context, setKey string) ([]string, error)
}
