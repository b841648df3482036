package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"mypresence/domain"
	"mypresence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultEntryPrefix = "app"
	DefaultGroupsKey   = "groups"
	DefaultFanOutLimit = 32
)

// PresenceStoreConfig describes the keyspace and read concurrency of the presence store.
type PresenceStoreConfig struct {
	EntryPrefix string
	GroupsKey   string
	// FanOutLimit bounds the concurrent storage reads of one listing.
	FanOutLimit int
}

// presenceStore implements interfaces.PresenceStore and interfaces.ExpiredRemover on top of a
// key-value service. It holds no locks: consistency between an entry and the group index is only
// as strong as the individual storage primitives, and the index is corrected lazily (empty groups
// are filtered on read, unindexed keys are still swept).
type presenceStore struct {
	kv     interfaces.KeyValueStore
	clock  interfaces.TimeProvider
	keys   keyspace
	fanOut int
	logger log.Logger
}

var (
	_ interfaces.PresenceStore  = (*presenceStore)(nil)
	_ interfaces.ExpiredRemover = (*presenceStore)(nil)
)

// NewPresenceStore creates the presence store. Panics on nil kv, clock or logger.
// Empty config fields fall back to the defaults.
func NewPresenceStore(kv interfaces.KeyValueStore, clock interfaces.TimeProvider, cfg PresenceStoreConfig, logger log.Logger) *presenceStore {
	if cfg.EntryPrefix == "" {
		cfg.EntryPrefix = DefaultEntryPrefix
	}
	if cfg.GroupsKey == "" {
		cfg.GroupsKey = DefaultGroupsKey
	}
	if cfg.FanOutLimit <= 0 {
		cfg.FanOutLimit = DefaultFanOutLimit
	}
	return &presenceStore{
		kv:     NilPanic(kv, "service.presence_store.go: kv is required"),
		clock:  NilPanic(clock, "service.presence_store.go: clock is required"),
		keys:   keyspace{entryPrefix: cfg.EntryPrefix, groupsKey: cfg.GroupsKey},
		fanOut: cfg.FanOutLimit,
		logger: log.With(NilPanic(logger, "service.presence_store.go: logger is required"), "component", "PresenceStore"),
	}
}

func (s *presenceStore) GetEntry(ctx context.Context, group, id string) (domain.Entry, bool, error) {
	key := s.keys.entryKey(group, id)
	fields, err := s.kv.HashGetAll(ctx, key)
	if err != nil {
		return domain.Entry{}, false, fmt.Errorf("getEntry failed to read entry, err: %w", err)
	}
	if len(fields) == 0 {
		return domain.Entry{}, false, nil
	}

	entry, err := decodeEntry(fields)
	if err != nil {
		return domain.Entry{}, false, NewInternalServerError("Stored entry is malformed", fmt.Errorf("can't decode entry (key='%s'), err: %w", key, err))
	}
	return entry, true, nil
}

// SetEntry is a read followed by a write. Two concurrent heartbeats for the same pair both see
// the stored createdAt, and the later write wins for updatedAt and meta.
func (s *presenceStore) SetEntry(ctx context.Context, group, id string, meta map[string]any) (domain.FullEntry, error) {
	key := s.keys.entryKey(group, id)
	now := s.clock.Now().UnixMilli()
	if meta == nil {
		meta = map[string]any{}
	}

	fields, err := s.kv.HashGetAll(ctx, key)
	if err != nil {
		return domain.FullEntry{}, fmt.Errorf("setEntry failed to read entry, err: %w", err)
	}

	var entry domain.Entry
	existing, decodeErr := decodeEntry(fields)
	switch {
	case len(fields) > 0 && decodeErr == nil:
		entry = domain.Entry{
			CreatedAt: existing.CreatedAt,
			UpdatedAt: max(now, existing.CreatedAt),
			Meta:      meta,
		}
		level.Debug(s.logger).Log("msg", "Updating entry", "key", key, "at", now)
	default:
		if len(fields) > 0 {
			level.Warn(s.logger).Log("msg", "Replacing malformed entry", "key", key, "err", decodeErr)
		}
		entry = domain.Entry{CreatedAt: now, UpdatedAt: now, Meta: meta}
		level.Debug(s.logger).Log("msg", "Creating entry", "key", key, "at", now)
		s.indexGroup(ctx, group)
	}

	hash, err := encodeEntry(entry)
	if err != nil {
		return domain.FullEntry{}, NewBadParameterError("meta is not serializable", err)
	}
	if err := s.kv.HashSet(ctx, key, hash); err != nil {
		return domain.FullEntry{}, fmt.Errorf("setEntry failed to write entry, err: %w", err)
	}

	return domain.FullEntry{Entry: entry, Group: group, ID: id}, nil
}

func (s *presenceStore) GetGroup(ctx context.Context, group string) ([]domain.FullEntry, error) {
	keys, err := s.groupKeys(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("getGroup failed to list entries, err: %w", err)
	}
	level.Debug(s.logger).Log("msg", "Listing group", "group", group, "entries", len(keys))

	return s.readEntries(ctx, keys), nil
}

func (s *presenceStore) GetGroups(ctx context.Context) ([]domain.Group, error) {
	names, err := s.kv.SetMembers(ctx, s.keys.groupsKey)
	if err != nil {
		return nil, fmt.Errorf("getGroups failed to read group index, err: %w", err)
	}
	level.Debug(s.logger).Log("msg", "Listing groups", "indexed", len(names))

	summaries := make([]*domain.Group, len(names))
	var g errgroup.Group
	g.SetLimit(s.fanOut)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			summaries[i] = s.summarizeGroup(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	groups := make([]domain.Group, 0, len(summaries))
	for _, summary := range summaries {
		if summary != nil {
			groups = append(groups, *summary)
		}
	}
	return groups, nil
}

func (s *presenceStore) DeleteEntry(ctx context.Context, group, id string) (int64, error) {
	key := s.keys.entryKey(group, id)
	level.Debug(s.logger).Log("msg", "Deleting entry", "key", key)

	n, err := s.deleteAndReindex(ctx, group, key)
	if err != nil {
		return 0, fmt.Errorf("deleteEntry failed, err: %w", err)
	}
	return n, nil
}

// RemoveExpired scans every entry key, including keys whose group is missing from the index,
// and deletes the entries whose last heartbeat is at least maxAge old through the same path as
// DeleteEntry. Entries are checked independently; a failed read or delete only skips that entry.
func (s *presenceStore) RemoveExpired(ctx context.Context, maxAge time.Duration) (int, error) {
	keys, err := s.kv.KeysMatching(ctx, s.keys.allEntriesPattern())
	if err != nil {
		return 0, fmt.Errorf("removeExpired failed to list entries, err: %w", err)
	}
	level.Debug(s.logger).Log("msg", "Scanning for expired entries", "entries", len(keys))

	threshold := maxAge.Milliseconds()
	var removed atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.fanOut)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			group, _, ok := s.keys.parseEntryKey(key)
			if !ok {
				level.Debug(s.logger).Log("msg", "Skipping foreign key", "key", key)
				return nil
			}
			entry, ok := s.readEntry(ctx, key)
			if !ok {
				return nil
			}

			age := s.clock.Now().UnixMilli() - max(entry.CreatedAt, entry.UpdatedAt)
			if age < threshold {
				return nil
			}

			level.Debug(s.logger).Log("msg", "Deleting expired entry", "key", key, "age_ms", age)
			n, err := s.deleteAndReindex(ctx, group, key)
			if err != nil {
				level.Warn(s.logger).Log("msg", "Failed to delete expired entry", "key", key, "err", err)
				return nil
			}
			removed.Add(n)
			return nil
		})
	}
	_ = g.Wait()

	return int(removed.Load()), nil
}

// deleteAndReindex removes key and drops group from the index when it has no entries left.
// Only the key removal can fail the call. A heartbeat that recreates the group between the
// two steps may see its group dropped from the index; GetGroups and RemoveExpired tolerate that.
func (s *presenceStore) deleteAndReindex(ctx context.Context, group, key string) (int64, error) {
	n, err := s.kv.Delete(ctx, key)
	if err != nil {
		return 0, err
	}

	remaining, err := s.groupKeys(ctx, group)
	if err != nil {
		level.Warn(s.logger).Log("msg", "Failed to list remaining entries, group index left as is", "group", group, "err", err)
		return n, nil
	}
	if len(remaining) > 0 {
		return n, nil
	}

	removed, err := s.kv.SetRemove(ctx, s.keys.groupsKey, group)
	if err != nil {
		level.Warn(s.logger).Log("msg", "Failed to remove group from index", "group", group, "err", err)
		return n, nil
	}
	if removed > 0 {
		level.Debug(s.logger).Log("msg", "Group removed from index", "group", group)
	}
	return n, nil
}

// indexGroup adds group to the index. Failures are logged: the entry write goes ahead and the
// group stays reachable through GetGroup and the sweep.
func (s *presenceStore) indexGroup(ctx context.Context, group string) {
	if _, err := s.kv.SetAdd(ctx, s.keys.groupsKey, group); err != nil {
		level.Warn(s.logger).Log("msg", "Failed to add group to index", "group", group, "err", err)
	}
}

// groupKeys lists the entry keys of exactly this group.
func (s *presenceStore) groupKeys(ctx context.Context, group string) ([]string, error) {
	keys, err := s.kv.KeysMatching(ctx, s.keys.groupPattern(group))
	if err != nil {
		return nil, err
	}
	own := keys[:0]
	for _, key := range keys {
		if s.keys.belongsTo(key, group) {
			own = append(own, key)
		}
	}
	return own, nil
}

// summarizeGroup returns nil for a group without readable entries.
func (s *presenceStore) summarizeGroup(ctx context.Context, group string) *domain.Group {
	keys, err := s.groupKeys(ctx, group)
	if err != nil {
		level.Warn(s.logger).Log("msg", "Failed to list group entries", "group", group, "err", err)
		return nil
	}

	entries := s.readEntries(ctx, keys)
	if len(entries) == 0 {
		return nil
	}

	summary := &domain.Group{
		Group:     group,
		Instances: len(entries),
		CreatedAt: entries[0].CreatedAt,
		UpdatedAt: entries[0].UpdatedAt,
	}
	for _, e := range entries[1:] {
		summary.CreatedAt = min(summary.CreatedAt, e.CreatedAt)
		summary.UpdatedAt = max(summary.UpdatedAt, e.UpdatedAt)
	}
	return summary
}

// readEntries fetches and decodes keys concurrently. Keys that vanished or can't be decoded are left out.
func (s *presenceStore) readEntries(ctx context.Context, keys []string) []domain.FullEntry {
	results := make([]*domain.FullEntry, len(keys))
	var g errgroup.Group
	g.SetLimit(s.fanOut)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			group, id, ok := s.keys.parseEntryKey(key)
			if !ok {
				return nil
			}
			if entry, ok := s.readEntry(ctx, key); ok {
				results[i] = &domain.FullEntry{Entry: entry, Group: group, ID: id}
			}
			return nil
		})
	}
	_ = g.Wait()

	entries := make([]domain.FullEntry, 0, len(results))
	for _, e := range results {
		if e != nil {
			entries = append(entries, *e)
		}
	}
	return entries
}

func (s *presenceStore) readEntry(ctx context.Context, key string) (domain.Entry, bool) {
	fields, err := s.kv.HashGetAll(ctx, key)
	if err != nil {
		level.Warn(s.logger).Log("msg", "Failed to read entry", "key", key, "err", err)
		return domain.Entry{}, false
	}
	if len(fields) == 0 {
		return domain.Entry{}, false
	}
	entry, err := decodeEntry(fields)
	if err != nil {
		level.Warn(s.logger).Log("msg", "Skipping malformed entry", "key", key, "err", err)
		return domain.Entry{}, false
	}
	return entry, true
}
