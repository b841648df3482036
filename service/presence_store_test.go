package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"mypresence/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testGroup = "g1"
	testID    = "b5d66b1b-9c85-466a-af31-54886b1a58fe"
	testKey   = "app:g1:b5d66b1b-9c85-466a-af31-54886b1a58fe"
)

func fixedClock(ms int64) *mock.TimeProviderMock {
	return &mock.TimeProviderMock{NowFunc: func() time.Time { return time.UnixMilli(ms) }}
}

func newTestStore(kv *mock.KeyValueStoreMock, clock *mock.TimeProviderMock) *presenceStore {
	return NewPresenceStore(kv, clock, PresenceStoreConfig{}, log.NewNopLogger())
}

func storageDown() error {
	return NewStorageUnavailableError("Redis error", assert.AnError)
}

func TestNewPresenceStore_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.presence_store.go: kv is required", func() {
		NewPresenceStore(nil, fixedClock(0), PresenceStoreConfig{}, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.presence_store.go: clock is required", func() {
		NewPresenceStore(&mock.KeyValueStoreMock{}, nil, PresenceStoreConfig{}, log.NewNopLogger())
	})
	assert.PanicsWithValue(t, "service.presence_store.go: logger is required", func() {
		NewPresenceStore(&mock.KeyValueStoreMock{}, fixedClock(0), PresenceStoreConfig{}, nil)
	})
}

func TestNewPresenceStore_Defaults(t *testing.T) {
	s := newTestStore(&mock.KeyValueStoreMock{}, fixedClock(0))
	assert.Equal(t, DefaultEntryPrefix, s.keys.entryPrefix)
	assert.Equal(t, DefaultGroupsKey, s.keys.groupsKey)
	assert.Equal(t, DefaultFanOutLimit, s.fanOut)
}

func TestPresenceStore_GetEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
				assert.Equal(t, testKey, key)
				return map[string]string{}, nil
			},
		}
		_, ok, err := newTestStore(kv, fixedClock(0)).GetEntry(ctx, testGroup, testID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("storage fault propagates", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
				return nil, storageDown()
			},
		}
		_, ok, err := newTestStore(kv, fixedClock(0)).GetEntry(ctx, testGroup, testID)
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, IsStorageUnavailableError(err))
	})

	t.Run("malformed entry is an internal error", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
				return map[string]string{"meta": "{}"}, nil
			},
		}
		_, _, err := newTestStore(kv, fixedClock(0)).GetEntry(ctx, testGroup, testID)
		require.Error(t, err)
		assert.True(t, IsInternalServerError(err))
	})
}

func TestPresenceStore_SetEntry_Create(t *testing.T) {
	ctx := context.Background()
	var written map[string]string
	kv := &mock.KeyValueStoreMock{
		HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
			return map[string]string{}, nil
		},
		SetAddFunc: func(ctx context.Context, setKey string, member string) (int64, error) {
			assert.Equal(t, "groups", setKey)
			assert.Equal(t, testGroup, member)
			return 1, nil
		},
		HashSetFunc: func(ctx context.Context, key string, fields map[string]string) error {
			assert.Equal(t, testKey, key)
			written = fields
			return nil
		},
	}

	got, err := newTestStore(kv, fixedClock(1000)).SetEntry(ctx, testGroup, testID, nil)
	require.NoError(t, err)
	assert.Equal(t, testGroup, got.Group)
	assert.Equal(t, testID, got.ID)
	assert.Equal(t, int64(1000), got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	assert.Equal(t, map[string]any{}, got.Meta)
	assert.Equal(t, map[string]string{"createdAt": "1000", "updatedAt": "1000", "meta": "{}"}, written)
	assert.Len(t, kv.SetAddCalls(), 1)
}

func TestPresenceStore_SetEntry_Update(t *testing.T) {
	ctx := context.Background()
	var written map[string]string
	kv := &mock.KeyValueStoreMock{
		HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
			return map[string]string{"createdAt": "1000", "updatedAt": "1500", "meta": `{"old":true}`}, nil
		},
		HashSetFunc: func(ctx context.Context, key string, fields map[string]string) error {
			written = fields
			return nil
		},
	}

	got, err := newTestStore(kv, fixedClock(2000)).SetEntry(ctx, testGroup, testID, map[string]any{"new": "yes"})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.CreatedAt)
	assert.Equal(t, int64(2000), got.UpdatedAt)
	assert.Equal(t, map[string]any{"new": "yes"}, got.Meta)
	assert.Equal(t, "1000", written["createdAt"])
	assert.Equal(t, "2000", written["updatedAt"])
	assert.JSONEq(t, `{"new":"yes"}`, written["meta"])
	assert.Empty(t, kv.SetAddCalls(), "update must not touch the group index")
}

func TestPresenceStore_SetEntry_ClockBehindCreatedAt(t *testing.T) {
	kv := &mock.KeyValueStoreMock{
		HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
			return map[string]string{"createdAt": "5000", "updatedAt": "5000", "meta": "{}"}, nil
		},
	}

	got, err := newTestStore(kv, fixedClock(4000)).SetEntry(context.Background(), testGroup, testID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.CreatedAt)
	assert.Equal(t, int64(5000), got.UpdatedAt)
}

func TestPresenceStore_SetEntry_MalformedEntryIsRecreated(t *testing.T) {
	kv := &mock.KeyValueStoreMock{
		HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
			return map[string]string{"createdAt": "garbage"}, nil
		},
	}

	got, err := newTestStore(kv, fixedClock(3000)).SetEntry(context.Background(), testGroup, testID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), got.CreatedAt)
	assert.Equal(t, int64(3000), got.UpdatedAt)
	assert.Len(t, kv.SetAddCalls(), 1)
}

func TestPresenceStore_SetEntry_Faults(t *testing.T) {
	ctx := context.Background()

	t.Run("read fault propagates without writing", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
				return nil, storageDown()
			},
		}
		_, err := newTestStore(kv, fixedClock(0)).SetEntry(ctx, testGroup, testID, nil)
		require.Error(t, err)
		assert.True(t, IsStorageUnavailableError(err))
		assert.Empty(t, kv.HashSetCalls())
		assert.Empty(t, kv.SetAddCalls())
	})

	t.Run("index fault is swallowed", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			SetAddFunc: func(ctx context.Context, setKey string, member string) (int64, error) {
				return 0, storageDown()
			},
		}
		got, err := newTestStore(kv, fixedClock(7)).SetEntry(ctx, testGroup, testID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.CreatedAt)
		assert.Len(t, kv.HashSetCalls(), 1)
	})

	t.Run("write fault propagates", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			HashSetFunc: func(ctx context.Context, key string, fields map[string]string) error {
				return storageDown()
			},
		}
		_, err := newTestStore(kv, fixedClock(0)).SetEntry(ctx, testGroup, testID, nil)
		require.Error(t, err)
		assert.True(t, IsStorageUnavailableError(err))
	})
}

func TestPresenceStore_GetGroup(t *testing.T) {
	ctx := context.Background()
	kv := &mock.KeyValueStoreMock{
		KeysMatchingFunc: func(ctx context.Context, pattern string) ([]string, error) {
			assert.Equal(t, "app:g1:*", pattern)
			return []string{"app:g1:a", "app:g1:b", "app:g1:broken", "app:g1:sub:c", "app:g1:gone"}, nil
		},
		HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
			switch key {
			case "app:g1:a":
				return map[string]string{"createdAt": "1", "updatedAt": "2", "meta": "{}"}, nil
			case "app:g1:b":
				return map[string]string{"createdAt": "3", "updatedAt": "4", "meta": "{}"}, nil
			case "app:g1:broken":
				return nil, storageDown()
			case "app:g1:sub:c":
				t.Errorf("entry of another group was read: %s", key)
			}
			return map[string]string{}, nil
		},
	}

	entries, err := newTestStore(kv, fixedClock(0)).GetGroup(ctx, testGroup)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	ids := []string{entries[0].ID, entries[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
	for _, e := range entries {
		assert.Equal(t, testGroup, e.Group)
	}
}

func TestPresenceStore_GetGroup_ListFaultPropagates(t *testing.T) {
	kv := &mock.KeyValueStoreMock{
		KeysMatchingFunc: func(ctx context.Context, pattern string) ([]string, error) {
			return nil, storageDown()
		},
	}
	_, err := newTestStore(kv, fixedClock(0)).GetGroup(context.Background(), testGroup)
	require.Error(t, err)
	assert.True(t, IsStorageUnavailableError(err))
}

func TestPresenceStore_GetGroups(t *testing.T) {
	ctx := context.Background()
	kv := &mock.KeyValueStoreMock{
		SetMembersFunc: func(ctx context.Context, setKey string) ([]string, error) {
			assert.Equal(t, "groups", setKey)
			return []string{"g1", "stale", "unlistable"}, nil
		},
		KeysMatchingFunc: func(ctx context.Context, pattern string) ([]string, error) {
			switch pattern {
			case "app:g1:*":
				return []string{"app:g1:a", "app:g1:b"}, nil
			case "app:unlistable:*":
				return nil, storageDown()
			}
			return nil, nil
		},
		HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
			switch key {
			case "app:g1:a":
				return map[string]string{"createdAt": "100", "updatedAt": "900", "meta": "{}"}, nil
			case "app:g1:b":
				return map[string]string{"createdAt": "50", "updatedAt": "500", "meta": "{}"}, nil
			}
			return map[string]string{}, nil
		},
	}

	groups, err := newTestStore(kv, fixedClock(0)).GetGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].Group)
	assert.Equal(t, 2, groups[0].Instances)
	assert.Equal(t, int64(50), groups[0].CreatedAt)
	assert.Equal(t, int64(900), groups[0].UpdatedAt)
}

func TestPresenceStore_GetGroups_IndexFaultPropagates(t *testing.T) {
	kv := &mock.KeyValueStoreMock{
		SetMembersFunc: func(ctx context.Context, setKey string) ([]string, error) {
			return nil, storageDown()
		},
	}
	_, err := newTestStore(kv, fixedClock(0)).GetGroups(context.Background())
	require.Error(t, err)
	assert.True(t, IsStorageUnavailableError(err))
}

func TestPresenceStore_DeleteEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("last entry removes group from index", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			DeleteFunc: func(ctx context.Context, key string) (int64, error) {
				assert.Equal(t, testKey, key)
				return 1, nil
			},
			KeysMatchingFunc: func(ctx context.Context, pattern string) ([]string, error) {
				// only an entry of a longer group name is left
				return []string{"app:g1:sub:x"}, nil
			},
			SetRemoveFunc: func(ctx context.Context, setKey string, member string) (int64, error) {
				assert.Equal(t, "groups", setKey)
				assert.Equal(t, testGroup, member)
				return 1, nil
			},
		}
		n, err := newTestStore(kv, fixedClock(0)).DeleteEntry(ctx, testGroup, testID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Len(t, kv.SetRemoveCalls(), 1)
	})

	t.Run("remaining entries keep group indexed", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			DeleteFunc: func(ctx context.Context, key string) (int64, error) { return 1, nil },
			KeysMatchingFunc: func(ctx context.Context, pattern string) ([]string, error) {
				return []string{"app:g1:other"}, nil
			},
		}
		n, err := newTestStore(kv, fixedClock(0)).DeleteEntry(ctx, testGroup, testID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.Empty(t, kv.SetRemoveCalls())
	})

	t.Run("absent entry returns zero and still prunes index", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{}
		n, err := newTestStore(kv, fixedClock(0)).DeleteEntry(ctx, testGroup, testID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
		assert.Len(t, kv.SetRemoveCalls(), 1)
	})

	t.Run("delete fault propagates", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			DeleteFunc: func(ctx context.Context, key string) (int64, error) { return 0, storageDown() },
		}
		_, err := newTestStore(kv, fixedClock(0)).DeleteEntry(ctx, testGroup, testID)
		require.Error(t, err)
		assert.True(t, IsStorageUnavailableError(err))
		assert.Empty(t, kv.KeysMatchingCalls())
	})

	t.Run("index cleanup faults are swallowed", func(t *testing.T) {
		kv := &mock.KeyValueStoreMock{
			DeleteFunc: func(ctx context.Context, key string) (int64, error) { return 1, nil },
			SetRemoveFunc: func(ctx context.Context, setKey string, member string) (int64, error) {
				return 0, storageDown()
			},
		}
		n, err := newTestStore(kv, fixedClock(0)).DeleteEntry(ctx, testGroup, testID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		kv.KeysMatchingFunc = func(ctx context.Context, pattern string) ([]string, error) { return nil, storageDown() }
		n, err = newTestStore(kv, fixedClock(0)).DeleteEntry(ctx, testGroup, testID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestPresenceStore_RemoveExpired(t *testing.T) {
	ctx := context.Background()
	entries := map[string]map[string]string{
		"app:g1:old":      {"createdAt": "1000", "updatedAt": "1000", "meta": "{}"},
		"app:g1:fresh":    {"createdAt": "1000", "updatedAt": "9500", "meta": "{}"},
		"app:g2:boundary": {"createdAt": "8000", "updatedAt": "8000", "meta": "{}"},
		"app:g3:failing":  {"createdAt": "1000", "updatedAt": "1000", "meta": "{}"},
		"app:g4:broken":   {"createdAt": "x"},
	}

	var mu sync.Mutex
	var deleted []string
	kv := &mock.KeyValueStoreMock{
		KeysMatchingFunc: func(ctx context.Context, pattern string) ([]string, error) {
			if pattern == "app:*" {
				return []string{"app:g1:old", "app:g1:fresh", "app:g2:boundary", "app:g3:failing", "app:g4:broken", "app:nocolon"}, nil
			}
			var keys []string
			mu.Lock()
			defer mu.Unlock()
			for k := range entries {
				if strings.HasPrefix(k, strings.TrimSuffix(pattern, "*")) {
					keys = append(keys, k)
				}
			}
			return keys, nil
		},
		HashGetAllFunc: func(ctx context.Context, key string) (map[string]string, error) {
			mu.Lock()
			defer mu.Unlock()
			return entries[key], nil
		},
		DeleteFunc: func(ctx context.Context, key string) (int64, error) {
			if key == "app:g3:failing" {
				return 0, storageDown()
			}
			mu.Lock()
			defer mu.Unlock()
			deleted = append(deleted, key)
			delete(entries, key)
			return 1, nil
		},
	}

	removed, err := newTestStore(kv, fixedClock(10000)).RemoveExpired(ctx, 2000*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.ElementsMatch(t, []string{"app:g1:old", "app:g2:boundary"}, deleted)

	var removedGroups []string
	for _, call := range kv.SetRemoveCalls() {
		removedGroups = append(removedGroups, call.Member)
	}
	assert.Equal(t, []string{"g2"}, removedGroups, "g1 still has a fresh entry")
}

func TestPresenceStore_RemoveExpired_ListFaultPropagates(t *testing.T) {
	kv := &mock.KeyValueStoreMock{
		KeysMatchingFunc: func(ctx context.Context, pattern string) ([]string, error) {
			return nil, storageDown()
		},
	}
	_, err := newTestStore(kv, fixedClock(0)).RemoveExpired(context.Background(), time.Second)
	require.Error(t, err)
	assert.True(t, IsStorageUnavailableError(err))
}
