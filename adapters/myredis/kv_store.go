package myredis

import (
	"context"
	"fmt"

	"mypresence/service"

	"github.com/go-redis/redis/v8"
)

type redisKVStore struct {
	client redis.UniversalClient
}

// NewKVStore creates redis implementation of interfaces.KeyValueStore.
func NewKVStore(client redis.UniversalClient) *redisKVStore {
	return &redisKVStore{
		client: service.NilPanic(client, "myredis.kv_store.go: client is required"),
	}
}

func (r *redisKVStore) HashSet(ctx context.Context, key string, fields map[string]string) error {
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}

	err := r.client.HSet(ctx, key, values).Err()
	if err != nil {
		return service.NewStorageUnavailableError("Redis hash write error", fmt.Errorf("can't write hash to redis (key='%s'), err: %w", key, err))
	}

	return nil
}

func (r *redisKVStore) HashGetAll(ctx context.Context, key string) (map[string]string, error) {
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, service.NewStorageUnavailableError("Redis hash read error", fmt.Errorf("can't read hash from redis (key='%s'), err: %w", key, err))
	}

	return fields, nil
}

func (r *redisKVStore) Delete(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return 0, service.NewStorageUnavailableError("Redis delete key error", fmt.Errorf("can't delete key from redis (key='%s'), err: %w", key, err))
	}

	return n, nil
}

func (r *redisKVStore) KeysMatching(ctx context.Context, pattern string) ([]string, error) {
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return nil, service.NewStorageUnavailableError("Redis get keys error", fmt.Errorf("redis get keys error (pattern='%s'), err: %w", pattern, err))
	}

	return keys, nil
}

func (r *redisKVStore) SetAdd(ctx context.Context, setKey string, member string) (int64, error) {
	n, err := r.client.SAdd(ctx, setKey, member).Result()
	if err != nil {
		return 0, service.NewStorageUnavailableError("Redis set add error", fmt.Errorf("can't add member '%s' to redis set (key='%s'), err: %w", member, setKey, err))
	}

	return n, nil
}

func (r *redisKVStore) SetRemove(ctx context.Context, setKey string, member string) (int64, error) {
	n, err := r.client.SRem(ctx, setKey, member).Result()
	if err != nil {
		return 0, service.NewStorageUnavailableError("Redis set remove error", fmt.Errorf("can't remove member '%s' from redis set (key='%s'), err: %w", member, setKey, err))
	}

	return n, nil
}

func (r *redisKVStore) SetMembers(ctx context.Context, setKey string) ([]string, error) {
	members, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return nil, service.NewStorageUnavailableError("Redis set members error", fmt.Errorf("can't read members of redis set (key='%s'), err: %w", setKey, err))
	}

	return members, nil
}
