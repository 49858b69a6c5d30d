package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps the snapshot in a redis hash. It serves server-rendered
// front-ends that track one session per client key out-of-process, so a
// restarted renderer can rehydrate.
type RedisStorage struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStorage creates a redis-backed storage writing the hash at
// prefix:clientID. A non-zero ttl bounds how long an untouched snapshot
// survives; zero means no expiry.
func NewRedisStorage(client *redis.Client, prefix, clientID string, ttl time.Duration) (*RedisStorage, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if prefix == "" {
		prefix = "sessionauth"
	}
	if clientID == "" {
		return nil, fmt.Errorf("client id cannot be empty")
	}
	return &RedisStorage{
		client: client,
		key:    prefix + ":" + clientID,
		ttl:    ttl,
	}, nil
}

func (r *RedisStorage) Save(ctx context.Context, snap Snapshot) error {
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, r.key,
		KeyAuthToken, snap.Token,
		KeyUserData, snap.User,
		KeyTenantID, snap.TenantID,
		KeyAuthenticated, strconv.FormatBool(snap.Authenticated),
	)
	if r.ttl > 0 {
		pipe.Expire(ctx, r.key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (r *RedisStorage) Load(ctx context.Context) (*Snapshot, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	authenticated, _ := strconv.ParseBool(fields[KeyAuthenticated])
	return &Snapshot{
		Token:         fields[KeyAuthToken],
		User:          []byte(fields[KeyUserData]),
		TenantID:      fields[KeyTenantID],
		Authenticated: authenticated,
	}, nil
}

func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
