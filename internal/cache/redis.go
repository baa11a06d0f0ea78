package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/katalvlaran/pathgrid/explorer"
)

// Redis implements Cache on a Redis server.
type Redis struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Redis cache.
type Option func(*Redis)

// WithTTL sets the expiration for cached reports.
func WithTTL(ttl time.Duration) Option {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis creates a Redis cache with its own client.
func NewRedis(address, password string, db int, opts ...Option) *Redis {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient creates a Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Redis {
	r := &Redis{
		client: client,
		prefix: "pathgrid:report:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

// Get loads a report. A missing key is a miss, not an error.
func (r *Redis) Get(ctx context.Context, key string) (*explorer.Report, bool, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, backend.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	var rep explorer.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return &rep, true, nil
}

// Put stores a report under key.
func (r *Redis) Put(ctx context.Context, key string, rep *explorer.Report) error {
	data, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.key(key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
