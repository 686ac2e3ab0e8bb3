package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis persists the credential in a single redis key. Intended for shared
// terminal fleets where the credential slot must follow the workstation user
// across machines.
type Redis struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedis creates a redis-backed store. prefix namespaces the key (defaults
// to "authkit" when empty); ttl bounds how long a saved credential survives
// unused, zero meaning no expiry.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = "authkit"
	}
	return &Redis{
		client: client,
		key:    prefix + ":credential",
		ttl:    ttl,
	}
}

// Save stores credential under the configured key, overwriting any previous value.
func (r *Redis) Save(ctx context.Context, credential string) error {
	if err := r.client.Set(ctx, r.key, credential, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Load returns the stored credential, [ErrNoCredential] when the key is absent,
// or [ErrUnavailable] when redis cannot be reached.
func (r *Redis) Load(ctx context.Context) (string, error) {
	credential, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if credential == "" {
		return "", ErrNoCredential
	}
	return credential, nil
}

// Clear deletes the key. Deleting an absent key is a no-op.
func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
