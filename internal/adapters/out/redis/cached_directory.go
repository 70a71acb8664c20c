// Package redis caches the role-wide recipient lists of the user directory in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyAdmins    = "admins"
	keyCustomers = "customers"
)

// Cache is the key-value store the directory caches into.
type Cache interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get returns "" and no error on a miss.
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

type redisCache struct {
	client      *goredis.Client
	serviceName string
}

// NewRedisCache prefixes every key with serviceName.
func NewRedisCache(client *goredis.Client, serviceName string) Cache {
	return redisCache{client: client, serviceName: serviceName}
}

func (r redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r redisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r redisCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.serviceName, operation, key)
}

type cachedUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
	PushToken string `json:"pushToken,omitempty"`
}

// CachedDirectory decorates a ports.UserDirectory. ListAdmins and ListCustomers are
// served from the cache for ttl; lookups by id always hit the store. Cache failures
// fall back to the store.
//
// The lists are never invalidated on write. A user who registers, is promoted or
// changes their push token shows up in recipient lists at most ttl later.
type CachedDirectory struct {
	store  ports.UserDirectory
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedDirectory wraps store. ttl bounds how stale a cached recipient list can be.
func NewCachedDirectory(store ports.UserDirectory, cache Cache, ttl time.Duration, logger *slog.Logger) *CachedDirectory {
	return &CachedDirectory{
		store:  store,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "CachedDirectory"),
	}
}

func (d *CachedDirectory) Get(ctx context.Context, id kernel.UUID) (user.User, error) {
	return d.store.Get(ctx, id)
}

func (d *CachedDirectory) ListByIDs(ctx context.Context, ids []kernel.UUID) ([]user.User, error) {
	return d.store.ListByIDs(ctx, ids)
}

func (d *CachedDirectory) ListAdmins(ctx context.Context) ([]user.User, error) {
	return d.list(ctx, keyAdmins, d.store.ListAdmins)
}

func (d *CachedDirectory) ListCustomers(ctx context.Context) ([]user.User, error) {
	return d.list(ctx, keyCustomers, d.store.ListCustomers)
}

func (d *CachedDirectory) list(
	ctx context.Context,
	name string,
	load func(context.Context) ([]user.User, error),
) ([]user.User, error) {
	key := d.cache.GenerateKey("users", name)

	raw, err := d.cache.Get(ctx, key)
	if err != nil {
		d.logger.WarnContext(ctx, "recipient cache read failed", "key", key, "error", err)
	} else if raw != "" {
		users, decodeErr := decodeUsers(raw)
		if decodeErr == nil {
			return users, nil
		}
		d.logger.WarnContext(ctx, "recipient cache entry is corrupt", "key", key, "error", decodeErr)
	}

	users, err := load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := encodeUsers(users)
	if err != nil {
		d.logger.WarnContext(ctx, "recipient cache encode failed", "key", key, "error", err)
		return users, nil
	}
	if err := d.cache.Set(ctx, key, encoded, d.ttl); err != nil {
		d.logger.WarnContext(ctx, "recipient cache write failed", "key", key, "error", err)
	}

	return users, nil
}

func encodeUsers(users []user.User) (string, error) {
	cached := make([]cachedUser, 0, len(users))
	for _, u := range users {
		cached = append(cached, cachedUser{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			IsAdmin:   u.IsAdmin,
			PushToken: u.PushToken,
		})
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeUsers(raw string) ([]user.User, error) {
	var cached []cachedUser
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, err
	}

	users := make([]user.User, 0, len(cached))
	for _, c := range cached {
		id, err := kernel.UUIDFromString(c.ID)
		if err != nil {
			return nil, err
		}
		users = append(users, user.User{
			ID:        id,
			Name:      c.Name,
			Email:     c.Email,
			IsAdmin:   c.IsAdmin,
			PushToken: c.PushToken,
		})
	}
	return users, nil
}
