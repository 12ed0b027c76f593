// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"instagram_backend/internal/feature/user/domain/entity"
	"instagram_backend/internal/feature/user/usecase"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultNamespace = "users"
)

// CachingUserRepository decorates a UserRepository with Redis caching of FindByID.
// Writes go to the inner repository first and then drop the cached entry.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
// A nil client disables caching and every call goes to inner.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = defaultNamespace
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID checks the cache first and falls back to the inner repository.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.idKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		slog.Warn("dropping corrupted user cache entry", "key", key)
		_ = c.rdb.Del(ctx, key).Err()
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The cached copy keeps EncryptedPassword. UpdateUser saves the user it
	// read here and gorm's Save writes every column, so dropping the field
	// would blank the stored credential on the next update.
	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return u, nil
}

// Save persists the user and invalidates its cache entry.
func (c *CachingUserRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	saved, err := c.inner.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, saved.ID)
	return saved, nil
}

// DeleteByID deletes the user and invalidates its cache entry.
func (c *CachingUserRepository) DeleteByID(ctx context.Context, id uint) error {
	if err := c.inner.DeleteByID(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachingUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	return c.inner.FindAll(ctx)
}

func (c *CachingUserRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return c.inner.ExistsByID(ctx, id)
}

func (c *CachingUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return c.inner.ExistsByEmail(ctx, email)
}

func (c *CachingUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return c.inner.ExistsByUsername(ctx, username)
}

// invalidate drops the cached user. Failures are logged, not returned.
func (c *CachingUserRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.idKey(id)).Err(); err != nil {
		slog.Warn("failed to invalidate user cache", "user_id", id, "error", err)
	}
}

// idKey generates the cache key for a user ID.
func (c *CachingUserRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}
