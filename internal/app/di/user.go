package di

import (
	"time"

	"instagram_backend/internal/feature/user/adapters"
	"instagram_backend/internal/feature/user/usecase"
	"instagram_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the gorm repository is wrapped with a read-through cache.
// Otherwise, the gorm repository is used directly.
func NewUserRepository(db *gorm.DB, rdb *redis.Client, ttl time.Duration, namespace string) usecase.UserRepository {
	repo := adapters.NewUserRepository(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, namespace)
	}
	return repo
}
