package di

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"instagram_backend/internal/platform/cache"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	return db
}

func TestNewUserRepository(t *testing.T) {
	t.Run("without redis returns the gorm repository", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t), nil, time.Minute, "users")

		require.NotNil(t, repo)
		_, isCache := repo.(*cache.CachingUserRepository)
		assert.False(t, isCache, "repository should not be cached")
	})

	t.Run("with redis wraps the repository in a cache", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()

		repo := NewUserRepository(setupTestDB(t), rdb, time.Minute, "users")

		require.NotNil(t, repo)
		_, isCache := repo.(*cache.CachingUserRepository)
		assert.True(t, isCache, "repository should be cached")
	})
}
