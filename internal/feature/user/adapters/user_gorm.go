// Package adapters provides the repository implementations for the user feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"instagram_backend/internal/feature/user/domain/entity"
	"instagram_backend/internal/feature/user/usecase"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

// userGorm is the GORM implementation of usecase.UserRepository.
type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a userGorm with the given gorm.DB connection.
// The connection should be opened with TranslateError enabled so duplicate keys
// surface as gorm.ErrDuplicatedKey on every dialect.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Save inserts or overwrites the user.
// A unique index violation on email or username returns usecase.ErrFieldAlreadyExists.
func (r *userGorm) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	if u == nil {
		return nil, fmt.Errorf("%w: user must not be nil", usecase.ErrInvalidArgument)
	}
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		err = translateError(err)
		if errors.Is(err, usecase.ErrFieldAlreadyExists) {
			return nil, r.duplicateField(ctx, u)
		}
		return nil, err
	}
	return u, nil
}

// FindByID returns usecase.ErrUserNotFound when no row matches.
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindAll returns all users ordered by ID.
func (r *userGorm) FindAll(ctx context.Context) ([]entity.User, error) {
	users := []entity.User{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteByID removes the user. Deleting a missing ID is a no-op.
func (r *userGorm) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, id).Error
}

func (r *userGorm) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *userGorm) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *userGorm) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *userGorm) exists(ctx context.Context, query string, arg any) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).Where(query, arg).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// duplicateField names the unique column u collides with on another row.
// The driver's own wording never reaches the caller.
func (r *userGorm) duplicateField(ctx context.Context, u *entity.User) error {
	if taken, err := r.takenByOther(ctx, "email = ?", u.Email, u.ID); err == nil && taken {
		return fmt.Errorf("%w: email %s", usecase.ErrFieldAlreadyExists, u.Email)
	}
	if taken, err := r.takenByOther(ctx, "username = ?", u.Username, u.ID); err == nil && taken {
		return fmt.Errorf("%w: username %s", usecase.ErrFieldAlreadyExists, u.Username)
	}
	return usecase.ErrFieldAlreadyExists
}

func (r *userGorm) takenByOther(ctx context.Context, query string, arg any, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Where(query, arg).Where("id <> ?", id).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// translateError maps duplicate key errors to usecase.ErrFieldAlreadyExists.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrFieldAlreadyExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return usecase.ErrFieldAlreadyExists
	}
	return err
}
