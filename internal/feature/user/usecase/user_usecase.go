package usecase

import (
	"context"
	"errors"
	"fmt"

	"instagram_backend/internal/feature/user/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Save inserts the user when its ID is zero, otherwise overwrites the row with that ID.
	// The returned user carries the store-assigned ID.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user has the given ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindAll returns every stored user. Order is not part of the contract.
	FindAll(ctx context.Context) ([]entity.User, error)

	DeleteByID(ctx context.Context, id uint) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// PasswordEncoder turns a plaintext password into a stored credential.
// The transform is one-way.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
}

// UserUsecase implements user account management.
type UserUsecase struct {
	users   UserRepository
	encoder PasswordEncoder
}

// NewUserUsecase creates a UserUsecase with the given repository and password encoder.
func NewUserUsecase(users UserRepository, encoder PasswordEncoder) *UserUsecase {
	return &UserUsecase{
		users:   users,
		encoder: encoder,
	}
}

// CreateUser registers a new user after checking that the email and username are free.
// The email is checked first; a taken email short-circuits before the username lookup.
//
// Uniqueness is check-then-write, so two concurrent creates can both pass the checks.
// The unique indexes on the users table reject the loser with ErrFieldAlreadyExists.
func (u *UserUsecase) CreateUser(ctx context.Context, in *UserDTO) (*UserDTO, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: user must not be nil", ErrInvalidArgument)
	}

	exists, err := u.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s", ErrFieldAlreadyExists, in.Email)
	}

	exists, err = u.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: username %s", ErrFieldAlreadyExists, in.Username)
	}

	encoded, err := u.encoder.Encode(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to encode password: %w", err)
	}

	saved, err := u.users.Save(ctx, &entity.User{
		FullName:          in.FullName,
		Username:          in.Username,
		Email:             in.Email,
		EncryptedPassword: encoded,
		ProfilePicture:    in.ProfilePicture,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return toDTO(saved), nil
}

// UpdateUser overwrites the full name, username and email of an existing user.
// The credential is re-encoded only when a non-empty password is supplied.
//
// Unlike CreateUser, this does not check the new email or username against other users.
func (u *UserUsecase) UpdateUser(ctx context.Context, in *UserDTO) (*UserDTO, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: user must not be nil", ErrInvalidArgument)
	}

	user, err := u.users.FindByID(ctx, in.ID)
	if err != nil {
		return nil, notFound(err, in.ID)
	}

	user.FullName = in.FullName
	user.Username = in.Username
	user.Email = in.Email

	if in.Password != "" {
		encoded, err := u.encoder.Encode(in.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to encode password: %w", err)
		}
		user.EncryptedPassword = encoded
	}

	saved, err := u.users.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return toDTO(saved), nil
}

// DeleteUser removes the user with the given ID.
// Nothing is deleted when the user does not exist.
func (u *UserUsecase) DeleteUser(ctx context.Context, id uint) error {
	exists, err := u.users.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w with id: %d", ErrUserNotFound, id)
	}
	return u.users.DeleteByID(ctx, id)
}

// FindByID returns the user with the given ID.
func (u *UserUsecase) FindByID(ctx context.Context, id uint) (*UserDTO, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return toDTO(user), nil
}

// FindAll returns every user. The slice is empty, not nil, when there are none.
func (u *UserUsecase) FindAll(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *toDTO(&users[i]))
	}
	return out, nil
}

// notFound attaches the ID to ErrUserNotFound and passes other errors through.
func notFound(err error, id uint) error {
	if errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("%w with id: %d", ErrUserNotFound, id)
	}
	return err
}
