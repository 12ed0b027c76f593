package usecase

import "instagram_backend/internal/feature/user/domain/entity"

// UserDTO is the externally facing representation of a user.
// Password is write-only: it is read on create/update and always blank on output.
type UserDTO struct {
	ID             uint
	FullName       string
	Username       string
	Email          string
	Password       string
	ProfilePicture *string
}

// toDTO converts an entity into a UserDTO without the stored credential.
func toDTO(u *entity.User) *UserDTO {
	return &UserDTO{
		ID:             u.ID,
		FullName:       u.FullName,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}
