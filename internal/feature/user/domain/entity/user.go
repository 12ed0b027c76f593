// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered account.
// It is the persisted representation and carries the stored credential.
type User struct {
	// ID is assigned by the store on creation and never changes afterwards.
	ID uint `gorm:"primaryKey"`

	// FullName is the display name shown on the profile.
	FullName string `gorm:"size:255;not null"`

	// Username must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// EncryptedPassword is the encoded credential.
	// It never holds the plaintext password.
	EncryptedPassword string `gorm:"size:255;not null"`

	// ProfilePicture is an optional reference to the user's picture.
	ProfilePicture *string `gorm:"size:1024"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
