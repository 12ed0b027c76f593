// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for POST /users.
type CreateUserReq struct {
	FullName       string  `json:"full_name" binding:"required"`
	Username       string  `json:"username" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,max=72"`
	ProfilePicture *string `json:"profile_picture"`
}

// UpdateUserReq represents the request body for PUT /users/:id.
// An empty password keeps the current one.
// max counts characters; the encoder still rejects multi-byte passwords over 72 bytes.
type UpdateUserReq struct {
	FullName string `json:"full_name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,max=72"`
}
