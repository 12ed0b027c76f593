package dto

// UserRes is the JSON representation of a user. It never includes a password.
type UserRes struct {
	ID             uint    `json:"id"`
	FullName       string  `json:"full_name"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// ErrorRes is the body of every error response.
type ErrorRes struct {
	Error string `json:"error"`
}
