package models

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// UpdateProfileRequest carries only the fields being changed.
type UpdateProfileRequest struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// IsEmpty reports whether no field is set.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r == UpdateProfileRequest{}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message,omitempty"`
}

type ProfileResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
