// Package models defines the request and response shapes exchanged with the
// Data Guard backend. There is no shared envelope: each endpoint has its own
// ad hoc body, mirrored here one type per shape.
package models

// User is the backend's identity record. The client holds a read-mostly
// copy for the session and never edits it locally.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	IsActive  bool       `json:"isActive"`
	LastLogin *Timestamp `json:"lastLogin,omitempty"`
	Role      string     `json:"role"`
}

// DisplayName returns "First Last", falling back to the username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
