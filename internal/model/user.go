package model

import (
	"net/mail"
	"time"
)

// User represents a user account
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"` // Never expose password hash
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Constraints
const (
	MaxUserNameLength = 100
	MinPasswordLength = 8
	MaxPasswordLength = 72 // bcrypt input limit
)

// RegisterRequest represents a request to create a user account
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the register request is valid
func (r *RegisterRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxUserNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 100 characters or less"})
	}
	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errors = append(errors, FieldError{Field: "email", Message: "email must be a valid address"})
	}
	if r.Password == "" {
		errors = append(errors, FieldError{Field: "password", Message: "password is required"})
	} else if len(r.Password) < MinPasswordLength {
		errors = append(errors, FieldError{Field: "password", Message: "password must be at least 8 characters"})
	} else if len(r.Password) > MaxPasswordLength {
		errors = append(errors, FieldError{Field: "password", Message: "password must be 72 characters or less"})
	}

	return errors
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks if the login request is valid
func (r *LoginRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Email == "" {
		errors = append(errors, FieldError{Field: "email", Message: "email is required"})
	}
	if r.Password == "" {
		errors = append(errors, FieldError{Field: "password", Message: "password is required"})
	}

	return errors
}

// TokenResponse is returned after a successful login or registration
type TokenResponse struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

// UserView is the transport representation of a user account.
// The password hash is never part of it.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// UserSummary restricts a nested user to name and email.
// Events expose their owner and attendees this way.
type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserRef restricts a nested user to id and name.
// Posts and comments expose their author this way.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToView converts a User to its transport representation
func (u *User) ToView() *UserView {
	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// ToSummary converts a User to its {name, email} summary
func (u *User) ToSummary() UserSummary {
	return UserSummary{Name: u.Name, Email: u.Email}
}

// ToRef converts a User to its {id, name} reference
func (u *User) ToRef() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}
