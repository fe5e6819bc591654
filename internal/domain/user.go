package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// User validation errors
var (
	ErrInvalidUserID  = errors.New("user ID must not be negative")
	ErrEmptyFirstName = errors.New("first name cannot be empty")
	ErrEmptyLastName  = errors.New("last name cannot be empty")
	ErrEmptyEmail     = errors.New("email cannot be empty")
	ErrInvalidEmail   = errors.New("invalid email format")
)

var emailValidator = validator.New()

// User is the only persisted entity of the service.
//
// ID is assigned by the database on insert and is zero until then. About is
// optional; nil means no value and is stored as NULL, never as "".
type User struct {
	ID        int64   `json:"user_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	About     *string `json:"about"`
}

// NewUser builds an unsaved User from client supplied values and validates it.
// A blank about is treated as absent.
func NewUser(firstName, lastName, email string, about *string) (*User, error) {
	if about != nil && strings.TrimSpace(*about) == "" {
		about = nil
	}

	user := &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		About:     about,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the invariants every stored user must satisfy.
func (u *User) Validate() error {
	if u.ID < 0 {
		return ErrInvalidUserID
	}

	if strings.TrimSpace(u.FirstName) == "" {
		return ErrEmptyFirstName
	}

	if strings.TrimSpace(u.LastName) == "" {
		return ErrEmptyLastName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if emailValidator.Var(u.Email, "email") != nil {
		return ErrInvalidEmail
	}

	return nil
}

// IsPersisted reports whether the database has assigned an identifier.
func (u *User) IsPersisted() bool {
	return u.ID > 0
}

// StringPtr returns a pointer to s. Handy for optional fields such as About.
func StringPtr(s string) *string {
	return &s
}
