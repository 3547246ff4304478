package models

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Model
	Username string `gorm:"not null;unique" json:"username"`
	Email    string `json:"email"`
	Password string `gorm:"not null" json:"-"`
}

// Prepare trims surrounding whitespace from the credential fields.
func (u *User) Prepare() {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)
}

// Validate checks that the credentials required for a login attempt are present.
func (u *User) Validate() error {
	if len(u.Username) <= 0 {
		return errors.New("username is required")
	}
	if len(u.Password) <= 0 {
		return errors.New("password is required")
	}
	return nil
}

// Hash creates a bcrypt hash of the given plaintext password.
func Hash(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// VerifyPassword compares a bcrypt hashed password with its possible plaintext equivalent.
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
