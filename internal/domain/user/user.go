package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidHandle   = errors.New("invalid handle")
	ErrInvalidPassword = errors.New("invalid password")
)

// User is the authenticated customer. The core never mutates it; rows are
// created and maintained by the account collaborator.
type User struct {
	ID          int64
	Handle      string
	DisplayName string
}

// Credentials is the login input pair. The plaintext password only lives here
// long enough to be compared against the stored hash.
type Credentials struct {
	handle   string
	password string
}

func NewCredentials(handle, plainPassword string) (Credentials, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return Credentials{}, ErrInvalidHandle
	}
	if plainPassword == "" {
		return Credentials{}, ErrInvalidPassword
	}
	return Credentials{handle: handle, password: plainPassword}, nil
}

func (c Credentials) Handle() string {
	return c.handle
}

func (c Credentials) Password() string {
	return c.password
}
