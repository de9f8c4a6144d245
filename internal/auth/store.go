package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID       string
	Username string
	Hash     []byte
	Role     string
}

type UserStore interface {
	Create(ctx context.Context, username string, hash []byte, role string) (User, error)
	Verify(ctx context.Context, username, password string) (User, error)
	Ping(ctx context.Context) error
}

// HashPassword returns the bcrypt hash stored for a password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(normalizePassword(password)), bcrypt.DefaultCost)
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func normalizePassword(password string) string {
	return strings.TrimSpace(password)
}
