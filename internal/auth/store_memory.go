package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type MemStore struct {
	mu         sync.RWMutex
	byUsername map[string]User
}

func NewMemStore() *MemStore {
	return &MemStore{byUsername: make(map[string]User)}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

// Create registers a user from an already computed bcrypt hash.
func (s *MemStore) Create(ctx context.Context, username string, hash []byte, role string) (User, error) {
	username = normalizeUsername(username)

	if _, err := bcrypt.Cost(hash); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[username]; ok {
		return User{}, ErrUserExists
	}

	u := User{ID: "u_" + uuid.NewString(), Username: username, Hash: hash, Role: role}
	s.byUsername[username] = u
	return u, nil
}

func (s *MemStore) Verify(ctx context.Context, username, password string) (User, error) {
	username = normalizeUsername(username)

	s.mu.RLock()
	u, ok := s.byUsername[username]
	s.mu.RUnlock()

	if !ok {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.Hash, []byte(normalizePassword(password))); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
