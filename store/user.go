package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"foodiehub-api/models"
)

// ErrNotLoggedIn reports a profile operation while no identity is set.
var ErrNotLoggedIn = errors.New("not logged in")

// UserStore holds at most one authenticated identity. Login replaces it
// wholesale, logout clears it and removes the persisted record.
type UserStore struct {
	mu      sync.Mutex
	storage Storage
	user    *models.User
}

// NewUserStore loads any persisted identity.
func NewUserStore(ctx context.Context, storage Storage) (*UserStore, error) {
	s := &UserStore{storage: storage}
	var u models.User
	found, err := storage.Load(ctx, UserKey, &u)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if found {
		s.user = &u
	}
	return s, nil
}

// Login replaces the current identity wholesale and persists it.
func (s *UserStore) Login(ctx context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Save(ctx, UserKey, u); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.user = &u
	return nil
}

// Logout clears the identity and removes the persisted record.
func (s *UserStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("remove user: %w", err)
	}
	s.user = nil
	return nil
}

// UpdateProfile shallow-merges the set fields of update into the
// current identity and returns the merged result. Returns
// ErrNotLoggedIn when no identity is set.
func (s *UserStore) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, ErrNotLoggedIn
	}
	merged := *s.user
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Avatar != nil {
		merged.Avatar = *update.Avatar
	}
	if err := s.storage.Save(ctx, UserKey, merged); err != nil {
		return models.User{}, fmt.Errorf("persist user: %w", err)
	}
	s.user = &merged
	return merged, nil
}

// Current returns the logged-in identity, if any.
func (s *UserStore) Current() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Authenticated reports whether an identity is set.
func (s *UserStore) Authenticated() bool {
	_, ok := s.Current()
	return ok
}
