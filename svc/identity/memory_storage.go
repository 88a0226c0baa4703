package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

var _ Storage = (*MemoryStorage)(nil)

// MemoryStorage is an in-process Storage for tests and local development.
type MemoryStorage struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:   make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStorage) CreateUser(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[u.Email]; ok {
		return ErrEmailTaken
	}
	s.users[u.ID] = u.clone()
	s.byEmail[u.Email] = u.ID
	return nil
}

func (s *MemoryStorage) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.clone(), nil
}

func (s *MemoryStorage) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.users[id].clone(), nil
}

func (s *MemoryStorage) UpdateNationalID(_ context.Context, id uuid.UUID, envelope *string, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.EncryptedNationalID = envelope
	u.UpdatedAt = updatedAt
	return nil
}

func (s *MemoryStorage) UpdateProfile(_ context.Context, u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[u.ID]
	if !ok {
		return ErrUserNotFound
	}
	stored.FirstName = u.FirstName
	stored.LastName = u.LastName
	stored.PhoneNumber = clonePtr(u.PhoneNumber)
	stored.DateOfBirth = clonePtr(u.DateOfBirth)
	stored.Address = clonePtr(u.Address)
	stored.UpdatedAt = u.UpdatedAt
	return nil
}

func (s *MemoryStorage) SetActive(_ context.Context, id uuid.UUID, active bool, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	u.Active = active
	u.UpdatedAt = updatedAt
	return nil
}
