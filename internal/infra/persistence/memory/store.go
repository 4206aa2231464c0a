// Package memory is an in-process credential store for tests and single-node demos.
package memory

import (
	"context"
	"sync"

	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"

	"github.com/google/uuid"
)

// Store keeps users in maps guarded by one RWMutex. Create checks and inserts
// under the write lock, so the email index is the uniqueness constraint.
type Store struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]uuid.UUID
	closed  bool
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

var (
	_ repository.UserRepository  = (*Store)(nil)
	_ repository.StatsRepository = (*Store)(nil)
	_ repository.HealthChecker   = (*Store)(nil)
)

// FindByID retrieves a single user by their unique ID.
func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.usable(ctx); err != nil {
		return nil, err
	}

	user, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return clone(user), nil
}

// FindByEmail retrieves a single user by exact email match.
func (s *Store) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.usable(ctx); err != nil {
		return nil, err
	}

	id, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return clone(s.byID[id]), nil
}

// Create inserts user. A second user with the same email fails with ErrDuplicateEmail.
func (s *Store) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.usable(ctx); err != nil {
		return err
	}

	if _, exists := s.byEmail[user.Email]; exists {
		return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
	}
	if _, exists := s.byID[user.ID]; exists {
		return domainerrors.ErrUserCreationFailed.WrapMessage("user id already exists")
	}

	s.byID[user.ID] = clone(user)
	s.byEmail[user.Email] = user.ID

	return nil
}

// Count returns the number of stored users.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.usable(ctx); err != nil {
		return 0, err
	}

	return int64(len(s.byID)), nil
}

// Aggregate computes platform statistics over every stored user.
func (s *Store) Aggregate(ctx context.Context) (*entity.PlatformStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.usable(ctx); err != nil {
		return nil, err
	}

	stats := &entity.PlatformStats{}
	companies := make(map[string]struct{})
	countries := make(map[string]struct{})
	for _, user := range s.byID {
		stats.Add(user.TradingRole)
		companies[user.CompanyName] = struct{}{}
		countries[user.Country] = struct{}{}
	}
	stats.TotalCompanies = int64(len(companies))
	stats.CountriesCovered = int64(len(countries))

	return stats, nil
}

// Ping fails once the store is closed.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.usable(ctx)
}

// Close makes every later call fail with ErrStoreUnavailable.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	return nil
}

func (s *Store) usable(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.ErrStoreUnavailable.WithCause(err)
	}
	if s.closed {
		return domainerrors.ErrStoreUnavailable.WrapMessage("memory store closed")
	}

	return nil
}

func clone(user *entity.User) *entity.User {
	copied := *user

	return &copied
}
