package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *UserRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "nested", "ogfinder.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Init(context.Background(), db))
	// Init is idempotent.
	require.NoError(t, Init(context.Background(), db))

	return NewUserRepository(db)
}

func newUser(email, company, country string, role entity.TradingRole) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "$2a$04$hash",
		FirstName:    "A",
		LastName:     "B",
		CompanyName:  company,
		Country:      country,
		TradingRole:  role,
		Role:         entity.RoleBasic,
		CreatedAt:    time.Date(2026, 3, 1, 12, 30, 0, 123456789, time.UTC),
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	user := newUser("a@b.com", "Acme", "US", entity.TradingRoleBuyer)

	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, user.CreatedAt.Equal(found.CreatedAt))
	found.CreatedAt = user.CreatedAt
	assert.Equal(t, user, found)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = repo.FindByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Create(ctx, newUser("a@b.com", "Acme", "US", entity.TradingRoleBuyer)))
	err := repo.Create(ctx, newUser("a@b.com", "Other", "NO", entity.TradingRoleSeller))

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	const attempts = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, newUser("race@b.com", "Acme", "US", entity.TradingRoleBoth))
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
}

func TestUserRepository_Aggregate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	stats, err := repo.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.PlatformStats{}, stats)

	for _, u := range []*entity.User{
		newUser("a@acme.com", "Acme", "US", entity.TradingRoleBuyer),
		newUser("b@acme.com", "Acme", "US", entity.TradingRoleSeller),
		newUser("c@north.com", "North Sea Energy", "NO", entity.TradingRoleBoth),
	} {
		require.NoError(t, repo.Create(ctx, u))
	}

	stats, err = repo.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.PlatformStats{
		TotalUsers:       3,
		TotalCompanies:   2,
		CountriesCovered: 2,
		Buyers:           2,
		Sellers:          2,
	}, stats)
}

func TestUserRepository_ClosedDatabaseIsUnavailable(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "ogfinder.db"))
	require.NoError(t, err)
	require.NoError(t, Init(ctx, db))
	repo := NewUserRepository(db)

	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, db.Close())

	assert.True(t, errors.Is(repo.Ping(ctx), domainerrors.ErrStoreUnavailable))

	_, err = repo.FindByEmail(ctx, "a@b.com")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}
