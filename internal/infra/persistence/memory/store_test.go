package memory

import (
	"context"
	"sync"
	"sync/atomic"
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

func newUser(email, company, country string, role entity.TradingRole) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "A",
		LastName:     "B",
		CompanyName:  company,
		Country:      country,
		TradingRole:  role,
		Role:         entity.RoleBasic,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	user := newUser("a@b.com", "Acme", "US", entity.TradingRoleBuyer)

	require.NoError(t, store.Create(ctx, user))

	byEmail, err := store.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user, byEmail)

	byID, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	_, err = store.FindByEmail(ctx, "A@B.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = store.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	user := newUser("a@b.com", "Acme", "US", entity.TradingRoleBuyer)
	require.NoError(t, store.Create(ctx, user))

	user.CompanyName = "Mutated"
	found, err := store.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.CompanyName)
}

func TestStore_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.Create(ctx, newUser("a@b.com", "Acme", "US", entity.TradingRoleBuyer)))
	err := store.Create(ctx, newUser("a@b.com", "Other", "NO", entity.TradingRoleSeller))

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStore_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	const attempts = 32
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		dupes     atomic.Int32
	)
	start := make(chan struct{})
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := store.Create(ctx, newUser("race@b.com", "Acme", "US", entity.TradingRoleBoth))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrDuplicateEmail):
				dupes.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), dupes.Load())
}

func TestStore_Aggregate(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	for _, u := range []*entity.User{
		newUser("a@acme.com", "Acme", "US", entity.TradingRoleBuyer),
		newUser("b@acme.com", "Acme", "US", entity.TradingRoleSeller),
		newUser("c@north.com", "North Sea Energy", "NO", entity.TradingRoleBoth),
		newUser("d@gulf.com", "Gulf Trading", "AE", entity.TradingRoleBuyer),
	} {
		require.NoError(t, store.Create(ctx, u))
	}

	stats, err := store.Aggregate(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.PlatformStats{
		TotalUsers:       4,
		TotalCompanies:   3,
		CountriesCovered: 3,
		Buyers:           3,
		Sellers:          2,
	}, stats)
}

func TestStore_ClosedIsUnavailable(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Close())

	assert.True(t, errors.Is(store.Ping(ctx), domainerrors.ErrStoreUnavailable))

	_, err := store.FindByEmail(ctx, "a@b.com")
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	err = store.Create(ctx, newUser("a@b.com", "Acme", "US", entity.TradingRoleBuyer))
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStore().Count(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.True(t, errors.Is(err, context.Canceled))
}
