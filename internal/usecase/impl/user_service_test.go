package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/domain/service"
	"ogfinder/internal/infra/auth"
	"ogfinder/internal/infra/persistence/memory"
	mockRepo "ogfinder/internal/mocks/repository"
	mockSvc "ogfinder/internal/mocks/service"
	"ogfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
	publisher *mockSvc.MockEventPublisher
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const testDummyHash = "dummy-hash"

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	// Consumed by the constructor when it builds the dummy hash.
	hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return(testDummyHash, nil).Once()

	srv := NewUserService(UserServiceParams{
		UserRepo:  userRepo,
		Hasher:    hasher,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	srv.(*userService).now = func() time.Time { return fixedNow }

	return userServiceFixtures{
		service:   srv,
		userRepo:  userRepo,
		hasher:    hasher,
		publisher: publisher,
	}
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:       "a@x.com",
		Password:    "pw1",
		FirstName:   "Ann",
		LastName:    "Lee",
		CompanyName: "Acme",
		Country:     "US",
		TradingRole: "buyer",
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	var created *entity.User
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("hashed-pw1", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { created = user }).
		Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.AnythingOfType("*service.AccountEvent")).
		Run(func(_ context.Context, event *service.AccountEvent) {
			assert.Equal(t, "user.registered", event.Type)
			assert.Equal(t, "a@x.com", event.Email)
			assert.Equal(t, "buyer", event.TradingRole)
		}).
		Return(nil)

	out, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, out.UserID)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Equal(t, "hashed-pw1", created.PasswordHash)
	assert.NotEqual(t, "pw1", created.PasswordHash)
	assert.Equal(t, entity.RoleBasic, created.Role)
	assert.Equal(t, entity.TradingRoleBuyer, created.TradingRole)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, uuid.Version(7), created.ID.Version())
}

func TestUserService_Register_TrimsAndDefaultsTradingRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := validRegisterInput()
	input.Email = "  Mixed@Case.com "
	input.CompanyName = " Acme "
	input.TradingRole = ""

	fx.userRepo.EXPECT().FindByEmail(ctx, "Mixed@Case.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("h", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "Mixed@Case.com" && user.CompanyName == "Acme" && user.TradingRole == entity.TradingRoleBoth
	})).Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(nil)

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Mixed@Case.com", out.Email)
}

func TestUserService_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*usecase.RegisterInput)
		details string
	}{
		{
			name:    "invalid email",
			mutate:  func(in *usecase.RegisterInput) { in.Email = "not-an-email" },
			details: "email must be a valid email address",
		},
		{
			name:    "empty password",
			mutate:  func(in *usecase.RegisterInput) { in.Password = "" },
			details: "password is required",
		},
		{
			name:    "blank company",
			mutate:  func(in *usecase.RegisterInput) { in.CompanyName = "   " },
			details: "company_name is required",
		},
		{
			name:    "unknown trading role",
			mutate:  func(in *usecase.RegisterInput) { in.TradingRole = "broker" },
			details: "trading_role must be one of [buyer seller both]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			input := validRegisterInput()
			tt.mutate(&input)

			out, err := fx.service.Register(context.Background(), input)

			require.Error(t, err)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.details)
		})
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: uuid.New(), Email: "a@x.com"}, nil)

	out, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_Register_DuplicateOnCreate(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("h", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrDuplicateEmail.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	fx.publisher.AssertNotCalled(t, "PublishAccountEvent", mock.Anything, mock.Anything)
}

func TestUserService_Register_StoreUnavailable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").
		Return(nil, domainerrors.ErrStoreUnavailable.WithCause(errors.New("connection refused")))

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 503, appErr.HTTPCode())
}

func TestUserService_Register_UnexpectedStoreErrorIsInternal(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("h", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.Register(ctx, validRegisterInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestUserService_Register_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("pw1").Return("h", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAccountEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	out, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", out.Email)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "a@x.com",
		PasswordHash: "stored-hash",
		FirstName:    "Ann",
		LastName:     "Lee",
		CompanyName:  "Acme",
		Country:      "US",
		TradingRole:  entity.TradingRoleBuyer,
		Role:         entity.RoleBasic,
		CreatedAt:    fixedNow,
	}
	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("pw1", "stored-hash").Return(true)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, stored.ID, out.User.ID)
	assert.Equal(t, "Acme", out.User.CompanyName)
	assert.Equal(t, entity.RoleBasic, out.User.Role)
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknown := createTestUserService(t)
	unknown.userRepo.EXPECT().FindByEmail(ctx, "nobody@x.com").Return(nil, repository.ErrUserNotFound)
	unknown.hasher.EXPECT().Check("pw1", testDummyHash).Return(false)

	_, unknownErr := unknown.service.Login(ctx, usecase.LoginInput{Email: "nobody@x.com", Password: "pw1"})

	wrong := createTestUserService(t)
	wrong.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").Return(&entity.User{ID: uuid.New(), PasswordHash: "h"}, nil)
	wrong.hasher.EXPECT().Check("wrong", "h").Return(false)

	_, wrongErr := wrong.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "wrong"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
}

func TestUserService_Login_StoreUnavailable(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "a@x.com").
		Return(nil, domainerrors.ErrStoreUnavailable.WithCause(errors.New("pool closed")))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw1"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: " ", Password: ""})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_DummyHashSharesHasherCost(t *testing.T) {
	for _, cost := range []int{bcrypt.MinCost, bcrypt.MinCost + 1} {
		srv := NewUserService(UserServiceParams{
			UserRepo:  mockRepo.NewMockUserRepository(t),
			Hasher:    auth.NewBcryptHasherWithCost(cost),
			Publisher: mockSvc.NewMockEventPublisher(t),
			Logger:    newDiscardLogger(),
		})

		got, err := bcrypt.Cost([]byte(srv.(*userService).dummyHash))

		require.NoError(t, err)
		assert.Equal(t, cost, got)
	}
}

func TestUserService_DummyHashFallsBackWhenHashingFails(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("entropy exhausted"))

	srv := NewUserService(UserServiceParams{
		UserRepo:  mockRepo.NewMockUserRepository(t),
		Hasher:    hasher,
		Publisher: mockSvc.NewMockEventPublisher(t),
		Logger:    newDiscardLogger(),
	})

	assert.Equal(t, fallbackDummyHash, srv.(*userService).dummyHash)

	cost, err := bcrypt.Cost([]byte(fallbackDummyHash))
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

// Real store and hasher: the register/login round trip and the one-winner rule under contention.
func newIntegratedUserService(t *testing.T) usecase.UserUsecase {
	t.Helper()

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishAccountEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	return NewUserService(UserServiceParams{
		UserRepo:  memory.NewStore(),
		Hasher:    auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
}

func TestUserService_RegisterThenLogin(t *testing.T) {
	srv := newIntegratedUserService(t)
	ctx := context.Background()

	reg, err := srv.Register(ctx, validRegisterInput())
	require.NoError(t, err)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, out.User.ID)

	_, err = srv.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: "pw2"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = srv.Login(ctx, usecase.LoginInput{Email: "A@x.com", Password: "pw1"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_ConcurrentRegistrationSameEmail(t *testing.T) {
	srv := newIntegratedUserService(t)
	ctx := context.Background()

	const attempts = 16

	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		successes  int
		duplicates int
	)

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := srv.Register(ctx, validRegisterInput())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domainerrors.ErrDuplicateEmail):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, duplicates)
}
