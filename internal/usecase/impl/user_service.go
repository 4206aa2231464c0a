// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ogfinder/internal/delivery/context"
	"ogfinder/internal/domain/constants"
	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/domain/service"
	"ogfinder/internal/infra/validation"
	"ogfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fallbackDummyHash is only used when the hasher cannot produce a dummy hash of its own cost.
const fallbackDummyHash = "$2b$12$KQo.UzU.1tjzsznuUf59AupS37DFx3uUIqJKd1lmvzbG6/GB0wXCm"

// userService implements the UserUsecase interface.
type userService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	validate  *validation.Validator
	now       func() time.Time
	logger    *slog.Logger

	// dummyHash is checked when the email is unknown. It is produced by the
	// injected hasher so both login failures cost the same comparison.
	dummyHash string
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		validate:  validation.New(),
		now:       time.Now,
		logger:    params.Logger,
		dummyHash: newDummyHash(params.Hasher, params.Logger),
	}
}

func newDummyHash(hasher service.PasswordHasher, logger *slog.Logger) string {
	hash, err := hasher.Hash(uuid.NewString())
	if err != nil {
		logger.Error("Failed to build dummy password hash, using fallback", slog.Any("error", err))

		return fallbackDummyHash
	}

	return hash
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The store's uniqueness guarantee is authoritative;
// the lookup beforehand only avoids hashing for an obvious duplicate.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	input = normalizeRegisterInput(input)

	if err := srv.validate.Validate(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return nil, errors.Wrap(domainerrors.ErrDuplicateEmail, "registration rejected")
	case !errors.Is(err, repository.ErrUserNotFound):
		srv.log(ctx).Error("Failed to look up email", slog.String("email", input.Email), slog.Any("error", err))

		return nil, asAppError(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, asAppError(err, "failed to hash password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInternalError.WithCause(err))
	}

	user := &entity.User{
		ID:           id,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CompanyName:  input.CompanyName,
		Country:      input.Country,
		TradingRole:  entity.TradingRole(input.TradingRole),
		Role:         entity.RoleBasic,
		CreatedAt:    srv.now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Concurrent registration lost the race", slog.String("email", input.Email))

			return nil, errors.Wrap(err, "registration rejected")
		}
		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, asAppError(err, "failed to create user")
	}

	srv.publishRegistered(ctx, user)

	srv.log(ctx).Info("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{UserID: user.ID, Email: user.Email}, nil
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := srv.validate.Validate(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash)
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to load user for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, asAppError(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{User: user.Profile()}, nil
}

func (srv *userService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventID:     uuid.NewString(),
		Type:        constants.EventUserRegistered,
		UserID:      user.ID.String(),
		Email:       user.Email,
		CompanyName: user.CompanyName,
		Country:     user.Country,
		TradingRole: string(user.TradingRole),
		OccurredAt:  user.CreatedAt,
	}

	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("event_type", event.Type),
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}

func normalizeRegisterInput(input usecase.RegisterInput) usecase.RegisterInput {
	input.Email = strings.TrimSpace(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.CompanyName = strings.TrimSpace(input.CompanyName)
	input.Country = strings.TrimSpace(input.Country)
	input.TradingRole = strings.TrimSpace(input.TradingRole)
	if input.TradingRole == "" {
		input.TradingRole = string(entity.TradingRoleBoth)
	}

	return input
}

// asAppError keeps AppErrors (StoreUnavailable, ValidationFailed, ...) intact and hides anything else behind InternalError.
func asAppError(err error, message string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.Wrap(err, message)
	}

	return errors.WithStack(domainerrors.ErrInternalError.WithCause(errors.Wrap(err, message)))
}
