package impl

import (
	"context"
	"log/slog"

	deliverycontext "ogfinder/internal/delivery/context"
	"ogfinder/internal/domain/constants"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/domain/service"
	"ogfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountEventService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AccountEventServiceParams holds dependencies for AccountEventService, injected by Fx.
type AccountEventServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

func NewAccountEventService(params AccountEventServiceParams) usecase.AccountEventUsecase {
	return &accountEventService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *accountEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountEventService) HandleAccountEvent(ctx context.Context, event *service.AccountEvent) error {
	switch event.Type {
	case constants.EventUserRegistered:
		return srv.confirmRegistration(ctx, event)
	default:
		srv.log(ctx).Info("Ignoring account event",
			slog.String("event_id", event.EventID),
			slog.String("event_type", event.Type),
		)

		return nil
	}
}

// confirmRegistration checks that the account named by a user.registered event
// is readable from the store the worker is attached to and writes the audit
// record for it. The worker keeps no state of its own.
func (srv *accountEventService) confirmRegistration(ctx context.Context, event *service.AccountEvent) error {
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("user_id must be a valid UUID"))
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrapf(domainerrors.ErrNotFound, "user %s", userID)
		}

		return asAppError(err, "failed to load registered user")
	}

	srv.log(ctx).Info("Registration confirmed",
		slog.String("event_id", event.EventID),
		slog.String("user_id", user.ID.String()),
		slog.String("company_name", user.CompanyName),
		slog.String("country", user.Country),
		slog.String("trading_role", user.TradingRole.String()),
	)

	return nil
}
