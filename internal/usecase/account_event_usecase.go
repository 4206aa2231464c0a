package usecase

import (
	"context"

	"ogfinder/internal/domain/service"
)

// AccountEventUsecase consumes account events delivered by the message queue.
type AccountEventUsecase interface {
	// HandleAccountEvent processes one event. Errors matching
	// domainerrors.ErrStoreUnavailable or ErrInternalError are worth a redelivery;
	// any other error means the event can never succeed.
	HandleAccountEvent(ctx context.Context, event *service.AccountEvent) error
}
