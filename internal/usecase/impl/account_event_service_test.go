package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	deliverycontext "ogfinder/internal/delivery/context"
	"ogfinder/internal/domain/constants"
	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/domain/service"
	mockRepo "ogfinder/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountEventService(t *testing.T) (*accountEventService, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	srv := NewAccountEventService(AccountEventServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return srv.(*accountEventService), userRepo
}

func TestAccountEventService_UserRegistered(t *testing.T) {
	srv, userRepo := createTestAccountEventService(t)
	userID := uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:          userID,
		Email:       "a@x.com",
		CompanyName: "Acme",
		Country:     "US",
		TradingRole: entity.TradingRoleBuyer,
	}, nil)

	err := srv.HandleAccountEvent(context.Background(), &service.AccountEvent{
		EventID: "evt-1",
		Type:    constants.EventUserRegistered,
		UserID:  userID.String(),
	})

	require.NoError(t, err)
}

func TestAccountEventService_UserRegistered_Errors(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		userID  string
		findErr error
		want    error
	}{
		{name: "malformed id", userID: "not-a-uuid", want: domainerrors.ErrValidationFailed},
		{name: "unknown user", userID: userID.String(), findErr: repository.ErrUserNotFound, want: domainerrors.ErrNotFound},
		{name: "store unavailable", userID: userID.String(), findErr: domainerrors.ErrStoreUnavailable.WithCause(errors.New("refused")), want: domainerrors.ErrStoreUnavailable},
		{name: "unexpected", userID: userID.String(), findErr: errors.New("boom"), want: domainerrors.ErrInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, userRepo := createTestAccountEventService(t)
			if tt.findErr != nil {
				userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, tt.findErr)
			}

			err := srv.HandleAccountEvent(context.Background(), &service.AccountEvent{
				EventID: "evt-1",
				Type:    constants.EventUserRegistered,
				UserID:  tt.userID,
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestAccountEventService_UnknownTypeIgnored(t *testing.T) {
	srv, _ := createTestAccountEventService(t)

	err := srv.HandleAccountEvent(context.Background(), &service.AccountEvent{
		EventID: "evt-2",
		Type:    "user.deleted",
		UserID:  uuid.NewString(),
	})

	assert.NoError(t, err)
}

func TestAccountEventService_UserRegistered_WritesAuditRecord(t *testing.T) {
	srv, userRepo := createTestAccountEventService(t)
	userID := uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{
		ID:          userID,
		CompanyName: "Acme",
		Country:     "US",
		TradingRole: entity.TradingRoleBoth,
	}, nil)

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	require.NoError(t, srv.HandleAccountEvent(ctx, &service.AccountEvent{
		EventID: "evt-9",
		Type:    constants.EventUserRegistered,
		UserID:  userID.String(),
	}))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Registration confirmed", record["msg"])
	assert.Equal(t, "req-7", record["request_id"])
	assert.Equal(t, "evt-9", record["event_id"])
	assert.Equal(t, userID.String(), record["user_id"])
	assert.Equal(t, "Acme", record["company_name"])
	assert.Equal(t, "both", record["trading_role"])
}
