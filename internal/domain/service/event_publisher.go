package service

import (
	"context"
	"time"
)

// AccountEvent is published after an account changes state.
type AccountEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	CompanyName string    `json:"company_name"`
	Country     string    `json:"country"`
	TradingRole string    `json:"trading_role"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account event for downstream consumers
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
