// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ogfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Surrounding whitespace is trimmed before validation; case is preserved.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	TradingRole string `json:"trading_role" validate:"omitempty,oneof=buyer seller both"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the identity of the newly created account.
type RegisterOutput struct {
	UserID uuid.UUID
	Email  string
}

// LoginOutput returns the authenticated user's profile. No session or token is issued.
type LoginOutput struct {
	User *entity.Profile
}

// UserUsecase defines the interface for account registration and authentication.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
