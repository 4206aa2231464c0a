// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered directory account. Email is unique across all users.
type User struct {
	ID           uuid.UUID   // Generated at registration, never changes.
	Email        string      // Login identifier, matched exactly.
	PasswordHash string      // bcrypt hash. Never leaves the service layer.
	FirstName    string
	LastName     string
	CompanyName  string      // Free text. Stats count distinct values.
	Country      string      // Free text. Stats count distinct values.
	TradingRole  TradingRole // buyer, seller or both.
	Role         Role        // Account tier, basic on creation.
	CreatedAt    time.Time   // Set once at registration, UTC.
}

// Profile returns the view of the user that is safe to hand to callers.
func (u *User) Profile() *Profile {
	if u == nil {
		return nil
	}

	return &Profile{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		CompanyName: u.CompanyName,
		Country:     u.Country,
		TradingRole: u.TradingRole,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}

// Profile is the public projection of a User. It has no password material.
type Profile struct {
	ID          uuid.UUID   `json:"id"`
	Email       string      `json:"email"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	CompanyName string      `json:"company_name"`
	Country     string      `json:"country"`
	TradingRole TradingRole `json:"trading_role"`
	Role        Role        `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}
