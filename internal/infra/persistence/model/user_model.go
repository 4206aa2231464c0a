package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application (UUIDv7).
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	CompanyName  string    `gorm:"type:varchar(255);not null"`
	Country      string    `gorm:"type:varchar(100);not null"`
	TradingRole  string    `gorm:"type:varchar(16);not null"`
	Role         string    `gorm:"type:varchar(32);not null;default:basic"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PlatformStatsRow receives the single-row aggregate query.
type PlatformStatsRow struct {
	TotalUsers       int64
	TotalCompanies   int64
	CountriesCovered int64
	Buyers           int64
	Sellers          int64
}
