// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/errors"
	"ogfinder/internal/infra/persistence/dberr"
	"ogfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository implements the credential store, stats and health ports using GORM.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

var (
	_ repository.UserRepository  = (*UserRepository)(nil)
	_ repository.StatsRepository = (*UserRepository)(nil)
	_ repository.HealthChecker   = (*UserRepository)(nil)
)

// FindByID retrieves a single user by their unique ID.
func (repo *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		return nil, translateFind(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by exact email match.
func (repo *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		return nil, translateFind(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user. The users_email_key unique index decides duplicates.
func (repo *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("trading role rejected by store")
		}

		return dberr.Translate(err, "failed to create user", isConnectionFailure)
	}

	return nil
}

// Count returns the number of stored users.
func (repo *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, dberr.Translate(err, "failed to count users", isConnectionFailure)
	}

	return count, nil
}

// Aggregate computes platform statistics in one statement.
func (repo *UserRepository) Aggregate(ctx context.Context) (*entity.PlatformStats, error) {
	var row model.PlatformStatsRow
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select(`COUNT(*) AS total_users,
			COUNT(DISTINCT company_name) AS total_companies,
			COUNT(DISTINCT country) AS countries_covered,
			COUNT(*) FILTER (WHERE trading_role IN ('buyer', 'both')) AS buyers,
			COUNT(*) FILTER (WHERE trading_role IN ('seller', 'both')) AS sellers`).
		Scan(&row).Error
	if err != nil {
		return nil, dberr.Translate(err, "failed to aggregate platform stats", isConnectionFailure)
	}

	return &entity.PlatformStats{
		TotalUsers:       row.TotalUsers,
		TotalCompanies:   row.TotalCompanies,
		CountriesCovered: row.CountriesCovered,
		Buyers:           row.Buyers,
		Sellers:          row.Sellers,
	}, nil
}

// Ping checks the primary connection.
func (repo *UserRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return domainerrors.ErrStoreUnavailable.WithCause(err)
	}

	return dberr.Translate(sqlDB.PingContext(ctx), "failed to ping PostgreSQL", isConnectionFailure)
}

func translateFind(err error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrUserNotFound
	}

	return dberr.Translate(err, details, isConnectionFailure)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		CompanyName:  data.CompanyName,
		Country:      data.Country,
		TradingRole:  entity.TradingRole(data.TradingRole),
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt.UTC(),
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		CompanyName:  data.CompanyName,
		Country:      data.Country,
		TradingRole:  string(data.TradingRole),
		Role:         string(data.Role),
		CreatedAt:    data.CreatedAt,
	}
}
