package sqlite

import (
	"context"
	"database/sql"
	"time"

	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/errors"
	"ogfinder/internal/infra/persistence/dberr"

	"github.com/google/uuid"
)

const userColumns = `id, email, password_hash, first_name, last_name, company_name, country, trading_role, role, created_at`

// UserRepository implements the credential store, stats and health ports on one *sql.DB.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository wraps an opened database. Call Init before first use.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var (
	_ repository.UserRepository  = (*UserRepository)(nil)
	_ repository.StatsRepository = (*UserRepository)(nil)
	_ repository.HealthChecker   = (*UserRepository)(nil)
)

// FindByID retrieves a single user by their unique ID.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id.String())

	user, err := scanUser(row)
	if err != nil {
		return nil, r.translateFind(err, "failed to find user by id")
	}

	return user, nil
}

// FindByEmail retrieves a single user by exact email match.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)

	user, err := scanUser(row)
	if err != nil {
		return nil, r.translateFind(err, "failed to find user by email")
	}

	return user, nil
}

// Create inserts a user. The UNIQUE index on email decides duplicates.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (`+userColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.ID.String(),
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.CompanyName,
		user.Country,
		string(user.TradingRole),
		string(user.Role),
		user.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already exists")
		}

		return dberr.Translate(err, "failed to create user", isBusy)
	}

	return nil
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, dberr.Translate(err, "failed to count users", isBusy)
	}

	return count, nil
}

// Aggregate computes platform statistics in one statement.
func (r *UserRepository) Aggregate(ctx context.Context) (*entity.PlatformStats, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT
	COUNT(*),
	COUNT(DISTINCT company_name),
	COUNT(DISTINCT country),
	COUNT(CASE WHEN trading_role IN ('buyer', 'both') THEN 1 END),
	COUNT(CASE WHEN trading_role IN ('seller', 'both') THEN 1 END)
FROM users`)

	stats := &entity.PlatformStats{}
	if err := row.Scan(&stats.TotalUsers, &stats.TotalCompanies, &stats.CountriesCovered, &stats.Buyers, &stats.Sellers); err != nil {
		return nil, dberr.Translate(err, "failed to aggregate platform stats", isBusy)
	}

	return stats, nil
}

// Ping checks the database handle.
func (r *UserRepository) Ping(ctx context.Context) error {
	return dberr.Translate(r.db.PingContext(ctx), "failed to ping sqlite", isBusy)
}

func (r *UserRepository) translateFind(err error, details string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrUserNotFound
	}

	return dberr.Translate(err, details, isBusy)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var (
		user        entity.User
		id          string
		tradingRole string
		role        string
		createdAt   string
	)

	if err := row.Scan(
		&id,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.CompanyName,
		&user.Country,
		&tradingRole,
		&role,
		&createdAt,
	); err != nil {
		return nil, errors.WithStack(err)
	}

	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "parse user id %q", id)
	}
	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, errors.Wrapf(err, "parse created_at %q", createdAt)
	}

	user.ID = parsedID
	user.TradingRole = entity.TradingRole(tradingRole)
	user.Role = entity.Role(role)
	user.CreatedAt = created

	return &user, nil
}
