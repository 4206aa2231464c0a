package repository

import (
	"context"

	"ogfinder/internal/domain/entity"
)

// StatsRepository aggregates platform statistics from the stored users.
type StatsRepository interface {
	Aggregate(ctx context.Context) (*entity.PlatformStats, error)
}

// HealthChecker reports whether the persistence backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
