package service

import (
	"context"

	"ogfinder/internal/domain/entity"
)

// MarketDataSource supplies the benchmark price snapshot.
type MarketDataSource interface {
	Snapshot(ctx context.Context) (*entity.MarketSnapshot, error)
}
