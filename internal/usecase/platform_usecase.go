package usecase

import (
	"context"
	"time"

	"ogfinder/internal/domain/entity"
)

// StatusOutput reports service liveness together with the store connectivity.
type StatusOutput struct {
	Status    string
	Timestamp time.Time
	Database  string
}

// SitemapURL is one entry of the public sitemap.
type SitemapURL struct {
	Loc        string
	ChangeFreq string
	Priority   string
}

// PlatformUsecase serves the read-only platform endpoints.
type PlatformUsecase interface {
	Status(ctx context.Context) *StatusOutput
	Stats(ctx context.Context) (*entity.PlatformStats, error)
	MarketData(ctx context.Context) (*entity.MarketSnapshot, error)
	Sitemap() []SitemapURL
}
