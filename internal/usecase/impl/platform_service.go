package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ogfinder/config"
	deliverycontext "ogfinder/internal/delivery/context"
	"ogfinder/internal/domain/constants"
	"ogfinder/internal/domain/entity"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/domain/service"
	"ogfinder/internal/usecase"

	"go.uber.org/fx"
)

const statusMessage = "Oil & Gas Finder API is running"

// Public pages listed in sitemap.xml, relative to http.baseUrl.
var sitemapPages = []usecase.SitemapURL{
	{Loc: "/", ChangeFreq: "daily", Priority: "1.0"},
	{Loc: "/browse", ChangeFreq: "daily", Priority: "0.9"},
	{Loc: "/premium", ChangeFreq: "weekly", Priority: "0.8"},
	{Loc: "/register", ChangeFreq: "monthly", Priority: "0.7"},
	{Loc: "/login", ChangeFreq: "monthly", Priority: "0.5"},
}

type platformService struct {
	statsRepo   repository.StatsRepository
	health      repository.HealthChecker
	market      service.MarketDataSource
	baseURL     string
	pingTimeout time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// PlatformServiceParams holds dependencies for PlatformService, injected by Fx.
type PlatformServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Health    repository.HealthChecker
	Market    service.MarketDataSource
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPlatformService is the constructor for platformService.
func NewPlatformService(params PlatformServiceParams) usecase.PlatformUsecase {
	return &platformService{
		statsRepo:   params.StatsRepo,
		health:      params.Health,
		market:      params.Market,
		baseURL:     strings.TrimRight(params.Config.HTTP.BaseURL, "/"),
		pingTimeout: params.Config.Store.PingTimeout,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *platformService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Status never fails; an unreachable store is reported as disconnected.
func (srv *platformService) Status(ctx context.Context) *usecase.StatusOutput {
	pingCtx := ctx
	if srv.pingTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, srv.pingTimeout)
		defer cancel()
	}

	database := constants.DatabaseConnected
	if err := srv.health.Ping(pingCtx); err != nil {
		srv.log(ctx).Warn("Store ping failed", slog.Any("error", err))
		database = constants.DatabaseDisconnected
	}

	return &usecase.StatusOutput{
		Status:    statusMessage,
		Timestamp: srv.now().UTC(),
		Database:  database,
	}
}

func (srv *platformService) Stats(ctx context.Context) (*entity.PlatformStats, error) {
	stats, err := srv.statsRepo.Aggregate(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to aggregate platform stats", slog.Any("error", err))

		return nil, asAppError(err, "failed to aggregate platform stats")
	}

	return stats, nil
}

func (srv *platformService) MarketData(ctx context.Context) (*entity.MarketSnapshot, error) {
	snapshot, err := srv.market.Snapshot(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load market data", slog.Any("error", err))

		return nil, asAppError(err, "failed to load market data")
	}

	return snapshot, nil
}

func (srv *platformService) Sitemap() []usecase.SitemapURL {
	urls := make([]usecase.SitemapURL, 0, len(sitemapPages))
	for _, page := range sitemapPages {
		page.Loc = srv.baseURL + page.Loc
		urls = append(urls, page)
	}

	return urls
}
