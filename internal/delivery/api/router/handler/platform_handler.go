package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"ogfinder/internal/delivery/api/response"
	"ogfinder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// PlatformHandlerParams holds dependencies for PlatformHandler, injected by Fx.
type PlatformHandlerParams struct {
	fx.In

	PlatformUC usecase.PlatformUsecase
}

// PlatformHandler serves liveness, statistics, market data and the sitemap.
type PlatformHandler struct {
	platformUC usecase.PlatformUsecase
	now        func() time.Time
}

// NewPlatformHandler is the constructor for PlatformHandler
func NewPlatformHandler(params PlatformHandlerParams) *PlatformHandler {
	return &PlatformHandler{
		platformUC: params.PlatformUC,
		now:        time.Now,
	}
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Root handles GET /.
func (h *PlatformHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Oil & Gas Finder API is running!",
	})
}

// Health handles GET /health. It does not touch the store.
func (h *PlatformHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": h.now().UTC(),
	})
}

// Status handles GET /api/status.
func (h *PlatformHandler) Status(c echo.Context) error {
	out := h.platformUC.Status(c.Request().Context())

	return response.Success(c, http.StatusOK, StatusResponse{
		Status:    out.Status,
		Timestamp: out.Timestamp,
		Database:  out.Database,
	})
}

// Stats handles GET /api/stats.
func (h *PlatformHandler) Stats(c echo.Context) error {
	stats, err := h.platformUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// MarketData handles GET /api/market-data.
func (h *PlatformHandler) MarketData(c echo.Context) error {
	snapshot, err := h.platformUC.MarketData(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// Sitemap handles GET /sitemap.xml.
func (h *PlatformHandler) Sitemap(c echo.Context) error {
	pages := h.platformUC.Sitemap()

	set := urlSet{XMLNS: sitemapNamespace, URLs: make([]sitemapURL, 0, len(pages))}
	for _, page := range pages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        page.Loc,
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}

	return c.XML(http.StatusOK, set)
}
