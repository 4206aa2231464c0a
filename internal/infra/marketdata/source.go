// Package marketdata serves the benchmark price snapshot, either built in or
// read from a blob bucket that an external job refreshes.
package marketdata

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ogfinder/config"
	"ogfinder/internal/domain/entity"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/domain/service"
	"ogfinder/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultKey = "market-data.json"

type staticSource struct {
	now func() time.Time
}

// NewStaticSource serves DefaultSnapshot stamped with the request time.
func NewStaticSource() service.MarketDataSource {
	return &staticSource{now: time.Now}
}

func (s *staticSource) Snapshot(context.Context) (*entity.MarketSnapshot, error) {
	return DefaultSnapshot(s.now()), nil
}

type bucketSource struct {
	bucket   *blob.Bucket
	key      string
	fallback service.MarketDataSource
	logger   *slog.Logger
}

// NewBucketSource reads key from bucket on every call. A missing object falls
// back to the built-in snapshot.
func NewBucketSource(bucket *blob.Bucket, key string, logger *slog.Logger) service.MarketDataSource {
	if key == "" {
		key = defaultKey
	}

	return &bucketSource{
		bucket:   bucket,
		key:      key,
		fallback: NewStaticSource(),
		logger:   logger,
	}
}

func (s *bucketSource) Snapshot(ctx context.Context) (*entity.MarketSnapshot, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		s.logger.Warn("Market data object missing, serving built-in snapshot", slog.String("key", s.key))

		return s.fallback.Snapshot(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrMarketDataUnavailable.WithCause(err), "read market data object")
	}

	var snapshot entity.MarketSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.Wrap(domainerrors.ErrMarketDataUnavailable.WithCause(err), "decode market data object")
	}

	if snapshot.UpdatedAt.IsZero() {
		attrs, err := s.bucket.Attributes(ctx, s.key)
		if err == nil {
			snapshot.UpdatedAt = attrs.ModTime.UTC()
		}
	}

	return &snapshot, nil
}

// SourceParams holds dependencies for the market data source, injected by Fx.
type SourceParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewSource picks the bucket source when marketData.bucketUrl is set.
func NewSource(params SourceParams) (service.MarketDataSource, error) {
	cfg := params.Config.MarketData
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Market data bucket not configured, serving built-in snapshot")

		return NewStaticSource(), nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open market data bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Serving market data from bucket",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("key", cfg.Key),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketSource(bucket, cfg.Key, params.Logger), nil
}
