package marketdata

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"ogfinder/config"
	domainerrors "ogfinder/internal/domain/errors"
	"ogfinder/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticSource(t *testing.T) {
	snapshot, err := NewStaticSource().Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "USD/bbl", snapshot.CrudeOil.WTI.Unit)
	assert.Contains(t, snapshot.Hubs, "Cushing, Oklahoma")
	assert.WithinDuration(t, time.Now(), snapshot.UpdatedAt, time.Minute)

	body, err := json.Marshal(snapshot)
	require.NoError(t, err)
	for _, key := range []string{`"crude_oil"`, `"natural_gas"`, `"refined_products"`, `"henry_hub"`, `"jet_fuel"`, `"hubs"`} {
		assert.Contains(t, string(body), key)
	}
}

func TestBucketSource(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	source := NewBucketSource(bucket, "", newDiscardLogger())

	t.Run("missing object falls back", func(t *testing.T) {
		snapshot, err := source.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, DefaultSnapshot(time.Now()).CrudeOil, snapshot.CrudeOil)
	})

	t.Run("stored object wins", func(t *testing.T) {
		stored := DefaultSnapshot(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))
		stored.CrudeOil.WTI.Price = 91.5
		stored.Hubs = []string{"Cushing, Oklahoma"}
		data, err := json.Marshal(stored)
		require.NoError(t, err)
		require.NoError(t, bucket.WriteAll(ctx, defaultKey, data, nil))

		snapshot, err := source.Snapshot(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 91.5, snapshot.CrudeOil.WTI.Price, 1e-9)
		assert.Equal(t, []string{"Cushing, Oklahoma"}, snapshot.Hubs)
		assert.True(t, stored.UpdatedAt.Equal(snapshot.UpdatedAt))
	})

	t.Run("corrupt object is an error", func(t *testing.T) {
		require.NoError(t, bucket.WriteAll(ctx, defaultKey, []byte("{not json"), nil))

		_, err := source.Snapshot(ctx)
		assert.True(t, errors.Is(err, domainerrors.ErrMarketDataUnavailable))
	})
}

func TestNewSource(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		source, err := NewSource(SourceParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &staticSource{}, source)
	})

	t.Run("file bucket", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		source, err := NewSource(SourceParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{MarketData: &config.MarketDataConfig{BucketURL: "file://" + t.TempDir(), Key: "prices.json"}},
			Logger: newDiscardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &bucketSource{}, source)

		lc.RequireStart().RequireStop()
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := NewSource(SourceParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{MarketData: &config.MarketDataConfig{BucketURL: "ftp://prices"}},
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	})
}
