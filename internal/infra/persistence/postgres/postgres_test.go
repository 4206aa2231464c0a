package postgres

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestMigrateWhenReachable_RunsAfterFirstSuccessfulPing(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var pings, migrations atomic.Int32
	ping := func(context.Context) error {
		if pings.Add(1) < 3 {
			return errors.New("connection refused")
		}

		return nil
	}
	migrateUp := func() error {
		migrations.Add(1)

		return nil
	}

	done := make(chan struct{})
	go func() {
		migrateWhenReachable(context.Background(), logger, ping, migrateUp, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("migrations never ran")
	}

	assert.Equal(t, int32(3), pings.Load())
	assert.Equal(t, int32(1), migrations.Load())
}

func TestMigrateWhenReachable_RetriesFailedMigration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var migrations atomic.Int32
	migrateUp := func() error {
		if migrations.Add(1) == 1 {
			return errors.New("lock timeout")
		}

		return nil
	}

	done := make(chan struct{})
	go func() {
		migrateWhenReachable(context.Background(), logger, func(context.Context) error { return nil }, migrateUp, time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("migrations never succeeded")
	}

	assert.Equal(t, int32(2), migrations.Load())
}

func TestMigrateWhenReachable_StopsOnShutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())

	var migrations atomic.Int32
	ping := func(context.Context) error { return errors.New("connection refused") }
	migrateUp := func() error {
		migrations.Add(1)

		return nil
	}

	done := make(chan struct{})
	go func() {
		migrateWhenReachable(ctx, logger, ping, migrateUp, time.Millisecond)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("retry loop did not stop")
	}

	assert.Zero(t, migrations.Load())
}
