package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/flightdesk/internal/application/handlers"
)

func TestWatchBoard_RefreshesImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	refresh := func() {
		if calls.Add(1) == 1 {
			cancel()
		}
	}

	err := watchBoard(ctx, "@every 1h", refresh, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatchBoard_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- watchBoard(ctx, "@every 1h", func() {}, zap.NewNop())
	}()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchBoard_InvalidSchedule(t *testing.T) {
	var calls atomic.Int32

	err := watchBoard(context.Background(), "every now and then", func() { calls.Add(1) }, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh schedule")
	assert.Zero(t, calls.Load())
}

func TestParseDirection(t *testing.T) {
	dir, err := parseDirection("arrivals")
	require.NoError(t, err)
	assert.Equal(t, handlers.Arrivals, dir)

	dir, err = parseDirection("departures")
	require.NoError(t, err)
	assert.Equal(t, handlers.Departures, dir)

	_, err = parseDirection("Arrivals")
	require.Error(t, err)
}
