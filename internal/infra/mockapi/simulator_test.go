package mockapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func newSim(rate float64) *Simulator {
	s := New(Config{SuccessRate: rate}, quiet(), 1)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestCallShapes(t *testing.T) {
	s := newSim(1)
	ctx := context.Background()
	data := map[string]any{"name": "Router"}

	post, err := s.Call(ctx, "/hardware", "POST", data)
	require.NoError(t, err)
	assert.Equal(t, "Router", post["name"])
	assert.Contains(t, post, "id")
	assert.Equal(t, "2024-05-01T12:00:00Z", post["createdAt"])

	put, err := s.Call(ctx, "/hardware/1", "put", data)
	require.NoError(t, err)
	assert.Equal(t, "Router", put["name"])
	assert.Equal(t, "2024-05-01T12:00:00Z", put["updatedAt"])
	assert.NotContains(t, put, "id")

	del, err := s.Call(ctx, "/hardware/1", "DELETE", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"success": true, "message": "Item deleted successfully"}, del)

	get, err := s.Call(ctx, "/hardware/1", "GET", data)
	require.NoError(t, err)
	assert.Contains(t, get, "id")
	assert.Equal(t, "Router", get["name"])

	_, err = s.Call(ctx, "/hardware", "PATCH", nil)
	assert.ErrorIs(t, err, ErrUnsupportedMethod)

	// исходные данные не меняются
	assert.Equal(t, map[string]any{"name": "Router"}, data)
}

func TestPutWithoutData(t *testing.T) {
	resp, err := newSim(1).Call(context.Background(), "/x", "PUT", nil)
	require.NoError(t, err)
	assert.Contains(t, resp, "updatedAt")
}

func TestSimulatedFailure(t *testing.T) {
	_, err := newSim(0).Call(context.Background(), "/x", "GET", nil)
	assert.True(t, errors.Is(err, ErrSimulatedFailure))
}

func TestCancelInterruptsDelay(t *testing.T) {
	s := New(Config{BaseDelay: time.Hour, SuccessRate: 1}, quiet(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	_, err := s.Call(ctx, "/x", "GET", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestDelayWithinBounds(t *testing.T) {
	s := New(Config{BaseDelay: 100 * time.Millisecond, Jitter: 50 * time.Millisecond, SuccessRate: 1}, quiet(), 7)
	for i := 0; i < 100; i++ {
		d, ok := s.roll()
		assert.True(t, ok)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.Less(t, d, 150*time.Millisecond)
	}
}
