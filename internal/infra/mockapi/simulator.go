// Package mockapi имитирует удалённый API: задержка, случайный сбой и
// ответ в форме, которую ждёт фронтенд.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Spok95/techvault/internal/infra/metrics"
)

var (
	ErrSimulatedFailure  = errors.New("mockapi: simulated upstream failure")
	ErrUnsupportedMethod = errors.New("mockapi: unsupported method")
)

type Config struct {
	BaseDelay   time.Duration
	Jitter      time.Duration
	SuccessRate float64
}

var DefaultConfig = Config{
	BaseDelay:   800 * time.Millisecond,
	Jitter:      500 * time.Millisecond,
	SuccessRate: 0.98,
}

type Simulator struct {
	cfg Config
	log *slog.Logger
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func New(cfg Config, log *slog.Logger, seed int64) *Simulator {
	if log == nil {
		log = slog.Default()
	}
	return &Simulator{
		cfg: cfg,
		log: log,
		now: time.Now,
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Call ждёт BaseDelay + rand*Jitter и отвечает:
// POST -> {id, ...data, createdAt}, PUT -> {...data, updatedAt},
// DELETE -> {success, message}, GET -> {id, ...data}.
// Отмена ctx прерывает ожидание.
func (s *Simulator) Call(ctx context.Context, endpoint, method string, data map[string]any) (map[string]any, error) {
	method = strings.ToUpper(method)
	s.log.Debug("mock api call", "method", method, "endpoint", endpoint, "data", data)

	var resp map[string]any
	switch method {
	case http.MethodPost:
		resp = map[string]any{"id": s.id()}
		maps.Copy(resp, data)
		resp["createdAt"] = s.now().UTC().Format(time.RFC3339Nano)
	case http.MethodPut:
		resp = maps.Clone(data)
		if resp == nil {
			resp = map[string]any{}
		}
		resp["updatedAt"] = s.now().UTC().Format(time.RFC3339Nano)
	case http.MethodDelete:
		resp = map[string]any{"success": true, "message": "Item deleted successfully"}
	case http.MethodGet:
		resp = map[string]any{"id": s.id()}
		maps.Copy(resp, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	delay, ok := s.roll()
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		metrics.MockCalls.WithLabelValues(method, "canceled").Inc()
		return nil, ctx.Err()
	case <-t.C:
	}

	if !ok {
		metrics.MockCalls.WithLabelValues(method, "failed").Inc()
		s.log.Warn("mock api simulated failure", "method", method, "endpoint", endpoint)
		return nil, ErrSimulatedFailure
	}
	metrics.MockCalls.WithLabelValues(method, "ok").Inc()
	return resp, nil
}

func (s *Simulator) id() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Int63n(1_000_000)
}

// roll выбирает задержку и исход вызова.
func (s *Simulator) roll() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delay := s.cfg.BaseDelay
	if s.cfg.Jitter > 0 {
		delay += time.Duration(s.rnd.Int63n(int64(s.cfg.Jitter)))
	}
	return delay, s.rnd.Float64() < s.cfg.SuccessRate
}
