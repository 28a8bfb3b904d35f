package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/dto"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/worker"

	"github.com/redis/go-redis/v9"
)

// InsightService is the read side of the advisor boundary: it serves the
// latest cached insight document and lets a screen request a refresh. The
// advisor itself is only ever called by the worker pool.
type InsightService interface {
	Latest(ctx context.Context, tenantID string) (*dto.InsightResponse, error)
	Refresh(ctx context.Context, tenantID string) error
}

type insightService struct {
	rdb        *redis.Client
	dispatcher *worker.Dispatcher
}

func NewInsightService(rdb *redis.Client, dispatcher *worker.Dispatcher) InsightService {
	return &insightService{rdb: rdb, dispatcher: dispatcher}
}

// Latest returns the cached insights, or the fixed fallback when nothing has
// been generated yet. It never errors toward the operator for advisor
// reasons — advisor failure is always recovered locally.
func (s *insightService) Latest(ctx context.Context, tenantID string) (*dto.InsightResponse, error) {
	raw, err := s.rdb.Get(ctx, worker.InsightCacheKey(tenantID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &dto.InsightResponse{Insights: []string{worker.FallbackInsight}, Fallback: true}, nil
		}
		return nil, err
	}
	var cached worker.CachedInsights
	if err := json.Unmarshal(raw, &cached); err != nil {
		return &dto.InsightResponse{Insights: []string{worker.FallbackInsight}, Fallback: true}, nil
	}
	return &dto.InsightResponse{Insights: cached.Insights, Fallback: cached.Fallback}, nil
}

func (s *insightService) Refresh(ctx context.Context, tenantID string) error {
	return s.dispatcher.EnqueueInsight(ctx, worker.InsightJobPayload{TenantID: tenantID})
}
