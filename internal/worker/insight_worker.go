package worker

// insight_worker.go
// Processes insight-refresh jobs from QueueInsight: snapshots the tenant's
// order history and inventory, asks the Insight Advisor sidecar for its three
// narrative insights, and caches the result. Exactly one attempt per
// triggering data change — every failure path caches the fixed fallback
// message instead of retrying.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/infra"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// FallbackInsight is served whenever the advisor is unreachable, times out,
// or returns garbage.
const FallbackInsight = "Smart analysis is currently unavailable. Check your internet connection."

// insightCacheTTL bounds staleness if no sale ever triggers a refresh again.
const insightCacheTTL = 24 * time.Hour

// snapshotLimit caps how much history is shipped to the advisor.
const snapshotLimit = 50

// InsightCacheKey is the Redis key holding the latest insight payload for a
// tenant.
func InsightCacheKey(tenantID string) string { return "insights_" + tenantID }

// CachedInsights is the JSON document stored under InsightCacheKey.
type CachedInsights struct {
	Insights    []string `json:"insights"`
	Fallback    bool     `json:"fallback"`
	GeneratedAt string   `json:"generated_at"`
}

// InsightJobPayload is the job envelope sent to QueueInsight.
type InsightJobPayload struct {
	TenantID string `json:"tenant_id"`
}

// InsightWorker is the async boundary to the external advisor.
type InsightWorker struct {
	advisor  *infra.AdvisorClient
	breaker  *infra.CircuitBreaker
	orders   repository.OrderRepository
	products repository.ProductRepository
	rdb      *redis.Client
	timeout  time.Duration
}

func NewInsightWorker(
	advisor *infra.AdvisorClient,
	breaker *infra.CircuitBreaker,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	rdb *redis.Client,
	timeout time.Duration,
) *InsightWorker {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &InsightWorker{
		advisor:  advisor,
		breaker:  breaker,
		orders:   orders,
		products: products,
		rdb:      rdb,
		timeout:  timeout,
	}
}

// Process runs one advisor attempt for the payload's tenant.
func (w *InsightWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload InsightJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("insight_worker: invalid payload")
		return
	}
	if payload.TenantID == "" {
		log.Warn().Msg("insight_worker: empty tenant_id — skipping")
		return
	}

	snap, err := w.buildSnapshot(ctx, payload.TenantID)
	if err != nil {
		log.Error().Err(err).Str("tenant_id", payload.TenantID).Msg("insight_worker: snapshot failed")
		w.cache(ctx, payload.TenantID, []string{FallbackInsight}, true)
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	var insights []string
	err = w.breaker.Execute(func() error {
		var callErr error
		insights, callErr = w.advisor.Analyze(callCtx, *snap)
		return callErr
	})
	if err != nil || len(insights) == 0 {
		log.Warn().Err(err).Str("tenant_id", payload.TenantID).Msg("insight_worker: advisor unavailable — caching fallback")
		w.cache(ctx, payload.TenantID, []string{FallbackInsight}, true)
		return
	}

	w.cache(ctx, payload.TenantID, insights, false)
	log.Info().Str("tenant_id", payload.TenantID).Int("insights", len(insights)).Msg("insight_worker: insights refreshed")
}

func (w *InsightWorker) buildSnapshot(ctx context.Context, tenantID string) (*infra.AdvisorSnapshot, error) {
	orders, _, err := w.orders.List(ctx, tenantID, repository.OrderFilter{Page: 1, Limit: snapshotLimit})
	if err != nil {
		return nil, err
	}
	products, err := w.products.List(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	snap := &infra.AdvisorSnapshot{TenantID: tenantID}
	for _, o := range orders {
		snap.Orders = append(snap.Orders, map[string]interface{}{
			"total":      o.Total,
			"tax":        o.Tax,
			"items":      len(o.Items),
			"payment":    o.PaymentMethod,
			"created_at": o.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	for _, p := range products {
		snap.Inventory = append(snap.Inventory, map[string]interface{}{
			"name":     p.Name,
			"category": p.Category,
			"price":    p.Price,
			"stock":    p.Stock,
		})
	}
	return snap, nil
}

func (w *InsightWorker) cache(ctx context.Context, tenantID string, insights []string, fallback bool) {
	doc := CachedInsights{
		Insights:    insights,
		Fallback:    fallback,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := w.rdb.Set(ctx, InsightCacheKey(tenantID), data, insightCacheTTL).Err(); err != nil {
		log.Error().Err(err).Str("tenant_id", tenantID).Msg("insight_worker: cache write failed")
	}
}
