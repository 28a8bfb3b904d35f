package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/config"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/infra"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/router"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connectivity watcher gates admin writes and feeds the health endpoint.
	net := infra.NewConnectivityWatcher(cfg.ConnectivityProbeAddr, time.Duration(cfg.ConnectivityProbeInterval)*time.Second)
	net.Start(ctx)

	// Advisor breaker is shared between the worker and the health endpoint
	// so the state reported is the state the worker actually runs under.
	advisorCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())

	// Start goroutine worker pool for async tasks (insight refresh, email).
	// Worker handlers are wired here (composition root) so that the pool
	// has full access to all infrastructure dependencies.
	advisorTimeout := time.Duration(cfg.AdvisorTimeoutSeconds) * time.Second
	advisor := infra.NewAdvisorClient(cfg.AdvisorURL, advisorTimeout)
	mailer := infra.NewMailer(cfg)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	workerHandlers := &worker.WorkerHandlers{
		Insight: worker.NewInsightWorker(advisor, advisorCB, orderRepo, productRepo, rdb, advisorTimeout),
		Email:   worker.NewEmailWorker(mailer),
	}
	worker.StartWorkerPool(ctx, rdb, workerHandlers, cfg.WorkerPoolSize)

	r := router.New(cfg, db, rdb, net, advisorCB)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("ByteWave backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
