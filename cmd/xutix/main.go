package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"xutix/internal/admin"
	"xutix/internal/checkout"
	"xutix/internal/config"
	"xutix/internal/database"
	"xutix/internal/handler"
	"xutix/internal/pricing"
	"xutix/internal/queue"
	"xutix/internal/session"
	"xutix/internal/store"
	"xutix/internal/worker"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sessions and intake queue
	var (
		blobs  store.Store = store.NewMemoryStore()
		intake queue.Queue = queue.NewMemoryQueue()
	)
	if cfg.RedisAddress != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.RedisAddress, "error", err)
			os.Exit(1)
		}
		blobs = store.NewRedisStore(rdb, "xutix:", cfg.SessionTTL)
		intake = queue.NewRedisQueue(rdb, queue.DefaultKey)
		slog.Info("using redis for sessions", "addr", cfg.RedisAddress)
	}

	// Admin orders
	var repo admin.Repository
	if cfg.DatabaseURI != "" {
		db, err := database.NewDB(ctx, cfg.DatabaseURI)
		if err != nil {
			slog.Error("failed to connect to DB", "error", err)
			os.Exit(1)
		}
		defer database.CloseDB(db)

		if err := database.InitSchema(ctx, db); err != nil {
			slog.Error("failed to init DB schema", "error", err)
			os.Exit(1)
		}
		repo = admin.NewPostgresRepository(db)
	} else {
		var seed []admin.Order
		if cfg.SeedDemoOrders {
			seed = admin.DemoOrders()
		}
		repo = admin.NewMemoryRepository(seed...)
	}
	adminSvc := admin.NewService(repo)

	shop := &handler.Shop{
		Calc:      pricing.NewCalculator(nil),
		Sessions:  session.NewManager(blobs),
		Assembler: checkout.NewAssembler(),
		Links:     cfg.Links(),
		Intake:    intake,
	}

	// Worker
	intakeWorker := worker.NewIntakeWorker(intake, adminSvc, cfg.IntakeInterval)

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      handler.NewRouter(shop, adminSvc, handler.SessionConfig{Secret: cfg.SessionSecret, TTL: cfg.SessionTTL}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go intakeWorker.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop worker
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
