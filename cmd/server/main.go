package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"pmdash/internal/config"
	"pmdash/internal/handler"
	"pmdash/internal/httpserver"
	"pmdash/internal/kv"
	"pmdash/internal/store"
	"pmdash/pkg/logger"
	"pmdash/pkg/mq"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting pmdash server...",
		zap.String("kv_driver", cfg.KV.Driver),
		zap.String("port", cfg.Server.Port),
	)

	ctx := context.Background()

	kvs, err := openKV(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to open kv store", zap.Error(err))
	}
	defer kvs.Close()

	opts := []store.Option{}

	// 변경 이벤트 발행은 선택 사항. MQ 주소가 없으면 끈다.
	var publisher *mq.Publisher
	if cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL)
		if err != nil {
			log.Fatal("Failed to init publisher", zap.Error(err))
		}
		defer publisher.Close()
		opts = append(opts, store.WithPublisher(publisher))
		log.Info("Change event publisher connected")
	}

	st, err := store.Open(ctx, kvs, log, opts...)
	if err != nil {
		log.Fatal("Failed to bootstrap store", zap.Error(err))
	}

	router := httpserver.NewRouter(httpserver.Handlers{
		Project:     handler.NewProjectHandler(st, log),
		Milestone:   handler.NewMilestoneHandler(st, log),
		Deliverable: handler.NewDeliverableHandler(st, log),
		Task:        handler.NewTaskHandler(st, log),
		Member:      handler.NewMemberHandler(st, log),
		Dashboard:   handler.NewDashboardHandler(st, log),
	}, log, kvs)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	log.Info("pmdash is fully initialized and running")

	// 종료 시그널 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	log.Info("pmdash shutdown complete")
}

func openKV(ctx context.Context, cfg *config.Config, log *zap.Logger) (kv.Store, error) {
	switch cfg.KV.Driver {
	case "redis":
		return kv.NewRedis(ctx, cfg.KV.Redis)
	case "postgres":
		return kv.NewPostgres(ctx, cfg.KV.Postgres, log)
	default:
		log.Info("Using in-memory kv store; data will not survive restarts")
		return kv.NewMemory(), nil
	}
}
