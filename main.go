package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"news-pipeline/config"
	"news-pipeline/di"
	"news-pipeline/driver/news_db"
	"news-pipeline/driver/payload_cache"
	"news-pipeline/job"
	"news-pipeline/rest"
	"news-pipeline/utils/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Init().Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	log := logger.InitWithWriter(os.Stdout, cfg.Server.LogLevel)
	log.Info("Starting news pipeline", "port", cfg.Server.Port)

	pool, err := news_db.InitDBConnectionPool(ctx, cfg.Database.ConnectionString())
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	cache, err := payload_cache.NewPayloadCacheWithURL(cfg.Redis.URL, cfg.Redis.KeyPrefix, cfg.Redis.LocalEntries)
	if err != nil {
		log.Error("Failed to configure payload cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	container := di.NewApplicationComponents(cfg, pool, cache)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	rest.RegisterRoutes(e, container, cfg)

	scheduler := job.NewJobScheduler()
	if cfg.Ingest.SchedulerEnabled {
		scheduler.Add(job.IngestJob(container.IngestArticlesUsecase, cfg.Ingest.Interval, cfg.Ingest.Timeout))
		log.Info("Ingest scheduler enabled", "interval", cfg.Ingest.Interval.String())
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		address := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		scheduler.Start(gCtx)
		<-gCtx.Done()
		scheduler.Shutdown()
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Shutdown error", "error", err)
		os.Exit(1)
	}
	log.Info("Server exited properly")
}
