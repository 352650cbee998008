package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	catalogapp "github.com/plaudstore/backend/internal/application/catalog"
	orderingapp "github.com/plaudstore/backend/internal/application/ordering"
	"github.com/plaudstore/backend/internal/infrastructure/config"
	"github.com/plaudstore/backend/internal/infrastructure/logger"
	"github.com/plaudstore/backend/internal/infrastructure/persistence"
	"github.com/plaudstore/backend/internal/interfaces/http/handler"
	"github.com/plaudstore/backend/internal/interfaces/http/middleware"
	"github.com/plaudstore/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; deployments usually set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	// A missing or unreachable datastore never stops the server: the catalog
	// keeps serving and order submissions answer a configuration error.
	var db *persistence.Database
	if cfg.Datastore.Configured() {
		db, err = persistence.NewDatabase(&cfg.Datastore, log, cfg.Log.Level)
		if err != nil {
			log.Error("failed to connect to datastore", zap.Error(err))
			db = nil
		}
	} else {
		log.Warn("datastore not configured, order submissions will fail")
	}

	var orderService *orderingapp.OrderService
	if db != nil {
		orderService = orderingapp.NewOrderService(
			persistence.NewGormCustomerRepository(db.DB),
			persistence.NewGormOrderRepository(db.DB),
			log,
		)
	} else {
		orderService = orderingapp.NewOrderService(nil, nil, log)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS())
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodyBytes))

	router.Setup(engine, router.Handlers{
		Order:   handler.NewOrderHandler(orderService),
		Catalog: handler.NewCatalogHandler(catalogapp.NewCatalogService()),
		System:  handler.NewSystemHandler(db),
	})

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.App.Port),
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}

	if db != nil {
		if err := db.Close(); err != nil {
			log.Error("failed to close datastore", zap.Error(err))
		}
	}

	log.Info("server stopped")
}
