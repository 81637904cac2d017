package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skycourier/backoffice/internal/api"
	"github.com/skycourier/backoffice/internal/core/service"
	"github.com/skycourier/backoffice/internal/infrastructure/config"
	"github.com/skycourier/backoffice/internal/infrastructure/db/mongo"
	"github.com/skycourier/backoffice/internal/infrastructure/db/redis"
	"github.com/skycourier/backoffice/internal/infrastructure/queue"
	"github.com/skycourier/backoffice/pkg/logger"
)

// @title          SkyCourier Back-Office API
// @version        1.0
// @description    Shipment lifecycle engine for on-board-courier and next-flight-out operations.
// @BasePath       /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Repositories ---
	shipmentRepo := mongo.NewShipmentRepository(db)
	quoteRepo := mongo.NewQuoteRepository(db)
	historyRepo := mongo.NewHistoryRepository(db)
	taskRepo := mongo.NewTaskRepository(db)
	sequenceRepo := mongo.NewSequenceRepository(db)
	referenceRepo := mongo.NewReferenceRepository(db)
	auditRepo := mongo.NewAuditRepository(db)
	authRepo := mongo.NewAuthRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"shipments":      shipmentRepo.EnsureIndexes,
		"status_history": historyRepo.EnsureIndexes,
		"auth_users":     authRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// --- Async audit writer ---
	auditWriter := queue.NewAuditWriter(cfg.AuditWorkers, auditRepo, log)
	auditWriter.Start(ctx)

	// --- Services ---
	guard := redis.NewOperationGuard(rdb, cfg.IdempotencyTTL)
	lifecycle := service.NewLifecycleService(service.LifecycleDeps{
		Shipments:        shipmentRepo,
		Sequences:        sequenceRepo,
		History:          historyRepo,
		Tasks:            taskRepo,
		Refs:             referenceRepo,
		Audit:            auditWriter,
		Guard:            guard,
		WarningThreshold: cfg.SLAWarningThreshold,
		Log:              log,
	})
	conversion := service.NewConversionService(service.ConversionDeps{
		Quotes:           quoteRepo,
		Shipments:        shipmentRepo,
		Sequences:        sequenceRepo,
		History:          historyRepo,
		Tasks:            taskRepo,
		Audit:            auditWriter,
		WarningThreshold: cfg.SLAWarningThreshold,
		Log:              log,
	})
	auth := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)

	// --- HTTP server ---
	e := api.NewRouter(api.RouterDeps{
		Lifecycle:  lifecycle,
		Conversion: conversion,
		Auth:       auth,
		Mongo:      db,
		Redis:      rdb,
		JWTSecret:  cfg.JWTSecret,
		Log:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("back-office api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
