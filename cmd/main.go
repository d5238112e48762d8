package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "vsdcgateway/docs"
	"vsdcgateway/internal/caching"
	"vsdcgateway/internal/common"
	"vsdcgateway/internal/config"
	"vsdcgateway/internal/handlers"
	"vsdcgateway/internal/jobs/background"
	"vsdcgateway/internal/middleware"
	"vsdcgateway/internal/repositories"
	"vsdcgateway/internal/services"
	"vsdcgateway/internal/vsdc"
	"vsdcgateway/pkg/database"
	"vsdcgateway/pkg/logger"
)

const (
	version         = "1.0.4"
	specVersion     = "v1.0.4"
	shutdownTimeout = 15 * time.Second
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "vsdc-gateway")
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("failed to apply schema", zap.Error(err))
	}

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, log)

	var archive services.ReceiptArchive
	if cfg.Minio.Endpoint != "" {
		archive, err = services.NewMinioArchive(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
		if err != nil {
			log.Fatal("failed to initialize MinIO", zap.Error(err))
		}
		if err := archive.EnsureBucketExists(ctx); err != nil {
			log.Warn("receipt bucket unavailable, receipts will not be archived until it is reachable",
				zap.String("bucket", cfg.Minio.Bucket), zap.Error(err))
		}
	}

	verifier, err := middleware.NewTokenVerifier(cfg.Firebase.ProjectID, cfg.Firebase.JWKSURL, log)
	if err != nil {
		log.Fatal("failed to load identity provider keys", zap.Error(err))
	}
	defer verifier.Close()

	// Repositories
	docRepo := repositories.NewDocumentRepo(pool)
	itemRepo := repositories.NewItemRepo(pool)
	salesRepo := repositories.NewSalesRepo(pool)
	stockRepo := repositories.NewStockRepo(pool)
	initRepo := repositories.NewInitializationRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Services
	codes := vsdc.NewCodeDefinitions()
	ebm := services.NewEBMClient(cfg.EBMBaseURL(), cfg.EBM.Token, cfg.EBM.Timeout, log)
	generator := vsdc.NewItemCodeGenerator(nil, cfg.ItemCodeStrict)
	itemSvc := services.NewItemService(itemRepo, cacheSvc, ebm, generator, cfg.RateLimit.ItemCodesPerMinute, log)
	salesSvc := services.NewSalesService(salesRepo, codes, archive, log)
	stockSvc := services.NewStockService(stockRepo, codes, log)
	initSvc := services.NewInitializationService(initRepo)
	lookupSvc := services.NewLookupService(codes)

	checks := map[string]handlers.Pinger{
		"database": docRepo,
		"redis":    cacheSvc,
	}
	if archive != nil {
		checks["storage"] = archive
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = common.HTTPErrorHandler

	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoMiddleware.BodyLimit("10M"))
	e.Use(middleware.VersionHeader(version, specVersion))

	auth := middleware.Auth(verifier, log)
	audit := middleware.NewAuditMiddleware(auditRepo, log).AuditRequest()
	protected := func(next echo.HandlerFunc) echo.HandlerFunc { return auth(audit(next)) }

	handlers.RegisterRoutes(e, protected, handlers.Handlers{
		Health:         handlers.NewHealthHandlers(cfg.Environment, cfg.EBMBaseURL(), cfg.RequestFormURL(), checks),
		Lookup:         handlers.NewLookupHandlers(lookupSvc),
		Initialization: handlers.NewInitializationHandlers(initSvc, log),
		Items:          handlers.NewItemHandlers(itemSvc, log),
		Sales:          handlers.NewSalesHandlers(salesSvc, log),
		Stock:          handlers.NewStockHandlers(stockSvc, log),
	})

	scheduler, err := background.NewJobScheduler(itemSvc, background.SyncOptions{
		Interval:    cfg.Sync.Interval,
		MaxAttempts: cfg.Sync.MaxAttempts,
		BatchSize:   cfg.Sync.BatchSize,
	}, log)
	if err != nil {
		log.Fatal("failed to create job scheduler", zap.Error(err))
	}
	scheduler.Start()

	go func() {
		log.Info("VSDC gateway starting",
			zap.String("version", version),
			zap.String("port", cfg.Port),
			zap.String("environment", cfg.Environment),
			zap.String("ebm_api_url", cfg.EBMBaseURL()),
		)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := scheduler.Stop(); err != nil {
		log.Error("failed to stop job scheduler", zap.Error(err))
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}
}
