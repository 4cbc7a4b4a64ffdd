package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	catalogapp "github.com/clientes/backend/internal/application/catalog"
	customerapp "github.com/clientes/backend/internal/application/customer"
	"github.com/clientes/backend/internal/infrastructure/config"
	"github.com/clientes/backend/internal/infrastructure/cpf"
	"github.com/clientes/backend/internal/infrastructure/logger"
	"github.com/clientes/backend/internal/infrastructure/migration"
	"github.com/clientes/backend/internal/infrastructure/persistence"
	"github.com/clientes/backend/internal/infrastructure/telemetry"
	"github.com/clientes/backend/internal/interfaces/http/handler"
	"github.com/clientes/backend/internal/interfaces/http/middleware"
	"github.com/clientes/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/clientes/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const version = "1.0.0"

//	@title			Clientes API
//	@version		1.0
//	@description	Customer registry with addresses, products and services

//	@host		localhost:8080
//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx := context.Background()
	telemetryCfg := telemetry.ConfigFrom(cfg.Telemetry, version)

	// The OTLP log bridge must exist before the logger so it can be teed in
	lp, err := telemetry.NewLoggerProvider(ctx, telemetryCfg)
	if err != nil {
		panic("Failed to initialize log exporter: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cfg.Log.Output,
		Service: cfg.App.Name,
	}, lp.Core(logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting Clientes API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	tp, err := telemetry.NewTracerProvider(ctx, telemetryCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	mp, err := telemetry.NewMeterProvider(ctx, telemetryCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	meter := mp.Meter(cfg.Telemetry.ServiceName)

	var gormOpts []logger.GormOption
	if cfg.App.Env == "development" && cfg.Database.LogLevel == "debug" {
		gormOpts = append(gormOpts, logger.WithQueryValues())
	}
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Database.LogLevel), cfg.Database.SlowThreshold, gormOpts...)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.RegisterDBTracing(db.DB, cfg.Database.Driver, log); err != nil {
			log.Fatal("Failed to enable database tracing", zap.Error(err))
		}
	}

	if cfg.Migration.Auto {
		if err := migration.EnsureSchema(db, log); err != nil {
			log.Fatal("Failed to migrate schema", zap.Error(err))
		}
	}

	cpfValidator, err := cpf.New(cfg.CPF, log)
	if err != nil {
		log.Fatal("Failed to create CPF validator", zap.Error(err))
	}
	customerMetrics, err := telemetry.NewCustomerMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create customer metrics", zap.Error(err))
	}

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)

	// Application services
	customerService := customerapp.NewCustomerService(customerRepo, cpfValidator,
		customerapp.WithMetrics(customerMetrics))
	addressService := customerapp.NewAddressService(addressRepo, customerRepo)
	productService := catalogapp.NewProductService(productRepo)
	serviceService := catalogapp.NewServiceService(serviceRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.HTTPMetrics(meter))
	engine.Use(middleware.Secure())
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsCfg))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	router.RegisterHealth(engine, handler.NewHealthHandler(db, version))

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	handlers := router.Handlers{
		Customer: handler.NewCustomerHandler(customerService),
		Address:  handler.NewAddressHandler(addressService),
		Product:  handler.NewProductHandler(productService),
		Service:  handler.NewServiceHandler(serviceService),
	}
	router.NewRouter(engine).Register(handlers.Groups()...).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := telemetry.ShutdownAll(shutdownCtx, lp, tp, mp); err != nil {
		log.Error("Telemetry shutdown failed", zap.Error(err))
	}
	log.Info("Server exited gracefully")
}
