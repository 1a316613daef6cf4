package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Gunvolt24/oppify/config"
	"github.com/Gunvolt24/oppify/internal/kafka"
	"github.com/Gunvolt24/oppify/internal/ports"
	"github.com/Gunvolt24/oppify/internal/repo/postgres"
	rest "github.com/Gunvolt24/oppify/internal/transport/http"
	"github.com/Gunvolt24/oppify/internal/usecase"
	"github.com/Gunvolt24/oppify/pkg/auth"
	"github.com/Gunvolt24/oppify/pkg/logger"
	"github.com/Gunvolt24/oppify/pkg/metrics"
	"github.com/Gunvolt24/oppify/pkg/telemetry"
	"github.com/Gunvolt24/oppify/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP API
	MetricsServer   *http.Server          // отдельный /metrics; nil — не запускается
	KafkaConsumer   ports.MessageConsumer // ingest возможностей
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newTrustPolicy — политика доверенных источников из конфигурации.
func newTrustPolicy(cfg config.Trust) (*validate.OpportunityValidator, error) {
	policy, err := validate.NewPolicy(validate.TrustConfig{
		Kind:      validate.PolicyKind(cfg.Policy),
		Mapping:   cfg.Mapping,
		AllowList: cfg.AllowList,
	})
	if err != nil {
		return nil, err
	}
	return validate.NewOpportunityValidator(policy), nil
}

// setupTracing — при выключенном трейсинге возвращает no-op; ошибка включённого трейсинга фатальна.
func setupTracing(ctx context.Context, cfg config.Tracing, logg ports.Logger) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}
	shutdown, err := telemetry.SetupTracing(ctx, cfg.ServiceName, cfg.Endpoint, cfg.SampleRatio)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}
	logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
		cfg.ServiceName, cfg.Endpoint, cfg.SampleRatio)
	return shutdown, nil
}

// newMetricsServer — nil, если отдельный адрес не задан или совпадает с адресом API.
func newMetricsServer(cfg *config.Config) *http.Server {
	addr := strings.TrimSpace(cfg.Metrics.Addr)
	if addr == "" || addr == cfg.HTTP.Addr {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	// fail — закрывает логгер при ошибке сборки.
	fail := func(err error) (*App, Cleanup, error) {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Политика и токены проверяются до подключения к БД: ошибка конфигурации фатальна.
	validator, err := newTrustPolicy(cfg.Trust)
	if err != nil {
		return fail(err)
	}
	tokens, err := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	if err != nil {
		return fail(err)
	}

	metrics.MustRegister()

	if cfg.Postgres.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
			return fail(err)
		}
		logg.Infof(ctx, "database schema is up to date")
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		return fail(err)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace, err := setupTracing(ctx, cfg.Tracing, logg)
	if err != nil {
		pool.Close()
		return fail(err)
	}

	// Доменный слой.
	opportunityService := usecase.NewOpportunityService(
		postgres.NewOpportunityRepository(pool),
		postgres.NewApplicationRepository(pool),
		validator,
		logg,
	)
	authService := usecase.NewAuthService(
		postgres.NewUserRepository(pool),
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		tokens,
		logg,
	)
	logg.Infof(ctx, "trust policy=%s", validator.Policy().Kind())

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	handler := rest.NewHandler(opportunityService, authService, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(handler, tokens, rest.RouterConfig{
		OtelServiceName: otelServiceName,
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Kafka ingest включается явно.
	var consumer ports.MessageConsumer = kafka.NopConsumer{}
	if cfg.Kafka.Enabled {
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, opportunityService, logg)
	} else {
		logg.Infof(ctx, "kafka ingest disabled")
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   newMetricsServer(cfg),
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if err := consumer.Close(); err != nil {
			logg.Warnf(ctx, "kafka consumer close error: %v", err)
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	go func() {
		a.Logger.Infof(ctx, "kafka consumer starting")
		if err := a.KafkaConsumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	servers := []*http.Server{a.HTTPServer}
	if a.MetricsServer != nil {
		servers = append(servers, a.MetricsServer)
	}
	for _, srv := range servers {
		go func() {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server %s shutdown failed: %v", srv.Addr, err)
		} else {
			a.Logger.Infof(ctx, "http server %s stopped gracefully", srv.Addr)
		}
	}

	if err := a.KafkaConsumer.Close(); err != nil {
		a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
