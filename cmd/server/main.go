package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/hospital/internal/auth"
	"github.com/Skotchmaster/hospital/internal/httpserver"
	"github.com/Skotchmaster/hospital/internal/migrations"
	"github.com/Skotchmaster/hospital/internal/mykafka"
	"github.com/Skotchmaster/hospital/internal/repo"
	"github.com/Skotchmaster/hospital/internal/service"
	"github.com/Skotchmaster/hospital/pkg/config"
	pkgdb "github.com/Skotchmaster/hospital/pkg/db"
	"github.com/Skotchmaster/hospital/pkg/logging"
	mw "github.com/Skotchmaster/hospital/pkg/middleware/auth"
	loggingmw "github.com/Skotchmaster/hospital/pkg/middleware/logging"
	"github.com/Skotchmaster/hospital/pkg/tokens"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := pkgdb.Open(initCtx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db init error: %v", err)
	}
	if cfg.MigrateOnStart {
		if err := migrations.Apply(initCtx, db); err != nil {
			cancel()
			log.Fatalf("migrate: %v", err)
		}
	}
	cancel()

	codec, err := tokens.NewCodec([]byte(cfg.JWTSecret), cfg.JWTAlgorithm, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}

	renderer, err := httpserver.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	events, closeEvents := mykafka.FromBrokers(cfg.KafkaBrokers)
	defer func() {
		if err := closeEvents(); err != nil {
			logger.Error("kafka_close_failed", "error", err)
		}
	}()
	if len(cfg.KafkaBrokers) > 0 {
		logger.Info("kafka_enabled", "brokers", cfg.KafkaBrokers)
	}

	gormRepo := repo.New(db)
	authMW := mw.NewAuthMiddleware(&auth.Resolver{Codec: codec}, cfg.CookieSecure)
	todoSvc := &service.TodoService{Repo: gormRepo}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = httpserver.ErrorHandler

	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(
		echomw.Recover(),
		echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}),
		loggingmw.RequestLogger(logger),
		echomw.Secure(),
	)
	if len(cfg.CORSOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.CORSOrigins,
			AllowCredentials: true,
			AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		}))
	}

	httpserver.Register(e, &httpserver.Deps{
		AuthMW: authMW,
		Auth: &httpserver.AuthHTTP{
			Svc:          service.NewAuthService(gormRepo, codec, events),
			SecureCookie: cfg.CookieSecure,
		},
		Users:    &httpserver.UserHTTP{Svc: &service.UserService{Repo: gormRepo}},
		Todos:    &httpserver.TodoHTTP{Svc: todoSvc},
		Pages:    &httpserver.PageHTTP{Todos: todoSvc, AuthMW: authMW},
		Hospital: httpserver.NewHospitalHTTP(db, events),
		Health:   &httpserver.HealthHTTP{DB: db},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("http_server_started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}
	if err := pkgdb.Close(db); err != nil {
		logger.Error("db_close_failed", "error", err)
	}

	logger.Info("shutdown_complete")
}
