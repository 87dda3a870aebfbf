package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/config"
	"github.com/oksasatya/go-car-rental/internal/container"
	"github.com/oksasatya/go-car-rental/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-car-rental/internal/infrastructure/postgres"
	"github.com/oksasatya/go-car-rental/internal/router"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	secret, err := cfg.ResolveJWTSecret(logger)
	if err != nil {
		logger.WithError(err).Fatal("refusing to start")
	}

	ctx := context.Background()

	closeStorage := setupStorage(ctx, cfg, logger)
	defer closeStorage()

	// Redis (car list cache, rate limiting)
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()
	pingCtx, cancelPing := context.WithTimeout(ctx, 2*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.WithError(err).Warn("redis unavailable; cache and rate limiting disabled")
		container.SetRedis(nil)
	} else {
		container.SetRedis(rdb)
	}
	cancelPing()

	// GCS (car images), optional
	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
		container.SetGCS(gcsClient)
	}

	// Elasticsearch (car search), optional
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch client init failed; search disabled")
	} else if es != nil {
		if err := helpers.EnsureCarsIndex(ctx, es, cfg.ESCarsIndex); err != nil {
			logger.WithError(err).Warn("ensure cars index failed")
		}
		container.SetES(es)
	}

	// RabbitMQ (email jobs), only when sending is enabled
	if cfg.MailSendEnabled {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; emails will not be queued")
		} else {
			defer pub.Close()
			container.SetRabbitPub(pub)
		}
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetJWT(helpers.NewJWTManager(secret))
	container.SetCookies(helpers.NewSessionCookie(cfg.CookieDomain, cfg.CookieSecure))
	container.SetHasher(helpers.NewPasswordHasher())

	r, err := router.NewEngine()
	if err != nil {
		logger.WithError(err).Fatal("failed to build router")
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// setupStorage installs the repositories for STORAGE_DRIVER and returns a closer.
func setupStorage(ctx context.Context, cfg *config.Config, logger *logrus.Logger) func() {
	if cfg.StorageDriver == "memory" {
		if cfg.IsProduction() {
			logger.Fatal("STORAGE_DRIVER=memory is not allowed in production")
		}
		logger.Warn("using in-memory storage; data is lost on restart")
		cars := memory.NewCarRepository()
		container.SetRepositories(memory.NewUserRepository(), cars, memory.NewBookingRepository(cars))
		return func() {}
	}

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	container.SetPGPool(pool)
	container.SetRepositories(
		pginfra.NewUserRepository(pool),
		pginfra.NewCarRepository(pool),
		pginfra.NewBookingRepository(pool),
	)
	return pool.Close
}
