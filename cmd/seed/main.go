package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/config"
	"github.com/oksasatya/go-car-rental/internal/application"
	pginfra "github.com/oksasatya/go-car-rental/internal/infrastructure/postgres"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

// seed loads the demo fleet into Postgres and, when configured, the search index.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch unavailable; cars will not be indexed")
		es = nil
	}
	if es != nil {
		if err := helpers.EnsureCarsIndex(ctx, es, cfg.ESCarsIndex); err != nil {
			logger.WithError(err).Warn("ensure cars index failed")
		}
	}

	svc := application.NewCarService(pginfra.NewCarRepository(pool), nil, 0, es, cfg.ESCarsIndex, nil, "", logger)
	inserted, existing, err := svc.Seed(ctx)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed cars")
	}
	if existing > 0 {
		logger.WithField("count", existing).Info("cars already exist in database")
		return
	}
	for _, c := range inserted {
		logger.WithFields(logrus.Fields{"id": c.ID, "car": c.Make + " " + c.Model, "price": c.PricePerDay}).Info("seeded car")
	}
}
