package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/fieldcrypt/pkg/config"
	"github.com/dmitrymomot/fieldcrypt/pkg/environment"
	"github.com/dmitrymomot/fieldcrypt/pkg/logger"
	"github.com/dmitrymomot/fieldcrypt/pkg/mongo"
	"github.com/dmitrymomot/fieldcrypt/pkg/pg"
	"github.com/dmitrymomot/fieldcrypt/svc/identity"
)

type appConfig struct {
	Env    environment.Config
	Log    logger.Config
	Driver string        `env:"IDENTITY_STORAGE" envDefault:"postgres"`
	Wait   time.Duration `env:"MIGRATE_TIMEOUT" envDefault:"1m"`
}

func main() {
	envFile := flag.String("env-file", "", "load variables from this file before reading the environment")
	flag.Parse()

	if *envFile != "" {
		config.MustLoadEnv(*envFile)
	}

	var cfg appConfig
	config.MustLoad(&cfg)

	env := cfg.Env.Environment()
	log := logger.New(
		logger.WithEnvironment(env, "identity-migrate"),
		logger.WithConfig(cfg.Log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Wait)
	defer cancel()

	var err error
	switch cfg.Driver {
	case "postgres":
		err = migratePostgres(ctx, log)
	case "mongo":
		err = prepareMongo(ctx)
	default:
		log.Error("unknown storage driver", "driver", cfg.Driver)
		os.Exit(2)
	}
	if err != nil {
		log.Error("migration failed", logger.Error(err), "driver", cfg.Driver)
		os.Exit(1)
	}
	log.Info("identity storage is up to date", "driver", cfg.Driver)
}

func migratePostgres(ctx context.Context, log *slog.Logger) error {
	var cfg pg.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Healthcheck(pool)(ctx); err != nil {
		return err
	}

	return pg.Migrate(ctx, pool, cfg, identity.Migrations, identity.MigrationsDir, log)
}

// prepareMongo creates the users collection indexes.
func prepareMongo(ctx context.Context) error {
	var cfg mongo.Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	db, err := mongo.NewWithDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongo.Healthcheck(db.Client())(ctx); err != nil {
		return err
	}

	_, err = identity.NewMongoStorage(ctx, db)
	return err
}
