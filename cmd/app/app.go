package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kravdojo/gym-api/internal/api"
	"github.com/kravdojo/gym-api/internal/catalog"
	"github.com/kravdojo/gym-api/internal/config"
	"github.com/kravdojo/gym-api/internal/db"
	"github.com/kravdojo/gym-api/internal/logger"
	"github.com/kravdojo/gym-api/internal/repository"
	"github.com/kravdojo/gym-api/internal/repository/dao"
	"github.com/kravdojo/gym-api/internal/service"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	if err = logger.SetLevel(conf.API.LogLevel); err != nil {
		return fmt.Errorf("failed to set log level -> %w", err)
	}

	err = config.Watch(configPath, func(c *config.AppConfig) {
		if err := logger.SetLevel(c.API.LogLevel); err != nil {
			zap.L().Warn("ignoring invalid log level", zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("logLevel", c.API.LogLevel))
	}, func(err error) {
		zap.L().Warn("failed to reload config", zap.Error(err))
	})
	if err != nil {
		return fmt.Errorf("failed to watch config -> %w", err)
	}

	database, err := openDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(database); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.Database.Seed {
		if err = seed(ctx, conf, database); err != nil {
			return fmt.Errorf("failed to seed database -> %w", err)
		}
	}

	s := api.NewServer(conf, database)
	go s.Feed.Run(ctx)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func openDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return db.OpenPostgresWithURL(dbURL)
	}

	switch conf.Database.Driver {
	case "sqlite":
		if conf.SQLite == nil {
			return nil, fmt.Errorf("database driver sqlite needs a sqlite section")
		}
		return db.OpenSQLite(conf.SQLite.Path)
	case "postgres", "":
		if conf.Postgres == nil {
			return nil, fmt.Errorf("database driver postgres needs a postgres section")
		}
		return db.OpenPostgres(conf.Postgres)
	}

	return nil, fmt.Errorf("unknown database driver %q", conf.Database.Driver)
}

// seed loads the product catalog into an empty database and makes sure the
// configured admin account exists.
func seed(ctx context.Context, conf *config.AppConfig, database *gorm.DB) error {
	productSvc := service.NewProductService(repository.NewProductRepository(dao.NewProductDAO(database)))
	seeded, err := productSvc.SeedCatalog(ctx, catalog.Products())
	if err != nil {
		return fmt.Errorf("productSvc.SeedCatalog -> %w", err)
	}
	if seeded {
		zap.L().Info("seeded product catalog", zap.Int("products", len(catalog.Products())))
	}

	if conf.Admin == nil || conf.Admin.Email == "" {
		return nil
	}

	authSvc := service.NewAuthService(repository.NewUserRepository(dao.NewUserDAO(database)))
	admin, err := authSvc.EnsureAdmin(ctx, conf.Admin.Name, conf.Admin.Email, conf.Admin.Password)
	if err != nil {
		return fmt.Errorf("authSvc.EnsureAdmin -> %w", err)
	}
	zap.L().Info("admin account ready", zap.String("email", admin.Email))

	return nil
}
