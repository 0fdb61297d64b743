// Package client assembles the client core: stores, session and API client,
// wired from configuration.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kravdojo/gym-api/internal/apiclient"
	"github.com/kravdojo/gym-api/internal/catalog"
	"github.com/kravdojo/gym-api/internal/config"
	"github.com/kravdojo/gym-api/internal/db"
	"github.com/kravdojo/gym-api/internal/purchase"
	"github.com/kravdojo/gym-api/internal/session"
	"github.com/kravdojo/gym-api/internal/storage"
	"github.com/kravdojo/gym-api/internal/store"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"

	redisKeyPrefix = "gym:"
)

var (
	ErrUnknownBackend = errors.New("unknown session backend")
	ErrNoAPIBaseURL   = errors.New("session.api_base_url is required unless mock_login is set")
)

type Core struct {
	API       *apiclient.Client
	Session   *session.Store
	Products  *store.Products
	Students  *store.Students
	Users     *store.Users
	Purchases *purchase.Recorder

	closers []func() error
}

// New builds the client core and restores any persisted session.
func New(ctx context.Context, conf *config.SessionConfig, redisConf *config.RedisConfig, logger *zap.Logger) (*Core, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !conf.MockLogin && conf.APIBaseURL == "" {
		return nil, ErrNoAPIBaseURL
	}

	kv, closeKV, err := OpenKV(ctx, conf, redisConf)
	if err != nil {
		return nil, err
	}

	c := &Core{
		Purchases: purchase.NewRecorder(),
		Students:  store.NewStudents(catalog.Students(time.Now())),
	}
	if closeKV != nil {
		c.closers = append(c.closers, closeKV)
	}

	// The API client reads the token from the session built below.
	c.API = apiclient.New(conf.APIBaseURL, apiclient.WithTokenSource(func() string {
		return c.Session.Token()
	}))

	var auth session.Authenticator = session.APIAuthenticator{Client: c.API}
	if conf.MockLogin {
		auth = session.MockAuthenticator{Delay: time.Duration(conf.MockDelayMS) * time.Millisecond}
	}
	c.Session = session.NewStore(auth, kv, logger.Named("session"))
	c.Products = store.NewProducts(catalog.Products(), c.Purchases, logger.Named("products"))
	c.Users = store.NewUsers(c.API, logger.Named("users"))

	if err := c.Session.Rehydrate(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("c.Session.Rehydrate -> %w", err)
	}

	return c, nil
}

// Close releases the storage backend.
func (c *Core) Close() error {
	var errs []error
	for _, fn := range c.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// OpenKV opens the durable store named by conf.Backend. The returned close
// function may be nil.
func OpenKV(ctx context.Context, conf *config.SessionConfig, redisConf *config.RedisConfig) (storage.KV, func() error, error) {
	switch conf.Backend {
	case "", BackendMemory:
		return storage.NewMemory(), nil, nil

	case BackendSQLite:
		gormDB, err := db.OpenSQLite(conf.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("db.OpenSQLite -> %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("gormDB.DB -> %w", err)
		}
		kv, err := storage.NewSQLite(gormDB)
		if err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("storage.NewSQLite -> %w", err)
		}
		return kv, sqlDB.Close, nil

	case BackendRedis:
		if redisConf == nil {
			return nil, nil, fmt.Errorf("%w: redis section missing", ErrUnknownBackend)
		}
		rdb := redis.NewClient(&redis.Options{
			Addr:     redisConf.Addr,
			Password: redisConf.Password,
			DB:       redisConf.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("rdb.Ping -> %w", err)
		}
		return storage.NewRedis(rdb, redisKeyPrefix), rdb.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, conf.Backend)
}
