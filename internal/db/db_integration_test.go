//go:build integration

package db_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kravdojo/gym-api/internal/catalog"
	"github.com/kravdojo/gym-api/internal/db"
	"github.com/kravdojo/gym-api/internal/repository"
	"github.com/kravdojo/gym-api/internal/repository/dao"
)

var postgresDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct pool: %s", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to Docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_USER=gym",
			"POSTGRES_DB=gym",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start resource: %s", err)
	}
	_ = resource.Expire(120)

	url := fmt.Sprintf("postgres://gym:secret@%s/gym?sslmode=disable", resource.GetHostPort("5432/tcp"))
	pool.MaxWait = 2 * time.Minute
	if err = pool.Retry(func() error {
		var openErr error
		postgresDB, openErr = db.OpenPostgresWithURL(url)
		if openErr != nil {
			return openErr
		}
		sqlDB, openErr := postgresDB.DB()
		if openErr != nil {
			return openErr
		}
		return sqlDB.Ping()
	}); err != nil {
		log.Fatalf("could not connect to postgres: %s", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		log.Fatalf("could not migrate: %s", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Fatalf("could not purge resource: %s", err)
	}

	os.Exit(code)
}

func TestPostgresDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	d := dao.NewUserDAO(postgresDB)
	user := dao.User{
		Email:           "dup@email.com",
		Password:        "hash",
		Name:            "Dup",
		MembershipLevel: "beginner",
		Role:            "member",
		JoinDate:        time.Now().UTC(),
		IsActive:        true,
	}

	_, err := d.Insert(ctx, user)
	require.NoError(t, err)
	_, err = d.Insert(ctx, user)
	assert.ErrorIs(t, err, dao.ErrUserEmailExists)
}

func TestPostgresCatalogUpsert(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewProductRepository(dao.NewProductDAO(postgresDB))

	require.NoError(t, repo.Upsert(ctx, catalog.Products()))
	require.NoError(t, repo.Upsert(ctx, catalog.Products()))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(catalog.Products()), n)

	kimono, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, catalog.Products()[0], kimono)
}
