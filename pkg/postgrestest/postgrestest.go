package postgrestest

import (
	"fmt"
	"time"

	"github.com/goto/spotlight/internal/store"
	"github.com/goto/spotlight/internal/store/postgres"
	"github.com/goto/spotlight/pkg/log"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	pgUser     = "test_user"
	pgPassword = "test_pass"
	pgDatabase = "spotlight_test"
)

// NewTestStore runs a throwaway postgres container, connects a migrated Store
// to it, and hands back the pool and resource for cleanup via PurgeTestDocker.
func NewTestStore(logger log.Logger) (*postgres.Store, *dockertest.Pool, *dockertest.Resource, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connecting to docker: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, nil, nil, fmt.Errorf("pinging docker: %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("starting postgres container: %w", err)
	}
	resource.Expire(120)

	config := &store.Config{
		Host:     "localhost",
		User:     pgUser,
		Password: pgPassword,
		Name:     pgDatabase,
		Port:     resource.GetPort("5432/tcp"),
		SslMode:  "disable",
	}

	var testStore *postgres.Store
	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		testStore, err = postgres.NewStore(config)
		if err != nil {
			return err
		}
		sqlDB, err := testStore.DB().DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		purgeErr := pool.Purge(resource)
		if purgeErr != nil {
			return nil, nil, nil, purgeErr
		}
		return nil, nil, nil, fmt.Errorf("connecting to test postgres: %w", err)
	}

	if err := testStore.Migrate(); err != nil {
		purgeErr := pool.Purge(resource)
		if purgeErr != nil {
			return nil, nil, nil, purgeErr
		}
		return nil, nil, nil, fmt.Errorf("migrating test database: %w", err)
	}

	return testStore, pool, resource, nil
}

func PurgeTestDocker(pool *dockertest.Pool, resource *dockertest.Resource) error {
	if err := pool.Purge(resource); err != nil {
		return fmt.Errorf("purging test docker: %w", err)
	}
	return nil
}
