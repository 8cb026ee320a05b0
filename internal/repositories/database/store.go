package database

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/employee_directory_app/internal/core/ports/repositories"
	"github.com/SscSPs/employee_directory_app/internal/platform/config"
	"github.com/SscSPs/employee_directory_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/employee_directory_app/internal/repositories/database/redisstore"
	pkgdb "github.com/SscSPs/employee_directory_app/pkg/database"
)

// OpenStore connects the record store selected by cfg.StoreDriver and returns
// its repositories with a function releasing the connection. Postgres
// migrations run when migrate is set.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverRedis:
		client, err := pkgdb.NewRedisClient(ctx, cfg.RedisURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing redis client", slog.String("error", err.Error()))
			}
		}
		logger.Info("Using redis record store", slog.String("prefix", cfg.RedisKeyPrefix))
		return redisstore.NewRepositoryProvider(client, cfg.RedisKeyPrefix), closeFn, nil

	case config.StoreDriverPostgres:
		if migrate {
			logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
			if err := pkgdb.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := pkgdb.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Using postgres record store")
		return pgsql.NewRepositoryProvider(pool), func() { pkgdb.ClosePgxPool(pool) }, nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
