package postgres

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"driverapp/config"
	"driverapp/pkg/logger"
	"driverapp/storage"
)

type Store struct {
	pool *pgxpool.Pool
	log  logger.ILogger
}

func New(ctx context.Context, cfg config.Config, log logger.ILogger) (storage.IStorage, error) {
	url := cfg.PostgresURL()

	// 🔹 Connection pool
	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Error("error while parsing Postgres config", logger.Error(err))
		return nil, err
	}
	if cfg.PostgresMaxConns > 0 {
		poolConfig.MaxConns = cfg.PostgresMaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("failed to connect Postgres", logger.Error(err))
		return nil, err
	}

	if err = pool.Ping(ctx); err != nil {
		log.Error("failed to ping Postgres", logger.Error(err))
		pool.Close()
		return nil, err
	}

	store := &Store{
		pool: pool,
		log:  log,
	}

	// 🔹 Base tables, then incremental migrations on top of them
	store.Schema().EnsureTables(ctx)

	if err = runMigrations(cfg.MigrationsPath, url, log); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Postgres connected")

	return store, nil
}

func runMigrations(path, url string, log logger.ILogger) error {
	mPath, err := filepath.Abs(path)
	if err != nil {
		log.Error("invalid migrations path", logger.String("path", path), logger.Error(err))
		return err
	}
	if _, err := os.Stat(mPath); err != nil {
		log.Warning("migrations directory not found, skipping", logger.String("path", mPath))
		return nil
	}

	m, err := migrate.New("file://"+mPath, url)
	if err != nil {
		log.Error("migration init error", logger.Error(err))
		return err
	}
	defer m.Close()

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return nil
		}
		log.Error("migration up error", logger.Error(err))
		return err
	}
	log.Info("migrations applied")
	return nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) GetPool() *pgxpool.Pool {
	return s.pool
}

func (s *Store) Driver() storage.IDriverStorage             { return NewDriverRepo(s.pool, s.log) }
func (s *Store) Ride() storage.IRideStorage                 { return NewRideRepo(s.pool, s.log) }
func (s *Store) Customer() storage.ICustomerStorage         { return NewCustomerRepo(s.pool, s.log) }
func (s *Store) Notification() storage.INotificationStorage { return NewNotificationRepo(s.pool, s.log) }
func (s *Store) Schema() storage.ISchemaStorage             { return NewSchemaRepo(s.pool, s.log) }
