package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"driverapp/pkg/logger"
	"driverapp/storage"
)

const (
	TableDrivers             = "drivers"
	TableScheduledRides      = "scheduled_rides"
	TableCustomerProfile     = "customer_profile"
	TableDriverNotifications = "driver_notifications"

	// golang-migrate's default bookkeeping table
	migrationsTable = "schema_migrations"
)

type tableDef struct {
	name string
	ddl  string
}

// Creation order is fixed; there are no foreign keys between the tables.
var tables = []tableDef{
	{
		name: TableDrivers,
		ddl: `
		CREATE TABLE IF NOT EXISTS drivers (
			id SERIAL PRIMARY KEY,
			uid TEXT UNIQUE,
			name TEXT NOT NULL,
			subname TEXT NOT NULL,
			car_name TEXT NOT NULL,
			plate TEXT NOT NULL,
			driver_image_url TEXT,
			car_image_url TEXT,
			tasks TEXT[] NOT NULL,
			fcm_token TEXT
		)`,
	},
	{
		name: TableScheduledRides,
		ddl: `
		CREATE TABLE IF NOT EXISTS scheduled_rides (
			id SERIAL PRIMARY KEY,
			user_id TEXT,
			driver_name TEXT,
			car TEXT,
			plate TEXT,
			pickup TEXT,
			destination TEXT,
			datetime TEXT,
			payment_method TEXT,
			distance TEXT,
			estimated_time TEXT,
			price TEXT,
			status TEXT NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: TableCustomerProfile,
		ddl: `
		CREATE TABLE IF NOT EXISTS customer_profile (
			id SERIAL PRIMARY KEY,
			uid TEXT UNIQUE NOT NULL,
			name TEXT,
			profile_image_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: TableDriverNotifications,
		ddl: `
		CREATE TABLE IF NOT EXISTS driver_notifications (
			id SERIAL PRIMARY KEY,
			driver_uid TEXT NOT NULL,
			title TEXT NOT NULL,
			pickup_location TEXT,
			destination TEXT,
			image_url TEXT,
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}

// execer is the part of *pgxpool.Pool the schema repository needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type schemaRepo struct {
	db  execer
	log logger.ILogger
}

func NewSchemaRepo(db execer, log logger.ILogger) storage.ISchemaStorage {
	return &schemaRepo{db: db, log: log}
}

// EnsureTables creates every table that is missing. A failing table is logged
// and the remaining ones are still attempted.
func (r *schemaRepo) EnsureTables(ctx context.Context) {
	for _, t := range tables {
		if _, err := r.db.Exec(ctx, t.ddl); err != nil {
			r.log.Error("failed to create table", logger.String("table", t.name), logger.Error(err))
			continue
		}
		r.log.Info("table is ready", logger.String("table", t.name))
	}
}

func (r *schemaRepo) DropTable(ctx context.Context, table string) error {
	if !knownTable(table) {
		return fmt.Errorf("unknown table %q", table)
	}
	// table is one of the constants above, never user input
	if _, err := r.db.Exec(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		r.log.Error("failed to drop table", logger.String("table", table), logger.Error(err))
		return err
	}
	r.log.Info("table dropped", logger.String("table", table))
	return r.resetMigrations(ctx)
}

// resetMigrations forgets applied migrations so indexes on recreated tables
// come back on the next start. Every migration is idempotent.
func (r *schemaRepo) resetMigrations(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "DROP TABLE IF EXISTS "+migrationsTable); err != nil {
		r.log.Error("failed to reset migration history", logger.Error(err))
		return err
	}
	return nil
}

// DropAll drops in reverse creation order.
func (r *schemaRepo) DropAll(ctx context.Context) error {
	for i := len(tables) - 1; i >= 0; i-- {
		if err := r.DropTable(ctx, tables[i].name); err != nil {
			return err
		}
	}
	return nil
}

func knownTable(name string) bool {
	for _, t := range tables {
		if t.name == name {
			return true
		}
	}
	return false
}

// TableNames lists the managed tables in creation order.
func TableNames() []string {
	names := make([]string, 0, len(tables))
	for _, t := range tables {
		names = append(names, t.name)
	}
	return names
}
