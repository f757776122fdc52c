package main

import (
	"context"
	"flag"
	"os"

	"driverapp/config"
	"driverapp/pkg/logger"
	"driverapp/storage"
	"driverapp/storage/postgres"
)

func main() {
	table := flag.String("table", "", "drop a single table (drivers, scheduled_rides, customer_profile, driver_notifications); empty drops all")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer log.Sync()

	if !cfg.IsDevelopment() {
		log.Error("refusing to drop tables outside development", logger.String("environment", cfg.Environment))
		os.Exit(1)
	}

	pg, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pg.Close()

	if err = reset(context.Background(), pg.Schema(), *table); err != nil {
		log.Error("Failed to drop tables", logger.Error(err))
		pg.Close()
		os.Exit(1)
	}

	log.Info("Tables dropped; they are recreated on next start", logger.Any("tables", postgres.TableNames()))
}

// reset drops one managed table, or all of them when table is empty.
func reset(ctx context.Context, schema storage.ISchemaStorage, table string) error {
	if table != "" {
		return schema.DropTable(ctx, table)
	}
	return schema.DropAll(ctx)
}
