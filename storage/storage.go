package storage

import (
	"context"

	"driverapp/pkg/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Single-row lookups return (nil, nil) when nothing matches.
type IStorage interface {
	Driver() IDriverStorage
	Ride() IRideStorage
	Customer() ICustomerStorage
	Notification() INotificationStorage
	Schema() ISchemaStorage
	Close()
	GetPool() *pgxpool.Pool
}

type IDriverStorage interface {
	Create(ctx context.Context, req *models.RegisterDriverRequest) (*models.Driver, error)
	GetByUID(ctx context.Context, uid string) (*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.DriverProjection, error)
	GetAll(ctx context.Context) ([]*models.Driver, error)
	GetFCMToken(ctx context.Context, id int64) (*string, error)
	UpdateFCMToken(ctx context.Context, uid, token string) (*models.Driver, error)
}

type IRideStorage interface {
	Create(ctx context.Context, req *models.CreateRideRequest) (*models.ScheduledRide, error)
	GetByUser(ctx context.Context, userID string) ([]*models.ScheduledRide, error)
}

type ICustomerStorage interface {
	Upsert(ctx context.Context, req *models.UpsertCustomerRequest) (*models.CustomerProfile, error)
	GetByUID(ctx context.Context, uid string) (*models.CustomerProfile, error)
}

type INotificationStorage interface {
	Create(ctx context.Context, req *models.CreateNotificationRequest) (*models.DriverNotification, error)
	GetByDriver(ctx context.Context, driverUID string) ([]*models.DriverNotification, error)
}

type ISchemaStorage interface {
	EnsureTables(ctx context.Context)
	DropTable(ctx context.Context, table string) error
	DropAll(ctx context.Context) error
}
