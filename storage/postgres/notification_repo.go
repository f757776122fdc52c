package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"driverapp/pkg/logger"
	"driverapp/pkg/models"
	"driverapp/storage"
)

type notificationRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewNotificationRepo(db *pgxpool.Pool, log logger.ILogger) storage.INotificationStorage {
	return &notificationRepo{db: db, log: log}
}

func (r *notificationRepo) Create(ctx context.Context, req *models.CreateNotificationRequest) (*models.DriverNotification, error) {
	var n models.DriverNotification
	query := `
		INSERT INTO driver_notifications (driver_uid, title, pickup_location, destination, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, driver_uid, title, pickup_location, destination, image_url, is_read, created_at
	`
	err := r.db.QueryRow(ctx, query, req.DriverUID, req.Title, req.PickupLocation, req.Destination, req.ImageURL).Scan(
		&n.ID, &n.DriverUID, &n.Title, &n.PickupLocation, &n.Destination, &n.ImageURL, &n.IsRead, &n.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to create driver notification", logger.String("driver_uid", req.DriverUID), logger.Error(err))
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) GetByDriver(ctx context.Context, driverUID string) ([]*models.DriverNotification, error) {
	query := `
		SELECT id, driver_uid, title, pickup_location, destination, image_url, is_read, created_at
		FROM driver_notifications
		WHERE driver_uid = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, driverUID)
	if err != nil {
		r.log.Error("failed to get driver notifications", logger.String("driver_uid", driverUID), logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	notifications := []*models.DriverNotification{}
	for rows.Next() {
		var n models.DriverNotification
		err := rows.Scan(
			&n.ID, &n.DriverUID, &n.Title, &n.PickupLocation, &n.Destination, &n.ImageURL, &n.IsRead, &n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notifications, nil
}
