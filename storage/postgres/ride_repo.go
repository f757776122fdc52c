package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"driverapp/pkg/logger"
	"driverapp/pkg/models"
	"driverapp/storage"
)

// Rides written by older clients may carry NULLs in the descriptive columns.
const rideColumns = `id, user_id,
	COALESCE(driver_name, ''), COALESCE(car, ''), COALESCE(plate, ''), COALESCE(pickup, ''), COALESCE(destination, ''),
	COALESCE(datetime, ''), COALESCE(payment_method, ''), COALESCE(distance, ''), COALESCE(estimated_time, ''), COALESCE(price, ''),
	status, created_at`

type rideRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewRideRepo(db *pgxpool.Pool, log logger.ILogger) storage.IRideStorage {
	return &rideRepo{db: db, log: log}
}

func scanRide(row pgx.Row) (*models.ScheduledRide, error) {
	var ride models.ScheduledRide
	err := row.Scan(
		&ride.ID, &ride.UserID, &ride.DriverName, &ride.Car, &ride.Plate, &ride.Pickup, &ride.Destination,
		&ride.Datetime, &ride.PaymentMethod, &ride.Distance, &ride.EstimatedTime, &ride.Price, &ride.Status, &ride.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

// Create stores omitted text fields as '' rather than NULL.
func (r *rideRepo) Create(ctx context.Context, req *models.CreateRideRequest) (*models.ScheduledRide, error) {
	query := `
		INSERT INTO scheduled_rides (user_id, driver_name, car, plate, pickup, destination, datetime, payment_method, distance, estimated_time, price, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + rideColumns

	ride, err := scanRide(r.db.QueryRow(ctx, query,
		req.UserID,
		req.DriverName,
		req.Car,
		req.Plate,
		req.Pickup,
		req.Destination,
		req.Datetime,
		req.PaymentMethod,
		req.Distance,
		req.EstimatedTime,
		req.Price,
		string(req.Status),
	))
	if err != nil {
		r.log.Error("failed to create scheduled ride", logger.Error(err))
		return nil, err
	}
	return ride, nil
}

// GetByUser orders by the stored datetime text, newest first when the text is ISO-8601.
func (r *rideRepo) GetByUser(ctx context.Context, userID string) ([]*models.ScheduledRide, error) {
	query := `SELECT ` + rideColumns + ` FROM scheduled_rides WHERE user_id = $1 ORDER BY datetime DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to get scheduled rides", logger.String("user_id", userID), logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	rides := []*models.ScheduledRide{}
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			r.log.Error("failed to scan scheduled ride", logger.Error(err))
			return nil, err
		}
		rides = append(rides, ride)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rides, nil
}
