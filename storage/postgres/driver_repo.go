package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"driverapp/pkg/logger"
	"driverapp/pkg/models"
	"driverapp/storage"
)

const driverColumns = `id, uid, name, subname, car_name, plate, driver_image_url, car_image_url, tasks, fcm_token`

type driverRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewDriverRepo(db *pgxpool.Pool, log logger.ILogger) storage.IDriverStorage {
	return &driverRepo{db: db, log: log}
}

func scanDriver(row pgx.Row) (*models.Driver, error) {
	var d models.Driver
	err := row.Scan(
		&d.ID, &d.UID, &d.Name, &d.Subname, &d.CarName, &d.Plate, &d.DriverImageURL, &d.CarImageURL, &d.Tasks, &d.FCMToken,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *driverRepo) Create(ctx context.Context, req *models.RegisterDriverRequest) (*models.Driver, error) {
	query := `
		INSERT INTO drivers (uid, name, subname, car_name, plate, driver_image_url, car_image_url, tasks, fcm_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::text[], $9)
		RETURNING ` + driverColumns

	driver, err := scanDriver(r.db.QueryRow(ctx, query,
		req.UID,
		req.Name,
		req.Subname,
		req.CarName,
		req.Plate,
		req.DriverImageURL,
		req.CarImageURL,
		req.Tasks,
		req.FCMToken,
	))
	if err != nil {
		r.log.Error("failed to create driver", logger.Error(err))
		return nil, err
	}
	return driver, nil
}

func (r *driverRepo) GetByUID(ctx context.Context, uid string) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE uid = $1`
	driver, err := scanDriver(r.db.QueryRow(ctx, query, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get driver by uid", logger.String("uid", uid), logger.Error(err))
		return nil, err
	}
	return driver, nil
}

func (r *driverRepo) GetByID(ctx context.Context, id int64) (*models.DriverProjection, error) {
	// pgx refuses to encode values outside int4; such ids cannot match a row.
	if id < 1 || id > models.MaxDriverID {
		return nil, nil
	}
	var d models.DriverProjection
	query := `
		SELECT id, uid, name, subname, car_name, plate, driver_image_url, car_image_url, tasks
		FROM drivers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.UID, &d.Name, &d.Subname, &d.CarName, &d.Plate, &d.DriverImageURL, &d.CarImageURL, &d.Tasks,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get driver by id", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return &d, nil
}

func (r *driverRepo) GetAll(ctx context.Context) ([]*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to get drivers", logger.Error(err))
		return nil, err
	}
	defer rows.Close()

	drivers := []*models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			r.log.Error("failed to scan driver", logger.Error(err))
			return nil, err
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("failed to iterate drivers", logger.Error(err))
		return nil, err
	}
	return drivers, nil
}

// GetFCMToken returns nil when the driver does not exist and an empty
// string when it exists without a token.
func (r *driverRepo) GetFCMToken(ctx context.Context, id int64) (*string, error) {
	if id < 1 || id > models.MaxDriverID {
		return nil, nil
	}
	var token string
	err := r.db.QueryRow(ctx, `SELECT COALESCE(fcm_token, '') FROM drivers WHERE id = $1`, id).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get driver fcm token", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return &token, nil
}

func (r *driverRepo) UpdateFCMToken(ctx context.Context, uid, token string) (*models.Driver, error) {
	query := `UPDATE drivers SET fcm_token = $1 WHERE uid = $2 RETURNING ` + driverColumns
	driver, err := scanDriver(r.db.QueryRow(ctx, query, token, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to update fcm token", logger.String("uid", uid), logger.Error(err))
		return nil, err
	}
	return driver, nil
}
