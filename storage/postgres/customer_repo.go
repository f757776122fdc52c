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

type customerRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewCustomerRepo(db *pgxpool.Pool, log logger.ILogger) storage.ICustomerStorage {
	return &customerRepo{db: db, log: log}
}

// Upsert keeps the stored name when req.Name is nil; the image URL is always overwritten.
func (r *customerRepo) Upsert(ctx context.Context, req *models.UpsertCustomerRequest) (*models.CustomerProfile, error) {
	var p models.CustomerProfile
	query := `
		INSERT INTO customer_profile (uid, name, profile_image_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO UPDATE
		SET name = COALESCE(EXCLUDED.name, customer_profile.name),
			profile_image_url = EXCLUDED.profile_image_url
		RETURNING id, uid, name, profile_image_url, created_at
	`
	err := r.db.QueryRow(ctx, query, req.UID, req.Name, req.ProfileImageURL).Scan(
		&p.ID, &p.UID, &p.Name, &p.ProfileImageURL, &p.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to upsert customer profile", logger.String("uid", req.UID), logger.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *customerRepo) GetByUID(ctx context.Context, uid string) (*models.CustomerProfile, error) {
	var p models.CustomerProfile
	query := `SELECT id, uid, name, profile_image_url, created_at FROM customer_profile WHERE uid = $1`
	err := r.db.QueryRow(ctx, query, uid).Scan(
		&p.ID, &p.UID, &p.Name, &p.ProfileImageURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error("failed to get customer profile", logger.String("uid", uid), logger.Error(err))
		return nil, err
	}
	return &p, nil
}
