package service

import (
	"context"
	"fmt"
	"strings"

	"driverapp/pkg/logger"
	"driverapp/pkg/models"
	"driverapp/storage"
)

type DriverService interface {
	Register(ctx context.Context, req *models.RegisterDriverRequest) (*models.Driver, error)
	Exists(ctx context.Context, uid string) (*models.Driver, bool, error)
	GetByUID(ctx context.Context, uid string) (*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.DriverProjection, error)
	GetAll(ctx context.Context) ([]*models.Driver, error)
	UpdateFCMToken(ctx context.Context, req *models.UpdateFCMTokenRequest) (*models.Driver, error)
}

type driverService struct {
	stg storage.IDriverStorage
	log logger.ILogger
}

func NewDriverService(stg storage.IStorage, log logger.ILogger) DriverService {
	return &driverService{
		stg: stg.Driver(),
		log: log,
	}
}

// Register stores the driver as given. A nil task list is left for the
// database to reject.
func (s *driverService) Register(ctx context.Context, req *models.RegisterDriverRequest) (*models.Driver, error) {
	driver, err := s.stg.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	s.log.Info("driver registered", logger.Int64("id", driver.ID))
	return driver, nil
}

func (s *driverService) Exists(ctx context.Context, uid string) (*models.Driver, bool, error) {
	driver, err := s.stg.GetByUID(ctx, uid)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return driver, driver != nil, nil
}

func (s *driverService) GetByUID(ctx context.Context, uid string) (*models.Driver, error) {
	driver, err := s.stg.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver not found", ErrNotFound)
	}
	return driver, nil
}

func (s *driverService) GetByID(ctx context.Context, id int64) (*models.DriverProjection, error) {
	if id < 1 || id > models.MaxDriverID {
		return nil, fmt.Errorf("%w: driver not found", ErrNotFound)
	}
	driver, err := s.stg.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver not found", ErrNotFound)
	}
	return driver, nil
}

func (s *driverService) GetAll(ctx context.Context) ([]*models.Driver, error) {
	drivers, err := s.stg.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return drivers, nil
}

func (s *driverService) UpdateFCMToken(ctx context.Context, req *models.UpdateFCMTokenRequest) (*models.Driver, error) {
	if strings.TrimSpace(req.UID) == "" || strings.TrimSpace(req.FCMToken) == "" {
		return nil, fmt.Errorf("%w: uid and fcmToken are required", ErrValidation)
	}

	driver, err := s.stg.UpdateFCMToken(ctx, req.UID, req.FCMToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if driver == nil {
		return nil, fmt.Errorf("%w: driver not found", ErrNotFound)
	}
	s.log.Info("fcm token updated", logger.String("uid", req.UID))
	return driver, nil
}
