package service

import (
	"context"
	"fmt"
	"strings"

	"driverapp/pkg/logger"
	"driverapp/pkg/models"
	"driverapp/storage"
)

type RideService interface {
	Schedule(ctx context.Context, req *models.CreateRideRequest) (*models.ScheduledRide, error)
	ListByUser(ctx context.Context, userID string) ([]*models.ScheduledRide, error)
}

type rideService struct {
	stg storage.IRideStorage
	log logger.ILogger
}

func NewRideService(stg storage.IStorage, log logger.ILogger) RideService {
	return &rideService{
		stg: stg.Ride(),
		log: log,
	}
}

func (s *rideService) Schedule(ctx context.Context, req *models.CreateRideRequest) (*models.ScheduledRide, error) {
	if strings.TrimSpace(string(req.Status)) == "" {
		req.Status = models.RideStatusPending
	}

	ride, err := s.stg.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	s.log.Info("ride scheduled", logger.Int64("id", ride.ID), logger.String("status", string(ride.Status)))
	return ride, nil
}

func (s *rideService) ListByUser(ctx context.Context, userID string) ([]*models.ScheduledRide, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	rides, err := s.stg.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if rides == nil {
		rides = []*models.ScheduledRide{}
	}
	return rides, nil
}
