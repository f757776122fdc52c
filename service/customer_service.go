package service

import (
	"context"
	"fmt"
	"strings"

	"driverapp/pkg/logger"
	"driverapp/pkg/models"
	"driverapp/storage"
)

type CustomerService interface {
	Upsert(ctx context.Context, req *models.UpsertCustomerRequest) (*models.CustomerProfile, error)
	GetByUID(ctx context.Context, uid string) (*models.CustomerProfile, error)
}

type customerService struct {
	stg storage.ICustomerStorage
	log logger.ILogger
}

func NewCustomerService(stg storage.IStorage, log logger.ILogger) CustomerService {
	return &customerService{
		stg: stg.Customer(),
		log: log,
	}
}

func (s *customerService) Upsert(ctx context.Context, req *models.UpsertCustomerRequest) (*models.CustomerProfile, error) {
	if strings.TrimSpace(req.UID) == "" || strings.TrimSpace(req.ProfileImageURL) == "" {
		return nil, fmt.Errorf("%w: uid and profileImageUrl are required", ErrValidation)
	}
	// an empty name counts as absent so the stored one survives
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		req.Name = nil
	}

	profile, err := s.stg.Upsert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return profile, nil
}

func (s *customerService) GetByUID(ctx context.Context, uid string) (*models.CustomerProfile, error) {
	profile, err := s.stg.GetByUID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile not found", ErrNotFound)
	}
	return profile, nil
}
