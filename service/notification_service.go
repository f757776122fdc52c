package service

import (
	"context"
	"fmt"
	"strings"

	"driverapp/pkg/logger"
	"driverapp/pkg/models"
	"driverapp/pkg/push"
	"driverapp/storage"
)

type NotificationService interface {
	// Send pushes a message to the driver's device and returns the provider's message id.
	Send(ctx context.Context, req *models.NotifyDriverRequest) (string, error)
	Record(ctx context.Context, req *models.CreateNotificationRequest) (*models.DriverNotification, error)
	ListByDriver(ctx context.Context, driverUID string) ([]*models.DriverNotification, error)
}

type notificationService struct {
	drivers       storage.IDriverStorage
	notifications storage.INotificationStorage
	sender        push.Sender
	log           logger.ILogger
}

func NewNotificationService(stg storage.IStorage, sender push.Sender, log logger.ILogger) NotificationService {
	return &notificationService{
		drivers:       stg.Driver(),
		notifications: stg.Notification(),
		sender:        sender,
		log:           log,
	}
}

func (s *notificationService) Send(ctx context.Context, req *models.NotifyDriverRequest) (string, error) {
	if req.DriverID <= 0 || strings.TrimSpace(req.Title) == "" {
		return "", fmt.Errorf("%w: driverId and title are required", ErrValidation)
	}
	if req.DriverID > models.MaxDriverID {
		return "", fmt.Errorf("%w: driver not found", ErrNotFound)
	}

	token, err := s.drivers.GetFCMToken(ctx, req.DriverID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStore, err)
	}
	if token == nil {
		return "", fmt.Errorf("%w: driver not found", ErrNotFound)
	}
	if *token == "" {
		return "", fmt.Errorf("%w: driver has no FCM token", ErrNotFound)
	}

	id, err := s.sender.Send(ctx, push.Message{
		Token: *token,
		Title: req.Title,
		Body:  req.Body,
		Data:  req.Data,
	})
	if err != nil {
		s.log.Error("failed to send push notification", logger.Int64("driver_id", req.DriverID), logger.Error(err))
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	s.log.Info("push notification sent", logger.Int64("driver_id", req.DriverID), logger.String("message_id", id))
	return id, nil
}

func (s *notificationService) Record(ctx context.Context, req *models.CreateNotificationRequest) (*models.DriverNotification, error) {
	if strings.TrimSpace(req.DriverUID) == "" || strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: driverUid and title are required", ErrValidation)
	}

	n, err := s.notifications.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return n, nil
}

func (s *notificationService) ListByDriver(ctx context.Context, driverUID string) ([]*models.DriverNotification, error) {
	list, err := s.notifications.GetByDriver(ctx, driverUID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if list == nil {
		list = []*models.DriverNotification{}
	}
	return list, nil
}
