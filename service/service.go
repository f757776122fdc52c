package service

import (
	"driverapp/pkg/logger"
	"driverapp/pkg/push"
	"driverapp/storage"
)

type IServiceManager interface {
	Driver() DriverService
	Ride() RideService
	Customer() CustomerService
	Notification() NotificationService
}

type service struct {
	driverService       DriverService
	rideService         RideService
	customerService     CustomerService
	notificationService NotificationService
}

func New(stg storage.IStorage, sender push.Sender, log logger.ILogger) IServiceManager {
	return &service{
		driverService:       NewDriverService(stg, log),
		rideService:         NewRideService(stg, log),
		customerService:     NewCustomerService(stg, log),
		notificationService: NewNotificationService(stg, sender, log),
	}
}

func (s *service) Driver() DriverService {
	return s.driverService
}

func (s *service) Ride() RideService {
	return s.rideService
}

func (s *service) Customer() CustomerService {
	return s.customerService
}

func (s *service) Notification() NotificationService {
	return s.notificationService
}
