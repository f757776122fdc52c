package models

import "time"

// RideStatus is free text; only the default is known to the backend.
type RideStatus string

const RideStatusPending RideStatus = "Pending"

type ScheduledRide struct {
	ID            int64      `json:"id"`
	UserID        *string    `json:"user_id"`
	DriverName    string     `json:"driver_name"`
	Car           string     `json:"car"`
	Plate         string     `json:"plate"`
	Pickup        string     `json:"pickup"`
	Destination   string     `json:"destination"`
	Datetime      string     `json:"datetime"`
	PaymentMethod string     `json:"payment_method"`
	Distance      string     `json:"distance"`
	EstimatedTime string     `json:"estimated_time"`
	Price         string     `json:"price"`
	Status        RideStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateRideRequest struct {
	UserID        *string    `json:"userId"`
	DriverName    string     `json:"driverName"`
	Car           string     `json:"car"`
	Plate         string     `json:"plate"`
	Pickup        string     `json:"pickup"`
	Destination   string     `json:"destination"`
	Datetime      string     `json:"datetime"`
	PaymentMethod string     `json:"paymentMethod"`
	Distance      string     `json:"distance"`
	EstimatedTime string     `json:"estimatedTime"`
	Price         string     `json:"price"`
	Status        RideStatus `json:"status"`
}
