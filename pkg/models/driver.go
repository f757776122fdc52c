package models

import "math"

// MaxDriverID is the largest id drivers.id (SERIAL, int4) can hold.
const MaxDriverID = math.MaxInt32

type Driver struct {
	ID             int64    `json:"id"`
	UID            *string  `json:"uid"`
	Name           string   `json:"name"`
	Subname        string   `json:"subname"`
	CarName        string   `json:"car_name"`
	Plate          string   `json:"plate"`
	DriverImageURL *string  `json:"driver_image_url"`
	CarImageURL    *string  `json:"car_image_url"`
	Tasks          []string `json:"tasks"`
	FCMToken       *string  `json:"fcm_token"`
}

// DriverProjection is the public view of a driver; it never carries the push token.
type DriverProjection struct {
	ID             int64    `json:"id"`
	UID            *string  `json:"uid"`
	Name           string   `json:"name"`
	Subname        string   `json:"subname"`
	CarName        string   `json:"car_name"`
	Plate          string   `json:"plate"`
	DriverImageURL *string  `json:"driver_image_url"`
	CarImageURL    *string  `json:"car_image_url"`
	Tasks          []string `json:"tasks"`
}

func (d *Driver) Projection() *DriverProjection {
	return &DriverProjection{
		ID:             d.ID,
		UID:            d.UID,
		Name:           d.Name,
		Subname:        d.Subname,
		CarName:        d.CarName,
		Plate:          d.Plate,
		DriverImageURL: d.DriverImageURL,
		CarImageURL:    d.CarImageURL,
		Tasks:          d.Tasks,
	}
}

type RegisterDriverRequest struct {
	UID            *string  `json:"uid"`
	Name           string   `json:"name"`
	Subname        string   `json:"subname"`
	CarName        string   `json:"carName"`
	Plate          string   `json:"plate"`
	DriverImageURL *string  `json:"driverImageUrl"`
	CarImageURL    *string  `json:"carImageUrl"`
	Tasks          []string `json:"tasks"`
	FCMToken       *string  `json:"fcmToken"`
}

type UpdateFCMTokenRequest struct {
	UID      string `json:"uid"`
	FCMToken string `json:"fcmToken"`
}
