package models

import "time"

type CustomerProfile struct {
	ID              int64     `json:"id"`
	UID             string    `json:"uid"`
	Name            *string   `json:"name"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpsertCustomerRequest struct {
	UID             string  `json:"uid"`
	Name            *string `json:"name"`
	ProfileImageURL string  `json:"profileImageUrl"`
}
