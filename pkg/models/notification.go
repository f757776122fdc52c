package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

type DriverNotification struct {
	ID             int64     `json:"id"`
	DriverUID      string    `json:"driver_uid"`
	Title          string    `json:"title"`
	PickupLocation *string   `json:"pickup_location"`
	Destination    *string   `json:"destination"`
	ImageURL       *string   `json:"image_url"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateNotificationRequest struct {
	DriverUID      string  `json:"driverUid"`
	Title          string  `json:"title"`
	PickupLocation *string `json:"pickupLocation"`
	Destination    *string `json:"destination"`
	ImageURL       *string `json:"imageUrl"`
}

type NotifyDriverRequest struct {
	DriverID int64             `json:"driverId"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data"`
}

// UnmarshalJSON accepts driverId as a number or a numeric string; browser
// clients often send ids read from URLs as strings.
func (r *NotifyDriverRequest) UnmarshalJSON(data []byte) error {
	type plain NotifyDriverRequest
	aux := struct {
		*plain
		DriverID json.RawMessage `json:"driverId"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.DriverID = 0
	if len(aux.DriverID) == 0 {
		return nil
	}

	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(aux.DriverID))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var (
		id  int64
		err error
	)
	switch v := raw.(type) {
	case nil:
	case json.Number:
		id, err = v.Int64()
	case string:
		id, err = cast.ToInt64E(strings.TrimSpace(v))
	default:
		err = fmt.Errorf("unsupported type %T", v)
	}
	if err != nil {
		return fmt.Errorf("driverId: %w", err)
	}
	r.DriverID = id
	return nil
}
