package service

import (
	"context"
	"errors"
	"testing"

	"driverapp/pkg/models"
)

func TestScheduleDefaultsToPending(t *testing.T) {
	svc, _, _ := newTestServices(t)

	ride, err := svc.Ride().Schedule(context.Background(), &models.CreateRideRequest{
		UserID:      strPtr("u1"),
		Pickup:      "Chorsu",
		Destination: "Airport",
		Datetime:    "2025-03-01T09:00:00Z",
	})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if ride.Status != models.RideStatusPending {
		t.Errorf("status = %q, want %q", ride.Status, models.RideStatusPending)
	}

	ride, err = svc.Ride().Schedule(context.Background(), &models.CreateRideRequest{UserID: strPtr("u1"), Status: "Confirmed"})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if ride.Status != "Confirmed" {
		t.Errorf("explicit status overwritten: %q", ride.Status)
	}
}

func TestListByUser(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.Ride().ListByUser(ctx, ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty userId, got %v", err)
	}

	rides, err := svc.Ride().ListByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if rides == nil || len(rides) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", rides)
	}

	for _, dt := range []string{"2025-01-01T10:00:00Z", "2025-03-01T10:00:00Z", "2025-02-01T10:00:00Z"} {
		if _, err := svc.Ride().Schedule(ctx, &models.CreateRideRequest{UserID: strPtr("u2"), Datetime: dt}); err != nil {
			t.Fatalf("Schedule: %v", err)
		}
	}
	if _, err := svc.Ride().Schedule(ctx, &models.CreateRideRequest{UserID: strPtr("other"), Datetime: "2030-01-01"}); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	rides, err = svc.Ride().ListByUser(ctx, "u2")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	want := []string{"2025-03-01T10:00:00Z", "2025-02-01T10:00:00Z", "2025-01-01T10:00:00Z"}
	if len(rides) != len(want) {
		t.Fatalf("expected %d rides, got %d", len(want), len(rides))
	}
	for i, r := range rides {
		if r.Datetime != want[i] {
			t.Errorf("rides[%d].Datetime = %q, want %q", i, r.Datetime, want[i])
		}
	}
}
