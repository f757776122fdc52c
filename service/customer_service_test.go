package service

import (
	"context"
	"errors"
	"testing"

	"driverapp/pkg/models"
)

func TestUpsertValidation(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.Customer().Upsert(ctx, &models.UpsertCustomerRequest{ProfileImageURL: "x"}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing uid: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Customer().Upsert(ctx, &models.UpsertCustomerRequest{UID: "c1"}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing image: expected ErrValidation, got %v", err)
	}
}

func TestUpsertOverwritesImageAndKeepsName(t *testing.T) {
	svc, stg, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.Customer().Upsert(ctx, &models.UpsertCustomerRequest{
		UID: "c1", Name: strPtr("Dilnoza"), ProfileImageURL: "https://img/1.png",
	}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// empty name is treated as absent
	p, err := svc.Customer().Upsert(ctx, &models.UpsertCustomerRequest{
		UID: "c1", Name: strPtr(""), ProfileImageURL: "https://img/2.png",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if stg.CustomerCount() != 1 {
		t.Fatalf("expected exactly one profile row, got %d", stg.CustomerCount())
	}
	if p.ProfileImageURL != "https://img/2.png" {
		t.Errorf("image = %q, want second url", p.ProfileImageURL)
	}
	if p.Name == nil || *p.Name != "Dilnoza" {
		t.Errorf("name not preserved: %v", p.Name)
	}

	p, err = svc.Customer().Upsert(ctx, &models.UpsertCustomerRequest{
		UID: "c1", Name: strPtr("Dilnoza K."), ProfileImageURL: "https://img/2.png",
	})
	if err != nil {
		t.Fatalf("third upsert: %v", err)
	}
	if *p.Name != "Dilnoza K." {
		t.Errorf("new name should win, got %q", *p.Name)
	}
}

func TestCustomerGetByUIDNotFound(t *testing.T) {
	svc, _, _ := newTestServices(t)
	if _, err := svc.Customer().GetByUID(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
