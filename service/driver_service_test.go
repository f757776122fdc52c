package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"driverapp/pkg/models"
)

func TestRegisterThenExists(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	registered := registerDriver(t, svc, "drv-1", nil)

	got, exists, err := svc.Driver().Exists(ctx, "drv-1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatal("expected driver to exist")
	}
	if diff := cmp.Diff(registered, got); diff != "" {
		t.Errorf("driver mismatch (-registered +exists):\n%s", diff)
	}

	_, exists, err = svc.Driver().Exists(ctx, "nobody")
	if err != nil {
		t.Fatalf("Exists for unknown uid returned error: %v", err)
	}
	if exists {
		t.Error("expected unknown uid to not exist")
	}
}

func TestRegisterWithoutTasksIsStoreError(t *testing.T) {
	svc, stg, _ := newTestServices(t)

	_, err := svc.Driver().Register(context.Background(), &models.RegisterDriverRequest{
		Name: "No", Subname: "Tasks", CarName: "Nexia", Plate: "X",
	})
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if stg.DriverCount() != 0 {
		t.Errorf("expected no driver rows, got %d", stg.DriverCount())
	}
}

func TestGetByIDProjectionOmitsToken(t *testing.T) {
	svc, _, _ := newTestServices(t)
	d := registerDriver(t, svc, "drv-2", strPtr("token-2"))

	p, err := svc.Driver().GetByID(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if diff := cmp.Diff(d.Projection(), p); diff != "" {
		t.Errorf("projection mismatch:\n%s", diff)
	}

	if _, err := svc.Driver().GetByID(context.Background(), d.ID+100); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestGetByIDOutsideInt4SkipsStore(t *testing.T) {
	svc, stg, _ := newTestServices(t)
	stg.Err = errors.New("greater than maximum value for int4")

	for _, id := range []int64{0, -7, models.MaxDriverID + 1, 3000000000} {
		if _, err := svc.Driver().GetByID(context.Background(), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetByID(%d): expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestGetByUIDNotFound(t *testing.T) {
	svc, _, _ := newTestServices(t)
	if _, err := svc.Driver().GetByUID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateFCMToken(t *testing.T) {
	svc, stg, _ := newTestServices(t)
	ctx := context.Background()
	registerDriver(t, svc, "drv-3", nil)

	tests := []struct {
		name    string
		req     models.UpdateFCMTokenRequest
		wantErr error
	}{
		{name: "missing uid", req: models.UpdateFCMTokenRequest{FCMToken: "t"}, wantErr: ErrValidation},
		{name: "missing token", req: models.UpdateFCMTokenRequest{UID: "drv-3"}, wantErr: ErrValidation},
		{name: "unknown uid", req: models.UpdateFCMTokenRequest{UID: "ghost", FCMToken: "t"}, wantErr: ErrNotFound},
		{name: "ok", req: models.UpdateFCMTokenRequest{UID: "drv-3", FCMToken: "fresh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := svc.Driver().UpdateFCMToken(ctx, &tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.FCMToken == nil || *d.FCMToken != "fresh" {
				t.Errorf("token not updated: %v", d.FCMToken)
			}
		})
	}

	if stg.DriverCount() != 1 {
		t.Errorf("token updates must not insert rows, have %d drivers", stg.DriverCount())
	}
}

func TestGetAllReturnsEveryDriver(t *testing.T) {
	svc, _, _ := newTestServices(t)
	registerDriver(t, svc, "a", nil)
	registerDriver(t, svc, "b", nil)

	drivers, err := svc.Driver().GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(drivers) != 2 {
		t.Errorf("expected 2 drivers, got %d", len(drivers))
	}
}
