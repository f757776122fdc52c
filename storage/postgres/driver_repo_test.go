package postgres

import (
	"context"
	"testing"

	"driverapp/pkg/logger"
)

func TestDriverIDOutsideInt4NeedsNoDatabase(t *testing.T) {
	repo := NewDriverRepo(nil, logger.NewNop())
	ctx := context.Background()

	for _, id := range []int64{0, -1, 2147483648, 3000000000} {
		d, err := repo.GetByID(ctx, id)
		if err != nil || d != nil {
			t.Errorf("GetByID(%d) = %+v, %v; want nil, nil", id, d, err)
		}
		token, err := repo.GetFCMToken(ctx, id)
		if err != nil || token != nil {
			t.Errorf("GetFCMToken(%d) = %v, %v; want nil, nil", id, token, err)
		}
	}
}
