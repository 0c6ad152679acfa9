package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos/testutil"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

func TestUserTokenRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserTokenRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "tokenrepo@example.com")

	created, err := repo.Create(ctx, tx, []*types.UserToken{
		{
			ID:           uuid.New(),
			UserID:       u.ID,
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			ExpiresAt:    time.Now().Add(time.Hour),
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Create: expected 1 token, got %d", len(created))
	}

	byUser, err := repo.GetByUserIDs(ctx, tx, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs: %v", err)
	}
	if len(byUser) != 1 {
		t.Fatalf("GetByUserIDs: expected 1 token, got %d", len(byUser))
	}

	byAccess, err := repo.GetByAccessTokens(ctx, tx, []string{"access-1"})
	if err != nil {
		t.Fatalf("GetByAccessTokens: %v", err)
	}
	if len(byAccess) != 1 || byAccess[0].AccessToken != "access-1" {
		t.Fatalf("GetByAccessTokens: unexpected result: %+v", byAccess)
	}

	byRefresh, err := repo.GetByRefreshTokens(ctx, tx, []string{"refresh-1"})
	if err != nil {
		t.Fatalf("GetByRefreshTokens: %v", err)
	}
	if len(byRefresh) != 1 {
		t.Fatalf("GetByRefreshTokens: expected 1 token, got %d", len(byRefresh))
	}

	if err := repo.SoftDeleteByUserIDs(ctx, tx, []uuid.UUID{u.ID}); err != nil {
		t.Fatalf("SoftDeleteByUserIDs: %v", err)
	}
	byUser, err = repo.GetByUserIDs(ctx, tx, []uuid.UUID{u.ID})
	if err != nil {
		t.Fatalf("GetByUserIDs after delete: %v", err)
	}
	if len(byUser) != 0 {
		t.Fatalf("expected soft-deleted tokens to be filtered, got %d", len(byUser))
	}
}
