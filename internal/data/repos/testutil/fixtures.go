package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, code string) *types.Course {
	tb.Helper()
	c := &types.Course{
		ID:         uuid.New(),
		Code:       code,
		Name:       "course " + code,
		Department: "ECE",
		Credits:    3,
		Level:      20000,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedPlannedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, code, semester string, year int) *types.PlannedCourse {
	tb.Helper()
	pc := &types.PlannedCourse{
		ID:         uuid.New(),
		UserID:     userID,
		CourseCode: code,
		Semester:   semester,
		Year:       year,
		Status:     types.PlannedStatusPlanned,
	}
	if err := tx.WithContext(ctx).Create(pc).Error; err != nil {
		tb.Fatalf("seed planned course: %v", err)
	}
	return pc
}
