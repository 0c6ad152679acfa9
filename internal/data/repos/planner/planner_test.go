package planner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos/testutil"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

func TestPreferencesRepoUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewPreferencesRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "prefsrepo@example.com")

	target := 3.5
	if _, err := repo.Upsert(ctx, tx, &types.UserPreferences{
		ID:          uuid.New(),
		UserID:      u.ID,
		CareerGoals: datatypes.JSONSlice[string]{"ml"},
		TargetGPA:   &target,
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	// Second save replaces the snapshot, keeping one row per user.
	newTarget := 3.8
	if _, err := repo.Upsert(ctx, tx, &types.UserPreferences{
		ID:                  uuid.New(),
		UserID:              u.ID,
		CareerGoals:         datatypes.JSONSlice[string]{"ml", "software"},
		TargetGPA:           &newTarget,
		PreferredDifficulty: "moderate",
	}); err != nil {
		t.Fatalf("Upsert (second): %v", err)
	}

	got, err := repo.GetByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.TargetGPA == nil || *got.TargetGPA != 3.8 {
		t.Fatalf("expected replaced target gpa, got %+v", got.TargetGPA)
	}
	if len(got.CareerGoals) != 2 {
		t.Fatalf("expected replaced career goals, got %v", got.CareerGoals)
	}
	if got.PreferredDifficulty != "moderate" {
		t.Fatalf("expected preferred difficulty, got %q", got.PreferredDifficulty)
	}
}

func TestPlannedCourseRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewPlannedCourseRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "plannerrepo@example.com")

	created, err := repo.Create(ctx, tx, []*types.PlannedCourse{
		{
			ID:         uuid.New(),
			UserID:     u.ID,
			CourseCode: "ECE 20001",
			Semester:   "Fall 2024",
			Year:       2024,
			Status:     types.PlannedStatusPlanned,
		},
		{
			ID:         uuid.New(),
			UserID:     u.ID,
			CourseCode: "ECE 20002",
			Semester:   "Spring 2025",
			Year:       2025,
			Status:     types.PlannedStatusPlanned,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Create: expected 2 rows, got %d", len(created))
	}

	byUser, err := repo.GetByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(byUser) != 2 || byUser[0].CourseCode != "ECE 20001" {
		t.Fatalf("GetByUserID: unexpected rows: %+v", byUser)
	}

	bySemester, err := repo.GetByUserSemester(ctx, tx, u.ID, "Fall 2024")
	if err != nil {
		t.Fatalf("GetByUserSemester: %v", err)
	}
	if len(bySemester) != 1 || bySemester[0].CourseCode != "ECE 20001" {
		t.Fatalf("GetByUserSemester: unexpected rows: %+v", bySemester)
	}

	if err := repo.UpdateStatus(ctx, tx, created[0].ID, types.PlannedStatusCompleted, "A"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	completed, err := repo.GetByUserStatus(ctx, tx, u.ID, types.PlannedStatusCompleted)
	if err != nil {
		t.Fatalf("GetByUserStatus: %v", err)
	}
	if len(completed) != 1 || completed[0].Grade != "A" {
		t.Fatalf("GetByUserStatus: unexpected rows: %+v", completed)
	}

	if err := repo.MoveSemester(ctx, tx, created[1].ID, "Fall 2025", 2025); err != nil {
		t.Fatalf("MoveSemester: %v", err)
	}
	moved, err := repo.GetByUserSemester(ctx, tx, u.ID, "Fall 2025")
	if err != nil {
		t.Fatalf("GetByUserSemester after move: %v", err)
	}
	if len(moved) != 1 || moved[0].CourseCode != "ECE 20002" {
		t.Fatalf("MoveSemester: unexpected rows: %+v", moved)
	}

	if err := repo.SoftDeleteByIDs(ctx, tx, []uuid.UUID{created[0].ID, created[1].ID}); err != nil {
		t.Fatalf("SoftDeleteByIDs: %v", err)
	}
	byUser, err = repo.GetByUserID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("GetByUserID after delete: %v", err)
	}
	if len(byUser) != 0 {
		t.Fatalf("expected soft-deleted rows to be filtered, got %d", len(byUser))
	}
}
