package planner

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

type PreferencesRepo interface {
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error)
	Upsert(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error)
}

type preferencesRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) PreferencesRepo {
	repoLog := baseLog.With("repo", "PreferencesRepo")
	return &preferencesRepo{db: db, log: repoLog}
}

func (pr *preferencesRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.UserPreferences
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// Upsert keeps one row per user; a second save replaces the questionnaire
// snapshot wholesale.
func (pr *preferencesRepo) Upsert(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"career_goals", "interests", "target_gpa", "max_workload_hours",
				"preferred_difficulty", "completed_courses",
				"current_semester", "graduation_semester", "updated_at",
			}),
		}).
		Create(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}
