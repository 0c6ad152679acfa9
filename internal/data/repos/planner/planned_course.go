package planner

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

type PlannedCourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, planned []*types.PlannedCourse) ([]*types.PlannedCourse, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.PlannedCourse, error)
	GetByUserSemester(ctx context.Context, tx *gorm.DB, userID uuid.UUID, semester string) ([]*types.PlannedCourse, error)
	GetByUserStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.PlannedCourse, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, plannedID uuid.UUID, status, grade string) error
	MoveSemester(ctx context.Context, tx *gorm.DB, plannedID uuid.UUID, semester string, year int) error
	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, plannedIDs []uuid.UUID) error
}

type plannedCourseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlannedCourseRepo(db *gorm.DB, baseLog *logger.Logger) PlannedCourseRepo {
	repoLog := baseLog.With("repo", "PlannedCourseRepo")
	return &plannedCourseRepo{db: db, log: repoLog}
}

func (pcr *plannedCourseRepo) Create(ctx context.Context, tx *gorm.DB, planned []*types.PlannedCourse) ([]*types.PlannedCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = pcr.db
	}

	if len(planned) == 0 {
		return []*types.PlannedCourse{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&planned).Error; err != nil {
		return nil, err
	}
	return planned, nil
}

func (pcr *plannedCourseRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.PlannedCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = pcr.db
	}

	var results []*types.PlannedCourse
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year ASC, semester ASC, course_code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pcr *plannedCourseRepo) GetByUserSemester(ctx context.Context, tx *gorm.DB, userID uuid.UUID, semester string) ([]*types.PlannedCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = pcr.db
	}

	var results []*types.PlannedCourse
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND semester = ?", userID, semester).
		Order("course_code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pcr *plannedCourseRepo) GetByUserStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.PlannedCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = pcr.db
	}

	var results []*types.PlannedCourse
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("year ASC, semester ASC, course_code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pcr *plannedCourseRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, plannedID uuid.UUID, status, grade string) error {
	transaction := tx
	if transaction == nil {
		transaction = pcr.db
	}

	fields := map[string]interface{}{"status": status}
	if grade != "" {
		fields["grade"] = grade
	}

	return transaction.WithContext(ctx).
		Model(&types.PlannedCourse{}).
		Where("id = ?", plannedID).
		Updates(fields).Error
}

func (pcr *plannedCourseRepo) MoveSemester(ctx context.Context, tx *gorm.DB, plannedID uuid.UUID, semester string, year int) error {
	transaction := tx
	if transaction == nil {
		transaction = pcr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.PlannedCourse{}).
		Where("id = ?", plannedID).
		Updates(map[string]interface{}{
			"semester": semester,
			"year":     year,
		}).Error
}

func (pcr *plannedCourseRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, plannedIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pcr.db
	}

	if len(plannedIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("id IN ?", plannedIDs).
		Delete(&types.PlannedCourse{}).Error
}
