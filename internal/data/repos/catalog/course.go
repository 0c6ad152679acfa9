package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

type CourseRepo interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	GetByCodes(ctx context.Context, tx *gorm.DB, codes []string) ([]*types.Course, error)
	GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Course, error)
	GetByDepartment(ctx context.Context, tx *gorm.DB, department string) ([]*types.Course, error)
	UpsertByCode(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (cr *courseRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Course
	if err := transaction.WithContext(ctx).
		Order("code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *courseRepo) GetByCodes(ctx context.Context, tx *gorm.DB, codes []string) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Course
	if len(codes) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("code IN ?", codes).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *courseRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Course
	if err := transaction.WithContext(ctx).
		Where("code = ?", code).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cr *courseRepo) GetByDepartment(ctx context.Context, tx *gorm.DB, department string) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*types.Course
	if err := transaction.WithContext(ctx).
		Where("department = ?", department).
		Order("code ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertByCode inserts courses, replacing catalog data for codes that
// already exist. Used by the scraper and the seeder; course code is the
// stable identity across runs.
func (cr *courseRepo) UpsertByCode(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(courses) == 0 {
		return []*types.Course{}, nil
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "department", "credits", "level",
				"avg_gpa", "difficulty_rating", "workload_hours", "review_count",
				"prerequisites", "corequisites", "semesters",
				"career_tags", "interest_tags",
				"is_major_requirement", "is_tech_elective", "is_gen_ed", "is_lab_credit",
				"requirement_category", "updated_at",
			}),
		}).
		Create(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (cr *courseRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Course{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
