package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

type ScrapeRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.ScrapeRun) (*types.ScrapeRun, error)
	Update(ctx context.Context, tx *gorm.DB, runID uuid.UUID, fields map[string]interface{}) error
	Latest(ctx context.Context, tx *gorm.DB, source string) (*types.ScrapeRun, error)
}

type scrapeRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScrapeRunRepo(db *gorm.DB, baseLog *logger.Logger) ScrapeRunRepo {
	repoLog := baseLog.With("repo", "ScrapeRunRepo")
	return &scrapeRunRepo{db: db, log: repoLog}
}

func (srr *scrapeRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.ScrapeRun) (*types.ScrapeRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = srr.db
	}

	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (srr *scrapeRunRepo) Update(ctx context.Context, tx *gorm.DB, runID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = srr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.ScrapeRun{}).
		Where("id = ?", runID).
		Updates(fields).Error
}

func (srr *scrapeRunRepo) Latest(ctx context.Context, tx *gorm.DB, source string) (*types.ScrapeRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = srr.db
	}

	var result types.ScrapeRun
	if err := transaction.WithContext(ctx).
		Where("source = ?", source).
		Order("created_at DESC").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
