package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

const catalogSource = "catalog"

const (
	scrapeStatusRunning   = "running"
	scrapeStatusSucceeded = "succeeded"
	scrapeStatusFailed    = "failed"
)

// CourseSource produces catalog course records, typically by scraping.
type CourseSource interface {
	Scrape(ctx context.Context) ([]*types.Course, error)
}

type ScraperService interface {
	RunCatalogScrape(ctx context.Context) (*types.ScrapeRun, error)
	LatestRun(ctx context.Context) (*types.ScrapeRun, error)
}

type scraperService struct {
	db            *gorm.DB
	log           *logger.Logger
	source        CourseSource
	courseRepo    repos.CourseRepo
	scrapeRunRepo repos.ScrapeRunRepo
}

func NewScraperService(
	db *gorm.DB,
	log *logger.Logger,
	source CourseSource,
	courseRepo repos.CourseRepo,
	scrapeRunRepo repos.ScrapeRunRepo,
) ScraperService {
	return &scraperService{
		db:            db,
		log:           log.With("service", "ScraperService"),
		source:        source,
		courseRepo:    courseRepo,
		scrapeRunRepo: scrapeRunRepo,
	}
}

// RunCatalogScrape pulls the catalog, upserts every course by code and
// records the run. The run row is created up front so failures are visible
// in the log table too.
func (ss *scraperService) RunCatalogScrape(ctx context.Context) (*types.ScrapeRun, error) {
	started := time.Now()
	run, err := ss.scrapeRunRepo.Create(ctx, nil, &types.ScrapeRun{
		Source: catalogSource,
		Status: scrapeStatusRunning,
	})
	if err != nil {
		return nil, fmt.Errorf("create scrape run: %w", err)
	}

	courses, scrapeErr := ss.source.Scrape(ctx)
	if scrapeErr == nil && len(courses) > 0 {
		_, scrapeErr = ss.courseRepo.UpsertByCode(ctx, nil, courses)
	}

	fields := map[string]interface{}{
		"records":     len(courses),
		"duration_ms": time.Since(started).Milliseconds(),
	}
	if scrapeErr != nil {
		fields["status"] = scrapeStatusFailed
		fields["error"] = scrapeErr.Error()
	} else {
		fields["status"] = scrapeStatusSucceeded
	}
	if uErr := ss.scrapeRunRepo.Update(ctx, nil, run.ID, fields); uErr != nil {
		ss.log.Warn("Failed to finalize scrape run", "run_id", run.ID.String(), "error", uErr.Error())
	}
	if scrapeErr != nil {
		return nil, fmt.Errorf("catalog scrape: %w", scrapeErr)
	}

	ss.log.Info("Catalog scrape finished", "records", len(courses), "duration_ms", time.Since(started).Milliseconds())
	return ss.scrapeRunRepo.Latest(ctx, nil, catalogSource)
}

func (ss *scraperService) LatestRun(ctx context.Context) (*types.ScrapeRun, error) {
	run, err := ss.scrapeRunRepo.Latest(ctx, nil, catalogSource)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no scrape has run yet")
	}
	if err != nil {
		return nil, fmt.Errorf("get latest scrape run: %w", err)
	}
	return run, nil
}
