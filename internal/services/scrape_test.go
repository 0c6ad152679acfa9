package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

type stubSource struct {
	courses []*types.Course
	err     error
}

func (s *stubSource) Scrape(ctx context.Context) ([]*types.Course, error) {
	return s.courses, s.err
}

type fakeCourseRepo struct {
	byCode map[string]*types.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{byCode: map[string]*types.Course{}}
}

func (f *fakeCourseRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	out := []*types.Course{}
	for _, c := range f.byCode {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByCodes(ctx context.Context, tx *gorm.DB, codes []string) ([]*types.Course, error) {
	out := []*types.Course{}
	for _, code := range codes {
		if c, ok := f.byCode[code]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByCode(ctx context.Context, tx *gorm.DB, code string) (*types.Course, error) {
	if c, ok := f.byCode[code]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCourseRepo) GetByDepartment(ctx context.Context, tx *gorm.DB, department string) ([]*types.Course, error) {
	return f.GetAll(ctx, tx)
}

func (f *fakeCourseRepo) UpsertByCode(ctx context.Context, tx *gorm.DB, courses []*types.Course) ([]*types.Course, error) {
	for _, c := range courses {
		f.byCode[c.Code] = c
	}
	return courses, nil
}

func (f *fakeCourseRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return int64(len(f.byCode)), nil
}

type fakeScrapeRunRepo struct {
	runs []*types.ScrapeRun
}

func (f *fakeScrapeRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.ScrapeRun) (*types.ScrapeRun, error) {
	run.ID = uuid.New()
	f.runs = append(f.runs, run)
	return run, nil
}

func (f *fakeScrapeRunRepo) Update(ctx context.Context, tx *gorm.DB, runID uuid.UUID, fields map[string]interface{}) error {
	for _, run := range f.runs {
		if run.ID != runID {
			continue
		}
		if v, ok := fields["status"].(string); ok {
			run.Status = v
		}
		if v, ok := fields["records"].(int); ok {
			run.Records = v
		}
		if v, ok := fields["duration_ms"].(int64); ok {
			run.DurationMS = v
		}
		if v, ok := fields["error"].(string); ok {
			run.Error = v
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeScrapeRunRepo) Latest(ctx context.Context, tx *gorm.DB, source string) (*types.ScrapeRun, error) {
	for i := len(f.runs) - 1; i >= 0; i-- {
		if f.runs[i].Source == source {
			return f.runs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	logg, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return logg
}

func TestRunCatalogScrapeSuccess(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	runRepo := &fakeScrapeRunRepo{}
	source := &stubSource{courses: []*types.Course{
		{Code: "ECE 20001", Name: "Electrical Engineering Fundamentals I", Credits: 3},
		{Code: "ECE 26400", Name: "Advanced C Programming", Credits: 3},
	}}

	svc := NewScraperService(nil, testLogger(t), source, courseRepo, runRepo)

	run, err := svc.RunCatalogScrape(context.Background())
	if err != nil {
		t.Fatalf("RunCatalogScrape: %v", err)
	}
	if run.Status != scrapeStatusSucceeded {
		t.Errorf("status = %q, want %q", run.Status, scrapeStatusSucceeded)
	}
	if run.Records != 2 {
		t.Errorf("records = %d, want 2", run.Records)
	}

	count, _ := courseRepo.Count(context.Background(), nil)
	if count != 2 {
		t.Errorf("stored courses = %d, want 2", count)
	}
}

func TestRunCatalogScrapeFailureRecordsRun(t *testing.T) {
	courseRepo := newFakeCourseRepo()
	runRepo := &fakeScrapeRunRepo{}
	source := &stubSource{err: fmt.Errorf("connection reset")}

	svc := NewScraperService(nil, testLogger(t), source, courseRepo, runRepo)

	if _, err := svc.RunCatalogScrape(context.Background()); err == nil {
		t.Fatal("expected error from failing source")
	}

	run, err := runRepo.Latest(context.Background(), nil, catalogSource)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if run.Status != scrapeStatusFailed {
		t.Errorf("status = %q, want %q", run.Status, scrapeStatusFailed)
	}
	if run.Error == "" {
		t.Error("expected error message recorded on run")
	}

	count, _ := courseRepo.Count(context.Background(), nil)
	if count != 0 {
		t.Errorf("stored courses = %d, want 0", count)
	}
}

func TestLatestRunEmpty(t *testing.T) {
	svc := NewScraperService(nil, testLogger(t), &stubSource{}, newFakeCourseRepo(), &fakeScrapeRunRepo{})
	if _, err := svc.LatestRun(context.Background()); err == nil {
		t.Fatal("expected error when no run exists")
	}
}
