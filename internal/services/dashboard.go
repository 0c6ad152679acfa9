package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
	"github.com/boilerplan/boilerplan-backend/internal/engine/prereq"
	"github.com/boilerplan/boilerplan-backend/internal/engine/recommend"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

// DegreeCreditTarget is the ECE bachelor's credit requirement the progress
// bar measures against.
const DegreeCreditTarget = 128

const (
	dashboardTopCourses     = 5
	dashboardSuggestCredits = 9
)

// DashboardSummary is the landing-page aggregate.
type DashboardSummary struct {
	CompletedCredits int                      `json:"completedCredits"`
	CreditTarget     int                      `json:"creditTarget"`
	ProgressPercent  float64                  `json:"progressPercent"`
	CompletedCourses []string                 `json:"completedCourses"`
	TopPicks         []recommend.ScoredCourse `json:"topPicks"`
	NextInMajor      []*types.Course          `json:"nextInMajor"`
}

type DashboardService interface {
	Summary(ctx context.Context, userID uuid.UUID) (DashboardSummary, error)
}

type dashboardService struct {
	db          *gorm.DB
	log         *logger.Logger
	courseRepo  repos.CourseRepo
	prefsRepo   repos.PreferencesRepo
	plannedRepo repos.PlannedCourseRepo
	recs        RecommendationService
}

func NewDashboardService(
	db *gorm.DB,
	log *logger.Logger,
	courseRepo repos.CourseRepo,
	prefsRepo repos.PreferencesRepo,
	plannedRepo repos.PlannedCourseRepo,
	recs RecommendationService,
) DashboardService {
	return &dashboardService{
		db:          db,
		log:         log.With("service", "DashboardService"),
		courseRepo:  courseRepo,
		prefsRepo:   prefsRepo,
		plannedRepo: plannedRepo,
		recs:        recs,
	}
}

func (ds *dashboardService) Summary(ctx context.Context, userID uuid.UUID) (DashboardSummary, error) {
	completed, err := completedCourseCodes(ctx, ds.prefsRepo, ds.plannedRepo, userID)
	if err != nil {
		return DashboardSummary{}, err
	}

	completedCourses, err := ds.courseRepo.GetByCodes(ctx, nil, completed)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("load completed courses: %w", err)
	}
	completedCredits := courseutil.TotalCredits(completedCourses)

	progress := float64(completedCredits) / float64(DegreeCreditTarget) * 100
	if progress > 100 {
		progress = 100
	}

	topPicks, err := ds.recs.Recommend(ctx, userID, dashboardTopCourses, "")
	if err != nil {
		return DashboardSummary{}, err
	}

	all, err := ds.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("load catalog: %w", err)
	}
	majorCourses := make([]*types.Course, 0, len(all))
	for _, course := range all {
		if course.IsMajorRequirement {
			majorCourses = append(majorCourses, course)
		}
	}
	nextInMajor := prereq.SuggestNextCourses(majorCourses, completed, dashboardSuggestCredits)

	return DashboardSummary{
		CompletedCredits: completedCredits,
		CreditTarget:     DegreeCreditTarget,
		ProgressPercent:  progress,
		CompletedCourses: completed,
		TopPicks:         topPicks,
		NextInMajor:      nextInMajor,
	}, nil
}
