package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/gpaopt"
	"github.com/boilerplan/boilerplan-backend/internal/engine/prereq"
	"github.com/boilerplan/boilerplan-backend/internal/engine/recommend"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

// DefaultRecommendationLimit caps the recommendations endpoint payload.
const DefaultRecommendationLimit = 20

type RecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID, limit int, careerTag string) ([]recommend.ScoredCourse, error)
	OptimizeSemester(ctx context.Context, userID uuid.UUID, constraints gpaopt.Constraints) (gpaopt.Result, error)
	GPABoostCourses(ctx context.Context, userID uuid.UUID, currentGPA float64, currentCredits int, targetGPA float64, maxCourses int) ([]*types.Course, error)
	SemesterRisk(ctx context.Context, userID uuid.UUID, semester string) (gpaopt.RiskAssessment, error)
	SuggestNextCourses(ctx context.Context, userID uuid.UUID, targetCredits int) ([]*types.Course, error)
}

type recommendationService struct {
	db          *gorm.DB
	log         *logger.Logger
	courseRepo  repos.CourseRepo
	prefsRepo   repos.PreferencesRepo
	plannedRepo repos.PlannedCourseRepo
}

func NewRecommendationService(
	db *gorm.DB,
	log *logger.Logger,
	courseRepo repos.CourseRepo,
	prefsRepo repos.PreferencesRepo,
	plannedRepo repos.PlannedCourseRepo,
) RecommendationService {
	return &recommendationService{
		db:          db,
		log:         log.With("service", "RecommendationService"),
		courseRepo:  courseRepo,
		prefsRepo:   prefsRepo,
		plannedRepo: plannedRepo,
	}
}

// Recommend ranks the whole catalog against the user's preferences and
// returns the prerequisite-ready top slice.
func (rs *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int, careerTag string) ([]recommend.ScoredCourse, error) {
	courses, prefs, completed, err := rs.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	scored := recommend.RankAll(courses, prefs, completed)
	if careerTag != "" {
		scored = recommend.FilterByCareer(scored, careerTag)
	}
	return recommend.TopN(scored, limit, recommend.DefaultMinPrereqScore), nil
}

// OptimizeSemester runs the optimizer over courses the user can actually
// take: prerequisites met, nothing already completed.
func (rs *recommendationService) OptimizeSemester(ctx context.Context, userID uuid.UUID, constraints gpaopt.Constraints) (gpaopt.Result, error) {
	courses, _, completed, err := rs.snapshot(ctx, userID)
	if err != nil {
		return gpaopt.Result{}, err
	}
	available := prereq.AvailableCourses(courses, completed)
	return gpaopt.Optimize(available, constraints), nil
}

func (rs *recommendationService) GPABoostCourses(ctx context.Context, userID uuid.UUID, currentGPA float64, currentCredits int, targetGPA float64, maxCourses int) ([]*types.Course, error) {
	courses, _, completed, err := rs.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	available := prereq.AvailableCourses(courses, completed)
	return gpaopt.FindGPABoostCourses(available, currentGPA, currentCredits, targetGPA, maxCourses)
}

func (rs *recommendationService) SemesterRisk(ctx context.Context, userID uuid.UUID, semester string) (gpaopt.RiskAssessment, error) {
	planned, err := rs.plannedRepo.GetByUserSemester(ctx, nil, userID, semester)
	if err != nil {
		return gpaopt.RiskAssessment{}, fmt.Errorf("load semester plan: %w", err)
	}
	codes := make([]string, 0, len(planned))
	for _, pc := range planned {
		codes = append(codes, pc.CourseCode)
	}
	courses, err := rs.courseRepo.GetByCodes(ctx, nil, codes)
	if err != nil {
		return gpaopt.RiskAssessment{}, fmt.Errorf("load courses: %w", err)
	}
	return gpaopt.AnalyzeRisk(courses), nil
}

func (rs *recommendationService) SuggestNextCourses(ctx context.Context, userID uuid.UUID, targetCredits int) ([]*types.Course, error) {
	courses, _, completed, err := rs.snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return prereq.SuggestNextCourses(courses, completed, targetCredits), nil
}

func (rs *recommendationService) snapshot(ctx context.Context, userID uuid.UUID) ([]*types.Course, *types.UserPreferences, []string, error) {
	courses, err := rs.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	completed, err := completedCourseCodes(ctx, rs.prefsRepo, rs.plannedRepo, userID)
	if err != nil {
		return nil, nil, nil, err
	}

	// Users who never filled the questionnaire get neutral scoring.
	prefs, err := rs.prefsRepo.GetByUserID(ctx, nil, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = &types.UserPreferences{UserID: userID}
	} else if err != nil {
		return nil, nil, nil, fmt.Errorf("get preferences: %w", err)
	}
	return courses, prefs, completed, nil
}
