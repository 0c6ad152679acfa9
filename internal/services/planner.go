package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
	"github.com/boilerplan/boilerplan-backend/internal/engine/schedule"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

// PlanSemester is one semester column on the planner board.
type PlanSemester struct {
	Semester     string                 `json:"semester"`
	TotalCredits int                    `json:"totalCredits"`
	Courses      []*types.PlannedCourse `json:"courses"`
}

// PlannedCourseUpdate carries the mutable fields of a planner entry. Nil
// means leave unchanged.
type PlannedCourseUpdate struct {
	Semester *string `json:"semester,omitempty"`
	Status   *string `json:"status,omitempty"`
	Grade    *string `json:"grade,omitempty"`
}

type PlannerService interface {
	ListPlan(ctx context.Context, userID uuid.UUID) ([]PlanSemester, error)
	AddCourse(ctx context.Context, userID uuid.UUID, courseCode, semester, status string) (*types.PlannedCourse, error)
	UpdateCourse(ctx context.Context, userID, plannedID uuid.UUID, update PlannedCourseUpdate) error
	RemoveCourse(ctx context.Context, userID, plannedID uuid.UUID) error
	AnalyzePlan(ctx context.Context, userID uuid.UUID) (schedule.Analysis, error)
	GPAImpact(ctx context.Context, userID uuid.UUID, currentGPA float64, currentCredits int, semester string) (schedule.GPAImpact, error)
}

type plannerService struct {
	db          *gorm.DB
	log         *logger.Logger
	plannedRepo repos.PlannedCourseRepo
	courseRepo  repos.CourseRepo
	prefsRepo   repos.PreferencesRepo
}

func NewPlannerService(
	db *gorm.DB,
	log *logger.Logger,
	plannedRepo repos.PlannedCourseRepo,
	courseRepo repos.CourseRepo,
	prefsRepo repos.PreferencesRepo,
) PlannerService {
	return &plannerService{
		db:          db,
		log:         log.With("service", "PlannerService"),
		plannedRepo: plannedRepo,
		courseRepo:  courseRepo,
		prefsRepo:   prefsRepo,
	}
}

func (ps *plannerService) ListPlan(ctx context.Context, userID uuid.UUID) ([]PlanSemester, error) {
	planned, err := ps.plannedRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}

	courses, err := ps.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog := courseutil.NewCatalog(courses)

	grouped := map[string]*PlanSemester{}
	order := []string{}
	for _, pc := range planned {
		group, ok := grouped[pc.Semester]
		if !ok {
			group = &PlanSemester{Semester: pc.Semester}
			grouped[pc.Semester] = group
			order = append(order, pc.Semester)
		}
		group.Courses = append(group.Courses, pc)
		if course, found := catalog.Lookup(pc.CourseCode); found {
			group.TotalCredits += course.Credits
		}
	}

	semesters := make([]PlanSemester, 0, len(order))
	for _, sem := range order {
		semesters = append(semesters, *grouped[sem])
	}
	return semesters, nil
}

func (ps *plannerService) AddCourse(ctx context.Context, userID uuid.UUID, courseCode, semester, status string) (*types.PlannedCourse, error) {
	if courseCode == "" || semester == "" {
		return nil, fmt.Errorf("course code and semester are required")
	}
	if status == "" {
		status = types.PlannedStatusPlanned
	}
	if err := validatePlannedStatus(status); err != nil {
		return nil, err
	}

	course, err := ps.courseRepo.GetByCode(ctx, nil, courseCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("course %s not found", courseCode)
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	planned := &types.PlannedCourse{
		ID:         uuid.New(),
		UserID:     userID,
		CourseCode: course.Code,
		Semester:   semester,
		Year:       courseutil.SemesterYear(semester, time.Now().Year()),
		Status:     status,
	}
	if _, cErr := ps.plannedRepo.Create(ctx, nil, []*types.PlannedCourse{planned}); cErr != nil {
		return nil, fmt.Errorf("add planned course: %w", cErr)
	}
	return planned, nil
}

func (ps *plannerService) UpdateCourse(ctx context.Context, userID, plannedID uuid.UUID, update PlannedCourseUpdate) error {
	owned, err := ps.ownedPlanned(ctx, userID, plannedID)
	if err != nil {
		return err
	}

	return ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if update.Semester != nil && *update.Semester != owned.Semester {
			year := courseutil.SemesterYear(*update.Semester, owned.Year)
			if mErr := ps.plannedRepo.MoveSemester(ctx, tx, plannedID, *update.Semester, year); mErr != nil {
				return fmt.Errorf("move semester: %w", mErr)
			}
		}
		if update.Status != nil || update.Grade != nil {
			status := owned.Status
			if update.Status != nil {
				status = *update.Status
			}
			if vErr := validatePlannedStatus(status); vErr != nil {
				return vErr
			}
			grade := ""
			if update.Grade != nil {
				grade = *update.Grade
			}
			if uErr := ps.plannedRepo.UpdateStatus(ctx, tx, plannedID, status, grade); uErr != nil {
				return fmt.Errorf("update status: %w", uErr)
			}
		}
		return nil
	})
}

func (ps *plannerService) RemoveCourse(ctx context.Context, userID, plannedID uuid.UUID) error {
	if _, err := ps.ownedPlanned(ctx, userID, plannedID); err != nil {
		return err
	}
	if err := ps.plannedRepo.SoftDeleteByIDs(ctx, nil, []uuid.UUID{plannedID}); err != nil {
		return fmt.Errorf("remove planned course: %w", err)
	}
	return nil
}

func (ps *plannerService) AnalyzePlan(ctx context.Context, userID uuid.UUID) (schedule.Analysis, error) {
	planned, err := ps.plannedRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return schedule.Analysis{}, fmt.Errorf("load plan: %w", err)
	}
	courses, err := ps.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return schedule.Analysis{}, fmt.Errorf("load catalog: %w", err)
	}
	completed, err := completedCourseCodes(ctx, ps.prefsRepo, ps.plannedRepo, userID)
	if err != nil {
		return schedule.Analysis{}, err
	}

	active := make([]*types.PlannedCourse, 0, len(planned))
	for _, pc := range planned {
		if pc.Status != types.PlannedStatusCompleted {
			active = append(active, pc)
		}
	}
	return schedule.Analyze(active, courseutil.NewCatalog(courses), completed), nil
}

// GPAImpact projects the GPA effect of one semester's planned courses.
func (ps *plannerService) GPAImpact(ctx context.Context, userID uuid.UUID, currentGPA float64, currentCredits int, semester string) (schedule.GPAImpact, error) {
	planned, err := ps.plannedRepo.GetByUserSemester(ctx, nil, userID, semester)
	if err != nil {
		return schedule.GPAImpact{}, fmt.Errorf("load semester plan: %w", err)
	}
	codes := make([]string, 0, len(planned))
	for _, pc := range planned {
		codes = append(codes, pc.CourseCode)
	}
	courses, err := ps.courseRepo.GetByCodes(ctx, nil, codes)
	if err != nil {
		return schedule.GPAImpact{}, fmt.Errorf("load courses: %w", err)
	}
	return schedule.CalculateGPAImpact(currentGPA, currentCredits, courses)
}

func (ps *plannerService) ownedPlanned(ctx context.Context, userID, plannedID uuid.UUID) (*types.PlannedCourse, error) {
	planned, err := ps.plannedRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	for _, pc := range planned {
		if pc.ID == plannedID {
			return pc, nil
		}
	}
	return nil, fmt.Errorf("planned course not found")
}

func validatePlannedStatus(status string) error {
	switch status {
	case types.PlannedStatusPlanned, types.PlannedStatusInProgress, types.PlannedStatusCompleted:
		return nil
	}
	return fmt.Errorf("unknown planned status %q", status)
}

// completedCourseCodes merges the questionnaire's self-reported history with
// planner entries marked completed.
func completedCourseCodes(
	ctx context.Context,
	prefsRepo repos.PreferencesRepo,
	plannedRepo repos.PlannedCourseRepo,
	userID uuid.UUID,
) ([]string, error) {
	seen := map[string]struct{}{}
	completed := []string{}

	prefs, err := prefsRepo.GetByUserID(ctx, nil, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	if prefs != nil {
		for _, code := range prefs.CompletedCourses {
			canonical := courseutil.CanonicalCode(code)
			if _, dup := seen[canonical]; dup {
				continue
			}
			seen[canonical] = struct{}{}
			completed = append(completed, code)
		}
	}

	done, err := plannedRepo.GetByUserStatus(ctx, nil, userID, types.PlannedStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("get completed planner entries: %w", err)
	}
	for _, pc := range done {
		canonical := courseutil.CanonicalCode(pc.CourseCode)
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		completed = append(completed, pc.CourseCode)
	}
	return completed, nil
}
