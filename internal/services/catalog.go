package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
	"github.com/boilerplan/boilerplan-backend/internal/engine/finder"
	"github.com/boilerplan/boilerplan-backend/internal/engine/prereq"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

// CourseListQuery is the catalog list endpoint's filter/sort surface.
type CourseListQuery struct {
	Level  *int   `form:"level"`
	Search string `form:"search"`
	SortBy string `form:"sortBy"`
	Limit  int    `form:"limit"`
}

type CatalogService interface {
	ListCourses(ctx context.Context, query CourseListQuery) ([]*types.Course, error)
	GetCourse(ctx context.Context, code string) (*types.Course, error)
	FindCourses(ctx context.Context, criteria finder.Criteria) ([]*types.Course, error)
	PrerequisiteChain(ctx context.Context, code string, completedCourses []string) (prereq.Chain, error)
	PrerequisiteTree(ctx context.Context, code string, maxDepth int) (*prereq.TreeNode, error)
}

type catalogService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, courseRepo repos.CourseRepo) CatalogService {
	return &catalogService{
		db:         db,
		log:        log.With("service", "CatalogService"),
		courseRepo: courseRepo,
	}
}

func (cs *catalogService) ListCourses(ctx context.Context, query CourseListQuery) ([]*types.Course, error) {
	courses, err := cs.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	criteria := finder.Criteria{
		Level:  query.Level,
		Search: query.Search,
	}
	courses = finder.Apply(courses, criteria)

	switch query.SortBy {
	case "gpa":
		sort.SliceStable(courses, func(i, j int) bool {
			return courseutil.EffectiveGPA(courses[i]) > courseutil.EffectiveGPA(courses[j])
		})
	case "difficulty":
		sort.SliceStable(courses, func(i, j int) bool {
			return courseutil.EffectiveDifficulty(courses[i]) < courseutil.EffectiveDifficulty(courses[j])
		})
	case "credits":
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].Credits > courses[j].Credits
		})
	default:
		// GetAll already orders by code.
	}

	if query.Limit > 0 && len(courses) > query.Limit {
		courses = courses[:query.Limit]
	}
	return courses, nil
}

func (cs *catalogService) GetCourse(ctx context.Context, code string) (*types.Course, error) {
	course, err := cs.courseRepo.GetByCode(ctx, nil, code)
	if err != nil {
		return nil, fmt.Errorf("get course %s: %w", strings.TrimSpace(code), err)
	}
	return course, nil
}

func (cs *catalogService) FindCourses(ctx context.Context, criteria finder.Criteria) ([]*types.Course, error) {
	courses, err := cs.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return finder.Apply(courses, criteria), nil
}

func (cs *catalogService) PrerequisiteChain(ctx context.Context, code string, completedCourses []string) (prereq.Chain, error) {
	catalog, target, err := cs.snapshotWithTarget(ctx, code)
	if err != nil {
		return prereq.Chain{}, err
	}
	return prereq.BuildChain(target, catalog, completedCourses)
}

func (cs *catalogService) PrerequisiteTree(ctx context.Context, code string, maxDepth int) (*prereq.TreeNode, error) {
	catalog, target, err := cs.snapshotWithTarget(ctx, code)
	if err != nil {
		return nil, err
	}
	return prereq.BuildTree(target, catalog, maxDepth)
}

func (cs *catalogService) snapshotWithTarget(ctx context.Context, code string) (courseutil.Catalog, *types.Course, error) {
	courses, err := cs.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	catalog := courseutil.NewCatalog(courses)
	target, ok := catalog.Lookup(code)
	if !ok {
		return nil, nil, fmt.Errorf("course %s not found", strings.TrimSpace(code))
	}
	return catalog, target, nil
}
