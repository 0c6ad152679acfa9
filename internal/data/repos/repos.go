package repos

import (
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos/auth"
	"github.com/boilerplan/boilerplan-backend/internal/data/repos/catalog"
	"github.com/boilerplan/boilerplan-backend/internal/data/repos/planner"
	"github.com/boilerplan/boilerplan-backend/internal/data/repos/user"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo
type UserTokenRepo = auth.UserTokenRepo

type CourseRepo = catalog.CourseRepo
type ScrapeRunRepo = catalog.ScrapeRunRepo

type PreferencesRepo = planner.PreferencesRepo
type PlannedCourseRepo = planner.PlannedCourseRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }
func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return auth.NewUserTokenRepo(db, baseLog)
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return catalog.NewCourseRepo(db, baseLog)
}
func NewScrapeRunRepo(db *gorm.DB, baseLog *logger.Logger) ScrapeRunRepo {
	return catalog.NewScrapeRunRepo(db, baseLog)
}

func NewPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) PreferencesRepo {
	return planner.NewPreferencesRepo(db, baseLog)
}
func NewPlannedCourseRepo(db *gorm.DB, baseLog *logger.Logger) PlannedCourseRepo {
	return planner.NewPlannedCourseRepo(db, baseLog)
}
