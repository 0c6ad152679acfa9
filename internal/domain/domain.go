package domain

import (
	"github.com/boilerplan/boilerplan-backend/internal/domain/auth"
	"github.com/boilerplan/boilerplan-backend/internal/domain/catalog"
	"github.com/boilerplan/boilerplan-backend/internal/domain/planner"
	"github.com/boilerplan/boilerplan-backend/internal/domain/user"
)

const (
	PlannedStatusPlanned    = planner.StatusPlanned
	PlannedStatusInProgress = planner.StatusInProgress
	PlannedStatusCompleted  = planner.StatusCompleted
)

type (
	User      = user.User
	UserToken = auth.UserToken

	Course    = catalog.Course
	ScrapeRun = catalog.ScrapeRun

	UserPreferences = planner.UserPreferences
	PlannedCourse   = planner.PlannedCourse
)
