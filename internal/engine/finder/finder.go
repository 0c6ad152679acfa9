// Package finder filters catalog courses by explicit, typed criteria. Each
// optional field contributes one predicate; unset fields match everything.
package finder

import (
	"strings"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

// Criteria is the tagged filter set for the course finder. Nil/zero fields
// are inactive.
type Criteria struct {
	MinCredits       *int     `json:"minCredits,omitempty" form:"minCredits"`
	MaxCredits       *int     `json:"maxCredits,omitempty" form:"maxCredits"`
	MinGPA           *float64 `json:"minGPA,omitempty" form:"minGPA"`
	MaxGPA           *float64 `json:"maxGPA,omitempty" form:"maxGPA"`
	MaxWorkloadHours *float64 `json:"maxWorkloadHours,omitempty" form:"maxWorkloadHours"`
	MaxDifficulty    *float64 `json:"maxDifficulty,omitempty" form:"maxDifficulty"`
	NoPrerequisites  bool     `json:"noPrerequisites,omitempty" form:"noPrerequisites"`
	Semester         string   `json:"semester,omitempty" form:"semester"`
	Level            *int     `json:"level,omitempty" form:"level"`
	CareerTags       []string `json:"careerTags,omitempty" form:"careerTags"`
	Search           string   `json:"search,omitempty" form:"search"`

	MajorRequirement bool   `json:"majorRequirement,omitempty" form:"majorRequirement"`
	TechElective     bool   `json:"techElective,omitempty" form:"techElective"`
	GenEd            bool   `json:"genEd,omitempty" form:"genEd"`
	LabCredit        bool   `json:"labCredit,omitempty" form:"labCredit"`
	Category         string `json:"requirementCategory,omitempty" form:"requirementCategory"`
}

// GraduateLevel marks the level bucket boundary above which all graduate
// courses match, rather than a single decade-thousand band.
const GraduateLevel = 50000

// Predicate composes the active criteria into a single match function.
func (c Criteria) Predicate() func(*types.Course) bool {
	preds := []func(*types.Course) bool{}

	if c.MinCredits != nil {
		min := *c.MinCredits
		preds = append(preds, func(course *types.Course) bool { return course.Credits >= min })
	}
	if c.MaxCredits != nil {
		max := *c.MaxCredits
		preds = append(preds, func(course *types.Course) bool { return course.Credits <= max })
	}
	if c.MinGPA != nil {
		min := *c.MinGPA
		preds = append(preds, func(course *types.Course) bool {
			return course.AvgGPA != nil && *course.AvgGPA >= min
		})
	}
	if c.MaxGPA != nil {
		max := *c.MaxGPA
		preds = append(preds, func(course *types.Course) bool {
			return course.AvgGPA != nil && *course.AvgGPA <= max
		})
	}
	if c.MaxWorkloadHours != nil {
		max := *c.MaxWorkloadHours
		preds = append(preds, func(course *types.Course) bool {
			return course.WorkloadHours != nil && *course.WorkloadHours <= max
		})
	}
	if c.MaxDifficulty != nil {
		max := *c.MaxDifficulty
		preds = append(preds, func(course *types.Course) bool {
			return course.DifficultyRating != nil && *course.DifficultyRating <= max
		})
	}
	if c.NoPrerequisites {
		preds = append(preds, func(course *types.Course) bool { return len(course.Prerequisites) == 0 })
	}
	if c.Semester != "" {
		semester := c.Semester
		preds = append(preds, func(course *types.Course) bool {
			return containsString(course.Semesters, semester)
		})
	}
	if c.Level != nil {
		level := *c.Level
		preds = append(preds, func(course *types.Course) bool {
			if level >= GraduateLevel {
				return course.Level >= GraduateLevel
			}
			return course.Level >= level && course.Level < level+10000
		})
	}
	if len(c.CareerTags) > 0 {
		tags := c.CareerTags
		preds = append(preds, func(course *types.Course) bool {
			for _, tag := range tags {
				if containsString(course.CareerTags, tag) {
					return true
				}
			}
			return false
		})
	}
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		preds = append(preds, func(course *types.Course) bool {
			return strings.Contains(strings.ToLower(course.Code), needle) ||
				strings.Contains(strings.ToLower(course.Name), needle) ||
				strings.Contains(strings.ToLower(course.Description), needle)
		})
	}
	if c.MajorRequirement {
		preds = append(preds, func(course *types.Course) bool { return course.IsMajorRequirement })
	}
	if c.TechElective {
		preds = append(preds, func(course *types.Course) bool { return course.IsTechElective })
	}
	if c.GenEd {
		preds = append(preds, func(course *types.Course) bool { return course.IsGenEd })
	}
	if c.LabCredit {
		preds = append(preds, func(course *types.Course) bool { return course.IsLabCredit })
	}
	if c.Category != "" {
		category := c.Category
		preds = append(preds, func(course *types.Course) bool { return course.RequirementCategory == category })
	}

	return func(course *types.Course) bool {
		for _, pred := range preds {
			if !pred(course) {
				return false
			}
		}
		return true
	}
}

// Apply filters courses through the composed predicate, preserving order.
func Apply(courses []*types.Course, criteria Criteria) []*types.Course {
	match := criteria.Predicate()
	matched := []*types.Course{}
	for _, course := range courses {
		if match(course) {
			matched = append(matched, course)
		}
	}
	return matched
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
