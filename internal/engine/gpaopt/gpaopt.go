// Package gpaopt greedily selects a course set maximizing projected GPA
// under a credit budget. It is a heuristic companion to the recommendation
// scorer: it optimizes a selection rather than ranking the whole catalog.
package gpaopt

import (
	"fmt"
	"math"
	"sort"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
)

// Greedy stopping heuristics, documented as heuristics rather than
// guarantees: selection stops once the running total reaches MinCredits and
// at least MinSelectionSize courses are picked. It may overshoot MinCredits
// and may end smaller if candidates run out.
const (
	MinSelectionSize = 4

	// DefaultBoostCourseLimit caps FindGPABoostCourses results.
	DefaultBoostCourseLimit = 5

	// BoostCredits is the hypothetical future load used to derive the
	// needed per-course GPA when chasing a target.
	BoostCredits = 15

	// MaxRealisticBoostGPA caps the derived threshold so the filter never
	// demands unrealistically high-GPA courses.
	MaxRealisticBoostGPA = 3.5
)

// Constraints bound an optimization run.
type Constraints struct {
	TargetGPA       float64  `json:"targetGPA"`
	MinCredits      int      `json:"minCredits"`
	MaxCredits      int      `json:"maxCredits"`
	MaxDifficulty   float64  `json:"maxDifficulty"`
	RequiredCourses []string `json:"requiredCourses,omitempty"`
	ExcludedCourses []string `json:"excludedCourses,omitempty"`
}

// Result is the selected course set plus derived aggregates and
// human-readable reasoning notes.
type Result struct {
	Selected          []*types.Course `json:"selected"`
	ProjectedGPA      float64         `json:"projectedGPA"`
	TotalCredits      int             `json:"totalCredits"`
	AverageDifficulty float64         `json:"averageDifficulty"`
	Reasoning         []string        `json:"reasoning"`
}

// Optimize filters candidates by the constraints, seats required courses
// first, then greedily adds the highest-scoring remainder while the total
// stays within MaxCredits. If the required courses alone exceed MaxCredits
// the result is exactly the required set with an explanatory note.
func Optimize(availableCourses []*types.Course, constraints Constraints) Result {
	reasoning := []string{}

	excluded := courseutil.CodeSet(constraints.ExcludedCourses)
	candidates := make([]*types.Course, 0, len(availableCourses))
	for _, course := range availableCourses {
		if _, skip := excluded[courseutil.CanonicalCode(course.Code)]; skip {
			continue
		}
		if constraints.MaxDifficulty > 0 && courseutil.EffectiveDifficulty(course) > constraints.MaxDifficulty {
			continue
		}
		candidates = append(candidates, course)
	}

	required := []*types.Course{}
	for _, reqCode := range constraints.RequiredCourses {
		canonical := courseutil.CanonicalCode(reqCode)
		for i, course := range candidates {
			if courseutil.CanonicalCode(course.Code) == canonical {
				required = append(required, course)
				candidates = append(candidates[:i], candidates[i+1:]...)
				break
			}
		}
	}

	requiredCredits := courseutil.TotalCredits(required)
	if requiredCredits > constraints.MaxCredits {
		reasoning = append(reasoning, fmt.Sprintf(
			"Required courses (%d credits) exceed maximum (%d credits)",
			requiredCredits, constraints.MaxCredits))
		return Result{
			Selected:          required,
			ProjectedGPA:      courseutil.ProjectedGPA(required),
			TotalCredits:      requiredCredits,
			AverageDifficulty: courseutil.AverageDifficulty(required),
			Reasoning:         reasoning,
		}
	}

	scores := make(map[string]float64, len(candidates))
	for _, course := range candidates {
		scores[courseutil.CanonicalCode(course.Code)] = selectionScore(course, constraints.TargetGPA)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[courseutil.CanonicalCode(candidates[i].Code)] > scores[courseutil.CanonicalCode(candidates[j].Code)]
	})

	selected := append([]*types.Course{}, required...)
	totalCredits := requiredCredits
	for _, course := range candidates {
		if totalCredits+course.Credits > constraints.MaxCredits {
			continue
		}
		selected = append(selected, course)
		totalCredits += course.Credits
		if totalCredits >= constraints.MinCredits && len(selected) >= MinSelectionSize {
			break
		}
	}

	projectedGPA := courseutil.ProjectedGPA(selected)
	avgDifficulty := courseutil.AverageDifficulty(selected)

	if projectedGPA >= constraints.TargetGPA {
		reasoning = append(reasoning, fmt.Sprintf(
			"Selected courses project to %.2f GPA, meeting target of %g",
			projectedGPA, constraints.TargetGPA))
	} else {
		reasoning = append(reasoning, fmt.Sprintf(
			"Projected GPA of %.2f is below target of %g",
			projectedGPA, constraints.TargetGPA))
		reasoning = append(reasoning, "Consider substituting difficult courses with easier alternatives")
	}
	if avgDifficulty > 3.5 {
		reasoning = append(reasoning, "Warning: High average difficulty may make target GPA harder to achieve")
	}
	if totalCredits < constraints.MinCredits {
		reasoning = append(reasoning, fmt.Sprintf(
			"Only %d credits selected, below minimum of %d",
			totalCredits, constraints.MinCredits))
	}

	return Result{
		Selected:          selected,
		ProjectedGPA:      projectedGPA,
		TotalCredits:      totalCredits,
		AverageDifficulty: avgDifficulty,
		Reasoning:         reasoning,
	}
}

// selectionScore rewards GPA buffer above target (0-50), lower difficulty
// (0-30) and 3-credit standard course size (0-20).
func selectionScore(course *types.Course, targetGPA float64) float64 {
	gpaBuffer := courseutil.EffectiveGPA(course) - targetGPA
	score := math.Max(0, math.Min(50, (gpaBuffer+1)*25))
	score += (5 - courseutil.EffectiveDifficulty(course)) * 6
	score += (3 - math.Abs(float64(course.Credits)-3)) * 5
	return score
}

// FindGPABoostCourses picks up to maxCourses candidates that push a record
// toward targetGPA. At or above target it returns the highest-GPA courses
// meeting the target, for maintenance. Below target it derives the average
// GPA needed over a BoostCredits future load, caps it at
// MaxRealisticBoostGPA, and returns matching courses by GPA/difficulty
// efficiency. currentGPA outside [0, 4] is rejected.
func FindGPABoostCourses(availableCourses []*types.Course, currentGPA float64, currentCredits int, targetGPA float64, maxCourses int) ([]*types.Course, error) {
	if err := courseutil.ValidateGPA(currentGPA); err != nil {
		return nil, fmt.Errorf("current gpa: %w", err)
	}
	if maxCourses <= 0 {
		maxCourses = DefaultBoostCourseLimit
	}

	if targetGPA-currentGPA <= 0 {
		maintenance := []*types.Course{}
		for _, course := range availableCourses {
			if course.AvgGPA != nil && *course.AvgGPA >= targetGPA {
				maintenance = append(maintenance, course)
			}
		}
		sort.SliceStable(maintenance, func(i, j int) bool {
			return *maintenance[i].AvgGPA > *maintenance[j].AvgGPA
		})
		if len(maintenance) > maxCourses {
			maintenance = maintenance[:maxCourses]
		}
		return maintenance, nil
	}

	// targetGPA = (currentGPA*currentCredits + newGPA*newCredits) / (currentCredits + newCredits)
	neededGPA := (targetGPA*float64(currentCredits+BoostCredits) - currentGPA*float64(currentCredits)) / BoostCredits
	threshold := math.Min(neededGPA, MaxRealisticBoostGPA)

	candidates := []*types.Course{}
	for _, course := range availableCourses {
		if course.AvgGPA != nil && *course.AvgGPA >= threshold {
			candidates = append(candidates, course)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return efficiency(candidates[i]) > efficiency(candidates[j])
	})
	if len(candidates) > maxCourses {
		candidates = candidates[:maxCourses]
	}
	return candidates, nil
}

func efficiency(course *types.Course) float64 {
	return courseutil.EffectiveGPA(course) / courseutil.EffectiveDifficulty(course)
}

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// RiskAssessment summarizes GPA risk for a course set.
type RiskAssessment struct {
	RiskLevel string   `json:"riskLevel"`
	Factors   []string `json:"factors"`
}

// AnalyzeRisk counts risk factors over a course set: clusters of hard
// courses, historically low-GPA courses, heavy credit loads, and the
// combination of high difficulty with a full load.
func AnalyzeRisk(courses []*types.Course) RiskAssessment {
	factors := []string{}

	avgDifficulty := courseutil.AverageDifficulty(courses)
	totalCredits := courseutil.TotalCredits(courses)

	hardCourses := 0
	lowGPACourses := 0
	for _, course := range courses {
		if courseutil.EffectiveDifficulty(course) >= 4 {
			hardCourses++
		}
		if courseutil.EffectiveGPA(course) < 2.7 {
			lowGPACourses++
		}
	}

	if hardCourses >= 3 {
		factors = append(factors, fmt.Sprintf("%d courses have high difficulty ratings", hardCourses))
	}
	if lowGPACourses > 0 {
		factors = append(factors, fmt.Sprintf("%d courses have historically low average GPAs", lowGPACourses))
	}
	if totalCredits > 17 {
		factors = append(factors, fmt.Sprintf("Heavy credit load of %d credits", totalCredits))
	}
	if avgDifficulty > 3.5 && totalCredits >= 15 {
		factors = append(factors, "Combination of high difficulty and full credit load")
	}

	riskLevel := RiskLow
	if len(factors) >= 3 || (avgDifficulty > 4 && totalCredits >= 15) {
		riskLevel = RiskHigh
	} else if len(factors) >= 1 {
		riskLevel = RiskMedium
	}

	return RiskAssessment{RiskLevel: riskLevel, Factors: factors}
}
