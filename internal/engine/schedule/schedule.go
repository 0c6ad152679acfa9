// Package schedule validates a multi-semester course plan: prerequisite
// ordering, duplicates, same-semester corequisite conflicts, credit load,
// and projected GPA. Conflicts are data returned to the caller, not errors;
// only severity "error" conflicts invalidate a plan.
package schedule

import (
	"fmt"
	"math"
	"sort"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
)

const (
	ConflictPrerequisite = "prerequisite"
	ConflictCorequisite  = "corequisite"
	ConflictOverload     = "overload"
	ConflictDuplicate    = "duplicate"

	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Credit-load thresholds. 18 credits exactly is not an overload; below 12
// with any course at all draws a full-time advisory.
const (
	MaxSemesterCredits      = 18
	FullTimeCredits         = 12
	HighDifficultyThreshold = 3.5

	// Weekly hours assumed for a course with no workload data when
	// aggregating a semester's estimated workload.
	defaultSemesterWorkload = 10
)

// Conflict is a structured finding from schedule analysis.
type Conflict struct {
	Type     string   `json:"type"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Courses  []string `json:"courses"`
}

// SemesterAnalysis is the per-semester breakdown.
type SemesterAnalysis struct {
	Semester          string     `json:"semester"`
	Courses           []string   `json:"courses"`
	TotalCredits      int        `json:"totalCredits"`
	AvgDifficulty     float64    `json:"avgDifficulty"`
	EstimatedWorkload float64    `json:"estimatedWorkload"`
	Conflicts         []Conflict `json:"conflicts"`
	Recommendations   []string   `json:"recommendations"`
}

// Analysis is the whole-plan result.
type Analysis struct {
	Semesters        []SemesterAnalysis `json:"semesters"`
	TotalCredits     int                `json:"totalCredits"`
	EstimatedGPA     float64            `json:"estimatedGPA"`
	OverallConflicts []Conflict         `json:"conflicts"`
	IsValid          bool               `json:"isValid"`
}

// Analyze validates a plan semester by semester in chronological order,
// growing the completed-course baseline after each semester (never
// mid-semester). It never mutates its inputs.
func Analyze(plannedCourses []*types.PlannedCourse, catalog courseutil.Catalog, completedCourses []string) Analysis {
	semesterMap := map[string][]*types.PlannedCourse{}
	for _, planned := range plannedCourses {
		semesterMap[planned.Semester] = append(semesterMap[planned.Semester], planned)
	}

	semesters := make([]string, 0, len(semesterMap))
	for semester := range semesterMap {
		semesters = append(semesters, semester)
	}
	sort.SliceStable(semesters, func(i, j int) bool {
		return courseutil.SemesterOrder(semesters[i]) < courseutil.SemesterOrder(semesters[j])
	})

	completedByNow := courseutil.CodeSet(completedCourses)

	analyses := make([]SemesterAnalysis, 0, len(semesters))
	allConflicts := []Conflict{}
	totalCredits := 0
	weightedGPASum := 0.0

	for _, semester := range semesters {
		analysis := analyzeSemester(semester, semesterMap[semester], catalog, completedByNow)
		analyses = append(analyses, analysis)
		allConflicts = append(allConflicts, analysis.Conflicts...)

		for _, code := range analysis.Courses {
			course, ok := catalog.Lookup(code)
			if !ok {
				continue
			}
			totalCredits += course.Credits
			weightedGPASum += courseutil.EffectiveGPA(course) * float64(course.Credits)
			completedByNow[courseutil.CanonicalCode(code)] = struct{}{}
		}
	}

	estimatedGPA := 0.0
	if totalCredits > 0 {
		estimatedGPA = weightedGPASum / float64(totalCredits)
	}

	isValid := true
	for _, conflict := range allConflicts {
		if conflict.Severity == SeverityError {
			isValid = false
			break
		}
	}

	return Analysis{
		Semesters:        analyses,
		TotalCredits:     totalCredits,
		EstimatedGPA:     estimatedGPA,
		OverallConflicts: allConflicts,
		IsValid:          isValid,
	}
}

func analyzeSemester(semester string, plannedCourses []*types.PlannedCourse, catalog courseutil.Catalog, completedBefore map[string]struct{}) SemesterAnalysis {
	conflicts := []Conflict{}
	recommendations := []string{}

	courseCodes := make([]string, 0, len(plannedCourses))
	for _, planned := range plannedCourses {
		courseCodes = append(courseCodes, planned.CourseCode)
	}

	seen := map[string]struct{}{}
	for _, code := range courseCodes {
		canonical := courseutil.CanonicalCode(code)
		if _, dup := seen[canonical]; dup {
			conflicts = append(conflicts, Conflict{
				Type:     ConflictDuplicate,
				Severity: SeverityError,
				Message:  fmt.Sprintf("%s is scheduled multiple times", code),
				Courses:  []string{code},
			})
		}
		seen[canonical] = struct{}{}
	}

	totalCredits := 0
	totalDifficulty := 0.0
	totalWorkload := 0.0
	courseCount := 0

	for _, code := range courseCodes {
		course, ok := catalog.Lookup(code)
		if !ok {
			recommendations = append(recommendations, fmt.Sprintf("Course %s not found in database", code))
			continue
		}

		totalCredits += course.Credits
		totalDifficulty += courseutil.EffectiveDifficulty(course)
		if hours, has := courseutil.Workload(course); has {
			totalWorkload += hours
		} else {
			totalWorkload += defaultSemesterWorkload
		}
		courseCount++

		for _, prereq := range course.Prerequisites {
			prereqCanonical := courseutil.CanonicalCode(prereq)
			inSemester := false
			for _, other := range courseCodes {
				if courseutil.CanonicalCode(other) == prereqCanonical {
					inSemester = true
					break
				}
			}
			if _, done := completedBefore[prereqCanonical]; !done && !inSemester {
				conflicts = append(conflicts, Conflict{
					Type:     ConflictPrerequisite,
					Severity: SeverityError,
					Message:  fmt.Sprintf("%s requires %s which is not completed", code, prereq),
					Courses:  []string{code, prereq},
				})
			}
			if inSemester {
				conflicts = append(conflicts, Conflict{
					Type:     ConflictCorequisite,
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("%s and its prerequisite %s are in the same semester", code, prereq),
					Courses:  []string{code, prereq},
				})
			}
		}
	}

	if totalCredits > MaxSemesterCredits {
		conflicts = append(conflicts, Conflict{
			Type:     ConflictOverload,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%d credits exceeds typical maximum of %d", totalCredits, MaxSemesterCredits),
			Courses:  courseCodes,
		})
	}
	if totalCredits < FullTimeCredits && len(courseCodes) > 0 {
		recommendations = append(recommendations, "Consider adding more courses to meet full-time requirements")
	}

	avgDifficulty := 0.0
	if courseCount > 0 {
		avgDifficulty = totalDifficulty / float64(courseCount)
	}
	if avgDifficulty > HighDifficultyThreshold {
		recommendations = append(recommendations, "This semester has high average difficulty - consider balancing with easier courses")
	}

	return SemesterAnalysis{
		Semester:          semester,
		Courses:           courseCodes,
		TotalCredits:      totalCredits,
		AvgDifficulty:     avgDifficulty,
		EstimatedWorkload: totalWorkload,
		Conflicts:         conflicts,
		Recommendations:   recommendations,
	}
}

// DetectConflicts is the standalone pairwise check: a prerequisite conflict
// in whichever direction one course lists the other. Zero, one or two
// conflicts can result.
func DetectConflicts(courseA, courseB *types.Course) []Conflict {
	conflicts := []Conflict{}
	if listsPrerequisite(courseA, courseB.Code) {
		conflicts = append(conflicts, Conflict{
			Type:     ConflictPrerequisite,
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s requires %s as prerequisite", courseA.Code, courseB.Code),
			Courses:  []string{courseA.Code, courseB.Code},
		})
	}
	if listsPrerequisite(courseB, courseA.Code) {
		conflicts = append(conflicts, Conflict{
			Type:     ConflictPrerequisite,
			Severity: SeverityError,
			Message:  fmt.Sprintf("%s requires %s as prerequisite", courseB.Code, courseA.Code),
			Courses:  []string{courseA.Code, courseB.Code},
		})
	}
	return conflicts
}

func listsPrerequisite(course *types.Course, code string) bool {
	canonical := courseutil.CanonicalCode(code)
	for _, prereq := range course.Prerequisites {
		if courseutil.CanonicalCode(prereq) == canonical {
			return true
		}
	}
	return false
}

// GPARange is an optimistic/pessimistic projection band.
type GPARange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// GPAImpact projects a blended GPA assuming planned courses earn their
// historical averages.
type GPAImpact struct {
	ProjectedGPA float64  `json:"projectedGPA"`
	GPARange     GPARange `json:"gpaRange"`
}

// CalculateGPAImpact blends the current record with the expected outcomes
// of plannedCourses. The band widens each course's expected GPA by
// difficulty*0.2 in both directions, clamped to [0, 4], before aggregating.
// currentGPA outside [0, 4] is rejected at the boundary.
func CalculateGPAImpact(currentGPA float64, currentCredits int, plannedCourses []*types.Course) (GPAImpact, error) {
	if err := courseutil.ValidateGPA(currentGPA); err != nil {
		return GPAImpact{}, fmt.Errorf("current gpa: %w", err)
	}

	plannedCredits := 0
	expectedPoints := 0.0
	minPoints := 0.0
	maxPoints := 0.0

	for _, course := range plannedCourses {
		credits := float64(course.Credits)
		plannedCredits += course.Credits

		avgGPA := courseutil.EffectiveGPA(course)
		expectedPoints += avgGPA * credits

		variance := courseutil.EffectiveDifficulty(course) * 0.2
		minPoints += math.Max(0, avgGPA-variance) * credits
		maxPoints += math.Min(4.0, avgGPA+variance) * credits
	}

	totalCredits := float64(currentCredits + plannedCredits)
	currentPoints := currentGPA * float64(currentCredits)

	impact := GPAImpact{}
	if totalCredits > 0 {
		impact.ProjectedGPA = (currentPoints + expectedPoints) / totalCredits
		impact.GPARange.Min = (currentPoints + minPoints) / totalCredits
		impact.GPARange.Max = (currentPoints + maxPoints) / totalCredits
	}
	return impact, nil
}
