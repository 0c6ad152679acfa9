// Package recommend scores catalog courses against a user's stated goals.
// Each course gets six 0-100 factor scores combined by fixed, hand-tuned
// weights into an overall 0-100 match score. Partial profiles are the
// common case: every factor has a neutral default instead of an error path.
package recommend

import (
	"math"
	"sort"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
)

// Weights combines the six factor scores into the overall score.
type Weights struct {
	CareerMatch       float64 `json:"careerMatch"`
	DifficultyMatch   float64 `json:"difficultyMatch"`
	GPAOptimal        float64 `json:"gpaOptimal"`
	PrerequisiteReady float64 `json:"prerequisiteReady"`
	WorkloadFit       float64 `json:"workloadFit"`
	InterestMatch     float64 `json:"interestMatch"`
}

// DefaultWeights are the fixed production weights. They sum to 1.
var DefaultWeights = Weights{
	CareerMatch:       0.25,
	DifficultyMatch:   0.15,
	GPAOptimal:        0.20,
	PrerequisiteReady: 0.15,
	WorkloadFit:       0.15,
	InterestMatch:     0.10,
}

// Factors are the six independent 0-100 sub-scores.
type Factors struct {
	CareerMatch       float64 `json:"careerMatch"`
	DifficultyMatch   float64 `json:"difficultyMatch"`
	GPAOptimal        float64 `json:"gpaOptimal"`
	PrerequisiteReady float64 `json:"prerequisiteReady"`
	WorkloadFit       float64 `json:"workloadFit"`
	InterestMatch     float64 `json:"interestMatch"`
}

// ScoredCourse is one ranked recommendation.
type ScoredCourse struct {
	Course  *types.Course `json:"course"`
	Score   int           `json:"score"`
	Rank    int           `json:"rank"`
	Factors Factors       `json:"factors"`
}

// DefaultMinPrereqScore is the prerequisite-readiness floor applied by TopN.
const DefaultMinPrereqScore = 50

var difficultyAnchors = map[string]float64{
	"easy":        2,
	"moderate":    3,
	"challenging": 4,
}

// ScoreCourse computes the six factors and their weighted overall score for
// a single course. The overall score is clamped to [0, 100] and rounded.
func ScoreCourse(course *types.Course, prefs *types.UserPreferences, completedCourses []string, weights Weights) (int, Factors) {
	factors := Factors{
		CareerMatch:       careerMatch(course, prefs),
		DifficultyMatch:   difficultyMatch(course, prefs),
		GPAOptimal:        gpaOptimal(course, prefs),
		PrerequisiteReady: prerequisiteReady(course, completedCourses),
		WorkloadFit:       workloadFit(course, prefs),
		InterestMatch:     interestMatch(course, prefs),
	}
	overall := factors.CareerMatch*weights.CareerMatch +
		factors.DifficultyMatch*weights.DifficultyMatch +
		factors.GPAOptimal*weights.GPAOptimal +
		factors.PrerequisiteReady*weights.PrerequisiteReady +
		factors.WorkloadFit*weights.WorkloadFit +
		factors.InterestMatch*weights.InterestMatch
	return int(math.Round(math.Min(100, math.Max(0, overall)))), factors
}

// RankAll scores every course not already completed, sorts descending by
// overall score (stable, so ties keep catalog order) and assigns 1-based
// ranks.
func RankAll(courses []*types.Course, prefs *types.UserPreferences, completedCourses []string) []ScoredCourse {
	completed := courseutil.CodeSet(completedCourses)
	scored := make([]ScoredCourse, 0, len(courses))
	for _, course := range courses {
		if _, done := completed[courseutil.CanonicalCode(course.Code)]; done {
			continue
		}
		overall, factors := ScoreCourse(course, prefs, completedCourses, DefaultWeights)
		scored = append(scored, ScoredCourse{Course: course, Score: overall, Factors: factors})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// TopN filters an already-ranked slice to courses at or above the
// prerequisite-readiness floor (DefaultMinPrereqScore when minPrereqScore
// < 0) and takes the first limit entries. The result may be shorter than
// limit; the floor biases output toward currently-takable courses and is
// applied after ranking, never before.
func TopN(scored []ScoredCourse, limit int, minPrereqScore float64) []ScoredCourse {
	if minPrereqScore < 0 {
		minPrereqScore = DefaultMinPrereqScore
	}
	top := make([]ScoredCourse, 0, limit)
	for _, s := range scored {
		if s.Factors.PrerequisiteReady < minPrereqScore {
			continue
		}
		top = append(top, s)
		if len(top) == limit {
			break
		}
	}
	return top
}

// FilterByCareer keeps recommendations whose course carries the given
// career tag, preserving order.
func FilterByCareer(scored []ScoredCourse, careerTag string) []ScoredCourse {
	filtered := []ScoredCourse{}
	for _, s := range scored {
		for _, tag := range s.Course.CareerTags {
			if tag == careerTag {
				filtered = append(filtered, s)
				break
			}
		}
	}
	return filtered
}

func careerMatch(course *types.Course, prefs *types.UserPreferences) float64 {
	if len(prefs.CareerGoals) == 0 {
		return 50
	}
	if len(course.CareerTags) == 0 {
		return 40
	}
	goals := map[string]struct{}{}
	for _, goal := range prefs.CareerGoals {
		goals[goal] = struct{}{}
	}
	matches := 0
	for _, tag := range course.CareerTags {
		if _, ok := goals[tag]; ok {
			matches++
		}
	}
	matchPercent := float64(matches) / float64(len(prefs.CareerGoals))
	return 20 + matchPercent*80
}

func difficultyMatch(course *types.Course, prefs *types.UserPreferences) float64 {
	anchor, ok := difficultyAnchors[prefs.PreferredDifficulty]
	if !ok {
		return 50
	}
	difference := math.Abs(courseutil.EffectiveDifficulty(course) - anchor)
	switch {
	case difference == 0:
		return 100
	case difference <= 1:
		return 70
	case difference <= 2:
		return 40
	default:
		return 20
	}
}

func gpaOptimal(course *types.Course, prefs *types.UserPreferences) float64 {
	if prefs.TargetGPA == nil || course.AvgGPA == nil {
		return 50
	}
	target := *prefs.TargetGPA
	courseGPA := *course.AvgGPA
	if courseGPA >= target {
		return math.Min(100, 70+(courseGPA-target)*30)
	}
	deficit := target - courseGPA
	switch {
	case deficit <= 0.3:
		return 60
	case deficit <= 0.5:
		return 45
	case deficit <= 0.8:
		return 30
	default:
		return 20
	}
}

func prerequisiteReady(course *types.Course, completedCourses []string) float64 {
	if len(course.Prerequisites) == 0 {
		return 100
	}
	completed := courseutil.CodeSet(completedCourses)
	satisfied := 0
	for _, prereq := range course.Prerequisites {
		if _, ok := completed[courseutil.CanonicalCode(prereq)]; ok {
			satisfied++
		}
	}
	return math.Round(float64(satisfied) / float64(len(course.Prerequisites)) * 100)
}

func workloadFit(course *types.Course, prefs *types.UserPreferences) float64 {
	hours, ok := courseutil.Workload(course)
	if prefs.MaxWorkloadHours == nil || !ok {
		return 50
	}
	maxHours := *prefs.MaxWorkloadHours
	if hours <= maxHours*0.7 {
		return 80
	}
	if hours <= maxHours {
		return 100
	}
	overPercent := (hours - maxHours) / maxHours
	switch {
	case overPercent <= 0.2:
		return 60
	case overPercent <= 0.5:
		return 40
	default:
		return 20
	}
}

func interestMatch(course *types.Course, prefs *types.UserPreferences) float64 {
	if len(prefs.Interests) == 0 {
		return 50
	}
	if len(course.InterestTags) == 0 {
		return 40
	}
	interests := map[string]struct{}{}
	for _, interest := range prefs.Interests {
		interests[interest] = struct{}{}
	}
	matches := 0
	for _, tag := range course.InterestTags {
		if _, ok := interests[tag]; ok {
			matches++
		}
	}
	switch {
	case matches == 0:
		return 30
	case matches == 1:
		return 60
	case matches == 2:
		return 80
	default:
		return 100
	}
}
