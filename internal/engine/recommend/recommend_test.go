package recommend

import (
	"math"
	"testing"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestScoreCourseAllNeutral(t *testing.T) {
	// No course data and no preferences: every factor sits at its neutral
	// default except prerequisiteReady, which is 100 for zero prerequisites.
	course := &types.Course{Code: "ECE 20001", Credits: 3}
	prefs := &types.UserPreferences{}

	overall, factors := ScoreCourse(course, prefs, nil, DefaultWeights)
	if factors.CareerMatch != 50 || factors.DifficultyMatch != 50 || factors.GPAOptimal != 50 ||
		factors.WorkloadFit != 50 || factors.InterestMatch != 50 {
		t.Fatalf("expected neutral factors, got %+v", factors)
	}
	if factors.PrerequisiteReady != 100 {
		t.Fatalf("prerequisiteReady = %v, want 100", factors.PrerequisiteReady)
	}
	// 50*.25 + 50*.15 + 50*.20 + 100*.15 + 50*.15 + 50*.10 = 57.5 -> 58
	if overall != 58 {
		t.Fatalf("overall = %d, want 58", overall)
	}
}

func TestScoreCourseWorkedExample(t *testing.T) {
	course := &types.Course{
		Code:             "ECE 49500",
		Credits:          3,
		AvgGPA:           f(3.8),
		DifficultyRating: f(2),
		CareerTags:       []string{"ml"},
	}
	prefs := &types.UserPreferences{
		CareerGoals:         []string{"ml"},
		TargetGPA:           f(3.5),
		PreferredDifficulty: "easy",
	}

	overall, factors := ScoreCourse(course, prefs, nil, DefaultWeights)
	if factors.CareerMatch != 100 {
		t.Fatalf("careerMatch = %v, want 100", factors.CareerMatch)
	}
	if factors.DifficultyMatch != 100 {
		t.Fatalf("difficultyMatch = %v, want 100", factors.DifficultyMatch)
	}
	if math.Abs(factors.GPAOptimal-79) > 1e-9 {
		t.Fatalf("gpaOptimal = %v, want 79", factors.GPAOptimal)
	}
	if factors.PrerequisiteReady != 100 {
		t.Fatalf("prerequisiteReady = %v, want 100", factors.PrerequisiteReady)
	}
	if factors.WorkloadFit != 50 || factors.InterestMatch != 50 {
		t.Fatalf("expected neutral workload/interest, got %+v", factors)
	}
	// 25 + 15 + 15.8 + 15 + 7.5 + 5 = 83.3 -> 83
	if overall != 83 {
		t.Fatalf("overall = %d, want 83", overall)
	}
}

func TestScoreCourseBounded(t *testing.T) {
	extremes := []*types.Course{
		{Code: "A", Credits: 0},
		{Code: "B", Credits: 6, AvgGPA: f(0), DifficultyRating: f(5), WorkloadHours: f(80),
			Prerequisites: []string{"X", "Y", "Z"}},
		{Code: "C", Credits: 3, AvgGPA: f(4), DifficultyRating: f(1), WorkloadHours: f(1),
			CareerTags: []string{"ml"}, InterestTags: []string{"math", "dsp", "circuits"}},
	}
	prefs := &types.UserPreferences{
		CareerGoals:         []string{"ml"},
		Interests:           []string{"math", "dsp", "circuits"},
		TargetGPA:           f(4),
		MaxWorkloadHours:    f(10),
		PreferredDifficulty: "challenging",
	}
	for _, course := range extremes {
		overall, _ := ScoreCourse(course, prefs, nil, DefaultWeights)
		if overall < 0 || overall > 100 {
			t.Fatalf("score %d out of range for %s", overall, course.Code)
		}
	}
}

func TestRankAllSortedAndContiguous(t *testing.T) {
	courses := []*types.Course{
		{Code: "LOW 30000", Credits: 3, AvgGPA: f(2.0), CareerTags: []string{"power"}},
		{Code: "HIGH 20000", Credits: 3, AvgGPA: f(3.9), CareerTags: []string{"ml"}},
		{Code: "DONE 10000", Credits: 3},
		{Code: "MID 20000", Credits: 3, AvgGPA: f(3.0)},
	}
	prefs := &types.UserPreferences{CareerGoals: []string{"ml"}, TargetGPA: f(3.5)}

	scored := RankAll(courses, prefs, []string{"DONE 10000"})
	if len(scored) != 3 {
		t.Fatalf("expected 3 scored courses, got %d", len(scored))
	}
	for i, s := range scored {
		if s.Rank != i+1 {
			t.Fatalf("rank at %d = %d, want %d", i, s.Rank, i+1)
		}
		if s.Course.Code == "DONE 10000" {
			t.Fatalf("completed course must be excluded")
		}
		if i > 0 && scored[i-1].Score < s.Score {
			t.Fatalf("not sorted descending at %d", i)
		}
	}
	if scored[0].Course.Code != "HIGH 20000" {
		t.Fatalf("expected HIGH 20000 first, got %s", scored[0].Course.Code)
	}
}

func TestRankAllStableOnTies(t *testing.T) {
	courses := []*types.Course{
		{Code: "FIRST 20000", Credits: 3},
		{Code: "SECOND 20000", Credits: 3},
	}
	scored := RankAll(courses, &types.UserPreferences{}, nil)
	if scored[0].Course.Code != "FIRST 20000" || scored[1].Course.Code != "SECOND 20000" {
		t.Fatalf("tie should keep catalog order, got %s, %s", scored[0].Course.Code, scored[1].Course.Code)
	}
}

func TestTopNAppliesPrereqFloorAfterRanking(t *testing.T) {
	courses := []*types.Course{
		{Code: "READY 20000", Credits: 3, AvgGPA: f(3.8)},
		{Code: "BLOCKED 40000", Credits: 3, AvgGPA: f(3.9), Prerequisites: []string{"MISSING 30000"}},
	}
	prefs := &types.UserPreferences{TargetGPA: f(3.0)}

	scored := RankAll(courses, prefs, nil)
	top := TopN(scored, 10, -1)
	if len(top) != 1 {
		t.Fatalf("expected only the ready course, got %d results", len(top))
	}
	if top[0].Course.Code != "READY 20000" {
		t.Fatalf("got %s", top[0].Course.Code)
	}

	// The floor can make the result shorter than limit; that is intentional.
	if got := TopN(scored, 2, -1); len(got) != 1 {
		t.Fatalf("expected short result, got %d", len(got))
	}
}

func TestFilterByCareer(t *testing.T) {
	scored := []ScoredCourse{
		{Course: &types.Course{Code: "A", CareerTags: []string{"ml", "software"}}},
		{Course: &types.Course{Code: "B", CareerTags: []string{"power"}}},
		{Course: &types.Course{Code: "C", CareerTags: []string{"ml"}}},
	}
	filtered := FilterByCareer(scored, "ml")
	if len(filtered) != 2 || filtered[0].Course.Code != "A" || filtered[1].Course.Code != "C" {
		t.Fatalf("unexpected filter result: %+v", filtered)
	}
}

func TestPartialPrerequisiteReady(t *testing.T) {
	course := &types.Course{Code: "X 30000", Credits: 3, Prerequisites: []string{"A 1", "B 2", "C 3"}}
	_, factors := ScoreCourse(course, &types.UserPreferences{}, []string{"A 1"}, DefaultWeights)
	if factors.PrerequisiteReady != 33 {
		t.Fatalf("prerequisiteReady = %v, want 33", factors.PrerequisiteReady)
	}
}
