package services

import (
	"strings"
	"testing"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/recommend"
)

func TestFallbackExplanationNamesStrongestFactor(t *testing.T) {
	course := &types.Course{Code: "ECE 36800"}
	factors := recommend.Factors{
		CareerMatch:       40,
		DifficultyMatch:   50,
		GPAOptimal:        60,
		PrerequisiteReady: 100,
		WorkloadFit:       50,
		InterestMatch:     30,
	}
	text := fallbackExplanation(course, 62, factors)
	if !strings.Contains(text, "ECE 36800") {
		t.Errorf("fallback missing course code: %q", text)
	}
	if !strings.Contains(text, "62/100") {
		t.Errorf("fallback missing score: %q", text)
	}
	if !strings.Contains(text, "prerequisite readiness") {
		t.Errorf("fallback should name the strongest factor: %q", text)
	}
}

func TestBuildExplainPromptIncludesFacts(t *testing.T) {
	gpa := 3.25
	difficulty := 2.5
	target := 3.5
	course := &types.Course{
		Code:             "ECE 20875",
		Name:             "Python for Data Science",
		Credits:          3,
		AvgGPA:           &gpa,
		DifficultyRating: &difficulty,
		CareerTags:       []string{"software", "ml"},
	}
	prefs := &types.UserPreferences{
		CareerGoals: []string{"ml"},
		TargetGPA:   &target,
	}
	factors := recommend.Factors{CareerMatch: 100}

	prompt := buildExplainPrompt(course, prefs, 83, factors)
	for _, want := range []string{
		"ECE 20875", "Python for Data Science",
		"3.25", "2.5/5",
		"software, ml", "Student career goals: ml",
		"target GPA: 3.50", "score: 83/100",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestValidatePlannedStatus(t *testing.T) {
	for _, ok := range []string{"planned", "in-progress", "completed"} {
		if err := validatePlannedStatus(ok); err != nil {
			t.Errorf("validatePlannedStatus(%q) = %v, want nil", ok, err)
		}
	}
	if err := validatePlannedStatus("done"); err == nil {
		t.Error("expected error for unknown status")
	}
}
