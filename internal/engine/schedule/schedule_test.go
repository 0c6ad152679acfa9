package schedule

import (
	"math"
	"strings"
	"testing"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
)

func f(v float64) *float64 { return &v }

func testCatalog() courseutil.Catalog {
	return courseutil.NewCatalog([]*types.Course{
		{Code: "ECE 20001", Credits: 3, AvgGPA: f(2.8), DifficultyRating: f(3.5), WorkloadHours: f(12)},
		{Code: "ECE 20002", Credits: 3, AvgGPA: f(2.9), DifficultyRating: f(3.6), Prerequisites: []string{"ECE 20001"}},
		{Code: "ECE 30100", Credits: 3, AvgGPA: f(3.0), Prerequisites: []string{"ECE 20002"}},
		{Code: "MA 26100", Credits: 4, AvgGPA: f(3.1), DifficultyRating: f(3.2)},
		{Code: "PHYS 27200", Credits: 4, AvgGPA: f(2.7), DifficultyRating: f(4.0)},
		{Code: "COM 11400", Credits: 3, AvgGPA: f(3.8), DifficultyRating: f(1.5)},
		{Code: "ENGL 10600", Credits: 4, AvgGPA: f(3.6), DifficultyRating: f(2.0)},
	})
}

func planned(code, semester string) *types.PlannedCourse {
	return &types.PlannedCourse{CourseCode: code, Semester: semester, Status: types.PlannedStatusPlanned}
}

func conflictsOfType(conflicts []Conflict, conflictType string) []Conflict {
	out := []Conflict{}
	for _, c := range conflicts {
		if c.Type == conflictType {
			out = append(out, c)
		}
	}
	return out
}

func TestAnalyzeChronologicalOrderAndBaseline(t *testing.T) {
	// ECE 20002's prerequisite is taken the semester before, so the plan is
	// valid even though the planned slice is shuffled.
	plan := []*types.PlannedCourse{
		planned("ECE 20002", "Spring 2025"),
		planned("ECE 20001", "Fall 2024"),
		planned("MA 26100", "Fall 2024"),
		planned("ENGL 10600", "Fall 2024"),
		planned("PHYS 27200", "Fall 2024"),
		planned("ECE 30100", "Fall 2025"),
		planned("MA 26100", "Spring 2025"), // retake in a later semester is fine
		planned("COM 11400", "Spring 2025"),
		planned("ENGL 10600", "Fall 2025"),
		planned("PHYS 27200", "Fall 2025"),
		planned("COM 11400", "Fall 2025"),
	}
	analysis := Analyze(plan, testCatalog(), nil)

	want := []string{"Fall 2024", "Spring 2025", "Fall 2025"}
	if len(analysis.Semesters) != len(want) {
		t.Fatalf("semester count = %d, want %d", len(analysis.Semesters), len(want))
	}
	for i, semester := range want {
		if analysis.Semesters[i].Semester != semester {
			t.Fatalf("semester[%d] = %s, want %s", i, analysis.Semesters[i].Semester, semester)
		}
	}
	if prereqs := conflictsOfType(analysis.OverallConflicts, ConflictPrerequisite); len(prereqs) != 0 {
		t.Fatalf("unexpected prerequisite conflicts: %+v", prereqs)
	}
	if !analysis.IsValid {
		t.Fatalf("plan should be valid, conflicts: %+v", analysis.OverallConflicts)
	}
}

func TestAnalyzeMissingPrerequisiteIsError(t *testing.T) {
	plan := []*types.PlannedCourse{planned("ECE 20002", "Fall 2024")}
	analysis := Analyze(plan, testCatalog(), nil)

	prereqs := conflictsOfType(analysis.OverallConflicts, ConflictPrerequisite)
	if len(prereqs) != 1 {
		t.Fatalf("expected one prerequisite conflict, got %+v", analysis.OverallConflicts)
	}
	if prereqs[0].Severity != SeverityError {
		t.Fatalf("severity = %s, want error", prereqs[0].Severity)
	}
	if analysis.IsValid {
		t.Fatalf("plan with error conflict must be invalid")
	}

	// Completed beforehand, the same plan is clean.
	analysis = Analyze(plan, testCatalog(), []string{"ece20001"})
	if len(analysis.OverallConflicts) != 0 || !analysis.IsValid {
		t.Fatalf("completed prerequisite should clear the conflict: %+v", analysis.OverallConflicts)
	}
}

func TestAnalyzeSameSemesterPrereqIsWarningOnly(t *testing.T) {
	plan := []*types.PlannedCourse{
		planned("ECE 20001", "Fall 2024"),
		planned("ECE 20002", "Fall 2024"),
	}
	analysis := Analyze(plan, testCatalog(), nil)

	if len(conflictsOfType(analysis.OverallConflicts, ConflictPrerequisite)) != 0 {
		t.Fatalf("same-semester prerequisite must not be an error: %+v", analysis.OverallConflicts)
	}
	coreqs := conflictsOfType(analysis.OverallConflicts, ConflictCorequisite)
	if len(coreqs) != 1 || coreqs[0].Severity != SeverityWarning {
		t.Fatalf("expected one corequisite warning, got %+v", analysis.OverallConflicts)
	}
	if !analysis.IsValid {
		t.Fatalf("warnings alone must not invalidate the plan")
	}
}

func TestAnalyzeDuplicateInSemester(t *testing.T) {
	plan := []*types.PlannedCourse{
		planned("MA 26100", "Fall 2024"),
		planned("ma26100", "Fall 2024"),
	}
	analysis := Analyze(plan, testCatalog(), nil)

	dups := conflictsOfType(analysis.OverallConflicts, ConflictDuplicate)
	if len(dups) != 1 || dups[0].Severity != SeverityError {
		t.Fatalf("expected one duplicate error, got %+v", analysis.OverallConflicts)
	}
	if analysis.IsValid {
		t.Fatalf("duplicate must invalidate the plan")
	}
}

func TestAnalyzeCreditLoadBounds(t *testing.T) {
	// 3+4+4+3+4 = 18 credits: at the limit, no overload.
	atLimit := []*types.PlannedCourse{
		planned("ECE 20001", "Fall 2024"),
		planned("MA 26100", "Fall 2024"),
		planned("PHYS 27200", "Fall 2024"),
		planned("COM 11400", "Fall 2024"),
		planned("ENGL 10600", "Fall 2024"),
	}
	analysis := Analyze(atLimit, testCatalog(), nil)
	if len(conflictsOfType(analysis.OverallConflicts, ConflictOverload)) != 0 {
		t.Fatalf("18 credits must not be an overload: %+v", analysis.OverallConflicts)
	}

	// Add 3 more: 21 credits overloads with a warning, plan stays valid.
	over := append(atLimit, planned("ECE 30100", "Fall 2024"))
	analysis = Analyze(over, testCatalog(), []string{"ECE 20002"})
	overloads := conflictsOfType(analysis.OverallConflicts, ConflictOverload)
	if len(overloads) != 1 || overloads[0].Severity != SeverityWarning {
		t.Fatalf("expected one overload warning, got %+v", analysis.OverallConflicts)
	}
	if !analysis.IsValid {
		t.Fatalf("overload alone must not invalidate the plan")
	}
}

func TestAnalyzeUnderloadRecommendation(t *testing.T) {
	plan := []*types.PlannedCourse{planned("MA 26100", "Fall 2024")}
	analysis := Analyze(plan, testCatalog(), nil)

	found := false
	for _, rec := range analysis.Semesters[0].Recommendations {
		if strings.Contains(rec, "full-time") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected full-time advisory, got %v", analysis.Semesters[0].Recommendations)
	}
	if !analysis.IsValid {
		t.Fatalf("underload is advisory only")
	}
}

func TestAnalyzeUnknownCourse(t *testing.T) {
	plan := []*types.PlannedCourse{planned("XYZ 99999", "Fall 2024")}
	analysis := Analyze(plan, testCatalog(), nil)

	if analysis.TotalCredits != 0 {
		t.Fatalf("unknown course must not contribute credits, got %d", analysis.TotalCredits)
	}
	recs := analysis.Semesters[0].Recommendations
	found := false
	for _, rec := range recs {
		if strings.Contains(rec, "XYZ 99999 not found") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected not-found recommendation, got %v", recs)
	}
}

func TestAnalyzeHighDifficultyAdvisory(t *testing.T) {
	plan := []*types.PlannedCourse{
		planned("PHYS 27200", "Fall 2024"), // 4.0
		planned("ECE 20001", "Fall 2024"),  // 3.5
	}
	analysis := Analyze(plan, testCatalog(), nil)

	found := false
	for _, rec := range analysis.Semesters[0].Recommendations {
		if strings.Contains(rec, "high average difficulty") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected difficulty advisory, got %v", analysis.Semesters[0].Recommendations)
	}
}

func TestAnalyzeEstimatedGPA(t *testing.T) {
	plan := []*types.PlannedCourse{
		planned("MA 26100", "Fall 2024"),   // 4cr, 3.1
		planned("COM 11400", "Fall 2024"),  // 3cr, 3.8
		planned("ENGL 10600", "Fall 2024"), // 4cr, 3.6
	}
	analysis := Analyze(plan, testCatalog(), nil)

	want := (3.1*4 + 3.8*3 + 3.6*4) / 11
	if math.Abs(analysis.EstimatedGPA-want) > 1e-9 {
		t.Fatalf("estimatedGPA = %v, want %v", analysis.EstimatedGPA, want)
	}
	if analysis.TotalCredits != 11 {
		t.Fatalf("totalCredits = %d, want 11", analysis.TotalCredits)
	}
}

func TestAnalyzeEmptyPlan(t *testing.T) {
	analysis := Analyze(nil, testCatalog(), nil)
	if !analysis.IsValid || analysis.TotalCredits != 0 || analysis.EstimatedGPA != 0 {
		t.Fatalf("empty plan should be trivially valid: %+v", analysis)
	}
}

func TestDetectConflictsBothDirections(t *testing.T) {
	a := &types.Course{Code: "ECE 20002", Prerequisites: []string{"ece 20001"}}
	b := &types.Course{Code: "ECE 20001"}

	conflicts := DetectConflicts(a, b)
	if len(conflicts) != 1 || conflicts[0].Type != ConflictPrerequisite {
		t.Fatalf("expected one prerequisite conflict, got %+v", conflicts)
	}
	conflicts = DetectConflicts(b, a)
	if len(conflicts) != 1 {
		t.Fatalf("direction must not matter, got %+v", conflicts)
	}
	if got := DetectConflicts(b, &types.Course{Code: "MA 26100"}); len(got) != 0 {
		t.Fatalf("unrelated courses must not conflict: %+v", got)
	}
}

func TestCalculateGPAImpact(t *testing.T) {
	courses := []*types.Course{
		{Code: "ECE 20001", Credits: 3, AvgGPA: f(3.0), DifficultyRating: f(3.0)},
		{Code: "MA 26100", Credits: 4, AvgGPA: f(3.5), DifficultyRating: f(2.5)},
	}
	impact, err := CalculateGPAImpact(3.2, 30, courses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantProjected := (3.2*30 + 3.0*3 + 3.5*4) / 37
	if math.Abs(impact.ProjectedGPA-wantProjected) > 1e-9 {
		t.Fatalf("projected = %v, want %v", impact.ProjectedGPA, wantProjected)
	}
	// Variance is difficulty*0.2 per course.
	wantMin := (3.2*30 + (3.0-0.6)*3 + (3.5-0.5)*4) / 37
	wantMax := (3.2*30 + (3.0+0.6)*3 + (3.5+0.5)*4) / 37
	if math.Abs(impact.GPARange.Min-wantMin) > 1e-9 || math.Abs(impact.GPARange.Max-wantMax) > 1e-9 {
		t.Fatalf("range = %+v, want [%v, %v]", impact.GPARange, wantMin, wantMax)
	}
	if impact.GPARange.Min > impact.ProjectedGPA || impact.ProjectedGPA > impact.GPARange.Max {
		t.Fatalf("projected outside band: %+v", impact)
	}
}

func TestCalculateGPAImpactClampsBand(t *testing.T) {
	courses := []*types.Course{
		{Code: "EASY 10000", Credits: 3, AvgGPA: f(3.9), DifficultyRating: f(5)},
	}
	impact, err := CalculateGPAImpact(4.0, 0, courses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if impact.GPARange.Max > 4.0 {
		t.Fatalf("band max must clamp to 4.0, got %v", impact.GPARange.Max)
	}
}

func TestCalculateGPAImpactRejectsBadGPA(t *testing.T) {
	for _, gpa := range []float64{-0.1, 4.1} {
		if _, err := CalculateGPAImpact(gpa, 10, nil); err == nil {
			t.Fatalf("gpa %v should be rejected", gpa)
		}
	}
}
