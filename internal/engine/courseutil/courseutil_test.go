package courseutil

import (
	"math"
	"testing"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

func f(v float64) *float64 { return &v }

func TestCanonicalCode(t *testing.T) {
	cases := map[string]string{
		"ECE 30100":   "ECE30100",
		"ece 30100":   "ECE30100",
		" ma  26100 ": "MA26100",
		"CS15900":     "CS15900",
	}
	for in, want := range cases {
		if got := CanonicalCode(in); got != want {
			t.Fatalf("CanonicalCode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCatalogLookupIsCanonical(t *testing.T) {
	cat := NewCatalog([]*types.Course{{Code: "ECE 30100", Credits: 3}})
	if _, ok := cat.Lookup("ece30100"); !ok {
		t.Fatalf("expected lookup to canonicalize")
	}
	if _, ok := cat.Lookup("ECE 99999"); ok {
		t.Fatalf("expected miss for unknown code")
	}
}

func TestEffectiveDefaults(t *testing.T) {
	bare := &types.Course{Code: "X 10000", Credits: 3}
	if got := EffectiveGPA(bare); got != DefaultGPA {
		t.Fatalf("EffectiveGPA default = %v, want %v", got, DefaultGPA)
	}
	if got := EffectiveDifficulty(bare); got != DefaultDifficulty {
		t.Fatalf("EffectiveDifficulty default = %v, want %v", got, DefaultDifficulty)
	}
	if _, ok := Workload(bare); ok {
		t.Fatalf("expected no workload data")
	}

	full := &types.Course{Code: "Y 20000", Credits: 3, AvgGPA: f(3.4), DifficultyRating: f(2.1), WorkloadHours: f(12)}
	if got := EffectiveGPA(full); got != 3.4 {
		t.Fatalf("EffectiveGPA = %v, want 3.4", got)
	}
	if hours, ok := Workload(full); !ok || hours != 12 {
		t.Fatalf("Workload = %v, %v", hours, ok)
	}
}

func TestProjectedGPAIsCreditWeighted(t *testing.T) {
	courses := []*types.Course{
		{Code: "A", Credits: 3, AvgGPA: f(4.0)},
		{Code: "B", Credits: 1, AvgGPA: f(2.0)},
	}
	want := (4.0*3 + 2.0*1) / 4
	if got := ProjectedGPA(courses); math.Abs(got-want) > 1e-9 {
		t.Fatalf("ProjectedGPA = %v, want %v", got, want)
	}
	if got := ProjectedGPA(nil); got != 0 {
		t.Fatalf("ProjectedGPA(nil) = %v, want 0", got)
	}
}

func TestSemesterOrder(t *testing.T) {
	if SemesterOrder("Spring 2025") >= SemesterOrder("Summer 2025") {
		t.Fatalf("Spring should precede Summer")
	}
	if SemesterOrder("Summer 2025") >= SemesterOrder("Fall 2025") {
		t.Fatalf("Summer should precede Fall")
	}
	if SemesterOrder("Fall 2024") >= SemesterOrder("Spring 2025") {
		t.Fatalf("earlier year should precede later year regardless of term")
	}
}

func TestSemesterYear(t *testing.T) {
	if got := SemesterYear("Fall 2026", 2024); got != 2026 {
		t.Fatalf("SemesterYear = %d, want 2026", got)
	}
	if got := SemesterYear("sometime", 2024); got != 2024 {
		t.Fatalf("SemesterYear fallback = %d, want 2024", got)
	}
}

func TestGenerateSemestersSkipsSummer(t *testing.T) {
	got := GenerateSemesters("Fall 2024", 4)
	want := []string{"Fall 2024", "Spring 2025", "Fall 2025", "Spring 2026"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GenerateSemesters = %v, want %v", got, want)
		}
	}
}

func TestGradePoints(t *testing.T) {
	if got := GradePoints("A-"); got != 3.7 {
		t.Fatalf("GradePoints(A-) = %v", got)
	}
	if got := GradePoints(" b+ "); got != 3.3 {
		t.Fatalf("GradePoints(b+) = %v", got)
	}
	if got := GradePoints("W"); got != 0 {
		t.Fatalf("GradePoints(W) = %v, want 0", got)
	}
}

func TestValidateGPA(t *testing.T) {
	if err := ValidateGPA(3.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateGPA(-0.1); err == nil {
		t.Fatalf("expected error for negative gpa")
	}
	if err := ValidateGPA(4.01); err == nil {
		t.Fatalf("expected error for gpa above 4")
	}
}
