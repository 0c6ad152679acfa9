// Package courseutil holds the shared vocabulary of the planning engine:
// canonical course-code handling, catalog snapshots, and the default
// substitution rules every engine component must agree on.
package courseutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

// Defaults substituted when a course record has no scraped data. All engine
// components go through these accessors so the substitution rules cannot
// drift between scorer, analyzer and optimizer.
const (
	DefaultGPA        = 3.0
	DefaultDifficulty = 3.0
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CanonicalCode strips whitespace and upper-cases a course code. Canonical
// codes are the only stable comparison key.
func CanonicalCode(code string) string {
	return whitespaceRE.ReplaceAllString(strings.ToUpper(code), "")
}

// CodeSet canonicalizes a list of codes into a membership set.
func CodeSet(codes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[CanonicalCode(code)] = struct{}{}
	}
	return set
}

// Catalog is an immutable snapshot of course records keyed by canonical
// code. The engine never mutates it.
type Catalog map[string]*types.Course

func NewCatalog(courses []*types.Course) Catalog {
	cat := make(Catalog, len(courses))
	for _, course := range courses {
		if course == nil {
			continue
		}
		cat[CanonicalCode(course.Code)] = course
	}
	return cat
}

func (c Catalog) Lookup(code string) (*types.Course, bool) {
	course, ok := c[CanonicalCode(code)]
	return course, ok
}

// EffectiveGPA returns the course's historical average GPA, or DefaultGPA
// when none was scraped.
func EffectiveGPA(course *types.Course) float64 {
	if course.AvgGPA != nil {
		return *course.AvgGPA
	}
	return DefaultGPA
}

// EffectiveDifficulty returns the course's difficulty rating, or
// DefaultDifficulty when none was scraped.
func EffectiveDifficulty(course *types.Course) float64 {
	if course.DifficultyRating != nil {
		return *course.DifficultyRating
	}
	return DefaultDifficulty
}

// Workload returns the expected weekly hours and whether any workload data
// exists. Absent workload has no universal default; each consumer documents
// its own fallback.
func Workload(course *types.Course) (float64, bool) {
	if course.WorkloadHours != nil {
		return *course.WorkloadHours, true
	}
	return 0, false
}

// TotalCredits sums credits over a course set.
func TotalCredits(courses []*types.Course) int {
	total := 0
	for _, course := range courses {
		total += course.Credits
	}
	return total
}

// ProjectedGPA is the credit-weighted mean of effective GPAs over a course
// set. Zero credits projects to 0.
func ProjectedGPA(courses []*types.Course) float64 {
	totalPoints := 0.0
	totalCredits := 0
	for _, course := range courses {
		totalPoints += EffectiveGPA(course) * float64(course.Credits)
		totalCredits += course.Credits
	}
	if totalCredits == 0 {
		return 0
	}
	return totalPoints / float64(totalCredits)
}

// AverageDifficulty is the unweighted mean effective difficulty over a
// course set. An empty set averages to 0.
func AverageDifficulty(courses []*types.Course) float64 {
	if len(courses) == 0 {
		return 0
	}
	total := 0.0
	for _, course := range courses {
		total += EffectiveDifficulty(course)
	}
	return total / float64(len(courses))
}

// ValidateGPA rejects malformed GPA inputs at the boundary so scoring math
// never sees them.
func ValidateGPA(gpa float64) error {
	if gpa < 0 || gpa > 4 {
		return fmt.Errorf("gpa %.2f outside [0, 4]", gpa)
	}
	return nil
}

const defaultSemesterYear = 2024

// SemesterOrder derives a chronological sort key from a "Term YYYY" label:
// year*10 + term, with Spring before Summer before Fall within a year.
func SemesterOrder(semester string) int {
	parts := strings.Fields(semester)
	term := ""
	year := defaultSemesterYear
	if len(parts) > 0 {
		term = parts[0]
	}
	if len(parts) > 1 {
		if y, err := strconv.Atoi(parts[1]); err == nil {
			year = y
		}
	}
	termOrder := 2
	switch term {
	case "Spring":
		termOrder = 0
	case "Summer":
		termOrder = 1
	}
	return year*10 + termOrder
}

var yearRE = regexp.MustCompile(`\d{4}`)

// SemesterYear extracts the four-digit year from a semester label, falling
// back to def when none is present.
func SemesterYear(semester string, def int) int {
	if m := yearRE.FindString(semester); m != "" {
		if y, err := strconv.Atoi(m); err == nil {
			return y
		}
	}
	return def
}

var semesterTerms = []string{"Spring", "Summer", "Fall"}

// GenerateSemesters lists count semester labels starting at start, skipping
// Summer terms after the first.
func GenerateSemesters(start string, count int) []string {
	parts := strings.Fields(start)
	term := "Fall"
	year := defaultSemesterYear
	if len(parts) > 0 {
		term = parts[0]
	}
	if len(parts) > 1 {
		if y, err := strconv.Atoi(parts[1]); err == nil {
			year = y
		}
	}
	termIndex := 2
	switch term {
	case "Spring":
		termIndex = 0
	case "Summer":
		termIndex = 1
	}

	semesters := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if semesterTerms[termIndex] == "Summer" && i > 0 {
			termIndex = (termIndex + 1) % 3
			if termIndex == 0 {
				year++
			}
		}
		semesters = append(semesters, fmt.Sprintf("%s %d", semesterTerms[termIndex], year))
		termIndex = (termIndex + 1) % 3
		if termIndex == 0 {
			year++
		}
	}
	return semesters
}

var gradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// GradePoints maps a letter grade to 4.0-scale points. Unknown grades map
// to 0.
func GradePoints(grade string) float64 {
	return gradePoints[strings.ToUpper(strings.TrimSpace(grade))]
}
