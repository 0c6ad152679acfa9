package prereq

import (
	"errors"
	"testing"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
)

func f(v float64) *float64 { return &v }

func course(code string, credits int, prereqs ...string) *types.Course {
	return &types.Course{Code: code, Credits: credits, Prerequisites: prereqs}
}

func testCatalog() ([]*types.Course, courseutil.Catalog) {
	courses := []*types.Course{
		course("MA 16100", 5),
		course("MA 16200", 5, "MA 16100"),
		course("ECE 20001", 3, "MA 16200"),
		course("ECE 20002", 3, "ECE 20001"),
		course("ECE 27000", 4),
		course("ECE 30100", 3, "ECE 20002", "MA 16200"),
	}
	return courses, courseutil.NewCatalog(courses)
}

func TestCheckSatisfiedNoPrerequisites(t *testing.T) {
	result := CheckSatisfied(course("ECE 27000", 4), nil)
	if !result.Satisfied {
		t.Fatalf("zero prerequisites should be vacuously satisfied")
	}
	if len(result.Missing) != 0 {
		t.Fatalf("missing = %v, want empty", result.Missing)
	}
}

func TestCheckSatisfiedReportsMissing(t *testing.T) {
	target := course("ECE 30100", 3, "ECE 20002", "MA 16200")
	result := CheckSatisfied(target, []string{"ma16200"})
	if result.Satisfied {
		t.Fatalf("expected unsatisfied")
	}
	if len(result.Missing) != 1 || result.Missing[0] != "ECE 20002" {
		t.Fatalf("missing = %v, want original spelling of ECE 20002", result.Missing)
	}

	result = CheckSatisfied(target, []string{"MA 16200", "ECE 20002"})
	if !result.Satisfied || len(result.Missing) != 0 {
		t.Fatalf("expected satisfied, got %+v", result)
	}
}

func TestAvailableCoursesExcludesCompletedAndBlocked(t *testing.T) {
	courses, _ := testCatalog()
	available := AvailableCourses(courses, []string{"MA 16100"})

	got := map[string]bool{}
	for _, c := range available {
		got[c.Code] = true
	}
	if got["MA 16100"] {
		t.Fatalf("completed course should not be available")
	}
	if !got["MA 16200"] || !got["ECE 27000"] {
		t.Fatalf("expected MA 16200 and ECE 27000 available, got %v", got)
	}
	if got["ECE 30100"] {
		t.Fatalf("ECE 30100 prerequisites are unmet")
	}
}

func TestBuildChainTopologicalOrder(t *testing.T) {
	courses, cat := testCatalog()
	_ = courses

	target, _ := cat.Lookup("ECE 30100")
	chain, err := BuildChain(target, cat, []string{"MA 16100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	position := map[string]int{}
	for i, code := range chain.Chain {
		canonical := courseutil.CanonicalCode(code)
		if _, dup := position[canonical]; dup {
			t.Fatalf("course %s listed twice in chain %v", code, chain.Chain)
		}
		position[canonical] = i
	}

	if _, present := position["MA16100"]; present {
		t.Fatalf("completed course must not appear in chain: %v", chain.Chain)
	}

	for _, code := range chain.Chain {
		c, ok := cat.Lookup(code)
		if !ok {
			continue
		}
		for _, prereq := range c.Prerequisites {
			prereqPos, inChain := position[courseutil.CanonicalCode(prereq)]
			if inChain && prereqPos > position[courseutil.CanonicalCode(code)] {
				t.Fatalf("%s listed before its prerequisite %s: %v", code, prereq, chain.Chain)
			}
		}
	}

	// MA 16200 (5) + ECE 20001 (3) + ECE 20002 (3) + ECE 30100 (3)
	if chain.TotalCredits != 14 {
		t.Fatalf("TotalCredits = %d, want 14", chain.TotalCredits)
	}
	if chain.EstimatedSemesters != 1 {
		t.Fatalf("EstimatedSemesters = %d, want 1", chain.EstimatedSemesters)
	}
	if chain.TotalCourses != len(chain.Chain) {
		t.Fatalf("TotalCourses = %d, chain length %d", chain.TotalCourses, len(chain.Chain))
	}
}

func TestBuildChainDiamondListedOnce(t *testing.T) {
	courses := []*types.Course{
		course("BASE 10000", 3),
		course("LEFT 20000", 3, "BASE 10000"),
		course("RIGHT 20000", 3, "BASE 10000"),
		course("TOP 30000", 3, "LEFT 20000", "RIGHT 20000"),
	}
	cat := courseutil.NewCatalog(courses)

	chain, err := BuildChain(courses[3], cat, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chain.TotalCourses != 4 {
		t.Fatalf("diamond base should be listed once, chain %v", chain.Chain)
	}
	if chain.Chain[0] != "BASE 10000" {
		t.Fatalf("base must come first, chain %v", chain.Chain)
	}
}

func TestBuildChainDetectsCycle(t *testing.T) {
	courses := []*types.Course{
		course("A 10000", 3, "B 10000"),
		course("B 10000", 3, "A 10000"),
	}
	cat := courseutil.NewCatalog(courses)

	_, err := BuildChain(courses[0], cat, nil)
	if err == nil {
		t.Fatalf("expected cycle error")
	}
	var cyclic *CyclicPrerequisiteError
	if !errors.As(err, &cyclic) {
		t.Fatalf("expected CyclicPrerequisiteError, got %T", err)
	}
	if len(cyclic.Cycle) == 0 {
		t.Fatalf("cycle path should be populated")
	}
}

func TestBuildTreeUnknownPrereqIsLeaf(t *testing.T) {
	courses := []*types.Course{course("ECE 20001", 3, "PHYS 17200")}
	cat := courseutil.NewCatalog(courses)

	tree, err := BuildTree(courses[0], cat, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Prerequisites) != 1 {
		t.Fatalf("expected one child, got %d", len(tree.Prerequisites))
	}
	leaf := tree.Prerequisites[0]
	if leaf.Course != nil {
		t.Fatalf("unknown code should have no course payload")
	}
	if len(leaf.Prerequisites) != 0 {
		t.Fatalf("unknown code should be a leaf")
	}
}

func TestBuildTreeDetectsCycle(t *testing.T) {
	courses := []*types.Course{
		course("A 10000", 3, "B 10000"),
		course("B 10000", 3, "A 10000"),
	}
	cat := courseutil.NewCatalog(courses)

	_, err := BuildTree(courses[0], cat, 0)
	var cyclic *CyclicPrerequisiteError
	if !errors.As(err, &cyclic) {
		t.Fatalf("expected CyclicPrerequisiteError, got %v", err)
	}
}

func TestBuildTreeDepthCap(t *testing.T) {
	courses := []*types.Course{
		course("L1", 3, "L2"),
		course("L2", 3, "L3"),
		course("L3", 3, "L4"),
		course("L4", 3),
	}
	cat := courseutil.NewCatalog(courses)

	tree, err := BuildTree(courses[0], cat, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node := tree
	depth := 0
	for len(node.Prerequisites) > 0 {
		node = node.Prerequisites[0]
		depth++
	}
	if depth > 3 {
		t.Fatalf("expansion exceeded depth cap: %d", depth)
	}
}

func TestSuggestNextCoursesRespectsCreditBudget(t *testing.T) {
	courses := []*types.Course{
		{Code: "A 20000", Credits: 4, Level: 20000, AvgGPA: f(3.5)},
		{Code: "B 20000", Credits: 4, Level: 20000, AvgGPA: f(3.2)},
		{Code: "C 30000", Credits: 4, Level: 30000, AvgGPA: f(3.0)},
		{Code: "D 30000", Credits: 4, Level: 30000, AvgGPA: f(2.8)},
		{Code: "E 40000", Credits: 4, Level: 40000, AvgGPA: f(3.9)},
	}

	selected := SuggestNextCourses(courses, nil, 12)
	total := 0
	for _, c := range selected {
		total += c.Credits
	}
	if total > 12 {
		t.Fatalf("selected %d credits, budget 12", total)
	}
	if len(selected) != 3 {
		t.Fatalf("expected 3 four-credit courses, got %d", len(selected))
	}
}

func TestSuggestNextCoursesPrefersUnlockingCourses(t *testing.T) {
	courses := []*types.Course{
		{Code: "GATE 20000", Credits: 3, Level: 20000, AvgGPA: f(2.5)},
		{Code: "LONE 20000", Credits: 3, Level: 20000, AvgGPA: f(3.9)},
		{Code: "NEXT1 30000", Credits: 3, Level: 30000, Prerequisites: []string{"GATE 20000"}},
		{Code: "NEXT2 30000", Credits: 3, Level: 30000, Prerequisites: []string{"GATE 20000"}},
	}

	selected := SuggestNextCourses(courses, nil, 3)
	if len(selected) == 0 || selected[0].Code != "GATE 20000" {
		t.Fatalf("expected GATE 20000 first for unlocking two courses, got %v", selected)
	}
}

func TestVisualize(t *testing.T) {
	courses := []*types.Course{course("ECE 20002", 3, "ECE 20001"), course("ECE 20001", 3)}
	cat := courseutil.NewCatalog(courses)
	tree, err := BuildTree(courses[0], cat, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := Visualize(tree)
	want := "ECE 20002 (3 cr)\n  ECE 20001 (3 cr)\n"
	if out != want {
		t.Fatalf("Visualize = %q, want %q", out, want)
	}
}
