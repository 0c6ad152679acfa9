// Package prereq resolves prerequisite readiness over an in-memory catalog
// snapshot: satisfaction checks, dependency trees and chains, and
// next-course suggestions. All functions are pure; they never mutate their
// inputs.
package prereq

import (
	"fmt"
	"math"
	"sort"
	"strings"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/courseutil"
)

const (
	// DefaultMaxTreeDepth caps prerequisite tree expansion.
	DefaultMaxTreeDepth = 5

	// DefaultTargetCredits is the per-semester credit budget used when
	// suggesting next courses.
	DefaultTargetCredits = 15

	// CreditsPerSemester is the assumed average load when estimating how
	// many semesters a prerequisite chain spans.
	CreditsPerSemester = 15
)

// CyclicPrerequisiteError reports a prerequisite graph cycle found during
// traversal. Catalogs are expected to be acyclic; a cycle is data
// corruption, not a planning outcome.
type CyclicPrerequisiteError struct {
	Cycle []string
}

func (e *CyclicPrerequisiteError) Error() string {
	return fmt.Sprintf("cyclic prerequisite chain: %s", strings.Join(e.Cycle, " -> "))
}

// CheckResult reports whether a course's prerequisites are satisfied by a
// completed-course set.
type CheckResult struct {
	Satisfied bool     `json:"satisfied"`
	Missing   []string `json:"missing"`
}

// CheckSatisfied compares a course's prerequisites against the canonicalized
// completed set. Missing prerequisites keep their original (uncanonicalized)
// spelling. Zero prerequisites are vacuously satisfied.
func CheckSatisfied(course *types.Course, completedCourses []string) CheckResult {
	completed := courseutil.CodeSet(completedCourses)
	missing := []string{}
	for _, prereq := range course.Prerequisites {
		if _, ok := completed[courseutil.CanonicalCode(prereq)]; !ok {
			missing = append(missing, prereq)
		}
	}
	return CheckResult{Satisfied: len(missing) == 0, Missing: missing}
}

// AvailableCourses lists every catalog course that is not completed and has
// all prerequisites satisfied. Order follows the input slice; callers
// re-sort.
func AvailableCourses(allCourses []*types.Course, completedCourses []string) []*types.Course {
	completed := courseutil.CodeSet(completedCourses)
	available := make([]*types.Course, 0, len(allCourses))
	for _, course := range allCourses {
		if _, done := completed[courseutil.CanonicalCode(course.Code)]; done {
			continue
		}
		satisfied := true
		for _, prereq := range course.Prerequisites {
			if _, ok := completed[courseutil.CanonicalCode(prereq)]; !ok {
				satisfied = false
				break
			}
		}
		if satisfied {
			available = append(available, course)
		}
	}
	return available
}

// TreeNode is one node in an expanded prerequisite tree. Course is nil for
// codes absent from the catalog.
type TreeNode struct {
	Code          string      `json:"code"`
	Course        *types.Course `json:"course,omitempty"`
	Prerequisites []*TreeNode `json:"prerequisites"`
	Depth         int         `json:"depth"`
}

// BuildTree expands a course's prerequisites recursively, capping at
// maxDepth (DefaultMaxTreeDepth when <= 0). A cycle in the catalog returns
// a CyclicPrerequisiteError instead of recursing forever.
func BuildTree(course *types.Course, catalog courseutil.Catalog, maxDepth int) (*TreeNode, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxTreeDepth
	}
	visiting := map[string]bool{}
	var build func(code string, depth int, path []string) (*TreeNode, error)
	build = func(code string, depth int, path []string) (*TreeNode, error) {
		canonical := courseutil.CanonicalCode(code)
		if visiting[canonical] {
			return nil, &CyclicPrerequisiteError{Cycle: append(append([]string{}, path...), code)}
		}
		if depth > maxDepth {
			return &TreeNode{Code: code, Prerequisites: []*TreeNode{}, Depth: depth}, nil
		}

		current, _ := catalog.Lookup(code)
		node := &TreeNode{Code: code, Course: current, Prerequisites: []*TreeNode{}, Depth: depth}
		if current == nil {
			return node, nil
		}

		visiting[canonical] = true
		defer delete(visiting, canonical)
		for _, prereq := range current.Prerequisites {
			child, err := build(prereq, depth+1, append(path, code))
			if err != nil {
				return nil, err
			}
			node.Prerequisites = append(node.Prerequisites, child)
		}
		return node, nil
	}
	return build(course.Code, 0, nil)
}

// Chain is a prerequisite chain in valid take-order: every course appears
// after all of its prerequisites that are present in the chain.
type Chain struct {
	TargetCourse       string   `json:"targetCourse"`
	Chain              []string `json:"chain"`
	TotalCourses       int      `json:"totalCourses"`
	TotalCredits       int      `json:"totalCredits"`
	EstimatedSemesters int      `json:"estimatedSemesters"`
}

// BuildChain walks the prerequisite graph post-order from target, skipping
// completed courses, and collects the remaining work in dependency order. A
// diamond dependency is listed once, at its first completion point. A cycle
// returns a CyclicPrerequisiteError.
func BuildChain(target *types.Course, catalog courseutil.Catalog, completedCourses []string) (Chain, error) {
	completed := courseutil.CodeSet(completedCourses)
	chain := []string{}

	const (
		stateVisiting = 1
		stateDone     = 2
	)
	state := map[string]int{}

	var collect func(code string, path []string) error
	collect = func(code string, path []string) error {
		canonical := courseutil.CanonicalCode(code)
		switch state[canonical] {
		case stateDone:
			return nil
		case stateVisiting:
			return &CyclicPrerequisiteError{Cycle: append(append([]string{}, path...), code)}
		}
		if _, done := completed[canonical]; done {
			return nil
		}

		course, ok := catalog.Lookup(code)
		if !ok {
			state[canonical] = stateDone
			return nil
		}

		state[canonical] = stateVisiting
		for _, prereq := range course.Prerequisites {
			if err := collect(prereq, append(path, code)); err != nil {
				return err
			}
		}
		state[canonical] = stateDone
		chain = append(chain, code)
		return nil
	}

	if err := collect(target.Code, nil); err != nil {
		return Chain{}, err
	}

	totalCredits := 0
	for _, code := range chain {
		if course, ok := catalog.Lookup(code); ok {
			totalCredits += course.Credits
		}
	}

	return Chain{
		TargetCourse:       target.Code,
		Chain:              chain,
		TotalCourses:       len(chain),
		TotalCredits:       totalCredits,
		EstimatedSemesters: int(math.Ceil(float64(totalCredits) / CreditsPerSemester)),
	}, nil
}

// SuggestNextCourses picks available courses to fill a credit budget
// (DefaultTargetCredits when targetCredits <= 0). Each candidate is valued
// by how many other catalog courses it unlocks, with lower-level and
// higher-GPA courses preferred, then courses are taken greedily while the
// running total stays within budget. The budget is a heuristic stopping
// condition, not a guarantee of an optimal set.
func SuggestNextCourses(allCourses []*types.Course, completedCourses []string, targetCredits int) []*types.Course {
	if targetCredits <= 0 {
		targetCredits = DefaultTargetCredits
	}

	available := AvailableCourses(allCourses, completedCourses)

	value := make(map[string]float64, len(available))
	for _, course := range available {
		canonical := courseutil.CanonicalCode(course.Code)
		v := 0.0
		for _, other := range allCourses {
			for _, prereq := range other.Prerequisites {
				if courseutil.CanonicalCode(prereq) == canonical {
					v += 10
					break
				}
			}
		}
		level := course.Level
		if level == 0 {
			level = 20000
		}
		v += float64(50000-level) / 1000
		v += courseutil.EffectiveGPA(course) * 5
		value[canonical] = v
	}

	ranked := make([]*types.Course, len(available))
	copy(ranked, available)
	sort.SliceStable(ranked, func(i, j int) bool {
		return value[courseutil.CanonicalCode(ranked[i].Code)] > value[courseutil.CanonicalCode(ranked[j].Code)]
	})

	selected := []*types.Course{}
	totalCredits := 0
	for _, course := range ranked {
		if totalCredits+course.Credits <= targetCredits {
			selected = append(selected, course)
			totalCredits += course.Credits
		}
		if totalCredits >= targetCredits {
			break
		}
	}
	return selected
}

// Visualize renders a prerequisite tree as an indented text outline.
func Visualize(node *TreeNode) string {
	var b strings.Builder
	var walk func(n *TreeNode, indent string)
	walk = func(n *TreeNode, indent string) {
		b.WriteString(indent)
		b.WriteString(n.Code)
		if n.Course != nil {
			fmt.Fprintf(&b, " (%d cr)", n.Course.Credits)
		}
		b.WriteByte('\n')
		for _, child := range n.Prerequisites {
			walk(child, indent+"  ")
		}
	}
	walk(node, "")
	return b.String()
}
