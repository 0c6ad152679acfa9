package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/engine/recommend"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
	"github.com/boilerplan/boilerplan-backend/internal/platform/openai"
)

const explainSystemPrompt = "You are an academic advisor for electrical and computer engineering students. " +
	"Explain in two or three sentences why the course below fits (or does not fit) the student, " +
	"using only the provided facts. Be concrete and mention the strongest factor."

// Explanation pairs the generated advisory text with the scores it was
// grounded on.
type Explanation struct {
	CourseCode string            `json:"courseCode"`
	Score      int               `json:"score"`
	Factors    recommend.Factors `json:"factors"`
	Text       string            `json:"text"`
}

type ExplainService interface {
	ExplainCourse(ctx context.Context, userID uuid.UUID, courseCode string) (Explanation, error)
}

type explainService struct {
	log         *logger.Logger
	courseRepo  repos.CourseRepo
	prefsRepo   repos.PreferencesRepo
	plannedRepo repos.PlannedCourseRepo
	ai          openai.Client
}

func NewExplainService(
	log *logger.Logger,
	courseRepo repos.CourseRepo,
	prefsRepo repos.PreferencesRepo,
	plannedRepo repos.PlannedCourseRepo,
	ai openai.Client,
) ExplainService {
	return &explainService{
		log:         log.With("service", "ExplainService"),
		courseRepo:  courseRepo,
		prefsRepo:   prefsRepo,
		plannedRepo: plannedRepo,
		ai:          ai,
	}
}

// ExplainCourse scores the course against the user's profile and asks the
// model to narrate the result. Generation failures degrade to a templated
// explanation; the scores are always returned.
func (es *explainService) ExplainCourse(ctx context.Context, userID uuid.UUID, courseCode string) (Explanation, error) {
	course, err := es.courseRepo.GetByCode(ctx, nil, courseCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Explanation{}, fmt.Errorf("course %s not found", courseCode)
	}
	if err != nil {
		return Explanation{}, fmt.Errorf("get course: %w", err)
	}

	prefs, err := es.prefsRepo.GetByUserID(ctx, nil, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = &types.UserPreferences{UserID: userID}
	} else if err != nil {
		return Explanation{}, fmt.Errorf("get preferences: %w", err)
	}

	completed, err := completedCourseCodes(ctx, es.prefsRepo, es.plannedRepo, userID)
	if err != nil {
		return Explanation{}, err
	}

	score, factors := recommend.ScoreCourse(course, prefs, completed, recommend.DefaultWeights)
	explanation := Explanation{
		CourseCode: course.Code,
		Score:      score,
		Factors:    factors,
	}

	text, genErr := es.ai.GenerateText(ctx, explainSystemPrompt, buildExplainPrompt(course, prefs, score, factors))
	if genErr != nil {
		es.log.Warn("Explanation generation failed, using fallback", "course", course.Code, "error", genErr.Error())
		explanation.Text = fallbackExplanation(course, score, factors)
		return explanation, nil
	}
	explanation.Text = strings.TrimSpace(text)
	return explanation, nil
}

func buildExplainPrompt(course *types.Course, prefs *types.UserPreferences, score int, factors recommend.Factors) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course: %s %s (%d credits)\n", course.Code, course.Name, course.Credits)
	if course.AvgGPA != nil {
		fmt.Fprintf(&b, "Historical average GPA: %.2f\n", *course.AvgGPA)
	}
	if course.DifficultyRating != nil {
		fmt.Fprintf(&b, "Difficulty rating: %.1f/5\n", *course.DifficultyRating)
	}
	if course.WorkloadHours != nil {
		fmt.Fprintf(&b, "Weekly workload: %.0f hours\n", *course.WorkloadHours)
	}
	if len(course.CareerTags) > 0 {
		fmt.Fprintf(&b, "Career tracks: %s\n", strings.Join(course.CareerTags, ", "))
	}
	if len(prefs.CareerGoals) > 0 {
		fmt.Fprintf(&b, "Student career goals: %s\n", strings.Join(prefs.CareerGoals, ", "))
	}
	if len(prefs.Interests) > 0 {
		fmt.Fprintf(&b, "Student interests: %s\n", strings.Join(prefs.Interests, ", "))
	}
	if prefs.TargetGPA != nil {
		fmt.Fprintf(&b, "Student target GPA: %.2f\n", *prefs.TargetGPA)
	}
	fmt.Fprintf(&b, "Recommendation score: %d/100\n", score)
	fmt.Fprintf(&b, "Factor scores: career %.0f, difficulty %.0f, gpa %.0f, prerequisites %.0f, workload %.0f, interest %.0f\n",
		factors.CareerMatch, factors.DifficultyMatch, factors.GPAOptimal,
		factors.PrerequisiteReady, factors.WorkloadFit, factors.InterestMatch)
	return b.String()
}

func fallbackExplanation(course *types.Course, score int, factors recommend.Factors) string {
	strongest := "career alignment"
	best := factors.CareerMatch
	for _, candidate := range []struct {
		name  string
		value float64
	}{
		{"difficulty fit", factors.DifficultyMatch},
		{"GPA outlook", factors.GPAOptimal},
		{"prerequisite readiness", factors.PrerequisiteReady},
		{"workload fit", factors.WorkloadFit},
		{"interest alignment", factors.InterestMatch},
	} {
		if candidate.value > best {
			best = candidate.value
			strongest = candidate.name
		}
	}
	return fmt.Sprintf("%s scores %d/100 for you; its strongest factor is %s.",
		course.Code, score, strongest)
}
