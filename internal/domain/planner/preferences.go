package planner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/domain/user"
)

// UserPreferences is the per-user questionnaire snapshot driving
// recommendations.
type UserPreferences struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	CareerGoals datatypes.JSONSlice[string] `gorm:"column:career_goals;type:jsonb" json:"careerGoals"`
	Interests   datatypes.JSONSlice[string] `gorm:"column:interests;type:jsonb" json:"interests"`

	TargetGPA        *float64 `gorm:"column:target_gpa" json:"targetGPA,omitempty"`
	MaxWorkloadHours *float64 `gorm:"column:max_workload_hours" json:"maxWorkloadHours,omitempty"`

	// One of "easy", "moderate", "challenging"; empty means no preference.
	PreferredDifficulty string `gorm:"column:preferred_difficulty" json:"preferredDifficulty,omitempty"`

	// Self-reported history, separate from planned-course status records.
	CompletedCourses datatypes.JSONSlice[string] `gorm:"column:completed_courses;type:jsonb" json:"completedCourses"`

	CurrentSemester    string `gorm:"column:current_semester" json:"currentSemester,omitempty"`
	GraduationSemester string `gorm:"column:graduation_semester" json:"graduationSemester,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserPreferences) TableName() string { return "user_preferences" }
