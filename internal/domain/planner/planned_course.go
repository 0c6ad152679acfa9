package planner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/domain/user"
)

const (
	StatusPlanned    = "planned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// PlannedCourse is one (user, course, semester) assignment on the planner
// board.
type PlannedCourse struct {
	ID     uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_planned_user_course_semester,priority:1" json:"user_id"`
	User   *user.User `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`

	CourseCode string `gorm:"not null;column:course_code;uniqueIndex:idx_planned_user_course_semester,priority:2" json:"courseCode"`
	Semester   string `gorm:"not null;column:semester;uniqueIndex:idx_planned_user_course_semester,priority:3" json:"semester"`
	Year       int    `gorm:"column:year;index" json:"year"`

	Status string `gorm:"not null;column:status;default:'planned'" json:"status"`
	Grade  string `gorm:"column:grade" json:"grade,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PlannedCourse) TableName() string { return "planned_course" }
