package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is the read-only reference record the planning engine consumes.
// Course codes ("ECE 30100") are the stable identity; the uuid exists only
// for storage.
type Course struct {
	ID   uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Code string    `gorm:"uniqueIndex;not null;column:code" json:"code"`
	Name string    `gorm:"not null;column:name" json:"name"`

	Description string `gorm:"column:description;type:text" json:"description,omitempty"`
	Department  string `gorm:"column:department;index" json:"department,omitempty"`
	Credits     int    `gorm:"column:credits;not null;default:3" json:"credits"`
	Level       int    `gorm:"column:level;index" json:"level"`

	// Aggregates scraped from grade/review sources. Nil means no data;
	// consumers substitute the documented defaults.
	AvgGPA           *float64 `gorm:"column:avg_gpa" json:"avgGPA,omitempty"`
	DifficultyRating *float64 `gorm:"column:difficulty_rating" json:"difficultyRating,omitempty"`
	WorkloadHours    *float64 `gorm:"column:workload_hours" json:"workloadHours,omitempty"`
	ReviewCount      int      `gorm:"column:review_count;not null;default:0" json:"reviewCount"`

	Prerequisites datatypes.JSONSlice[string] `gorm:"column:prerequisites;type:jsonb" json:"prerequisites"`
	Corequisites  datatypes.JSONSlice[string] `gorm:"column:corequisites;type:jsonb" json:"corequisites"`
	Semesters     datatypes.JSONSlice[string] `gorm:"column:semesters;type:jsonb" json:"semesters"`
	CareerTags    datatypes.JSONSlice[string] `gorm:"column:career_tags;type:jsonb" json:"careerTags"`
	InterestTags  datatypes.JSONSlice[string] `gorm:"column:interest_tags;type:jsonb" json:"interestTags"`

	IsMajorRequirement  bool   `gorm:"column:is_major_requirement;not null;default:false" json:"isMajorRequirement"`
	IsTechElective      bool   `gorm:"column:is_tech_elective;not null;default:false" json:"isTechElective"`
	IsGenEd             bool   `gorm:"column:is_gen_ed;not null;default:false" json:"isGenEd"`
	IsLabCredit         bool   `gorm:"column:is_lab_credit;not null;default:false" json:"isLabCredit"`
	RequirementCategory string `gorm:"column:requirement_category" json:"requirementCategory,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Course) TableName() string { return "course" }
