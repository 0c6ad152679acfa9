package catalog

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeRun records one execution of a catalog/grade scraper.
type ScrapeRun struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Source     string    `gorm:"not null;column:source;index" json:"source"`
	Status     string    `gorm:"not null;column:status" json:"status"`
	Records    int       `gorm:"column:records;not null;default:0" json:"records"`
	DurationMS int64     `gorm:"column:duration_ms;not null;default:0" json:"duration_ms"`
	Error      string    `gorm:"column:error;type:text" json:"error,omitempty"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (ScrapeRun) TableName() string { return "scrape_run" }
