package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// Identity + auth
		&types.User{},
		&types.UserToken{},

		// Catalog
		&types.Course{},
		&types.ScrapeRun{},

		// Planner
		&types.UserPreferences{},
		&types.PlannedCourse{},
	)
}

func EnsureCatalogIndexes(db *gorm.DB) error {
	// Case-insensitive lookup by code for finder search.
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_course_code_lower ON course (lower(code));`).Error; err != nil {
		return fmt.Errorf("create idx_course_code_lower: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_course_department_level ON course (department, level);`).Error; err != nil {
		return fmt.Errorf("create idx_course_department_level: %w", err)
	}
	// Plan listing per user in semester order.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_planned_course_user_semester
		ON planned_course (user_id, year, semester)
		WHERE deleted_at IS NULL;
	`).Error; err != nil {
		return fmt.Errorf("create idx_planned_course_user_semester: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_scrape_run_created_at ON scrape_run (created_at DESC);`).Error; err != nil {
		return fmt.Errorf("create idx_scrape_run_created_at: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureCatalogIndexes(s.db); err != nil {
		s.log.Error("Catalog index migration failed", "error", err)
		return err
	}
	return nil
}
