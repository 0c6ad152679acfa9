// Seeds the demo ECE catalog into Postgres. Safe to re-run: courses are
// upserted by code.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/boilerplan/boilerplan-backend/internal/data/db"
	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	"github.com/boilerplan/boilerplan-backend/internal/platform/envutil"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
	"github.com/boilerplan/boilerplan-backend/internal/scraper"
)

func main() {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err.Error())
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err.Error())
		os.Exit(1)
	}

	courseRepo := repos.NewCourseRepo(postgresService.DB(), log)
	courses := scraper.SampleCourses()
	if _, err := courseRepo.UpsertByCode(context.Background(), nil, courses); err != nil {
		log.Error("Seeding catalog failed", "error", err.Error())
		os.Exit(1)
	}
	log.Info("Seeded demo catalog", "courses", len(courses))
}
