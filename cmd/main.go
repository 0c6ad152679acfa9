package main

import (
	"fmt"
	"os"
	"time"

	"github.com/boilerplan/boilerplan-backend/internal/data/db"
	"github.com/boilerplan/boilerplan-backend/internal/data/repos"
	"github.com/boilerplan/boilerplan-backend/internal/handlers"
	"github.com/boilerplan/boilerplan-backend/internal/middleware"
	"github.com/boilerplan/boilerplan-backend/internal/platform/envutil"
	"github.com/boilerplan/boilerplan-backend/internal/platform/logger"
	"github.com/boilerplan/boilerplan-backend/internal/platform/openai"
	"github.com/boilerplan/boilerplan-backend/internal/scraper"
	"github.com/boilerplan/boilerplan-backend/internal/server"
	"github.com/boilerplan/boilerplan-backend/internal/services"
)

func main() {
	// Logger
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	jwtSecretKey := envutil.String("JWT_SECRET_KEY", "defaultsecret")
	accessTokenTTL := envutil.Int("ACCESS_TOKEN_TTL", 3600)
	refreshTokenTTL := envutil.Int("REFRESH_TOKEN_TTL", 86400)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err.Error())
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err.Error())
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	courseRepo := repos.NewCourseRepo(thePG, log)
	scrapeRunRepo := repos.NewScrapeRunRepo(thePG, log)
	preferencesRepo := repos.NewPreferencesRepo(thePG, log)
	plannedCourseRepo := repos.NewPlannedCourseRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	openaiClient, err := openai.NewClient(log)
	if err != nil {
		log.Error("Could not init OpenAI client", "error", err.Error())
		os.Exit(1)
	}
	catalogScraper := scraper.NewCatalogScraper(log)

	authService := services.NewAuthService(
		thePG, log, userRepo, userTokenRepo, jwtSecretKey,
		time.Duration(accessTokenTTL)*time.Second,
		time.Duration(refreshTokenTTL)*time.Second,
	)
	userService := services.NewUserService(thePG, log, userRepo)
	catalogService := services.NewCatalogService(thePG, log, courseRepo)
	preferencesService := services.NewPreferencesService(thePG, log, preferencesRepo)
	plannerService := services.NewPlannerService(thePG, log, plannedCourseRepo, courseRepo, preferencesRepo)
	recommendationService := services.NewRecommendationService(thePG, log, courseRepo, preferencesRepo, plannedCourseRepo)
	dashboardService := services.NewDashboardService(thePG, log, courseRepo, preferencesRepo, plannedCourseRepo, recommendationService)
	explainService := services.NewExplainService(log, courseRepo, preferencesRepo, plannedCourseRepo, openaiClient)
	scraperService := services.NewScraperService(thePG, log, catalogScraper, courseRepo, scrapeRunRepo)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:        middleware.NewAuthMiddleware(log, authService),
		AuthHandler:           handlers.NewAuthHandler(authService),
		UserHandler:           handlers.NewUserHandler(userService),
		CatalogHandler:        handlers.NewCatalogHandler(catalogService),
		PreferencesHandler:    handlers.NewPreferencesHandler(preferencesService),
		PlannerHandler:        handlers.NewPlannerHandler(plannerService),
		RecommendationHandler: handlers.NewRecommendationHandler(recommendationService),
		DashboardHandler:      handlers.NewDashboardHandler(dashboardService),
		ExplainHandler:        handlers.NewExplainHandler(explainService),
		ScrapeHandler:         handlers.NewScrapeHandler(scraperService),
	})

	port := envutil.String("PORT", "8080")
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err.Error())
		os.Exit(1)
	}
}
