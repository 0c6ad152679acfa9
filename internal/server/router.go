package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/boilerplan/boilerplan-backend/internal/handlers"
	"github.com/boilerplan/boilerplan-backend/internal/middleware"
	"github.com/boilerplan/boilerplan-backend/internal/platform/envutil"
)

type RouterConfig struct {
	AuthMiddleware        *middleware.AuthMiddleware
	AuthHandler           *handlers.AuthHandler
	UserHandler           *handlers.UserHandler
	CatalogHandler        *handlers.CatalogHandler
	PreferencesHandler    *handlers.PreferencesHandler
	PlannerHandler        *handlers.PlannerHandler
	RecommendationHandler *handlers.RecommendationHandler
	DashboardHandler      *handlers.DashboardHandler
	ExplainHandler        *handlers.ExplainHandler
	ScrapeHandler         *handlers.ScrapeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	allowedOrigins := strings.Split(envutil.String("CORS_ALLOWED_ORIGINS", "http://localhost:3000"), ",")
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	// Public
	api.POST("/auth/register", cfg.AuthHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)
	api.GET("/courses", cfg.CatalogHandler.ListCourses)
	api.GET("/courses/:code", cfg.CatalogHandler.GetCourse)
	api.POST("/courses/find", cfg.CatalogHandler.FindCourses)
	api.GET("/courses/:code/prerequisites/chain", cfg.CatalogHandler.PrerequisiteChain)
	api.GET("/courses/:code/prerequisites/tree", cfg.CatalogHandler.PrerequisiteTree)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)

	protected.GET("/user", cfg.UserHandler.GetMe)
	protected.PATCH("/user", cfg.UserHandler.UpdateMe)

	protected.GET("/preferences", cfg.PreferencesHandler.Get)
	protected.PUT("/preferences", cfg.PreferencesHandler.Put)

	protected.GET("/planner", cfg.PlannerHandler.ListPlan)
	protected.POST("/planner", cfg.PlannerHandler.AddCourse)
	protected.PATCH("/planner/:id", cfg.PlannerHandler.UpdateCourse)
	protected.DELETE("/planner/:id", cfg.PlannerHandler.RemoveCourse)
	protected.GET("/planner/analysis", cfg.PlannerHandler.Analyze)
	protected.GET("/planner/gpa-impact", cfg.PlannerHandler.GPAImpact)

	protected.GET("/recommendations", cfg.RecommendationHandler.Recommend)
	protected.POST("/recommendations/optimize", cfg.RecommendationHandler.Optimize)
	protected.POST("/recommendations/gpa-boost", cfg.RecommendationHandler.GPABoost)
	protected.GET("/recommendations/risk", cfg.RecommendationHandler.SemesterRisk)
	protected.GET("/recommendations/next", cfg.RecommendationHandler.SuggestNext)

	protected.GET("/dashboard", cfg.DashboardHandler.Summary)

	protected.GET("/courses/:code/explain", cfg.ExplainHandler.Explain)

	protected.POST("/scrape", cfg.ScrapeHandler.Run)
	protected.GET("/scrape/status", cfg.ScrapeHandler.Status)

	return router
}
