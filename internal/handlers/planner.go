package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boilerplan/boilerplan-backend/internal/services"
)

type PlannerHandler struct {
	plannerService services.PlannerService
}

func NewPlannerHandler(plannerService services.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

func (ph *PlannerHandler) ListPlan(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	plan, err := ph.plannerService.ListPlan(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "plan_failed", err)
		return
	}
	RespondOK(c, gin.H{"semesters": plan})
}

func (ph *PlannerHandler) AddCourse(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	var req struct {
		CourseCode string `json:"courseCode"`
		Semester   string `json:"semester"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	planned, err := ph.plannerService.AddCourse(c.Request.Context(), userID, req.CourseCode, req.Semester, req.Status)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "add_failed", err)
		return
	}
	RespondCreated(c, planned)
}

func (ph *PlannerHandler) UpdateCourse(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	plannedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	var req services.PlannedCourseUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := ph.plannerService.UpdateCourse(c.Request.Context(), userID, plannedID, req); err != nil {
		RespondError(c, http.StatusBadRequest, "update_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (ph *PlannerHandler) RemoveCourse(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	plannedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return
	}
	if err := ph.plannerService.RemoveCourse(c.Request.Context(), userID, plannedID); err != nil {
		RespondError(c, http.StatusBadRequest, "remove_failed", err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}

func (ph *PlannerHandler) Analyze(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	analysis, err := ph.plannerService.AnalyzePlan(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "analysis_failed", err)
		return
	}
	RespondOK(c, analysis)
}

func (ph *PlannerHandler) GPAImpact(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	currentGPA, err := strconv.ParseFloat(c.Query("currentGPA"), 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_gpa", err)
		return
	}
	currentCredits, err := strconv.Atoi(c.Query("currentCredits"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_credits", err)
		return
	}
	semester := c.Query("semester")
	if semester == "" {
		RespondError(c, http.StatusBadRequest, "missing_semester", nil)
		return
	}
	impact, err := ph.plannerService.GPAImpact(c.Request.Context(), userID, currentGPA, currentCredits, semester)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "impact_failed", err)
		return
	}
	RespondOK(c, impact)
}
