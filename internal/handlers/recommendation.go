package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/boilerplan/boilerplan-backend/internal/engine/gpaopt"
	"github.com/boilerplan/boilerplan-backend/internal/services"
)

type RecommendationHandler struct {
	recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (rh *RecommendationHandler) Recommend(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, pErr := strconv.Atoi(raw); pErr == nil {
			limit = parsed
		}
	}
	recs, err := rh.recommendationService.Recommend(c.Request.Context(), userID, limit, c.Query("career"))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "recommend_failed", err)
		return
	}
	RespondOK(c, gin.H{"recommendations": recs, "count": len(recs)})
}

func (rh *RecommendationHandler) Optimize(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	var constraints gpaopt.Constraints
	if err := c.ShouldBindJSON(&constraints); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := rh.recommendationService.OptimizeSemester(c.Request.Context(), userID, constraints)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "optimize_failed", err)
		return
	}
	RespondOK(c, result)
}

func (rh *RecommendationHandler) GPABoost(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	var req struct {
		CurrentGPA     float64 `json:"currentGPA"`
		CurrentCredits int     `json:"currentCredits"`
		TargetGPA      float64 `json:"targetGPA"`
		MaxCourses     int     `json:"maxCourses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	courses, err := rh.recommendationService.GPABoostCourses(
		c.Request.Context(), userID, req.CurrentGPA, req.CurrentCredits, req.TargetGPA, req.MaxCourses)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "boost_failed", err)
		return
	}
	RespondOK(c, gin.H{"courses": courses, "count": len(courses)})
}

func (rh *RecommendationHandler) SemesterRisk(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	semester := c.Query("semester")
	if semester == "" {
		RespondError(c, http.StatusBadRequest, "missing_semester", nil)
		return
	}
	risk, err := rh.recommendationService.SemesterRisk(c.Request.Context(), userID, semester)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "risk_failed", err)
		return
	}
	RespondOK(c, risk)
}

func (rh *RecommendationHandler) SuggestNext(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	targetCredits := 15
	if raw := c.Query("targetCredits"); raw != "" {
		if parsed, pErr := strconv.Atoi(raw); pErr == nil && parsed > 0 {
			targetCredits = parsed
		}
	}
	courses, err := rh.recommendationService.SuggestNextCourses(c.Request.Context(), userID, targetCredits)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "suggest_failed", err)
		return
	}
	RespondOK(c, gin.H{"courses": courses, "count": len(courses)})
}
