package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/boilerplan/boilerplan-backend/internal/engine/finder"
	"github.com/boilerplan/boilerplan-backend/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (ch *CatalogHandler) ListCourses(c *gin.Context) {
	var query services.CourseListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_query", err)
		return
	}
	courses, err := ch.catalogService.ListCourses(c.Request.Context(), query)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "catalog_failed", err)
		return
	}
	RespondOK(c, gin.H{"courses": courses, "count": len(courses)})
}

func (ch *CatalogHandler) GetCourse(c *gin.Context) {
	course, err := ch.catalogService.GetCourse(c.Request.Context(), c.Param("code"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		RespondError(c, http.StatusNotFound, "course_not_found", err)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "catalog_failed", err)
		return
	}
	RespondOK(c, course)
}

func (ch *CatalogHandler) FindCourses(c *gin.Context) {
	var criteria finder.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	courses, err := ch.catalogService.FindCourses(c.Request.Context(), criteria)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "finder_failed", err)
		return
	}
	RespondOK(c, gin.H{"courses": courses, "count": len(courses)})
}

func (ch *CatalogHandler) PrerequisiteChain(c *gin.Context) {
	completed := c.QueryArray("completed")
	chain, err := ch.catalogService.PrerequisiteChain(c.Request.Context(), c.Param("code"), completed)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "chain_failed", err)
		return
	}
	RespondOK(c, chain)
}

func (ch *CatalogHandler) PrerequisiteTree(c *gin.Context) {
	maxDepth := 5
	if raw := c.Query("maxDepth"); raw != "" {
		if parsed, pErr := strconv.Atoi(raw); pErr == nil && parsed > 0 {
			maxDepth = parsed
		}
	}
	tree, err := ch.catalogService.PrerequisiteTree(c.Request.Context(), c.Param("code"), maxDepth)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "tree_failed", err)
		return
	}
	RespondOK(c, tree)
}
