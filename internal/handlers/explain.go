package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boilerplan/boilerplan-backend/internal/services"
)

type ExplainHandler struct {
	explainService services.ExplainService
}

func NewExplainHandler(explainService services.ExplainService) *ExplainHandler {
	return &ExplainHandler{explainService: explainService}
}

func (eh *ExplainHandler) Explain(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	explanation, err := eh.explainService.ExplainCourse(c.Request.Context(), userID, c.Param("code"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "explain_failed", err)
		return
	}
	RespondOK(c, explanation)
}
