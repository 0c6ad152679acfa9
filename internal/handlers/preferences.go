package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/boilerplan/boilerplan-backend/internal/domain"
	"github.com/boilerplan/boilerplan-backend/internal/services"
)

type PreferencesHandler struct {
	preferencesService services.PreferencesService
}

func NewPreferencesHandler(preferencesService services.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

func (ph *PreferencesHandler) Get(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	prefs, err := ph.preferencesService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "preferences_failed", err)
		return
	}
	RespondOK(c, prefs)
}

func (ph *PreferencesHandler) Put(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
		return
	}
	var req types.UserPreferences
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	req.UserID = userID

	saved, err := ph.preferencesService.UpsertPreferences(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "preferences_failed", err)
		return
	}
	RespondOK(c, saved)
}
