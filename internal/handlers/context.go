package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/boilerplan/boilerplan-backend/internal/requestdata"
)

// currentUserID reads the authenticated user from the request context set
// by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("no authenticated user in context")
	}
	return rd.UserID, nil
}
