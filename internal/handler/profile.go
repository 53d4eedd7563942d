package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skillboost/skillboost/internal/middleware"
)

type updateProfileRequest struct {
	FullName string `json:"full_name"`
}

func (h *Handler) handleGetProfile(c *gin.Context) {
	user := middleware.GetUser(c)
	c.JSON(http.StatusOK, gin.H{"full_name": user.FullName, "updated_at": user.UpdatedAt})
}

func (h *Handler) handleUpdateProfile(c *gin.Context) {
	user := middleware.GetUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.users.UpdateProfile(c.Request.Context(), user.ID, strings.TrimSpace(req.FullName))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"full_name": updated.FullName, "updated_at": updated.UpdatedAt})
}
