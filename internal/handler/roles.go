package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillboost/skillboost/internal/catalog"
	"github.com/skillboost/skillboost/internal/domain"
)

func (h *Handler) handleListRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"roles": catalog.Roles})
}

func (h *Handler) handleRoleQuestions(c *gin.Context) {
	roleID := c.Param("id")
	if _, ok := catalog.RoleByID(roleID); !ok {
		fail(c, domain.ErrRoleNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": catalog.QuestionsByRole(roleID)})
}
