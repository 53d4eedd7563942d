package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillboost/skillboost/internal/domain"
)

// fail maps domain sentinel errors to HTTP statuses; anything unmapped is a
// plain 500 without leaking internals.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrInterviewNotLive):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrTurnInFlight),
		errors.Is(err, domain.ErrSessionCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

type userJSON struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserJSON(u *domain.User) userJSON {
	return userJSON{ID: u.ID, Email: u.Email, FullName: u.FullName, CreatedAt: u.CreatedAt}
}

type sessionJSON struct {
	ID        uuid.UUID `json:"id"`
	RoleID    string    `json:"role_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Score     *int      `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func toSessionJSON(s domain.Session) sessionJSON {
	return sessionJSON{
		ID:        s.ID,
		RoleID:    s.RoleID,
		Title:     s.Title,
		Completed: s.Completed,
		Score:     s.Score,
		CreatedAt: s.CreatedAt,
	}
}

type messageJSON struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`
}

func toMessagesJSON(msgs []domain.Message) []messageJSON {
	out := make([]messageJSON, len(msgs))
	for i, m := range msgs {
		out[i] = messageJSON{ID: m.ID, Content: m.Content, IsUser: m.IsUser, CreatedAt: m.CreatedAt}
	}
	return out
}
