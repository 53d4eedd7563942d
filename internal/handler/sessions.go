package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/domain"
	"github.com/skillboost/skillboost/internal/middleware"
	"github.com/skillboost/skillboost/internal/service"
)

type startSessionRequest struct {
	RoleID string `json:"role_id"`
}

type answerRequest struct {
	Content string `json:"content"`
}

type turnJSON struct {
	SessionID uuid.UUID     `json:"session_id"`
	Messages  []messageJSON `json:"messages"`
	Phase     service.Phase `json:"phase"`
	Completed bool          `json:"completed"`
	Score     *int          `json:"score,omitempty"`
	Warning   string        `json:"warning,omitempty"`
}

func toTurnJSON(r *service.TurnResult) turnJSON {
	return turnJSON{
		SessionID: r.SessionID,
		Messages:  toMessagesJSON(r.Messages),
		Phase:     r.Phase,
		Completed: r.Completed,
		Score:     r.Score,
		Warning:   r.Warning,
	}
}

func (h *Handler) handleStartSession(c *gin.Context) {
	user := middleware.GetUser(c)

	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RoleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role_id is required"})
		return
	}

	result, err := h.interviews.Start(c.Request.Context(), user.ID, req.RoleID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, toTurnJSON(result))
}

func (h *Handler) handleAnswer(c *gin.Context) {
	user := middleware.GetUser(c)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, domain.ErrSessionNotFound)
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.interviews.Answer(c.Request.Context(), user.ID, sessionID, req.Content)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, toTurnJSON(result))
}

func (h *Handler) handleListSessions(c *gin.Context) {
	user := middleware.GetUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	if page < 0 {
		page = 0
	}

	total, err := h.sessions.CountByUser(c.Request.Context(), user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	list, err := h.sessions.ListByUser(c.Request.Context(), user.ID, config.SessionsPerPage, page*config.SessionsPerPage)
	if err != nil {
		fail(c, err)
		return
	}

	out := make([]sessionJSON, len(list))
	for i, s := range list {
		out[i] = toSessionJSON(s)
	}
	c.JSON(http.StatusOK, gin.H{"sessions": out, "total": total, "page": page})
}

func (h *Handler) handleSessionMessages(c *gin.Context) {
	user := middleware.GetUser(c)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, domain.ErrSessionNotFound)
		return
	}

	sess, err := h.sessions.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	if sess.UserID != user.ID {
		fail(c, domain.ErrSessionNotFound)
		return
	}

	// A live interview's in-memory transcript is authoritative; fall back to
	// the persisted rows for finished or resumed-from-elsewhere sessions.
	if msgs, ok := h.interviews.Transcript(sessionID); ok {
		c.JSON(http.StatusOK, gin.H{"session": toSessionJSON(*sess), "messages": toMessagesJSON(msgs)})
		return
	}

	msgs, err := h.sessions.GetMessages(c.Request.Context(), sessionID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": toSessionJSON(*sess), "messages": toMessagesJSON(msgs)})
}

func (h *Handler) handleDeleteSession(c *gin.Context) {
	user := middleware.GetUser(c)

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, domain.ErrSessionNotFound)
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), user.ID, sessionID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
