package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skillboost/skillboost/internal/catalog"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/service"
)

// The two completion endpoints mirror the hosted functions the web client
// invokes directly: one turns a transcript into a reply, one turns a role
// plus prior questions into a new question.

type chatAIRequest struct {
	Messages    []service.ChatMessage `json:"messages"`
	RoleContext string                `json:"roleContext"`
}

type generateQuestionRequest struct {
	RoleID            string   `json:"roleId"`
	PreviousQuestions []string `json:"previousQuestions"`
}

func (h *Handler) handleChatAI(c *gin.Context) {
	var req chatAIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	messages := req.Messages
	hasSystem := false
	for _, m := range messages {
		if m.Role == "system" {
			hasSystem = true
			break
		}
	}
	if !hasSystem {
		system := service.ChatMessage{Role: "system", Content: service.InterviewerSystemPrompt(req.RoleContext)}
		messages = append([]service.ChatMessage{system}, messages...)
	}

	resp, err := h.openAI.Chat(c.Request.Context(), messages, config.ChatTemperature)
	if err != nil {
		slog.Error("chat-ai completion", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content":   resp.Choices[0].Message.Content,
		"type":      "bot",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleGenerateQuestion(c *gin.Context) {
	var req generateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	role := catalog.RoleContext(req.RoleID)
	messages := []service.ChatMessage{
		{Role: "system", Content: service.QuestionSystemPrompt(role, req.PreviousQuestions)},
		{Role: "user", Content: "Generate a professional interview question for this role."},
	}

	resp, err := h.openAI.Chat(c.Request.Context(), messages, config.QuestionTemperature)
	if err != nil {
		slog.Error("generate-question completion", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question": strings.TrimSpace(resp.Choices[0].Message.Content),
	})
}
