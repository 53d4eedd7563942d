package service

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/skillboost/skillboost/internal/catalog"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/domain"
)

// QuestionSource produces interview questions, conversational replies and the
// final assessment. Two implementations exist: StaticSource walks the
// catalog's per-role question lists, ModelSource asks the chat-completion
// API. The controller is agnostic to which one it drives.
type QuestionSource interface {
	// NextQuestion returns a question not present in askedSoFar.
	NextQuestion(ctx context.Context, role catalog.Role, askedSoFar []string) (string, Usage, error)
	// Respond returns a free-form reply to the latest answer, or "" when the
	// source has no conversational replies.
	Respond(ctx context.Context, role catalog.Role, transcript []domain.Turn) (string, Usage, error)
	// Summarize returns the final assessment text and a score in [60, 100].
	Summarize(ctx context.Context, role catalog.Role, transcript []domain.Turn) (string, int, Usage, error)
	// QuestionTarget is how many questions to ask before summarizing.
	QuestionTarget(role catalog.Role) int
}

// randomScore returns the placeholder session score. Not a real evaluation.
func randomScore() int {
	return config.ScoreMin + rand.Intn(config.ScoreMax-config.ScoreMin+1)
}

// StaticSource serves the built-in per-role question lists in order.
type StaticSource struct{}

func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

func (s *StaticSource) NextQuestion(ctx context.Context, role catalog.Role, askedSoFar []string) (string, Usage, error) {
	for _, q := range catalog.QuestionsByRole(role.ID) {
		if !slices.Contains(askedSoFar, q.Text) {
			return q.Text, Usage{}, nil
		}
	}
	return "", Usage{}, domain.ErrNoQuestions
}

func (s *StaticSource) Respond(ctx context.Context, role catalog.Role, transcript []domain.Turn) (string, Usage, error) {
	return "", Usage{}, nil
}

func (s *StaticSource) Summarize(ctx context.Context, role catalog.Role, transcript []domain.Turn) (string, int, Usage, error) {
	skills := role.Skills
	if len(skills) < 2 {
		skills = catalog.FallbackRole.Skills
	}
	text := fmt.Sprintf(
		"Thanks for completing the %s practice interview! You worked through questions covering %s and %s, among other areas. Review the explanations for each question and keep practicing the full skill set for this role: %s.",
		role.Title, skills[0], skills[1], strings.Join(skills, ", "),
	)
	return text, randomScore(), Usage{}, nil
}

func (s *StaticSource) QuestionTarget(role catalog.Role) int {
	return len(catalog.QuestionsByRole(role.ID))
}

// ModelSource asks the chat-completion API for questions and replies.
type ModelSource struct {
	ai     *OpenAIService
	target int
}

func NewModelSource(ai *OpenAIService, target int) *ModelSource {
	return &ModelSource{ai: ai, target: target}
}

func (s *ModelSource) NextQuestion(ctx context.Context, role catalog.Role, askedSoFar []string) (string, Usage, error) {
	messages := []ChatMessage{
		{Role: "system", Content: QuestionSystemPrompt(role, askedSoFar)},
		{Role: "user", Content: "Generate a professional interview question for this role."},
	}
	resp, err := s.ai.Chat(ctx, messages, config.QuestionTemperature)
	if err != nil {
		return "", Usage{}, fmt.Errorf("generate question: %w", err)
	}
	var usage Usage
	usage.Add(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return strings.TrimSpace(resp.Choices[0].Message.Content), usage, nil
}

func (s *ModelSource) Respond(ctx context.Context, role catalog.Role, transcript []domain.Turn) (string, Usage, error) {
	messages := append(
		[]ChatMessage{{Role: "system", Content: InterviewerSystemPrompt(role.ID)}},
		transcriptToChatMessages(transcript)...,
	)
	resp, err := s.ai.Chat(ctx, messages, config.ChatTemperature)
	if err != nil {
		return "", Usage{}, fmt.Errorf("chat response: %w", err)
	}
	var usage Usage
	usage.Add(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, usage, nil
}

func (s *ModelSource) Summarize(ctx context.Context, role catalog.Role, transcript []domain.Turn) (string, int, Usage, error) {
	messages := []ChatMessage{
		{Role: "system", Content: summarySystemPrompt(role)},
		{Role: "user", Content: summaryUserPrompt(transcript)},
	}
	resp, err := s.ai.Chat(ctx, messages, config.ChatTemperature)
	if err != nil {
		return "", 0, Usage{}, fmt.Errorf("summarize: %w", err)
	}
	var usage Usage
	usage.Add(resp.Usage.PromptTokens, resp.Usage.CompletionTokens)
	return resp.Choices[0].Message.Content, randomScore(), usage, nil
}

func (s *ModelSource) QuestionTarget(role catalog.Role) int {
	return s.target
}
