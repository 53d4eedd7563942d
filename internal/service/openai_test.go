package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillboost/skillboost/internal/config"
)

func chatServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestChatSuccess(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{
		"choices": [{"message": {"content": "What is a closure?"}}],
		"usage": {"prompt_tokens": 42, "completion_tokens": 12, "total_tokens": 54}
	}`)
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL)
	resp, err := svc.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}, config.ChatTemperature)
	require.NoError(t, err)

	assert.Equal(t, "What is a closure?", resp.Choices[0].Message.Content)
	assert.Equal(t, 42, resp.Usage.PromptTokens)
	assert.Equal(t, 12, resp.Usage.CompletionTokens)
}

func TestChatSendsModelAndTemperature(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL)
	_, err := svc.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}, config.QuestionTemperature)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultModel, got.Model)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, config.QuestionTemperature, *got.Temperature)
}

func TestChatAPIError(t *testing.T) {
	srv := chatServer(t, http.StatusTooManyRequests, `{"error": {"message": "Rate limit reached"}}`)
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL)
	_, err := svc.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}, config.ChatTemperature)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpenAI API error (429)")
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestChatAPIErrorWithoutBody(t *testing.T) {
	srv := chatServer(t, http.StatusBadGateway, ``)
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL)
	_, err := svc.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}, config.ChatTemperature)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OpenAI API error (502)")
}

func TestChatEmptyChoices(t *testing.T) {
	srv := chatServer(t, http.StatusOK, `{"choices": []}`)
	defer srv.Close()

	svc := NewOpenAIService("test-key", srv.URL)
	_, err := svc.Chat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}}, config.ChatTemperature)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty completion response")
}

func TestCalculateCost(t *testing.T) {
	// 1M prompt tokens at $0.15/1M and 1M completion tokens at $0.60/1M.
	cost := CalculateCost(1_000_000, 1_000_000, 0.15, 0.60)
	assert.True(t, cost.Equal(decimal.NewFromFloat(0.75)), "got %s", cost)

	assert.True(t, CalculateCost(0, 0, 0.15, 0.60).IsZero())
}

func TestUsageAdd(t *testing.T) {
	var u Usage
	u.Add(1000, 500)
	u.Add(2000, 1000)

	assert.Equal(t, int64(3000), u.PromptTokens)
	assert.Equal(t, int64(1500), u.CompletionTokens)

	// 3000 prompt tokens at $0.15/1M plus 1500 completion tokens at $0.60/1M.
	assert.InDelta(t, 0.00135, u.Cost.InexactFloat64(), 1e-9)
}
