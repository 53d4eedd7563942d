package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/skillboost/skillboost/internal/domain"
)

func testContext(t *testing.T, authHeader string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/me", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	return c
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", extractBearerToken(testContext(t, "Bearer abc123")))
	assert.Equal(t, "abc123", extractBearerToken(testContext(t, "bearer abc123")))
	assert.Empty(t, extractBearerToken(testContext(t, "")))
	assert.Empty(t, extractBearerToken(testContext(t, "Bearer")))
	assert.Empty(t, extractBearerToken(testContext(t, "Basic dXNlcjpwYXNz")))
}

func TestGetUser(t *testing.T) {
	c := testContext(t, "")
	assert.Nil(t, GetUser(c))

	user := &domain.User{ID: uuid.New(), Email: "dev@example.com"}
	c.Set(userKey, user)
	assert.Equal(t, user, GetUser(c))
}
