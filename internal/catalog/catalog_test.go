package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleByID(t *testing.T) {
	role, ok := RoleByID("frontend-dev")
	require.True(t, ok)
	assert.Equal(t, "Front-End Developer", role.Title)

	_, ok = RoleByID("astronaut")
	assert.False(t, ok)
}

func TestRoleContextFallsBack(t *testing.T) {
	assert.Equal(t, "Back-End Developer", RoleContext("backend-dev").Title)
	assert.Equal(t, "Professional", RoleContext("astronaut").Title)
	assert.Equal(t, "Professional", RoleContext("").Title)
}

func TestEveryRoleHasQuestions(t *testing.T) {
	for _, role := range Roles {
		questions := QuestionsByRole(role.ID)
		require.NotEmpty(t, questions, role.ID)
		for _, q := range questions {
			assert.Equal(t, role.ID, q.RoleID)
			assert.NotEmpty(t, q.Text)
			assert.NotEmpty(t, q.Explanation)
			if q.Type == QuestionMultipleChoice {
				assert.NotEmpty(t, q.Options)
				assert.Contains(t, q.Options, q.CorrectAnswer)
			}
		}
	}
}

func TestSkillSummary(t *testing.T) {
	assert.Contains(t, SkillSummary("qa-specialist"), "test planning")
	assert.Equal(t, "communication, problem-solving, technical knowledge", SkillSummary("astronaut"))
}
