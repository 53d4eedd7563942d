package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillboost/skillboost/internal/catalog"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/domain"
)

func TestStaticSourceWalksQuestionsInOrder(t *testing.T) {
	source := NewStaticSource()
	role := catalog.RoleContext("backend-dev")
	expected := catalog.QuestionsByRole("backend-dev")
	require.NotEmpty(t, expected)

	var asked []string
	for _, want := range expected {
		q, usage, err := source.NextQuestion(context.Background(), role, asked)
		require.NoError(t, err)
		assert.Equal(t, want.Text, q)
		assert.True(t, usage.Cost.IsZero())
		asked = append(asked, q)
	}
}

func TestStaticSourceSkipsAlreadyAsked(t *testing.T) {
	source := NewStaticSource()
	role := catalog.RoleContext("qa-specialist")
	questions := catalog.QuestionsByRole("qa-specialist")
	require.GreaterOrEqual(t, len(questions), 2)

	q, _, err := source.NextQuestion(context.Background(), role, []string{questions[0].Text})
	require.NoError(t, err)
	assert.Equal(t, questions[1].Text, q)
}

func TestStaticSourceExhaustion(t *testing.T) {
	source := NewStaticSource()
	role := catalog.RoleContext("data-specialist")

	var asked []string
	for _, q := range catalog.QuestionsByRole("data-specialist") {
		asked = append(asked, q.Text)
	}

	_, _, err := source.NextQuestion(context.Background(), role, asked)
	assert.ErrorIs(t, err, domain.ErrNoQuestions)
}

func TestStaticSourceTargetMatchesCatalog(t *testing.T) {
	source := NewStaticSource()
	for _, role := range catalog.Roles {
		assert.Equal(t, len(catalog.QuestionsByRole(role.ID)), source.QuestionTarget(role))
	}
}

func TestStaticSourceHasNoReplies(t *testing.T) {
	source := NewStaticSource()
	reply, _, err := source.Respond(context.Background(), catalog.RoleContext("frontend-dev"), nil)
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestStaticSourceSummaryMentionsSkills(t *testing.T) {
	source := NewStaticSource()
	role := catalog.RoleContext("frontend-dev")

	text, score, _, err := source.Summarize(context.Background(), role, nil)
	require.NoError(t, err)
	assert.Contains(t, text, role.Title)
	assert.Contains(t, text, role.Skills[0])
	assert.Contains(t, text, role.Skills[1])
	assert.GreaterOrEqual(t, score, config.ScoreMin)
	assert.LessOrEqual(t, score, config.ScoreMax)
}

func TestRandomScoreRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		score := randomScore()
		require.GreaterOrEqual(t, score, config.ScoreMin)
		require.LessOrEqual(t, score, config.ScoreMax)
	}
}

func TestModelSourceTarget(t *testing.T) {
	source := NewModelSource(nil, 10)
	assert.Equal(t, 10, source.QuestionTarget(catalog.RoleContext("frontend-dev")))
	assert.Equal(t, 10, source.QuestionTarget(catalog.FallbackRole))
}
