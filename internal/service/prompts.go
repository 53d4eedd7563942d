package service

import (
	"fmt"
	"strings"

	"github.com/skillboost/skillboost/internal/catalog"
	"github.com/skillboost/skillboost/internal/domain"
)

// InterviewerSystemPrompt frames the model as the interviewer for a role.
func InterviewerSystemPrompt(roleID string) string {
	role := roleID
	if role == "" {
		role = "professional"
	}
	return fmt.Sprintf(`You are an AI interviewer for a %s role.
Ask relevant questions to evaluate the candidate's skills and experience.
Provide constructive feedback on their answers. Be professional but friendly.
Focus on skills like %s.`, role, catalog.SkillSummary(roleID))
}

// QuestionSystemPrompt asks for a single new interview question, excluding
// anything already asked.
func QuestionSystemPrompt(role catalog.Role, previousQuestions []string) string {
	previousText := ""
	if len(previousQuestions) > 0 {
		previousText = "Previous questions asked: " + strings.Join(previousQuestions, ". ")
	}
	return fmt.Sprintf(`You are an AI interviewer for a %s role.
Generate a relevant, challenging interview question to evaluate candidates.
Create a question that tests knowledge of: %s.
Generate a single direct question without any prefix or explanation.
Your response should be just the question text.
%s`, role.Title, strings.Join(role.Skills, ", "), previousText)
}

// summarySystemPrompt frames the post-interview assessment request.
func summarySystemPrompt(role catalog.Role) string {
	return fmt.Sprintf("You are an AI interviewer for a %s role. You've just completed an interview with a candidate. Now provide a summary of their performance, highlighting strengths and areas for improvement. Be constructive and specific, referring to their actual answers.", role.Title)
}

// summaryUserPrompt renders the whole transcript as the assessment context.
func summaryUserPrompt(transcript []domain.Turn) string {
	var sb strings.Builder
	sb.WriteString("Please provide a summary assessment of this candidate based on our interview. Here's the transcript: ")
	for _, t := range transcript {
		speaker := "Interviewer"
		if t.Speaker == "user" {
			speaker = "Candidate"
		}
		sb.WriteString("\n")
		sb.WriteString(speaker)
		sb.WriteString(": ")
		sb.WriteString(t.Text)
	}
	return sb.String()
}

// transcriptToChatMessages maps transcript turns to the completion API roles.
func transcriptToChatMessages(transcript []domain.Turn) []ChatMessage {
	msgs := make([]ChatMessage, len(transcript))
	for i, t := range transcript {
		role := "assistant"
		if t.Speaker == "user" {
			role = "user"
		}
		msgs[i] = ChatMessage{Role: role, Content: t.Text}
	}
	return msgs
}
