package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skillboost/skillboost/internal/catalog"
	"github.com/skillboost/skillboost/internal/config"
	"github.com/skillboost/skillboost/internal/domain"
)

// Phase is the turn controller state for one live interview.
type Phase string

const (
	PhaseInitializing   Phase = "initializing"
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseGenerating     Phase = "generating"
	PhaseSummarizing    Phase = "summarizing"
	PhaseCompleted      Phase = "completed"
)

const welcomeTemplate = "Welcome to the %s interview! I'll ask you a series of questions to help evaluate your skills in this area. Please respond naturally as if in a real interview. Let's get started!"

const closingMessage = "That concludes our interview. Thank you for your time and thoughtful responses. I'll now analyze our conversation and provide you with some feedback on your strengths and areas for improvement."

// SessionStore is the persistence contract the controller consumes. Message
// writes are best-effort: the in-memory transcript stays authoritative for a
// live interview and store failures never block the turn loop.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID, roleID, title string) (*domain.Session, error)
	AddMessage(ctx context.Context, sessionID uuid.UUID, content string, isUser bool) (*domain.Message, error)
	Complete(ctx context.Context, sessionID uuid.UUID, score int, usage Usage) (*domain.Session, error)
}

// Interview holds the live state of one session's turn loop. The phase
// doubles as the turn ownership flag: whoever flips AwaitingAnswer to
// Generating under mu owns the turn and runs it without holding the lock,
// so pacing delays never block concurrent phase checks or transcript reads.
type Interview struct {
	mu         sync.Mutex
	sessionID  uuid.UUID
	userID     uuid.UUID
	role       catalog.Role
	phase      Phase
	transcript []domain.Message
	asked      []string
	usage      Usage
	score      *int
	lastActive time.Time
	nextMsgID  int64
}

func (iv *Interview) setPhase(p Phase) {
	iv.mu.Lock()
	iv.phase = p
	iv.mu.Unlock()
}

// TurnResult reports what one controller call appended and where the
// interview stands afterwards.
type TurnResult struct {
	SessionID uuid.UUID        `json:"session_id"`
	Messages  []domain.Message `json:"messages"`
	Phase     Phase            `json:"phase"`
	Completed bool             `json:"completed"`
	Score     *int             `json:"score,omitempty"`
	// Warning carries the user-visible notification for soft failures
	// (generation errors that stall the turn without ending the session).
	Warning string `json:"warning,omitempty"`
}

// InterviewService orchestrates the question/answer loop for live sessions.
type InterviewService struct {
	store   SessionStore
	source  QuestionSource
	sleeper Sleeper

	mu   sync.Mutex
	live map[uuid.UUID]*Interview
}

func NewInterviewService(store SessionStore, source QuestionSource, sleeper Sleeper) *InterviewService {
	return &InterviewService{
		store:   store,
		source:  source,
		sleeper: sleeper,
		live:    make(map[uuid.UUID]*Interview),
	}
}

// Start creates a session, emits the welcome message and asks the first
// question. A session-creation failure is fatal; a question-generation
// failure leaves the session without a first question and is reported
// through TurnResult.Warning.
func (s *InterviewService) Start(ctx context.Context, userID uuid.UUID, roleID string) (*TurnResult, error) {
	role := catalog.RoleContext(roleID)
	title := fmt.Sprintf("%s - %s", role.Title, time.Now().Format("1/2/2006, 3:04:05 PM"))

	sess, err := s.store.Create(ctx, userID, roleID, title)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// The Initializing phase claims the first turn until the question lands.
	iv := &Interview{
		sessionID:  sess.ID,
		userID:     userID,
		role:       role,
		phase:      PhaseInitializing,
		lastActive: time.Now(),
	}
	s.mu.Lock()
	s.live[sess.ID] = iv
	s.mu.Unlock()

	welcome := s.appendMessage(ctx, iv, fmt.Sprintf(welcomeTemplate, role.Title), false)
	result := &TurnResult{SessionID: sess.ID, Messages: []domain.Message{welcome}}

	if err := s.sleeper.Sleep(ctx, config.FirstQuestionDelay); err != nil {
		iv.setPhase(PhaseAwaitingAnswer)
		return nil, err
	}

	question, usage, err := s.source.NextQuestion(ctx, role, iv.asked)
	iv.usage.merge(usage)
	if err != nil {
		slog.Error("generate first question", "error", err, "session_id", sess.ID)
		iv.setPhase(PhaseAwaitingAnswer)
		result.Phase = PhaseAwaitingAnswer
		result.Warning = "Failed to generate question"
		return result, nil
	}

	msg := s.appendMessage(ctx, iv, question, false)
	iv.asked = append(iv.asked, question)
	iv.setPhase(PhaseAwaitingAnswer)
	result.Messages = append(result.Messages, msg)
	result.Phase = PhaseAwaitingAnswer
	return result, nil
}

// Answer runs one turn: append the user's answer, generate the bot's reply
// and either the next question or the closing/summary pair. Input arriving
// while a turn is in flight is rejected immediately, not queued.
func (s *InterviewService) Answer(ctx context.Context, userID, sessionID uuid.UUID, content string) (*TurnResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	s.mu.Lock()
	iv, ok := s.live[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrInterviewNotLive
	}
	if iv.userID != userID {
		return nil, domain.ErrSessionNotFound
	}

	iv.mu.Lock()
	switch iv.phase {
	case PhaseCompleted:
		iv.mu.Unlock()
		return nil, domain.ErrSessionCompleted
	case PhaseAwaitingAnswer:
		iv.phase = PhaseGenerating
		iv.lastActive = time.Now()
	default:
		iv.mu.Unlock()
		return nil, domain.ErrTurnInFlight
	}
	iv.mu.Unlock()

	s.appendMessage(ctx, iv, content, true)
	result := &TurnResult{SessionID: sessionID}

	reply, usage, err := s.source.Respond(ctx, iv.role, iv.turns())
	iv.usage.merge(usage)
	if err != nil {
		slog.Error("generate response", "error", err, "session_id", sessionID)
		iv.setPhase(PhaseAwaitingAnswer)
		result.Phase = PhaseAwaitingAnswer
		result.Warning = "Failed to get AI response"
		return result, nil
	}
	if reply != "" {
		result.Messages = append(result.Messages, s.appendMessage(ctx, iv, reply, false))
	}

	target := s.source.QuestionTarget(iv.role)

	if len(iv.asked) < target {
		if err := s.sleeper.Sleep(ctx, config.NextQuestionDelay); err != nil {
			iv.setPhase(PhaseAwaitingAnswer)
			return nil, err
		}
		question, usage, err := s.source.NextQuestion(ctx, iv.role, iv.asked)
		iv.usage.merge(usage)
		if err != nil {
			slog.Error("generate question", "error", err, "session_id", sessionID)
			iv.setPhase(PhaseAwaitingAnswer)
			result.Phase = PhaseAwaitingAnswer
			result.Warning = "Failed to generate question"
			return result, nil
		}
		result.Messages = append(result.Messages, s.appendMessage(ctx, iv, question, false))
		iv.asked = append(iv.asked, question)
	}

	if len(iv.asked) >= target {
		return s.summarize(ctx, iv, result)
	}

	iv.setPhase(PhaseAwaitingAnswer)
	result.Phase = PhaseAwaitingAnswer
	return result, nil
}

// summarize emits the closing message, requests the final assessment over
// the whole transcript and marks the session completed. Called by the
// goroutine that owns the turn.
func (s *InterviewService) summarize(ctx context.Context, iv *Interview, result *TurnResult) (*TurnResult, error) {
	iv.setPhase(PhaseSummarizing)

	if err := s.sleeper.Sleep(ctx, config.ClosingDelay); err != nil {
		return nil, err
	}
	result.Messages = append(result.Messages, s.appendMessage(ctx, iv, closingMessage, false))

	if err := s.sleeper.Sleep(ctx, config.SummaryDelay); err != nil {
		return nil, err
	}

	summary, score, usage, err := s.source.Summarize(ctx, iv.role, iv.turns())
	iv.usage.merge(usage)
	if err != nil {
		// No retry: the interview stays in Summarizing and the failure is
		// surfaced to the user.
		slog.Error("generate summary", "error", err, "session_id", iv.sessionID)
		result.Phase = PhaseSummarizing
		result.Warning = "Failed to get AI response"
		return result, nil
	}

	result.Messages = append(result.Messages, s.appendMessage(ctx, iv, summary, false))

	if _, err := s.store.Complete(ctx, iv.sessionID, score, iv.usage); err != nil {
		slog.Error("complete session", "error", err, "session_id", iv.sessionID)
	}

	iv.mu.Lock()
	iv.score = &score
	iv.phase = PhaseCompleted
	iv.mu.Unlock()
	result.Phase = PhaseCompleted
	result.Completed = true
	result.Score = &score

	s.mu.Lock()
	delete(s.live, iv.sessionID)
	s.mu.Unlock()

	return result, nil
}

// Transcript returns the in-memory transcript of a live interview, or false
// when the session is not live (completed or never started here).
func (s *InterviewService) Transcript(sessionID uuid.UUID) ([]domain.Message, bool) {
	s.mu.Lock()
	iv, ok := s.live[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	iv.mu.Lock()
	defer iv.mu.Unlock()
	out := make([]domain.Message, len(iv.transcript))
	copy(out, iv.transcript)
	return out, true
}

// EvictIdle drops live interviews with no turn activity for longer than
// maxIdle, including those stalled in Summarizing after a failed summary.
// Persisted messages survive; only the in-memory state is released.
func (s *InterviewService) EvictIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, iv := range s.live {
		iv.mu.Lock()
		idle := iv.lastActive.Before(cutoff)
		iv.mu.Unlock()
		if idle {
			delete(s.live, id)
			evicted++
		}
	}
	return evicted
}

// appendMessage adds a message to the in-memory transcript and attempts the
// persistence write. Write failures are logged and swallowed so the next
// message is never blocked.
func (s *InterviewService) appendMessage(ctx context.Context, iv *Interview, content string, isUser bool) domain.Message {
	iv.mu.Lock()
	iv.nextMsgID++
	msg := domain.Message{
		ID:        iv.nextMsgID,
		SessionID: iv.sessionID,
		Content:   content,
		IsUser:    isUser,
		CreatedAt: time.Now(),
	}
	iv.transcript = append(iv.transcript, msg)
	iv.mu.Unlock()

	if _, err := s.store.AddMessage(ctx, iv.sessionID, content, isUser); err != nil {
		slog.Error("save message", "error", err, "session_id", iv.sessionID)
	}
	return msg
}

func (iv *Interview) turns() []domain.Turn {
	iv.mu.Lock()
	defer iv.mu.Unlock()
	turns := make([]domain.Turn, len(iv.transcript))
	for i, m := range iv.transcript {
		speaker := "assistant"
		if m.IsUser {
			speaker = "user"
		}
		turns[i] = domain.Turn{Speaker: speaker, Text: m.Content}
	}
	return turns
}

func (u *Usage) merge(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.Cost = u.Cost.Add(other.Cost)
}
