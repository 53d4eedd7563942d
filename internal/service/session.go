package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillboost/skillboost/internal/domain"
	"github.com/skillboost/skillboost/internal/repository/sqlc"
)

type SessionService struct {
	db      *pgxpool.Pool
	queries *sqlc.Queries
}

func NewSessionService(db *pgxpool.Pool, queries *sqlc.Queries) *SessionService {
	return &SessionService{db: db, queries: queries}
}

func (s *SessionService) Create(ctx context.Context, userID uuid.UUID, roleID, title string) (*domain.Session, error) {
	row, err := s.queries.CreateSession(ctx, sqlc.CreateSessionParams{
		UserID: userID,
		RoleID: roleID,
		Title:  title,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return rowToSession(row), nil
}

func (s *SessionService) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	row, err := s.queries.GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return rowToSession(row), nil
}

func (s *SessionService) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Session, error) {
	rows, err := s.queries.GetSessionsByUserID(ctx, sqlc.GetSessionsByUserIDParams{
		UserID: userID,
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	sessions := make([]domain.Session, len(rows))
	for i, r := range rows {
		sessions[i] = *rowToSession(r)
	}
	return sessions, nil
}

func (s *SessionService) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.queries.CountSessionsByUserID(ctx, userID)
}

func (s *SessionService) Delete(ctx context.Context, userID, sessionID uuid.UUID) error {
	return s.queries.DeleteSession(ctx, sqlc.DeleteSessionParams{
		ID:     sessionID,
		UserID: userID,
	})
}

// Complete marks a session finished with its score and accumulated usage.
// A session flips to completed exactly once; completing it again fails.
func (s *SessionService) Complete(ctx context.Context, sessionID uuid.UUID, score int, usage Usage) (*domain.Session, error) {
	sc := int32(score)
	row, err := s.queries.CompleteSession(ctx, sqlc.CompleteSessionParams{
		ID:               sessionID,
		Score:            &sc,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		Cost:             usage.Cost,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionCompleted
		}
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return rowToSession(row), nil
}

func (s *SessionService) AddMessage(ctx context.Context, sessionID uuid.UUID, content string, isUser bool) (*domain.Message, error) {
	row, err := s.queries.AddMessage(ctx, sqlc.AddMessageParams{
		SessionID: sessionID,
		Content:   content,
		IsUser:    isUser,
	})
	if err != nil {
		return nil, fmt.Errorf("add message: %w", err)
	}
	return rowToMessage(row), nil
}

func (s *SessionService) GetMessages(ctx context.Context, sessionID uuid.UUID) ([]domain.Message, error) {
	rows, err := s.queries.GetSessionMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	msgs := make([]domain.Message, len(rows))
	for i, r := range rows {
		msgs[i] = *rowToMessage(r)
	}
	return msgs, nil
}

func (s *SessionService) CountMessages(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	return s.queries.CountSessionMessages(ctx, sessionID)
}

func rowToSession(row sqlc.Session) *domain.Session {
	return &domain.Session{
		ID:               row.ID,
		UserID:           row.UserID,
		RoleID:           row.RoleID,
		Title:            row.Title,
		Completed:        row.Completed,
		Score:            int32PtrToIntPtr(row.Score),
		PromptTokens:     row.PromptTokens,
		CompletionTokens: row.CompletionTokens,
		Cost:             row.Cost,
		CreatedAt:        pgTimestamptzToTime(row.CreatedAt),
	}
}

func rowToMessage(row sqlc.Message) *domain.Message {
	return &domain.Message{
		ID:        row.ID,
		SessionID: row.SessionID,
		Content:   row.Content,
		IsUser:    row.IsUser,
		CreatedAt: pgTimestamptzToTime(row.CreatedAt),
	}
}
