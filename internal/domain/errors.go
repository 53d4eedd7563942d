package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrSessionCompleted   = errors.New("session already completed")
	ErrTurnInFlight       = errors.New("previous turn still in progress")
	ErrEmptyMessage       = errors.New("empty message")
	ErrNoQuestions        = errors.New("no questions left for role")
	ErrInterviewNotLive   = errors.New("interview not live")
)
