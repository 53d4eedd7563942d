package config

import "time"

const (
	// Pacing delays between turns (perceived typing, not correctness)
	FirstQuestionDelay = 1500 * time.Millisecond
	NextQuestionDelay  = 3 * time.Second
	ClosingDelay       = 2 * time.Second
	SummaryDelay       = 3 * time.Second

	// Placeholder score range for completed sessions
	ScoreMin = 60
	ScoreMax = 100

	// AI request timeout
	RequestTimeout = 90 * time.Second

	// Completion temperatures
	ChatTemperature     = 0.7
	QuestionTemperature = 0.8

	// Default chat-completion model
	DefaultModel = "gpt-4o-mini"

	// Auth
	MinPasswordLen = 6
	TokenTTL       = 7 * 24 * time.Hour

	// Rate limit (messages per minute per user)
	RateLimitPerMinute = 6

	// Stale rate-limit row cleanup interval
	StaleRateLimitCleanup = 60 * time.Second

	// Live interviews with no turn activity for this long are evicted
	InterviewIdleTTL = 30 * time.Minute

	// Sessions per history page
	SessionsPerPage = 20
)
