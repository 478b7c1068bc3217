package utils

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrInvalidOAuthState  = errors.New("invalid oauth state")
	ErrBookmarkExists     = errors.New("trip already bookmarked")
	ErrBookmarkNotFound   = errors.New("bookmarked trip not found")
	ErrAdvisoryURL        = errors.New("no valid travel advisory url")
	ErrDatabaseError      = errors.New("database error")

	ErrAINotConfigured  = errors.New("ai provider not configured")
	ErrAIUnavailable    = errors.New("ai provider unavailable")
	ErrEmptyCompletion  = errors.New("empty completion")
	ErrEmbeddingFailure = errors.New("embedding failed")
)
