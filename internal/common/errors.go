// Package common defines shared constants and sentinel errors used across
// the planter service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")

	// Enrichment errors. Geocoding is best effort: callers that create
	// plants swallow this and proceed with empty address data.
	ErrEnrichmentUnavailable = errors.New("enrichment unavailable")

	// Auth errors.
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrLoginAlreadyExists = errors.New("login already exists")

	// Plant-specific errors.
	ErrSeededReadOnly = errors.New("seeded plant is read-only")
)
