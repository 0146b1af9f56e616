package usecase

import "time"

const (
	// SummaryCacheTTL bounds how stale a cached dashboard summary can get.
	SummaryCacheTTL = 30 * time.Second

	// ExportTTL is how long export job state and download links stay valid.
	ExportTTL = 24 * time.Hour

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour

	// DocumentURLExpiry bounds presigned document download links.
	DocumentURLExpiry = 15 * time.Minute
)
