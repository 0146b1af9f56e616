package domain

import "time"

// Export tracks an asynchronous spreadsheet export.
type Export struct {
	ID        string
	Type      string
	TenantID  int64
	UserID    int64
	Filters   map[string]any
	Progress  float64
	FileURL   *string
	CreatedAt time.Time
}
