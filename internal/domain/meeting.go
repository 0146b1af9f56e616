package domain

import "time"

// MeetingStatus is the meeting lifecycle state.
type MeetingStatus string

const (
	MeetingScheduled  MeetingStatus = "scheduled"
	MeetingInProgress MeetingStatus = "in_progress"
	MeetingCompleted  MeetingStatus = "completed"
	MeetingCancelled  MeetingStatus = "cancelled"
)

// IsValid reports whether the status is known.
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingScheduled, MeetingInProgress, MeetingCompleted, MeetingCancelled:
		return true
	}
	return false
}

// Meeting is a scheduled session with an executive.
type Meeting struct {
	ID          int64
	TenantID    int64
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Priority    Priority
	Status      MeetingStatus
	ExecutiveID *int64
	OrganizerID int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
