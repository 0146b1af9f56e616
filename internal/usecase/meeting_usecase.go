package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/execsec/backoffice/internal/domain"
)

// MeetingUseCase handles meeting scheduling.
type MeetingUseCase struct {
	meetingRepo   MeetingRepository
	executiveRepo ExecutiveRepository
}

// NewMeetingUseCase creates a new MeetingUseCase.
func NewMeetingUseCase(meetingRepo MeetingRepository, executiveRepo ExecutiveRepository) *MeetingUseCase {
	return &MeetingUseCase{meetingRepo: meetingRepo, executiveRepo: executiveRepo}
}

// MeetingInput carries the writable fields of a meeting.
type MeetingInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Priority    string
	Status      string
	ExecutiveID *int64
}

// CreateMeeting schedules a meeting. The linked executive, when set, must
// exist in the same tenant.
func (uc *MeetingUseCase) CreateMeeting(ctx context.Context, tenantID, organizerID int64, input MeetingInput) (*domain.Meeting, error) {
	meeting, err := uc.buildMeeting(ctx, tenantID, input)
	if err != nil {
		return nil, err
	}
	meeting.OrganizerID = organizerID

	now := time.Now().UTC()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	if err := uc.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// GetMeeting retrieves a meeting by ID within a tenant.
func (uc *MeetingUseCase) GetMeeting(ctx context.Context, tenantID, id int64) (*domain.Meeting, error) {
	return uc.meetingRepo.GetByID(ctx, tenantID, id)
}

// ListMeetings lists the tenant's meetings, optionally within a time window.
func (uc *MeetingUseCase) ListMeetings(ctx context.Context, tenantID int64, from, to *time.Time, limit, offset int) ([]*domain.Meeting, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.meetingRepo.List(ctx, tenantID, from, to, limit, offset)
}

// UpdateMeeting replaces the writable fields of a meeting.
func (uc *MeetingUseCase) UpdateMeeting(ctx context.Context, tenantID, id int64, input MeetingInput) (*domain.Meeting, error) {
	existing, err := uc.meetingRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	meeting, err := uc.buildMeeting(ctx, tenantID, input)
	if err != nil {
		return nil, err
	}
	meeting.ID = existing.ID
	meeting.OrganizerID = existing.OrganizerID
	meeting.CreatedAt = existing.CreatedAt
	meeting.UpdatedAt = time.Now().UTC()

	if err := uc.meetingRepo.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// DeleteMeeting removes a meeting.
func (uc *MeetingUseCase) DeleteMeeting(ctx context.Context, tenantID, id int64) error {
	return uc.meetingRepo.Delete(ctx, tenantID, id)
}

func (uc *MeetingUseCase) buildMeeting(ctx context.Context, tenantID int64, input MeetingInput) (*domain.Meeting, error) {
	if err := domain.ValidateName(input.Title); err != nil {
		return nil, err
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, errors.New("meeting must end after it starts")
	}

	status := domain.MeetingStatus(input.Status)
	if input.Status == "" {
		status = domain.MeetingScheduled
	}
	if !status.IsValid() {
		return nil, errors.New("invalid meeting status")
	}
	priority := domain.Priority(input.Priority)
	if input.Priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, errors.New("invalid priority")
	}

	if input.ExecutiveID != nil {
		if _, err := uc.executiveRepo.GetByID(ctx, tenantID, *input.ExecutiveID); err != nil {
			return nil, err
		}
	}

	return &domain.Meeting{
		TenantID:    tenantID,
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		Priority:    priority,
		Status:      status,
		ExecutiveID: input.ExecutiveID,
	}, nil
}
