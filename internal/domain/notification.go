package domain

import "time"

// NotificationChannel is the delivery mechanism.
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
)

// NotificationStatus tracks dispatch progress.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// Notification is an outbound message recorded before dispatch.
type Notification struct {
	ID        string
	TenantID  int64
	Channel   NotificationChannel
	Recipient string
	Subject   string
	Body      string
	Status    NotificationStatus
	Error     string
	CreatedAt time.Time
	SentAt    *time.Time
}
