package domain

import "errors"

var (
	// Lookup errors
	ErrTenantNotFound       = errors.New("tenant not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrExecutiveNotFound    = errors.New("executive not found")
	ErrPayableNotFound      = errors.New("payable not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrCatalogItemNotFound  = errors.New("catalog item not found")
	ErrPersonNotFound       = errors.New("person not found")
	ErrExportNotFound       = errors.New("export not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDocumentNotFound     = errors.New("payable has no document")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrForbiddenTenant    = errors.New("tenant not accessible")

	// Constraint errors
	ErrDuplicateSlug     = errors.New("tenant slug already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)
