package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound covers a missing notification or a missing recipient link:
// a user that was never targeted cannot read or mark the notification.
var ErrNotFound = errors.New("notification not found")

type (
	// Notification is immutable after creation; only per-recipient read
	// flags change afterwards.
	Notification struct {
		UUID     uuid.UUID
		SenderID *uuid.UUID // nil for system notifications
		Title    string
		Message  string

		CreatedAt time.Time
	}
	Notifications []*Notification

	// Recipient is one (notification, user) link with its own read flag.
	Recipient struct {
		UserID   uuid.UUID
		Name     string
		Lastname string
		Email    string
		IsRead   bool
	}

	WithRecipients struct {
		Notification
		Recipients []Recipient
	}
)
