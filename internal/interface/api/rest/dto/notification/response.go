package notification

import (
	"time"

	"github.com/google/uuid"
)

type (
	SendRequest struct {
		Title   string      `json:"title"`
		Message string      `json:"message"`
		UserIDs []uuid.UUID `json:"user_ids,omitempty"`
	}

	Notification struct {
		UUID      uuid.UUID  `json:"uuid"`
		SenderID  *uuid.UUID `json:"sender_id,omitempty"`
		Title     string     `json:"title"`
		Message   string     `json:"message"`
		CreatedAt time.Time  `json:"created_at"`
		IsRead    bool       `json:"is_read"`
	}
	Notifications []Notification

	Recipient struct {
		UserID   uuid.UUID `json:"user_id"`
		Name     string    `json:"name"`
		Lastname string    `json:"lastname"`
		Email    string    `json:"email"`
		IsRead   bool      `json:"is_read"`
	}

	WithRecipients struct {
		Notification
		Recipients []Recipient `json:"recipients"`
	}

	ResponseData struct {
		Data Notifications `json:"data"`
	}
)
