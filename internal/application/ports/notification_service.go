package ports

import (
	"context"

	"github.com/google/uuid"

	"file-manager-api/internal/domain/notification"
)

type NotificationService interface {
	// Publish stores the notification durably, then pushes it to connected
	// recipients off the critical path. An empty recipient list broadcasts
	// to every known user.
	Publish(ctx context.Context, senderID *uuid.UUID, title, message string, recipientIDs []uuid.UUID) (*notification.Notification, error)
	Unread(ctx context.Context, userID uuid.UUID) (notification.Notifications, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (*notification.Notification, error)
	All(ctx context.Context) ([]*notification.WithRecipients, error)
}
