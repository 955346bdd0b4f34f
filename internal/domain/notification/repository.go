package notification

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create stores the notification and one unread link per recipient in
	// a single transaction; partial recipient sets are never visible.
	Create(ctx context.Context, n *Notification, recipientIDs []uuid.UUID) (*Notification, error)
	// FetchUnread returns notifications whose link for this user is still
	// unread, newest first.
	FetchUnread(ctx context.Context, userID uuid.UUID) (Notifications, error)
	// MarkRead flips the user's link to read. Idempotent: re-marking an
	// already-read link succeeds and returns the unchanged notification.
	// A missing link is ErrNotFound.
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (*Notification, error)
	// FetchAll is the unscoped administrative listing, newest first.
	FetchAll(ctx context.Context) ([]*WithRecipients, error)
}
