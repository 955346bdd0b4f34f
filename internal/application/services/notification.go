package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"file-manager-api/internal/application/ports"
	domain "file-manager-api/internal/domain/notification"
	userDomain "file-manager-api/internal/domain/user"
)

// ChannelNotifications is the dispatcher channel live clients subscribe to.
const ChannelNotifications = "notifications"

type NotificationService struct {
	repository     domain.Repository
	userRepository userDomain.Repository
	dispatcher     ports.Dispatcher
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
}

func NewNotificationService(
	repository domain.Repository,
	userRepository userDomain.Repository,
	dispatcher ports.Dispatcher,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
) ports.NotificationService {
	return &NotificationService{
		repository:     repository,
		userRepository: userRepository,
		dispatcher:     dispatcher,
		mCounter:       mCounter,
		logger:         logger,
	}
}

// pushEvent is the wire shape delivered to live connections; timestamps
// marshal as ISO-8601 UTC, identifiers as canonical UUID text.
type pushEvent struct {
	ID        uuid.UUID  `json:"id"`
	SenderID  *uuid.UUID `json:"sender_id,omitempty"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	CreatedAt string     `json:"created_at"`
	IsRead    bool       `json:"is_read"`
}

// Publish commits the notification and every recipient link durably,
// then hands the fanout to the dispatcher in the background. The push is
// best effort and never affects the publish result.
func (ns *NotificationService) Publish(
	ctx context.Context,
	senderID *uuid.UUID,
	title, message string,
	recipientIDs []uuid.UUID,
) (*domain.Notification, error) {
	if len(recipientIDs) == 0 {
		ids, err := ns.userRepository.FetchIDs(ctx)
		if err != nil {
			return nil, err
		}
		recipientIDs = ids
	}

	n, err := ns.repository.Create(ctx, &domain.Notification{
		SenderID: senderID,
		Title:    title,
		Message:  message,
	}, recipientIDs)
	if err != nil {
		return nil, err
	}

	go ns.broadcast(n, recipientIDs)

	ns.mCounter.WithLabelValues("notifications_published_total").Inc()

	return n, nil
}

func (ns *NotificationService) broadcast(n *domain.Notification, recipientIDs []uuid.UUID) {
	b, err := json.Marshal(pushEvent{
		ID:        n.UUID,
		SenderID:  n.SenderID,
		Title:     n.Title,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.UTC().Format("2006-01-02T15:04:05.000000Z07:00"),
		IsRead:    false,
	})
	if err != nil {
		ns.logger.Error("notification event marshal error", zap.Error(err))
		return
	}

	for _, rid := range recipientIDs {
		ns.dispatcher.Publish(ChannelNotifications, rid, b)
	}
}

func (ns *NotificationService) Unread(ctx context.Context, userID uuid.UUID) (domain.Notifications, error) {
	return ns.repository.FetchUnread(ctx, userID)
}

func (ns *NotificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (*domain.Notification, error) {
	return ns.repository.MarkRead(ctx, notificationID, userID)
}

func (ns *NotificationService) All(ctx context.Context) ([]*domain.WithRecipients, error) {
	return ns.repository.FetchAll(ctx)
}
