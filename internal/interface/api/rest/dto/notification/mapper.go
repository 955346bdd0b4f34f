package notification

import (
	domain "file-manager-api/internal/domain/notification"
)

func ToResponseNotification(nDomain *domain.Notification, isRead bool) Notification {
	return Notification{
		UUID:      nDomain.UUID,
		SenderID:  nDomain.SenderID,
		Title:     nDomain.Title,
		Message:   nDomain.Message,
		CreatedAt: nDomain.CreatedAt.UTC(),
		IsRead:    isRead,
	}
}

func ToResponseNotifications(nsDomain domain.Notifications, isRead bool) Notifications {
	ns := make(Notifications, len(nsDomain))
	for idx, n := range nsDomain {
		ns[idx] = ToResponseNotification(n, isRead)
	}

	return ns
}

func ToResponseWithRecipients(nsDomain []*domain.WithRecipients) []WithRecipients {
	out := make([]WithRecipients, len(nsDomain))
	for idx, n := range nsDomain {
		recipients := make([]Recipient, len(n.Recipients))
		for i, r := range n.Recipients {
			recipients[i] = Recipient{
				UserID:   r.UserID,
				Name:     r.Name,
				Lastname: r.Lastname,
				Email:    r.Email,
				IsRead:   r.IsRead,
			}
		}
		out[idx] = WithRecipients{
			Notification: ToResponseNotification(&n.Notification, false),
			Recipients:   recipients,
		}
	}

	return out
}
