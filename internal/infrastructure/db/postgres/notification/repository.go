package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "file-manager-api/internal/domain/notification"
	"file-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func scanNotification(row pgx.Row, n *domain.Notification) error {
	return row.Scan(
		&n.UUID,
		&n.SenderID,
		&n.Title,
		&n.Message,
		&n.CreatedAt,
	)
}

// Create writes the notification and all recipient links in one
// transaction; either every link is visible or none.
func (r *Repository) Create(ctx context.Context, req *domain.Notification, recipientIDs []uuid.UUID) (*domain.Notification, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	n := new(domain.Notification)
	row := tx.QueryRow(ctx, InsertNotification, req.SenderID, req.Title, req.Message)
	if err = scanNotification(row, n); err != nil {
		return nil, err
	}

	batch := new(pgx.Batch)
	for _, rid := range recipientIDs {
		batch.Queue(InsertRecipientLink, n.UUID, rid)
	}
	br := tx.SendBatch(ctx, batch)
	for range recipientIDs {
		if _, err = br.Exec(); err != nil {
			_ = br.Close()
			return nil, err
		}
	}
	if err = br.Close(); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return n, nil
}

func (r *Repository) FetchUnread(ctx context.Context, userID uuid.UUID) (domain.Notifications, error) {
	rows, err := r.db.Query(ctx, SelectUnreadByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ns domain.Notifications
	for rows.Next() {
		n := new(domain.Notification)
		if err = scanNotification(rows, n); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ns, nil
}

func (r *Repository) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) (*domain.Notification, error) {
	tag, err := r.db.Exec(ctx, MarkLinkRead, notificationID, userID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		// no link for this (notification, user) pair
		return nil, domain.ErrNotFound
	}

	n := new(domain.Notification)
	if err = scanNotification(r.db.QueryRow(ctx, SelectNotificationByID, notificationID), n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return n, nil
}

func (r *Repository) FetchAll(ctx context.Context) ([]*domain.WithRecipients, error) {
	rows, err := r.db.Query(ctx, SelectAllWithRecipients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out  []*domain.WithRecipients
		last *domain.WithRecipients
	)
	for rows.Next() {
		var (
			n   domain.Notification
			rec domain.Recipient
		)
		if err = rows.Scan(
			&n.UUID,
			&n.SenderID,
			&n.Title,
			&n.Message,
			&n.CreatedAt,
			&rec.UserID,
			&rec.Name,
			&rec.Lastname,
			&rec.Email,
			&rec.IsRead,
		); err != nil {
			return nil, err
		}

		// rows arrive grouped by notification
		if last == nil || last.UUID != n.UUID {
			last = &domain.WithRecipients{Notification: n}
			out = append(out, last)
		}
		last.Recipients = append(last.Recipients, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
