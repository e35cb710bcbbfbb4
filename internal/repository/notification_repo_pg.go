package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sadmanCR7/aeropulse/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}

type PGNotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) NotificationRepository {
	return &PGNotificationRepository{db: db}
}

func (r *PGNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.QueryRow(ctx, `INSERT INTO notifications (user_id, message) VALUES ($1, $2) RETURNING id, sent_at`,
		n.UserID, n.Message).Scan(&n.ID, &n.SentAt)
}

func (r *PGNotificationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, message, sent_at, is_read FROM notifications WHERE user_id=$1 ORDER BY sent_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.SentAt, &n.IsRead); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkRead is scoped to the owning user so a caller cannot touch someone
// else's notifications.
func (r *PGNotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	res, err := r.db.Exec(ctx, `UPDATE notifications SET is_read=true WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

var _ NotificationRepository = (*PGNotificationRepository)(nil)
