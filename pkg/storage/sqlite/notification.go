package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/table"
)

// CreateNotification records a finished run for the user to review
func (s *SQLite) CreateNotification(ctx context.Context, notification storage.Notification) (int64, error) {
	if notification.NotificationType == "" {
		notification.NotificationType = string(storage.NotificationInfo)
	}

	stmt := table.Notification.
		INSERT(
			table.Notification.OwnerID,
			table.Notification.Title,
			table.Notification.Message,
			table.Notification.NotificationType,
		).
		MODEL(notification.Notification)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}

	return result.LastInsertId()
}

// ListNotifications lists a user's notifications newest first.
// If limit is 0 all entries are returned.
func (s *SQLite) ListNotifications(ctx context.Context, ownerID string, unreadOnly bool, offset, limit int) ([]*storage.Notification, error) {
	condition := table.Notification.OwnerID.EQ(sqlite.String(ownerID))
	if unreadOnly {
		condition = condition.AND(table.Notification.Read.EQ(sqlite.Bool(false)))
	}

	stmt := table.Notification.
		SELECT(table.Notification.AllColumns).
		FROM(table.Notification).
		WHERE(condition).
		ORDER_BY(table.Notification.CreatedAt.DESC(), table.Notification.ID.DESC())

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	}

	notifications := make([]*storage.Notification, 0)
	err := stmt.QueryContext(ctx, s.db, &notifications)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// CountNotifications counts a user's notifications, optionally only the unread ones
func (s *SQLite) CountNotifications(ctx context.Context, ownerID string, unreadOnly bool) (int, error) {
	condition := table.Notification.OwnerID.EQ(sqlite.String(ownerID))
	if unreadOnly {
		condition = condition.AND(table.Notification.Read.EQ(sqlite.Bool(false)))
	}

	stmt := table.Notification.
		SELECT(sqlite.COUNT(table.Notification.ID).AS("count")).
		FROM(table.Notification).
		WHERE(condition)

	var result struct {
		Count int64
	}
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return int(result.Count), nil
}

// MarkNotificationRead flips one notification's read flag, scoped to its owner
func (s *SQLite) MarkNotificationRead(ctx context.Context, ownerID string, id int64, read bool) error {
	readAt := sqlite.TimestampExp(sqlite.NULL)
	if read {
		readAt = sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))
	}

	stmt := table.Notification.
		UPDATE().
		SET(
			table.Notification.Read.SET(sqlite.Bool(read)),
			table.Notification.ReadAt.SET(readAt),
		).
		WHERE(
			table.Notification.ID.EQ(sqlite.Int64(id)).
				AND(table.Notification.OwnerID.EQ(sqlite.String(ownerID))),
		)

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to mark notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification for the user as read
func (s *SQLite) MarkAllNotificationsRead(ctx context.Context, ownerID string) error {
	stmt := table.Notification.
		UPDATE().
		SET(
			table.Notification.Read.SET(sqlite.Bool(true)),
			table.Notification.ReadAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))),
		).
		WHERE(
			table.Notification.OwnerID.EQ(sqlite.String(ownerID)).
				AND(table.Notification.Read.EQ(sqlite.Bool(false))),
		)

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to mark all notifications: %w", err)
	}

	return nil
}

// DeleteNotification removes one notification, scoped to its owner
func (s *SQLite) DeleteNotification(ctx context.Context, ownerID string, id int64) error {
	stmt := table.Notification.
		DELETE().
		WHERE(
			table.Notification.ID.EQ(sqlite.Int64(id)).
				AND(table.Notification.OwnerID.EQ(sqlite.String(ownerID))),
		)

	result, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// PurgeNotifications removes all of a user's notifications
func (s *SQLite) PurgeNotifications(ctx context.Context, ownerID string) error {
	stmt := table.Notification.
		DELETE().
		WHERE(table.Notification.OwnerID.EQ(sqlite.String(ownerID)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to purge notifications: %w", err)
	}

	return nil
}
