package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/table"
)

// CreateActivity records the start of one orchestration attempt
func (s *SQLite) CreateActivity(ctx context.Context, activity storage.Activity) (int64, error) {
	if activity.State == "" {
		activity.State = string(storage.ActivityStateInProgress)
	}

	if activity.State != string(storage.ActivityStateInProgress) {
		return 0, fmt.Errorf("activity must start in progress, got %q", activity.State)
	}

	stmt := table.ActivityLog.
		INSERT(
			table.ActivityLog.OwnerID,
			table.ActivityLog.InstanceID,
			table.ActivityLog.ShowID,
			table.ActivityLog.ShowTitle,
			table.ActivityLog.SeasonNumber,
			table.ActivityLog.State,
			table.ActivityLog.Message,
		).
		MODEL(activity.ActivityLog)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create activity: %w", err)
	}

	return result.LastInsertId()
}

// CompleteActivity moves an activity to a terminal state exactly once
func (s *SQLite) CompleteActivity(ctx context.Context, id int64, state storage.ActivityState, message string, errorDetails *string) error {
	activity, err := s.getActivity(ctx, id)
	if err != nil {
		return err
	}

	if err := activity.Machine().ToState(state); err != nil {
		return err
	}

	stmt := table.ActivityLog.
		UPDATE().
		SET(
			table.ActivityLog.State.SET(sqlite.String(string(state))),
			table.ActivityLog.Message.SET(sqlite.String(message)),
			table.ActivityLog.ErrorDetails.SET(stringOrNull(errorDetails)),
			table.ActivityLog.CompletedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))),
		).
		WHERE(table.ActivityLog.ID.EQ(sqlite.Int64(id)))

	_, err = s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to complete activity: %w", err)
	}

	return nil
}

func (s *SQLite) getActivity(ctx context.Context, id int64) (*storage.Activity, error) {
	stmt := table.ActivityLog.
		SELECT(table.ActivityLog.AllColumns).
		FROM(table.ActivityLog).
		WHERE(table.ActivityLog.ID.EQ(sqlite.Int64(id)))

	activity := new(storage.Activity)
	err := stmt.QueryContext(ctx, s.db, activity)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return activity, nil
}

// ListActivities lists a user's activity newest first.
// If limit is 0 all entries are returned.
func (s *SQLite) ListActivities(ctx context.Context, ownerID string, offset, limit int) ([]*storage.Activity, error) {
	stmt := table.ActivityLog.
		SELECT(table.ActivityLog.AllColumns).
		FROM(table.ActivityLog).
		WHERE(table.ActivityLog.OwnerID.EQ(sqlite.String(ownerID))).
		ORDER_BY(table.ActivityLog.CreatedAt.DESC(), table.ActivityLog.ID.DESC())

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit)).OFFSET(int64(offset))
	}

	activities := make([]*storage.Activity, 0)
	err := stmt.QueryContext(ctx, s.db, &activities)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return activities, nil
}

// CountActivities returns the total number of activity entries for a user
func (s *SQLite) CountActivities(ctx context.Context, ownerID string) (int, error) {
	stmt := table.ActivityLog.
		SELECT(sqlite.COUNT(table.ActivityLog.ID).AS("count")).
		FROM(table.ActivityLog).
		WHERE(table.ActivityLog.OwnerID.EQ(sqlite.String(ownerID)))

	var result struct {
		Count int64
	}
	err := stmt.QueryContext(ctx, s.db, &result)
	if err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}

	return int(result.Count), nil
}

// PurgeActivities removes all of a user's activity entries
func (s *SQLite) PurgeActivities(ctx context.Context, ownerID string) error {
	stmt := table.ActivityLog.
		DELETE().
		WHERE(table.ActivityLog.OwnerID.EQ(sqlite.String(ownerID)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to purge activities: %w", err)
	}

	return nil
}

func stringOrNull(s *string) sqlite.StringExpression {
	if s == nil {
		return sqlite.StringExp(sqlite.NULL)
	}
	return sqlite.String(*s)
}
