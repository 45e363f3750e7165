package storage

import (
	"context"
	"errors"

	"github.com/packarr/packarr/pkg/machine"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

type Storage interface {
	InstanceStorage
	SettingsStorage
	ActivityStorage
	NotificationStorage
	Close() error
}

// InstanceStorage manages configured Sonarr connections. All reads and
// deletes are scoped to the owning user; delete is a soft delete.
type InstanceStorage interface {
	CreateInstance(ctx context.Context, instance model.SonarrInstance) (int64, error)
	GetInstance(ctx context.Context, ownerID string, id int64) (*model.SonarrInstance, error)
	ListInstances(ctx context.Context, ownerID string) ([]*model.SonarrInstance, error)
	UpdateInstance(ctx context.Context, ownerID string, instance model.SonarrInstance) error
	DeleteInstance(ctx context.Context, ownerID string, id int64) error
}

type SettingsStorage interface {
	// GetUserSettings returns the stored settings or defaults when none exist
	GetUserSettings(ctx context.Context, ownerID string) (model.UserSettings, error)
	UpsertUserSettings(ctx context.Context, settings model.UserSettings) error
}

type ActivityStorage interface {
	CreateActivity(ctx context.Context, activity Activity) (int64, error)
	CompleteActivity(ctx context.Context, id int64, state ActivityState, message string, errorDetails *string) error
	ListActivities(ctx context.Context, ownerID string, offset, limit int) ([]*Activity, error)
	CountActivities(ctx context.Context, ownerID string) (int, error)
	PurgeActivities(ctx context.Context, ownerID string) error
}

// NotificationStorage keeps the per-user record of finished runs.
// Records are written by the core at run completion and managed by the user.
type NotificationStorage interface {
	CreateNotification(ctx context.Context, notification Notification) (int64, error)
	ListNotifications(ctx context.Context, ownerID string, unreadOnly bool, offset, limit int) ([]*Notification, error)
	CountNotifications(ctx context.Context, ownerID string, unreadOnly bool) (int, error)
	MarkNotificationRead(ctx context.Context, ownerID string, id int64, read bool) error
	MarkAllNotificationsRead(ctx context.Context, ownerID string) error
	DeleteNotification(ctx context.Context, ownerID string, id int64) error
	PurgeNotifications(ctx context.Context, ownerID string) error
}

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	model.Notification
}

type ActivityState string

const (
	ActivityStateInProgress ActivityState = "in_progress"
	ActivityStateSuccess    ActivityState = "success"
	ActivityStateError      ActivityState = "error"
)

type Activity struct {
	model.ActivityLog
}

// Machine returns the activity lifecycle. A record is created in progress
// and completed exactly once.
func (a Activity) Machine() *machine.StateMachine[ActivityState] {
	return machine.New(ActivityState(a.State),
		machine.From(ActivityStateInProgress).To(ActivityStateSuccess, ActivityStateError),
	)
}
