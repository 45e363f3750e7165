package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/table"
)

// CreateInstance stores a new Sonarr connection for a user
func (s *SQLite) CreateInstance(ctx context.Context, instance model.SonarrInstance) (int64, error) {
	instance.IsActive = true

	stmt := table.SonarrInstance.
		INSERT(
			table.SonarrInstance.OwnerID,
			table.SonarrInstance.Name,
			table.SonarrInstance.URL,
			table.SonarrInstance.APIKey,
			table.SonarrInstance.IsActive,
		).
		MODEL(instance)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create instance: %w", err)
	}

	return result.LastInsertId()
}

// GetInstance retrieves one active instance scoped to its owner
func (s *SQLite) GetInstance(ctx context.Context, ownerID string, id int64) (*model.SonarrInstance, error) {
	stmt := table.SonarrInstance.
		SELECT(table.SonarrInstance.AllColumns).
		FROM(table.SonarrInstance).
		WHERE(
			table.SonarrInstance.ID.EQ(sqlite.Int64(id)).
				AND(table.SonarrInstance.OwnerID.EQ(sqlite.String(ownerID))).
				AND(table.SonarrInstance.IsActive.EQ(sqlite.Bool(true))),
		)

	instance := new(model.SonarrInstance)
	err := stmt.QueryContext(ctx, s.db, instance)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}

	return instance, nil
}

// ListInstances lists a user's active instances
func (s *SQLite) ListInstances(ctx context.Context, ownerID string) ([]*model.SonarrInstance, error) {
	instances := make([]*model.SonarrInstance, 0)

	stmt := table.SonarrInstance.
		SELECT(table.SonarrInstance.AllColumns).
		FROM(table.SonarrInstance).
		WHERE(
			table.SonarrInstance.OwnerID.EQ(sqlite.String(ownerID)).
				AND(table.SonarrInstance.IsActive.EQ(sqlite.Bool(true))),
		).
		ORDER_BY(table.SonarrInstance.CreatedAt.ASC())

	err := stmt.QueryContext(ctx, s.db, &instances)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}

	return instances, nil
}

// UpdateInstance updates an instance's name, url, and api key
func (s *SQLite) UpdateInstance(ctx context.Context, ownerID string, instance model.SonarrInstance) error {
	stmt := table.SonarrInstance.
		UPDATE().
		SET(
			table.SonarrInstance.Name.SET(sqlite.String(instance.Name)),
			table.SonarrInstance.URL.SET(sqlite.String(instance.URL)),
			table.SonarrInstance.APIKey.SET(sqlite.String(instance.APIKey)),
			table.SonarrInstance.UpdatedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))),
		).
		WHERE(
			table.SonarrInstance.ID.EQ(sqlite.Int32(instance.ID)).
				AND(table.SonarrInstance.OwnerID.EQ(sqlite.String(ownerID))).
				AND(table.SonarrInstance.IsActive.EQ(sqlite.Bool(true))),
		)

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update instance: %w", err)
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

// DeleteInstance soft deletes an instance so its activity history stays readable
func (s *SQLite) DeleteInstance(ctx context.Context, ownerID string, id int64) error {
	stmt := table.SonarrInstance.
		UPDATE().
		SET(
			table.SonarrInstance.IsActive.SET(sqlite.Bool(false)),
			table.SonarrInstance.UpdatedAt.SET(sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))),
		).
		WHERE(
			table.SonarrInstance.ID.EQ(sqlite.Int64(id)).
				AND(table.SonarrInstance.OwnerID.EQ(sqlite.String(ownerID))).
				AND(table.SonarrInstance.IsActive.EQ(sqlite.Bool(true))),
		)

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete instance: %w", err)
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
