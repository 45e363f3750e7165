package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/table"
)

// GetUserSettings returns the stored settings for a user.
// A user with no stored row gets the defaults, both switches off.
func (s *SQLite) GetUserSettings(ctx context.Context, ownerID string) (model.UserSettings, error) {
	stmt := table.UserSettings.
		SELECT(table.UserSettings.AllColumns).
		FROM(table.UserSettings).
		WHERE(table.UserSettings.OwnerID.EQ(sqlite.String(ownerID)))

	var settings model.UserSettings
	err := stmt.QueryContext(ctx, s.db, &settings)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return model.UserSettings{OwnerID: ownerID}, nil
		}
		return settings, fmt.Errorf("failed to get user settings: %w", err)
	}

	return settings, nil
}

// UpsertUserSettings stores the settings, replacing any existing row for the user
func (s *SQLite) UpsertUserSettings(ctx context.Context, settings model.UserSettings) error {
	now := sqlite.TimestampExp(sqlite.String(time.Now().Format(timestampFormat)))

	stmt := table.UserSettings.
		INSERT(
			table.UserSettings.OwnerID,
			table.UserSettings.DisableSeasonPackCheck,
			table.UserSettings.SkipEpisodeDeletion,
		).
		MODEL(settings).
		ON_CONFLICT(table.UserSettings.OwnerID).
		DO_UPDATE(
			sqlite.SET(
				table.UserSettings.DisableSeasonPackCheck.SET(sqlite.Bool(settings.DisableSeasonPackCheck)),
				table.UserSettings.SkipEpisodeDeletion.SET(sqlite.Bool(settings.SkipEpisodeDeletion)),
				table.UserSettings.UpdatedAt.SET(now),
			),
		)

	_, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}

	return nil
}
