package manager

import (
	"context"
	"fmt"

	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/progress"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
)

// RunSeason decides and executes the acquisition strategy for one season.
// The future-episode check runs strictly before the missing scan so a season
// that is both incomplete and missing episodes reports incomplete_season.
// Cancellation is observed before every downstream call.
func (m *SeasonManager) RunSeason(ctx context.Context, ownerID string, show ShowTarget, seasonNumber int32) (Outcome, error) {
	emit := m.progressFn(ownerID, show.Title, progress.OperationSeasonIt)
	return m.runSeason(ctx, ownerID, show, seasonNumber, emit)
}

func (m *SeasonManager) runSeason(ctx context.Context, ownerID string, show ShowTarget, seasonNumber int32, emit ProgressFn) (Outcome, error) {
	log := logger.FromCtx(ctx)

	activityID, err := m.storage.CreateActivity(ctx, storage.Activity{
		ActivityLog: model.ActivityLog{
			OwnerID:      ownerID,
			InstanceID:   int32(show.InstanceID),
			ShowID:       show.ShowID,
			ShowTitle:    show.Title,
			SeasonNumber: &seasonNumber,
			Message:      fmt.Sprintf("season %d run started", seasonNumber),
		},
	})
	if err != nil {
		details := err.Error()
		emit(ctx, 100, fmt.Sprintf("season %d run failed: %s", seasonNumber, details), progress.SeverityError, "done", map[string]any{
			"showId":       show.ShowID,
			"seasonNumber": seasonNumber,
			"posterUrl":    show.PosterURL,
		})
		return Outcome{Status: OutcomeError, SeasonNumber: seasonNumber, Error: details}, err
	}

	run := &seasonRun{
		manager:      m,
		ownerID:      ownerID,
		show:         show,
		seasonNumber: seasonNumber,
		activityID:   activityID,
		emit:         emit,
	}

	client, _, err := m.clientFor(ctx, ownerID, show.InstanceID)
	if err != nil {
		return run.fail(ctx, err)
	}

	run.emit(ctx, 5, fmt.Sprintf("processing season %d", seasonNumber), progress.SeverityInfo, "starting", run.payload())

	if err := ctx.Err(); err != nil {
		return run.cancelled(ctx, err)
	}

	future, err := client.HasFutureEpisodes(ctx, show.ShowID, &seasonNumber)
	if err != nil {
		return run.fail(ctx, err)
	}

	if _, incomplete := future.SeasonsIncomplete[seasonNumber]; incomplete {
		log.Infow("season has unaired episodes, skipping", "show", show.Title, "season", seasonNumber)
		return run.skip(ctx, OutcomeIncompleteSeason, fmt.Sprintf("season %d has unaired episodes", seasonNumber))
	}

	if err := ctx.Err(); err != nil {
		return run.cancelled(ctx, err)
	}

	run.emit(ctx, 15, "scanning for missing episodes", progress.SeverityInfo, "scanning", run.payload())

	missing, err := client.GetMissingEpisodes(ctx, show.ShowID, &seasonNumber)
	if err != nil {
		return run.fail(ctx, err)
	}

	missingCount := missing.MissingCount(seasonNumber)
	if missingCount == 0 {
		return run.skip(ctx, OutcomeNoMissingEpisodes, fmt.Sprintf("season %d has no missing episodes", seasonNumber))
	}
	run.missingCount = missingCount

	settings, err := m.storage.GetUserSettings(ctx, ownerID)
	if err != nil {
		return run.fail(ctx, err)
	}

	run.emit(ctx, 25, fmt.Sprintf("found %d missing episodes", missingCount), progress.SeverityInfo, "deciding", run.payload())

	strategy := StrategyPackCheckDisabled
	if !settings.DisableSeasonPackCheck {
		if err := ctx.Err(); err != nil {
			return run.cancelled(ctx, err)
		}

		run.emit(ctx, 35, "searching for season packs", progress.SeverityInfo, "searching_packs", run.payload())

		packs, err := client.SearchSeasonPacks(ctx, show.ShowID, seasonNumber)
		if err != nil {
			return run.fail(ctx, err)
		}

		if len(packs) > 0 {
			strategy = StrategyPackFound
		} else {
			strategy = StrategyPackFallback
			run.emit(ctx, 40, "no season packs found, falling back to episode search", progress.SeverityWarning, "fallback", run.payload())
		}
	}
	log.Infow("season strategy decided", "show", show.Title, "season", seasonNumber, "strategy", strategy)

	// deletion only happens when a pack is expected to replace the files;
	// the fallback path leaves existing episodes alone
	deleteFirst := strategy != StrategyPackFallback && !settings.SkipEpisodeDeletion
	if deleteFirst {
		if err := ctx.Err(); err != nil {
			return run.cancelled(ctx, err)
		}

		run.emit(ctx, 55, "deleting existing episodes", progress.SeverityInfo, "deleting", run.payload())

		if err := client.DeleteSeasonEpisodes(ctx, show.ShowID, seasonNumber); err != nil {
			return run.fail(ctx, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return run.cancelled(ctx, err)
	}

	run.emit(ctx, 80, "triggering season search", progress.SeverityInfo, "triggering", run.payload())

	commandID, err := client.TriggerSeasonSearch(ctx, show.ShowID, seasonNumber)
	if err != nil {
		return run.fail(ctx, err)
	}

	return run.success(ctx, commandID)
}

// seasonRun carries one run's identity so the terminal helpers
// complete the activity record and emit the final event exactly once
type seasonRun struct {
	manager      *SeasonManager
	ownerID      string
	show         ShowTarget
	seasonNumber int32
	activityID   int64
	missingCount int
	emit         ProgressFn
}

func (r *seasonRun) payload() map[string]any {
	return map[string]any{
		"showId":       r.show.ShowID,
		"seasonNumber": r.seasonNumber,
		"posterUrl":    r.show.PosterURL,
	}
}

func (r *seasonRun) success(ctx context.Context, commandID int64) (Outcome, error) {
	message := fmt.Sprintf("season %d search triggered for %d missing episodes", r.seasonNumber, r.missingCount)
	r.finish(ctx, storage.ActivityStateSuccess, message, nil, storage.NotificationSuccess)
	r.emit(ctx, 100, message, progress.SeveritySuccess, "done", r.payload())

	return Outcome{
		Status:       OutcomeSuccess,
		SeasonNumber: r.seasonNumber,
		MissingCount: r.missingCount,
		CommandID:    commandID,
	}, nil
}

// skip is a terminal no-op outcome, announced as completed rather than failed
func (r *seasonRun) skip(ctx context.Context, status OutcomeStatus, message string) (Outcome, error) {
	severity := progress.SeveritySuccess
	kind := storage.NotificationInfo
	if status == OutcomeIncompleteSeason {
		severity = progress.SeverityWarning
		kind = storage.NotificationWarning
	}

	r.finish(ctx, storage.ActivityStateSuccess, message, nil, kind)
	r.emit(ctx, 100, message, severity, "done", r.payload())

	return Outcome{
		Status:       status,
		SeasonNumber: r.seasonNumber,
		MissingCount: r.missingCount,
	}, nil
}

func (r *seasonRun) fail(ctx context.Context, err error) (Outcome, error) {
	message := fmt.Sprintf("season %d run failed", r.seasonNumber)
	details := err.Error()
	r.finish(ctx, storage.ActivityStateError, message, &details, storage.NotificationError)
	r.emit(ctx, 100, fmt.Sprintf("%s: %s", message, details), progress.SeverityError, "done", r.payload())

	return Outcome{
		Status:       OutcomeError,
		SeasonNumber: r.seasonNumber,
		MissingCount: r.missingCount,
		Error:        details,
	}, err
}

func (r *seasonRun) cancelled(ctx context.Context, err error) (Outcome, error) {
	message := fmt.Sprintf("season %d run cancelled", r.seasonNumber)
	details := err.Error()
	r.finish(ctx, storage.ActivityStateError, message, &details, storage.NotificationWarning)
	r.emit(ctx, 100, message, progress.SeverityWarning, "done", r.payload())

	return Outcome{
		Status:       OutcomeError,
		SeasonNumber: r.seasonNumber,
		MissingCount: r.missingCount,
		Error:        details,
	}, err
}

// finish closes the activity record and leaves a notification for the user.
// It uses a fresh context so a cancelled run still records its outcome.
func (r *seasonRun) finish(ctx context.Context, state storage.ActivityState, message string, details *string, kind storage.NotificationType) {
	log := logger.FromCtx(ctx)
	completeCtx := context.WithoutCancel(ctx)

	if err := r.manager.storage.CompleteActivity(completeCtx, r.activityID, state, message, details); err != nil {
		log.Errorw("failed to complete activity", "activity", r.activityID, "error", err)
	}

	_, err := r.manager.storage.CreateNotification(completeCtx, storage.Notification{
		Notification: model.Notification{
			OwnerID:          r.ownerID,
			Title:            r.show.Title,
			Message:          message,
			NotificationType: string(kind),
		},
	})
	if err != nil {
		log.Errorw("failed to create notification", "show", r.show.Title, "error", err)
	}
}
