package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/progress"
	"github.com/packarr/packarr/pkg/sonarr"
)

// ErrClientDisconnected reports that the originating connection went away
// mid-search. It is a distinct condition, not a downstream failure.
var ErrClientDisconnected = errors.New("client disconnected")

// SearchSeasonPacksInteractive runs a human-driven season pack search bound
// to one live connection. The search runs in its own cancellable unit of
// work while alive is polled; on disconnect the search is cancelled, its
// completion awaited, and a clear-progress event published so a stale
// progress display is reset.
func (m *SeasonManager) SearchSeasonPacksInteractive(ctx context.Context, ownerID string, show ShowTarget, seasonNumber int32, alive func() bool) ([]PackCandidate, error) {
	log := logger.FromCtx(ctx)
	emit := m.progressFn(ownerID, show.Title, progress.OperationInteractiveSearch)

	payload := map[string]any{
		"showId":       show.ShowID,
		"seasonNumber": seasonNumber,
	}

	client, _, err := m.clientFor(ctx, ownerID, show.InstanceID)
	if err != nil {
		return nil, err
	}

	emit(ctx, 10, fmt.Sprintf("searching season %d packs", seasonNumber), progress.SeverityInfo, "searching", payload)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type searchResult struct {
		releases []sonarr.Release
		err      error
	}

	done := make(chan searchResult, 1)
	go func() {
		releases, err := client.SearchSeasonPacks(searchCtx, show.ShowID, seasonNumber)
		done <- searchResult{releases: releases, err: err}
	}()

	ticker := time.NewTicker(m.config.DisconnectPollInterval)
	defer ticker.Stop()

	for {
		select {
		case result := <-done:
			if result.err != nil {
				emit(ctx, 100, fmt.Sprintf("search failed: %s", result.err), progress.SeverityError, "done", payload)
				return nil, result.err
			}

			candidates := presentReleases(result.releases)
			emit(ctx, 100, fmt.Sprintf("found %d season packs", len(candidates)), progress.SeveritySuccess, "done", payload)
			return candidates, nil

		case <-ticker.C:
			if alive() {
				continue
			}

			log.Infow("client disconnected, cancelling interactive search", "show", show.Title, "season", seasonNumber)
			cancel()
			<-done
			m.progress.Publish(context.WithoutCancel(ctx), progress.ClearEvent(ownerID, show.Title))
			return nil, ErrClientDisconnected

		case <-ctx.Done():
			cancel()
			<-done
			m.progress.Publish(context.WithoutCancel(ctx), progress.ClearEvent(ownerID, show.Title))
			return nil, ctx.Err()
		}
	}
}
