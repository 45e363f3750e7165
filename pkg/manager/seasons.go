package manager

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/progress"
)

// RunAllSeasons runs the season engine across every actionable season of a show.
// Seasons are discovered with one up-front missing scan and one future-episode
// check, then processed sequentially with a pacing delay so the downstream
// service's own scheduler is not overwhelmed. One season's failure does not
// stop the others.
func (m *SeasonManager) RunAllSeasons(ctx context.Context, ownerID string, show ShowTarget) (AllSeasonsResult, error) {
	emit := m.progressFn(ownerID, show.Title, progress.OperationSeasonIt)
	return m.runAllSeasons(ctx, ownerID, show, emit)
}

func (m *SeasonManager) runAllSeasons(ctx context.Context, ownerID string, show ShowTarget, emit ProgressFn) (AllSeasonsResult, error) {
	log := logger.FromCtx(ctx)

	payload := map[string]any{
		"showId":    show.ShowID,
		"posterUrl": show.PosterURL,
	}

	result := AllSeasonsResult{Status: AllSeasonsCompleted}

	client, _, err := m.clientFor(ctx, ownerID, show.InstanceID)
	if err != nil {
		emit(ctx, 100, fmt.Sprintf("run failed: %s", err), progress.SeverityError, "done", payload)
		return result, err
	}

	emit(ctx, 5, "scanning all seasons", progress.SeverityInfo, "starting", payload)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	missing, err := client.GetMissingEpisodes(ctx, show.ShowID, nil)
	if err != nil {
		emit(ctx, 100, fmt.Sprintf("missing episode scan failed: %s", err), progress.SeverityError, "done", payload)
		return result, err
	}

	if len(missing.SeasonsWithMissing) == 0 {
		result.Status = AllSeasonsNoMissingEpisodes
		emit(ctx, 100, "no missing episodes in any season", progress.SeveritySuccess, "done", payload)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	future, err := client.HasFutureEpisodes(ctx, show.ShowID, nil)
	if err != nil {
		emit(ctx, 100, fmt.Sprintf("future episode check failed: %s", err), progress.SeverityError, "done", payload)
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	series, err := client.GetSeries(ctx, show.ShowID)
	if err != nil {
		emit(ctx, 100, fmt.Sprintf("series lookup failed: %s", err), progress.SeverityError, "done", payload)
		return result, err
	}

	monitored := make(map[int32]bool, len(series.Seasons))
	for _, s := range series.Seasons {
		monitored[s.SeasonNumber] = s.Monitored
	}

	// actionable seasons are monitored, numbered, missing episodes, and fully aired;
	// seasons failing a filter are excluded silently rather than reported as errors
	candidates := make([]int32, 0, len(missing.SeasonsWithMissing))
	for seasonNumber := range missing.SeasonsWithMissing {
		if seasonNumber <= 0 || !monitored[seasonNumber] {
			continue
		}
		if _, complete := future.SeasonsComplete[seasonNumber]; !complete {
			continue
		}
		candidates = append(candidates, seasonNumber)
	}
	slices.Sort(candidates)

	if len(candidates) == 0 {
		result.Status = AllSeasonsNoneToProcess
		emit(ctx, 100, "no seasons ready to process", progress.SeverityWarning, "done", payload)
		return result, nil
	}

	emit(ctx, 25, fmt.Sprintf("processing %d seasons", len(candidates)), progress.SeverityInfo, "processing", payload)

	// per-season progress lands in the 30-90 window of the parent run
	const windowStart, windowEnd = 30, 90
	span := (windowEnd - windowStart) / len(candidates)

	for i, seasonNumber := range candidates {
		if err := ctx.Err(); err != nil {
			emit(ctx, 100, "run cancelled", progress.SeverityWarning, "done", payload)
			return result, err
		}

		base := windowStart + i*span
		scaled := func(ctx context.Context, percent int, message string, severity progress.Severity, stage string, p map[string]any) {
			emit(ctx, base+percent*span/100, message, severity, stage, p)
		}

		outcome, err := m.runSeason(ctx, ownerID, show, seasonNumber, scaled)
		if err != nil {
			log.Warnw("season run failed", "show", show.Title, "season", seasonNumber, "error", err)
			result.Failed++
		} else {
			result.Succeeded++
		}
		result.Outcomes = append(result.Outcomes, outcome)
		result.ProcessedSeasons++

		if i == len(candidates)-1 {
			break
		}

		select {
		case <-time.After(m.config.SeasonPacing):
		case <-ctx.Done():
			emit(ctx, 100, "run cancelled", progress.SeverityWarning, "done", payload)
			return result, ctx.Err()
		}
	}

	emit(ctx, 100, fmt.Sprintf("processed %d seasons, %d succeeded, %d failed", result.ProcessedSeasons, result.Succeeded, result.Failed), progress.SeveritySuccess, "done", payload)
	return result, nil
}
