package manager

import (
	"context"
	"testing"

	"github.com/packarr/packarr/pkg/sonarr"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunAllSeasons_SkipsUnairedSeasons(t *testing.T) {
	ctx := context.Background()
	m, store, client, _ := newTestSeasonManager(t)

	expectInstance(store, "user-1", 1)
	expectActivityLifecycle(store, storage.ActivityStateSuccess)
	store.EXPECT().GetUserSettings(gomock.Any(), "user-1").Return(model.UserSettings{OwnerID: "user-1"}, nil)

	// discovery pass over the whole show
	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.MissingEpisodesResult{
		SeasonsWithMissing: map[int32][]int64{1: {11}, 2: {21, 22}},
	}, nil)
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.FutureEpisodesResult{
		SeasonsComplete:   map[int32]struct{}{1: {}},
		SeasonsIncomplete: map[int32]struct{}{2: {}},
	}, nil)
	client.EXPECT().GetSeries(gomock.Any(), int64(42)).Return(&sonarr.Series{
		ID: 42,
		Seasons: []sonarr.Season{
			{SeasonNumber: 1, Monitored: true},
			{SeasonNumber: 2, Monitored: true},
		},
	}, nil)

	// only season 1 is actionable
	season := int32(1)
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), &season).Return(sonarr.FutureEpisodesResult{
		SeasonsComplete: map[int32]struct{}{1: {}},
	}, nil)
	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), &season).Return(sonarr.MissingEpisodesResult{
		SeasonsWithMissing: map[int32][]int64{1: {11}},
	}, nil)
	client.EXPECT().SearchSeasonPacks(gomock.Any(), int64(42), int32(1)).Return([]sonarr.Release{
		{GUID: "pack-1", FullSeason: true},
	}, nil)
	client.EXPECT().DeleteSeasonEpisodes(gomock.Any(), int64(42), int32(1)).Return(nil)
	client.EXPECT().TriggerSeasonSearch(gomock.Any(), int64(42), int32(1)).Return(int64(70), nil)

	result, err := m.RunAllSeasons(ctx, "user-1", testShow)
	require.NoError(t, err)
	assert.Equal(t, AllSeasonsCompleted, result.Status)
	assert.Equal(t, 1, result.ProcessedSeasons)
	assert.Equal(t, 1, result.Succeeded)
	assert.Zero(t, result.Failed)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, int32(1), result.Outcomes[0].SeasonNumber)
	assert.Equal(t, OutcomeSuccess, result.Outcomes[0].Status)
}

func TestRunAllSeasons_NoMissingEpisodes(t *testing.T) {
	ctx := context.Background()
	m, store, client, publisher := newTestSeasonManager(t)

	expectInstance(store, "user-1", 1)
	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.MissingEpisodesResult{}, nil)

	result, err := m.RunAllSeasons(ctx, "user-1", testShow)
	require.NoError(t, err)
	assert.Equal(t, AllSeasonsNoMissingEpisodes, result.Status)
	assert.Zero(t, result.ProcessedSeasons)

	last := publisher.last()
	assert.Equal(t, 100, last.Percent)
}

func TestRunAllSeasons_NoSeasonsToProcess(t *testing.T) {
	ctx := context.Background()
	m, store, client, _ := newTestSeasonManager(t)

	expectInstance(store, "user-1", 1)

	// specials and unmonitored seasons are filtered out silently
	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.MissingEpisodesResult{
		SeasonsWithMissing: map[int32][]int64{0: {1}, 4: {41}},
	}, nil)
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.FutureEpisodesResult{
		SeasonsComplete: map[int32]struct{}{0: {}, 4: {}},
	}, nil)
	client.EXPECT().GetSeries(gomock.Any(), int64(42)).Return(&sonarr.Series{
		ID: 42,
		Seasons: []sonarr.Season{
			{SeasonNumber: 0, Monitored: true},
			{SeasonNumber: 4, Monitored: false},
		},
	}, nil)

	result, err := m.RunAllSeasons(ctx, "user-1", testShow)
	require.NoError(t, err)
	assert.Equal(t, AllSeasonsNoneToProcess, result.Status)
	assert.Zero(t, result.ProcessedSeasons)
}

// A failing season does not stop the seasons after it.
func TestRunAllSeasons_SeasonFailureIsolated(t *testing.T) {
	ctx := context.Background()
	m, store, client, _ := newTestSeasonManager(t)

	expectInstance(store, "user-1", 1)

	store.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(int64(9), nil).Times(2)
	store.EXPECT().CompleteActivity(gomock.Any(), int64(9), storage.ActivityStateError, gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().CompleteActivity(gomock.Any(), int64(9), storage.ActivityStateSuccess, gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
	store.EXPECT().GetUserSettings(gomock.Any(), "user-1").Return(model.UserSettings{OwnerID: "user-1"}, nil)

	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.MissingEpisodesResult{
		SeasonsWithMissing: map[int32][]int64{1: {11}, 2: {21}},
	}, nil)
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.FutureEpisodesResult{
		SeasonsComplete: map[int32]struct{}{1: {}, 2: {}},
	}, nil)
	client.EXPECT().GetSeries(gomock.Any(), int64(42)).Return(&sonarr.Series{
		ID: 42,
		Seasons: []sonarr.Season{
			{SeasonNumber: 1, Monitored: true},
			{SeasonNumber: 2, Monitored: true},
		},
	}, nil)

	one, two := int32(1), int32(2)

	// season 1 fails on its future check
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), &one).Return(sonarr.FutureEpisodesResult{}, sonarr.ErrDownstreamUnavailable)

	// season 2 runs through
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), &two).Return(sonarr.FutureEpisodesResult{
		SeasonsComplete: map[int32]struct{}{2: {}},
	}, nil)
	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), &two).Return(sonarr.MissingEpisodesResult{
		SeasonsWithMissing: map[int32][]int64{2: {21}},
	}, nil)
	client.EXPECT().SearchSeasonPacks(gomock.Any(), int64(42), int32(2)).Return([]sonarr.Release{
		{GUID: "pack-2", FullSeason: true},
	}, nil)
	client.EXPECT().DeleteSeasonEpisodes(gomock.Any(), int64(42), int32(2)).Return(nil)
	client.EXPECT().TriggerSeasonSearch(gomock.Any(), int64(42), int32(2)).Return(int64(71), nil)

	result, err := m.RunAllSeasons(ctx, "user-1", testShow)
	require.NoError(t, err)
	assert.Equal(t, AllSeasonsCompleted, result.Status)
	assert.Equal(t, 2, result.ProcessedSeasons)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, OutcomeError, result.Outcomes[0].Status)
	assert.Equal(t, OutcomeSuccess, result.Outcomes[1].Status)
}

func TestRunAllSeasons_ProgressWithinWindow(t *testing.T) {
	ctx := context.Background()
	m, store, client, publisher := newTestSeasonManager(t)

	expectInstance(store, "user-1", 1)
	expectActivityLifecycle(store, storage.ActivityStateSuccess)
	store.EXPECT().GetUserSettings(gomock.Any(), "user-1").Return(model.UserSettings{OwnerID: "user-1"}, nil)

	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.MissingEpisodesResult{
		SeasonsWithMissing: map[int32][]int64{1: {11}},
	}, nil)
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), nil).Return(sonarr.FutureEpisodesResult{
		SeasonsComplete: map[int32]struct{}{1: {}},
	}, nil)
	client.EXPECT().GetSeries(gomock.Any(), int64(42)).Return(&sonarr.Series{
		ID:      42,
		Seasons: []sonarr.Season{{SeasonNumber: 1, Monitored: true}},
	}, nil)

	season := int32(1)
	client.EXPECT().HasFutureEpisodes(gomock.Any(), int64(42), &season).Return(sonarr.FutureEpisodesResult{
		SeasonsComplete: map[int32]struct{}{1: {}},
	}, nil)
	client.EXPECT().GetMissingEpisodes(gomock.Any(), int64(42), &season).Return(sonarr.MissingEpisodesResult{
		SeasonsWithMissing: map[int32][]int64{1: {11}},
	}, nil)
	client.EXPECT().SearchSeasonPacks(gomock.Any(), int64(42), int32(1)).Return(nil, nil)
	client.EXPECT().TriggerSeasonSearch(gomock.Any(), int64(42), int32(1)).Return(int64(70), nil)

	_, err := m.RunAllSeasons(ctx, "user-1", testShow)
	require.NoError(t, err)

	// per-season events are re-scaled into the parent run's 30-90 range
	for _, event := range publisher.all() {
		if event.Stage == "starting" || event.Stage == "done" {
			continue
		}
		assert.GreaterOrEqual(t, event.Percent, 25, "stage %s", event.Stage)
		assert.LessOrEqual(t, event.Percent, 90, "stage %s", event.Stage)
	}
}
