package manager

import (
	"context"
	"testing"

	"github.com/packarr/packarr/pkg/sonarr"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListShows(t *testing.T) {
	ctx := context.Background()

	library := []sonarr.Series{
		{ID: 1, Title: "Alpha", Year: 2019, Monitored: true},
		{ID: 2, Title: "Beta Quest", Year: 2021, Ended: true},
		{ID: 3, Title: "Gamma", Year: 2023},
	}

	t.Run("whole library", func(t *testing.T) {
		m, store, client, _ := newTestSeasonManager(t)
		expectInstance(store, "user-1", 1)

		client.EXPECT().ListSeries(gomock.Any()).Return(library, nil)
		client.EXPECT().PosterURL(gomock.Any()).Return("http://sonarr:8989/poster.jpg").Times(3)

		shows, err := m.ListShows(ctx, "user-1", 1, "")
		require.NoError(t, err)
		require.Len(t, shows, 3)
		assert.Equal(t, "Alpha", shows[0].Title)
		assert.Equal(t, int64(1), shows[0].InstanceID)
		assert.Equal(t, "http://sonarr:8989/poster.jpg", shows[0].PosterURL)
	})

	t.Run("search filter is case insensitive", func(t *testing.T) {
		m, store, client, _ := newTestSeasonManager(t)
		expectInstance(store, "user-1", 1)

		client.EXPECT().ListSeries(gomock.Any()).Return(library, nil)
		client.EXPECT().PosterURL(gomock.Any()).Return("").Times(1)

		shows, err := m.ListShows(ctx, "user-1", 1, "  QUEST ")
		require.NoError(t, err)
		require.Len(t, shows, 1)
		assert.Equal(t, "Beta Quest", shows[0].Title)
	})

	t.Run("unknown instance", func(t *testing.T) {
		m, store, _, _ := newTestSeasonManager(t)
		store.EXPECT().GetInstance(gomock.Any(), "user-1", int64(99)).Return(nil, storage.ErrNotFound)

		_, err := m.ListShows(ctx, "user-1", 99, "")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("downstream unavailable", func(t *testing.T) {
		m, store, client, _ := newTestSeasonManager(t)
		expectInstance(store, "user-1", 1)

		client.EXPECT().ListSeries(gomock.Any()).Return(nil, sonarr.ErrDownstreamUnavailable)

		_, err := m.ListShows(ctx, "user-1", 1, "")
		assert.ErrorIs(t, err, sonarr.ErrDownstreamUnavailable)
	})
}

func TestGetShow(t *testing.T) {
	ctx := context.Background()
	m, store, client, _ := newTestSeasonManager(t)

	expectInstance(store, "user-1", 1)

	series := &sonarr.Series{
		ID:        42,
		Title:     "Foo",
		Year:      2020,
		Monitored: true,
		Seasons: []sonarr.Season{
			{SeasonNumber: 1, Monitored: true},
			{SeasonNumber: 2, Monitored: false},
		},
	}
	client.EXPECT().GetSeries(gomock.Any(), int64(42)).Return(series, nil)
	client.EXPECT().PosterURL(series).Return("http://sonarr:8989/poster.jpg")

	show, err := m.GetShow(ctx, "user-1", 1, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), show.ID)
	assert.Equal(t, "Foo", show.Title)
	assert.Equal(t, int64(1), show.InstanceID)
	assert.Len(t, show.Seasons, 2)
	assert.Equal(t, "http://sonarr:8989/poster.jpg", show.PosterURL)
}
