package manager

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/packarr/packarr/config"
	"github.com/packarr/packarr/pkg/progress"
	"github.com/packarr/packarr/pkg/sonarr"
	sonarrMocks "github.com/packarr/packarr/pkg/sonarr/mocks"
	"github.com/packarr/packarr/pkg/storage"
	storeMocks "github.com/packarr/packarr/pkg/storage/mocks"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// recordingPublisher captures published events for assertions
type recordingPublisher struct {
	mu     sync.Mutex
	events []progress.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event progress.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) all() []progress.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	events := make([]progress.Event, len(p.events))
	copy(events, p.events)
	return events
}

func (p *recordingPublisher) last() progress.Event {
	events := p.all()
	if len(events) == 0 {
		return progress.Event{}
	}
	return events[len(events)-1]
}

func newTestSeasonManager(t *testing.T) (*SeasonManager, *storeMocks.MockStorage, *sonarrMocks.MockClientInterface, *recordingPublisher) {
	ctrl := gomock.NewController(t)
	store := storeMocks.NewMockStorage(ctrl)
	client := sonarrMocks.NewMockClientInterface(ctrl)
	publisher := &recordingPublisher{}

	factory := func(*model.SonarrInstance) (sonarr.ClientInterface, error) {
		return client, nil
	}

	m := New(store, publisher, factory, config.Manager{
		SeasonPacing:           time.Millisecond,
		DisconnectPollInterval: time.Millisecond * 5,
	})

	return m, store, client, publisher
}

func expectInstance(store *storeMocks.MockStorage, ownerID string, instanceID int64) {
	store.EXPECT().GetInstance(gomock.Any(), ownerID, instanceID).Return(&model.SonarrInstance{
		ID:      int32(instanceID),
		OwnerID: ownerID,
		Name:    "main",
		URL:     "http://sonarr:8989",
		APIKey:  "key",
	}, nil).AnyTimes()
}

func expectActivityLifecycle(store *storeMocks.MockStorage, state storage.ActivityState) {
	store.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(int64(9), nil)
	store.EXPECT().CompleteActivity(gomock.Any(), int64(9), state, gomock.Any(), gomock.Any()).Return(nil)
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(int64(1), nil).AnyTimes()
}

func TestNew_Defaults(t *testing.T) {
	m := New(nil, nil, nil, config.Manager{})
	assert.Equal(t, DefaultSeasonPacing, m.config.SeasonPacing)
	assert.Equal(t, DefaultDisconnectPollInterval, m.config.DisconnectPollInterval)
}

func TestTestInstanceConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("answers", func(t *testing.T) {
		m, _, client, _ := newTestSeasonManager(t)
		client.EXPECT().TestConnection(ctx).Return(nil)

		err := m.TestInstanceConnection(ctx, &model.SonarrInstance{URL: "http://sonarr:8989"})
		assert.Nil(t, err)
	})

	t.Run("unreachable", func(t *testing.T) {
		m, _, client, _ := newTestSeasonManager(t)
		client.EXPECT().TestConnection(ctx).Return(sonarr.ErrDownstreamUnavailable)

		err := m.TestInstanceConnection(ctx, &model.SonarrInstance{URL: "http://sonarr:8989"})
		assert.ErrorIs(t, err, sonarr.ErrDownstreamUnavailable)
	})
}

func TestDownloadRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("grabs on the owner's instance", func(t *testing.T) {
		m, store, client, _ := newTestSeasonManager(t)
		expectInstance(store, "user-1", 1)
		client.EXPECT().DownloadRelease(ctx, "release-guid", int32(4)).Return(nil)

		err := m.DownloadRelease(ctx, "user-1", 1, "release-guid", 4)
		assert.Nil(t, err)
	})

	t.Run("unknown instance", func(t *testing.T) {
		m, store, _, _ := newTestSeasonManager(t)
		store.EXPECT().GetInstance(gomock.Any(), "user-1", int64(99)).Return(nil, storage.ErrNotFound)

		err := m.DownloadRelease(ctx, "user-1", 99, "release-guid", 4)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("factory failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storeMocks.NewMockStorage(ctrl)
		expectInstance(store, "user-1", 1)

		factory := func(*model.SonarrInstance) (sonarr.ClientInterface, error) {
			return nil, errors.New("bad url")
		}
		m := New(store, &recordingPublisher{}, factory, config.Manager{})

		err := m.DownloadRelease(ctx, "user-1", 1, "release-guid", 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to build client for instance 1")
	})
}
