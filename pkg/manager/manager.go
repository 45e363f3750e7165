package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/packarr/packarr/config"
	mhttp "github.com/packarr/packarr/pkg/http"
	"github.com/packarr/packarr/pkg/progress"
	"github.com/packarr/packarr/pkg/sonarr"
	"github.com/packarr/packarr/pkg/storage"
	"github.com/packarr/packarr/pkg/storage/sqlite/schema/gen/model"
)

const (
	DefaultSeasonPacing           = time.Second * 3
	DefaultDisconnectPollInterval = time.Millisecond * 100
)

// ClientFactory builds a Sonarr client for a stored instance.
// Tests swap this for a factory returning mocks.
type ClientFactory func(instance *model.SonarrInstance) (sonarr.ClientInterface, error)

// DefaultClientFactory builds real clients over the shared rate limited HTTP client
func DefaultClientFactory(httpClient mhttp.HTTPClient) ClientFactory {
	return func(instance *model.SonarrInstance) (sonarr.ClientInterface, error) {
		return sonarr.FromURL(httpClient, instance.URL, instance.APIKey)
	}
}

type SeasonManager struct {
	storage  storage.Storage
	progress progress.Publisher
	factory  ClientFactory
	config   config.Manager
}

func New(store storage.Storage, publisher progress.Publisher, factory ClientFactory, cfg config.Manager) *SeasonManager {
	if cfg.SeasonPacing == 0 {
		cfg.SeasonPacing = DefaultSeasonPacing
	}
	if cfg.DisconnectPollInterval == 0 {
		cfg.DisconnectPollInterval = DefaultDisconnectPollInterval
	}

	return &SeasonManager{
		storage:  store,
		progress: publisher,
		factory:  factory,
		config:   cfg,
	}
}

// clientFor resolves an owner's instance and builds a client for it
func (m *SeasonManager) clientFor(ctx context.Context, ownerID string, instanceID int64) (sonarr.ClientInterface, *model.SonarrInstance, error) {
	instance, err := m.storage.GetInstance(ctx, ownerID, instanceID)
	if err != nil {
		return nil, nil, err
	}

	client, err := m.factory(instance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build client for instance %d: %w", instanceID, err)
	}

	return client, instance, nil
}

// TestInstanceConnection checks that a Sonarr connection answers
func (m *SeasonManager) TestInstanceConnection(ctx context.Context, instance *model.SonarrInstance) error {
	client, err := m.factory(instance)
	if err != nil {
		return err
	}

	return client.TestConnection(ctx)
}

// DownloadRelease grabs one explicit candidate on the owner's instance
func (m *SeasonManager) DownloadRelease(ctx context.Context, ownerID string, instanceID int64, guid string, indexerID int32) error {
	client, _, err := m.clientFor(ctx, ownerID, instanceID)
	if err != nil {
		return err
	}

	return client.DownloadRelease(ctx, guid, indexerID)
}

// ProgressFn reports incremental progress from inside a run.
// Orchestrators wrap it to re-scale percent into their own window.
type ProgressFn func(ctx context.Context, percent int, message string, severity progress.Severity, stage string, payload map[string]any)

func (m *SeasonManager) progressFn(ownerID, title, operation string) ProgressFn {
	return func(ctx context.Context, percent int, message string, severity progress.Severity, stage string, payload map[string]any) {
		m.progress.Publish(ctx, progress.Event{
			Recipient: ownerID,
			Title:     title,
			Operation: operation,
			Message:   message,
			Percent:   percent,
			Severity:  severity,
			Stage:     stage,
			Payload:   payload,
		})
	}
}
