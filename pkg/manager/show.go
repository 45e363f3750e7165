package manager

import (
	"context"
	"strings"

	"github.com/packarr/packarr/pkg/sonarr"
)

// Show is a library entry presented for selection.
// The id and instance id together form a ShowTarget for the season operations.
type Show struct {
	ID         int64           `json:"id"`
	Title      string          `json:"title"`
	Year       int             `json:"year"`
	Ended      bool            `json:"ended"`
	Monitored  bool            `json:"monitored"`
	InstanceID int64           `json:"instanceId"`
	PosterURL  string          `json:"posterUrl,omitempty"`
	Seasons    []sonarr.Season `json:"seasons"`
}

// ListShows returns the instance's library sorted by title.
// A non-empty search keeps only titles containing it, case insensitive.
func (m *SeasonManager) ListShows(ctx context.Context, ownerID string, instanceID int64, search string) ([]Show, error) {
	client, _, err := m.clientFor(ctx, ownerID, instanceID)
	if err != nil {
		return nil, err
	}

	series, err := client.ListSeries(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))

	shows := make([]Show, 0, len(series))
	for i := range series {
		if search != "" && !strings.Contains(strings.ToLower(series[i].Title), search) {
			continue
		}
		shows = append(shows, presentShow(client, &series[i], instanceID))
	}

	return shows, nil
}

// GetShow returns one library entry with its seasons
func (m *SeasonManager) GetShow(ctx context.Context, ownerID string, instanceID, showID int64) (*Show, error) {
	client, _, err := m.clientFor(ctx, ownerID, instanceID)
	if err != nil {
		return nil, err
	}

	series, err := client.GetSeries(ctx, showID)
	if err != nil {
		return nil, err
	}

	show := presentShow(client, series, instanceID)
	return &show, nil
}

func presentShow(client sonarr.ClientInterface, series *sonarr.Series, instanceID int64) Show {
	return Show{
		ID:         series.ID,
		Title:      series.Title,
		Year:       series.Year,
		Ended:      series.Ended,
		Monitored:  series.Monitored,
		InstanceID: instanceID,
		PosterURL:  client.PosterURL(series),
		Seasons:    series.Seasons,
	}
}
