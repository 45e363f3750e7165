package sonarr

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/oapi-codegen/nullable"
	mhttp "github.com/packarr/packarr/pkg/http"
	"github.com/packarr/packarr/pkg/logger"
)

// ErrDownstreamUnavailable indicates the Sonarr instance could not be reached
// or answered with a non-2xx status
var ErrDownstreamUnavailable = errors.New("downstream service unavailable")

type ClientInterface interface {
	ListSeries(ctx context.Context) ([]Series, error)
	GetSeries(ctx context.Context, seriesID int64) (*Series, error)
	HasFutureEpisodes(ctx context.Context, seriesID int64, seasonNumber *int32) (FutureEpisodesResult, error)
	GetMissingEpisodes(ctx context.Context, seriesID int64, seasonNumber *int32) (MissingEpisodesResult, error)
	SearchSeasonPacks(ctx context.Context, seriesID int64, seasonNumber int32) ([]Release, error)
	DeleteSeasonEpisodes(ctx context.Context, seriesID int64, seasonNumber int32) error
	TriggerSeasonSearch(ctx context.Context, seriesID int64, seasonNumber int32) (int64, error)
	DownloadRelease(ctx context.Context, guid string, indexerID int32) error
	TestConnection(ctx context.Context) error
	PosterURL(series *Series) string
}

type client struct {
	http   mhttp.HTTPClient
	scheme string
	host   string
	apiKey string
}

func New(http mhttp.HTTPClient, scheme, host, apiKey string) ClientInterface {
	return &client{
		http,
		scheme,
		host,
		apiKey,
	}
}

// FromURL builds a client from a full base url such as http://sonarr:8989
func FromURL(http mhttp.HTTPClient, rawURL, apiKey string) (ClientInterface, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("url must include scheme and host: %s", rawURL)
	}

	return New(http, u.Scheme, u.Host, apiKey), nil
}

// ListSeries returns every series on the instance sorted by title
func (c *client) ListSeries(ctx context.Context) ([]Series, error) {
	b, err := c.do(ctx, http.MethodGet, c.url("/api/v3/series"), nil)
	if err != nil {
		return nil, err
	}

	var series []Series
	err = json.Unmarshal(b, &series)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(series, func(s1, s2 Series) int {
		return cmp.Compare(s1.Title, s2.Title)
	})

	return series, nil
}

func (c *client) GetSeries(ctx context.Context, seriesID int64) (*Series, error) {
	url := c.url("/api/v3/series/" + strconv.FormatInt(seriesID, 10))

	b, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var series Series
	err = json.Unmarshal(b, &series)
	if err != nil {
		return nil, err
	}

	return &series, nil
}

func (c *client) episodes(ctx context.Context, seriesID int64) ([]Episode, error) {
	url := c.url("/api/v3/episode")
	q := url.Query()
	q.Add("seriesId", strconv.FormatInt(seriesID, 10))
	url.RawQuery = q.Encode()

	b, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var episodes []Episode
	err = json.Unmarshal(b, &episodes)
	if err != nil {
		return nil, err
	}

	return episodes, nil
}

// HasFutureEpisodes partitions seasons into complete and incomplete sets.
// A season is incomplete if any of its episodes has no air date yet or airs in the future.
// If seasonNumber is given only that season is considered.
func (c *client) HasFutureEpisodes(ctx context.Context, seriesID int64, seasonNumber *int32) (FutureEpisodesResult, error) {
	result := FutureEpisodesResult{
		SeasonsComplete:   make(map[int32]struct{}),
		SeasonsIncomplete: make(map[int32]struct{}),
	}

	episodes, err := c.episodes(ctx, seriesID)
	if err != nil {
		return result, err
	}

	now := time.Now()
	for _, e := range episodes {
		if seasonNumber != nil && e.SeasonNumber != *seasonNumber {
			continue
		}

		if e.AirDateUtc == nil || e.AirDateUtc.After(now) {
			result.SeasonsIncomplete[e.SeasonNumber] = struct{}{}
			delete(result.SeasonsComplete, e.SeasonNumber)
			continue
		}

		if _, incomplete := result.SeasonsIncomplete[e.SeasonNumber]; !incomplete {
			result.SeasonsComplete[e.SeasonNumber] = struct{}{}
		}
	}

	return result, nil
}

// GetMissingEpisodes returns, per season, the monitored episodes that have aired but have no file
func (c *client) GetMissingEpisodes(ctx context.Context, seriesID int64, seasonNumber *int32) (MissingEpisodesResult, error) {
	result := MissingEpisodesResult{
		SeasonsWithMissing: make(map[int32][]int64),
	}

	episodes, err := c.episodes(ctx, seriesID)
	if err != nil {
		return result, err
	}

	now := time.Now()
	for _, e := range episodes {
		if seasonNumber != nil && e.SeasonNumber != *seasonNumber {
			continue
		}

		if !e.Monitored || e.HasFile {
			continue
		}

		if e.AirDateUtc == nil || e.AirDateUtc.After(now) {
			continue
		}

		result.SeasonsWithMissing[e.SeasonNumber] = append(result.SeasonsWithMissing[e.SeasonNumber], e.ID)
	}

	return result, nil
}

// SearchSeasonPacks returns full-season release candidates sorted by seeders descending
func (c *client) SearchSeasonPacks(ctx context.Context, seriesID int64, seasonNumber int32) ([]Release, error) {
	url := c.url("/api/v3/release")
	q := url.Query()
	q.Add("seriesId", strconv.FormatInt(seriesID, 10))
	q.Add("seasonNumber", strconv.FormatInt(int64(seasonNumber), 10))
	url.RawQuery = q.Encode()

	b, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var releases []Release
	err = json.Unmarshal(b, &releases)
	if err != nil {
		return nil, err
	}

	packs := make([]Release, 0, len(releases))
	for _, r := range releases {
		if r.FullSeason && r.SeasonNumber == seasonNumber {
			packs = append(packs, r)
		}
	}

	slices.SortFunc(packs, func(r1, r2 Release) int {
		return cmp.Compare(nullableDefault(r2.Seeders), nullableDefault(r1.Seeders))
	})

	return packs, nil
}

func (c *client) episodeFiles(ctx context.Context, seriesID int64) ([]EpisodeFile, error) {
	url := c.url("/api/v3/episodefile")
	q := url.Query()
	q.Add("seriesId", strconv.FormatInt(seriesID, 10))
	url.RawQuery = q.Encode()

	b, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var files []EpisodeFile
	err = json.Unmarshal(b, &files)
	if err != nil {
		return nil, err
	}

	return files, nil
}

// DeleteSeasonEpisodes deletes every episode file currently on disk for the season
func (c *client) DeleteSeasonEpisodes(ctx context.Context, seriesID int64, seasonNumber int32) error {
	log := logger.FromCtx(ctx)

	files, err := c.episodeFiles(ctx, seriesID)
	if err != nil {
		return err
	}

	for _, f := range files {
		if f.SeasonNumber != seasonNumber {
			continue
		}

		url := c.url("/api/v3/episodefile/" + strconv.FormatInt(f.ID, 10))
		_, err := c.do(ctx, http.MethodDelete, url, nil)
		if err != nil {
			return err
		}
		log.Debugw("deleted episode file", "id", f.ID, "path", f.Path)
	}

	return nil
}

type seasonSearchCommand struct {
	Name         string `json:"name"`
	SeriesID     int64  `json:"seriesId"`
	SeasonNumber int32  `json:"seasonNumber"`
}

// TriggerSeasonSearch issues a SeasonSearch command and returns its id
func (c *client) TriggerSeasonSearch(ctx context.Context, seriesID int64, seasonNumber int32) (int64, error) {
	body, err := json.Marshal(seasonSearchCommand{
		Name:         "SeasonSearch",
		SeriesID:     seriesID,
		SeasonNumber: seasonNumber,
	})
	if err != nil {
		return 0, err
	}

	b, err := c.do(ctx, http.MethodPost, c.url("/api/v3/command"), bytes.NewReader(body))
	if err != nil {
		return 0, err
	}

	var command Command
	err = json.Unmarshal(b, &command)
	if err != nil {
		return 0, err
	}

	return command.ID, nil
}

type downloadReleaseRequest struct {
	GUID      string `json:"guid"`
	IndexerID int32  `json:"indexerId"`
}

// DownloadRelease tells Sonarr to grab one explicit release candidate
func (c *client) DownloadRelease(ctx context.Context, guid string, indexerID int32) error {
	body, err := json.Marshal(downloadReleaseRequest{
		GUID:      guid,
		IndexerID: indexerID,
	})
	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPost, c.url("/api/v3/release"), bytes.NewReader(body))
	return err
}

// TestConnection verifies the instance answers with its system status
func (c *client) TestConnection(ctx context.Context) error {
	b, err := c.do(ctx, http.MethodGet, c.url("/api/v3/system/status"), nil)
	if err != nil {
		return err
	}

	var status SystemStatus
	err = json.Unmarshal(b, &status)
	if err != nil {
		return fmt.Errorf("%w: unexpected status response: %v", ErrDownstreamUnavailable, err)
	}

	return nil
}

// PosterURL returns the poster image for a series, preferring the remote url
func (c *client) PosterURL(series *Series) string {
	if series == nil {
		return ""
	}

	for _, img := range series.Images {
		if img.CoverType != "poster" {
			continue
		}
		if img.RemoteURL != "" {
			return img.RemoteURL
		}
		if img.URL != "" {
			u := url.URL{
				Scheme: c.scheme,
				Host:   c.host,
			}
			return u.String() + img.URL
		}
	}

	return ""
}

func (c *client) url(path string) *url.URL {
	return &url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   path,
	}
}

func (c *client) do(ctx context.Context, method string, url *url.URL, body io.Reader) ([]byte, error) {
	log := logger.FromCtx(ctx)
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	if url == nil {
		return nil, errors.New("url is nil")
	}

	u := url.String()
	log.Debugw("sonarr do", "method", method, "url", u)

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDownstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status code not ok: %s", ErrDownstreamUnavailable, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func nullableDefault[T any](n nullable.Nullable[T]) T {
	var def T
	v, err := n.Get()
	if err != nil {
		return def
	}
	return v
}
