package sonarr

import (
	"time"

	"github.com/oapi-codegen/nullable"
	"github.com/oapi-codegen/runtime/types"
)

type Series struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	TitleSlug string   `json:"titleSlug"`
	Year      int      `json:"year"`
	Ended     bool     `json:"ended"`
	Monitored bool     `json:"monitored"`
	Images    []Image  `json:"images"`
	Seasons   []Season `json:"seasons"`
}

type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url"`
	RemoteURL string `json:"remoteUrl"`
}

type Season struct {
	SeasonNumber int32 `json:"seasonNumber"`
	Monitored    bool  `json:"monitored"`
}

type Episode struct {
	ID            int64      `json:"id"`
	SeriesID      int64      `json:"seriesId"`
	SeasonNumber  int32      `json:"seasonNumber"`
	EpisodeNumber int32      `json:"episodeNumber"`
	Title         string     `json:"title"`
	AirDate       types.Date `json:"airDate"`
	AirDateUtc    *time.Time `json:"airDateUtc"`
	HasFile       bool       `json:"hasFile"`
	Monitored     bool       `json:"monitored"`
}

type EpisodeFile struct {
	ID           int64  `json:"id"`
	SeriesID     int64  `json:"seriesId"`
	SeasonNumber int32  `json:"seasonNumber"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
}

type Release struct {
	GUID         string                   `json:"guid"`
	Title        string                   `json:"title"`
	Indexer      string                   `json:"indexer"`
	IndexerID    int32                    `json:"indexerId"`
	Size         int64                    `json:"size"`
	Age          nullable.Nullable[int32] `json:"age"`
	Seeders      nullable.Nullable[int32] `json:"seeders"`
	Leechers     nullable.Nullable[int32] `json:"leechers"`
	Protocol     string                   `json:"protocol"`
	Quality      ReleaseQuality           `json:"quality"`
	FullSeason   bool                     `json:"fullSeason"`
	SeasonNumber int32                    `json:"seasonNumber"`
	Rejected     bool                     `json:"rejected"`
}

type ReleaseQuality struct {
	Quality QualityDetail `json:"quality"`
}

type QualityDetail struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type Command struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type SystemStatus struct {
	AppName string `json:"appName"`
	Version string `json:"version"`
}

// FutureEpisodesResult partitions a series' seasons by whether every episode has aired
type FutureEpisodesResult struct {
	SeasonsComplete   map[int32]struct{}
	SeasonsIncomplete map[int32]struct{}
}

// MissingEpisodesResult maps each season to the monitored episodes it has no file for
type MissingEpisodesResult struct {
	SeasonsWithMissing map[int32][]int64
}

// MissingCount returns the number of missing episodes for the given season
func (r MissingEpisodesResult) MissingCount(seasonNumber int32) int {
	return len(r.SeasonsWithMissing[seasonNumber])
}
