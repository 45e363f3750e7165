package manager

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/oapi-codegen/nullable"
	"github.com/packarr/packarr/pkg/sonarr"
	"github.com/stretchr/testify/assert"
)

func TestPresentReleases(t *testing.T) {
	releases := []sonarr.Release{
		{
			GUID:      "pack-1",
			Title:     "Foo S03 2160p BluRay REMUX",
			Indexer:   "indexer-a",
			IndexerID: 4,
			Size:      42 << 30,
			Seeders:   nullable.NewNullableWithValue(int32(120)),
			Leechers:  nullable.NewNullableWithValue(int32(3)),
			Protocol:  "torrent",
			Quality:   sonarr.ReleaseQuality{Quality: sonarr.QualityDetail{ID: 19, Name: "bluray-2160p remux"}},
		},
		{
			GUID:      "pack-2",
			Title:     "Foo S03 720p WEB",
			Indexer:   "indexer-b",
			IndexerID: 7,
			Size:      2 << 30,
			Protocol:  "usenet",
			Quality:   sonarr.ReleaseQuality{Quality: sonarr.QualityDetail{ID: 5, Name: "webdl-720p"}},
			Rejected:  true,
		},
	}

	candidates := presentReleases(releases)
	snaps.MatchSnapshot(t, candidates)
}

func TestPresentAge(t *testing.T) {
	t.Run("known age", func(t *testing.T) {
		r := sonarr.Release{Age: nullable.NewNullableWithValue(int32(7))}
		assert.Equal(t, "1 week ago", presentAge(r))
	})

	t.Run("unreported age", func(t *testing.T) {
		assert.Equal(t, "unknown", presentAge(sonarr.Release{}))
	})
}

func TestNullableDefault(t *testing.T) {
	assert.Equal(t, int32(12), nullableDefault(nullable.NewNullableWithValue(int32(12))))
	assert.Zero(t, nullableDefault(nullable.Nullable[int32]{}))
}
