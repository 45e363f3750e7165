package manager

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oapi-codegen/nullable"
	"github.com/packarr/packarr/pkg/sonarr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PackCandidate is one season pack presented for human selection
type PackCandidate struct {
	GUID      string `json:"guid"`
	Title     string `json:"title"`
	Indexer   string `json:"indexer"`
	IndexerID int32  `json:"indexerId"`
	Quality   string `json:"quality"`
	Size      string `json:"size"`
	SizeBytes int64  `json:"sizeBytes"`
	Age       string `json:"age"`
	Seeders   int32  `json:"seeders"`
	Leechers  int32  `json:"leechers"`
	Protocol  string `json:"protocol"`
	Rejected  bool   `json:"rejected"`
}

// presentReleases converts raw release resources into display-ready candidates
func presentReleases(releases []sonarr.Release) []PackCandidate {
	candidates := make([]PackCandidate, 0, len(releases))
	for _, r := range releases {
		candidates = append(candidates, PackCandidate{
			GUID:      r.GUID,
			Title:     r.Title,
			Indexer:   r.Indexer,
			IndexerID: r.IndexerID,
			Quality:   titleCase(r.Quality.Quality.Name),
			Size:      humanize.IBytes(uint64(r.Size)),
			SizeBytes: r.Size,
			Age:       presentAge(r),
			Seeders:   nullableDefault(r.Seeders),
			Leechers:  nullableDefault(r.Leechers),
			Protocol:  r.Protocol,
			Rejected:  r.Rejected,
		})
	}
	return candidates
}

func presentAge(r sonarr.Release) string {
	days, err := r.Age.Get()
	if err != nil {
		return "unknown"
	}

	return humanize.Time(time.Now().AddDate(0, 0, -int(days)))
}

func titleCase(s string) string {
	caser := cases.Title(language.English)
	return strings.TrimSpace(caser.String(s))
}

func nullableDefault[T any](n nullable.Nullable[T]) T {
	var def T
	v, err := n.Get()
	if err != nil {
		return def
	}
	return v
}
