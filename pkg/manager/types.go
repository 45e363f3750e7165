package manager

// Strategy is decided once per season run and never re-evaluated mid-run
type Strategy string

const (
	StrategySkipIncomplete    Strategy = "skip-incomplete"
	StrategySkipNoMissing     Strategy = "skip-no-missing"
	StrategyPackFound         Strategy = "pack-found"
	StrategyPackFallback      Strategy = "pack-fallback"
	StrategyPackCheckDisabled Strategy = "pack-check-disabled"
)

type OutcomeStatus string

const (
	OutcomeSuccess           OutcomeStatus = "success"
	OutcomeNoMissingEpisodes OutcomeStatus = "no_missing_episodes"
	OutcomeIncompleteSeason  OutcomeStatus = "incomplete_season"
	OutcomeError             OutcomeStatus = "error"
)

// ShowTarget identifies one series on one configured instance.
// It is resolved once per run and not mutated afterwards.
type ShowTarget struct {
	ShowID     int64  `json:"showId"`
	Title      string `json:"title"`
	InstanceID int64  `json:"instanceId"`
	PosterURL  string `json:"posterUrl,omitempty"`
}

// SeasonSnapshot is derived from fresh downstream queries per invocation.
// Aired and missing status changes over time so it is never cached across runs.
type SeasonSnapshot struct {
	SeasonNumber       int32   `json:"seasonNumber"`
	MissingEpisodeIDs  []int64 `json:"missingEpisodeIds"`
	HasUnairedEpisodes bool    `json:"hasUnairedEpisodes"`
	Monitored          bool    `json:"monitored"`
}

// Outcome is the terminal result of one season's run
type Outcome struct {
	Status       OutcomeStatus `json:"status"`
	SeasonNumber int32         `json:"seasonNumber"`
	MissingCount int           `json:"missingCount"`
	CommandID    int64         `json:"commandId,omitempty"`
	Error        string        `json:"error,omitempty"`
}

const (
	AllSeasonsCompleted         = "completed"
	AllSeasonsNoMissingEpisodes = "no_missing_episodes"
	AllSeasonsNoneToProcess     = "no_seasons_to_process"
)

// AllSeasonsResult aggregates a whole-show run
type AllSeasonsResult struct {
	Status           string    `json:"status"`
	ProcessedSeasons int       `json:"processedSeasons"`
	Succeeded        int       `json:"succeeded"`
	Failed           int       `json:"failed"`
	Outcomes         []Outcome `json:"outcomes"`
}
