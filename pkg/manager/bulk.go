package manager

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/packarr/packarr/pkg/cache"
	"github.com/packarr/packarr/pkg/logger"
	"github.com/packarr/packarr/pkg/machine"
	"github.com/packarr/packarr/pkg/progress"
)

var ErrJobNotFound = errors.New("job not found")

type BulkJobState string

const (
	BulkJobPending   BulkJobState = "pending"
	BulkJobRunning   BulkJobState = "running"
	BulkJobCompleted BulkJobState = "completed"
	BulkJobFailed    BulkJobState = "failed"
	BulkJobCancelled BulkJobState = "cancelled"
)

func bulkJobMachine(state BulkJobState) *machine.StateMachine[BulkJobState] {
	return machine.New(state,
		machine.From(BulkJobPending).To(BulkJobRunning, BulkJobCancelled),
		machine.From(BulkJobRunning).To(BulkJobCompleted, BulkJobFailed, BulkJobCancelled),
	)
}

// BulkItem is one target within a bulk job
type BulkItem struct {
	ShowID       int64  `json:"showId"`
	Title        string `json:"title"`
	InstanceID   int64  `json:"instanceId"`
	SeasonNumber *int32 `json:"seasonNumber,omitempty"`
	PosterURL    string `json:"posterUrl,omitempty"`
}

type BulkItemResult struct {
	Item   BulkItem `json:"item"`
	Failed bool     `json:"failed"`
	Error  string   `json:"error,omitempty"`
	Result any      `json:"result,omitempty"`
}

// BulkJob is owned by the engine for its lifetime. All mutation happens
// under its mutex; readers get copies.
type BulkJob struct {
	mu        sync.Mutex
	id        string
	ownerID   string
	kind      string
	items     []BulkItem
	state     BulkJobState
	createdAt time.Time
	results   []BulkItemResult
	cancelled bool
}

// BulkJobView is a consistent snapshot of a job for callers
type BulkJobView struct {
	ID        string           `json:"id"`
	OwnerID   string           `json:"-"`
	Kind      string           `json:"kind"`
	Items     []BulkItem       `json:"items"`
	State     BulkJobState     `json:"state"`
	CreatedAt time.Time        `json:"createdAt"`
	Results   []BulkItemResult `json:"results"`
}

func (j *BulkJob) snapshot() BulkJobView {
	j.mu.Lock()
	defer j.mu.Unlock()

	view := BulkJobView{
		ID:        j.id,
		OwnerID:   j.ownerID,
		Kind:      j.kind,
		Items:     make([]BulkItem, len(j.items)),
		State:     j.state,
		CreatedAt: j.createdAt,
		Results:   make([]BulkItemResult, len(j.results)),
	}
	copy(view.Items, j.items)
	copy(view.Results, j.results)
	return view
}

func (j *BulkJob) transition(to BulkJobState) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := bulkJobMachine(j.state).ToState(to); err != nil {
		return err
	}
	j.state = to
	return nil
}

func (j *BulkJob) isCancelled() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.cancelled
}

// BulkResult aggregates one execution
type BulkResult struct {
	JobID     string           `json:"jobId"`
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Cancelled bool             `json:"cancelled"`
	Results   []BulkItemResult `json:"results"`
}

// Worker runs one bulk item. A returned error marks only that item failed.
type Worker func(ctx context.Context, item BulkItem, emit ProgressFn) (any, error)

// BulkEngine runs a per-item worker across a job's targets sequentially,
// isolating item failures and checking cancellation between items.
// The job registry is injected so the composition root owns its lifecycle.
type BulkEngine struct {
	jobs      *cache.Cache[string, *BulkJob]
	publisher progress.Publisher
}

func NewBulkEngine(jobs *cache.Cache[string, *BulkJob], publisher progress.Publisher) *BulkEngine {
	return &BulkEngine{
		jobs:      jobs,
		publisher: publisher,
	}
}

// Submit registers a job in pending state without starting it
func (e *BulkEngine) Submit(ownerID, kind string, items []BulkItem) string {
	job := &BulkJob{
		id:        uuid.New().String(),
		ownerID:   ownerID,
		kind:      kind,
		items:     items,
		state:     BulkJobPending,
		createdAt: time.Now(),
	}

	e.jobs.Set(job.id, job)
	return job.id
}

// Execute runs the job's items in order and returns once all finish or
// cancellation is observed. An in-flight item is allowed to finish; no
// partially executed item is rolled back.
func (e *BulkEngine) Execute(ctx context.Context, jobID string, worker Worker) (BulkResult, error) {
	log := logger.FromCtx(ctx)

	job, ok := e.jobs.Get(jobID)
	if !ok {
		return BulkResult{}, fmt.Errorf("bulk job %s: %w", jobID, ErrJobNotFound)
	}

	if err := job.transition(BulkJobRunning); err != nil {
		return BulkResult{}, err
	}

	result := BulkResult{JobID: jobID, Total: len(job.items)}

	for i, item := range job.items {
		if job.isCancelled() || ctx.Err() != nil {
			result.Cancelled = true
			break
		}

		emit := e.itemProgress(job, i, item)
		emit(ctx, 0, fmt.Sprintf("processing %s", item.Title), progress.SeverityInfo, "item_started", nil)

		itemResult := BulkItemResult{Item: item}
		value, err := worker(ctx, item, emit)
		if err != nil {
			log.Warnw("bulk item failed", "job", jobID, "item", i, "show", item.Title, "error", err)
			itemResult.Failed = true
			itemResult.Error = err.Error()
			result.Failed++
		} else {
			itemResult.Result = value
			result.Succeeded++
		}

		job.mu.Lock()
		job.results = append(job.results, itemResult)
		job.mu.Unlock()
	}

	result.Results = job.snapshot().Results

	final := BulkJobCompleted
	switch {
	case result.Cancelled:
		final = BulkJobCancelled
	case result.Failed == result.Total && result.Total > 0:
		final = BulkJobFailed
	}

	if err := job.transition(final); err != nil {
		return result, err
	}

	return result, nil
}

// Cancel requests cooperative cancellation. It returns false for unknown
// jobs and for jobs already in a terminal state.
func (e *BulkEngine) Cancel(jobID string) bool {
	job, ok := e.jobs.Get(jobID)
	if !ok {
		return false
	}

	job.mu.Lock()
	defer job.mu.Unlock()

	if bulkJobMachine(job.state).IsTerminal() {
		return false
	}

	job.cancelled = true
	if job.state == BulkJobPending {
		job.state = BulkJobCancelled
	}
	return true
}

// Status returns a snapshot of one of the owner's jobs
func (e *BulkEngine) Status(ownerID, jobID string) (BulkJobView, error) {
	job, ok := e.jobs.Get(jobID)
	if !ok || job.ownerID != ownerID {
		return BulkJobView{}, fmt.Errorf("bulk job %s: %w", jobID, ErrJobNotFound)
	}

	return job.snapshot(), nil
}

// ListForOwner returns snapshots of the owner's jobs, newest first
func (e *BulkEngine) ListForOwner(ownerID string) []BulkJobView {
	views := make([]BulkJobView, 0)
	for _, job := range e.jobs.Values() {
		if job.ownerID != ownerID {
			continue
		}
		views = append(views, job.snapshot())
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

// itemProgress stamps job and item identity onto relayed events and
// re-scales item percent into the whole job's range
func (e *BulkEngine) itemProgress(job *BulkJob, index int, item BulkItem) ProgressFn {
	total := len(job.items)
	return func(ctx context.Context, percent int, message string, severity progress.Severity, stage string, payload map[string]any) {
		if payload == nil {
			payload = make(map[string]any)
		}
		payload["jobId"] = job.id
		payload["itemIndex"] = index
		payload["itemCount"] = total

		e.publisher.Publish(ctx, progress.Event{
			Recipient: job.ownerID,
			Title:     item.Title,
			Operation: progress.OperationBulkSeasonIt,
			Message:   message,
			Percent:   (index*100 + percent) / total,
			Severity:  severity,
			Stage:     stage,
			Payload:   payload,
		})
	}
}

// SeasonWorker adapts the season engine as a bulk worker. Items with a
// season number run one season; the rest run the whole show.
func (m *SeasonManager) SeasonWorker(ownerID string) Worker {
	return func(ctx context.Context, item BulkItem, emit ProgressFn) (any, error) {
		show := ShowTarget{
			ShowID:     item.ShowID,
			Title:      item.Title,
			InstanceID: item.InstanceID,
			PosterURL:  item.PosterURL,
		}

		if item.SeasonNumber != nil {
			return m.runSeason(ctx, ownerID, show, *item.SeasonNumber, emit)
		}

		return m.runAllSeasons(ctx, ownerID, show, emit)
	}
}
