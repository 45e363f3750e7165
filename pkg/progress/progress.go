package progress

import (
	"context"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

const (
	OperationSeasonIt          = "season_it"
	OperationBulkSeasonIt      = "bulk_season_it"
	OperationInteractiveSearch = "interactive_search"
)

// StageCleared marks the event that tells a client to drop any progress it is showing
const StageCleared = "cleared"

// Event is one progress update for one recipient.
// Percent is non-decreasing within a logical run except that a terminal
// error or cancellation may jump straight to 100; severity is the completion
// signal, not percent alone.
type Event struct {
	Recipient string         `json:"-"`
	Title     string         `json:"title"`
	Operation string         `json:"operation"`
	Message   string         `json:"message"`
	Percent   int            `json:"percent"`
	Severity  Severity       `json:"severity"`
	Stage     string         `json:"stage,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Publisher delivers events to whatever transport is listening.
// Delivery is fire and forget from the caller's perspective.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// ClearEvent builds the distinct event that resets a recipient's progress display
func ClearEvent(recipient, title string) Event {
	return Event{
		Recipient: recipient,
		Title:     title,
		Operation: OperationInteractiveSearch,
		Message:   "search cancelled",
		Percent:   100,
		Severity:  SeverityWarning,
		Stage:     StageCleared,
	}
}
