// Package jobs owns the extraction job lifecycle. All status mutations go
// through Service; nothing else writes job status or error fields.
package jobs

import (
	"encoding/json"

	"github.com/chartpull/portal-extractor/constants"
)

// Event is one lifecycle signal delivered to Advance. Payload is only read
// for extraction_completed; Message only for extraction_failed and cancelled.
type Event struct {
	Name    constants.JobEvent
	Payload json.RawMessage
	Message string
}

func BrowserLaunched() Event {
	return Event{Name: constants.EventBrowserLaunched}
}

func LoginPromptDetected() Event {
	return Event{Name: constants.EventLoginPromptDetected}
}

func UserConfirmed() Event {
	return Event{Name: constants.EventUserConfirmed}
}

func ExtractionStarted() Event {
	return Event{Name: constants.EventExtractionStarted}
}

func ExtractionCompleted(payload json.RawMessage) Event {
	return Event{Name: constants.EventExtractionCompleted, Payload: payload}
}

func ExtractionFailed(message string) Event {
	return Event{Name: constants.EventExtractionFailed, Message: message}
}

func Cancelled(reason string) Event {
	return Event{Name: constants.EventCancelled, Message: reason}
}

type transition struct {
	from []constants.JobStatus
	to   constants.JobStatus
}

// nonTerminal lists every status a failure or cancellation may leave from.
var nonTerminal = []constants.JobStatus{
	constants.JobStatusPendingLogin,
	constants.JobStatusLaunchingBrowser,
	constants.JobStatusAwaitingUser,
	constants.JobStatusExtracting,
}

// transitions is the full lifecycle table. extraction_started fires directly
// from LAUNCHING_BROWSER when a stored portal session skips the login
// challenge; otherwise the run passes through AWAITING_USER_CONFIRMATION,
// which blocks until user_confirmed arrives. There is no timeout here; a
// watchdog can lay one on top by firing extraction_failed.
var transitions = map[constants.JobEvent]transition{
	constants.EventBrowserLaunched: {
		from: []constants.JobStatus{constants.JobStatusPendingLogin},
		to:   constants.JobStatusLaunchingBrowser,
	},
	constants.EventLoginPromptDetected: {
		from: []constants.JobStatus{constants.JobStatusLaunchingBrowser},
		to:   constants.JobStatusAwaitingUser,
	},
	constants.EventExtractionStarted: {
		from: []constants.JobStatus{constants.JobStatusLaunchingBrowser},
		to:   constants.JobStatusExtracting,
	},
	constants.EventUserConfirmed: {
		from: []constants.JobStatus{constants.JobStatusAwaitingUser},
		to:   constants.JobStatusExtracting,
	},
	constants.EventExtractionCompleted: {
		from: []constants.JobStatus{constants.JobStatusExtracting},
		to:   constants.JobStatusCompleted,
	},
	constants.EventExtractionFailed: {
		from: nonTerminal,
		to:   constants.JobStatusFailed,
	},
	constants.EventCancelled: {
		from: nonTerminal,
		to:   constants.JobStatusCancelled,
	},
}

// LegalFrom reports whether the event may fire from the given status.
func LegalFrom(ev constants.JobEvent, status constants.JobStatus) bool {
	t, ok := transitions[ev]
	if !ok {
		return false
	}
	for _, s := range t.from {
		if s == status {
			return true
		}
	}
	return false
}
