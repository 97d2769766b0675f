package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chartpull/portal-extractor/constants"
)

func TestTransitionTable(t *testing.T) {
	cases := []struct {
		name   string
		event  constants.JobEvent
		status constants.JobStatus
		legal  bool
	}{
		{"browser launch from initial", constants.EventBrowserLaunched, constants.JobStatusPendingLogin, true},
		{"browser launch twice", constants.EventBrowserLaunched, constants.JobStatusLaunchingBrowser, false},
		{"login prompt after launch", constants.EventLoginPromptDetected, constants.JobStatusLaunchingBrowser, true},
		{"login prompt from initial", constants.EventLoginPromptDetected, constants.JobStatusPendingLogin, false},
		{"stored session skips confirmation", constants.EventExtractionStarted, constants.JobStatusLaunchingBrowser, true},
		{"extraction start while awaiting user", constants.EventExtractionStarted, constants.JobStatusAwaitingUser, false},
		{"user confirms login", constants.EventUserConfirmed, constants.JobStatusAwaitingUser, true},
		{"user confirms too early", constants.EventUserConfirmed, constants.JobStatusLaunchingBrowser, false},
		{"completion while extracting", constants.EventExtractionCompleted, constants.JobStatusExtracting, true},
		{"completion while awaiting user", constants.EventExtractionCompleted, constants.JobStatusAwaitingUser, false},
		{"failure from initial", constants.EventExtractionFailed, constants.JobStatusPendingLogin, true},
		{"failure while awaiting user", constants.EventExtractionFailed, constants.JobStatusAwaitingUser, true},
		{"failure after completion", constants.EventExtractionFailed, constants.JobStatusCompleted, false},
		{"cancel while extracting", constants.EventCancelled, constants.JobStatusExtracting, true},
		{"cancel after failure", constants.EventCancelled, constants.JobStatusFailed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.legal, LegalFrom(tc.event, tc.status))
		})
	}
}

func TestTerminalStatusesAcceptNothing(t *testing.T) {
	terminals := []constants.JobStatus{
		constants.JobStatusCompleted,
		constants.JobStatusFailed,
		constants.JobStatusCancelled,
	}
	events := []constants.JobEvent{
		constants.EventBrowserLaunched,
		constants.EventLoginPromptDetected,
		constants.EventUserConfirmed,
		constants.EventExtractionStarted,
		constants.EventExtractionCompleted,
		constants.EventExtractionFailed,
		constants.EventCancelled,
	}
	for _, status := range terminals {
		assert.True(t, status.IsTerminal())
		for _, ev := range events {
			assert.False(t, LegalFrom(ev, status), "event %s must be rejected from %s", ev, status)
		}
	}
}

func TestEveryStatusIsReachable(t *testing.T) {
	reachable := map[constants.JobStatus]bool{
		constants.JobStatusPendingLogin: true, // initial
	}
	for _, tr := range transitions {
		reachable[tr.to] = true
	}
	for _, s := range constants.JobStatuses {
		assert.True(t, reachable[constants.JobStatus(s)], "status %s is unreachable", s)
	}
}
