package constants

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPendingLogin     JobStatus = "PENDING_LOGIN"              // created, automation not yet started
	JobStatusLaunchingBrowser JobStatus = "LAUNCHING_BROWSER"          // automation script picked up the job
	JobStatusAwaitingUser     JobStatus = "AWAITING_USER_CONFIRMATION" // login challenge needs a human
	JobStatusExtracting       JobStatus = "EXTRACTING"                 // data extraction in progress
	JobStatusCompleted        JobStatus = "COMPLETED"                  // terminal success
	JobStatusFailed           JobStatus = "FAILED"                     // terminal failure
	JobStatusCancelled        JobStatus = "CANCELLED"                  // terminal, caller-requested stop
)

// JobStatuses lists every valid status, for schema validation.
var JobStatuses = []string{
	string(JobStatusPendingLogin),
	string(JobStatusLaunchingBrowser),
	string(JobStatusAwaitingUser),
	string(JobStatusExtracting),
	string(JobStatusCompleted),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// IsTerminal reports whether a job in this status accepts further events.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}
