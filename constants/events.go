package constants

// JobEvent names a lifecycle event reported by an automation run or a caller.
type JobEvent string

// Stable values (these exact strings cross the wire).
const (
	EventBrowserLaunched     JobEvent = "browser_launched"
	EventLoginPromptDetected JobEvent = "login_prompt_detected"
	EventUserConfirmed       JobEvent = "user_confirmed"
	EventExtractionStarted   JobEvent = "extraction_started"
	EventExtractionCompleted JobEvent = "extraction_completed"
	EventExtractionFailed    JobEvent = "extraction_failed"
	EventCancelled           JobEvent = "cancelled"
)
