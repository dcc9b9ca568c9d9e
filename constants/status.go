package constants

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // waiting in the parse queue
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusParseOK JobStatus = "PARSE_OK" // receipt extracted and persisted
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)
