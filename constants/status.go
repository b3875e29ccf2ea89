package constants

// RunStatus is the canonical status for an extraction run.
type RunStatus string

// Stable values (store these exact strings in the run store).
const (
	RunStatusRunning RunStatus = "RUNNING" // in progress
	RunStatusOK      RunStatus = "OK"      // rows extracted and transformed
	RunStatusNoData  RunStatus = "NO_DATA" // document matched zero rows
	RunStatusFailed  RunStatus = "FAILED"  // terminal failure (unreadable source)
)
