package models

import "time"

// ExecutionResult is the synthetic payload returned by the execution stub.
// It lives only inside a single request/response cycle.
type ExecutionResult struct {
	Summary    string    `json:"summary"`
	Output     string    `json:"output"`
	TraceID    string    `json:"traceId"`
	FinishedAt time.Time `json:"finishedAt"`
}
