package domain

import (
	"time"

	"github.com/google/uuid"
)

// CheckResult is the uniform outcome of a single health check. Results are
// immutable once produced and carry everything the monitoring pipeline needs:
// a status code, a human-readable message and a name identifying the check
// instance (per-folder checks embed the folder name).
type CheckResult struct {
	Status    Status `json:"status"`
	Message   string `json:"message"`
	CheckName string `json:"check_name"`
}

// Report is the envelope for one check pass. Results are independently
// produced and share one schema; the envelope only adds run identity.
type Report struct {
	RunID     uuid.UUID     `json:"run_id"`
	Node      string        `json:"node"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Results   []CheckResult `json:"results"`
}

// Overall reduces the report to a single status, worst case wins.
func (r Report) Overall() Status {
	overall := StatusOK
	for _, res := range r.Results {
		overall = overall.Worse(res.Status)
	}
	return overall
}
