package eventio

import "time"

// RunSuccessStatus is the print cloud's confirmation that a finished run
// actually succeeded.
const RunSuccessStatus = "SUCCESS"

// PrintRunSuccess is the vendor's post-run confirmation record.
type PrintRunSuccess struct {
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PrintJob is a single vendor-recorded print run. StartedAt and FinishedAt
// may be absent for jobs that never ran or are still running.
type PrintJob struct {
	GUID       string           `json:"guid"`
	Name       string           `json:"name"`
	Material   string           `json:"material"`
	VolumeMl   float64          `json:"volume_ml"`
	StartedAt  *time.Time       `json:"print_started_at,omitempty"`
	FinishedAt *time.Time       `json:"print_finished_at,omitempty"`
	RunSuccess *PrintRunSuccess `json:"print_run_success,omitempty"`
	Status     string           `json:"status"`
}

// EffectiveEnd resolves the instant the job finished: the finish timestamp
// when present, otherwise the success-confirmation timestamp when the run
// is explicitly marked successful. Jobs without a resolvable effective end
// are treated as in-progress and are never matched or billed.
func (j *PrintJob) EffectiveEnd() (time.Time, bool) {
	if j.FinishedAt != nil {
		return *j.FinishedAt, true
	}
	if j.RunSuccess != nil && j.RunSuccess.Status == RunSuccessStatus {
		return j.RunSuccess.CreatedAt, true
	}
	return time.Time{}, false
}

// Finished reports whether the job has both a start and a resolvable
// effective end, making it eligible for window matching.
func (j *PrintJob) Finished() bool {
	if j.StartedAt == nil {
		return false
	}
	_, ok := j.EffectiveEnd()
	return ok
}
