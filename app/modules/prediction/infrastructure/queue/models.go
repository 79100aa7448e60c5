package predictionqueue

// RecalculateJob triggers a full recalculation sweep. It carries no arguments:
// the sweep always covers every finished match, which is what makes repeated
// runs harmless.
type RecalculateJob struct{}

// Kind returns the job type identifier for River.
func (RecalculateJob) Kind() string { return "points_recalculate" }

// JobInfo describes a queued or finished sweep job for the admin endpoint.
type JobInfo struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	State       string `json:"state"`
	ScheduledAt string `json:"scheduled_at"`
	CreatedAt   string `json:"created_at"`
	Attempt     int    `json:"attempt"`
	MaxAttempts int    `json:"max_attempts"`
}
