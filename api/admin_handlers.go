package api

import (
	"errors"
	"net/http"

	predictionservice "github.com/matchday-club/predictor/app/modules/prediction/application"
	predictionqueue "github.com/matchday-club/predictor/app/modules/prediction/infrastructure/queue"
	simulatorservice "github.com/matchday-club/predictor/app/modules/simulator/application"
)

// AdminHandlers exposes the operational endpoints: on-demand sweeps and the
// live score simulator.
type AdminHandlers struct {
	predictions predictionservice.Service
	queue       predictionqueue.QueueService
	simulator   *simulatorservice.Simulator
}

// NewAdminHandlers creates a new AdminHandlers instance. queue and simulator
// may be nil when those components are disabled in config.
func NewAdminHandlers(
	predictions predictionservice.Service,
	queue predictionqueue.QueueService,
	simulator *simulatorservice.Simulator,
) *AdminHandlers {
	return &AdminHandlers{
		predictions: predictions,
		queue:       queue,
		simulator:   simulator,
	}
}

type recalculateResponse struct {
	Updated int `json:"updated"`
}

// Recalculate runs a synchronous sweep and reports how many point values
// changed. Prefer EnqueueSweep when the queue is running; this endpoint exists
// for setups without River and for debugging.
func (h *AdminHandlers) Recalculate(w http.ResponseWriter, r *http.Request) {
	updated, err := h.predictions.Recalculate(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recalculateResponse{Updated: updated})
}

// EnqueueSweep schedules a background sweep.
func (h *AdminHandlers) EnqueueSweep(w http.ResponseWriter, r *http.Request) {
	if h.queue == nil {
		writeError(w, http.StatusServiceUnavailable, "job queue is not running")
		return
	}
	if err := h.queue.EnqueueSweep(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

// ListSweepJobs returns recent sweep jobs.
func (h *AdminHandlers) ListSweepJobs(w http.ResponseWriter, r *http.Request) {
	if h.queue == nil {
		writeError(w, http.StatusServiceUnavailable, "job queue is not running")
		return
	}
	jobs, err := h.queue.GetSweepJobs(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if jobs == nil {
		jobs = []predictionqueue.JobInfo{}
	}
	writeJSON(w, http.StatusOK, jobs)
}

// StartSimulator launches the live score simulator.
func (h *AdminHandlers) StartSimulator(w http.ResponseWriter, r *http.Request) {
	if h.simulator == nil {
		writeError(w, http.StatusServiceUnavailable, "simulator is disabled")
		return
	}
	if err := h.simulator.Start(r.Context()); err != nil {
		if errors.Is(err, simulatorservice.ErrAlreadyRunning) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.simulator.Status())
}

// StopSimulator halts the live score simulator.
func (h *AdminHandlers) StopSimulator(w http.ResponseWriter, r *http.Request) {
	if h.simulator == nil {
		writeError(w, http.StatusServiceUnavailable, "simulator is disabled")
		return
	}
	h.simulator.Stop()
	writeJSON(w, http.StatusOK, h.simulator.Status())
}

// SimulatorStatus reports the simulator's state.
func (h *AdminHandlers) SimulatorStatus(w http.ResponseWriter, r *http.Request) {
	if h.simulator == nil {
		writeError(w, http.StatusServiceUnavailable, "simulator is disabled")
		return
	}
	writeJSON(w, http.StatusOK, h.simulator.Status())
}
