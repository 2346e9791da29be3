package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"viralengine-backend/internal/models"
	"viralengine-backend/internal/orchestrator"
	"viralengine-backend/internal/store"
)

type JobHandler struct {
	orchestrator *orchestrator.Orchestrator
	store        *store.JobStore
	renderDir    string
}

func NewJobHandler(orch *orchestrator.Orchestrator, jobStore *store.JobStore, renderDir string) *JobHandler {
	return &JobHandler{
		orchestrator: orch,
		store:        jobStore,
		renderDir:    renderDir,
	}
}

// Generate starts a new generation job.
func (h *JobHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Topic is required", r))
		return
	}

	job, err := h.orchestrator.CreateJob(req.Topic, req.AutoPost)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"generation_id": job.ID,
		"status":        "running",
		"language":      job.Language,
	})
}

// Proceed applies the reviewed timeline and resumes the job.
func (h *JobHandler) Proceed(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.ProceedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	err := h.orchestrator.Proceed(id, req.Timeline)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Generation not found", r))
		return
	case errors.Is(err, store.ErrInvalidState):
		writeJSON(w, http.StatusConflict, errorResp("INVALID_STATE", "Generation is not awaiting review", r))
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"generation_id": id,
		"status":        "running",
	})
}

// Status returns the current state of one job.
func (h *JobHandler) Status(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, err := h.store.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Generation not found", r))
		return
	}
	writeJSON(w, http.StatusOK, statusResponse(job))
}

// LatestStatus returns the most recently started job.
func (h *JobHandler) LatestStatus(w http.ResponseWriter, r *http.Request) {
	job, err := h.store.Latest()
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No generations yet", r))
		return
	}
	writeJSON(w, http.StatusOK, statusResponse(job))
}

// List returns all jobs, most recent first.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs := h.store.List()
	out := make([]models.StatusResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, statusResponse(job))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"generations": out})
}

// Delete removes a job from the registry.
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(id); err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Generation not found", r))
		return
	}
	h.store.Save()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Generation deleted"})
}

// Results returns the last five completed results.
func (h *JobHandler) Results(w http.ResponseWriter, r *http.Request) {
	jobs := h.store.List()
	results := make([]*models.GenerationResult, 0, 5)
	for _, job := range jobs {
		if job.Status == models.StatusCompleted && job.Result != nil {
			results = append(results, job.Result)
			if len(results) == 5 {
				break
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// Health is a liveness probe.
func (h *JobHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeVideo streams a rendered video from the render directory. The
// filename is flattened to its base to keep requests inside the directory.
func (h *JobHandler) ServeVideo(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	clean := filepath.Base(filename)
	if clean == "." || clean == ".." || clean != filename {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid filename", r))
		return
	}
	http.ServeFile(w, r, filepath.Join(h.renderDir, clean))
}

func statusResponse(job models.Job) models.StatusResponse {
	resp := models.StatusResponse{
		ID:       job.ID,
		Topic:    job.Topic,
		Language: job.Language,
		Status:   job.Status,
		Progress: job.Progress,
		Phase:    job.Phase,
		Error:    job.Error,
		Result:   job.Result,
	}
	// Script payload is only surfaced while the job waits for review.
	if job.Status == models.StatusScriptReady {
		resp.ScriptData = job.ScriptData
	}
	return resp
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
