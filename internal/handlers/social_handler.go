package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"viralengine-backend/internal/models"
	"viralengine-backend/internal/services"
	"viralengine-backend/internal/store"
)

type SocialHandler struct {
	social      *services.SocialService
	store       *store.JobStore
	redirectURI string
}

func NewSocialHandler(social *services.SocialService, jobStore *store.JobStore, redirectURI string) *SocialHandler {
	return &SocialHandler{
		social:      social,
		store:       jobStore,
		redirectURI: redirectURI,
	}
}

// Connect returns the platform's OAuth URL with a signed state.
func (h *SocialHandler) Connect(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	authURL, err := h.social.ConnectURL(platform, h.redirectURI)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("UNKNOWN_PLATFORM", "Unsupported platform", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"auth_url": authURL})
}

// Callback completes the OAuth exchange.
func (h *SocialHandler) Callback(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing authorization code", r))
		return
	}

	err := h.social.HandleCallback(r.Context(), platform, code, state)
	switch {
	case errors.Is(err, services.ErrUnknownPlatform):
		writeJSON(w, http.StatusNotFound, errorResp("UNKNOWN_PLATFORM", "Unsupported platform", r))
		return
	case errors.Is(err, services.ErrBadState):
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_STATE", "OAuth state verification failed", r))
		return
	case err != nil:
		writeJSON(w, http.StatusBadGateway, errorResp("EXCHANGE_FAILED", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"platform": platform, "status": "connected"})
}

// Status lists the connection state of each platform.
func (h *SocialHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"platforms": h.social.Status()})
}

// Disconnect drops the stored token for a platform.
func (h *SocialHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	if err := h.social.Disconnect(platform); err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("UNKNOWN_PLATFORM", "Unsupported platform", r))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"platform": platform, "status": "disconnected"})
}

// Publish posts a completed job's video to a connected platform.
func (h *SocialHandler) Publish(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	id := chi.URLParam(r, "id")

	job, err := h.store.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Generation not found", r))
		return
	}
	if job.Status != models.StatusCompleted || job.Result == nil || job.Result.VideoPath == "" {
		writeJSON(w, http.StatusConflict, errorResp("INVALID_STATE", "Generation has no published video", r))
		return
	}

	caption := job.Topic
	if len(job.Result.Captions) > 0 {
		caption = job.Result.Captions[0]
	}

	err = h.social.Publish(r.Context(), platform, job.Result.VideoPath, caption)
	switch {
	case errors.Is(err, services.ErrNotConnected):
		writeJSON(w, http.StatusConflict, errorResp("NOT_CONNECTED", "Platform is not connected", r))
		return
	case err != nil:
		writeJSON(w, http.StatusBadGateway, errorResp("PUBLISH_FAILED", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"platform": platform, "status": "published"})
}
