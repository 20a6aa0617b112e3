package httphandler

import (
	"errors"
	"net/http"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

// ListPresets returns all saved card presets.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	if !h.presetsAvailable(w) {
		return
	}

	presets, err := h.presetSvc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list presets", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]PresetResponse, 0, len(presets))
	for _, p := range presets {
		resp = append(resp, toPresetResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// AddPreset saves a new named set of card labels.
func (h *Handler) AddPreset(w http.ResponseWriter, r *http.Request) {
	if !h.presetsAvailable(w) {
		return
	}

	var req AddPresetRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.presetSvc.Save(r.Context(), req.Name, model.CardText{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Footer:   req.Footer,
	})
	if err != nil {
		var verr *application.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, driven.ErrPresetAlreadyExists):
			writeError(w, http.StatusConflict, "preset already exists")
		default:
			h.logger.Error("failed to add preset", "name", req.Name, "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toPresetResponse(saved))
}

// RemovePreset deletes a preset by name.
func (h *Handler) RemovePreset(w http.ResponseWriter, r *http.Request) {
	if !h.presetsAvailable(w) {
		return
	}

	name := r.PathValue("name")

	if err := h.presetSvc.Delete(r.Context(), name); err != nil {
		if errors.Is(err, driven.ErrPresetNotFound) {
			writeError(w, http.StatusNotFound, "preset not found")
			return
		}
		h.logger.Error("failed to remove preset", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) presetsAvailable(w http.ResponseWriter) bool {
	if h.presetSvc == nil {
		writeError(w, http.StatusServiceUnavailable, "presets are not configured")
		return false
	}
	return true
}
