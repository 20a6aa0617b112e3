// Package web implements the HTML GUI driving adapter using templ components.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ob-cheng/Guest-Pass/internal/adapter/driving/web/templates"
	"github.com/ob-cheng/Guest-Pass/internal/adapter/driving/web/templates/pages"
	vm "github.com/ob-cheng/Guest-Pass/internal/adapter/driving/web/viewmodel"
	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

const (
	pageTitle        = "Guest Pass"
	downloadFilename = "guest-pass.png"
)

// Handler is the web GUI driving adapter that serves HTML via templ components.
// Every request rebuilds the form state from the posted fields and renders
// the page from it.
type Handler struct {
	passSvc   *application.PassService
	presetSvc *application.PresetService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. presetSvc may
// be nil, which hides preset support.
func NewHandler(
	passSvc *application.PassService,
	presetSvc *application.PresetService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		passSvc:   passSvc,
		presetSvc: presetSvc,
		logger:    logger,
	}
}

// Page renders the empty form. ?preset=<name> pre-fills the card labels.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	store := application.NewFormStore(application.NewFormState())

	var notice string
	if name := r.URL.Query().Get("preset"); name != "" && h.presetSvc != nil {
		preset, err := h.presetSvc.Get(r.Context(), name)
		switch {
		case err != nil:
			h.logger.Error("failed to load preset", "name", name, "error", err)
		case preset == nil:
			notice = fmt.Sprintf("Preset %q not found", name)
		default:
			store.Dispatch(
				application.SetTitle{Value: preset.Text.Title},
				application.SetSubtitle{Value: preset.Text.Subtitle},
				application.SetFooter{Value: preset.Text.Footer},
			)
		}
	}

	h.render(w, r, http.StatusOK, store.State(), snapshot{}, notice)
}

// Form re-renders the page after a field or checkbox change without
// generating a QR code.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	store, snap, err := storeFromRequest(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	h.render(w, r, http.StatusOK, store.State(), snap, "")
}

// Generate submits the form and renders the card, or the form error.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	store, snap, err := storeFromRequest(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	status := http.StatusOK
	if _, err := h.passSvc.SubmitForm(r.Context(), store); err != nil {
		status = statusForError(err)
	} else {
		snap = snapshotOf(store.State())
	}

	h.render(w, r, status, store.State(), snap, "")
}

// Download generates the QR code from the posted form and returns it as a PNG
// attachment. On failure the page is rendered with the error.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	store, snap, err := storeFromRequest(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	pass, err := h.passSvc.GenerateForm(r.Context(), store.State())
	if err != nil {
		state := store.Dispatch(application.SubmitFailed{Message: application.UserMessage(err)})
		h.render(w, r, statusForError(err), state, snap, "")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFilename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pass.PNG); err != nil {
		h.logger.Error("failed to write qr download", "error", err)
	}
}

// SavePreset stores the current card labels under the posted preset name and
// re-renders the page with the form intact.
func (h *Handler) SavePreset(w http.ResponseWriter, r *http.Request) {
	store, snap, err := storeFromRequest(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if h.presetSvc == nil {
		h.render(w, r, http.StatusServiceUnavailable, store.State(), snap, "Presets are not available")
		return
	}

	name := r.PostFormValue(fieldPresetName)
	status := http.StatusOK
	var notice string

	saved, err := h.presetSvc.Save(r.Context(), name, store.State().Text)
	var verr *application.ValidationError
	switch {
	case err == nil:
		notice = fmt.Sprintf("Saved preset %q", saved.Name)
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
		notice = verr.Message
	case errors.Is(err, driven.ErrPresetAlreadyExists):
		status = http.StatusConflict
		notice = fmt.Sprintf("A preset named %q already exists", name)
	default:
		h.logger.Error("failed to save preset", "name", name, "error", err)
		status = http.StatusInternalServerError
		notice = "Could not save preset"
	}

	h.render(w, r, status, store.State(), snap, notice)
}

func (h *Handler) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	state application.FormState,
	snap snapshot,
	notice string,
) {
	page := vm.PageViewModel{
		CSRFToken: csrfToken(w, r),
		Notice:    notice,
		Form:      toFormViewModel(state, snap),
		Card:      toCardViewModel(state),
		Presets:   h.presetViewModels(r.Context(), r.URL.Query().Get("preset")),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	layout := templates.Layout(pageTitle, pages.GuestPass(page))
	if err := layout.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "error", err)
	}
}

func (h *Handler) presetViewModels(ctx context.Context, selected string) []vm.PresetViewModel {
	if h.presetSvc == nil {
		return nil
	}

	presets, err := h.presetSvc.List(ctx)
	if err != nil {
		h.logger.Error("failed to list presets", "error", err)
		return nil
	}

	return toPresetViewModels(presets, selected)
}

func statusForError(err error) int {
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
