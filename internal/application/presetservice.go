package application

import (
	"context"
	"strings"
	"time"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

const maxPresetNameLength = 64

// PresetService manages named card label presets. It depends only on the
// PresetStore port.
type PresetService struct {
	store driven.PresetStore
}

// NewPresetService creates a new PresetService with the required dependencies.
func NewPresetService(store driven.PresetStore) *PresetService {
	return &PresetService{store: store}
}

// Save stores text under name. The name is trimmed; an empty or overlong name
// is a *ValidationError. Returns driven.ErrPresetAlreadyExists if the name is taken.
func (s *PresetService) Save(ctx context.Context, name string, text model.CardText) (model.CardPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.CardPreset{}, &ValidationError{Field: "name", Message: "preset name is required"}
	}
	if len(name) > maxPresetNameLength {
		return model.CardPreset{}, &ValidationError{Field: "name", Message: "preset name is too long"}
	}

	return s.store.Add(ctx, model.CardPreset{
		Name:      name,
		Text:      text,
		UpdatedAt: time.Now().UTC(),
	})
}

// Get returns the preset called name, or (nil, nil) if none exists.
func (s *PresetService) Get(ctx context.Context, name string) (*model.CardPreset, error) {
	return s.store.GetByName(ctx, strings.TrimSpace(name))
}

// List returns all presets ordered by name.
func (s *PresetService) List(ctx context.Context) ([]model.CardPreset, error) {
	return s.store.ListAll(ctx)
}

// Delete removes the preset called name.
func (s *PresetService) Delete(ctx context.Context, name string) error {
	return s.store.Remove(ctx, strings.TrimSpace(name))
}
