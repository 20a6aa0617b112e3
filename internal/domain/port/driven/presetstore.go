// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"
	"errors"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

// Sentinel errors returned by PresetStore implementations.
var (
	// ErrPresetNotFound indicates the requested card preset does not exist.
	ErrPresetNotFound = errors.New("card preset not found")

	// ErrPresetAlreadyExists indicates a preset with the same name already exists.
	ErrPresetAlreadyExists = errors.New("card preset already exists")
)

// PresetStore defines the driven port for named card label presets.
// Add returns ErrPresetAlreadyExists if the name is taken.
// Remove returns ErrPresetNotFound if the name does not exist.
// GetByName returns (nil, nil) if no preset has that name.
type PresetStore interface {
	Add(ctx context.Context, preset model.CardPreset) (model.CardPreset, error)
	Remove(ctx context.Context, name string) error
	GetByName(ctx context.Context, name string) (*model.CardPreset, error)
	// ListAll returns every preset ordered alphabetically by name.
	ListAll(ctx context.Context) ([]model.CardPreset, error)
}
