package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

// mockPresetStore is an in-memory driven.PresetStore.
type mockPresetStore struct {
	presets map[string]model.CardPreset
}

func newMockPresetStore() *mockPresetStore {
	return &mockPresetStore{presets: map[string]model.CardPreset{}}
}

func (m *mockPresetStore) Add(_ context.Context, p model.CardPreset) (model.CardPreset, error) {
	if _, ok := m.presets[p.Name]; ok {
		return model.CardPreset{}, driven.ErrPresetAlreadyExists
	}
	p.ID = int64(len(m.presets) + 1)
	m.presets[p.Name] = p
	return p, nil
}

func (m *mockPresetStore) Remove(_ context.Context, name string) error {
	if _, ok := m.presets[name]; !ok {
		return driven.ErrPresetNotFound
	}
	delete(m.presets, name)
	return nil
}

func (m *mockPresetStore) GetByName(_ context.Context, name string) (*model.CardPreset, error) {
	p, ok := m.presets[name]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockPresetStore) ListAll(_ context.Context) ([]model.CardPreset, error) {
	out := make([]model.CardPreset, 0, len(m.presets))
	for _, p := range m.presets {
		out = append(out, p)
	}
	return out, nil
}

func TestPresetService_SaveTrimsName(t *testing.T) {
	svc := application.NewPresetService(newMockPresetStore())

	saved, err := svc.Save(context.Background(), "  Lobby  ", model.CardText{Title: "Welcome"})

	require.NoError(t, err)
	assert.Equal(t, "Lobby", saved.Name)
	assert.Equal(t, "Welcome", saved.Text.Title)
	assert.False(t, saved.UpdatedAt.IsZero())

	got, err := svc.Get(context.Background(), "Lobby")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Welcome", got.Text.Title)
}

func TestPresetService_SaveRejectsBadNames(t *testing.T) {
	svc := application.NewPresetService(newMockPresetStore())

	for _, name := range []string{"", "   ", string(make([]byte, 65))} {
		_, err := svc.Save(context.Background(), name, model.CardText{})

		var verr *application.ValidationError
		require.ErrorAs(t, err, &verr, "name %q", name)
		assert.Equal(t, "name", verr.Field)
	}
}

func TestPresetService_SaveDuplicate(t *testing.T) {
	svc := application.NewPresetService(newMockPresetStore())

	_, err := svc.Save(context.Background(), "Lobby", model.CardText{})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), "Lobby", model.CardText{})
	assert.ErrorIs(t, err, driven.ErrPresetAlreadyExists)
}

func TestPresetService_Delete(t *testing.T) {
	svc := application.NewPresetService(newMockPresetStore())

	_, err := svc.Save(context.Background(), "Lobby", model.CardText{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "Lobby"))
	assert.ErrorIs(t, svc.Delete(context.Background(), "Lobby"), driven.ErrPresetNotFound)
}
