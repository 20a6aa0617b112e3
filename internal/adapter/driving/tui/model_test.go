package tui

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

type fakeRenderer struct {
	payload string
	textErr error
}

func (f *fakeRenderer) PNG(_ context.Context, payload string) ([]byte, error) {
	f.payload = payload
	return []byte("png"), nil
}

func (f *fakeRenderer) Text(payload string) (string, error) {
	if f.textErr != nil {
		return "", f.textErr
	}
	return "QR<" + payload + ">", nil
}

func newTestModel(t *testing.T, renderer *fakeRenderer) (Model, *application.FormStore) {
	t.Helper()
	store := application.NewFormStore(application.NewFormState())
	passSvc := application.NewPassService(renderer, slog.Default())
	m := NewModel(context.Background(), store, passSvc, renderer)
	t.Cleanup(m.Close)
	return m, store
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func typeText(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_TypingUpdatesStore(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	m, _ = send(t, m, typeText("Net"))

	assert.Equal(t, "Net", store.State().SSID)
	assert.Equal(t, "Net", m.state.SSID)
}

func TestModel_FocusMovesThroughInputs(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, typeText("secret"))
	assert.Equal(t, "secret", store.State().Password)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, typeText("Hello"))
	assert.Equal(t, "Hello", store.State().Text.Title)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldSSID, m.focus)
}

func TestModel_OpenNetworkClearsPassword(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, typeText("secret"))
	require.Equal(t, fieldPassword, m.focus)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})

	state := store.State()
	assert.True(t, state.OpenNetwork)
	assert.Equal(t, model.EncryptionNone, state.Encryption)
	assert.Empty(t, state.Password)
	assert.Empty(t, m.inputs[fieldPassword].Value())
	assert.Equal(t, fieldSSID, m.focus, "focus leaves the hidden password input")

	// The password input is skipped while hidden.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldTitle, m.focus)
}

func TestModel_HidePasswordIgnoredWhileOpen(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.True(t, store.State().HidePassword)

	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO}, tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.False(t, store.State().HidePassword)
	assert.True(t, store.State().HidePasswordDisabled)
}

func TestModel_EncryptionCycle(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})
	ctrlT := tea.KeyMsg{Type: tea.KeyCtrlT}

	m, _ = send(t, m, ctrlT)
	assert.Equal(t, model.EncryptionWEP, store.State().Encryption)

	m, _ = send(t, m, ctrlT)
	assert.Equal(t, model.EncryptionNone, store.State().Encryption)
	assert.True(t, store.State().OpenNetwork)

	_, _ = send(t, m, ctrlT)
	assert.Equal(t, model.EncryptionWPA, store.State().Encryption)
	assert.False(t, store.State().OpenNetwork)
}

func TestModel_Generate(t *testing.T) {
	renderer := &fakeRenderer{}
	m, store := newTestModel(t, renderer)

	m, _ = send(t, m, typeText("Cafe"), tea.KeyMsg{Type: tea.KeyTab}, typeText("pw"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd(), stateMsg{})

	assert.Equal(t, "WIFI:T:WPA;S:Cafe;P:pw;;", renderer.payload)
	assert.True(t, store.State().Card.Visible)
	assert.Equal(t, "QR<WIFI:T:WPA;S:Cafe;P:pw;;>", m.qr)

	view := m.View()
	assert.Contains(t, view, "QR<WIFI:T:WPA;S:Cafe;P:pw;;>")
	assert.Contains(t, view, model.DefaultCardTitle)
	assert.Contains(t, view, "Password:")

	// Editing a QR input afterwards asks for an update.
	m, _ = send(t, m, typeText("2"))
	assert.True(t, store.State().NeedsUpdate)
	assert.Contains(t, m.View(), "Update QR Code")
}

func TestModel_FailedResubmitKeepsCard(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	m, _ = send(t, m, typeText("Net"), tea.KeyMsg{Type: tea.KeyTab}, typeText("pw"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, cmd())
	require.Equal(t, "QR<WIFI:T:WPA;S:Net;P:pw;;>", m.qr)

	backspace := tea.KeyMsg{Type: tea.KeyBackspace}
	m, _ = send(t, m, backspace, backspace)
	require.Empty(t, store.State().Password)

	m, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, cmd())

	state := store.State()
	assert.True(t, state.Card.Visible)
	assert.Equal(t, application.MsgFormPasswordRequired, state.Error)

	view := m.View()
	assert.Contains(t, view, "QR<WIFI:T:WPA;S:Net;P:pw;;>")
	assert.Contains(t, view, "Network:")
	assert.Contains(t, view, application.MsgFormPasswordRequired)
}

func TestModel_CardFollowsExternalSubmit(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	store.Dispatch(application.SubmitSucceeded{QRCode: "data:image/png;base64,eA==", Payload: "WIFI:T:nopass;S:Lobby;;"})
	m, _ = send(t, m, waitForState(m.updates)())

	assert.Equal(t, "QR<WIFI:T:nopass;S:Lobby;;>", m.qr)
	assert.Contains(t, m.View(), "QR<WIFI:T:nopass;S:Lobby;;>")
}

func TestModel_GenerateValidationError(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	m, _ = send(t, m, typeText("Cafe"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, cmd(), stateMsg{})

	assert.Equal(t, application.MsgFormPasswordRequired, store.State().Error)
	assert.False(t, store.State().Card.Visible)
	assert.Empty(t, m.qr)
	assert.Contains(t, m.View(), application.MsgFormPasswordRequired)
}

func TestModel_TextRenderFailure(t *testing.T) {
	m, _ := newTestModel(t, &fakeRenderer{textErr: errors.New("too big")})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO}, typeText("Guest"))
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = send(t, m, cmd())

	assert.Equal(t, application.MsgGenerationFailed, m.qrErr)
}

func TestModel_SubscriptionSignalsChanges(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})

	store.Dispatch(application.SetSSID{Value: "External"})

	msg := waitForState(m.updates)()
	m, _ = send(t, m, msg)
	assert.Equal(t, "External", m.inputs[fieldSSID].Value())
}

func TestModel_CloseUnsubscribes(t *testing.T) {
	m, store := newTestModel(t, &fakeRenderer{})
	m.Close()

	store.Dispatch(application.SetSSID{Value: "x"})

	select {
	case <-m.updates:
		t.Fatal("unexpected update after Close")
	default:
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, &fakeRenderer{})

	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
