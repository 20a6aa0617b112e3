package application_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

// mockRenderer implements driven.QRRenderer and records the payloads it saw.
type mockRenderer struct {
	payloads []string
	err      error
}

func (m *mockRenderer) PNG(_ context.Context, payload string) ([]byte, error) {
	m.payloads = append(m.payloads, payload)
	if m.err != nil {
		return nil, m.err
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

func TestPassService_Generate(t *testing.T) {
	renderer := &mockRenderer{}
	svc := application.NewPassService(renderer, slog.Default())

	pass, err := svc.Generate(context.Background(), model.WifiCredential{
		SSID:       "Net",
		Password:   "abc",
		Encryption: model.EncryptionWEP,
		Hidden:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WEP;S:Net;P:abc;H:true;;", pass.Payload)
	assert.Equal(t, []string{"WIFI:T:WEP;S:Net;P:abc;H:true;;"}, renderer.payloads)
	assert.True(t, strings.HasPrefix(pass.DataURL(), "data:image/png;base64,"))
}

func TestPassService_Generate_MissingPassword(t *testing.T) {
	renderer := &mockRenderer{}
	svc := application.NewPassService(renderer, slog.Default())

	_, err := svc.Generate(context.Background(), model.WifiCredential{SSID: "Net", Encryption: model.EncryptionWPA})

	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, application.MsgPasswordRequired, verr.Message)
	assert.Empty(t, renderer.payloads, "no QR is generated on validation failure")
}

func TestPassService_Generate_RenderFailure(t *testing.T) {
	cause := errors.New("encoder exploded")
	svc := application.NewPassService(&mockRenderer{err: cause}, slog.Default())

	_, err := svc.Generate(context.Background(), model.WifiCredential{SSID: "Guest", Encryption: model.EncryptionNone})

	var gerr *application.GenerationError
	require.ErrorAs(t, err, &gerr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, application.MsgGenerationFailed, application.UserMessage(err))
}

func TestPassService_SubmitForm(t *testing.T) {
	renderer := &mockRenderer{}
	svc := application.NewPassService(renderer, slog.Default())
	store := application.NewFormStore(application.NewFormState())
	store.Dispatch(
		application.SetSSID{Value: "Caf;e"},
		application.SetPassword{Value: `p:a\ss`},
	)

	pass, err := svc.SubmitForm(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, `WIFI:T:WPA;S:Caf\;e;P:p\:a\\ss;;`, pass.Payload)

	state := store.State()
	assert.True(t, state.Card.Visible)
	assert.Equal(t, pass.DataURL(), state.Card.QRCode)
	assert.Equal(t, "Caf;e", state.Card.SSID)
	assert.True(t, state.Generated)
}

func TestPassService_SubmitForm_OpenNetwork(t *testing.T) {
	renderer := &mockRenderer{}
	svc := application.NewPassService(renderer, slog.Default())
	store := application.NewFormStore(application.NewFormState())
	store.Dispatch(
		application.SetSSID{Value: "Guest"},
		application.SetOpenNetwork{Value: true},
	)

	pass, err := svc.SubmitForm(context.Background(), store)

	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:nopass;S:Guest;;", pass.Payload)
	assert.NotContains(t, pass.Payload, "P:")
}

func TestPassService_SubmitForm_ValidationError(t *testing.T) {
	renderer := &mockRenderer{}
	svc := application.NewPassService(renderer, slog.Default())
	store := application.NewFormStore(application.NewFormState())
	store.Dispatch(application.SetSSID{Value: "Home"})

	_, err := svc.SubmitForm(context.Background(), store)

	require.Error(t, err)
	state := store.State()
	assert.Equal(t, application.MsgFormPasswordRequired, state.Error)
	assert.False(t, state.Card.Visible)
	assert.False(t, state.Generated)
	assert.Empty(t, renderer.payloads)
}

func TestPassService_SubmitForm_MissingSSID(t *testing.T) {
	svc := application.NewPassService(&mockRenderer{}, slog.Default())
	store := application.NewFormStore(application.NewFormState())
	store.Dispatch(application.SetOpenNetwork{Value: true})

	_, err := svc.SubmitForm(context.Background(), store)

	var verr *application.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ssid", verr.Field)
	assert.Equal(t, application.MsgSSIDRequired, store.State().Error)
}

func TestPassService_SubmitForm_RenderFailure(t *testing.T) {
	svc := application.NewPassService(&mockRenderer{err: errors.New("nope")}, slog.Default())
	store := application.NewFormStore(application.NewFormState())
	store.Dispatch(application.SetSSID{Value: "Home"}, application.SetPassword{Value: "pw"})

	_, err := svc.SubmitForm(context.Background(), store)

	require.Error(t, err)
	assert.Equal(t, application.MsgGenerationFailed, store.State().Error)
}
