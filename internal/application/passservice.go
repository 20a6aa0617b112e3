package application

import (
	"context"
	"encoding/base64"
	"log/slog"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

const pngDataURLPrefix = "data:image/png;base64,"

// GuestPass is the result of one successful generation.
type GuestPass struct {
	Payload string
	PNG     []byte
}

// DataURL returns the QR image as a data URL suitable for an <img> src.
func (p GuestPass) DataURL() string {
	return pngDataURLPrefix + base64.StdEncoding.EncodeToString(p.PNG)
}

// PassService validates credentials, encodes the Wi-Fi payload and renders it
// through the QR renderer port.
type PassService struct {
	renderer driven.QRRenderer
	logger   *slog.Logger
}

// NewPassService creates a new PassService with the required dependencies.
func NewPassService(renderer driven.QRRenderer, logger *slog.Logger) *PassService {
	return &PassService{
		renderer: renderer,
		logger:   logger,
	}
}

// Generate builds a guest pass with the JSON API encoding rules. It returns a
// *ValidationError when a secured network has no password and a
// *GenerationError when rendering fails.
func (s *PassService) Generate(ctx context.Context, cred model.WifiCredential) (GuestPass, error) {
	if err := ValidateCredential(cred, MsgPasswordRequired); err != nil {
		return GuestPass{}, err
	}

	return s.render(ctx, EncodePayload(cred))
}

// GenerateForm builds a guest pass from the form state with the card form
// encoding rules. It does not change the state; see SubmitForm.
func (s *PassService) GenerateForm(ctx context.Context, state FormState) (GuestPass, error) {
	cred := state.Credential()
	if cred.SSID == "" {
		return GuestPass{}, &ValidationError{Field: "ssid", Message: MsgSSIDRequired}
	}
	if err := ValidateCredential(cred, MsgFormPasswordRequired); err != nil {
		return GuestPass{}, err
	}

	return s.render(ctx, EncodeFormPayload(cred, state.OpenNetwork))
}

// SubmitForm runs one form submission against store: it generates the pass
// from the current state and dispatches SubmitSucceeded or SubmitFailed.
// Validation messages are shown verbatim; rendering failures are logged and
// replaced by a generic message.
func (s *PassService) SubmitForm(ctx context.Context, store *FormStore) (GuestPass, error) {
	pass, err := s.GenerateForm(ctx, store.State())
	if err != nil {
		store.Dispatch(SubmitFailed{Message: UserMessage(err)})
		return GuestPass{}, err
	}

	store.Dispatch(SubmitSucceeded{QRCode: pass.DataURL(), Payload: pass.Payload})
	return pass, nil
}

func (s *PassService) render(ctx context.Context, payload string) (GuestPass, error) {
	png, err := s.renderer.PNG(ctx, payload)
	if err != nil {
		s.logger.Error("qr generation failed", "error", err)
		return GuestPass{}, &GenerationError{Op: "render qr code", Err: err}
	}

	return GuestPass{Payload: payload, PNG: png}, nil
}
