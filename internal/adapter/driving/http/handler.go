package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 16 << 10

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	passSvc   *application.PassService
	presetSvc *application.PresetService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies. presetSvc may
// be nil, in which case the preset endpoints answer 503.
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

// RegisterAPIRoutes registers all JSON API routes on the provided mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /generate", h.Generate)
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/presets", h.ListPresets)
	mux.HandleFunc("POST /api/v1/presets", h.AddPreset)
	mux.HandleFunc("DELETE /api/v1/presets/{name}", h.RemovePreset)
}

// NewServeMux creates an http.Handler with the API routes registered and
// wrapped with logging and recovery middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, logger)
}

// Generate encodes the Wi-Fi credentials in the request body and returns the
// QR code as a PNG data URL.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cred, err := req.toCredential()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pass, err := h.passSvc.Generate(r.Context(), cred)
	if err != nil {
		var verr *application.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		h.logger.Error("qr generation error", "error", err)
		writeError(w, http.StatusInternalServerError, application.MsgGenerationFailed)
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{QRCode: pass.DataURL()})
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	return json.NewDecoder(r.Body).Decode(v)
}

// toCredential converts the request into a domain credential. An empty SSID
// or an unknown encryption token is rejected before any encoding happens.
func (req GenerateRequest) toCredential() (model.WifiCredential, error) {
	if req.SSID == "" {
		return model.WifiCredential{}, errors.New("ssid is required")
	}

	enc, err := model.ParseEncryption(req.Encryption)
	if err != nil {
		return model.WifiCredential{}, err
	}

	return model.WifiCredential{
		SSID:       req.SSID,
		Password:   req.Password,
		Encryption: enc,
		Hidden:     req.Hidden,
	}, nil
}
