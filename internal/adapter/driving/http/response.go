package httphandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// GenerateRequest is the JSON body for the generate endpoint. Encryption
// defaults to WPA and Hidden to false when omitted.
type GenerateRequest struct {
	SSID       string `json:"ssid"`
	Password   string `json:"password,omitempty"`
	Encryption string `json:"encryption,omitempty"`
	Hidden     bool   `json:"hidden,omitempty"`
}

// GenerateResponse carries the rendered QR code as a data URL.
type GenerateResponse struct {
	QRCode string `json:"qrCode"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// AddPresetRequest is the JSON body for the add preset endpoint.
type AddPresetRequest struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Footer   string `json:"footer"`
}

// PresetResponse is the JSON representation of a card preset.
type PresetResponse struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Footer    string `json:"footer"`
	UpdatedAt string `json:"updated_at"`
}

// toPresetResponse converts a domain CardPreset to its JSON representation.
func toPresetResponse(p model.CardPreset) PresetResponse {
	return PresetResponse{
		Name:      p.Name,
		Title:     p.Text.Title,
		Subtitle:  p.Text.Subtitle,
		Footer:    p.Text.Footer,
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
