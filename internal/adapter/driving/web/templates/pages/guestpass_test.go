package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vm "github.com/ob-cheng/Guest-Pass/internal/adapter/driving/web/viewmodel"
)

func render(t *testing.T, page vm.PageViewModel) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, GuestPass(page).Render(context.Background(), &b))
	return b.String()
}

func TestGuestPass_EmptyForm(t *testing.T) {
	body := render(t, vm.PageViewModel{
		CSRFToken: "tok",
		Form: vm.FormViewModel{
			PasswordFieldVisible: true,
			SubmitLabel:          "Generate Guest Pass",
			EncryptionOptions: []vm.OptionViewModel{
				{Value: "WPA", Label: "WPA/WPA2", Selected: true},
				{Value: "WEP", Label: "WEP"},
			},
		},
	})

	assert.Contains(t, body, `<input type="hidden" name="csrf_token" value="tok">`)
	assert.NotContains(t, body, `name="generated"`)
	assert.Contains(t, body, `<option value="WPA" selected>WPA/WPA2</option>`)
	assert.Contains(t, body, `<div id="password-container" class="collapsible">`)
	assert.Contains(t, body, `<section id="guest-card-container" class="card-container hidden">`)
	assert.NotContains(t, body, `id="qr-image"`)
}

func TestGuestPass_GeneratedCard(t *testing.T) {
	body := render(t, vm.PageViewModel{
		Form: vm.FormViewModel{
			SSID:                "Cafe <5G>",
			Generated:           true,
			GeneratedSSID:       "Cafe <5G>",
			GeneratedEncryption: "WPA",
			GeneratedOpen:       true,
			QRCode:              "data:image/png;base64,cG5n",
			NeedsUpdate:         true,
			SubmitLabel:         "Update QR Code",
		},
		Card: vm.CardViewModel{
			Visible:    true,
			QRCode:     "data:image/png;base64,cG5n",
			SSID:       "Cafe <5G>",
			Title:      "Welcome",
			FooterHTML: "<em>Enjoy</em>",
		},
		Presets: []vm.PresetViewModel{{Name: "Lobby", ApplyPath: "/?preset=Lobby", Selected: true}},
	})

	assert.Contains(t, body, `value="Cafe &lt;5G&gt;"`)
	assert.Contains(t, body, `<input type="hidden" name="gen_open" value="1">`)
	assert.Contains(t, body, `class="btn-primary btn-update-needed"><span>Update QR Code</span>`)
	assert.Contains(t, body, `<img id="qr-image" alt="Wi-Fi QR code" src="data:image/png;base64,cG5n">`)
	assert.Contains(t, body, `<dd id="display-ssid">Cafe &lt;5G&gt;</dd>`)
	assert.Contains(t, body, `<div id="password-section" class="credential collapsed"><dt>Password</dt><dd id="display-password"></dd>`)
	assert.Contains(t, body, `<p id="display-footer" class="footer"><em>Enjoy</em></p>`)
	assert.Contains(t, body, `<a href="/?preset=Lobby" class="preset selected">Lobby</a>`)
}
