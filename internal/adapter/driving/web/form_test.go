package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/app/form", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestStoreFromRequest_Encryption(t *testing.T) {
	tests := []struct {
		name     string
		values   url.Values
		wantEnc  model.Encryption
		wantOpen bool
	}{
		{
			name:    "defaults to WPA",
			values:  url.Values{fieldSSID: {"Net"}},
			wantEnc: model.EncryptionWPA,
		},
		{
			name:    "WEP selected",
			values:  url.Values{fieldEncryption: {"WEP"}},
			wantEnc: model.EncryptionWEP,
		},
		{
			name:     "choosing None opens the network",
			values:   url.Values{fieldEncryption: {"nopass"}},
			wantEnc:  model.EncryptionNone,
			wantOpen: true,
		},
		{
			name:     "open checkbox wins over selected encryption",
			values:   url.Values{fieldOpenNetwork: {"on"}, fieldEncryption: {"WEP"}},
			wantEnc:  model.EncryptionNone,
			wantOpen: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, _, err := storeFromRequest(formRequest(tc.values))
			require.NoError(t, err)

			state := store.State()
			assert.Equal(t, tc.wantEnc, state.Encryption)
			assert.Equal(t, tc.wantOpen, state.OpenNetwork)
		})
	}
}

func TestStoreFromRequest_ReopeningSecuredNetwork(t *testing.T) {
	// A card generated for an open network; the user then unticks the box.
	values := url.Values{
		fieldSSID:      {"Guest"},
		fieldGenerated: {"1"},
		fieldGenSSID:   {"Guest"},
		fieldGenOpen:   {"1"},
		fieldQRCode:    {pngDataURL},
	}

	store, snap, err := storeFromRequest(formRequest(values))
	require.NoError(t, err)

	state := store.State()
	assert.True(t, snap.OpenNetwork)
	assert.False(t, state.OpenNetwork)
	assert.Equal(t, model.EncryptionWPA, state.Encryption)
	assert.False(t, state.HidePasswordDisabled)
	assert.True(t, state.NeedsUpdate)
	assert.True(t, state.Card.Visible)
}

func TestStoreFromRequest_UnchangedAfterGeneration(t *testing.T) {
	store, snap, err := storeFromRequest(formRequest(generatedForm()))
	require.NoError(t, err)

	state := store.State()
	assert.True(t, state.Generated)
	assert.False(t, state.NeedsUpdate)
	assert.Equal(t, pngDataURL, state.Card.QRCode)
	assert.Equal(t, snapshot{SSID: "Net", Password: "secret", Encryption: model.EncryptionWPA}, snap)
}

func TestValidQRDataURL(t *testing.T) {
	assert.True(t, validQRDataURL(pngDataURL))
	assert.False(t, validQRDataURL(""))
	assert.False(t, validQRDataURL("data:image/png;base64,"))
	assert.False(t, validQRDataURL("data:image/png;base64,not base64!"))
	assert.False(t, validQRDataURL("data:text/html;base64,cG5n"))
}
