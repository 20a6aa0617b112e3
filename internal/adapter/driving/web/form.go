package web

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	vm "github.com/ob-cheng/Guest-Pass/internal/adapter/driving/web/viewmodel"
	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

const (
	fieldSSID         = vm.FieldSSID
	fieldPassword     = vm.FieldPassword
	fieldEncryption   = vm.FieldEncryption
	fieldOpenNetwork  = vm.FieldOpenNetwork
	fieldHidePassword = vm.FieldHidePassword
	fieldTitle        = vm.FieldTitle
	fieldSubtitle     = vm.FieldSubtitle
	fieldFooter       = vm.FieldFooter
	fieldPresetName   = vm.FieldPresetName

	fieldGenerated     = vm.FieldGenerated
	fieldGenSSID       = vm.FieldGenSSID
	fieldGenPassword   = vm.FieldGenPassword
	fieldGenEncryption = vm.FieldGenEncryption
	fieldGenOpen       = vm.FieldGenOpen
	fieldQRCode        = vm.FieldQRCode
)

const qrDataURLPrefix = "data:image/png;base64,"

// snapshot is the QR-relevant part of the form at the last generation.
type snapshot struct {
	SSID        string
	Password    string
	Encryption  model.Encryption
	OpenNetwork bool
}

func snapshotOf(s application.FormState) snapshot {
	return snapshot{
		SSID:        s.SSID,
		Password:    s.Password,
		Encryption:  s.Encryption,
		OpenNetwork: s.OpenNetwork,
	}
}

// storeFromRequest rebuilds the form store from a posted form. The last
// generation, if any, is replayed first so that the posted inputs flow
// through the reducer as edits and NeedsUpdate is derived the same way as
// for live input.
func storeFromRequest(r *http.Request) (*application.FormStore, snapshot, error) {
	if err := r.ParseForm(); err != nil {
		return nil, snapshot{}, fmt.Errorf("parse form: %w", err)
	}

	store := application.NewFormStore(application.NewFormState())

	snap, ok, err := postedSnapshot(r)
	if err != nil {
		return nil, snapshot{}, err
	}
	if ok {
		store.Dispatch(credentialActions(snap)...)
		store.Dispatch(application.SubmitSucceeded{QRCode: r.PostFormValue(fieldQRCode)})
	}

	actions := []application.FormAction{
		application.SetOpenNetwork{Value: checked(r, fieldOpenNetwork)},
	}
	// The select is disabled, and so not posted, while the network is open.
	if raw, posted := r.PostForm[fieldEncryption]; posted && len(raw) > 0 {
		enc, err := model.ParseEncryption(raw[0])
		if err != nil {
			return nil, snapshot{}, err
		}
		actions = append(actions, application.SetEncryption{Value: enc})
	}
	actions = append(actions,
		application.SetSSID{Value: r.PostFormValue(fieldSSID)},
		application.SetPassword{Value: r.PostFormValue(fieldPassword)},
		application.SetHidePassword{Value: checked(r, fieldHidePassword)},
		application.SetTitle{Value: r.PostFormValue(fieldTitle)},
		application.SetSubtitle{Value: r.PostFormValue(fieldSubtitle)},
		application.SetFooter{Value: r.PostFormValue(fieldFooter)},
	)
	store.Dispatch(actions...)

	return store, snap, nil
}

// postedSnapshot reads the hidden generation fields. It reports false when
// no card has been generated yet.
func postedSnapshot(r *http.Request) (snapshot, bool, error) {
	if r.PostFormValue(fieldGenerated) != "1" {
		return snapshot{}, false, nil
	}

	qr := r.PostFormValue(fieldQRCode)
	if !validQRDataURL(qr) {
		return snapshot{}, false, fmt.Errorf("invalid %s field", fieldQRCode)
	}

	enc, err := model.ParseEncryption(r.PostFormValue(fieldGenEncryption))
	if err != nil {
		return snapshot{}, false, err
	}

	return snapshot{
		SSID:        r.PostFormValue(fieldGenSSID),
		Password:    r.PostFormValue(fieldGenPassword),
		Encryption:  enc,
		OpenNetwork: checked(r, fieldGenOpen),
	}, true, nil
}

func credentialActions(s snapshot) []application.FormAction {
	actions := []application.FormAction{application.SetOpenNetwork{Value: s.OpenNetwork}}
	if !s.OpenNetwork {
		actions = append(actions, application.SetEncryption{Value: s.Encryption})
	}
	return append(actions,
		application.SetSSID{Value: s.SSID},
		application.SetPassword{Value: s.Password},
	)
}

func validQRDataURL(s string) bool {
	data, ok := strings.CutPrefix(s, qrDataURLPrefix)
	if !ok || data == "" {
		return false
	}
	_, err := base64.StdEncoding.DecodeString(data)
	return err == nil
}

func checked(r *http.Request, field string) bool {
	v := r.PostFormValue(field)
	return v == "on" || v == "1" || v == "true"
}
