package web

import (
	"net/url"

	vm "github.com/ob-cheng/Guest-Pass/internal/adapter/driving/web/viewmodel"
	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

const (
	submitLabelGenerate = "Generate Guest Pass"
	submitLabelUpdate   = "Update QR Code"
)

var encryptionOptions = []struct {
	value model.Encryption
	label string
}{
	{model.EncryptionWPA, "WPA/WPA2/WPA3"},
	{model.EncryptionWEP, "WEP"},
	{model.EncryptionNone, "None"},
}

// toFormViewModel converts the form state into its input view model. snap is
// the state at the last successful generation and is only read when
// s.Generated is set.
func toFormViewModel(s application.FormState, snap snapshot) vm.FormViewModel {
	form := vm.FormViewModel{
		SSID:                 s.SSID,
		Password:             s.Password,
		Encryption:           string(s.Encryption),
		OpenNetwork:          s.OpenNetwork,
		HidePassword:         s.HidePassword,
		HidePasswordDisabled: s.HidePasswordDisabled,
		PasswordFieldVisible: s.PasswordFieldVisible(),
		Title:                s.Text.Title,
		Subtitle:             s.Text.Subtitle,
		Footer:               s.Text.Footer,
		Error:                s.Error,
		SubmitLabel:          submitLabelGenerate,
		NeedsUpdate:          s.NeedsUpdate,
		Generated:            s.Generated,
	}

	if s.NeedsUpdate {
		form.SubmitLabel = submitLabelUpdate
	}

	for _, opt := range encryptionOptions {
		form.EncryptionOptions = append(form.EncryptionOptions, vm.OptionViewModel{
			Value:    string(opt.value),
			Label:    opt.label,
			Selected: opt.value == s.Encryption,
		})
	}

	if s.Generated {
		form.GeneratedSSID = snap.SSID
		form.GeneratedPassword = snap.Password
		form.GeneratedEncryption = string(snap.Encryption)
		form.GeneratedOpen = snap.OpenNetwork
		form.QRCode = s.Card.QRCode
	}

	return form
}

// toCardViewModel converts the form state into the card view model. Labels
// follow the inputs immediately; the QR code and credentials shown are those
// of the last successful generation.
func toCardViewModel(s application.FormState) vm.CardViewModel {
	labels := s.Labels()

	return vm.CardViewModel{
		Visible:         s.Card.Visible,
		QRCode:          s.Card.QRCode,
		SSID:            s.Card.SSID,
		Password:        s.Card.Password,
		PasswordVisible: s.PasswordSectionVisible() && s.Card.Password != "",
		Title:           labels.Title,
		Subtitle:        labels.Subtitle,
		FooterHTML:      RenderFooter(labels.Footer),
	}
}

// toPresetViewModels converts presets to the page's preset list, marking the
// one currently applied.
func toPresetViewModels(presets []model.CardPreset, selected string) []vm.PresetViewModel {
	out := make([]vm.PresetViewModel, 0, len(presets))
	for _, p := range presets {
		out = append(out, vm.PresetViewModel{
			Name:      p.Name,
			ApplyPath: "/?preset=" + url.QueryEscape(p.Name),
			Selected:  p.Name == selected,
		})
	}
	return out
}
