package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

func reduceAll(s FormState, actions ...FormAction) FormState {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

func TestNewFormState(t *testing.T) {
	s := NewFormState()

	assert.Equal(t, model.EncryptionWPA, s.Encryption)
	assert.False(t, s.OpenNetwork)
	assert.False(t, s.HidePasswordDisabled)
	assert.True(t, s.PasswordFieldVisible())
	assert.True(t, s.PasswordSectionVisible())
	assert.False(t, s.Card.Visible)
}

func TestReduce_OpenNetworkOn(t *testing.T) {
	s := reduceAll(NewFormState(),
		SetPassword{Value: "secret"},
		SetHidePassword{Value: true},
		SetOpenNetwork{Value: true},
	)

	assert.Equal(t, model.EncryptionNone, s.Encryption)
	assert.Empty(t, s.Password)
	assert.False(t, s.PasswordFieldVisible())
	assert.True(t, s.HidePasswordDisabled)
	assert.False(t, s.HidePassword)
	assert.False(t, s.PasswordSectionVisible())
}

func TestReduce_OpenNetworkOnThenOff(t *testing.T) {
	s := reduceAll(NewFormState(),
		SetEncryption{Value: model.EncryptionWEP},
		SetOpenNetwork{Value: true},
		SetOpenNetwork{Value: false},
	)

	assert.Equal(t, model.EncryptionWPA, s.Encryption)
	assert.False(t, s.HidePasswordDisabled)
	assert.True(t, s.PasswordFieldVisible())
	assert.True(t, s.PasswordSectionVisible())

	s = Reduce(s, SetHidePassword{Value: true})
	assert.True(t, s.HidePassword)
}

func TestReduce_HidePasswordIgnoredWhileDisabled(t *testing.T) {
	s := reduceAll(NewFormState(), SetOpenNetwork{Value: true}, SetHidePassword{Value: true})

	assert.False(t, s.HidePassword)
}

func TestReduce_PasswordIgnoredWhileOpen(t *testing.T) {
	s := reduceAll(NewFormState(), SetOpenNetwork{Value: true}, SetPassword{Value: "typed"})

	assert.Empty(t, s.Password)
}

func TestReduce_EncryptionNopassOpensNetwork(t *testing.T) {
	s := Reduce(NewFormState(), SetEncryption{Value: model.EncryptionNone})

	assert.True(t, s.OpenNetwork)
	assert.True(t, s.HidePasswordDisabled)
}

func TestReduce_PasswordSectionVisibility(t *testing.T) {
	tests := []struct {
		name         string
		openNetwork  bool
		hidePassword bool
		want         bool
	}{
		{name: "secured and shown", want: true},
		{name: "hide password", hidePassword: true, want: false},
		{name: "open network", openNetwork: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := reduceAll(NewFormState(),
				SetHidePassword{Value: tt.hidePassword},
				SetOpenNetwork{Value: tt.openNetwork},
			)
			assert.Equal(t, tt.want, s.PasswordSectionVisible())
		})
	}
}

func TestReduce_LabelsFallBackToDefaults(t *testing.T) {
	s := NewFormState()
	assert.Equal(t, model.CardText{
		Title:    model.DefaultCardTitle,
		Subtitle: model.DefaultCardSubtitle,
		Footer:   model.DefaultCardFooter,
	}, s.Labels())

	s = reduceAll(s, SetTitle{Value: "Welcome"}, SetFooter{Value: "Enjoy"})
	assert.Equal(t, "Welcome", s.Labels().Title)
	assert.Equal(t, model.DefaultCardSubtitle, s.Labels().Subtitle)
	assert.Equal(t, "Enjoy", s.Labels().Footer)

	s = Reduce(s, SetTitle{Value: ""})
	assert.Equal(t, model.DefaultCardTitle, s.Labels().Title)
}

func TestReduce_LabelsDoNotMarkNeedsUpdate(t *testing.T) {
	s := reduceAll(NewFormState(),
		SetSSID{Value: "Home"},
		SetPassword{Value: "pw"},
		SubmitSucceeded{QRCode: "data:image/png;base64,AA=="},
		SetTitle{Value: "New title"},
		SetHidePassword{Value: true},
	)

	assert.False(t, s.NeedsUpdate)
}

func TestReduce_NeedsUpdate(t *testing.T) {
	tests := []struct {
		name   string
		action FormAction
	}{
		{name: "ssid", action: SetSSID{Value: "Other"}},
		{name: "password", action: SetPassword{Value: "changed"}},
		{name: "encryption", action: SetEncryption{Value: model.EncryptionWEP}},
		{name: "open network", action: SetOpenNetwork{Value: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Reduce(NewFormState(), tt.action)
			assert.False(t, before.NeedsUpdate, "edits before the first generation are clean")

			s := reduceAll(NewFormState(),
				SetSSID{Value: "Home"},
				SetPassword{Value: "pw"},
				SubmitSucceeded{QRCode: "qr"},
			)
			assert.False(t, s.NeedsUpdate)

			s = Reduce(s, tt.action)
			assert.True(t, s.NeedsUpdate)

			s = Reduce(s, SubmitSucceeded{QRCode: "qr2"})
			assert.False(t, s.NeedsUpdate)
		})
	}
}

func TestReduce_SubmitSucceeded(t *testing.T) {
	s := reduceAll(NewFormState(),
		SetSSID{Value: "Home"},
		SetPassword{Value: "pw"},
		SubmitFailed{Message: "boom"},
		SubmitSucceeded{QRCode: "qr", Payload: "WIFI:T:WPA;S:Home;P:pw;;"},
	)

	assert.True(t, s.Generated)
	assert.Empty(t, s.Error)
	assert.Equal(t, CardDisplay{
		Visible:  true,
		QRCode:   "qr",
		Payload:  "WIFI:T:WPA;S:Home;P:pw;;",
		SSID:     "Home",
		Password: "pw",
	}, s.Card)
}

func TestReduce_SubmitFailedKeepsCard(t *testing.T) {
	s := reduceAll(NewFormState(),
		SetSSID{Value: "Home"},
		SetPassword{Value: "pw"},
		SubmitSucceeded{QRCode: "qr"},
		SubmitFailed{Message: MsgGenerationFailed},
	)

	assert.Equal(t, MsgGenerationFailed, s.Error)
	assert.True(t, s.Card.Visible)
	assert.Equal(t, "qr", s.Card.QRCode)
}

func TestFormStore_DispatchNotifiesSubscribers(t *testing.T) {
	store := NewFormStore(NewFormState())

	var seen []FormState
	unsubscribe := store.Subscribe(func(s FormState) { seen = append(seen, s) })

	store.Dispatch(SetSSID{Value: "Home"}, SetOpenNetwork{Value: true})
	assert.Len(t, seen, 1)
	assert.Equal(t, "Home", seen[0].SSID)
	assert.True(t, seen[0].OpenNetwork)

	unsubscribe()
	store.Dispatch(SetSSID{Value: "Other"})
	assert.Len(t, seen, 1)
	assert.Equal(t, "Other", store.State().SSID)
}

func TestFormStore_SubscribersRunInOrder(t *testing.T) {
	store := NewFormStore(NewFormState())

	var order []string
	store.Subscribe(func(FormState) { order = append(order, "first") })
	store.Subscribe(func(FormState) { order = append(order, "second") })

	store.Dispatch(SetTitle{Value: "x"})
	assert.Equal(t, []string{"first", "second"}, order)
}
