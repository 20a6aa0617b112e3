package application

import (
	"sync"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

// CardDisplay is what the result card shows after the last successful submission.
type CardDisplay struct {
	Visible  bool
	QRCode   string // data URL of the rendered QR image
	Payload  string
	SSID     string
	Password string
}

// FormState is the view-model behind the guest pass form. It holds the raw
// inputs, the two checkbox drivers and the derived flags that the rendering
// layers read. It is only ever changed through Reduce.
type FormState struct {
	SSID         string
	Password     string
	Encryption   model.Encryption
	OpenNetwork  bool
	HidePassword bool
	Text         model.CardText

	HidePasswordDisabled bool
	Generated            bool // a card has been generated at least once
	NeedsUpdate          bool // QR inputs changed since the last generation
	Card                 CardDisplay
	Error                string
}

// NewFormState returns the initial form: secured WPA network, nothing entered.
func NewFormState() FormState {
	return FormState{Encryption: model.DefaultEncryption}
}

// PasswordFieldVisible reports whether the password input is shown.
func (s FormState) PasswordFieldVisible() bool {
	return !s.OpenNetwork
}

// PasswordSectionVisible reports whether the card shows the password line.
func (s FormState) PasswordSectionVisible() bool {
	return !s.OpenNetwork && !s.HidePassword
}

// Labels returns the card labels with fallbacks applied. Labels follow the
// inputs immediately, independent of submission.
func (s FormState) Labels() model.CardText {
	return s.Text.WithDefaults()
}

// Credential builds the credential the form would submit.
func (s FormState) Credential() model.WifiCredential {
	return model.WifiCredential{
		SSID:       s.SSID,
		Password:   s.Password,
		Encryption: s.Encryption,
	}
}

// FormAction is an input event applied by Reduce.
type FormAction interface {
	formAction()
}

type (
	SetSSID         struct{ Value string }
	SetPassword     struct{ Value string }
	SetEncryption   struct{ Value model.Encryption }
	SetOpenNetwork  struct{ Value bool }
	SetHidePassword struct{ Value bool }
	SetTitle        struct{ Value string }
	SetSubtitle     struct{ Value string }
	SetFooter       struct{ Value string }

	// SubmitSucceeded records a generated QR code and reveals the card.
	SubmitSucceeded struct {
		QRCode  string
		Payload string
	}

	// SubmitFailed records the single user-visible error of a failed submission.
	SubmitFailed struct{ Message string }
)

func (SetSSID) formAction()         {}
func (SetPassword) formAction()     {}
func (SetEncryption) formAction()   {}
func (SetOpenNetwork) formAction()  {}
func (SetHidePassword) formAction() {}
func (SetTitle) formAction()        {}
func (SetSubtitle) formAction()     {}
func (SetFooter) formAction()       {}
func (SubmitSucceeded) formAction() {}
func (SubmitFailed) formAction()    {}

// Reduce applies action to s and returns the new state. It has no side effects.
func Reduce(s FormState, action FormAction) FormState {
	switch a := action.(type) {
	case SetSSID:
		if a.Value != s.SSID {
			s.SSID = a.Value
			s = markQRInputChanged(s)
		}

	case SetPassword:
		// The password input is hidden and cleared on open networks.
		if s.OpenNetwork || a.Value == s.Password {
			return s
		}
		s.Password = a.Value
		s = markQRInputChanged(s)

	case SetEncryption:
		if a.Value.IsOpen() {
			return Reduce(s, SetOpenNetwork{Value: true})
		}
		if s.OpenNetwork || a.Value == s.Encryption {
			return s
		}
		s.Encryption = a.Value
		s = markQRInputChanged(s)

	case SetOpenNetwork:
		if a.Value == s.OpenNetwork {
			return s
		}
		s.OpenNetwork = a.Value
		if a.Value {
			s.Encryption = model.EncryptionNone
			s.Password = ""
			s.HidePassword = false
			s.HidePasswordDisabled = true
		} else {
			s.Encryption = model.EncryptionWPA
			s.HidePasswordDisabled = false
		}
		s = markQRInputChanged(s)

	case SetHidePassword:
		if !s.HidePasswordDisabled {
			s.HidePassword = a.Value
		}

	case SetTitle:
		s.Text.Title = a.Value

	case SetSubtitle:
		s.Text.Subtitle = a.Value

	case SetFooter:
		s.Text.Footer = a.Value

	case SubmitSucceeded:
		s.Card = CardDisplay{
			Visible: true,
			QRCode:  a.QRCode,
			Payload: a.Payload,
			SSID:    s.SSID,
		}
		if !s.OpenNetwork {
			s.Card.Password = s.Password
		}
		s.Generated = true
		s.NeedsUpdate = false
		s.Error = ""

	case SubmitFailed:
		s.Error = a.Message
	}

	return s
}

func markQRInputChanged(s FormState) FormState {
	if s.Generated {
		s.NeedsUpdate = true
	}
	return s
}

// FormStore owns a FormState and notifies subscribers after every dispatch.
type FormStore struct {
	mu     sync.Mutex
	state  FormState
	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn func(FormState)
}

// NewFormStore creates a store holding initial.
func NewFormStore(initial FormState) *FormStore {
	return &FormStore{state: initial}
}

// State returns the current state.
func (s *FormStore) State() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces each action in order and then notifies subscribers once
// with the resulting state.
func (s *FormStore) Dispatch(actions ...FormAction) FormState {
	s.mu.Lock()
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
	state := s.state
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(state)
	}

	return state
}

// Subscribe registers fn to be called after each Dispatch. The returned
// function removes the subscription.
func (s *FormStore) Subscribe(fn func(FormState)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
