package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ob-cheng/Guest-Pass/internal/application"
	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
	"github.com/ob-cheng/Guest-Pass/internal/domain/port/driven"
)

// field identifies one text input of the form, in focus order.
type field int

const (
	fieldSSID field = iota
	fieldPassword
	fieldTitle
	fieldSubtitle
	fieldFooter
	fieldCount
)

// stateMsg signals that the form store changed.
type stateMsg struct{}

// generatedMsg carries the result of a submission.
type generatedMsg struct {
	err error
}

// encryptionCycle is the order ctrl+t walks through.
var encryptionCycle = []model.Encryption{
	model.EncryptionWPA,
	model.EncryptionWEP,
	model.EncryptionNone,
}

// Model is the bubbletea model of the guest pass form. All form changes go
// through the shared FormStore; the model re-renders from the store whenever
// its subscription fires.
type Model struct {
	ctx         context.Context
	store       *application.FormStore
	passSvc     *application.PassService
	qrText      driven.QRTextRenderer
	updates     chan struct{}
	unsubscribe func()

	state  application.FormState
	inputs [fieldCount]textinput.Model
	focus  field

	// qr is the terminal rendering of state.Card.Payload.
	qr        string
	qrPayload string
	qrErr     string

	keys  keyMap
	help  help.Model
	width int
}

// NewModel creates a form model bound to store. Call Close when the program
// exits to drop the store subscription.
func NewModel(
	ctx context.Context,
	store *application.FormStore,
	passSvc *application.PassService,
	qrText driven.QRTextRenderer,
) Model {
	m := Model{
		ctx:     ctx,
		store:   store,
		passSvc: passSvc,
		qrText:  qrText,
		updates: make(chan struct{}, 1),
		state:   store.State(),
		keys:    newKeyMap(),
		help:    help.New(),
	}

	placeholders := [fieldCount]string{
		fieldSSID:     "MyNetwork",
		fieldPassword: "Enter password",
		fieldTitle:    model.DefaultCardTitle,
		fieldSubtitle: model.DefaultCardSubtitle,
		fieldFooter:   model.DefaultCardFooter,
	}
	for f := range fieldCount {
		in := textinput.New()
		in.Placeholder = placeholders[f]
		in.CharLimit = 128
		in.Width = 40
		in.SetValue(valueOf(m.state, f))
		m.inputs[f] = in
	}
	m.inputs[fieldPassword].CharLimit = 63
	m.inputs[fieldSSID].CharLimit = 32
	m.inputs[fieldSSID].Focus()

	updates := m.updates
	m.unsubscribe = store.Subscribe(func(application.FormState) {
		select {
		case updates <- struct{}{}:
		default: // a refresh is already pending
		}
	})

	return m
}

// Close removes the store subscription.
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForState(m.updates))
}

func waitForState(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-updates
		return stateMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case stateMsg:
		m.syncFromStore()
		return m, waitForState(m.updates)

	case generatedMsg:
		m.syncFromStore()
		if msg.err != nil {
			var verr *application.ValidationError
			var gerr *application.GenerationError
			if !errors.As(msg.err, &verr) && !errors.As(msg.err, &gerr) {
				m.qrErr = application.MsgGenerationFailed
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.store.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		cmd := m.moveFocus(1)
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd := m.moveFocus(-1)
		return m, cmd

	case key.Matches(msg, m.keys.ToggleOpen):
		m.store.Dispatch(application.SetOpenNetwork{Value: !current.OpenNetwork})
		m.syncFromStore()
		return m, nil

	case key.Matches(msg, m.keys.ToggleHide):
		m.store.Dispatch(application.SetHidePassword{Value: !current.HidePassword})
		m.syncFromStore()
		return m, nil

	case key.Matches(msg, m.keys.NextEncryption):
		m.store.Dispatch(nextEncryption(current))
		m.syncFromStore()
		return m, nil

	case key.Matches(msg, m.keys.Generate):
		return m, m.generate()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if v := m.inputs[m.focus].Value(); v != valueOf(current, m.focus) {
		m.store.Dispatch(setterFor(m.focus, v))
	}
	m.syncFromStore()
	return m, cmd
}

// nextEncryption returns the action that advances the security setting.
// Leaving the open setting goes back to WPA.
func nextEncryption(s application.FormState) application.FormAction {
	if s.OpenNetwork {
		return application.SetOpenNetwork{Value: false}
	}
	for i, enc := range encryptionCycle {
		if enc == s.Encryption {
			return application.SetEncryption{Value: encryptionCycle[(i+1)%len(encryptionCycle)]}
		}
	}
	return application.SetEncryption{Value: model.DefaultEncryption}
}

// moveFocus focuses the next visible input in direction dir.
func (m *Model) moveFocus(dir int) tea.Cmd {
	m.inputs[m.focus].Blur()

	next := m.focus
	for range fieldCount {
		next = (next + field(dir) + fieldCount) % fieldCount
		if next != fieldPassword || m.store.State().PasswordFieldVisible() {
			break
		}
	}

	m.focus = next
	return m.inputs[m.focus].Focus()
}

// syncFromStore copies the latest store state into the model. Inputs are only
// rewritten where the reducer disagrees with them, e.g. the password cleared
// by switching to an open network.
func (m *Model) syncFromStore() {
	m.state = m.store.State()

	for f := range fieldCount {
		if want := valueOf(m.state, f); m.inputs[f].Value() != want {
			m.inputs[f].SetValue(want)
		}
	}

	if m.focus == fieldPassword && !m.state.PasswordFieldVisible() {
		m.inputs[fieldPassword].Blur()
		m.focus = fieldSSID
		m.inputs[fieldSSID].Focus()
	}

	m.syncQR()
}

// syncQR re-renders the terminal QR code when the card payload changes. A
// failed submission leaves the payload, and so the drawn code, untouched.
func (m *Model) syncQR() {
	payload := m.state.Card.Payload
	if payload == m.qrPayload {
		return
	}
	m.qrPayload = payload
	m.qr, m.qrErr = "", ""
	if payload == "" {
		return
	}

	qr, err := m.qrText.Text(payload)
	if err != nil {
		m.qrErr = application.MsgGenerationFailed
		return
	}
	m.qr = qr
}

// generate submits the form through the pass service. The card itself is
// drawn from the store once the result arrives.
func (m Model) generate() tea.Cmd {
	ctx, store, passSvc := m.ctx, m.store, m.passSvc
	return func() tea.Msg {
		_, err := passSvc.SubmitForm(ctx, store)
		return generatedMsg{err: err}
	}
}

func valueOf(s application.FormState, f field) string {
	switch f {
	case fieldSSID:
		return s.SSID
	case fieldPassword:
		return s.Password
	case fieldTitle:
		return s.Text.Title
	case fieldSubtitle:
		return s.Text.Subtitle
	case fieldFooter:
		return s.Text.Footer
	}
	return ""
}

func setterFor(f field, v string) application.FormAction {
	switch f {
	case fieldPassword:
		return application.SetPassword{Value: v}
	case fieldTitle:
		return application.SetTitle{Value: v}
	case fieldSubtitle:
		return application.SetSubtitle{Value: v}
	case fieldFooter:
		return application.SetFooter{Value: v}
	default:
		return application.SetSSID{Value: v}
	}
}
