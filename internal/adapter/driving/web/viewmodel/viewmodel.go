// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from application state types.
package viewmodel

// PageViewModel holds everything the guest pass page renders.
type PageViewModel struct {
	CSRFToken string
	Notice    string // one-line confirmation, e.g. after saving a preset
	Form      FormViewModel
	Card      CardViewModel
	Presets   []PresetViewModel
}

// FormViewModel holds the current form inputs and their derived flags.
type FormViewModel struct {
	SSID                 string
	Password             string
	Encryption           string
	EncryptionOptions    []OptionViewModel
	OpenNetwork          bool
	HidePassword         bool
	HidePasswordDisabled bool
	PasswordFieldVisible bool

	Title    string
	Subtitle string
	Footer   string

	Error       string
	SubmitLabel string // "Generate Guest Pass" or "Update QR Code"
	NeedsUpdate bool

	// Snapshot of the QR inputs at the last generation, carried in hidden
	// fields so the next request can tell whether they changed.
	Generated           bool
	GeneratedSSID       string
	GeneratedPassword   string
	GeneratedEncryption string
	GeneratedOpen       bool
	QRCode              string
}

// OptionViewModel is one <option> of a select input.
type OptionViewModel struct {
	Value    string
	Label    string
	Selected bool
}

// CardViewModel holds presentation-ready data for the printable guest card.
type CardViewModel struct {
	Visible         bool
	QRCode          string
	SSID            string
	Password        string
	PasswordVisible bool
	Title           string
	Subtitle        string
	FooterHTML      string // sanitized inline markdown
}

// PresetViewModel is a saved label preset offered on the page.
type PresetViewModel struct {
	Name      string
	ApplyPath string
	Selected  bool
}

// Form field names shared by the page components and the form decoder.
const (
	FieldSSID         = "ssid"
	FieldPassword     = "password"
	FieldEncryption   = "encryption"
	FieldOpenNetwork  = "open_network"
	FieldHidePassword = "hide_password"
	FieldTitle        = "card_title"
	FieldSubtitle     = "card_subtitle"
	FieldFooter       = "card_footer"
	FieldPresetName   = "preset_name"
	FieldCSRF         = "csrf_token"

	FieldGenerated     = "generated"
	FieldGenSSID       = "gen_ssid"
	FieldGenPassword   = "gen_password"
	FieldGenEncryption = "gen_encryption"
	FieldGenOpen       = "gen_open"
	FieldQRCode        = "qr_code"
)
