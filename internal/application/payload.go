package application

import (
	"strings"

	"github.com/ob-cheng/Guest-Pass/internal/domain/model"
)

// payloadEscaper prefixes each reserved character of the Wi-Fi QR format with a backslash.
var payloadEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`"`, `\"`,
	`:`, `\:`,
)

// EscapeValue escapes a single field value (SSID or password) for the Wi-Fi QR
// payload. Field labels and the encryption token are never escaped.
func EscapeValue(s string) string {
	return payloadEscaper.Replace(s)
}

// UnescapeValue reverses EscapeValue: a backslash followed by any character
// yields that character. A trailing lone backslash is kept as-is.
func UnescapeValue(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// EncodePayload builds the Wi-Fi QR string for c as the JSON API does:
//
//	WIFI:T:<enc>;S:<ssid>;[P:<password>;][H:true;];
//
// The P segment is written whenever a password is present, whatever the
// encryption. The H segment is written only for hidden networks. EncodePayload
// does not validate; call ValidateCredential first.
func EncodePayload(c model.WifiCredential) string {
	return buildPayload(c.Encryption, c.SSID, c.Password, c.Hidden)
}

// EncodeFormPayload builds the Wi-Fi QR string for c as the card form does.
// The password is dropped while openNetwork is set and the hidden flag is
// never written, because the form has no control for it.
func EncodeFormPayload(c model.WifiCredential, openNetwork bool) string {
	password := c.Password
	if openNetwork {
		password = ""
	}
	return buildPayload(c.Encryption, c.SSID, password, false)
}

func buildPayload(enc model.Encryption, ssid, password string, hidden bool) string {
	var b strings.Builder

	b.WriteString("WIFI:T:")
	b.WriteString(string(enc))
	b.WriteString(";S:")
	b.WriteString(EscapeValue(ssid))
	b.WriteByte(';')

	if password != "" {
		b.WriteString("P:")
		b.WriteString(EscapeValue(password))
		b.WriteByte(';')
	}

	if hidden {
		b.WriteString("H:true;")
	}

	b.WriteByte(';')

	return b.String()
}

// ValidateCredential applies the single encoding rule: a secured network needs
// a password. message is the text reported to the user on failure.
func ValidateCredential(c model.WifiCredential, message string) error {
	if c.MissingPassword() {
		return &ValidationError{Field: "password", Message: message}
	}
	return nil
}
