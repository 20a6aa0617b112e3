package model

import "fmt"

// Encryption represents the authentication type token of a Wi-Fi network as
// written in the T: field of a Wi-Fi QR payload.
type Encryption string

const (
	EncryptionWPA  Encryption = "WPA"
	EncryptionWEP  Encryption = "WEP"
	EncryptionNone Encryption = "nopass" // Open network, no password.
)

// DefaultEncryption is used when a request or form omits the encryption token.
const DefaultEncryption = EncryptionWPA

// ParseEncryption converts a wire token to an Encryption. An empty token maps
// to DefaultEncryption; any other unknown token is an error.
func ParseEncryption(s string) (Encryption, error) {
	switch Encryption(s) {
	case "":
		return DefaultEncryption, nil
	case EncryptionWPA, EncryptionWEP, EncryptionNone:
		return Encryption(s), nil
	default:
		return "", fmt.Errorf("unknown encryption %q: expected WPA, WEP or nopass", s)
	}
}

// IsOpen reports whether the network needs no password.
func (e Encryption) IsOpen() bool {
	return e == EncryptionNone
}
