package model

// WifiCredential holds the connection details encoded into a guest pass QR code.
// It only lives for the duration of one encode and is never persisted.
type WifiCredential struct {
	SSID       string
	Password   string
	Encryption Encryption
	Hidden     bool
}

// RequiresPassword reports whether the credential's encryption demands a
// non-empty password.
func (c WifiCredential) RequiresPassword() bool {
	return !c.Encryption.IsOpen()
}

// MissingPassword reports whether the credential violates the password rule:
// a secured network with an empty password.
func (c WifiCredential) MissingPassword() bool {
	return c.RequiresPassword() && c.Password == ""
}
