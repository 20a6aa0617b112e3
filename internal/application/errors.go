package application

import (
	"errors"
	"fmt"
)

// User-facing messages for the two error kinds.
const (
	MsgPasswordRequired     = "Password is required for secure networks"
	MsgFormPasswordRequired = "Oops! Don't forget the password (or check 'This is an Open Network')"
	MsgGenerationFailed     = "Failed to generate QR code"
	MsgSSIDRequired         = "Please enter the network name (SSID)"
)

// ValidationError reports input that cannot be encoded. It is returned
// synchronously to the caller and is never fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// GenerationError wraps a failure of the QR rendering collaborator.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// UserMessage maps err to the text shown to the user: the message of a
// *ValidationError, or the generic generation failure message otherwise.
func UserMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return MsgGenerationFailed
}
