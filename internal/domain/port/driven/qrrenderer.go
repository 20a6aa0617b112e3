package driven

import "context"

// QRRenderer turns a text payload into a QR code image.
type QRRenderer interface {
	// PNG encodes payload as a QR code and returns the PNG-encoded image.
	PNG(ctx context.Context, payload string) ([]byte, error)
}

// QRTextRenderer renders a QR code with terminal block characters.
type QRTextRenderer interface {
	Text(payload string) (string, error)
}
