package model

// Fallback labels shown on the card when the matching field is empty.
const (
	DefaultCardTitle    = "Wi-Fi Access"
	DefaultCardSubtitle = "Guest Pass"
	DefaultCardFooter   = "Scan to connect automatically"
)

// CardText holds the free-text customization labels printed on a guest pass card.
type CardText struct {
	Title    string
	Subtitle string
	Footer   string
}

// WithDefaults returns a copy with every empty label replaced by its fallback.
func (t CardText) WithDefaults() CardText {
	if t.Title == "" {
		t.Title = DefaultCardTitle
	}
	if t.Subtitle == "" {
		t.Subtitle = DefaultCardSubtitle
	}
	if t.Footer == "" {
		t.Footer = DefaultCardFooter
	}
	return t
}
