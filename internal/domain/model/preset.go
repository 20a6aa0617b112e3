package model

import "time"

// CardPreset is a named, reusable set of card labels. Presets never carry
// network credentials.
type CardPreset struct {
	ID        int64
	Name      string
	Text      CardText
	UpdatedAt time.Time
}
