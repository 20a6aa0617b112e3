package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var fieldLabels = [fieldCount]string{
	fieldSSID:     "Network",
	fieldPassword: "Password",
	fieldTitle:    "Title",
	fieldSubtitle: "Subtitle",
	fieldFooter:   "Footer",
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Guest Pass"))
	b.WriteString("\n")

	b.WriteString(m.inputLine(fieldSSID))
	b.WriteString(checkbox("This is an Open Network", m.state.OpenNetwork, false))

	security := labelStyle.Render("Security") + string(m.state.Encryption)
	if m.state.OpenNetwork {
		security = disabledStyle.Render(security)
	}
	b.WriteString(security + "\n")

	if m.state.PasswordFieldVisible() {
		b.WriteString(m.inputLine(fieldPassword))
	}
	b.WriteString(checkbox("Hide password on the card", m.state.HidePassword, m.state.HidePasswordDisabled))

	b.WriteString("\n")
	for _, f := range []field{fieldTitle, fieldSubtitle, fieldFooter} {
		b.WriteString(m.inputLine(f))
	}

	b.WriteString("\n")
	if msg := m.errorMessage(); msg != "" {
		b.WriteString(errorStyle.Render(msg) + "\n")
	}
	if m.state.NeedsUpdate {
		b.WriteString(updateStyle.Render("enter: Update QR Code") + "\n")
	} else {
		b.WriteString(submitStyle.Render("enter: Generate Guest Pass") + "\n")
	}

	if m.state.Card.Visible {
		b.WriteString("\n")
		b.WriteString(m.cardView())
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) inputLine(f field) string {
	label := labelStyle.Render(fieldLabels[f])
	if f == m.focus {
		label = focusedLabelStyle.Render(fieldLabels[f])
	}
	return label + m.inputs[f].View() + "\n"
}

func (m Model) errorMessage() string {
	if m.state.Error != "" {
		return m.state.Error
	}
	return m.qrErr
}

// cardView renders the guest card: labels, QR code and credentials.
func (m Model) cardView() string {
	labels := m.state.Labels()

	lines := []string{
		cardTitleStyle.Render(labels.Title),
		cardSubtleStyle.Render(labels.Subtitle),
		"",
	}
	if m.qr != "" {
		lines = append(lines, strings.TrimRight(m.qr, "\n"), "")
	}
	lines = append(lines, cardSubtleStyle.Render("Network: ")+m.state.Card.SSID)
	if m.state.PasswordSectionVisible() && m.state.Card.Password != "" {
		lines = append(lines, cardSubtleStyle.Render("Password: ")+m.state.Card.Password)
	}
	lines = append(lines, "", cardSubtleStyle.Render(labels.Footer))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func checkbox(label string, checked, disabled bool) string {
	box := "[ ] "
	if checked {
		box = "[x] "
	}
	line := box + label
	if disabled {
		line = disabledStyle.Render(line)
	}
	return line + "\n"
}
