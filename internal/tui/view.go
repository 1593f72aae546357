package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/trtech123/tos/internal/assistant"
	"github.com/trtech123/tos/internal/chatlink"
	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/pricing"
)

type styles struct {
	title     lipgloss.Style
	user      lipgloss.Style
	assistant lipgloss.Style
	link      lipgloss.Style
	focused   lipgloss.Style
	status    lipgloss.Style
	errorText lipgloss.Style
	muted     lipgloss.Style
	quote     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		user:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		link:      lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("33")),
		focused:   lipgloss.NewStyle().Underline(true).Reverse(true),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		muted:     lipgloss.NewStyle().Faint(true),
		quote:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (m Model) View() string {
	if !m.panel.IsOpen() {
		launcher := m.styles.title.Render("טוס תיירות") + "  " + m.styles.muted.Render("ctrl+w לפתיחת העוזר")
		if m.quote != nil {
			return m.renderQuote() + "\n" + launcher
		}
		return launcher
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("עוזר הטיסות של טוס תיירות"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	if m.quote != nil {
		b.WriteString("\n")
		b.WriteString(m.renderQuote())
	}
	return b.String()
}

func (m Model) renderMessages() string {
	messages := m.conv.Messages()
	var b strings.Builder
	for i, msg := range messages {
		latest := i == len(messages)-1
		if msg.Role == domain.RoleUser {
			b.WriteString(m.styles.user.Render("אתה: "))
		} else {
			b.WriteString(m.styles.assistant.Render("עוזר: "))
		}

		link := 0
		for _, seg := range chatlink.Parse(msg.Content) {
			if !seg.IsLink() {
				b.WriteString(seg.Text)
				continue
			}
			style := m.styles.link
			if latest && link == m.linkIndex {
				style = m.styles.focused
			}
			b.WriteString(style.Render(seg.Label))
			link++
		}
		b.WriteString("  ")
		b.WriteString(m.styles.muted.Render(msg.Timestamp.Format("15:04")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStatus() string {
	switch {
	case m.recorder.State() == assistant.StateRecording:
		return m.styles.errorText.Render("● מקליט... ctrl+r לסיום")
	case m.recorder.State() == assistant.StateFinalizing:
		return m.styles.status.Render("מתמלל את ההקלטה...")
	case m.conv.Pending():
		return m.styles.status.Render("העוזר מקליד...")
	case m.notice != nil && m.notice.Error:
		return m.styles.errorText.Render(m.notice.String())
	case m.notice != nil:
		return m.styles.status.Render(m.notice.String())
	}
	return ""
}

func (m Model) renderHelp() string {
	bindings := []key.Binding{m.keys.Record, m.keys.NextLink, m.keys.Follow, m.keys.Quit}
	if m.panel.IsWidget() {
		bindings = append(bindings, m.keys.Toggle)
	}

	send := m.keys.Send.Help()
	parts := []string{send.Key + " " + send.Desc}
	if !m.CanSend() {
		parts[0] = m.styles.muted.Render(parts[0])
	}
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return m.styles.status.Render(strings.Join(parts, " · "))
}

func (m Model) renderQuote() string {
	q := m.quote
	var b strings.Builder
	b.WriteString(m.styles.title.Render("סיכום הזמנה"))
	b.WriteString("\n")
	if q.Flight != nil {
		fmt.Fprintf(&b, "טיסה: %s ← %s", q.Flight.From, q.Flight.To)
		if q.Flight.Date != "" {
			fmt.Fprintf(&b, " (%s)", q.Flight.Date)
		}
		if q.Flight.Airline != "" {
			fmt.Fprintf(&b, ", %s", q.Flight.Airline)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "מחיר טיסה: %s\n", formatPrice(q.FlightPrice))
	if q.Hotel != nil {
		fmt.Fprintf(&b, "מלון: %s, %d לילות: %s\n", q.Hotel.Name, q.Hotel.Nights, formatPrice(q.HotelPrice))
	}
	fmt.Fprintf(&b, "מיסים ואגרות: %s\n", formatPrice(q.Taxes))
	fmt.Fprintf(&b, "ביטוח נסיעות: %s\n", formatPrice(q.Insurance))
	fmt.Fprintf(&b, "סה\"כ לתשלום: %s", formatPrice(q.Total))
	return m.styles.quote.Render(b.String())
}

// formatPrice renders 2400 as ₪2,400.
func formatPrice(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	if amount < 0 {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if amount < 0 {
		return "-" + pricing.Currency + b.String()
	}
	return pricing.Currency + b.String()
}
