// Package chat implements the conversation panel.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-sh/atelier/internal/ui"
	"github.com/atelier-sh/atelier/internal/ui/render"
	"github.com/atelier-sh/atelier/internal/ui/styles"
)

// Message is one entry in the conversation transcript.
type Message struct {
	Role string // "user" or "assistant"
	Text string
	At   time.Time
}

// Model represents the conversation panel state.
type Model struct {
	ui.Base
	viewport viewport.Model
	messages []Message
	ready    bool
}

// New creates a new conversation model.
func New() Model {
	return Model{}
}

// SetSize resizes the panel and the transcript viewport inside it.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)

	vpWidth := max(width-ui.BorderHeight, 0)
	vpHeight := max(height-ui.PanelOverhead, 0)
	if !m.ready {
		m.viewport = viewport.New(vpWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(m.renderTranscript(vpWidth))
}

// Append adds a message to the transcript and scrolls to the bottom.
func (m *Model) Append(msg Message) {
	m.messages = append(m.messages, msg)
	if m.ready {
		m.viewport.SetContent(m.renderTranscript(m.viewport.Width))
		m.viewport.GotoBottom()
	}
}

// Len returns the number of messages in the transcript.
func (m Model) Len() int { return len(m.messages) }

// Update handles scrolling within the transcript.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.IsFocused() || !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the conversation panel.
func (m Model) View() string {
	width, height := m.Size()
	if width < ui.MinRenderWidth || height == 0 {
		return ""
	}

	innerWidth := width - ui.BorderHeight

	title := fmt.Sprintf("Conversation (%d)", len(m.messages))
	header := styles.T().S().Title.Render(render.TruncateAndPad(title, innerWidth))
	separator := render.Separator(innerWidth)

	body := ""
	if m.ready {
		body = m.viewport.View()
	}

	content := header + "\n" + separator + "\n" + body

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderTranscript formats all messages for the viewport.
func (m Model) renderTranscript(width int) string {
	if len(m.messages) == 0 {
		return styles.T().S().Subtle.Render(" no messages yet")
	}

	var b strings.Builder
	for i, msg := range m.messages {
		role := styles.T().S().Active.Render(msg.Role)
		stamp := styles.T().S().Subtle.Render(msg.At.Format("15:04"))
		b.WriteString(render.Row(" "+role, stamp+" ", width))
		b.WriteString("\n")
		for _, line := range wrap(msg.Text, width-2) {
			b.WriteString(" " + line + "\n")
		}
		if i < len(m.messages)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// wrap breaks text into lines no wider than width, splitting on spaces.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
