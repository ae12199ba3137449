package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/quocthai179/my-succulent-store/internal/core/chat"
)

func (m Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab":
		return m.nextPane(), nil

	case "esc":
		m.chatInput.Blur()
		m.pane = shopPane
		return m, nil

	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.chatViewport, cmd = m.chatViewport.Update(msg)
		return m, cmd

	case "enter":
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.chatWaiting {
			return m, nil
		}
		m.chatInput.SetValue("")
		m.chatWaiting = true
		// Show the outgoing message right away; the reply re-renders later.
		m.chatViewport = newChatViewport(
			append(m.bridge.Transcript(), chat.Message{Role: chat.RoleUser, Text: text}),
			m.width, m.height)
		return m, sendChat(m.bridge, m.carts, text)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func newChatViewport(transcript []chat.Message, width, height int) viewport.Model {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	vp := viewport.New(width, height-5)
	vp.SetContent(renderTranscript(transcript, width))
	vp.GotoBottom()
	return vp
}

func renderTranscript(transcript []chat.Message, width int) string {
	var b strings.Builder
	for _, msg := range transcript {
		switch msg.Role {
		case chat.RoleUser:
			b.WriteString(userStyle.Render("Bạn:"))
		default:
			b.WriteString(assistantStyle.Render("Trợ lý:"))
		}
		b.WriteString("\n")
		b.WriteString(wordwrap.String(msg.Text, width-2))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m Model) viewChat() string {
	var b strings.Builder

	b.WriteString(paneTitleStyle.Render("Trợ lý đặt hàng"))
	b.WriteString("  ")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	b.WriteString(m.chatViewport.View())
	b.WriteString("\n")

	if m.chatWaiting {
		b.WriteString(mutedStyle.Render("Trợ lý đang trả lời..."))
		b.WriteString("\n")
	}

	b.WriteString("> ")
	b.WriteString(m.chatInput.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter gửi • ↑/↓ cuộn • esc quay lại • tab cửa hàng"))
	return b.String()
}
