// Package tui implements the terminal chat view: a message list, a draft
// input, and an at-most-one-outstanding-request pending flag.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

// SendFunc issues one chat request. Injected so tests can stub the network.
type SendFunc func(ctx context.Context, message string, history []schema.Message) (schema.Message, error)

type replyMsg struct {
	message schema.Message
}

type replyErrMsg struct {
	err error
}

var (
	userBubbleStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10"))

	assistantBubbleStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8"))

	welcomeTitleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the chat view state machine.
type Model struct {
	input    textinput.Model
	spin     spinner.Model
	messages []schema.Message
	pending  bool
	errNote  string
	width    int
	height   int
	send     SendFunc
}

// NewModel creates the chat view backed by the given send function.
func NewModel(send SendFunc) Model {
	in := textinput.New()
	in.Placeholder = "Ask anything..."
	in.Prompt = "> "
	in.CharLimit = 0
	in.Width = 60
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return Model{
		input: in,
		spin:  s,
		send:  send,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 4; w > 10 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		}
		// Any other keystroke dismisses a lingering error note.
		m.errNote = ""

	case replyMsg:
		m.pending = false
		if msg.message.Role != "" && msg.message.Content != "" {
			m.messages = append(m.messages, msg.message)
		}
		return m, nil

	case replyErrMsg:
		m.pending = false
		if msg.err != nil {
			m.errNote = msg.err.Error()
		} else {
			m.errNote = "Failed to get response"
		}
		return m, nil

	case spinner.TickMsg:
		if m.pending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// The input is disabled while a request is in flight.
	if m.pending {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit appends the user message optimistically, clears the draft, and
// issues the request carrying the updated history. Ignored when the trimmed
// draft is empty or a request is already pending.
func (m Model) submit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.pending {
		return m, nil
	}

	userMsg := schema.NewUserMessage(text)
	m.messages = append(m.messages, userMsg)
	m.input.SetValue("")
	m.pending = true
	m.errNote = ""

	history := make([]schema.Message, len(m.messages))
	copy(history, m.messages)
	send := m.send

	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		reply, err := send(context.Background(), text, history)
		if err != nil {
			return replyErrMsg{err: err}
		}
		return replyMsg{message: reply}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if len(m.messages) == 0 && !m.pending {
		b.WriteString("\n")
		b.WriteString(welcomeTitleStyle.Render("Hi, I'm QRTZ."))
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("How can I help you today?"))
		b.WriteString("\n\n")
	} else {
		for _, msg := range m.messages {
			b.WriteString(m.renderBubble(msg))
			b.WriteString("\n")
		}
		if m.pending {
			b.WriteString(assistantBubbleStyle.Render(m.spin.View() + "..."))
			b.WriteString("\n")
		}
	}

	if m.errNote != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errNote))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("enter send · esc quit · attach / deep search / search / voice / mic coming soon"))
	b.WriteString("\n")

	return b.String()
}

// renderBubble right-aligns user messages and left-aligns assistant messages.
func (m Model) renderBubble(msg schema.Message) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	maxBubble := width * 85 / 100

	style := assistantBubbleStyle
	align := lipgloss.Left
	if msg.Role == schema.RoleUser {
		style = userBubbleStyle
		align = lipgloss.Right
	}

	bubble := style.MaxWidth(maxBubble).Render(msg.Content)
	return lipgloss.PlaceHorizontal(width, align, bubble)
}

// Messages returns the current conversation, in insertion order.
func (m Model) Messages() []schema.Message {
	return m.messages
}

// Pending reports whether a request is in flight.
func (m Model) Pending() bool {
	return m.pending
}

// ErrorNote returns the current transient error text, if any.
func (m Model) ErrorNote() string {
	return m.errNote
}
