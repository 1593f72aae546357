// Package tui is the terminal rendition of the chat widget.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/trtech123/tos/internal/assistant"
	"github.com/trtech123/tos/internal/chatlink"
	"github.com/trtech123/tos/internal/domain"
)

// requestTimeout bounds one chat, transcription or checkout call.
const requestTimeout = 90 * time.Second

// chromeHeight is the number of rows outside the message viewport.
const chromeHeight = 5

type replyMsg struct {
	err error
}

type transcribedMsg struct {
	text string
	err  error
}

type followedMsg struct {
	err error
}

type Model struct {
	conv      *assistant.Conversation
	panel     *assistant.Panel
	recorder  *assistant.Recorder
	navigator *CheckoutNavigator

	keys     keyMap
	viewport viewport.Model
	input    textinput.Model
	styles   styles

	notice    *assistant.Notice
	quote     *domain.Quote
	linkIndex int
	width     int
	height    int
}

func New(conv *assistant.Conversation, panel *assistant.Panel, recorder *assistant.Recorder, navigator *CheckoutNavigator) Model {
	input := textinput.New()
	input.Placeholder = "כתוב הודעה..."
	input.CharLimit = 2000
	input.Focus()

	m := Model{
		conv:      conv,
		panel:     panel,
		recorder:  recorder,
		navigator: navigator,
		keys:      defaultKeyMap(),
		viewport:  viewport.New(80, 20),
		input:     input,
		styles:    defaultStyles(),
		linkIndex: -1,
		width:     80,
		height:    20 + chromeHeight,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.refresh()
		return m, nil

	case replyMsg:
		if msg.err != nil {
			m.setNotice(assistant.NoticeSendFailed)
		}
		m.linkIndex = -1
		m.refresh()
		return m, nil

	case transcribedMsg:
		m.input.Focus()
		switch {
		case msg.err != nil:
			m.setNotice(assistant.NoticeTranscribeFailed)
		case msg.text != "":
			m.input.SetValue(m.conv.Input())
			m.input.CursorEnd()
			m.setNotice(assistant.NoticeTranscribed)
		}
		return m, nil

	case followedMsg:
		if msg.err != nil {
			m.setNotice(assistant.Notice{Title: "שגיאה", Description: msg.err.Error(), Error: true})
			return m, nil
		}
		m.quote = m.navigator.Quote()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.panel.Toggle()
		return m, nil
	}

	if !m.panel.IsOpen() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Send):
		return m, m.send()

	case key.Matches(msg, m.keys.Record):
		return m, m.toggleRecording()

	case key.Matches(msg, m.keys.NextLink):
		links := m.latestLinks()
		if len(links) > 0 {
			m.linkIndex = (m.linkIndex + 1) % len(links)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Follow):
		return m, m.follow()
	}

	if m.recorder.State() != assistant.StateIdle {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.conv.SetInput(m.input.Value())
	return m, cmd
}

// CanSend mirrors the send button: disabled while the input is blank, a reply is
// pending or a recording is in progress.
func (m Model) CanSend() bool {
	return m.recorder.State() == assistant.StateIdle && m.conv.CanSend()
}

func (m *Model) send() tea.Cmd {
	if !m.CanSend() {
		return nil
	}
	await, err := m.conv.Begin()
	if err != nil {
		return nil
	}
	m.input.Reset()
	m.notice = nil
	m.refresh()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		_, err := await(ctx)
		return replyMsg{err: err}
	}
}

func (m *Model) toggleRecording() tea.Cmd {
	switch m.recorder.State() {
	case assistant.StateIdle:
		if err := m.recorder.Start(context.Background()); err != nil {
			m.setNotice(assistant.NoticeMicrophoneFailed)
			return nil
		}
		m.input.Blur()
		m.setNotice(assistant.NoticeRecording)
		return nil

	case assistant.StateRecording:
		recorder := m.recorder
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			text, err := recorder.Stop(ctx)
			return transcribedMsg{text: text, err: err}
		}
	}
	return nil
}

func (m *Model) follow() tea.Cmd {
	links := m.latestLinks()
	if m.linkIndex < 0 || m.linkIndex >= len(links) {
		return nil
	}
	link := links[m.linkIndex]
	panel := m.panel

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return followedMsg{err: panel.Follow(ctx, link)}
	}
}

// latestLinks returns the links of the newest assistant message.
func (m Model) latestLinks() []chatlink.Segment {
	last, ok := m.conv.Last()
	if !ok || last.Role != domain.RoleAssistant {
		return nil
	}
	return chatlink.Links(last.Content)
}

func (m *Model) setNotice(n assistant.Notice) {
	m.notice = &n
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderMessages())
	m.viewport.GotoBottom()
}
