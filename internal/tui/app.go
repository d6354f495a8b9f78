package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuido/internal/todo"
)

// inputMode determines how key events are interpreted: navigation commands in
// modeNormal, text entry in modeEditing.
type inputMode int

const (
	modeNormal inputMode = iota
	modeEditing
)

// Model is the application state: the item list, the active input mode, and
// the popup editor. It owns all of them exclusively; View takes read-only
// access for the duration of a single render.
type Model struct {
	list   *todo.List[todo.Item]
	editor Editor
	mode   inputMode

	// showPopup is kept in lockstep with mode by every transition: the popup
	// is visible exactly while editing.
	showPopup bool

	keys keyMap
	help help.Model

	windowWidth  int
	windowHeight int
	scrollOffset int
}

// NewModel returns the initial application state: an empty list, normal mode,
// popup hidden.
func NewModel() *Model {
	return &Model{
		list: todo.NewList[todo.Item](),
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		m.adjustScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeEditing {
		return m.handleEditingKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.AddItem):
		m.showPopup = true
		m.mode = modeEditing
		return m, nil

	case key.Matches(msg, m.keys.Deselect):
		m.list.Unselect()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.Next()
		m.adjustScroll()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.list.Previous()
		m.adjustScroll()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SoftBreak):
		// Reserved for multi-line input; never commits.
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.showPopup = false
		m.list.Append(m.editor.Commit())
		m.mode = modeNormal
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		if m.showPopup {
			m.editor.Discard()
			m.mode = modeNormal
			m.showPopup = false
		}
		return m, nil

	case key.Matches(msg, m.keys.Backspace):
		if m.showPopup {
			m.editor.Backspace()
		}
		return m, nil
	}

	// Text entry. The visibility guard keeps stray key presses from mutating
	// a hidden popup's buffer.
	if m.showPopup {
		switch msg.Type {
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.editor.InsertRune(r)
			}
		case tea.KeySpace:
			m.editor.InsertRune(' ')
		}
	}

	return m, nil
}

// adjustScroll keeps the selected item inside the visible window of the list
// region.
func (m *Model) adjustScroll() {
	selected, ok := m.list.Selected()
	if !ok {
		return
	}
	rows := m.listRows()
	if rows < 1 {
		rows = 1
	}
	if selected < m.scrollOffset {
		m.scrollOffset = selected
	}
	if selected >= m.scrollOffset+rows {
		m.scrollOffset = selected - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// listRows returns the number of item rows that fit inside the list box.
func (m *Model) listRows() int {
	lay := computeLayout(m.windowWidth, m.windowHeight)
	return lay.List.H - 2
}
