// Package widget renders the notebook editor in a terminal: a searchable list of notes next to a
// text area that either composes a new note or edits the selected one.
package widget

import (
	"context"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ribgsilva/notebook/business/v1/editor"
)

type focus int

const (
	focusEditor focus = iota
	focusSearch
	focusList
)

type Model struct {
	ctx        context.Context
	controller *editor.Controller
	editor     textarea.Model
	search     textinput.Model
	focus      focus
	cursor     int
	width      int
	height     int
}

func New(ctx context.Context, controller *editor.Controller) Model {
	ta := textarea.New()
	ta.Placeholder = "Start writing your note here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(12)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.Prompt = "/ "
	ti.Width = 28

	v := controller.View()
	ta.SetValue(v.Draft)
	ti.SetValue(v.Query)

	return Model{
		ctx:        ctx,
		controller: controller,
		editor:     ta,
		search:     ti,
		focus:      focusEditor,
	}
}

// Run blocks until the user quits
func Run(ctx context.Context, controller *editor.Controller) error {
	program := tea.NewProgram(New(ctx, controller), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.forward(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlS:
		m.controller.SetContent(m.editor.Value())
		m.controller.Commit(m.ctx)
		m.syncDraft()
		m.cursor = m.activeIndex()
		return m, nil

	case tea.KeyCtrlN:
		m.controller.New()
		m.syncDraft()
		cmd := m.setFocus(focusEditor)
		return m, cmd

	case tea.KeyCtrlD:
		items := m.controller.View().Items
		if m.cursor < len(items) {
			m.controller.Delete(m.ctx, items[m.cursor].Id)
			m.syncDraft()
			m.clampCursor()
		}
		return m, nil

	case tea.KeyTab:
		cmd := m.setFocus((m.focus + 1) % 3)
		return m, cmd
	}

	if m.focus == focusList {
		return m.handleListKey(msg)
	}
	return m.forward(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		m.cursor++
		m.clampCursor()
	case tea.KeyEnter:
		items := m.controller.View().Items
		if m.cursor < len(items) && m.controller.Select(items[m.cursor].Id) {
			m.syncDraft()
			cmd := m.setFocus(focusEditor)
			return m, cmd
		}
	}
	return m, nil
}

// forward hands msg to the focused input and mirrors the result into the controller
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusEditor:
		m.editor, cmd = m.editor.Update(msg)
		m.controller.SetContent(m.editor.Value())
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
		m.controller.SetQuery(m.search.Value())
		m.clampCursor()
	}
	return m, cmd
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.editor.Blur()
	m.search.Blur()
	switch f {
	case focusEditor:
		return m.editor.Focus()
	case focusSearch:
		return m.search.Focus()
	}
	return nil
}

// syncDraft shows the controller draft in the text area after an action replaced it
func (m *Model) syncDraft() {
	m.editor.SetValue(m.controller.View().Draft)
}

func (m *Model) clampCursor() {
	n := len(m.controller.View().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) activeIndex() int {
	for i, item := range m.controller.View().Items {
		if item.Active {
			return i
		}
	}
	return 0
}
