package widget

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/ribgsilva/notebook/business/v1/editor"
	"strings"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("4")).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.Copy().
				BorderForeground(lipgloss.Color("11"))

	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const (
	sidebarWidth = 34
	minWidth     = 80
	minHeight    = 20
)

func (m *Model) resize() {
	width, height := m.width, m.height
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	m.editor.SetWidth(width - sidebarWidth - 8)
	m.editor.SetHeight(height - 8)
}

func (m Model) View() string {
	v := m.controller.View()

	header := headerStyle.Render(fmt.Sprintf("Notebook  notes: %d", v.Total))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(v), m.editorPane(v))
	help := dimStyle.Render("ctrl+s save • ctrl+n new • ctrl+d delete • tab focus • enter select • esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func (m Model) sidebar(v editor.View) string {
	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	if len(v.Items) == 0 {
		b.WriteString(dimStyle.Render(v.Empty))
	}
	for i, item := range v.Items {
		cursor := "  "
		if m.focus == focusList && i == m.cursor {
			cursor = "> "
		}
		title := item.Title
		if item.Active {
			title = activeStyle.Render(title)
		}
		b.WriteString(cursor + title + "\n")
		b.WriteString("  " + dimStyle.Render(item.Label+": "+item.Timestamp) + "\n")
	}

	style := paneStyle
	if m.focus != focusEditor {
		style = focusedPaneStyle
	}
	return style.Width(sidebarWidth).Render(b.String())
}

func (m Model) editorPane(v editor.View) string {
	title := "New note"
	action := "ctrl+s create"
	if v.Mode == editor.Editing {
		title = "Editing note"
		action = "ctrl+s save"
	}
	if !v.CanCommit {
		action = dimStyle.Render(action)
	}

	footer := fmt.Sprintf("Chars: %d | Words: %d", v.Chars, v.Words)
	content := lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+action,
		m.editor.View(),
		dimStyle.Render(footer),
	)

	style := paneStyle
	if m.focus == focusEditor {
		style = focusedPaneStyle
	}
	return style.Render(content)
}
