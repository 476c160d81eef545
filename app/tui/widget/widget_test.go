package widget

import (
	"context"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ribgsilva/notebook/business/v1/editor"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/persistence/v1/kv"
	pnote "github.com/ribgsilva/notebook/persistence/v1/note"
	"strings"
	"testing"
)

func newModel(t *testing.T) (Model, *note.Store) {
	t.Helper()
	store := note.New(pnote.NewCollection(kv.NewMemory(), ""))
	store.Load(context.Background())
	return New(context.Background(), editor.New(store)), store
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func TestCreateFromEditor(t *testing.T) {
	m, store := newModel(t)

	m = press(t, m, typed("Buy milk"), key(tea.KeyCtrlS))

	if store.Len() != 1 || store.All()[0].Content != "Buy milk" {
		t.Fatalf("Test CreateFromEditor: Should create the typed note: %v", store.All())
	}
	v := m.controller.View()
	if v.Mode != editor.Editing || m.editor.Value() != "" {
		t.Fatalf("Test CreateFromEditor: Should select the new note and clear the editor: %+v %q", v, m.editor.Value())
	}
	if !strings.Contains(m.View(), "Buy milk") {
		t.Fatalf("Test CreateFromEditor: Should list the created note")
	}
}

func TestBlankIsIgnored(t *testing.T) {
	m, store := newModel(t)

	m = press(t, m, typed("   "), key(tea.KeyCtrlS))
	if store.Len() != 0 {
		t.Fatalf("Test BlankIsIgnored: Should not create a blank note: %v", store.All())
	}
	if m.controller.Mode() != editor.Composing {
		t.Fatalf("Test BlankIsIgnored: Should stay composing")
	}
}

func TestSelectAndSave(t *testing.T) {
	m, store := newModel(t)
	ctx := context.Background()
	store.Create(ctx, "older")
	store.Create(ctx, "newer")

	// focus the list, move to the second note and select it
	m = press(t, m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyDown), key(tea.KeyEnter))

	v := m.controller.View()
	if v.Mode != editor.Editing || m.editor.Value() != "older" {
		t.Fatalf("Test SelectAndSave: Should load the selected note into the editor: %+v %q", v, m.editor.Value())
	}
	if m.focus != focusEditor {
		t.Fatalf("Test SelectAndSave: Should focus the editor after selecting")
	}

	m = press(t, m, typed(" and wiser"), key(tea.KeyCtrlS))
	if store.Len() != 2 {
		t.Fatalf("Test SelectAndSave: Should not create while editing: %v", store.All())
	}
	if n := store.All()[1]; n.Content != "older and wiser" {
		t.Fatalf("Test SelectAndSave: Should save the edited content: %+v", n)
	}
}

func TestNewAndDelete(t *testing.T) {
	m, store := newModel(t)

	m = press(t, m, typed("short lived"), key(tea.KeyCtrlS))
	m = press(t, m, key(tea.KeyCtrlD))
	if store.Len() != 0 {
		t.Fatalf("Test NewAndDelete: Should delete the highlighted note: %v", store.All())
	}
	if m.controller.Mode() != editor.Composing {
		t.Fatalf("Test NewAndDelete: Should go back to composing after deleting the selected note")
	}

	m = press(t, m, typed("draft"), key(tea.KeyCtrlN))
	if m.editor.Value() != "" || m.controller.View().Draft != "" {
		t.Fatalf("Test NewAndDelete: Should clear the draft on new")
	}
	if !strings.Contains(m.View(), editor.EmptyNoNotes) {
		t.Fatalf("Test NewAndDelete: Should show the empty list message")
	}
}

func TestSearch(t *testing.T) {
	m, store := newModel(t)
	ctx := context.Background()
	store.Create(ctx, "Buy milk")
	store.Create(ctx, "Call mom")

	m = press(t, m, key(tea.KeyTab), typed("MILK"))
	v := m.controller.View()
	if v.Query != "MILK" || len(v.Items) != 1 || v.Items[0].Title != "Buy milk" {
		t.Fatalf("Test Search: Should filter the list while typing: %+v", v)
	}

	m = press(t, m, typed("shake"))
	if !strings.Contains(m.View(), editor.EmptyNoMatch) {
		t.Fatalf("Test Search: Should show the no match message")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(key(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatalf("Test Quit: Should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("Test Quit: Should quit on ctrl+c")
	}
}
