// Package editor drives a note store the way the notebook widget does: a single draft that either
// becomes a new note (composing) or is saved over the selected one (editing), plus a live search.
package editor

import (
	"context"
	"github.com/ribgsilva/notebook/business/v1/note"
	"strings"
	"sync"
	"unicode/utf8"
)

type Mode string

const (
	Composing Mode = "composing"
	Editing   Mode = "editing"
)

const (
	LabelCreated = "Created"
	LabelUpdated = "Updated"

	EmptyNoNotes = "No notes yet"
	EmptyNoMatch = "No notes found"
)

// Controller holds the transient editor state, the notes themselves belong to the store
type Controller struct {
	mu       sync.Mutex
	store    *note.Store
	selected int64
	draft    string
	query    string
}

func New(store *note.Store) *Controller {
	return &Controller{store: store}
}

// Item is a row of the note list
type Item struct {
	Id        int64  `json:"id" example:"1700000000000"`
	Title     string `json:"title" example:"Buy milk"`
	Label     string `json:"label" example:"Created"`
	Timestamp string `json:"timestamp" example:"2024-01-02 15:04:05"`
	Active    bool   `json:"active"`
}

// View is everything needed to render the widget
type View struct {
	Mode       Mode   `json:"mode" example:"composing"`
	SelectedId int64  `json:"selectedId,omitempty"`
	Draft      string `json:"draft"`
	Query      string `json:"query"`
	Total      int    `json:"total"`
	Items      []Item `json:"items"`
	Empty      string `json:"empty,omitempty" example:"No notes yet"`
	Chars      int    `json:"chars"`
	Words      int    `json:"words"`
	CanCommit  bool   `json:"canCommit"`
}

// SetContent replaces the draft
func (c *Controller) SetContent(content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = content
}

func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

// Select starts editing the note with id, pre filling the draft with its content
func (c *Controller) Select(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.store.Find(id)
	if !ok {
		return false
	}
	c.selected = n.Id
	c.draft = n.Content
	return true
}

// New goes back to composing with an empty draft
func (c *Controller) New() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = 0
	c.draft = ""
}

// Commit creates a note from the draft when composing, or saves the draft over the selected note
// when editing. A created note becomes the selected one and the draft is cleared.
func (c *Controller) Commit(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selected == 0 {
		n, ok := c.store.Create(ctx, c.draft)
		if !ok {
			return false
		}
		c.draft = ""
		c.selected = n.Id
		return true
	}

	_, ok := c.store.Update(ctx, c.selected, c.draft)
	return ok
}

// Delete removes a note, deleting the selected one goes back to composing
func (c *Controller) Delete(ctx context.Context, id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	ok := c.store.Delete(ctx, id)
	if id == c.selected {
		c.selected = 0
		c.draft = ""
	}
	return ok
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropVanished()
	return c.mode()
}

func (c *Controller) mode() Mode {
	if c.selected == 0 {
		return Composing
	}
	return Editing
}

// dropVanished falls back to composing when the selected note was deleted behind our back
func (c *Controller) dropVanished() {
	if c.selected == 0 {
		return
	}
	if _, ok := c.store.Find(c.selected); !ok {
		c.selected = 0
	}
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropVanished()

	v := View{
		Mode:       c.mode(),
		SelectedId: c.selected,
		Draft:      c.draft,
		Query:      c.query,
		Total:      c.store.Len(),
		Items:      []Item{},
		Chars:      utf8.RuneCountInString(c.draft),
		Words:      len(strings.Fields(c.draft)),
		CanCommit:  strings.TrimSpace(c.draft) != "",
	}

	for n := range c.store.Search(c.query) {
		label := LabelUpdated
		if n.UpdatedAt == n.CreatedAt {
			label = LabelCreated
		}
		v.Items = append(v.Items, Item{
			Id:        n.Id,
			Title:     n.Title,
			Label:     label,
			Timestamp: n.UpdatedAt,
			Active:    n.Id == c.selected,
		})
	}

	if len(v.Items) == 0 {
		v.Empty = EmptyNoNotes
		if c.query != "" {
			v.Empty = EmptyNoMatch
		}
	}
	return v
}
