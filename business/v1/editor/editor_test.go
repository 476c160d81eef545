package editor

import (
	"context"
	"github.com/google/go-cmp/cmp"
	"github.com/ribgsilva/notebook/business/v1/note"
	"github.com/ribgsilva/notebook/persistence/v1/kv"
	pnote "github.com/ribgsilva/notebook/persistence/v1/note"
	"testing"
	"time"
)

func newController(t *testing.T) (*Controller, *note.Store) {
	t.Helper()
	at := time.Date(2024, 1, 2, 15, 4, 5, 0, time.Local)
	store := note.New(pnote.NewCollection(kv.NewMemory(), ""), note.WithClock(func() time.Time {
		at = at.Add(time.Second)
		return at
	}))
	store.Load(context.Background())
	return New(store), store
}

func TestComposeAndCreate(t *testing.T) {
	c, store := newController(t)
	ctx := context.Background()

	if c.Mode() != Composing {
		t.Fatalf("Test ComposeAndCreate: Should start composing: %v", c.Mode())
	}
	if v := c.View(); v.CanCommit || v.Empty != EmptyNoNotes {
		t.Fatalf("Test ComposeAndCreate: Should not allow committing an empty draft: %+v", v)
	}

	c.SetContent("   ")
	if c.Commit(ctx) {
		t.Fatalf("Test ComposeAndCreate: Should reject a blank draft")
	}
	if c.Mode() != Composing || store.Len() != 0 {
		t.Fatalf("Test ComposeAndCreate: Should stay composing with nothing created")
	}

	c.SetContent("Buy milk")
	if !c.Commit(ctx) {
		t.Fatalf("Test ComposeAndCreate: Should create a note from the draft")
	}

	v := c.View()
	created := store.All()[0]
	if v.Mode != Editing || v.SelectedId != created.Id {
		t.Fatalf("Test ComposeAndCreate: Should select the created note: %+v", v)
	}
	if v.Draft != "" {
		t.Fatalf("Test ComposeAndCreate: Should clear the draft after creating: %q", v.Draft)
	}
	want := []Item{{Id: created.Id, Title: "Buy milk", Label: LabelCreated, Timestamp: created.UpdatedAt, Active: true}}
	if diff := cmp.Diff(want, v.Items); diff != "" {
		t.Fatalf("Test ComposeAndCreate: Should list the created note (-want +got):\n%s", diff)
	}
}

func TestSelectAndSave(t *testing.T) {
	c, store := newController(t)
	ctx := context.Background()

	n, _ := store.Create(ctx, "first draft")

	if c.Select(999) {
		t.Fatalf("Test SelectAndSave: Should ignore selecting a missing note")
	}
	if c.Mode() != Composing {
		t.Fatalf("Test SelectAndSave: Should stay composing after a failed select")
	}

	if !c.Select(n.Id) {
		t.Fatalf("Test SelectAndSave: Should select an existing note")
	}
	v := c.View()
	if v.Mode != Editing || v.Draft != "first draft" {
		t.Fatalf("Test SelectAndSave: Should pre fill the draft: %+v", v)
	}

	c.SetContent("second draft")
	if !c.Commit(ctx) {
		t.Fatalf("Test SelectAndSave: Should save the selected note")
	}
	if store.Len() != 1 {
		t.Fatalf("Test SelectAndSave: Should not create a note while editing: %v", store.All())
	}
	saved, _ := store.Find(n.Id)
	if saved.Content != "second draft" || saved.CreatedAt != n.CreatedAt {
		t.Fatalf("Test SelectAndSave: Should update content and keep createdAt: %+v", saved)
	}
	if item := c.View().Items[0]; item.Label != LabelUpdated || item.Timestamp != saved.UpdatedAt {
		t.Fatalf("Test SelectAndSave: Should label the note as updated: %+v", item)
	}

	c.SetContent("")
	if c.Commit(ctx) {
		t.Fatalf("Test SelectAndSave: Should reject saving a blank draft")
	}
}

func TestNew(t *testing.T) {
	c, store := newController(t)
	n, _ := store.Create(context.Background(), "note")

	c.Select(n.Id)
	c.New()
	v := c.View()
	if v.Mode != Composing || v.Draft != "" || v.SelectedId != 0 {
		t.Fatalf("Test New: Should go back to composing with an empty draft: %+v", v)
	}
}

func TestDelete(t *testing.T) {
	c, store := newController(t)
	ctx := context.Background()

	a, _ := store.Create(ctx, "a")
	b, _ := store.Create(ctx, "b")

	c.Select(a.Id)
	if !c.Delete(ctx, b.Id) {
		t.Fatalf("Test Delete: Should delete another note")
	}
	if c.Mode() != Editing {
		t.Fatalf("Test Delete: Should keep editing when another note is deleted")
	}

	if !c.Delete(ctx, a.Id) {
		t.Fatalf("Test Delete: Should delete the selected note")
	}
	v := c.View()
	if v.Mode != Composing || v.Draft != "" {
		t.Fatalf("Test Delete: Should go back to composing: %+v", v)
	}
	if c.Delete(ctx, a.Id) {
		t.Fatalf("Test Delete: Should ignore deleting a missing note")
	}
	if v.Total != 0 || v.Empty != EmptyNoNotes {
		t.Fatalf("Test Delete: Should show the empty list: %+v", v)
	}
}

func TestSelectedVanishes(t *testing.T) {
	c, store := newController(t)
	ctx := context.Background()

	n, _ := store.Create(ctx, "shared")
	c.Select(n.Id)
	store.Delete(ctx, n.Id)

	if v := c.View(); v.Mode != Composing || v.SelectedId != 0 {
		t.Fatalf("Test SelectedVanishes: Should fall back to composing: %+v", v)
	}
}

func TestQuery(t *testing.T) {
	c, store := newController(t)
	ctx := context.Background()

	store.Create(ctx, "Buy milk")
	store.Create(ctx, "Call mom")

	c.SetQuery("MILK")
	v := c.View()
	if len(v.Items) != 1 || v.Items[0].Title != "Buy milk" {
		t.Fatalf("Test Query: Should filter the list: %+v", v.Items)
	}
	if v.Total != 2 {
		t.Fatalf("Test Query: Should count every note in total: %d", v.Total)
	}

	c.SetQuery("nothing")
	if v := c.View(); len(v.Items) != 0 || v.Empty != EmptyNoMatch {
		t.Fatalf("Test Query: Should report no match: %+v", v)
	}
}

func TestCounters(t *testing.T) {
	c, _ := newController(t)

	c.SetContent("  Привет   мир \n again ")
	v := c.View()
	if v.Chars != 23 {
		t.Fatalf("Test Counters: Should count characters: %d", v.Chars)
	}
	if v.Words != 3 {
		t.Fatalf("Test Counters: Should count words: %d", v.Words)
	}
	if !v.CanCommit {
		t.Fatalf("Test Counters: Should allow committing a non blank draft")
	}
}
