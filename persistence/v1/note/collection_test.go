package note

import (
	"context"
	"github.com/google/go-cmp/cmp"
	"github.com/ribgsilva/notebook/persistence/v1/kv"
	"testing"
)

func TestCollectionRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewCollection(kv.NewMemory(), "")

	if c.Key() != DefaultKey {
		t.Fatalf("Test CollectionRoundTrip: Should use the default key: %q", c.Key())
	}

	notes := []Note{
		{Id: 2, Title: "Привет", Content: "Привет", CreatedAt: "2024-01-02 10:00:00", UpdatedAt: "2024-01-02 10:00:00"},
		{Id: 1, Title: "Buy milk", Content: "Buy milk", CreatedAt: "2024-01-01 09:00:00", UpdatedAt: "2024-01-03 11:00:00"},
	}
	if err := c.Save(ctx, notes); err != nil {
		t.Fatalf("Test CollectionRoundTrip: Should save the notes: %v", err)
	}

	loaded, err := c.Load(ctx)
	if err != nil {
		t.Fatalf("Test CollectionRoundTrip: Should load the notes: %v", err)
	}
	if diff := cmp.Diff(notes, loaded); diff != "" {
		t.Fatalf("Test CollectionRoundTrip: Should load the same ordered notes (-want +got):\n%s", diff)
	}
}

func TestCollectionLoad(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	c := NewCollection(m, "notes")

	notes, err := c.Load(ctx)
	if err != nil || len(notes) != 0 {
		t.Fatalf("Test CollectionLoad: Should load an empty collection for a missing key: %v %v", notes, err)
	}

	_ = m.Set(ctx, "notes", "{not json")
	if _, err := c.Load(ctx); err == nil {
		t.Fatalf("Test CollectionLoad: Should fail on malformed data")
	}

	_ = m.Set(ctx, "notes", `{"id":1}`)
	if _, err := c.Load(ctx); err == nil {
		t.Fatalf("Test CollectionLoad: Should fail when the stored value is not an array")
	}
}

func TestCollectionSaveFormat(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	c := NewCollection(m, "notes")

	if err := c.Save(ctx, nil); err != nil {
		t.Fatalf("Test CollectionSaveFormat: Should save an empty collection: %v", err)
	}
	if get, _ := m.Get(ctx, "notes"); get != "[]" {
		t.Fatalf("Test CollectionSaveFormat: Should store an empty collection as []: %q", get)
	}

	_ = c.Save(ctx, []Note{{Id: 7, Title: "a", Content: "a", CreatedAt: "x", UpdatedAt: "x"}})
	want := `[{"id":7,"title":"a","content":"a","createdAt":"x","updatedAt":"x"}]`
	if get, _ := m.Get(ctx, "notes"); get != want {
		t.Fatalf("Test CollectionSaveFormat: Should store quoted camelCase keys: %q", get)
	}

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Test CollectionSaveFormat: Should clear the collection: %v", err)
	}
	if notes, _ := c.Load(ctx); len(notes) != 0 {
		t.Fatalf("Test CollectionSaveFormat: Should load nothing after clear: %v", notes)
	}
}
