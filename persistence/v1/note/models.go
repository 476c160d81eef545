package note

import "github.com/ribgsilva/notebook/persistence/v1/kv"

// DefaultKey is the key the collection is stored under when none is configured
const DefaultKey = "notebook-notes"

// Note is the persisted shape of a note, the whole collection is a json array of them
type Note struct {
	Id        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Collection keeps every note under a single key of a medium
type Collection struct {
	medium kv.Medium
	key    string
}

func NewCollection(medium kv.Medium, key string) *Collection {
	if key == "" {
		key = DefaultKey
	}
	return &Collection{medium: medium, key: key}
}

// Key returns the key the collection is stored under
func (c *Collection) Key() string {
	return c.key
}
