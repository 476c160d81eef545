package note

import (
	"context"
	"encoding/json"
	"fmt"
)

// Save overwrites the whole collection
func (c *Collection) Save(ctx context.Context, notes []Note) error {
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("error parsing notes to store under %s: %w", c.key, err)
	}
	if err := c.medium.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

// Clear removes the collection from the medium
func (c *Collection) Clear(ctx context.Context) error {
	if err := c.medium.Delete(ctx, c.key); err != nil {
		return fmt.Errorf("failed to clear notes: %w", err)
	}
	return nil
}
