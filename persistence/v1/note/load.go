package note

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ribgsilva/notebook/persistence/v1/kv"
)

// Load reads the whole collection. An absent key is an empty collection, not an error
func (c *Collection) Load(ctx context.Context) ([]Note, error) {
	get, err := c.medium.Get(ctx, c.key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	var notes []Note
	if err := json.Unmarshal([]byte(get), &notes); err != nil {
		return nil, fmt.Errorf("error parsing notes stored under %s: %w", c.key, err)
	}
	return notes, nil
}
